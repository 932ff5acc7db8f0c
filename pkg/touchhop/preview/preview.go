// Package preview shows configured views in an SDL window and routes the
// window's mouse and finger input through a touchhop Service, so that
// boundary hops and capture can be tried out on a desktop.
//
// Views are filled while a pointer is inside them and outlined in the
// capture color while their capture flag is set. The number keys toggle
// capture on the first nine views.
package preview

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/config"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/platform/sdlinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Options configures a Preview.
type Options struct {
	Window WindowOptions
	Theme  *Theme       // Colors (default: DefaultTheme)
	Logger *slog.Logger // Destination for routed events (default: touchhop.GetLogger)
}

type Preview struct {
	win    *Window
	svc    *touchhop.Service
	router *sdlinput.Router
	scene  *scene
	theme  Theme
	logger *slog.Logger
}

// New opens the preview window for cfg and attaches its views.
func New(cfg *config.Config, options Options) (*Preview, error) {
	logger := options.Logger
	if logger == nil {
		logger = touchhop.GetLogger()
	}
	theme := DefaultTheme()
	if options.Theme != nil {
		theme = *options.Theme
	}

	win, err := OpenWindow(cfg.Preview.Title, cfg.Preview.Width, cfg.Preview.Height, options.Window)
	if err != nil {
		return nil, err
	}

	svc := touchhop.New(touchhop.Options{})
	sc, err := newScene(svc, cfg.Views, cfg.Density, logger)
	if err != nil {
		win.Close()
		return nil, err
	}

	return &Preview{
		win:    win,
		svc:    svc,
		router: sdlinput.NewRouter(svc, win.Size),
		scene:  sc,
		theme:  theme,
		logger: logger,
	}, nil
}

// Service returns the Service the preview's views are attached to.
func (p *Preview) Service() *touchhop.Service {
	return p.svc
}

// Run processes events and redraws until the window is closed or ctx is
// done. It must be called from the goroutine that created the preview.
func (p *Preview) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				p.key(e)
			default:
				if _, err := p.router.HandleEvent(event); err != nil {
					p.logger.Warn("pointer routing failed", "error", err)
				}
			}
		}

		p.scene.draw(p.win.Renderer, p.theme)
		p.win.Present()
	}
}

func (p *Preview) key(e *sdl.KeyboardEvent) {
	if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
		return
	}
	if e.Keysym.Sym >= sdl.K_1 && e.Keysym.Sym <= sdl.K_9 {
		p.scene.toggleCapture(int(e.Keysym.Sym - sdl.K_1))
	}
}

// Close releases the window. Views stay attached to the Service.
func (p *Preview) Close() {
	p.win.Close()
}
