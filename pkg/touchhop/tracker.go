package touchhop

// tracker records, per active pointer, the view that currently owns it and
// the view it began on. An absent entry means "none"; unknown ids are never
// an error.
type tracker struct {
	owners  map[PointerID]*Controller
	origins map[PointerID]*Controller
}

func newTracker() *tracker {
	return &tracker{
		owners:  make(map[PointerID]*Controller),
		origins: make(map[PointerID]*Controller),
	}
}

func (t *tracker) owner(id PointerID) *Controller {
	return t.owners[id]
}

// setOwner records c as owner of id, or removes the entry when c is nil.
func (t *tracker) setOwner(id PointerID, c *Controller) {
	if c == nil {
		delete(t.owners, id)
		return
	}
	t.owners[id] = c
}

func (t *tracker) origin(id PointerID) *Controller {
	return t.origins[id]
}

func (t *tracker) begin(id PointerID, c *Controller) {
	t.owners[id] = c
	t.origins[id] = c
}

// forget clears everything known about id.
func (t *tracker) forget(id PointerID) {
	delete(t.owners, id)
	delete(t.origins, id)
}

// drop removes every entry that refers to c and returns how many pointers
// lost their owner.
func (t *tracker) drop(c *Controller) int {
	n := 0
	for id, owner := range t.owners {
		if owner == c {
			delete(t.owners, id)
			n++
		}
	}
	for id, origin := range t.origins {
		if origin == c {
			delete(t.origins, id)
		}
	}
	return n
}

func (t *tracker) len() int {
	return len(t.owners)
}
