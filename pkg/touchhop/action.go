package touchhop

// ActionType is the kind of transition a TouchEvent reports.
type ActionType int

const (
	ActionEntered   ActionType = iota // Pointer moved into a view's bounds (synthesized)
	ActionPressed                     // Contact began on the view
	ActionMoved                       // Pointer moved while owned by the view
	ActionReleased                    // Contact ended normally
	ActionExited                      // Pointer moved out of a view's bounds (synthesized)
	ActionCancelled                   // Platform aborted the contact
)

func (a ActionType) String() string {
	switch a {
	case ActionEntered:
		return "Entered"
	case ActionPressed:
		return "Pressed"
	case ActionMoved:
		return "Moved"
	case ActionReleased:
		return "Released"
	case ActionExited:
		return "Exited"
	case ActionCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Synthetic reports whether the action is derived from boundary-hop
// detection rather than delivered by a platform.
func (a ActionType) Synthetic() bool {
	return a == ActionEntered || a == ActionExited
}

// Ends reports whether the action terminates a pointer's lifetime.
func (a ActionType) Ends() bool {
	return a == ActionReleased || a == ActionCancelled
}
