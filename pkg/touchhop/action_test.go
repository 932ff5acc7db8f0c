package touchhop

import "testing"

func TestActionTypeString(t *testing.T) {
	want := map[ActionType]string{
		ActionEntered:   "Entered",
		ActionPressed:   "Pressed",
		ActionMoved:     "Moved",
		ActionReleased:  "Released",
		ActionExited:    "Exited",
		ActionCancelled: "Cancelled",
		ActionType(99):  "Unknown",
	}
	for a, s := range want {
		if a.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(a), a.String(), s)
		}
	}
}

func TestActionClassification(t *testing.T) {
	for _, a := range []ActionType{ActionEntered, ActionExited} {
		if !a.Synthetic() || a.Ends() {
			t.Errorf("%s misclassified", a)
		}
	}
	for _, a := range []ActionType{ActionReleased, ActionCancelled} {
		if a.Synthetic() || !a.Ends() {
			t.Errorf("%s misclassified", a)
		}
	}
	for _, a := range []ActionType{ActionPressed, ActionMoved} {
		if a.Synthetic() || a.Ends() {
			t.Errorf("%s misclassified", a)
		}
	}
}

func TestBindingError(t *testing.T) {
	err := NewBindingError("open_device", ErrMissingContext)
	if !IsBindingError(err) {
		t.Fatalf("IsBindingError = false")
	}
	if err.Error() != "touchhop: open_device: "+ErrMissingContext.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
	if (&BindingError{Op: "read"}).Error() != "touchhop: read" {
		t.Errorf("Error() without cause")
	}
	if IsBindingError(ErrNotAttached) {
		t.Errorf("sentinel reported as binding error")
	}
}
