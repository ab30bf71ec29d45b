package gallery

// LoadTrigger bridges sentinel visibility to a load-more listener. It is
// edge-triggered: the listener fires exactly once per transition of the
// sentinel into view, never on repeated observations while it stays visible.
// Level-triggered firing would loop forever on a short page where the
// sentinel never leaves the viewport.
//
// The trigger only signals that more content should load; retries, backoff
// and load failures are the caller's concern.
type LoadTrigger struct {
	listener func()
	visible  bool
}

// NewLoadTrigger creates a detached trigger.
func NewLoadTrigger() *LoadTrigger {
	return &LoadTrigger{}
}

// Attach registers the load-more listener.
func (t *LoadTrigger) Attach(fn func()) {
	t.listener = fn
}

// Detach releases the listener. Observations after Detach update visibility
// tracking but never fire.
func (t *LoadTrigger) Detach() {
	t.listener = nil
}

// Attached reports whether a listener is registered.
func (t *LoadTrigger) Attached() bool {
	return t.listener != nil
}

// Observe records one visibility observation of the sentinel. Fires the
// listener only on a false→true edge.
func (t *LoadTrigger) Observe(intersecting bool) {
	wasVisible := t.visible
	t.visible = intersecting
	if intersecting && !wasVisible && t.listener != nil {
		t.listener()
	}
}
