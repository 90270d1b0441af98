package action

// Recorder collects dispatched actions in order.
type Recorder struct {
	Actions []Action
}

// Dispatch appends a to the recording. It satisfies [Dispatcher] as a
// method value: dispatch := rec.Dispatch.
func (r *Recorder) Dispatch(a Action) {
	r.Actions = append(r.Actions, a)
}

// Len returns the number of recorded actions.
func (r *Recorder) Len() int { return len(r.Actions) }

// Last returns the most recent action, or nil.
func (r *Recorder) Last() Action {
	if len(r.Actions) == 0 {
		return nil
	}
	return r.Actions[len(r.Actions)-1]
}

// LastResize returns the most recent resize action, or nil.
func (r *Recorder) LastResize() *Resize {
	for i := len(r.Actions) - 1; i >= 0; i-- {
		if rs, ok := r.Actions[i].(*Resize); ok {
			return rs
		}
	}
	return nil
}

// LastUpdate returns the most recent update action, or nil.
func (r *Recorder) LastUpdate() *Update {
	for i := len(r.Actions) - 1; i >= 0; i-- {
		if u, ok := r.Actions[i].(*Update); ok {
			return u
		}
	}
	return nil
}

// Reset drops all recorded actions.
func (r *Recorder) Reset() { r.Actions = nil }

// Tee returns a dispatcher that forwards to every non-nil dispatcher in order.
func Tee(ds ...Dispatcher) Dispatcher {
	return func(a Action) {
		for _, d := range ds {
			if d != nil {
				d(a)
			}
		}
	}
}
