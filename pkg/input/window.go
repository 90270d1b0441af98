package input

import (
	"sort"
	"sync"
)

type kind int

const (
	kindMove kind = iota
	kindUp
	kindKey
	kindBlur
)

type listener struct {
	owner   string
	pointID int // pointer an owned listener follows
	pointer func(PointerEvent)
	key     func(KeyEvent)
	blur    func()
}

// Window is a registry of global input listeners.
type Window struct {
	mu        sync.Mutex
	next      uint64
	listeners map[kind]map[uint64]listener
	owners    map[int]string
}

// NewWindow creates an empty window.
func NewWindow() *Window {
	return &Window{
		listeners: make(map[kind]map[uint64]listener),
		owners:    make(map[int]string),
	}
}

func (w *Window) add(k kind, l listener) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.listeners == nil {
		w.listeners = make(map[kind]map[uint64]listener)
	}
	if w.listeners[k] == nil {
		w.listeners[k] = make(map[uint64]listener)
	}
	w.next++
	id := w.next
	w.listeners[k][id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.listeners[k], id)
			w.mu.Unlock()
		})
	}
}

// snapshot returns the listeners of kind k in registration order.
func (w *Window) snapshot(k kind) []listener {
	w.mu.Lock()
	defer w.mu.Unlock()
	ids := make([]uint64, 0, len(w.listeners[k]))
	for id := range w.listeners[k] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]listener, len(ids))
	for i, id := range ids {
		out[i] = w.listeners[k][id]
	}
	return out
}

// OnPointerMove registers fn for every pointer move and returns its remover.
func (w *Window) OnPointerMove(fn func(PointerEvent)) (remove func()) {
	return w.add(kindMove, listener{pointer: fn})
}

// OnPointerUp registers fn for every pointer release.
func (w *Window) OnPointerUp(fn func(PointerEvent)) (remove func()) {
	return w.add(kindUp, listener{pointer: fn})
}

// OnKeyDown registers fn for every key press.
func (w *Window) OnKeyDown(fn func(KeyEvent)) (remove func()) {
	return w.add(kindKey, listener{key: fn})
}

// OnBlur registers fn for window focus loss.
func (w *Window) OnBlur(fn func()) (remove func()) {
	return w.add(kindBlur, listener{blur: fn})
}

// PointerMove delivers a move event.
func (w *Window) PointerMove(e PointerEvent) { w.deliverPointer(kindMove, e) }

// PointerUp delivers a release event.
func (w *Window) PointerUp(e PointerEvent) { w.deliverPointer(kindUp, e) }

// deliverPointer runs every unowned listener, and owned listeners only for
// the pointer their gesture currently holds.
func (w *Window) deliverPointer(k kind, e PointerEvent) {
	owner := w.Owner(e.PointerID)
	for _, l := range w.snapshot(k) {
		if l.owner != "" && (l.pointID != e.PointerID || l.owner != owner) {
			continue
		}
		l.pointer(e)
	}
}

// KeyDown delivers a key press.
func (w *Window) KeyDown(e KeyEvent) {
	for _, l := range w.snapshot(kindKey) {
		l.key(e)
	}
}

// Blur delivers a focus loss.
func (w *Window) Blur() {
	for _, l := range w.snapshot(kindBlur) {
		l.blur()
	}
}

// Owner returns the token of the gesture holding pointerID, or "".
func (w *Window) Owner(pointerID int) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.owners[pointerID]
}

// Listeners returns the number of registered listeners.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, m := range w.listeners {
		n += len(m)
	}
	return n
}

func (w *Window) claim(pointerID int, token string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.owners == nil {
		w.owners = make(map[int]string)
	}
	if cur, ok := w.owners[pointerID]; ok && cur != token {
		return false
	}
	w.owners[pointerID] = token
	return true
}

func (w *Window) release(pointerID int, token string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.owners[pointerID] == token {
		delete(w.owners, pointerID)
	}
}
