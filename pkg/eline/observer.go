package eline

// EventKind discriminates progress events.
type EventKind int

const (
	// DataWritten reports the cumulative number of payload bits hidden so
	// far. Emitted once per transformed line.
	DataWritten EventKind = iota
	// Finished marks the successful end of a conceal call. Emitted exactly
	// once.
	Finished
)

// Event is a progress notification. Events are purely observational and
// never influence control flow.
type Event struct {
	Kind        EventKind
	BitsWritten int
}

// Observer receives progress events during a conceal call. Notification is
// synchronous and happens on the calling goroutine; there is no ordering
// guarantee between multiple observers.
type Observer interface {
	Notify(event Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(event Event)

func (f ObserverFunc) Notify(event Event) {
	f(event)
}

// observerRegistry is the explicit subscribe/unsubscribe registry owned by
// the encoder. Subscribers are removed by handle, not by liveness tracking,
// so their lifetime is independent of the engine's.
type observerRegistry struct {
	observers      map[int]Observer
	nextObserverID int
}

func (r *observerRegistry) Subscribe(observer Observer) int {
	if r.observers == nil {
		r.observers = make(map[int]Observer)
	}
	r.nextObserverID++
	r.observers[r.nextObserverID] = observer
	return r.nextObserverID
}

func (r *observerRegistry) Unsubscribe(id int) {
	delete(r.observers, id)
}

func (r *observerRegistry) notify(event Event) {
	for _, observer := range r.observers {
		observer.Notify(event)
	}
}
