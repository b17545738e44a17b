package engine

// Event is a multi-cast event. Listeners run in the order they were added.
type Event struct {
	listeners []func()
}

// AddListener adds a callback to be invoked when the event fires
func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners
func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
