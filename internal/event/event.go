// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // см. комментарии к типам в types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события. Срез не меняется на месте: Dispatch,
// который сейчас идёт по старому срезу, доставит событие всем, кто был
// подписан на момент вызова.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l != listener {
			continue
		}
		kept := make([]Listener, 0, len(listeners)-1)
		kept = append(kept, listeners[:i]...)
		kept = append(kept, listeners[i+1:]...)
		if len(kept) == 0 {
			delete(d.listeners, eventType)
		} else {
			d.listeners[eventType] = kept
		}
		return
	}
}

// SubscribeAll подписывает слушателя на несколько типов событий сразу.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// UnsubscribeAll снимает слушателя со всех типов событий.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	for t := range d.listeners {
		d.Unsubscribe(t, listener)
	}
}

// Listeners returns how many listeners are subscribed to eventType.
func (d *Dispatcher) Listeners(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch — отправка события всем подписчикам, синхронно и по порядку
// подписки. Вызывается только из потока симуляции.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
