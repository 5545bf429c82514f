// Package notify provides typed in-process broadcast channels with
// ordered, synchronous delivery.
//
// A Channel delivers each published value to every subscriber on the
// calling goroutine before Publish returns. Subscribers are notified in
// reverse registration order (most recently added first), which makes it
// safe for a handler to dispose its own subscription while a publish pass
// is in progress.
//
// # Single-goroutine contract
//
// Channels are designed for the single-threaded cooperative model of a
// render loop: all Subscribe, Publish, Complete, and Dispose calls are
// expected to happen on one goroutine (the rendering thread). No internal
// locking is performed.
//
// # Basic usage
//
//	ch := notify.NewChannel[int]()
//	sub := ch.Subscribe(&notify.Handler[int]{
//	    Next: func(v int) { fmt.Println("got", v) },
//	})
//	ch.Publish(42)
//	sub.Dispose()
package notify

// Subscriber receives values published on a Channel.
//
// Implementations must be comparable by identity (use pointer types):
// Channel.Subscribe deduplicates subscribers with ==.
type Subscriber[T any] interface {
	// OnNext is invoked once per published value.
	OnNext(value T)

	// OnCompleted is invoked when the channel delivers its terminal
	// completion signal. It may be invoked at most once per Complete call.
	OnCompleted()

	// UnsubscribeOnCompleted reports whether the subscriber should be
	// removed from the channel after the completion signal is delivered.
	UnsubscribeOnCompleted() bool
}

// Handler adapts plain funcs to the Subscriber interface. Nil funcs are
// simply skipped, so a Handler with only Next set is valid.
//
// Handler must be used by pointer; the pointer is the subscriber identity.
type Handler[T any] struct {
	// Next handles published values.
	Next func(value T)

	// Completed handles the terminal completion signal.
	Completed func()

	// AutoUnsubscribe removes the handler from the channel once the
	// completion signal has been delivered.
	AutoUnsubscribe bool
}

// OnNext implements Subscriber.
func (h *Handler[T]) OnNext(value T) {
	if h.Next != nil {
		h.Next(value)
	}
}

// OnCompleted implements Subscriber.
func (h *Handler[T]) OnCompleted() {
	if h.Completed != nil {
		h.Completed()
	}
}

// UnsubscribeOnCompleted implements Subscriber.
func (h *Handler[T]) UnsubscribeOnCompleted() bool {
	return h.AutoUnsubscribe
}

// Subscription is a disposal token for one subscriber on one channel.
// The zero value is an inert, already-disposed token.
type Subscription struct {
	dispose  func()
	disposed bool
}

// Dispose removes the associated subscriber from its channel. Calling
// Dispose more than once is a no-op. Disposing during a publish pass is
// supported; the removal takes effect immediately within that pass.
func (s *Subscription) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	if s.dispose != nil {
		s.dispose()
	}
}

// Disposed reports whether Dispose has been called.
func (s *Subscription) Disposed() bool {
	return s == nil || s.disposed
}
