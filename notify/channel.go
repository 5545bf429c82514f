// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package notify

// Channel is a typed broadcast channel. Values published on the channel
// are delivered synchronously to every subscriber, iterating from the
// most recently added subscriber back to the earliest.
//
// The reverse iteration order is deliberate: a handler may dispose its
// own subscription (or another one) while a publish pass is running, and
// walking the registry back to front guarantees that removing an element
// never skips or revisits another element during the same pass.
//
// Channel is not safe for concurrent use; see the package documentation.
type Channel[T any] struct {
	subs   []Subscriber[T]
	closed bool
}

// NewChannel creates an empty broadcast channel.
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{}
}

// Subscribe adds sub to the channel and returns its disposal token.
//
// Subscribing the same subscriber instance twice is a no-op: the existing
// registration is kept and a token for it is returned. Subscribing on a
// closed channel registers nothing and returns an inert token.
func (c *Channel[T]) Subscribe(sub Subscriber[T]) *Subscription {
	if c.closed || sub == nil {
		return &Subscription{}
	}
	for _, existing := range c.subs {
		if existing == sub {
			return &Subscription{dispose: func() { c.remove(sub) }}
		}
	}
	c.subs = append(c.subs, sub)
	return &Subscription{dispose: func() { c.remove(sub) }}
}

// Publish delivers value to every current subscriber, most recently
// added first. Publishing on an empty or closed channel is a no-op.
func (c *Channel[T]) Publish(value T) {
	if c.closed {
		return
	}
	for i := len(c.subs) - 1; i >= 0; i-- {
		// A handler may have removed subscribers below this index.
		if i >= len(c.subs) {
			continue
		}
		c.subs[i].OnNext(value)
	}
}

// Complete delivers the terminal completion signal to every subscriber,
// in the same order Publish uses. Subscribers whose
// UnsubscribeOnCompleted reports true are removed afterwards.
func (c *Channel[T]) Complete() {
	if c.closed {
		return
	}
	for i := len(c.subs) - 1; i >= 0; i-- {
		if i >= len(c.subs) {
			continue
		}
		c.subs[i].OnCompleted()
	}
	kept := c.subs[:0]
	for _, sub := range c.subs {
		if !sub.UnsubscribeOnCompleted() {
			kept = append(kept, sub)
		}
	}
	c.subs = kept
}

// UnsubscribeAll removes every subscriber. Outstanding subscription
// tokens become no-ops.
func (c *Channel[T]) UnsubscribeAll() {
	c.subs = nil
}

// Close clears all subscribers and marks the channel closed. Further
// Publish, Complete, and Subscribe calls are no-ops. Closing an already
// closed channel is a no-op.
func (c *Channel[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.subs = nil
}

// Len returns the number of active subscribers.
func (c *Channel[T]) Len() int {
	return len(c.subs)
}

// remove deletes sub from the registry, preserving the order of the
// remaining subscribers.
func (c *Channel[T]) remove(sub Subscriber[T]) {
	for i, existing := range c.subs {
		if existing == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}
