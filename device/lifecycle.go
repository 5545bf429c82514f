package device

import (
	"errors"
	"fmt"

	"github.com/gogpu/batch/notify"
)

// ErrInvalidBatchSize is returned when publishing a batch size of zero.
var ErrInvalidBatchSize = errors.New("device: batch size must be greater than zero")

// Lifecycle is the fixed set of notification channels that coordinates
// GPU resource lifecycles. It is not a state machine itself: it only
// guarantees that every batch buffer sees the same device-ready,
// batch-size-changed, and shutdown events regardless of creation order.
//
// A Lifecycle is constructed once by the host application and injected
// by reference into every buffer at construction time. A buffer that
// never receives a ready event stays permanently uninitialized.
type Lifecycle struct {
	// Ready broadcasts context availability.
	Ready *notify.Channel[ReadyEvent]

	// BatchSize broadcasts batch capacity changes.
	BatchSize *notify.Channel[BatchSizeEvent]

	// Shutdown broadcasts context teardown.
	Shutdown *notify.Channel[ShutdownEvent]
}

// NewLifecycle creates a Lifecycle with empty channels.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{
		Ready:     notify.NewChannel[ReadyEvent](),
		BatchSize: notify.NewChannel[BatchSizeEvent](),
		Shutdown:  notify.NewChannel[ShutdownEvent](),
	}
}

// DeviceReady broadcasts that the graphics context is available.
func (l *Lifecycle) DeviceReady() {
	l.Ready.Publish(ReadyEvent{})
}

// ResizeBatch broadcasts a new batch capacity. count must be greater
// than zero.
func (l *Lifecycle) ResizeBatch(count uint32) error {
	if count == 0 {
		return fmt.Errorf("%w: got 0", ErrInvalidBatchSize)
	}
	l.BatchSize.Publish(BatchSizeEvent{Count: count})
	return nil
}

// TearDown broadcasts shutdown to all subscribers. Buffers release
// their GPU resources and unsubscribe in response; delivering TearDown
// twice is harmless since teardown is idempotent on the buffer side.
func (l *Lifecycle) TearDown() {
	l.Shutdown.Publish(ShutdownEvent{})
}

// Close completes and closes all channels. After Close the Lifecycle is
// inert; Close is idempotent.
func (l *Lifecycle) Close() {
	l.Ready.Complete()
	l.Ready.Close()
	l.BatchSize.Complete()
	l.BatchSize.Close()
	l.Shutdown.Complete()
	l.Shutdown.Close()
}
