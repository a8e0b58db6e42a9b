package email

import (
	"context"
	"sync"
)

// Recorder is a Sender that captures messages in memory. Tests use it to
// assert on what would have been sent, and on whether anything was sent
// at all.
type Recorder struct {
	mu       sync.Mutex
	messages []Message

	// Err, when set, is returned from every Send without recording.
	Err error
}

// Send records the message.
func (r *Recorder) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, msg)
	return nil
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Count returns how many messages were recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}
