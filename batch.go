package logward

import "github.com/logward/go-logward/internal"

// pendingMessages is a bounded buffer of messages awaiting submission.
// Messages are submitted oldest first.  When the buffer is full new messages
// are dropped rather than blocking the logging path.
type pendingMessages struct {
	numSeen    int
	numDropped int
	capacity   int
	msgs       []*Message
}

func newPendingMessages(capacity int) *pendingMessages {
	return &pendingMessages{
		capacity: capacity,
		msgs:     make([]*Message, 0, capacity),
	}
}

func (p *pendingMessages) NumPending() int { return len(p.msgs) }
func (p *pendingMessages) NumSeen() int    { return p.numSeen }
func (p *pendingMessages) NumDropped() int { return p.numDropped }

// Add appends m and reports whether it was kept.
func (p *pendingMessages) Add(m *Message) bool {
	p.numSeen++
	if len(p.msgs) >= p.capacity {
		p.numDropped++
		return false
	}
	p.msgs = append(p.msgs, m)
	return true
}

// TakeBatch removes and returns up to n messages from the front of the
// buffer.
func (p *pendingMessages) TakeBatch(n int) []*Message {
	if n > len(p.msgs) {
		n = len(p.msgs)
	}
	if 0 == n {
		return nil
	}
	batch := make([]*Message, n)
	copy(batch, p.msgs)
	remaining := copy(p.msgs, p.msgs[n:])
	for i := remaining; i < len(p.msgs); i++ {
		p.msgs[i] = nil
	}
	p.msgs = p.msgs[:remaining]
	return batch
}

// MergeFailed returns a failed batch to the front of the buffer so that it
// is retried on the next flush.  Messages that have exceeded the attempt
// limit, and messages that no longer fit, are returned instead of kept.
func (p *pendingMessages) MergeFailed(batch []*Message) (dropped []*Message) {
	kept := make([]*Message, 0, len(batch))
	for _, m := range batch {
		m.attempts++
		if m.attempts >= internal.FailedBatchAttemptsLimit {
			p.numDropped++
			dropped = append(dropped, m)
			continue
		}
		if len(kept)+len(p.msgs) >= p.capacity {
			p.numDropped++
			dropped = append(dropped, m)
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) > 0 {
		p.msgs = append(kept, p.msgs...)
	}
	return dropped
}

// TakeAll empties the buffer.
func (p *pendingMessages) TakeAll() []*Message {
	msgs := p.msgs
	p.msgs = make([]*Message, 0, p.capacity)
	return msgs
}
