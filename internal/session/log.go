package session

import (
	"time"

	"github.com/google/uuid"
)

// Log is the append-only record of answers submitted during one run of the
// app. It has a single writer (the practice screen) and is read by the
// responses, charts and export paths on the same UI goroutine.
type Log struct {
	id        string
	startedAt time.Time
	responses []Response
}

// NewLog starts an empty log with a fresh session ID.
func NewLog() *Log {
	return &Log{
		id:        uuid.New().String(),
		startedAt: time.Now(),
	}
}

// ID returns the session identifier.
func (l *Log) ID() string {
	return l.id
}

// StartedAt returns when the session began.
func (l *Log) StartedAt() time.Time {
	return l.startedAt
}

// Append adds r to the end of the log.
func (l *Log) Append(r Response) {
	l.responses = append(l.responses, r)
}

// All returns a copy of every response in submission order.
func (l *Log) All() []Response {
	out := make([]Response, len(l.responses))
	copy(out, l.responses)
	return out
}

// Len returns the number of responses.
func (l *Log) Len() int {
	return len(l.responses)
}

// Last returns the most recent response, if any.
func (l *Log) Last() (Response, bool) {
	if len(l.responses) == 0 {
		return Response{}, false
	}
	return l.responses[len(l.responses)-1], true
}
