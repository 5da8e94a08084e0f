package ports

import (
	"context"
	"time"
)

// Audit actions recorded for product mutations.
const (
	AuditActionCreated = "created"
	AuditActionUpdated = "updated"
	AuditActionDeleted = "deleted"
)

// AuditEvent describes a single product mutation.
type AuditEvent struct {
	ID         string
	Action     string
	ProductID  int64
	Actor      string
	OccurredAt time.Time
	Detail     string
}

// AuditRecorder persists audit events.
type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent) error
}

// AuditSink accepts audit events for asynchronous recording. Enqueue never
// blocks the caller; events may be dropped under sustained backpressure.
type AuditSink interface {
	Enqueue(event AuditEvent)
}
