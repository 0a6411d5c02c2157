package domain

import (
	"strconv"
	"time"
)

// AuditAction names a committed mutation.
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// AuditEvent records who changed which resource and when.
type AuditEvent struct {
	ID         string      `json:"id"`
	Action     AuditAction `json:"action"`
	Resource   string      `json:"resource"`
	ResourceID uint        `json:"resource_id"`
	ActorID    uint        `json:"actor_id"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Key identifies the entity the event is about.
func (e AuditEvent) Key() string {
	return e.Resource + ":" + strconv.FormatUint(uint64(e.ResourceID), 10)
}
