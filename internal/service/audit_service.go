package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
)

type AuditStore interface {
	Insert(ctx context.Context, entry model.AuditEntry) error
	Query(ctx context.Context, query model.AuditQuery) ([]model.AuditEntry, error)
}

type AuditService struct {
	entries AuditStore
}

func NewAuditService(entries AuditStore) *AuditService {
	return &AuditService{entries: entries}
}

// Record writes an audit entry. Failures are logged, never surfaced: audit
// must not break the request that triggered it.
func (s *AuditService) Record(ctx context.Context, action string, actor *model.User, actorIP string, resource string, status string) {
	if s == nil {
		return
	}

	entry := model.AuditEntry{
		Action:     action,
		OccurredAt: time.Now().UTC(),
		ActorIP:    actorIP,
		Resource:   resource,
		Status:     status,
	}
	if actor != nil {
		entry.ActorUserID = &actor.ID
		entry.ActorEmail = actor.Email
	}

	if err := s.entries.Insert(ctx, entry); err != nil {
		slog.Warn("audit entry dropped", "action", action, "error", err)
	}
}

func (s *AuditService) List(ctx context.Context, query model.AuditQuery) ([]model.AuditEntry, error) {
	return s.entries.Query(ctx, query)
}
