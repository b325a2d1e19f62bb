package model

import "time"

type AuditEntry struct {
	ID          int64     `json:"id"`
	Action      string    `json:"action"`
	OccurredAt  time.Time `json:"occurred_at"`
	ActorUserID *int64    `json:"actor_user_id,omitempty"`
	ActorEmail  string    `json:"actor_email,omitempty"`
	ActorIP     string    `json:"actor_ip,omitempty"`
	Resource    string    `json:"resource,omitempty"`
	Status      string    `json:"status"`
}
