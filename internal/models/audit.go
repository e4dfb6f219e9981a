package models

import "time"

// AdminActor - инициатор административного действия
type AdminActor struct {
	ID   int
	Role string
}

// AuditEntry - запись журнала административных действий
type AuditEntry struct {
	ID        int64     `json:"id"`
	ActorID   int       `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Action    string    `json:"action"`
	ReportID  string    `json:"report_id"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
