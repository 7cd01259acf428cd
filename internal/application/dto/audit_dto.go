package dto

import "time"

// AuditLogQuery criterios del listado de bitácora. Los filtros activos se
// combinan con AND; las entradas AUTH quedan fuera salvo include_auth=true.
type AuditLogQuery struct {
	Window      string `query:"window"`       // 1H, 6H, 12H, 24H, 3D, 7D, ALL
	Action      string `query:"action"`       // CREATE, UPDATE, DELETE, ALL
	Text        string `query:"text"`         // substring case-insensitive
	IncludeAuth bool   `query:"include_auth"` // incluir entradas AUTH
	Page        int    `query:"page"`         // 1-based
}

// AuditLogEntryResponse entrada de bitácora. CanRollback solo aparece cuando
// la entrada es elegible: la ausencia del affordance comunica la política.
type AuditLogEntryResponse struct {
	ID          string    `json:"id"`
	TraceID     string    `json:"trace_id"`
	Timestamp   time.Time `json:"timestamp"`
	User        string    `json:"user"`
	UserRole    string    `json:"user_role"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	Details     string    `json:"details"`
	Impact      string    `json:"impact,omitempty"`
	CanRollback bool      `json:"can_rollback,omitempty"`
}

// AuditLogListResponse página del listado filtrado. Page vuelve a 1 cada vez
// que cambia el total filtrado para no dejar al usuario en una página vacía.
type AuditLogListResponse struct {
	Items    []AuditLogEntryResponse `json:"items"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
	Total    int                     `json:"total"`
}

// RollbackPreviewResponse evaluación en seco de la reversión.
type RollbackPreviewResponse struct {
	EntryID  string   `json:"entry_id"`
	Type     string   `json:"type"` // SAFE | WARN
	Messages []string `json:"messages"`
}

// RollbackResultResponse desenlace del commit de la reversión.
type RollbackResultResponse struct {
	EntryID string `json:"entry_id"`
	Status  string `json:"status"` // DONE | FAILED
	Message string `json:"message,omitempty"`
}
