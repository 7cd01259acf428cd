package entity

import (
	"encoding/json"
	"time"
)

// Acciones registradas en la bitácora.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Tipos de entidad registrados en la bitácora. AUTH (login/logout) está
// oculto por defecto en los listados (ruido operativo); se incluye solo bajo
// petición explícita.
const (
	EntityTypeAuth     = "AUTH"
	EntityTypeUnit     = "UNIT"
	EntityTypeCompany  = "COMPANY"
	EntityTypeLease    = "LEASE"
	EntityTypeCampus   = "CAMPUS"
	EntityTypeBlock    = "BLOCK"
	EntityTypeScore    = "SCORE"
	EntityTypeDocument = "DOCUMENT"
)

// AuditLogEntry entrada inmutable de la bitácora. Nunca se edita ni se borra:
// una reversión genera una entrada NUEVA, la historia solo crece.
type AuditLogEntry struct {
	ID         string
	TraceID    string
	Timestamp  time.Time
	User       string
	UserRole   string
	Action     string // CREATE | UPDATE | DELETE
	EntityType string
	Details    string
	Impact     string          // texto de riesgo, opcional
	Rollback   json.RawMessage // snapshot opaco para revertir; nil si no aplica
	CreatedAt  time.Time
}

// Tipos de preview de rollback calculados por el servicio de reversión.
const (
	RollbackPreviewSafe = "SAFE"
	RollbackPreviewWarn = "WARN"
)

// RollbackPreview evaluación en seco de revertir un DELETE pasado.
type RollbackPreview struct {
	Type     string // SAFE | WARN
	Messages []string
}
