package audit

import (
	"strings"
	"time"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

// Ventanas de tiempo del filtro de bitácora. Inclusivas: una entrada pasa si
// now - timestamp <= ventana.
const (
	Window1H  = "1H"
	Window6H  = "6H"
	Window12H = "12H"
	Window24H = "24H"
	Window3D  = "3D"
	Window7D  = "7D"
	WindowAll = "ALL"
)

// ActionAll valor de filtro que acepta cualquier acción.
const ActionAll = "ALL"

var windowDurations = map[string]time.Duration{
	Window1H:  time.Hour,
	Window6H:  6 * time.Hour,
	Window12H: 12 * time.Hour,
	Window24H: 24 * time.Hour,
	Window3D:  3 * 24 * time.Hour,
	Window7D:  7 * 24 * time.Hour,
}

// ValidWindow indica si la etiqueta de ventana es conocida.
func ValidWindow(w string) bool {
	if w == WindowAll || w == "" {
		return true
	}
	_, ok := windowDurations[w]
	return ok
}

// Filter criterios del listado de auditoría. Todos los filtros activos se
// combinan con AND.
type Filter struct {
	Window      string // 1H, 6H, 12H, 24H, 3D, 7D, ALL (vacío = ALL)
	Action      string // CREATE, UPDATE, DELETE o ALL (vacío = ALL)
	Text        string // substring case-insensitive sobre details, entityType y user
	IncludeAuth bool   // las entradas AUTH están ocultas salvo petición explícita
}

// Apply filtra las entradas sin reordenarlas: el orden de llegada (las vistas
// asumen cronológico inverso) se conserva tal cual.
func Apply(entries []*entity.AuditLogEntry, f Filter, now time.Time) []*entity.AuditLogEntry {
	out := make([]*entity.AuditLogEntry, 0, len(entries))
	for _, e := range entries {
		if matches(e, f, now) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e *entity.AuditLogEntry, f Filter, now time.Time) bool {
	if !f.IncludeAuth && e.EntityType == entity.EntityTypeAuth {
		return false
	}
	if d, ok := windowDurations[f.Window]; ok {
		if now.Sub(e.Timestamp) > d {
			return false
		}
	}
	if f.Action != "" && f.Action != ActionAll && e.Action != f.Action {
		return false
	}
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(e.Details), needle) &&
			!strings.Contains(strings.ToLower(e.EntityType), needle) &&
			!strings.Contains(strings.ToLower(e.User), needle) {
			return false
		}
	}
	return true
}

// Eligible decide si una entrada admite rollback: solo DELETEs con snapshot
// presente y dentro de la ventana. Para las demás entradas la acción de
// rollback simplemente NO se ofrece (ausencia, no deshabilitado: la ausencia
// comunica política, no capacidad).
func Eligible(e *entity.AuditLogEntry, now time.Time, window time.Duration) bool {
	if e == nil || e.Action != entity.ActionDelete {
		return false
	}
	if len(e.Rollback) == 0 {
		return false
	}
	return now.Sub(e.Timestamp) <= window
}
