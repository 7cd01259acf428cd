package notify

import "context"

// EntityType tipo de dato que cambió. El evento es solo una señal: los
// suscriptores re-consultan el estado autoritativo, el evento no carga datos.
type EntityType string

// Tipos de cambio publicados por los casos de uso.
const (
	EntityCompany  EntityType = "company"
	EntityLease    EntityType = "lease"
	EntityCampus   EntityType = "campus"
	EntityBlock    EntityType = "block"
	EntityUnit     EntityType = "unit"
	EntityDocument EntityType = "document"
	EntityScore    EntityType = "score"
)

// Action acción que produjo el cambio.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Notifier fan-out de cambios hacia otras vistas/instancias. Fire-and-forget:
// sin garantía de entrega ni de orden; un fallo de publicación jamás hace
// fallar la mutación que lo originó.
type Notifier interface {
	Publish(ctx context.Context, entity EntityType, action Action)
}

// Noop descarta todas las notificaciones (tests y arranque sin Redis).
type Noop struct{}

// Publish no hace nada.
func (Noop) Publish(context.Context, EntityType, Action) {}
