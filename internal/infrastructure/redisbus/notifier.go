package redisbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/pkg/config"
	"github.com/ozkanv/teknopark-api/pkg/logger"
)

var _ notify.Notifier = (*Notifier)(nil)

// Channel canal pub/sub de cambios. Un solo canal para todos los tipos: los
// suscriptores filtran por payload.
const Channel = "teknopark:changes"

// event payload publicado. Solo señala QUÉ cambió; nunca carga el dato en sí.
type event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	At     string `json:"at"`
}

// Notifier fan-out de cambios vía Redis pub/sub. Fire-and-forget: un fallo de
// publicación se loguea y se descarta, jamás propaga a la mutación.
type Notifier struct {
	client *redis.Client
	log    *logger.Logger
}

// NewNotifier conecta el cliente Redis y construye el notificador.
func NewNotifier(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*Notifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Notifier{client: client, log: log}, nil
}

// Publish publica la señal de cambio. No devuelve error: sin garantía de
// entrega ni de orden.
func (n *Notifier) Publish(ctx context.Context, entity notify.EntityType, action notify.Action) {
	payload, err := json.Marshal(event{
		Entity: string(entity),
		Action: string(action),
		At:     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		n.log.Error().Err(err).Msg("serializar evento de cambio")
		return
	}
	if err := n.client.Publish(ctx, Channel, payload).Err(); err != nil {
		n.log.Warn().Err(err).
			Str("entity", string(entity)).
			Str("action", string(action)).
			Msg("publicar evento de cambio")
	}
}

// Subscribe entrega las señales de cambio por canal hasta que el contexto se
// cancele. Pensado para otras instancias/vistas que quieran re-consultar.
func (n *Notifier) Subscribe(ctx context.Context, fn func(entity, action string)) error {
	sub := n.client.Subscribe(ctx, Channel)
	defer func() { _ = sub.Close() }()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var e event
			if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
				n.log.Warn().Err(err).Msg("evento de cambio ilegible")
				continue
			}
			fn(e.Entity, e.Action)
		}
	}
}

// Close cierra el cliente Redis.
func (n *Notifier) Close() error {
	return n.client.Close()
}
