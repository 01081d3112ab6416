package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/alert_dashboard/internal/models"
)

const (
	webhookQueueKey = "dashboard_events"
)

// Типы событий дашборда
const (
	EventStatusChanged       = "incident.status_changed"
	EventNavigationRequested = "navigation.requested"
)

// Event - событие дашборда, доставляемое внешним подписчикам
type Event struct {
	ID         uuid.UUID                `json:"id"`
	Type       string                   `json:"type"`
	SessionID  string                   `json:"session_id"`
	IncidentID string                   `json:"incident_id,omitempty"`
	EntityID   string                   `json:"entity_id,omitempty"`
	Status     models.Status            `json:"status,omitempty"`
	Actor      string                   `json:"actor,omitempty"`
	Target     *models.NavigationTarget `json:"target,omitempty"`
	Timestamp  time.Time                `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dashboard event to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает события, когда шина не настроена
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
