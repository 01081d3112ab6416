package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/alert_dashboard/internal/models"
)

const (
	incidentsCacheKey = "dashboard:incidents"
	entitiesCacheKey  = "dashboard:entities"
)

// Source - полный контракт источника данных дашборда
type Source interface {
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	GetIncident(ctx context.Context, incidentID string) (*models.Incident, error)
	IncidentHistory(ctx context.Context, incidentID string) ([]models.IncidentUpdate, error)
	AssociatedEntities(ctx context.Context, incidentID string) ([]string, error)
	ListEntities(ctx context.Context) ([]models.Entity, error)
	GetEntity(ctx context.Context, entityID string) (*models.Entity, error)
	RelatedIncidents(ctx context.Context, entityID string) ([]models.RelatedIncident, error)
}

// SnapshotStore - команды Redis, нужные кешу снимков
type SnapshotStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedRepository кеширует снимки списков инцидентов и сущностей в Redis.
// Остальные запросы идут напрямую в источник.
type CachedRepository struct {
	Source
	redisClient SnapshotStore
	ttl         time.Duration
}

func NewCachedRepository(source Source, redisClient SnapshotStore, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		Source:      source,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// ListIncidents возвращает снимок инцидентов из кеша или из источника
func (r *CachedRepository) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	var incidents []models.Incident
	if hit, _ := r.getSnapshot(ctx, incidentsCacheKey, &incidents); hit {
		return incidents, nil
	}

	incidents, err := r.Source.ListIncidents(ctx)
	if err != nil {
		return nil, err
	}
	// Ошибка записи в кеш не мешает отдать данные
	_ = r.setSnapshot(ctx, incidentsCacheKey, incidents)
	return incidents, nil
}

// ListEntities возвращает снимок сущностей из кеша или из источника
func (r *CachedRepository) ListEntities(ctx context.Context) ([]models.Entity, error) {
	var entities []models.Entity
	if hit, _ := r.getSnapshot(ctx, entitiesCacheKey, &entities); hit {
		return entities, nil
	}

	entities, err := r.Source.ListEntities(ctx)
	if err != nil {
		return nil, err
	}
	_ = r.setSnapshot(ctx, entitiesCacheKey, entities)
	return entities, nil
}

// Invalidate удаляет оба снимка
func (r *CachedRepository) Invalidate(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, incidentsCacheKey, entitiesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}
	return nil
}

// getSnapshot сообщает, найден ли снимок. Промах кеша не является ошибкой.
func (r *CachedRepository) getSnapshot(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

func (r *CachedRepository) setSnapshot(ctx context.Context, key string, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}
