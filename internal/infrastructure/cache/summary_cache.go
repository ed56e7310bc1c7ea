// Package cache implementa el cache Redis del resumen de ventas del día.
// La clave incluye la fecha: un día nuevo simplemente no tiene entrada,
// así que el "reinicio" diario no necesita ningún job.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/aquabolsa-api/internal/application/sales"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
)

var _ sales.SummaryCache = (*SummaryCache)(nil)

const summaryTTL = 26 * time.Hour // sobrevive el día completo más margen

// SummaryCache cache del agregado diario de ventas sobre Redis.
type SummaryCache struct {
	client *redis.Client
}

// New construye el cache y verifica la conexión.
func New(ctx context.Context, addr, password string, db int) (*SummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &SummaryCache{client: client}, nil
}

// Close cierra la conexión a Redis.
func (c *SummaryCache) Close() error {
	return c.client.Close()
}

func summaryKey(date time.Time) string {
	return "sales:summary:" + date.Format("2006-01-02")
}

// GetDaySummary devuelve el resumen cacheado de la fecha, con ok=false en miss.
func (c *SummaryCache) GetDaySummary(ctx context.Context, date time.Time) (*entity.SalesDaySummary, bool, error) {
	val, err := c.client.Get(ctx, summaryKey(date)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var summary entity.SalesDaySummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, false, err
	}
	return &summary, true, nil
}

// SetDaySummary graba el resumen bajo la clave de su fecha.
func (c *SummaryCache) SetDaySummary(ctx context.Context, summary *entity.SalesDaySummary) error {
	if summary == nil {
		return nil
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey(summary.Date), payload, summaryTTL).Err()
}
