package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when no cached diagnosis exists for a project.
var ErrMiss = errors.New("diagnosis cache miss")

const latestTTL = 24 * time.Hour

// DiagnosisCache keeps the most recent diagnosis per project so reads skip
// the document store.
type DiagnosisCache struct {
	client *redis.Client
}

func NewDiagnosisCache(ctx context.Context, addr string) (*DiagnosisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &DiagnosisCache{client: client}, nil
}

func (c *DiagnosisCache) Close() error {
	return c.client.Close()
}

func (c *DiagnosisCache) SetLatest(ctx context.Context, record store.DiagnosisRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal diagnosis: %w", err)
	}
	key := latestKey(record.ProjectID)
	if err := c.client.Set(ctx, key, payload, latestTTL).Err(); err != nil {
		return fmt.Errorf("cache diagnosis for %s: %w", record.ProjectID, err)
	}
	return nil
}

func (c *DiagnosisCache) GetLatest(ctx context.Context, projectID string) (*store.DiagnosisRecord, error) {
	payload, err := c.client.Get(ctx, latestKey(projectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read cached diagnosis for %s: %w", projectID, err)
	}

	var record store.DiagnosisRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal cached diagnosis: %w", err)
	}
	return &record, nil
}

func latestKey(projectID string) string {
	return fmt.Sprintf("wirescope:project:%s:latest-diagnosis", projectID)
}
