package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"myexplorer/domain"
	"myexplorer/helpers"
	"myexplorer/interfaces"
	"myexplorer/service"

	"github.com/go-redis/redis/v8"
)

// DefaultKeyPrefix namespaces instance records when the config does not set one.
const DefaultKeyPrefix = "instance"

// record is the JSON value stored under {prefix}:{instance_id}.
type record struct {
	InstanceID string `json:"instance_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}

type instanceSource struct {
	client   redis.UniversalClient
	prefix   string
	pageSize int64
}

// NewInstanceSource creates an interfaces.InstanceSource over an inventory mirrored into Redis, one JSON record
// per key ({prefix}:{instance_id} → {"instance_id","name","status"}). Each SCAN page becomes one batch, so batch
// sizes follow the server's SCAN behaviour and may be empty. Panics on nil client.
//
// Parameters: prefix: key namespace (DefaultKeyPrefix when empty); pageSize: SCAN COUNT hint (0 lets Redis choose).
//
// Called from cmd/main when source.type is redis.
func NewInstanceSource(client redis.UniversalClient, prefix string, pageSize int) interfaces.InstanceSource {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &instanceSource{
		client:   helpers.NilPanic(client, "myredis.instance_source.go: redis client is required"),
		prefix:   prefix,
		pageSize: int64(pageSize),
	}
}

func (s *instanceSource) key(instanceID string) string {
	return s.prefix + ":" + instanceID
}

// ListInstances scans {prefix}:* and yields the records of each page that match filter. Keys that vanish between
// SCAN and MGET are skipped; an undecodable record ends the listing with an error.
func (s *instanceSource) ListInstances(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
	return func(yield func([]domain.InstanceSummary, error) bool) {
		var cursor uint64
		for {
			keys, next, err := s.client.Scan(ctx, cursor, s.key("*"), s.pageSize).Result()
			if err != nil {
				yield(nil, fmt.Errorf("scan instance keys: %w", err))
				return
			}
			batch, err := s.load(ctx, keys, filter)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(batch, nil) {
				return
			}
			if next == 0 {
				return
			}
			cursor = next
		}
	}
}

func (s *instanceSource) load(ctx context.Context, keys []string, filter domain.InstanceFilter) ([]domain.InstanceSummary, error) {
	batch := make([]domain.InstanceSummary, 0, len(keys))
	if len(keys) == 0 {
		return batch, nil
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load instance records: %w", err)
	}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		r, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		summary := domain.InstanceSummary{InstanceID: r.InstanceID, Name: r.Name, Status: domain.InstanceStatus(r.Status)}
		if filter.Matches(summary.Status) {
			batch = append(batch, summary)
		}
	}
	return batch, nil
}

// GetInstanceStatus reads the record of one instance. A missing key is an entity_not_found error.
func (s *instanceSource) GetInstanceStatus(ctx context.Context, instanceID string) (domain.InstanceStatus, error) {
	raw, err := s.client.Get(ctx, s.key(instanceID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", service.NewUnknownInstanceError(instanceID, s.key(instanceID), err)
		}
		return "", fmt.Errorf("get instance record: %w", err)
	}
	r, err := decode(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", s.key(instanceID), err)
	}
	return domain.InstanceStatus(r.Status), nil
}

func decode(raw string) (record, error) {
	var r record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return record{}, err
	}
	if r.InstanceID == "" {
		return record{}, errors.New("record has no instance_id")
	}
	return r, nil
}
