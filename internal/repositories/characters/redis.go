package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	sheeterr "github.com/KirkDiggler/dnd-character-sheet/internal/errors"
	"github.com/redis/go-redis/v9"
)

const ownersKey = "characters:owners"

// Data is the serialized form of a snapshot in Redis
type Data struct {
	OwnerID    string                   `json:"owner_id"`
	Attributes map[shared.Attribute]int `json:"attributes"`
	Skills     map[string]int           `json:"skills"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// NewRedisRepository creates a Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = realTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

func (r *redisRepo) key(ownerID string) string {
	return fmt.Sprintf("character:%s", ownerID)
}

func (r *redisRepo) Load(ctx context.Context, ownerID string) (*character.Snapshot, error) {
	if ownerID == "" {
		return nil, sheeterr.InvalidArgument("owner ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(ownerID)).Bytes()
	if err == redis.Nil {
		return nil, sheeterr.NotFoundf("no character stored for owner '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}
	if err != nil {
		return nil, sheeterr.Unavailable(err, "failed to get character").WithMeta("owner_id", ownerID)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, sheeterr.WrapWithCode(err, sheeterr.CodeValidation, "failed to unmarshal character").
			WithMeta("owner_id", ownerID)
	}
	if data.Attributes == nil || data.Skills == nil {
		return nil, sheeterr.Validation("stored character is missing attributes or skills").
			WithMeta("owner_id", ownerID)
	}

	return &character.Snapshot{
		Attributes: data.Attributes,
		Skills:     data.Skills,
	}, nil
}

func (r *redisRepo) Save(ctx context.Context, ownerID string, snapshot *character.Snapshot) error {
	if ownerID == "" {
		return sheeterr.InvalidArgument("owner ID is required")
	}
	if snapshot == nil {
		return sheeterr.InvalidArgument("snapshot cannot be nil")
	}

	data := Data{
		OwnerID:    ownerID,
		Attributes: snapshot.Attributes,
		Skills:     snapshot.Skills,
		UpdatedAt:  r.timeProvider.Now(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return sheeterr.Wrap(err, "failed to marshal character")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(ownerID), string(jsonData), 0)
	pipe.SAdd(ctx, ownersKey, ownerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return sheeterr.Unavailable(err, "failed to save character").WithMeta("owner_id", ownerID)
	}

	return nil
}

func (r *redisRepo) ListOwners(ctx context.Context) ([]string, error) {
	owners, err := r.client.SMembers(ctx, ownersKey).Result()
	if err != nil {
		return nil, sheeterr.Unavailable(err, "failed to list owners")
	}
	sort.Strings(owners)
	return owners, nil
}
