package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/models"
)

const userCacheTTL = 5 * time.Minute

// UserCache keeps recently read users in Redis so repeated lookups skip the
// write store. It is strictly best-effort: a cache failure is logged and the
// caller falls through to Postgres.
type UserCache struct {
	client *redis.Client
}

func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func (c *UserCache) Get(ctx context.Context, id int64) (*models.User, bool) {
	data, err := c.client.Get(ctx, userCacheKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (c *UserCache) Set(ctx context.Context, user *models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, userCacheKey(user.ID), data, userCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache user %d: %v", user.ID, err)
	}
}

func (c *UserCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, userCacheKey(id)).Err(); err != nil {
		log.Printf("Failed to invalidate user %d: %v", id, err)
	}
}
