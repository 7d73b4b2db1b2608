package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	config "github.com/Sunilkumar09281/mutual-learn-space/configs"
	"github.com/Sunilkumar09281/mutual-learn-space/models"
	"github.com/redis/go-redis/v9"
)

// Profiles caches the last-known profile JSON per user so profile reads skip
// the database on the hot path. It is never authoritative: any miss or decode
// failure falls through to Postgres.
var Profiles *ProfileCache

const profileTTL = 24 * time.Hour

func Connect() {
	rdb := redis.NewClient(&redis.Options{
		Addr: config.Config("REDIS_ADDR"),
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️ Redis unavailable, profile cache disabled: %v", err)
		return
	}
	Profiles = &ProfileCache{client: rdb}
	log.Println("✅ Redis connected successfully")
}

type ProfileCache struct {
	client *redis.Client
}

func (c *ProfileCache) Save(ctx context.Context, user *models.User) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, "profile:"+user.ID.String(), payload, profileTTL).Err(); err != nil {
		log.Printf("Failed to cache profile %s: %v", user.ID, err)
	}
}

func (c *ProfileCache) Get(ctx context.Context, userID string) (*models.User, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, "profile:"+userID).Result()
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (c *ProfileCache) Delete(ctx context.Context, userID string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, "profile:"+userID).Err(); err != nil {
		log.Printf("Failed to evict cached profile %s: %v", userID, err)
	}
}
