package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the per-endpoint rate limiter. Ctx is the
// long-lived context its bookkeeping calls run on.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis dials the instance named by REDIS_URL and verifies it
// with a ping. Startup aborts without Redis: every rate-limited route
// depends on it.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, falling back to", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ invalid REDIS_URL: %v", err)
	}
	opt.ClientName = "greendesk-backend"

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	log.Println("✅ Redis connected")
}
