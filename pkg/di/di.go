// pkg/di/di.go
package di

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"social-service/configs"
	"social-service/internal/events"
	"social-service/internal/follower"
	"social-service/internal/post"
	"social-service/internal/shared/db"
	"social-service/internal/user"
)

type Container struct {
	DB       *gorm.DB
	Cache    *redis.Client
	Producer *events.Producer

	UserService     user.Service
	PostService     post.Service
	FollowerService follower.Service
}

func BuildContainer(cfg *configs.Config) *Container {
	// 1) Open DB connection
	dbConn := db.Open(cfg)

	// 2) Optional collaborators: cache and event producer
	cache := newCache(cfg)
	producer := events.NewProducer(cfg.KafkaBrokerURL, cfg.KafkaTopic)

	// 3) Build repositories & services
	userRepo := user.NewRepository(dbConn)
	userService := user.NewService(userRepo)

	followerRepo := follower.NewRepository(dbConn)
	followerService := follower.NewService(followerRepo, userRepo, cache, cfg.CacheTTL, producer)

	postRepo := post.NewRepository(dbConn)
	postService := post.NewService(postRepo, userRepo, followerRepo, producer)

	// 4) Return container
	return &Container{
		DB:              dbConn,
		Cache:           cache,
		Producer:        producer,
		UserService:     userService,
		PostService:     postService,
		FollowerService: followerService,
	}
}

func newCache(cfg *configs.Config) *redis.Client {
	if cfg.RedisHost == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPass,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Counts fall through to the database without the cache.
		log.Printf("redis ping failed, running without cache: %v", err)
		return nil
	}
	return rdb
}
