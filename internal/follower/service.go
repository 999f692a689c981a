package follower

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"social-service/internal/apperr"
	"social-service/internal/events"
	"social-service/internal/user"
)

type Service interface {
	Follow(ctx context.Context, userID, followerID uint) error
	Unfollow(ctx context.Context, userID, followerID uint) error
	ListFollowers(ctx context.Context, userID uint) (*FollowersResponse, error)
}

type service struct {
	repo     Repository
	users    user.Repository
	cache    *redis.Client
	cacheTTL time.Duration
	producer *events.Producer
}

// NewService wires the follow rules. cache and producer may be nil;
// both are best-effort collaborators.
func NewService(repo Repository, users user.Repository, cache *redis.Client, cacheTTL time.Duration, producer *events.Producer) Service {
	return &service{
		repo:     repo,
		users:    users,
		cache:    cache,
		cacheTTL: cacheTTL,
		producer: producer,
	}
}

func (s *service) Follow(ctx context.Context, userID, followerID uint) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("User not found")
	}
	if userID == followerID {
		return apperr.Conflict("You can't follow yourself")
	}

	already, err := s.repo.Exists(ctx, userID, followerID)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	f := &Follower{UserID: userID, FollowerID: followerID, CreatedAt: time.Now()}
	if err := s.repo.Create(ctx, f); err != nil {
		return err
	}
	s.invalidateCount(ctx, userID)
	s.producer.Publish(ctx, events.FollowerCreated, map[string]uint{
		"userId":     userID,
		"followerId": followerID,
	})
	return nil
}

func (s *service) Unfollow(ctx context.Context, userID, followerID uint) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("User not found")
	}

	deleted, err := s.repo.DeleteByPair(ctx, userID, followerID)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.invalidateCount(ctx, userID)
		s.producer.Publish(ctx, events.FollowerDeleted, map[string]uint{
			"userId":     userID,
			"followerId": followerID,
		})
	}
	return nil
}

func (s *service) ListFollowers(ctx context.Context, userID uint) (*FollowersResponse, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("User not found")
	}

	followers, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, ok := s.cachedCount(ctx, userID)
	if !ok {
		count, err = s.repo.CountByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		s.storeCount(ctx, userID, count)
	}

	content := make([]FollowerData, 0, len(followers))
	for _, f := range followers {
		content = append(content, FollowerData{ID: f.ID, Name: f.Name})
	}
	return &FollowersResponse{FollowerCount: count, Content: content}, nil
}

func countKey(userID uint) string {
	return fmt.Sprintf("followers:count:%d", userID)
}

func (s *service) cachedCount(ctx context.Context, userID uint) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	val, err := s.cache.Get(ctx, countKey(userID)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *service) storeCount(ctx context.Context, userID uint, count int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, countKey(userID), count, s.cacheTTL).Err(); err != nil {
		log.Printf("follower cache set: %v", err)
	}
}

func (s *service) invalidateCount(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, countKey(userID)).Err(); err != nil {
		log.Printf("follower cache del: %v", err)
	}
}
