package post

import (
	"context"
	"time"

	"social-service/internal/apperr"
	"social-service/internal/events"
	"social-service/internal/follower"
	"social-service/internal/user"
)

type Service interface {
	Create(ctx context.Context, userID uint, text string) (*Post, error)
	ListVisible(ctx context.Context, userID uint, followerID *uint) ([]Post, error)
}

type service struct {
	repo      Repository
	users     user.Repository
	followers follower.Repository
	producer  *events.Producer
}

func NewService(repo Repository, users user.Repository, followers follower.Repository, producer *events.Producer) Service {
	return &service{
		repo:      repo,
		users:     users,
		followers: followers,
		producer:  producer,
	}
}

func (s *service) Create(ctx context.Context, userID uint, text string) (*Post, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("User not found")
	}

	p := &Post{UserID: userID, Text: text, CreatedAt: time.Now()}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.producer.Publish(ctx, events.PostCreated, map[string]any{
		"postId": p.ID,
		"userId": userID,
	})
	return p, nil
}

// ListVisible applies the visibility rule. The checks run in a fixed
// order so the caller sees the existence failure before any hint of the
// follow relationship: user exists, header present, follower exists,
// follower actually follows the user.
func (s *service) ListVisible(ctx context.Context, userID uint, followerID *uint) ([]Post, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("User not found")
	}

	if followerID == nil {
		return nil, apperr.BadRequest("You forgot the header followerId")
	}

	followerExists, err := s.users.Exists(ctx, *followerID)
	if err != nil {
		return nil, err
	}
	if !followerExists {
		return nil, apperr.BadRequest("Nonexistent followerId")
	}

	follows, err := s.followers.Exists(ctx, userID, *followerID)
	if err != nil {
		return nil, err
	}
	if !follows {
		return nil, apperr.Forbidden("You can't see these posts")
	}

	return s.repo.ListByUser(ctx, userID)
}
