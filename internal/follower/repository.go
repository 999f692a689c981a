package follower

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"social-service/internal/user"
)

type Repository interface {
	Create(ctx context.Context, f *Follower) error
	Exists(ctx context.Context, userID, followerID uint) (bool, error)
	DeleteByPair(ctx context.Context, userID, followerID uint) (int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	ListByUser(ctx context.Context, userID uint) ([]user.User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts the edge, relying on the (user_id, follower_id) unique
// index to swallow a concurrent duplicate.
func (r *repository) Create(ctx context.Context, f *Follower) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "follower_id"}},
			DoNothing: true,
		}).
		Create(f).Error
}

func (r *repository) Exists(ctx context.Context, userID, followerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Follower{}).
		Where("user_id = ? AND follower_id = ?", userID, followerID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DeleteByPair(ctx context.Context, userID, followerID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND follower_id = ?", userID, followerID).
		Delete(&Follower{})
	return result.RowsAffected, result.Error
}

func (r *repository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Follower{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]user.User, error) {
	var users []user.User
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.*").
		Joins("JOIN followers ON followers.follower_id = users.id").
		Where("followers.user_id = ?", userID).
		Order("followers.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
