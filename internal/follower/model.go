package follower

import "time"

// Follower is a directed edge: FollowerID follows UserID.
// The composite unique index keeps the pair single even under
// concurrent follow requests.
type Follower struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"uniqueIndex:idx_user_follower"`
	FollowerID uint `gorm:"uniqueIndex:idx_user_follower"`
	CreatedAt  time.Time
}

func (Follower) TableName() string { return "followers" }
