package migrate

import (
	"gorm.io/gorm"

	"social-service/internal/follower"
	"social-service/internal/post"
	"social-service/internal/user"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&post.Post{},
		&follower.Follower{},
	)
}
