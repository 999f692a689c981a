package post

import "time"

type Post struct {
	ID        uint `gorm:"primaryKey"`
	Text      string
	UserID    uint `gorm:"index"`
	CreatedAt time.Time
}

func (Post) TableName() string { return "posts" }
