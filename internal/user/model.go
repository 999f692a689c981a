package user

import "time"

type User struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Age       int
	CreatedAt time.Time
}

func (User) TableName() string { return "users" }
