package model

import (
	"time"
)

// User 用户模型
type User struct {
	UserID       int       `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
