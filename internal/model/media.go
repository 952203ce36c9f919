package model

import (
	"time"
)

// MediaItem 片单条目，归属于单个用户
// 标题在同一用户的清单内唯一，不同用户之间可以重复
type MediaItem struct {
	MediaID         int       `json:"media_id" gorm:"column:media_id;primaryKey;autoIncrement"`
	UserID          int       `json:"user_id" gorm:"uniqueIndex:idx_media_user_title;not null"`
	Title           string    `json:"title" gorm:"uniqueIndex:idx_media_user_title;not null"`
	MediaType       string    `json:"media_type"`
	Status          string    `json:"status"`
	CurrentProgress *int      `json:"current_progress"`
	Rating          *float64  `json:"rating"`
	Comment         *string   `json:"comment"`
	AddedDate       time.Time `json:"added_date" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (MediaItem) TableName() string {
	return "media_items"
}
