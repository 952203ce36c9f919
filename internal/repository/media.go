package repository

import (
	"errors"

	"github.com/anjui2025/MyMediaTrek/internal/model"
	"gorm.io/gorm"
)

// ErrDuplicateTitle 同一用户的清单里已存在同名条目
var ErrDuplicateTitle = errors.New("清单里已存在同名条目")

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// ListByUser 获取用户的清单，titleFilter 非空时做不分大小写的子串匹配
// 按添加时间倒序
func (r *MediaRepository) ListByUser(userID int, titleFilter string) ([]model.MediaItem, error) {
	items := make([]model.MediaItem, 0)
	q := r.db.Where("user_id = ?", userID)
	if titleFilter != "" {
		q = q.Where("title ILIKE ?", "%"+titleFilter+"%")
	}
	err := q.Order("added_date DESC").Find(&items).Error
	return items, err
}

// Create 新增条目
// 查重和插入放在同一个事务里，配合 (user_id, title) 唯一索引兜底，
// 并发创建同名条目时只会成功一条
func (r *MediaRepository) Create(item *model.MediaItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.MediaItem{}).
			Where("user_id = ? AND title = ?", item.UserID, item.Title).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateTitle
		}

		if err := tx.Create(item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTitle
			}
			return err
		}
		return nil
	})
}

// Update 更新条目，同时用 media_id 和 user_id 过滤
// 返回受影响行数，0 表示条目不存在或不属于该用户
func (r *MediaRepository) Update(mediaID, userID int, item *model.MediaItem) (int64, error) {
	res := r.db.Model(&model.MediaItem{}).
		Where("media_id = ? AND user_id = ?", mediaID, userID).
		Updates(map[string]interface{}{
			"title":            item.Title,
			"media_type":       item.MediaType,
			"status":           item.Status,
			"current_progress": item.CurrentProgress,
			"rating":           item.Rating,
			"comment":          item.Comment,
		})
	if res.Error != nil {
		// 改名撞上同一用户的既有标题，唯一索引会拦下来
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateTitle
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Delete 删除条目，同时用 media_id 和 user_id 过滤
// 返回受影响行数，0 表示条目不存在或不属于该用户
func (r *MediaRepository) Delete(mediaID, userID int) (int64, error) {
	res := r.db.Where("media_id = ? AND user_id = ?", mediaID, userID).
		Delete(&model.MediaItem{})
	return res.RowsAffected, res.Error
}
