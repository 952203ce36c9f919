package handler

import (
	"github.com/anjui2025/MyMediaTrek/internal/config"
	"github.com/anjui2025/MyMediaTrek/internal/model"
	"github.com/anjui2025/MyMediaTrek/internal/repository"
)

// UserStore 用户存储接口
type UserStore interface {
	Create(username, password string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	CheckPassword(user *model.User, password string) bool
}

// MediaStore 片单存储接口
// 所有操作都必须带上调用者的 userID，这是唯一的租户边界
type MediaStore interface {
	ListByUser(userID int, titleFilter string) ([]model.MediaItem, error)
	Create(item *model.MediaItem) error
	Update(mediaID, userID int, item *model.MediaItem) (int64, error)
	Delete(mediaID, userID int) (int64, error)
}

// Handler HTTP 处理器
type Handler struct {
	Users  UserStore
	Media  MediaStore
	Config *config.Config
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Users:  repos.User,
		Media:  repos.Media,
		Config: cfg,
	}
}
