package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/anjui2025/MyMediaTrek/internal/middleware"
	"github.com/anjui2025/MyMediaTrek/internal/model"
	"github.com/anjui2025/MyMediaTrek/internal/repository"
	"github.com/anjui2025/MyMediaTrek/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// mediaRequest 新增和更新共用的请求体
type mediaRequest struct {
	Title     string   `json:"title" binding:"required"`
	MediaType string   `json:"media_type" binding:"required"`
	Status    string   `json:"status" binding:"required"`
	Progress  *int     `json:"progress"`
	Rating    *float64 `json:"rating"`
	Comment   *string  `json:"comment"`
}

// toModel 组装条目，归属交给调用方传入的 userID
func (req *mediaRequest) toModel(userID int) *model.MediaItem {
	return &model.MediaItem{
		UserID:          userID,
		Title:           req.Title,
		MediaType:       req.MediaType,
		Status:          req.Status,
		CurrentProgress: req.Progress,
		Rating:          req.Rating,
		Comment:         req.Comment,
	}
}

// bindMediaRequest 解析请求体，校验失败时直接写好响应
func bindMediaRequest(c *gin.Context) (*mediaRequest, bool) {
	var req mediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			utils.APIError(c, http.StatusBadRequest, "title、media_type、status 为必填字段")
			return nil, false
		}
		utils.APIError(c, http.StatusBadRequest, "请求格式错误")
		return nil, false
	}
	return &req, true
}

// ListMedia 查询清单，q 参数做不分大小写的标题子串匹配
func (h *Handler) ListMedia(c *gin.Context) {
	userID := middleware.GetUserID(c)

	items, err := h.Media.ListByUser(userID, c.Query("q"))
	if err != nil {
		log.Printf("查询清单失败: %v", err)
		utils.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   items,
	})
}

// CreateMedia 新增条目，同名条目返回 409
func (h *Handler) CreateMedia(c *gin.Context) {
	userID := middleware.GetUserID(c)

	req, ok := bindMediaRequest(c)
	if !ok {
		return
	}

	item := req.toModel(userID)
	if err := h.Media.Create(item); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			utils.APIError(c, http.StatusConflict, fmt.Sprintf("《%s》已经在你的清单里了", req.Title))
			return
		}
		log.Printf("新增条目失败: %v", err)
		utils.InternalError(c)
		return
	}

	utils.APISuccess(c, http.StatusCreated, "新增成功", gin.H{"media_id": item.MediaID})
}

// UpdateMedia 更新条目
// 条目不存在和不属于当前用户统一返回 404，不暴露别人清单里有什么
func (h *Handler) UpdateMedia(c *gin.Context) {
	userID := middleware.GetUserID(c)

	mediaID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.APIError(c, http.StatusNotFound, "更新失败 (找不到或无权限)")
		return
	}

	req, ok := bindMediaRequest(c)
	if !ok {
		return
	}

	rows, err := h.Media.Update(mediaID, userID, req.toModel(userID))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			utils.APIError(c, http.StatusConflict, fmt.Sprintf("《%s》已经在你的清单里了", req.Title))
			return
		}
		log.Printf("更新条目失败: %v", err)
		utils.InternalError(c)
		return
	}
	if rows == 0 {
		utils.APIError(c, http.StatusNotFound, "更新失败 (找不到或无权限)")
		return
	}

	utils.APISuccess(c, http.StatusOK, "更新成功", nil)
}

// DeleteMedia 删除条目，404 语义同更新
func (h *Handler) DeleteMedia(c *gin.Context) {
	userID := middleware.GetUserID(c)

	mediaID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.APIError(c, http.StatusNotFound, "删除失败 (找不到或无权限)")
		return
	}

	rows, err := h.Media.Delete(mediaID, userID)
	if err != nil {
		log.Printf("删除条目失败: %v", err)
		utils.InternalError(c)
		return
	}
	if rows == 0 {
		utils.APIError(c, http.StatusNotFound, "删除失败 (找不到或无权限)")
		return
	}

	utils.APISuccess(c, http.StatusOK, "删除成功", nil)
}
