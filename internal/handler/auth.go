package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/anjui2025/MyMediaTrek/internal/middleware"
	"github.com/anjui2025/MyMediaTrek/internal/repository"
	"github.com/anjui2025/MyMediaTrek/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// credentialsRequest 注册和登录共用的请求体
type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminRegister 管理员建立账号（密钥校验在 RequireAdminKey 中间件里）
func (h *Handler) AdminRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			utils.Msg(c, http.StatusBadRequest, "账号或密码不能为空")
			return
		}
		utils.Msg(c, http.StatusBadRequest, "请求格式错误")
		return
	}

	user, err := h.Users.Create(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			utils.Msg(c, http.StatusConflict, "账号已存在")
			return
		}
		log.Printf("创建用户失败: %v", err)
		utils.Msg(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}

	utils.Msg(c, http.StatusCreated, fmt.Sprintf("用户 %s 建立成功 (ID: %d)", user.Username, user.UserID))
}

// Login 用户登录，成功返回 access_token
// 账号不存在和密码错误返回同一个 401，不暴露账号是否存在
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Msg(c, http.StatusUnauthorized, "账号或密码错误")
		return
	}

	user, err := h.Users.FindByUsername(req.Username)
	if err != nil {
		log.Printf("查询用户失败: %v", err)
		utils.Msg(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}

	// user 为 nil 时 CheckPassword 也会跑一次哈希比对
	if !h.Users.CheckPassword(user, req.Password) {
		utils.Msg(c, http.StatusUnauthorized, "账号或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.UserID, user.Username, h.Config.JWTSecret, h.Config.JWTExpiry)
	if err != nil {
		log.Printf("生成 Token 失败: %v", err)
		utils.Msg(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"username":     user.Username,
	})
}
