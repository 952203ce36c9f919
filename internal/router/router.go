package router

import (
	"net/http"

	"github.com/anjui2025/MyMediaTrek/internal/handler"
	"github.com/anjui2025/MyMediaTrek/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ==================== 认证 ====================
		// 注册走管理员密钥，不走 Token
		api.POST("/admin/register", middleware.RequireAdminKey(h.Config.AdminMasterKey), h.AdminRegister)
		api.POST("/login", h.Login)

		// ==================== 片单（需要登录）====================
		media := api.Group("/media")
		media.Use(middleware.RequireAuth(h.Config.JWTSecret))
		{
			media.GET("", h.ListMedia)
			media.POST("", h.CreateMedia)
			media.PUT("/:id", h.UpdateMedia)
			media.DELETE("/:id", h.DeleteMedia)
		}
	}
}
