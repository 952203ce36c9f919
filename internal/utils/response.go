package utils

import (
	"github.com/gin-gonic/gin"
)

// Msg 返回 {"msg": ...} 形式的响应，认证和注册接口使用
func Msg(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"msg": message})
}

// APIError 返回 {"status": "error", "message": ...} 形式的错误响应
func APIError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}

// APISuccess 返回 {"status": "success", "message": ...} 并附加额外字段
func APISuccess(c *gin.Context, code int, message string, extra gin.H) {
	body := gin.H{
		"status":  "success",
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

// InternalError 返回通用 500，不向外透出存储层细节
func InternalError(c *gin.Context) {
	APIError(c, 500, "服务器内部错误")
}
