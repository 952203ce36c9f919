package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdminKey 管理员密钥中间件
// 密钥从 X-Admin-Key 头读取，先于任何业务校验执行
func RequireAdminKey(masterKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(masterKey)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"msg": "Forbidden: 密钥错误，没有权限建立账号"})
			c.Abort()
			return
		}
		c.Next()
	}
}
