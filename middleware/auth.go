package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireMember 確保使用者已登入會員
func RequireMember(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("member_nickname") == nil {
		c.Redirect(302, "/")
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdmin 確保使用者已通過管理員密碼驗證
func RequireAdmin(c *gin.Context) {
	session := sessions.Default(c)
	if admin, ok := session.Get("is_admin").(bool); !ok || !admin {
		c.Redirect(302, "/admin")
		c.Abort()
		return
	}
	c.Next()
}
