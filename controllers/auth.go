package controllers

import (
	"net/http"

	"github.com/ThomasPeng8888/streamlit-guppy/initializers"
	"github.com/ThomasPeng8888/streamlit-guppy/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Index 首頁：未登入顯示登入/註冊表單，已登入顯示功能入口。
func Index(c *gin.Context) {
	session := sessions.Default(c)
	nickname := session.Get("member_nickname")

	c.HTML(http.StatusOK, "index.html", gin.H{
		"AppName":  initializers.AppName,
		"Logged":   nickname != nil,
		"Nickname": nickname,
	})
}

// Login 會員登入
func Login(c *gin.Context) {
	account := c.PostForm("account")
	password := c.PostForm("password")

	cred := services.NewCredentialService(initializers.MemberTable)
	member, err := cred.Authenticate(account, password)
	if err != nil {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"AppName": initializers.AppName,
			"Logged":  false,
			"Error":   err.Error(),
		})
		return
	}

	session := sessions.Default(c)
	session.Set("member_nickname", member.Nickname)
	session.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

// Register 新會員公開註冊，成功後自動登入
func Register(c *gin.Context) {
	nickname := c.PostForm("nickname")
	account := c.PostForm("account")
	password := c.PostForm("password")

	cred := services.NewCredentialService(initializers.MemberTable)
	member, err := cred.Register(nickname, account, password)
	if err != nil {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"AppName": initializers.AppName,
			"Logged":  false,
			"Error":   err.Error(),
		})
		return
	}

	session := sessions.Default(c)
	session.Set("member_nickname", member.Nickname)
	session.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout 登出會員 (同時清掉管理員狀態)
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(302, "/")
}
