package controllers

import (
	"net/http"

	"github.com/ThomasPeng8888/streamlit-guppy/initializers"
	"github.com/ThomasPeng8888/streamlit-guppy/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RafflePage 抽獎活動報名表單 (會員專屬)
func RafflePage(c *gin.Context) {
	session := sessions.Default(c)

	c.HTML(http.StatusOK, "raffle.html", gin.H{
		"AppName":  initializers.AppName,
		"Nickname": session.Get("member_nickname"),
	})
}

// RaffleEnter 提交抽獎報名
func RaffleEnter(c *gin.Context) {
	session := sessions.Default(c)
	name := c.PostForm("name")
	email := c.PostForm("email")

	raffle := services.NewRaffleService(initializers.RaffleTable, nil)
	_, err := raffle.Enter(name, email)
	if err != nil {
		c.HTML(http.StatusOK, "raffle.html", gin.H{
			"AppName":  initializers.AppName,
			"Nickname": session.Get("member_nickname"),
			"Error":    err.Error(),
		})
		return
	}

	c.HTML(http.StatusOK, "raffle.html", gin.H{
		"AppName":  initializers.AppName,
		"Nickname": session.Get("member_nickname"),
		"Message":  "報名成功！感謝您的參與！",
	})
}
