package controllers

import (
	"net/http"

	"github.com/ThomasPeng8888/streamlit-guppy/initializers"
	"github.com/ThomasPeng8888/streamlit-guppy/models"
	"github.com/ThomasPeng8888/streamlit-guppy/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Leaderboard 會員點數排行榜 (會員專屬)
func Leaderboard(c *gin.Context) {
	session := sessions.Default(c)
	nickname := session.Get("member_nickname")

	ledger := services.NewLedgerService(initializers.MemberTable)
	members, err := ledger.Leaderboard()
	if err != nil {
		c.String(http.StatusInternalServerError, "讀取排行榜時發生錯誤：%v", err)
		return
	}

	// 前三名另外呈現
	var top3 []models.Member
	if len(members) >= 3 {
		top3 = members[:3]
	}

	c.HTML(http.StatusOK, "leaderboard.html", gin.H{
		"AppName":  initializers.AppName,
		"Nickname": nickname,
		"Members":  members,
		"Top3":     top3,
	})
}
