package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ThomasPeng8888/streamlit-guppy/initializers"
	"github.com/ThomasPeng8888/streamlit-guppy/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AdminPage 管理員控制台：未登入顯示密碼表單，
// 已登入顯示點數管理、抽獎管理與新增會員三個區塊。
func AdminPage(c *gin.Context) {
	session := sessions.Default(c)
	if admin, ok := session.Get("is_admin").(bool); !ok || !admin {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"AppName": initializers.AppName,
		})
		return
	}

	ledger := services.NewLedgerService(initializers.MemberTable)
	members, err := ledger.Leaderboard()
	if err != nil {
		c.String(http.StatusInternalServerError, "讀取會員列表時發生錯誤：%v", err)
		return
	}

	raffle := services.NewRaffleService(initializers.RaffleTable, nil)
	eligible, err := raffle.Eligible()
	var raffleError string
	if err != nil {
		// 缺少「是否中獎」欄位時仍顯示其餘管理功能，只提示抽獎區塊異常
		raffleError = err.Error()
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"AppName":     initializers.AppName,
		"Members":     members,
		"Eligible":    eligible,
		"RaffleError": raffleError,
		"Message":     c.Query("msg"),
	})
}

// AdminLogin 管理員登入，比對共用密碼
func AdminLogin(c *gin.Context) {
	password := c.PostForm("password")
	if password == "" || password != initializers.AdminPassword {
		c.HTML(http.StatusForbidden, "admin_login.html", gin.H{
			"AppName": initializers.AppName,
			"Error":   "密碼錯誤。",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("is_admin", true)
	session.Save()
	c.Redirect(http.StatusSeeOther, "/admin")
}

// AdjustPoints 增減指定會員的點數
func AdjustPoints(c *gin.Context) {
	nickname := c.PostForm("nickname")
	delta, err := strconv.Atoi(c.PostForm("delta"))
	if err != nil {
		c.String(http.StatusBadRequest, "點數異動必須是整數。")
		return
	}

	ledger := services.NewLedgerService(initializers.MemberTable)
	newPoints, err := ledger.Adjust(nickname, delta)
	if err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return
	}

	c.Redirect(http.StatusSeeOther,
		"/admin?msg="+url.QueryEscape("已將會員 "+nickname+" 的點數更新為 "+strconv.Itoa(newPoints)))
}

// CreateMember 管理員手動新增會員，不做自動登入
func CreateMember(c *gin.Context) {
	nickname := c.PostForm("nickname")
	account := c.PostForm("account")
	password := c.PostForm("password")

	cred := services.NewCredentialService(initializers.MemberTable)
	member, err := cred.Register(nickname, account, password)
	if err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return
	}

	c.Redirect(http.StatusSeeOther,
		"/admin?msg="+url.QueryEscape("會員 "+member.Nickname+" 創建成功！帳號："+member.Account))
}

// DrawWinners 抽出得獎者並註記中獎狀態
func DrawWinners(c *gin.Context) {
	count, err := strconv.Atoi(c.PostForm("count"))
	if err != nil {
		c.String(http.StatusBadRequest, "抽獎人數必須是整數。")
		return
	}

	// 開獎前的固定停頓，純粹為了抽獎的儀式感
	time.Sleep(2 * time.Second)

	raffle := services.NewRaffleService(initializers.RaffleTable, nil)
	winners, err := raffle.Draw(count)
	if err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return
	}

	skipped, err := raffle.CommitWinners(winners)
	if err != nil {
		c.String(http.StatusInternalServerError, "更新中獎狀態時發生錯誤：%v", err)
		return
	}

	c.HTML(http.StatusOK, "winners.html", gin.H{
		"AppName": initializers.AppName,
		"Winners": winners,
		"Skipped": skipped,
	})
}
