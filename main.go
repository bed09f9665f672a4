package main

import (
	"html/template"

	"github.com/ThomasPeng8888/streamlit-guppy/controllers"
	"github.com/ThomasPeng8888/streamlit-guppy/initializers"
	"github.com/ThomasPeng8888/streamlit-guppy/middleware"
	"github.com/ThomasPeng8888/streamlit-guppy/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnvVariables()
	initializers.InitConfig()
	initializers.ConnectToSheets()
}

func main() {
	r := gin.Default()

	// 排行榜樣板需要 inc 計算名次，必須在 LoadHTMLGlob 之前註冊
	r.SetFuncMap(template.FuncMap{
		"inc": utils.Inc,
	})

	store := cookie.NewStore([]byte(initializers.SessionSecret))
	r.Use(sessions.Sessions("mysession", store))
	r.LoadHTMLGlob("templates/*")

	// 公開頁面：登入、註冊
	r.GET("/", controllers.Index)
	r.POST("/login", controllers.Login)
	r.POST("/register", controllers.Register)
	r.GET("/logout", controllers.Logout)

	// 會員專屬頁面
	member := r.Group("/")
	member.Use(middleware.RequireMember)
	{
		member.GET("/leaderboard", controllers.Leaderboard)
		member.GET("/raffle", controllers.RafflePage)
		member.POST("/raffle", controllers.RaffleEnter)
	}

	// 管理員頁面：登入頁本身公開，其餘操作需通過密碼驗證
	r.GET("/admin", controllers.AdminPage)
	r.POST("/admin/login", controllers.AdminLogin)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin)
	{
		admin.POST("/points", controllers.AdjustPoints)
		admin.POST("/members", controllers.CreateMember)
		admin.POST("/draw", controllers.DrawWinners)
	}

	r.Run(":" + initializers.Port)
}
