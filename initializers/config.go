package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	AppName             string
	AdminPassword       string
	SessionSecret       string
	CredentialsFile     string
	MemberSpreadsheetID string
	MemberSheetName     string
	RaffleSpreadsheetID string
	RaffleSheetName     string
	Port                string
)

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Println("找不到 .env 檔案，使用系統環境變數")
	}
}

func InitConfig() {
	AppName = os.Getenv("APP_NAME")
	if AppName == "" {
		AppName = "拯救會員管理系統"
	}

	// 管理員頁面使用單一共用密碼，不是個別帳號
	AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if AdminPassword == "" {
		log.Println("警告：未設定 ADMIN_PASSWORD，管理員頁面將無法登入")
	}

	SessionSecret = os.Getenv("SESSION_SECRET")
	CredentialsFile = os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE")

	MemberSpreadsheetID = os.Getenv("MEMBER_SPREADSHEET_ID")
	MemberSheetName = getenvOr("MEMBER_SHEET_NAME", "工作表1")
	RaffleSpreadsheetID = os.Getenv("RAFFLE_SPREADSHEET_ID")
	RaffleSheetName = getenvOr("RAFFLE_SHEET_NAME", "工作表1")

	Port = getenvOr("PORT", "8080")
}

func getenvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
