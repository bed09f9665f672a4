package initializers

import (
	"context"
	"log"
	"os"

	"github.com/ThomasPeng8888/streamlit-guppy/store"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

var (
	MemberTable store.Table
	RaffleTable store.Table
)

// ConnectToSheets 以服務帳號連線 Google Sheets，並建立兩張表格的存取器。
// 連不上就直接結束程式，不做重試。
func ConnectToSheets() {
	ctx := context.Background()

	data, err := os.ReadFile(CredentialsFile)
	if err != nil {
		log.Fatal("無法讀取服務帳號憑證檔案: ", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
	if err != nil {
		log.Fatal("服務帳號憑證格式錯誤: ", err)
	}

	srv, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		log.Fatal("無法連接到 Google Sheets，請檢查服務帳號權限: ", err)
	}

	MemberTable = store.NewSheetsTable(srv, MemberSpreadsheetID, MemberSheetName)
	RaffleTable = store.NewSheetsTable(srv, RaffleSpreadsheetID, RaffleSheetName)
}
