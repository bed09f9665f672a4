package models

// 「拯救會員管理」表格的必要欄位。
// 欄位順序由 Sheet 的標頭列決定，程式不可假設固定順序。
const (
	ColNickname = "暱稱"
	ColPoints   = "點數"
	ColAccount  = "帳號"
	ColPassword = "密碼"
)

// Member 對應會員表格中的一列。
type Member struct {
	Nickname string `json:"nickname"`
	Points   int    `json:"points"`
	Account  string `json:"account"`
	Password string `json:"-"`

	// Row 是該會員在表格中的列號 (1-based，含標頭列)。
	Row int `json:"-"`
}
