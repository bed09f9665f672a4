package models

// 「抽獎名單」表格的必要欄位。
// 「是否中獎」欄位須事先手動建立，程式不會自動新增。
const (
	ColRaffleName  = "姓名"
	ColRaffleEmail = "電子郵件"
	ColRaffleWon   = "是否中獎"

	// WinnerMark 是中獎註記的字面值，寫入後該參與者永久退出抽獎池。
	WinnerMark = "是"
)

// RaffleEntrant 對應抽獎名單中的一列。
type RaffleEntrant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Won   string `json:"won"`

	// Row 是該參與者在表格中的列號 (1-based，含標頭列)。
	Row int `json:"-"`
}
