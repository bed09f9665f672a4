package store

// Table 是對單一工作表的列/欄存取介面。
// 第一列視為標頭列；列號與欄號皆為 1-based，與 Sheets 的習慣一致。
type Table interface {
	// Header 回傳標頭列 (已清理 BOM 與前後空白)。
	Header() ([]string, error)

	// Records 回傳標頭列以外的所有資料列，
	// 每列是「欄位名稱 → 儲存格字串值」的對照，依列順序排列。
	Records() ([]map[string]string, error)

	// ColumnValues 回傳指定欄的原始字串值，含標頭列。
	ColumnValues(col int) ([]string, error)

	// AppendRow 依目前標頭順序在表格尾端新增一列。
	AppendRow(values []string) error

	// UpdateCell 更新單一儲存格。
	UpdateCell(row, col int, value string) error
}
