package store

import (
	"fmt"

	"github.com/ThomasPeng8888/streamlit-guppy/utils"

	sheets "google.golang.org/api/sheets/v4"
)

// SheetsTable 以 Google Sheets API 實作 Table。
// 每次操作都即時讀取目前表格內容，程式內不保留任何快取。
type SheetsTable struct {
	srv           *sheets.Service
	spreadsheetID string
	sheetName     string
}

func NewSheetsTable(srv *sheets.Service, spreadsheetID, sheetName string) *SheetsTable {
	return &SheetsTable{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}
}

// values 讀取整張工作表的原始內容。
func (t *SheetsTable) values() ([][]interface{}, error) {
	resp, err := t.srv.Spreadsheets.Values.Get(t.spreadsheetID, t.sheetName).Do()
	if err != nil {
		return nil, fmt.Errorf("讀取工作表 %s 失敗: %w", t.sheetName, err)
	}
	return resp.Values, nil
}

func (t *SheetsTable) Header() ([]string, error) {
	values, err := t.values()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	header := make([]string, 0, len(values[0]))
	for _, cell := range values[0] {
		header = append(header, utils.CleanHeader(cellString(cell)))
	}
	return header, nil
}

func (t *SheetsTable) Records() ([]map[string]string, error) {
	values, err := t.values()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	header := make([]string, 0, len(values[0]))
	for _, cell := range values[0] {
		header = append(header, utils.CleanHeader(cellString(cell)))
	}

	records := make([]map[string]string, 0, len(values)-1)
	for _, row := range values[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = cellString(row[i])
			} else {
				// Sheets 會省略列尾的空白儲存格
				record[name] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func (t *SheetsTable) ColumnValues(col int) ([]string, error) {
	values, err := t.values()
	if err != nil {
		return nil, err
	}
	column := make([]string, 0, len(values))
	for _, row := range values {
		if col-1 < len(row) {
			column = append(column, cellString(row[col-1]))
		} else {
			column = append(column, "")
		}
	}
	return column, nil
}

func (t *SheetsTable) AppendRow(rowValues []string) error {
	row := make([]interface{}, len(rowValues))
	for i, v := range rowValues {
		row[i] = v
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}

	_, err := t.srv.Spreadsheets.Values.
		Append(t.spreadsheetID, t.sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Do()
	if err != nil {
		return fmt.Errorf("新增資料列到 %s 失敗: %w", t.sheetName, err)
	}
	return nil
}

func (t *SheetsTable) UpdateCell(row, col int, value string) error {
	cellRange := fmt.Sprintf("%s!%s%d", t.sheetName, columnLetter(col), row)
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}

	_, err := t.srv.Spreadsheets.Values.
		Update(t.spreadsheetID, cellRange, vr).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("更新儲存格 %s 失敗: %w", cellRange, err)
	}
	return nil
}

// cellString 把 Sheets 回傳的儲存格值統一轉成字串。
// 帳號、密碼等看起來像數字的內容也必須以字串比對。
func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}

// columnLetter 把 1-based 欄號轉成 A1 表示法的欄位字母 (1 → A, 27 → AA)。
func columnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}
