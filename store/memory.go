package store

import (
	"errors"

	"github.com/ThomasPeng8888/streamlit-guppy/utils"
)

// MemoryTable 是 Table 的記憶體實作，供測試與離線開發使用。
// 行為對齊 SheetsTable：第一列是標頭，列/欄號皆為 1-based。
type MemoryTable struct {
	rows [][]string
}

func NewMemoryTable(rows [][]string) *MemoryTable {
	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = append([]string(nil), row...)
	}
	return &MemoryTable{rows: copied}
}

func (t *MemoryTable) Header() ([]string, error) {
	if len(t.rows) == 0 {
		return nil, nil
	}
	header := make([]string, len(t.rows[0]))
	for i, cell := range t.rows[0] {
		header[i] = utils.CleanHeader(cell)
	}
	return header, nil
}

func (t *MemoryTable) Records() ([]map[string]string, error) {
	header, err := t.Header()
	if err != nil || header == nil {
		return nil, err
	}
	records := make([]map[string]string, 0, len(t.rows)-1)
	for _, row := range t.rows[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func (t *MemoryTable) ColumnValues(col int) ([]string, error) {
	column := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		if col-1 < len(row) {
			column = append(column, row[col-1])
		} else {
			column = append(column, "")
		}
	}
	return column, nil
}

func (t *MemoryTable) AppendRow(values []string) error {
	t.rows = append(t.rows, append([]string(nil), values...))
	return nil
}

func (t *MemoryTable) UpdateCell(row, col int, value string) error {
	if row < 1 || row > len(t.rows) {
		return errors.New("列號超出範圍")
	}
	r := t.rows[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = value
	t.rows[row-1] = r
	return nil
}

// RowCount 回傳含標頭在內的列數，測試用。
func (t *MemoryTable) RowCount() int {
	return len(t.rows)
}

// Row 回傳指定列的複本 (1-based)，測試用。
func (t *MemoryTable) Row(row int) []string {
	if row < 1 || row > len(t.rows) {
		return nil
	}
	return append([]string(nil), t.rows[row-1]...)
}
