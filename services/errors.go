package services

import (
	"errors"
	"fmt"
	"strings"
)

// 使用者可自行修正的錯誤，由 controller 直接顯示訊息，不寫入任何資料。
var (
	ErrMissingField       = errors.New("必填欄位不可空白")
	ErrInvalidCredentials = errors.New("帳號或密碼錯誤")
	ErrDuplicateNickname  = errors.New("此暱稱已被使用，請選擇其他暱稱")
	ErrDuplicateAccount   = errors.New("此帳號已被使用，請選擇其他帳號")
	ErrDuplicateEmail     = errors.New("您使用的電子郵件已報名過，請勿重複提交")
	ErrMemberNotFound     = errors.New("找不到指定的會員")
	ErrNegativeBalance    = errors.New("點數不能為負數，請重新輸入")
	ErrInvalidCount       = errors.New("抽獎人數必須大於 0")
	ErrEmptyPool          = errors.New("目前沒有任何合格的參與者，所有人都已經中過獎")
)

// MissingColumnError 表示表格標頭缺少必要欄位。
// 這屬於表格結構問題，操作整個中止，不會有部分寫入。
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("表格缺少必要的欄位: %s", strings.Join(e.Columns, "、"))
}

// missingColumns 比對標頭與必要欄位，回傳缺少的欄位 (維持 required 的順序)。
func missingColumns(header []string, required ...string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// columnIndexOf 回傳欄位名稱在標頭中的 0-based 位置，找不到回傳 -1。
func columnIndexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
