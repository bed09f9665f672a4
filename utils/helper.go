package utils

import (
	"strconv"
	"strings"
)

// 清理 BOM 與空白
func CleanHeader(h string) string {
	h = strings.ReplaceAll(h, "\uFEFF", "")
	return strings.TrimSpace(h)
}

// 樣板用的加法函式
func Inc(i int) int {
	return i + 1
}

// ParsePoints 把儲存格內容強制轉成整數點數。
// Sheets 可能回傳 "100"、"100.0" 或完全不是數字的內容，非數字一律視為 0。
func ParsePoints(cell string) int {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return int(f)
	}
	return 0
}
