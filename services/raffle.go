package services

import (
	"math/rand"
	"time"

	"github.com/ThomasPeng8888/streamlit-guppy/models"
	"github.com/ThomasPeng8888/streamlit-guppy/store"

	log "github.com/sirupsen/logrus"
)

// RaffleService 負責抽獎報名、合格名單過濾、抽出得獎者與中獎註記。
type RaffleService struct {
	entrants store.Table
	rng      *rand.Rand
}

// NewRaffleService 建立抽獎服務。rng 傳 nil 時以目前時間作種子；
// 測試可注入固定種子的亂數來源。
func NewRaffleService(entrants store.Table, rng *rand.Rand) *RaffleService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RaffleService{entrants: entrants, rng: rng}
}

// Enter 報名抽獎。同一個電子郵件只能報名一次 (區分大小寫的完全比對)。
func (s *RaffleService) Enter(name, email string) (*models.RaffleEntrant, error) {
	if name == "" || email == "" {
		return nil, ErrMissingField
	}

	header, err := s.entrants.Header()
	if err != nil {
		return nil, err
	}
	emailIdx := columnIndexOf(header, models.ColRaffleEmail)
	if emailIdx < 0 {
		return nil, &MissingColumnError{Columns: []string{models.ColRaffleEmail}}
	}

	// 以原始欄位值檢查重複報名 (跳過標頭列)
	emails, err := s.entrants.ColumnValues(emailIdx + 1)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(emails); i++ {
		if emails[i] == email {
			return nil, ErrDuplicateEmail
		}
	}

	dataMap := map[string]string{
		models.ColRaffleName:  name,
		models.ColRaffleEmail: email,
		models.ColRaffleWon:   "",
	}
	row := make([]string, 0, len(header))
	for _, colName := range header {
		row = append(row, dataMap[colName])
	}
	if err := s.entrants.AppendRow(row); err != nil {
		return nil, err
	}
	log.Infof("抽獎報名成功: %s (%s)", name, email)

	return &models.RaffleEntrant{Name: name, Email: email}, nil
}

// Eligible 回傳尚未中獎的參與者。
// 「是否中獎」欄位必須已存在於表格標頭，否則回傳 MissingColumnError。
func (s *RaffleService) Eligible() ([]models.RaffleEntrant, error) {
	header, err := s.entrants.Header()
	if err != nil {
		return nil, err
	}
	if columnIndexOf(header, models.ColRaffleWon) < 0 {
		return nil, &MissingColumnError{Columns: []string{models.ColRaffleWon}}
	}

	records, err := s.entrants.Records()
	if err != nil {
		return nil, err
	}

	var eligible []models.RaffleEntrant
	for i, record := range records {
		if record[models.ColRaffleWon] == models.WinnerMark {
			continue
		}
		eligible = append(eligible, models.RaffleEntrant{
			Name:  record[models.ColRaffleName],
			Email: record[models.ColRaffleEmail],
			Won:   record[models.ColRaffleWon],
			Row:   i + 2,
		})
	}
	return eligible, nil
}

// Draw 從合格名單中不重複地均勻抽出 min(k, 名單人數) 位得獎者。
// 抽出結果尚未寫回表格，需再呼叫 CommitWinners 註記。
func (s *RaffleService) Draw(k int) ([]models.RaffleEntrant, error) {
	if k <= 0 {
		return nil, ErrInvalidCount
	}

	pool, err := s.Eligible()
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	n := k
	if n > len(pool) {
		n = len(pool)
	}

	winners := make([]models.RaffleEntrant, 0, n)
	for _, idx := range s.rng.Perm(len(pool))[:n] {
		winners = append(winners, pool[idx])
	}
	return winners, nil
}

// CommitWinners 把每位得獎者的「是否中獎」欄位註記為中獎。
// 依原始電子郵件欄位逐列比對找出所在列；找不到的得獎者記一筆警告後跳過，
// 其餘得獎者照常註記 (接受部分成功)。回傳被跳過的電子郵件清單。
func (s *RaffleService) CommitWinners(winners []models.RaffleEntrant) ([]string, error) {
	header, err := s.entrants.Header()
	if err != nil {
		return nil, err
	}
	wonIdx := columnIndexOf(header, models.ColRaffleWon)
	emailIdx := columnIndexOf(header, models.ColRaffleEmail)
	if wonIdx < 0 || emailIdx < 0 {
		return nil, &MissingColumnError{Columns: missingColumns(header, models.ColRaffleEmail, models.ColRaffleWon)}
	}

	emails, err := s.entrants.ColumnValues(emailIdx + 1)
	if err != nil {
		return nil, err
	}

	var skipped []string
	for _, winner := range winners {
		row := 0
		for i := 1; i < len(emails); i++ {
			if emails[i] == winner.Email {
				row = i + 1
				break
			}
		}
		if row == 0 {
			log.Warnf("找不到電子郵件為 %s 的參與者，無法更新狀態", winner.Email)
			skipped = append(skipped, winner.Email)
			continue
		}
		if err := s.entrants.UpdateCell(row, wonIdx+1, models.WinnerMark); err != nil {
			return skipped, err
		}
		log.Infof("已註記得獎者: %s (%s)", winner.Name, winner.Email)
	}
	return skipped, nil
}
