package services

import (
	"sort"
	"strconv"

	"github.com/ThomasPeng8888/streamlit-guppy/models"
	"github.com/ThomasPeng8888/streamlit-guppy/store"
	"github.com/ThomasPeng8888/streamlit-guppy/utils"

	log "github.com/sirupsen/logrus"
)

// LedgerService 負責會員點數的讀取、排行與增減。
type LedgerService struct {
	members store.Table
}

func NewLedgerService(members store.Table) *LedgerService {
	return &LedgerService{members: members}
}

// Leaderboard 回傳依點數由高到低排序的會員列表。
// 點數相同的會員維持表格內原本的先後順序 (穩定排序)。
func (s *LedgerService) Leaderboard() ([]models.Member, error) {
	records, err := s.members.Records()
	if err != nil {
		return nil, err
	}

	members := make([]models.Member, 0, len(records))
	for i, record := range records {
		members = append(members, models.Member{
			Nickname: record[models.ColNickname],
			Points:   utils.ParsePoints(record[models.ColPoints]),
			Account:  record[models.ColAccount],
			Row:      i + 2,
		})
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Points > members[j].Points
	})
	return members, nil
}

// Adjust 把指定會員的點數加上 delta (可為負數)，回傳更新後的點數。
// 結果為負時拒絕調整，不寫入任何儲存格。
func (s *LedgerService) Adjust(nickname string, delta int) (int, error) {
	header, err := s.members.Header()
	if err != nil {
		return 0, err
	}
	pointsIdx := columnIndexOf(header, models.ColPoints)
	nicknameIdx := columnIndexOf(header, models.ColNickname)
	if pointsIdx < 0 || nicknameIdx < 0 {
		return 0, &MissingColumnError{Columns: missingColumns(header, models.ColNickname, models.ColPoints)}
	}

	// 掃描暱稱欄找出會員所在列 (跳過標頭列)
	nicknames, err := s.members.ColumnValues(nicknameIdx + 1)
	if err != nil {
		return 0, err
	}
	row := 0
	for i := 1; i < len(nicknames); i++ {
		if nicknames[i] == nickname {
			row = i + 1
			break
		}
	}
	if row == 0 {
		return 0, ErrMemberNotFound
	}

	points, err := s.members.ColumnValues(pointsIdx + 1)
	if err != nil {
		return 0, err
	}
	current := 0
	if row-1 < len(points) {
		current = utils.ParsePoints(points[row-1])
	}

	newPoints := current + delta
	if newPoints < 0 {
		return 0, ErrNegativeBalance
	}

	if err := s.members.UpdateCell(row, pointsIdx+1, strconv.Itoa(newPoints)); err != nil {
		return 0, err
	}
	log.Infof("會員 %s 的點數已更新為 %d (異動 %+d)", nickname, newPoints, delta)
	return newPoints, nil
}
