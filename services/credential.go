package services

import (
	"strconv"

	"github.com/ThomasPeng8888/streamlit-guppy/models"
	"github.com/ThomasPeng8888/streamlit-guppy/store"
	"github.com/ThomasPeng8888/streamlit-guppy/utils"

	log "github.com/sirupsen/logrus"
)

// CredentialService 負責會員登入驗證與註冊 (含管理員手動新增會員)。
type CredentialService struct {
	members store.Table
}

func NewCredentialService(members store.Table) *CredentialService {
	return &CredentialService{members: members}
}

// Authenticate 以帳號密碼比對會員資料，成功回傳該會員。
// 儲存格一律以字串比對，避免數字型帳號被 Sheets 轉型後對不上。
func (s *CredentialService) Authenticate(account, password string) (*models.Member, error) {
	header, err := s.members.Header()
	if err != nil {
		return nil, err
	}
	if missing := missingColumns(header, models.ColAccount, models.ColPassword, models.ColNickname); len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	records, err := s.members.Records()
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		if record[models.ColAccount] == account && record[models.ColPassword] == password {
			return &models.Member{
				Nickname: record[models.ColNickname],
				Points:   utils.ParsePoints(record[models.ColPoints]),
				Account:  account,
				Row:      i + 2,
			}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Register 建立新會員，初始點數為 0。
// 暱稱與帳號都不可與現有會員重複 (區分大小寫的完全比對)；
// 任何失敗路徑都不會寫入資料列。
func (s *CredentialService) Register(nickname, account, password string) (*models.Member, error) {
	if nickname == "" || account == "" || password == "" {
		return nil, ErrMissingField
	}

	header, err := s.members.Header()
	if err != nil {
		return nil, err
	}
	if missing := missingColumns(header, models.ColNickname, models.ColPoints, models.ColAccount, models.ColPassword); len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	records, err := s.members.Records()
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record[models.ColNickname] == nickname {
			return nil, ErrDuplicateNickname
		}
	}
	for _, record := range records {
		if record[models.ColAccount] == account {
			return nil, ErrDuplicateAccount
		}
	}

	row := buildMemberRow(header, nickname, 0, account, password)
	if err := s.members.AppendRow(row); err != nil {
		return nil, err
	}
	log.Infof("會員 %s 註冊成功 (帳號: %s)", nickname, account)

	return &models.Member{
		Nickname: nickname,
		Points:   0,
		Account:  account,
		Row:      len(records) + 2,
	}, nil
}

// buildMemberRow 依表格目前的標頭順序組出要新增的資料列，
// 我們認得的欄位填值，其餘欄位一律補空字串佔位。
func buildMemberRow(header []string, nickname string, points int, account, password string) []string {
	dataMap := map[string]string{
		models.ColNickname: nickname,
		models.ColPoints:   strconv.Itoa(points),
		// 帳號和密碼始終作為字串儲存
		models.ColAccount:  account,
		models.ColPassword: password,
	}

	row := make([]string, 0, len(header))
	for _, colName := range header {
		row = append(row, dataMap[colName])
	}
	return row
}
