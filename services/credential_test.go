package services

import (
	"testing"

	"github.com/ThomasPeng8888/streamlit-guppy/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberTable(rows ...[]string) *store.MemoryTable {
	all := [][]string{{"暱稱", "點數", "帳號", "密碼"}}
	all = append(all, rows...)
	return store.NewMemoryTable(all)
}

func TestCredentialService_Register(t *testing.T) {
	t.Run("空表格註冊成功並可登入", func(t *testing.T) {
		table := memberTable()
		cred := NewCredentialService(table)

		member, err := cred.Register("Alice", "alice1", "pw1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", member.Nickname)
		assert.Equal(t, 0, member.Points)

		require.Equal(t, 2, table.RowCount())
		assert.Equal(t, []string{"Alice", "0", "alice1", "pw1"}, table.Row(2))

		logged, err := cred.Authenticate("alice1", "pw1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", logged.Nickname)
	})

	t.Run("欄位順序依標頭決定且陌生欄位留白", func(t *testing.T) {
		table := store.NewMemoryTable([][]string{
			{"帳號", "備註", "暱稱", "點數", "密碼"},
		})
		cred := NewCredentialService(table)

		_, err := cred.Register("Bob", "bob1", "pw2")
		require.NoError(t, err)
		assert.Equal(t, []string{"bob1", "", "Bob", "0", "pw2"}, table.Row(2))
	})

	t.Run("必填欄位為空", func(t *testing.T) {
		table := memberTable()
		cred := NewCredentialService(table)

		_, err := cred.Register("", "acc", "pw")
		assert.ErrorIs(t, err, ErrMissingField)
		_, err = cred.Register("nick", "", "pw")
		assert.ErrorIs(t, err, ErrMissingField)
		_, err = cred.Register("nick", "acc", "")
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Equal(t, 1, table.RowCount(), "失敗時不可新增任何資料列")
	})

	t.Run("暱稱重複", func(t *testing.T) {
		table := memberTable([]string{"Alice", "10", "alice1", "pw1"})
		cred := NewCredentialService(table)

		_, err := cred.Register("Alice", "other", "pw")
		assert.ErrorIs(t, err, ErrDuplicateNickname)
		assert.Equal(t, 2, table.RowCount())
	})

	t.Run("帳號重複", func(t *testing.T) {
		table := memberTable([]string{"Alice", "10", "alice1", "pw1"})
		cred := NewCredentialService(table)

		_, err := cred.Register("Amy", "alice1", "pw")
		assert.ErrorIs(t, err, ErrDuplicateAccount)
		assert.Equal(t, 2, table.RowCount())
	})

	t.Run("標頭缺少必要欄位", func(t *testing.T) {
		table := store.NewMemoryTable([][]string{
			{"暱稱", "帳號"},
		})
		cred := NewCredentialService(table)

		_, err := cred.Register("Alice", "alice1", "pw1")
		var missing *MissingColumnError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"點數", "密碼"}, missing.Columns)
		assert.Equal(t, 1, table.RowCount())
	})
}

func TestCredentialService_Authenticate(t *testing.T) {
	table := memberTable(
		[]string{"Alice", "10", "alice1", "pw1"},
		[]string{"數字人", "5", "123456", "000123"},
	)
	cred := NewCredentialService(table)

	t.Run("帳號或密碼錯誤", func(t *testing.T) {
		_, err := cred.Authenticate("alice1", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = cred.Authenticate("nobody", "pw1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("數字型帳號密碼以字串比對", func(t *testing.T) {
		member, err := cred.Authenticate("123456", "000123")
		require.NoError(t, err)
		assert.Equal(t, "數字人", member.Nickname)
	})

	t.Run("標頭缺少必要欄位", func(t *testing.T) {
		broken := store.NewMemoryTable([][]string{{"暱稱", "點數"}})
		_, err := NewCredentialService(broken).Authenticate("a", "b")
		var missing *MissingColumnError
		assert.ErrorAs(t, err, &missing)
	})
}
