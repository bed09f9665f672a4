package services

import (
	"math/rand"
	"testing"

	"github.com/ThomasPeng8888/streamlit-guppy/models"
	"github.com/ThomasPeng8888/streamlit-guppy/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raffleTable(rows ...[]string) *store.MemoryTable {
	all := [][]string{{"姓名", "電子郵件", "是否中獎"}}
	all = append(all, rows...)
	return store.NewMemoryTable(all)
}

func seededRaffle(table *store.MemoryTable, seed int64) *RaffleService {
	return NewRaffleService(table, rand.New(rand.NewSource(seed)))
}

func TestRaffleService_Enter(t *testing.T) {
	t.Run("報名成功並依標頭順序寫入", func(t *testing.T) {
		table := raffleTable()
		raffle := seededRaffle(table, 1)

		entrant, err := raffle.Enter("Dan", "dan@x")
		require.NoError(t, err)
		assert.Equal(t, "Dan", entrant.Name)
		assert.Equal(t, []string{"Dan", "dan@x", ""}, table.Row(2))
	})

	t.Run("必填欄位為空", func(t *testing.T) {
		raffle := seededRaffle(raffleTable(), 1)

		_, err := raffle.Enter("", "a@x")
		assert.ErrorIs(t, err, ErrMissingField)
		_, err = raffle.Enter("Dan", "")
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("電子郵件重複報名", func(t *testing.T) {
		table := raffleTable([]string{"A", "a@x", ""})
		raffle := seededRaffle(table, 1)

		_, err := raffle.Enter("Dan", "a@x")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
		assert.Equal(t, 2, table.RowCount(), "失敗時不可新增任何資料列")
	})
}

func TestRaffleService_Eligible(t *testing.T) {
	t.Run("過濾已中獎的參與者", func(t *testing.T) {
		table := raffleTable(
			[]string{"A", "a@x", ""},
			[]string{"B", "b@x", ""},
			[]string{"C", "c@x", "是"},
		)
		raffle := seededRaffle(table, 1)

		eligible, err := raffle.Eligible()
		require.NoError(t, err)
		require.Len(t, eligible, 2)
		assert.Equal(t, "A", eligible[0].Name)
		assert.Equal(t, "B", eligible[1].Name)
	})

	t.Run("缺少是否中獎欄位", func(t *testing.T) {
		table := store.NewMemoryTable([][]string{
			{"姓名", "電子郵件"},
			{"A", "a@x"},
		})
		_, err := seededRaffle(table, 1).Eligible()
		var missing *MissingColumnError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"是否中獎"}, missing.Columns)
	})
}

func TestRaffleService_Draw(t *testing.T) {
	t.Run("抽獎人數必須大於零", func(t *testing.T) {
		raffle := seededRaffle(raffleTable([]string{"A", "a@x", ""}), 1)
		_, err := raffle.Draw(0)
		assert.ErrorIs(t, err, ErrInvalidCount)
		_, err = raffle.Draw(-3)
		assert.ErrorIs(t, err, ErrInvalidCount)
	})

	t.Run("抽獎池為空", func(t *testing.T) {
		table := raffleTable([]string{"C", "c@x", "是"})
		_, err := seededRaffle(table, 1).Draw(1)
		assert.ErrorIs(t, err, ErrEmptyPool)
	})

	t.Run("人數超過名單時全員中獎", func(t *testing.T) {
		table := raffleTable(
			[]string{"A", "a@x", ""},
			[]string{"B", "b@x", ""},
		)
		winners, err := seededRaffle(table, 1).Draw(5)
		require.NoError(t, err)
		require.Len(t, winners, 2)
	})

	t.Run("抽出的得獎者互不重複且都來自合格名單", func(t *testing.T) {
		table := raffleTable(
			[]string{"A", "a@x", ""},
			[]string{"B", "b@x", ""},
			[]string{"C", "c@x", ""},
			[]string{"D", "d@x", ""},
			[]string{"E", "e@x", "是"},
		)
		winners, err := seededRaffle(table, 7).Draw(3)
		require.NoError(t, err)
		require.Len(t, winners, 3)

		seen := make(map[string]bool)
		for _, w := range winners {
			assert.False(t, seen[w.Email], "得獎者不可重複: %s", w.Email)
			seen[w.Email] = true
			assert.NotEqual(t, "e@x", w.Email, "已中獎者不可再被抽中")
		}
	})

	t.Run("每位參與者被抽中的機率大致均等", func(t *testing.T) {
		table := raffleTable(
			[]string{"A", "a@x", ""},
			[]string{"B", "b@x", ""},
			[]string{"C", "c@x", ""},
			[]string{"D", "d@x", ""},
			[]string{"E", "e@x", ""},
		)
		raffle := seededRaffle(table, 42)

		const trials = 2000
		counts := make(map[string]int)
		for i := 0; i < trials; i++ {
			winners, err := raffle.Draw(1)
			require.NoError(t, err)
			counts[winners[0].Email]++
		}

		// 期望值 400 次，允許合理的統計波動
		require.Len(t, counts, 5, "每位參與者都應該至少被抽中一次")
		for email, n := range counts {
			assert.Greater(t, n, 300, "%s 被抽中次數過低: %d", email, n)
			assert.Less(t, n, 500, "%s 被抽中次數過高: %d", email, n)
		}
	})
}

func TestRaffleService_CommitWinners(t *testing.T) {
	t.Run("註記後再次查詢合格名單為空", func(t *testing.T) {
		table := raffleTable(
			[]string{"A", "a@x", ""},
			[]string{"B", "b@x", ""},
		)
		raffle := seededRaffle(table, 1)

		winners, err := raffle.Draw(2)
		require.NoError(t, err)
		require.Len(t, winners, 2)

		skipped, err := raffle.CommitWinners(winners)
		require.NoError(t, err)
		assert.Empty(t, skipped)
		assert.Equal(t, "是", table.Row(2)[2])
		assert.Equal(t, "是", table.Row(3)[2])

		eligible, err := raffle.Eligible()
		require.NoError(t, err)
		assert.Empty(t, eligible)
	})

	t.Run("找不到的電子郵件跳過但其餘照常註記", func(t *testing.T) {
		table := raffleTable(
			[]string{"A", "a@x", ""},
			[]string{"B", "b@x", ""},
		)
		raffle := seededRaffle(table, 1)

		skipped, err := raffle.CommitWinners([]models.RaffleEntrant{
			{Name: "Ghost", Email: "ghost@x"},
			{Name: "B", Email: "b@x"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"ghost@x"}, skipped)
		assert.Equal(t, "", table.Row(2)[2])
		assert.Equal(t, "是", table.Row(3)[2])
	})
}
