package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_NumberingAndLevels(t *testing.T) {
	t.Parallel()

	items := Catalog()
	require.Len(t, items, 25)

	counts := map[Level]int{}
	for i, q := range items {
		assert.Equal(t, i+1, q.ID)
		assert.NotEmpty(t, q.Title)
		assert.NotEmpty(t, q.SQL)
		counts[q.Level]++
	}
	assert.Equal(t, 8, counts[LevelBeginner])
	assert.Equal(t, 8, counts[LevelIntermediate])
	assert.Equal(t, 9, counts[LevelAdvanced])
}

func TestCatalog_Placeholders(t *testing.T) {
	t.Parallel()

	var ids []int
	for _, q := range Catalog() {
		if q.RequiresExtraFields {
			ids = append(ids, q.ID)
			assert.Contains(t, q.SQL, "AS todo")
			assert.True(t, strings.HasSuffix(q.Title, "(REQUIRES EXTRA FIELDS)"))
		}
	}
	assert.Equal(t, []int{13, 17, 21, 22, 24}, ids)
}

func TestCatalog_PlaceholderCountMatchesParams(t *testing.T) {
	t.Parallel()

	for _, q := range Catalog() {
		for i := range q.Params {
			assert.Contains(t, q.SQL, "$"+string(rune('1'+i)), "query %d", q.ID)
		}
		assert.NotContains(t, q.SQL, "$"+string(rune('1'+len(q.Params))), "query %d", q.ID)
		assert.NotPanics(t, func() { q.DefaultArgs() })
	}
}

func TestCatalog_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	items := Catalog()
	items[0].Title = "changed"

	q, ok := Find(1)
	require.True(t, ok)
	assert.NotEqual(t, "changed", q.Title)
}

func TestFind(t *testing.T) {
	t.Parallel()

	q, ok := Find(12)
	require.True(t, ok)
	assert.Equal(t, LevelIntermediate, q.Level)

	_, ok = Find(0)
	assert.False(t, ok)
	_, ok = Find(26)
	assert.False(t, ok)
}

func TestBindArgs_Defaults(t *testing.T) {
	t.Parallel()

	cases := map[int][]any{
		1:  {"India"},
		2:  {int64(30)},
		8:  {int64(2024)},
		16: {"2020-01-01"},
		19: {"2022-01-01"},
		25: {"2020-01-01"},
		3:  {},
	}
	for id, want := range cases {
		q, ok := Find(id)
		require.True(t, ok)

		args, err := q.BindArgs(nil)
		require.NoError(t, err)
		assert.Equal(t, want, args, "query %d", id)
	}
}

func TestBindArgs_Overrides(t *testing.T) {
	t.Parallel()

	q, _ := Find(2)
	args, err := q.BindArgs(map[string]string{"days": " 7 "})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(7)}, args)

	q, _ = Find(1)
	args, err = q.BindArgs(map[string]string{"country": "Australia"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Australia"}, args)
}

func TestBindArgs_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		id     int
		values map[string]string
		errMsg string
	}{
		{name: "non numeric int", id: 2, values: map[string]string{"days": "abc"}, errMsg: "parse days"},
		{name: "zero int", id: 8, values: map[string]string{"year": "0"}, errMsg: "year must be > 0"},
		{name: "bad date", id: 16, values: map[string]string{"since": "2020/01/01"}, errMsg: "YYYY-MM-DD"},
		{name: "blank text", id: 1, values: map[string]string{"country": "  "}, errMsg: "country is required"},
		{name: "unknown name", id: 3, values: map[string]string{"limit": "5"}, errMsg: `unknown parameter "limit"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q, ok := Find(tc.id)
			require.True(t, ok)
			_, err := q.BindArgs(tc.values)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
