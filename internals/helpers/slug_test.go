package helper

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ibadahku_backend/internals/helpers/testutil"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Doa Berbuka Puasa":     "doa-berbuka-puasa",
		"  Tips -- Sahur!!  ":   "tips-sahur",
		"Ṣalāt al-Tarāwīḥ":      "salat-al-tarawih",
		"":                      "item",
		"***":                   "item",
		"Jadwal Imsakiyah 1446": "jadwal-imsakiyah-1446",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in, 0), in)
	}
}

func TestSlugify_MaxLen(t *testing.T) {
	s := Slugify(strings.Repeat("ab ", 40), 10)
	assert.LessOrEqual(t, len(s), 10)
	assert.False(t, strings.HasSuffix(s, "-"))
	assert.True(t, IsSlug(s))
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("doa-buka-puasa"))
	assert.True(t, IsSlug("tips1"))
	assert.False(t, IsSlug("Doa"))
	assert.False(t, IsSlug("doa--buka"))
	assert.False(t, IsSlug("-doa"))
	assert.False(t, IsSlug(""))
}

func TestEnsureUniqueSlugCI(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "ramadhan_content"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "ramadhan_content"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "ramadhan_content"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	got, err := EnsureUniqueSlugCI(context.Background(), db, "ramadhan_content", "ramadhan_content_key", "doa-sahur", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "doa-sahur-3", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrimForSuffix(t *testing.T) {
	assert.Equal(t, "abcd", trimForSuffix("abcdef", "-2", 6))
	assert.Equal(t, "x", trimForSuffix("abc", "-10", 2))
	assert.Equal(t, "ab", trimForSuffix("ab-cd", "-2", 5))
}
