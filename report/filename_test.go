package report

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilename(t *testing.T) {
	now := time.UnixMilli(1704067200000)

	got := BuildFilename("CSRレポート", PeriodMonthly, ".csv", now)
	assert.Equal(t, "CSRレポート_monthly_1704067200000.csv", got)
}

func TestBuildFilenameDistinctAcrossGenerations(t *testing.T) {
	first := BuildFilename("CSRレポート", PeriodMonthly, ".pdf", time.UnixMilli(1704067200000))
	second := BuildFilename("CSRレポート", PeriodMonthly, ".pdf", time.UnixMilli(1704067200001))
	assert.NotEqual(t, first, second)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CSRレポート", "CSRレポート"},
		{"a/b\\c:d", "a_b_c_d"},
		{`ha "quoted" name`, "ha_quoted_name"},
		{"a  b", "a_b"},
		{"___", "report"},
		{"", "report"},
		{"*?<>|", "report"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "input %q", tt.in)
	}
}

func TestSanitizeFilenameCapsLength(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "abcd"
	}
	got := SanitizeFilename(long)
	assert.LessOrEqual(t, len(got), 100)
}

func TestSanitizeFilenameCapsOnRuneBoundary(t *testing.T) {
	// 40 three-byte runes is 120 bytes; a naive byte cap at 100 would
	// split the 34th rune and leave invalid UTF-8 in the filename.
	long := strings.Repeat("あ", 40)
	got := SanitizeFilename(long)

	assert.True(t, utf8.ValidString(got), "sanitized name must stay valid UTF-8")
	assert.LessOrEqual(t, len(got), 100)
	assert.Equal(t, strings.Repeat("あ", 33), got)
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "843 B", SizeLabel(843))
	assert.Equal(t, "2.4 KB", SizeLabel(2458))
	assert.Equal(t, "1.3 MB", SizeLabel(1363149))
}
