package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoConfig(format Format) Config {
	return Config{
		Type:      TypeCSR,
		Period:    PeriodMonthly,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Format:    format,
	}
}

func demoData(t *testing.T) *Data {
	t.Helper()
	data, err := NewDemoProvider().Snapshot(context.Background(), demoConfig(FormatCSV))
	require.NoError(t, err)
	return data
}

func TestCSVEncoderSectionLayout(t *testing.T) {
	payload, err := NewCSVEncoder().Encode(demoConfig(FormatCSV), demoData(t))
	require.NoError(t, err)

	out := string(payload)
	require.True(t, strings.HasPrefix(out, "\ufeff"), "output must start with a UTF-8 BOM")

	body := strings.TrimPrefix(out, "\ufeff")
	lines := strings.Split(body, "\n")

	// 概要 is the first section, directly after the BOM
	assert.Equal(t, `"概要"`, lines[0])
	assert.Equal(t, `"総 CO2 削減量","2847.5 kg"`, lines[1])
	assert.Equal(t, `"総発行ポイント","28,475 pt"`, lines[2])
	assert.Equal(t, `"総利用ポイント","15,230 pt"`, lines[3])
	assert.Equal(t, `"アクティブユーザー","1,247 人"`, lines[4])
	assert.Equal(t, "", lines[5], "blank line between sections")

	assert.Equal(t, `"トップパフォーマー"`, lines[6])
	assert.Equal(t, `"氏名","部署","削減率 (%)","ポイント"`, lines[7])
	assert.Equal(t, `"田中 太郎","営業部","15.2%","1250 pt"`, lines[8])
	assert.Equal(t, "", lines[11])

	assert.Equal(t, `"部署別統計"`, lines[12])
	assert.Equal(t, `"部署名","人数","平均削減率 (%)","総ポイント"`, lines[13])
	assert.Equal(t, `"営業部","25人","13.4%","12,500 pt"`, lines[14])
}

func TestCSVEncoderQuotesEveryField(t *testing.T) {
	payload, err := NewCSVEncoder().Encode(demoConfig(FormatCSV), demoData(t))
	require.NoError(t, err)

	body := strings.TrimPrefix(string(payload), "\ufeff")
	for i, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		if line == "" {
			continue
		}
		fields := splitQuotedRow(t, line)
		assert.NotEmpty(t, fields, "line %d", i)
		assert.True(t, strings.HasPrefix(line, `"`), "line %d must start quoted: %s", i, line)
		assert.True(t, strings.HasSuffix(line, `"`), "line %d must end quoted: %s", i, line)
	}
}

func TestCSVEncoderEscapesEmbeddedQuotes(t *testing.T) {
	data := demoData(t)
	data.TopPerformers = []TopPerformer{
		{Name: `山田 "やまちゃん" 次郎`, Department: "営業部", Reduction: 9.9, Points: 800},
	}

	payload, err := NewCSVEncoder().Encode(demoConfig(FormatCSV), data)
	require.NoError(t, err)

	assert.Contains(t, string(payload), `"山田 ""やまちゃん"" 次郎"`)
	assert.NotContains(t, string(payload), `"山田 "やまちゃん" 次郎"`)
}

func TestCSVEncoderHandlesCommasAndNewlinesInFields(t *testing.T) {
	data := demoData(t)
	data.DepartmentStats = []DepartmentStat{
		{Name: "営業部, 東京", Members: 5, AvgReduction: 1.5, TotalPoints: 100},
	}

	payload, err := NewCSVEncoder().Encode(demoConfig(FormatCSV), data)
	require.NoError(t, err)

	assert.Contains(t, string(payload), `"営業部, 東京","5人","1.5%","100 pt"`)
}

// splitQuotedRow parses one fully-quoted CSV row, failing the test on
// malformed quoting.
func splitQuotedRow(t *testing.T, line string) []string {
	t.Helper()
	var fields []string
	rest := line
	for {
		require.True(t, strings.HasPrefix(rest, `"`), "field must open with a quote: %s", rest)
		rest = rest[1:]
		var b strings.Builder
		for {
			idx := strings.IndexByte(rest, '"')
			require.GreaterOrEqual(t, idx, 0, "unterminated field")
			b.WriteString(rest[:idx])
			rest = rest[idx+1:]
			if strings.HasPrefix(rest, `"`) {
				b.WriteByte('"')
				rest = rest[1:]
				continue
			}
			break
		}
		fields = append(fields, b.String())
		if rest == "" {
			return fields
		}
		require.True(t, strings.HasPrefix(rest, ","), "expected comma after field: %s", rest)
		rest = rest[1:]
	}
}

func TestGroupInt(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		28475:   "28,475",
		1247:    "1,247",
		1234567: "1,234,567",
		-15230:  "-15,230",
	}
	for in, want := range cases {
		assert.Equal(t, want, groupInt(in), "groupInt(%d)", in)
	}
}

func TestFormatFloatDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "2847.5", formatFloat(2847.5))
	assert.Equal(t, "12", formatFloat(12.0))
	assert.Equal(t, "15.2", formatFloat(15.2))
}
