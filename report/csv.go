package report

import (
	"strconv"
	"strings"
)

// utf8BOM keeps Excel from misreading the Japanese headers
const utf8BOM = "\uFEFF"

// CSVEncoder emits the stacked-section CSV layout:
// 概要, トップパフォーマー, 部署別統計. Every field is double-quoted and
// unit suffixes are baked into the values.
type CSVEncoder struct{}

func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{}
}

func (e *CSVEncoder) Name() string          { return "CSV" }
func (e *CSVEncoder) ContentType() string   { return "text/csv; charset=utf-8" }
func (e *CSVEncoder) FileExtension() string { return ".csv" }

func (e *CSVEncoder) Encode(cfg Config, data *Data) ([]byte, error) {
	var b strings.Builder
	b.WriteString(utf8BOM)

	// 概要
	writeRow(&b, "概要")
	writeRow(&b, "総 CO2 削減量", formatFloat(data.TotalCO2Reduction)+" kg")
	writeRow(&b, "総発行ポイント", groupInt(data.TotalPointsIssued)+" pt")
	writeRow(&b, "総利用ポイント", groupInt(data.TotalPointsRedeemed)+" pt")
	writeRow(&b, "アクティブユーザー", groupInt(data.ActiveUsers)+" 人")
	b.WriteString("\n")

	// トップパフォーマー
	writeRow(&b, "トップパフォーマー")
	writeRow(&b, "氏名", "部署", "削減率 (%)", "ポイント")
	for _, p := range data.TopPerformers {
		writeRow(&b, p.Name, p.Department, formatFloat(p.Reduction)+"%", strconv.Itoa(p.Points)+" pt")
	}
	b.WriteString("\n")

	// 部署別統計
	writeRow(&b, "部署別統計")
	writeRow(&b, "部署名", "人数", "平均削減率 (%)", "総ポイント")
	for _, d := range data.DepartmentStats {
		writeRow(&b, d.Name, strconv.Itoa(d.Members)+"人", formatFloat(d.AvgReduction)+"%", groupInt(d.TotalPoints)+" pt")
	}

	return []byte(b.String()), nil
}

// writeRow appends one CSV row with every field quoted unconditionally.
// Embedded quotes are escaped by doubling so hostile names cannot break
// the row structure.
func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// formatFloat renders without trailing zeros (2847.5, 15.2, 12)
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupInt renders an integer with comma thousand separators (28,475)
func groupInt(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
