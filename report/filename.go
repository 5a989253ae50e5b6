package report

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// BuildFilename builds the download filename:
// {title}_{period}_{epochMillis}{ext}
// The millisecond timestamp keeps sequential generations distinct; the title
// is sanitized because report titles may contain path-hostile characters.
func BuildFilename(title string, period Period, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%d%s", SanitizeFilename(title), period, now.UnixMilli(), ext)
}

// SizeLabel renders a byte count the way the reports page displays it
// ("843 B", "2.4 KB", "1.3 MB").
func SizeLabel(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}

// SanitizeFilename removes unsafe characters from a filename component.
// Non-ASCII text (Japanese titles) is preserved.
func SanitizeFilename(name string) string {
	unsafe := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", " "}
	result := name
	for _, char := range unsafe {
		result = strings.ReplaceAll(result, char, "_")
	}

	for strings.Contains(result, "__") {
		result = strings.ReplaceAll(result, "__", "_")
	}
	result = strings.Trim(result, "_")

	if len(result) > 100 {
		// Cap on a rune boundary: a byte slice can cut a Japanese
		// title mid-character and produce invalid UTF-8.
		cut := 100
		for cut > 0 && !utf8.RuneStart(result[cut]) {
			cut--
		}
		result = result[:cut]
	}
	if result == "" {
		result = "report"
	}
	return result
}
