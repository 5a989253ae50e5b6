package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	base := Config{
		Type:      TypeCSR,
		Period:    PeriodMonthly,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Format:    FormatCSV,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid range", mutate: func(c *Config) {}},
		{
			name:   "equal start and end is valid",
			mutate: func(c *Config) { c.EndDate = c.StartDate },
		},
		{
			name:    "start after end rejected",
			mutate:  func(c *Config) { c.StartDate = "2024-02-01" },
			wantErr: "is after end_date",
		},
		{
			name:    "missing start date",
			mutate:  func(c *Config) { c.StartDate = "" },
			wantErr: "required",
		},
		{
			name:    "missing end date",
			mutate:  func(c *Config) { c.EndDate = "" },
			wantErr: "required",
		},
		{
			name:    "malformed start date",
			mutate:  func(c *Config) { c.StartDate = "01/01/2024" },
			wantErr: "invalid start_date",
		},
		{
			name:    "malformed end date",
			mutate:  func(c *Config) { c.EndDate = "2024-13-40" },
			wantErr: "invalid end_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestTypeTitles(t *testing.T) {
	assert.Equal(t, "CSRレポート", TypeCSR.Title())
	assert.Equal(t, "ポイント利用実績レポート", TypePoints.Title())
	assert.Equal(t, "商品人気度レポート", TypeProducts.Title())
	assert.Equal(t, "ユーザー活動レポート", TypeUsers.Title())
	assert.Equal(t, "レポート", Type("unknown").Title())
}

func TestDateRangeLabel(t *testing.T) {
	cfg := Config{StartDate: "2024-01-01", EndDate: "2024-01-31"}
	assert.Equal(t, "期間: 2024-01-01 ~ 2024-01-31", cfg.DateRangeLabel())
}
