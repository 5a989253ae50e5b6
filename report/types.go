// Package report implements the report export pipeline: a metrics snapshot
// provider, pluggable format encoders (CSV, DOCX, PDF), download filename
// construction and the session-scoped generation history.
package report

import (
	"fmt"
	"time"
)

// Type selects which report is generated
type Type string

const (
	TypeCSR      Type = "csr"
	TypePoints   Type = "points"
	TypeProducts Type = "products"
	TypeUsers    Type = "users"
)

// Title returns the Japanese display title used in report bodies and filenames
func (t Type) Title() string {
	switch t {
	case TypeCSR:
		return "CSRレポート"
	case TypePoints:
		return "ポイント利用実績レポート"
	case TypeProducts:
		return "商品人気度レポート"
	case TypeUsers:
		return "ユーザー活動レポート"
	default:
		return "レポート"
	}
}

// Period is the reporting cadence
type Period string

const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

// Format is the output encoding
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatCSV  Format = "csv"
)

const dateLayout = "2006-01-02"

// Config is a validated report request. Empty Departments means all departments.
type Config struct {
	Type        Type
	Period      Period
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	Departments []string
	Format      Format
}

// Validate checks date presence, date format and ordering.
// start_date > end_date is rejected here rather than producing an empty period.
func (c Config) Validate() error {
	if c.StartDate == "" || c.EndDate == "" {
		return fmt.Errorf("report: start_date and end_date are required")
	}
	start, err := time.Parse(dateLayout, c.StartDate)
	if err != nil {
		return fmt.Errorf("report: invalid start_date %q: %w", c.StartDate, err)
	}
	end, err := time.Parse(dateLayout, c.EndDate)
	if err != nil {
		return fmt.Errorf("report: invalid end_date %q: %w", c.EndDate, err)
	}
	if start.After(end) {
		return fmt.Errorf("report: start_date %s is after end_date %s", c.StartDate, c.EndDate)
	}
	return nil
}

// DateRangeLabel renders the subtitle line shared by all encoders
func (c Config) DateRangeLabel() string {
	return fmt.Sprintf("期間: %s ~ %s", c.StartDate, c.EndDate)
}

// TopPerformer is an individual ranked by CO2 reduction percentage
type TopPerformer struct {
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Reduction  float64 `json:"reduction"` // percent
	Points     int     `json:"points"`
}

// DepartmentStat is the per-department rollup
type DepartmentStat struct {
	Name         string  `json:"name"`
	Members      int     `json:"members"`
	AvgReduction float64 `json:"avg_reduction"` // percent
	TotalPoints  int     `json:"total_points"`
}

// ProductStat is the per-reward redemption rollup
type ProductStat struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Redemptions int     `json:"redemptions"`
	Popularity  float64 `json:"popularity"` // 0-10 score
}

// Data is the immutable aggregate snapshot a report is rendered from.
// One instance per generation request.
type Data struct {
	TotalCO2Reduction   float64          `json:"total_co2_reduction"` // kg
	TotalPointsIssued   int              `json:"total_points_issued"`
	TotalPointsRedeemed int              `json:"total_points_redeemed"`
	ActiveUsers         int              `json:"active_users"`
	TopPerformers       []TopPerformer   `json:"top_performers"`
	DepartmentStats     []DepartmentStat `json:"department_stats"`
	ProductStats        []ProductStat    `json:"product_stats"`
}
