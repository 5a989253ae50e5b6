package report

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Data source modes. The mode is a deliberate deployment choice (env),
// never inferred from a failed API call.
const (
	ModeLive = "live"
	ModeDemo = "demo"
)

// MetricsProvider supplies the aggregate snapshot a report is rendered from.
type MetricsProvider interface {
	Snapshot(ctx context.Context, cfg Config) (*Data, error)
}

// ════════════════════════════════════════════════════════════
// Demo provider
// ════════════════════════════════════════════════════════════

// DemoProvider returns a fixed snapshot regardless of the config: the
// period and department filters deliberately do not change the result.
// Used for demo deployments and stable report-layout tests.
type DemoProvider struct{}

func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

func (p *DemoProvider) Snapshot(_ context.Context, _ Config) (*Data, error) {
	return &Data{
		TotalCO2Reduction:   2847.5,
		TotalPointsIssued:   28475,
		TotalPointsRedeemed: 15230,
		ActiveUsers:         1247,
		TopPerformers: []TopPerformer{
			{Name: "田中 太郎", Department: "営業部", Reduction: 15.2, Points: 1250},
			{Name: "佐藤 花子", Department: "マーケティング部", Reduction: 12.8, Points: 1180},
			{Name: "鈴木 一郎", Department: "開発部", Reduction: 11.5, Points: 1120},
		},
		DepartmentStats: []DepartmentStat{
			{Name: "営業部", Members: 25, AvgReduction: 13.4, TotalPoints: 12500},
			{Name: "マーケティング部", Members: 18, AvgReduction: 11.9, TotalPoints: 9800},
			{Name: "開発部", Members: 32, AvgReduction: 10.7, TotalPoints: 15600},
		},
		ProductStats: []ProductStat{
			{Name: "社内カフェ利用券", Category: "社内サービス", Redemptions: 78, Popularity: 9.2},
			{Name: "Amazonギフトカード", Category: "ギフトカード", Redemptions: 45, Popularity: 8.9},
			{Name: "スターバックスチケット", Category: "商品", Redemptions: 32, Popularity: 7.8},
		},
	}, nil
}

// ════════════════════════════════════════════════════════════
// Live provider
// ════════════════════════════════════════════════════════════

// LiveProvider aggregates the snapshot from the database, honoring the
// config's date range and department filter.
type LiveProvider struct {
	db *gorm.DB
}

func NewLiveProvider(db *gorm.DB) *LiveProvider {
	return &LiveProvider{db: db}
}

func (p *LiveProvider) Snapshot(ctx context.Context, cfg Config) (*Data, error) {
	data := &Data{}

	deptFilter := "TRUE"
	args := []any{cfg.StartDate, cfg.EndDate}
	if len(cfg.Departments) > 0 {
		deptFilter = "u.department IN ?"
	}

	// Summary: CO2 and active users from energy records
	type summaryRow struct {
		TotalCO2    float64
		ActiveUsers int
	}
	var summary summaryRow
	summaryQuery := p.db.WithContext(ctx).
		Table("energy_records er").
		Joins("JOIN users u ON u.id = er.user_id").
		Select("COALESCE(SUM(er.co2_kg), 0) AS total_co2, COUNT(DISTINCT er.user_id) AS active_users").
		Where("er.timestamp >= ? AND er.timestamp <= ?", args...)
	if len(cfg.Departments) > 0 {
		summaryQuery = summaryQuery.Where(deptFilter, cfg.Departments)
	}
	if err := summaryQuery.Scan(&summary).Error; err != nil {
		return nil, fmt.Errorf("report: summary aggregation: %w", err)
	}
	data.TotalCO2Reduction = summary.TotalCO2
	data.ActiveUsers = summary.ActiveUsers

	// Summary: points issued / redeemed from the ledger
	type pointsRow struct {
		Issued   int
		Redeemed int
	}
	var points pointsRow
	pointsQuery := p.db.WithContext(ctx).
		Table("point_transactions pt").
		Joins("JOIN users u ON u.id = pt.user_id").
		Select("COALESCE(SUM(CASE WHEN pt.type = 'earn' THEN pt.delta ELSE 0 END), 0) AS issued, "+
			"COALESCE(SUM(CASE WHEN pt.type = 'spend' THEN -pt.delta ELSE 0 END), 0) AS redeemed").
		Where("pt.created_at >= ? AND pt.created_at <= ?", args...)
	if len(cfg.Departments) > 0 {
		pointsQuery = pointsQuery.Where(deptFilter, cfg.Departments)
	}
	if err := pointsQuery.Scan(&points).Error; err != nil {
		return nil, fmt.Errorf("report: points aggregation: %w", err)
	}
	data.TotalPointsIssued = points.Issued
	data.TotalPointsRedeemed = points.Redeemed

	// Top performers by CO2 reduction
	type performerRow struct {
		FullName   string
		Department string
		CO2Kg      float64
		Points     int
	}
	var performers []performerRow
	performerQuery := p.db.WithContext(ctx).
		Table("energy_records er").
		Joins("JOIN users u ON u.id = er.user_id").
		Select("u.full_name, u.department, COALESCE(SUM(er.co2_kg), 0) AS co2_kg, "+
			"COALESCE((SELECT SUM(pt.delta) FROM point_transactions pt WHERE pt.user_id = u.id AND pt.type = 'earn' AND pt.created_at >= ? AND pt.created_at <= ?), 0) AS points",
			cfg.StartDate, cfg.EndDate).
		Where("er.timestamp >= ? AND er.timestamp <= ?", args...).
		Group("u.id, u.full_name, u.department").
		Order("co2_kg DESC").
		Limit(10)
	if len(cfg.Departments) > 0 {
		performerQuery = performerQuery.Where(deptFilter, cfg.Departments)
	}
	if err := performerQuery.Scan(&performers).Error; err != nil {
		return nil, fmt.Errorf("report: top performers: %w", err)
	}
	totalCO2 := data.TotalCO2Reduction
	for _, row := range performers {
		reduction := 0.0
		if totalCO2 > 0 {
			reduction = round1(row.CO2Kg / totalCO2 * 100)
		}
		data.TopPerformers = append(data.TopPerformers, TopPerformer{
			Name:       row.FullName,
			Department: row.Department,
			Reduction:  reduction,
			Points:     row.Points,
		})
	}

	// Department rollup
	type deptRow struct {
		Department  string
		Members     int
		CO2Kg       float64
		TotalPoints int
	}
	var depts []deptRow
	deptQuery := p.db.WithContext(ctx).
		Table("energy_records er").
		Joins("JOIN users u ON u.id = er.user_id").
		Select("u.department, COUNT(DISTINCT u.id) AS members, COALESCE(SUM(er.co2_kg), 0) AS co2_kg, "+
			"COALESCE((SELECT SUM(pt.delta) FROM point_transactions pt JOIN users u2 ON u2.id = pt.user_id "+
			"WHERE u2.department = u.department AND pt.type = 'earn' AND pt.created_at >= ? AND pt.created_at <= ?), 0) AS total_points",
			cfg.StartDate, cfg.EndDate).
		Where("er.timestamp >= ? AND er.timestamp <= ?", args...).
		Group("u.department").
		Order("co2_kg DESC")
	if len(cfg.Departments) > 0 {
		deptQuery = deptQuery.Where(deptFilter, cfg.Departments)
	}
	if err := deptQuery.Scan(&depts).Error; err != nil {
		return nil, fmt.Errorf("report: department stats: %w", err)
	}
	for _, row := range depts {
		avg := 0.0
		if totalCO2 > 0 && row.Members > 0 {
			avg = round1(row.CO2Kg / totalCO2 * 100 / float64(row.Members))
		}
		data.DepartmentStats = append(data.DepartmentStats, DepartmentStat{
			Name:         row.Department,
			Members:      row.Members,
			AvgReduction: avg,
			TotalPoints:  row.TotalPoints,
		})
	}

	// Product redemption rollup
	type productRow struct {
		Title       string
		Category    string
		Redemptions int
	}
	var products []productRow
	if err := p.db.WithContext(ctx).
		Table("redemptions r").
		Joins("JOIN products p ON p.id = r.product_id").
		Select("p.title, p.category, COUNT(r.id) AS redemptions").
		Where("r.created_at >= ? AND r.created_at <= ?", args...).
		Group("p.id, p.title, p.category").
		Order("redemptions DESC").
		Limit(10).
		Scan(&products).Error; err != nil {
		return nil, fmt.Errorf("report: product stats: %w", err)
	}
	maxRedemptions := 0
	for _, row := range products {
		if row.Redemptions > maxRedemptions {
			maxRedemptions = row.Redemptions
		}
	}
	for _, row := range products {
		popularity := 0.0
		if maxRedemptions > 0 {
			popularity = round1(float64(row.Redemptions) / float64(maxRedemptions) * 10)
		}
		data.ProductStats = append(data.ProductStats, ProductStat{
			Name:        row.Title,
			Category:    row.Category,
			Redemptions: row.Redemptions,
			Popularity:  popularity,
		})
	}

	return data, nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
