package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The demo provider must return the same snapshot no matter what the
// request asks for, so demo reports stay stable across filters.
func TestDemoProviderIgnoresConfig(t *testing.T) {
	p := NewDemoProvider()

	configs := []Config{
		{Type: TypeCSR, Period: PeriodMonthly, StartDate: "2024-01-01", EndDate: "2024-01-31"},
		{Type: TypePoints, Period: PeriodYearly, StartDate: "2020-01-01", EndDate: "2025-12-31"},
		{Type: TypeUsers, Period: PeriodQuarterly, StartDate: "2024-04-01", EndDate: "2024-06-30",
			Departments: []string{"営業部", "開発部"}},
	}

	first, err := p.Snapshot(context.Background(), configs[0])
	require.NoError(t, err)

	for _, cfg := range configs[1:] {
		got, err := p.Snapshot(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestDemoProviderSnapshotValues(t *testing.T) {
	data, err := NewDemoProvider().Snapshot(context.Background(), demoConfig(FormatCSV))
	require.NoError(t, err)

	assert.Equal(t, 2847.5, data.TotalCO2Reduction)
	assert.Equal(t, 28475, data.TotalPointsIssued)
	assert.Equal(t, 15230, data.TotalPointsRedeemed)
	assert.Equal(t, 1247, data.ActiveUsers)
	require.Len(t, data.TopPerformers, 3)
	assert.Equal(t, "田中 太郎", data.TopPerformers[0].Name)
	require.Len(t, data.DepartmentStats, 3)
	assert.Equal(t, "営業部", data.DepartmentStats[0].Name)
	require.Len(t, data.ProductStats, 3)
	assert.Equal(t, "社内カフェ利用券", data.ProductStats[0].Name)
}
