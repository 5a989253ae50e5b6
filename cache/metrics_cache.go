package metrics_cache

import (
	"sync"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/models"
)

const TTL = 5 * time.Minute

// ── KPI cache ────────────────────────────────────────────────────────────────
// Keyed by the requested date range. The dashboard polls this endpoint on
// every page load, so the aggregation only hits the DB once per TTL.

type kpiEntry struct {
	data      *models.KPIResponse
	fetchedAt time.Time
}

var (
	kpiMu    sync.RWMutex
	kpiCache = make(map[string]*kpiEntry)
)

func GetKPI(rangeKey string) (*models.KPIResponse, bool) {
	kpiMu.RLock()
	defer kpiMu.RUnlock()
	if entry, exists := kpiCache[rangeKey]; exists && time.Since(entry.fetchedAt) < TTL {
		return entry.data, true
	}
	return nil, false
}

func SetKPI(rangeKey string, data *models.KPIResponse) {
	kpiMu.Lock()
	defer kpiMu.Unlock()
	kpiCache[rangeKey] = &kpiEntry{data: data, fetchedAt: time.Now()}
}

// ── Monthly usage cache ──────────────────────────────────────────────────────

type monthlyEntry struct {
	data      *models.MonthlyUsageResponse
	fetchedAt time.Time
}

var (
	monthlyMu    sync.RWMutex
	monthlyCache = make(map[int]*monthlyEntry) // keyed by year
)

func GetMonthlyUsage(year int) (*models.MonthlyUsageResponse, bool) {
	monthlyMu.RLock()
	defer monthlyMu.RUnlock()
	if entry, exists := monthlyCache[year]; exists && time.Since(entry.fetchedAt) < TTL {
		return entry.data, true
	}
	return nil, false
}

func SetMonthlyUsage(year int, data *models.MonthlyUsageResponse) {
	monthlyMu.Lock()
	defer monthlyMu.Unlock()
	monthlyCache[year] = &monthlyEntry{data: data, fetchedAt: time.Now()}
}

// ── Ranking cache ────────────────────────────────────────────────────────────

type rankingEntry struct {
	data      []models.RankingEntry
	fetchedAt time.Time
}

var (
	rankingMu    sync.RWMutex
	rankingCache = make(map[string]*rankingEntry) // keyed by period (YYYY-MM)
)

func GetRanking(period string) ([]models.RankingEntry, bool) {
	rankingMu.RLock()
	defer rankingMu.RUnlock()
	if entry, exists := rankingCache[period]; exists && time.Since(entry.fetchedAt) < TTL {
		return entry.data, true
	}
	return nil, false
}

func SetRanking(period string, data []models.RankingEntry) {
	rankingMu.Lock()
	rankingCache[period] = &rankingEntry{data: data, fetchedAt: time.Now()}
	rankingMu.Unlock()
}

// ── Invalidate everything (call on any energy record write) ──────────────────

func Invalidate() {
	kpiMu.Lock()
	kpiCache = make(map[string]*kpiEntry)
	kpiMu.Unlock()

	monthlyMu.Lock()
	monthlyCache = make(map[int]*monthlyEntry)
	monthlyMu.Unlock()

	rankingMu.Lock()
	rankingCache = make(map[string]*rankingEntry)
	rankingMu.Unlock()
}
