package models

// KPIResponse is the dashboard headline metrics block
type KPIResponse struct {
	CompanyID           int       `json:"company_id"`
	Range               DateRange `json:"range"`
	ActiveUsers         int       `json:"active_users"`
	ElectricityTotalKwh float64   `json:"electricity_total_kwh"`
	GasTotalM3          float64   `json:"gas_total_m3"`
	CO2ReductionTotalKg float64   `json:"co2_reduction_total_kg"`
	TotalRedemptions    int       `json:"total_redemptions"`
	TotalPointsSpent    int       `json:"total_points_spent"`
}

type DateRange struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// MonthlyUsageItem is one month of aggregated usage
type MonthlyUsageItem struct {
	Month          int     `json:"month"` // 1-12
	ElectricityKwh float64 `json:"electricity_kwh"`
	GasM3          float64 `json:"gas_m3"`
}

type MonthlyUsageResponse struct {
	CompanyID int                `json:"company_id"`
	Year      int                `json:"year"`
	Months    []MonthlyUsageItem `json:"months"`
}

// Co2TrendItem is one period point of the CO2 reduction trend
type Co2TrendItem struct {
	Period string  `json:"period"` // YYYY-MM
	CO2Kg  float64 `json:"co2_kg"`
}

type Co2TrendResponse struct {
	CompanyID int            `json:"company_id"`
	Points    []Co2TrendItem `json:"points"`
}

// UsageData groups electricity and gas figures for YoY comparison
type UsageData struct {
	ElectricityKwh float64 `json:"electricity_kwh"`
	GasM3          float64 `json:"gas_m3"`
}

type YoyUsageResponse struct {
	CompanyID int       `json:"company_id"`
	Month     string    `json:"month"` // YYYY-MM
	Current   UsageData `json:"current"`
	Previous  UsageData `json:"previous"`
	Delta     UsageData `json:"delta"`
}
