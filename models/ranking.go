package models

import "github.com/google/uuid"

// RankingEntry is one row of the CO2 reduction leaderboard
type RankingEntry struct {
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	Department   string    `json:"department"`
	ReducedCO2Kg float64   `json:"reduced_co2_kg"`
	Rank         int       `json:"rank"`
	PointsEarned int       `json:"points_earned"`
}
