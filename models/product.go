package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a reward catalog item employees can redeem points for.
type Product struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string    `json:"title" gorm:"not null;index"`
	Description    string    `json:"description" gorm:"not null"`
	Category       string    `json:"category" gorm:"not null;index"` // 社内サービス, ギフトカード, 商品
	PointsRequired int       `json:"points_required" gorm:"not null;check:points_required > 0"`
	Stock          int       `json:"stock" gorm:"not null;check:stock >= 0"`
	Active         bool      `json:"active" gorm:"default:true;index"`
	ImageURL       *string   `json:"image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ════════════════════════════════════════════════════════════
// Request / Response Models
// ════════════════════════════════════════════════════════════

type ProductRequest struct {
	Title          string  `json:"title" binding:"required" example:"社内カフェ利用券"`
	Description    string  `json:"description" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	PointsRequired int     `json:"points_required" binding:"required,min=1" example:"500"`
	Stock          int     `json:"stock" binding:"min=0" example:"100"`
	Active         *bool   `json:"active"`
	ImageURL       *string `json:"image_url"`
}

type UpdateProductRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Category       *string `json:"category"`
	PointsRequired *int    `json:"points_required" binding:"omitempty,min=1"`
	Stock          *int    `json:"stock" binding:"omitempty,min=0"`
	Active         *bool   `json:"active"`
	ImageURL       *string `json:"image_url"`
}

type ProductStatsResponseItem struct {
	Type               string  `json:"type"`
	TotalProducts      int     `json:"total_products,omitempty"`
	ActiveProducts     int     `json:"active_products,omitempty"`
	OutOfStockProducts int     `json:"out_of_stock_products,omitempty"`
	TotalRedemptions   int     `json:"total_redemptions,omitempty"`
	AveragePoints      float64 `json:"average_points,omitempty"`
	TopCategory        string  `json:"top_category,omitempty"`
}
