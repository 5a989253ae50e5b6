// ════════════════════════════════════════════════════════════
// Path: cmd/seed/main.go
// Development seeder - admin, employees, rules, catalog, readings
// ════════════════════════════════════════════════════════════

package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

var departments = []string{"営業部", "マーケティング部", "開発部", "人事部", "総務部"}

func main() {
	_ = godotenv.Load()

	config.InitDB()
	config.Migrate()
	defer config.CloseDB()

	seedAdmin()
	users := seedEmployees()
	seedPointRules()
	seedProducts()
	seedEnergyRecords(users)

	log.Println("🌱 Seed complete")
}

func seedAdmin() {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@greendesk.jp")
	password := getEnv("SEED_ADMIN_PASSWORD", "changeme-admin")

	hash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ Failed to hash admin password: %v", err)
	}

	admin := models.Admin{
		Email:        email,
		Name:         "システム管理者",
		PasswordHash: hash,
		Role:         "super_admin",
		Status:       "active",
	}
	if err := config.EnergyGorm.
		Where("email = ?", email).
		FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("❌ Failed to seed admin: %v", err)
	}
	log.Printf("✅ Admin ready: %s", email)
}

func seedEmployees() []models.User {
	names := []string{
		"田中 太郎", "佐藤 花子", "鈴木 一郎", "高橋 美咲", "伊藤 健太",
		"渡辺 由美", "山本 大輔", "中村 彩", "小林 翔", "加藤 恵",
	}

	hash, err := services.HashPassword(getEnv("SEED_USER_PASSWORD", "changeme-user"))
	if err != nil {
		log.Fatalf("❌ Failed to hash user password: %v", err)
	}

	users := make([]models.User, 0, len(names))
	for i, name := range names {
		user := models.User{
			Email:        userEmail(i),
			FullName:     name,
			Department:   departments[i%len(departments)],
			PasswordHash: hash,
			IsActive:     true,
		}
		if err := config.EnergyGorm.
			Where("email = ?", user.Email).
			FirstOrCreate(&user).Error; err != nil {
			log.Fatalf("❌ Failed to seed user %s: %v", user.Email, err)
		}
		users = append(users, user)
	}
	log.Printf("✅ Employees ready: %d", len(users))
	return users
}

func userEmail(i int) string {
	return string(rune('a'+i)) + ".employee@greendesk.jp"
}

func seedPointRules() {
	rules := []models.PointRule{
		{
			Name:        "CO2削減ポイント",
			Description: "前回の記録よりCO2排出が減った分だけ付与",
			Type:        models.RuleTypePerKg,
			Value:       10,
			Params:      datatypes.JSON([]byte(`{}`)),
			Active:      true,
		},
		{
			Name:        "月間ランキングボーナス",
			Description: "月次ランキング上位へのボーナス",
			Type:        models.RuleTypeRankBonus,
			Value:       0,
			Params:      datatypes.JSON([]byte(`{"ranks": {"1": 500, "2": 300, "3": 100}}`)),
			Active:      true,
		},
		{
			Name:        "継続記録ボーナス",
			Description: "30日連続で記録した場合のボーナス",
			Type:        models.RuleTypeStreak,
			Value:       200,
			Params:      datatypes.JSON([]byte(`{"days": 30}`)),
			Active:      true,
		},
	}
	for i := range rules {
		if err := config.EnergyGorm.
			Where("name = ?", rules[i].Name).
			FirstOrCreate(&rules[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed point rule %s: %v", rules[i].Name, err)
		}
	}
	log.Printf("✅ Point rules ready: %d", len(rules))
}

func seedProducts() {
	products := []models.Product{
		{Title: "社内カフェ利用券", Description: "社内カフェで使える500円分の利用券", Category: "社内サービス", PointsRequired: 500, Stock: 100, Active: true},
		{Title: "Amazonギフトカード", Description: "1000円分のAmazonギフトカード", Category: "ギフトカード", PointsRequired: 1000, Stock: 50, Active: true},
		{Title: "スターバックスチケット", Description: "ドリンクチケット1枚", Category: "商品", PointsRequired: 700, Stock: 80, Active: true},
		{Title: "有給半日券", Description: "半日の特別休暇", Category: "社内サービス", PointsRequired: 3000, Stock: 20, Active: true},
	}
	for i := range products {
		if err := config.EnergyGorm.
			Where("title = ?", products[i].Title).
			FirstOrCreate(&products[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed product %s: %v", products[i].Title, err)
		}
	}
	log.Printf("✅ Products ready: %d", len(products))
}

// seedEnergyRecords bulk-inserts six months of daily readings straight
// through pgx; going around GORM keeps the seeder fast and means CO2 is
// computed here with the same factors the model hook uses.
func seedEnergyRecords(users []models.User) {
	ctx := context.Background()

	var existing int64
	config.EnergyGorm.Model(&models.EnergyRecord{}).Count(&existing)
	if existing > 0 {
		log.Printf("⏭️  Energy records already present (%d), skipping", existing)
		return
	}

	rng := rand.New(rand.NewSource(42))
	query := `
		INSERT INTO energy_records (
			id, timestamp, electricity_kwh, gas_m3, co2_kg, source, user_id, created_at
		) VALUES ($1, $2, $3, $4, $5, 'manual', $6, NOW())
	`

	count := 0
	start := time.Now().AddDate(0, -6, 0).Truncate(24 * time.Hour)
	for _, user := range users {
		for day := start; day.Before(time.Now()); day = day.AddDate(0, 0, 1) {
			kwh := 8 + rng.Float64()*8 // 8-16 kWh per day
			gas := 0.5 + rng.Float64()*1.5
			co2 := kwh*models.CO2FactorElectricity + gas*models.CO2FactorGas

			_, err := config.EnergyDB.Exec(ctx, query,
				uuid.Must(uuid.NewV7()).String(),
				day,
				kwh,
				gas,
				co2,
				user.ID.String(),
			)
			if err != nil {
				log.Fatalf("❌ Failed to seed energy record: %v", err)
			}
			count++
		}
	}
	log.Printf("✅ Energy records ready: %d", count)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
