package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// seedProducts is the fixed catalog inserted the first time the
// service starts against an empty products table.
var seedProducts = []ProductModel{
	{
		Name:        "Air Zoom Pegasus",
		Brand:       "Nike",
		Category:    "Running",
		Size:        "42",
		Color:       "Negro",
		Price:       120,
		Stock:       5,
		Description: "Amortiguación reactiva",
	},
	{
		Name:        "Ultraboost 21",
		Brand:       "Adidas",
		Category:    "Running",
		Size:        "41",
		Color:       "Blanco",
		Price:       150,
		Stock:       3,
		Description: "Confort premium",
	},
	{
		Name:        "Suede Classic",
		Brand:       "Puma",
		Category:    "Casual",
		Size:        "40",
		Color:       "Azul",
		Price:       80,
		Stock:       10,
		Description: "Estilo clásico",
	},
}

// LoadInitialData inserts the seed catalog when the products table is
// empty. Subsequent startups are no-ops.
func LoadInitialData(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&ProductModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := make([]ProductModel, len(seedProducts))
	copy(rows, seedProducts)
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert seed products: %w", err)
	}

	logger.Info("seed catalog loaded", "products", len(rows))
	return nil
}
