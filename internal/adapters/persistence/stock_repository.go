package persistence

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
)

// GormStockRepository answers stock questions from the stock_levels table.
// Missing rows mean zero stock, never an error: the scheduler treats check
// failures as insufficient anyway.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Sufficient reports whether current stock covers the required quantity
func (r *GormStockRepository) Sufficient(itemID int, quantity decimal.Decimal) (bool, error) {
	level, err := r.CurrentLevel(itemID)
	if err != nil {
		return false, err
	}
	return level.GreaterThanOrEqual(quantity), nil
}

// CurrentLevel returns the current stock level of an item
func (r *GormStockRepository) CurrentLevel(itemID int) (decimal.Decimal, error) {
	var model StockModel
	result := r.db.Where("item_id = ?", itemID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to read stock level: %w", result.Error)
	}
	return model.Level, nil
}

// Set upserts the stock level of an item
func (r *GormStockRepository) Set(itemID int, name string, level decimal.Decimal) error {
	model := StockModel{ItemID: itemID, ItemName: name, Level: level}
	if err := r.db.Save(&model).Error; err != nil {
		return fmt.Errorf("failed to set stock level: %w", err)
	}
	return nil
}

// Consume decrements an item's level, flooring at zero
func (r *GormStockRepository) Consume(itemID int, quantity decimal.Decimal) error {
	level, err := r.CurrentLevel(itemID)
	if err != nil {
		return err
	}
	next := level.Sub(quantity)
	if next.IsNegative() {
		next = decimal.Zero
	}
	result := r.db.Model(&StockModel{}).Where("item_id = ?", itemID).Update("level", next)
	if result.Error != nil {
		return fmt.Errorf("failed to consume stock: %w", result.Error)
	}
	return nil
}

var _ recipe.StockChecker = (*GormStockRepository)(nil)
