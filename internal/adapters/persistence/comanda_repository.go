package persistence

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
)

// GormComandaRepository persists production comandas using GORM
type GormComandaRepository struct {
	db *gorm.DB
}

// NewGormComandaRepository creates a new GORM comanda repository
func NewGormComandaRepository(db *gorm.DB) *GormComandaRepository {
	return &GormComandaRepository{db: db}
}

// Save stores one comanda, replacing any previous ticket of the same order
func (r *GormComandaRepository) Save(c *recipe.Comanda) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode comanda: %w", err)
	}

	model := ComandaModel{
		OrderID:   c.OrderID,
		RequestID: c.RequestID,
		ProductID: c.ProductID,
		Payload:   string(payload),
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", c.OrderID).Delete(&ComandaModel{}).Error; err != nil {
			return fmt.Errorf("failed to replace comanda: %w", err)
		}
		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to save comanda: %w", err)
		}
		return nil
	})
}

// FindByOrder loads the comanda of one order
func (r *GormComandaRepository) FindByOrder(orderID int) (*recipe.Comanda, error) {
	var model ComandaModel
	result := r.db.Where("order_id = ?", orderID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("comanda not found for order %d", orderID)
		}
		return nil, fmt.Errorf("failed to find comanda: %w", result.Error)
	}

	var c recipe.Comanda
	if err := json.Unmarshal([]byte(model.Payload), &c); err != nil {
		return nil, fmt.Errorf("failed to decode comanda payload: %w", err)
	}
	return &c, nil
}

// Delete removes the comanda of one order; deleting a missing ticket is a no-op
func (r *GormComandaRepository) Delete(orderID int) error {
	result := r.db.Where("order_id = ?", orderID).Delete(&ComandaModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comanda: %w", result.Error)
	}
	return nil
}
