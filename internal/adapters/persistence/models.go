package persistence

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComandaModel represents the comandas table. The item tree is stored as a
// JSON payload; queries only ever need the whole ticket.
type ComandaModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   int       `gorm:"column:order_id;index;not null"`
	RequestID int       `gorm:"column:request_id;index;not null"`
	ProductID int       `gorm:"column:product_id;not null"`
	Payload   string    `gorm:"column:payload;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (ComandaModel) TableName() string {
	return "comandas"
}

// AllocationRecordModel represents the allocation_records table: one row per
// committed placement, the persisted audit trail of the scheduler
type AllocationRecordModel struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID      int       `gorm:"column:order_id;index;not null"`
	RequestID    int       `gorm:"column:request_id;index;not null"`
	ActivityID   int       `gorm:"column:activity_id;not null"`
	ItemName     string    `gorm:"column:item_name;not null"`
	ActivityName string    `gorm:"column:activity_name;not null"`
	ResourceName string    `gorm:"column:resource_name;not null"`
	StartsAt     time.Time `gorm:"column:starts_at;not null"`
	EndsAt       time.Time `gorm:"column:ends_at;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (AllocationRecordModel) TableName() string {
	return "allocation_records"
}

// StockModel represents the stock_levels table
type StockModel struct {
	ItemID    int             `gorm:"column:item_id;primaryKey"`
	ItemName  string          `gorm:"column:item_name"`
	Level     decimal.Decimal `gorm:"column:level;type:numeric;not null"`
	UpdatedAt time.Time       `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (StockModel) TableName() string {
	return "stock_levels"
}
