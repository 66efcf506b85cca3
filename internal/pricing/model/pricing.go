// Package model provides entities for gym plan pricing.
package model

import "time"

// GymPricing holds the price for one member type and plan combination.
// The latest effective date wins when several rows exist.
type GymPricing struct {
	ID            int       `gorm:"primaryKey;column:id;autoIncrement"`
	MemberType    string    `gorm:"column:member_type;type:varchar(20);not null;index:idx_pricing_type_plan"`
	PlanType      string    `gorm:"column:plan_type;type:varchar(20);not null;index:idx_pricing_type_plan"`
	Price         float64   `gorm:"column:price;not null"`
	EffectiveDate time.Time `gorm:"column:effective_date;autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (GymPricing) TableName() string {
	return "gym_pricing"
}

// PriceHistory records a price change for auditing.
type PriceHistory struct {
	ID         int       `gorm:"primaryKey;column:id;autoIncrement"`
	MemberType string    `gorm:"column:member_type;type:varchar(50)"`
	PlanType   string    `gorm:"column:plan_type;type:varchar(50)"`
	OldPrice   float64   `gorm:"column:old_price"`
	NewPrice   float64   `gorm:"column:new_price"`
	ChangedAt  time.Time `gorm:"column:changed_at;autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (PriceHistory) TableName() string {
	return "price_history"
}
