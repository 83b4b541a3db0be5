package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is created once and is immutable purchase history afterwards.
type Order struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"member_id"`
	Member     *Member     `gorm:"constraint:OnDelete:CASCADE;foreignKey:MemberID;references:ID" json:"member,omitempty"`
	TotalPrice int64       `gorm:"column:total_price;not null;default:0" json:"total_price"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;references:ID" json:"items,omitempty"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem snapshots the unit price at purchase time so later catalog price
// changes do not rewrite history.
type OrderItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	BlueprintID uuid.UUID  `gorm:"type:uuid;not null;index" json:"blueprint_id"`
	Blueprint   *Blueprint `gorm:"foreignKey:BlueprintID;references:ID" json:"blueprint,omitempty"`
	Quantity    int        `gorm:"column:quantity;not null;default:1" json:"quantity"`
	UnitPrice   int64      `gorm:"column:unit_price;not null;default:0" json:"unit_price"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
}

func (OrderItem) TableName() string { return "order_item" }

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}
