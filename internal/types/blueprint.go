package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Blueprint is a purchasable downloadable drawing. The catalog is seeded from
// a yaml file on first boot; order line items reference rows here.
type Blueprint struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"not null;column:name;index" json:"name"`
	Creator       string         `gorm:"column:creator" json:"creator"`
	Program       string         `gorm:"column:program" json:"program"`
	Extension     string         `gorm:"column:extension" json:"extension"`
	DownloadLink  string         `gorm:"column:download_link" json:"download_link"`
	StandardPrice int64          `gorm:"column:standard_price;not null;default:0" json:"standard_price"`
	SalePrice     int64          `gorm:"column:sale_price;not null;default:0" json:"sale_price"`
	Details       datatypes.JSON `gorm:"column:details;type:jsonb" json:"details,omitempty"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
}

func (Blueprint) TableName() string { return "blueprint" }

func (b *Blueprint) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
