package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Member struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string     `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string     `gorm:"not null;column:password" json:"-"`
	Name      string     `gorm:"not null;column:name" json:"name"`
	PhoneNum  string     `gorm:"not null;column:phone_num" json:"phone_num"`
	BirthDate *time.Time `gorm:"column:birth_date" json:"birth_date,omitempty"`
	Field     string     `gorm:"column:field" json:"field"`
	IsNative  bool       `gorm:"column:is_native;not null;default:true" json:"is_native"`
	Role      string     `gorm:"column:role;not null;default:'ROLE_USER'" json:"role"`
	Orders    []Order    `gorm:"foreignKey:MemberID;references:ID" json:"orders,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

func (Member) TableName() string { return "member" }

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
