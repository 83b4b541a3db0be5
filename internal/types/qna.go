package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QnaBoard struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"member_id"`
	Member    *Member    `gorm:"constraint:OnDelete:CASCADE;foreignKey:MemberID;references:ID" json:"member,omitempty"`
	Title     string     `gorm:"not null;column:title" json:"title"`
	Content   string     `gorm:"not null;column:content" json:"content"`
	Views     int64      `gorm:"column:views;not null;default:0" json:"views"`
	Replies   []QnaReply `gorm:"foreignKey:QnaBoardID;references:ID" json:"replies,omitempty"`
	CreatedAt time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

func (QnaBoard) TableName() string { return "qna_board" }

func (b *QnaBoard) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type QnaReply struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QnaBoardID uuid.UUID `gorm:"type:uuid;not null;index" json:"qna_board_id"`
	MemberID   uuid.UUID `gorm:"type:uuid;not null;index" json:"member_id"`
	Member     *Member   `gorm:"constraint:OnDelete:CASCADE;foreignKey:MemberID;references:ID" json:"member,omitempty"`
	Content    string    `gorm:"not null;column:content" json:"content"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (QnaReply) TableName() string { return "qna_reply" }

func (r *QnaReply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
