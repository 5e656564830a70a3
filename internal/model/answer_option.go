package model

import (
	"time"

	"gorm.io/gorm"
)

// AnswerOption is one point on the answer scale shared by every question.
// The highest Value among active options is the scale ceiling used when
// scoring; it is always read live, never assumed.
type AnswerOption struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Label       string         `json:"texto" gorm:"not null"`
	Value       int            `json:"valor" gorm:"not null"`
	Ordinal     int            `json:"ordem" gorm:"column:ordem;not null;index"`
	Description string         `json:"descricao,omitempty" gorm:"type:text"`
	Active      bool           `json:"ativo" gorm:"not null;default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
