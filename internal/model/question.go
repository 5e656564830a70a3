package model

import (
	"time"

	"gorm.io/gorm"
)

// Question belongs to exactly one Category. Questions referenced by attempts
// are deactivated instead of removed so historical scoring stays intact.
type Question struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Text       string         `json:"texto" gorm:"type:text;not null"`
	CategoryID uint           `json:"categoria_id" gorm:"not null;index"`
	Category   Category       `json:"categoria,omitempty" gorm:"foreignKey:CategoryID"`
	Type       string         `json:"tipo" gorm:"not null"`
	Order      int            `json:"ordem" gorm:"column:ordem;not null;index"`
	Required   bool           `json:"obrigatoria" gorm:"not null;default:true"`
	Active     bool           `json:"ativo" gorm:"not null;default:true"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
