package model

import (
	"time"

	"gorm.io/gorm"
)

// Category is one intelligence type of the Multiple Intelligences model.
type Category struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Name            string         `json:"nome" gorm:"not null;uniqueIndex"`
	Description     string         `json:"descricao" gorm:"type:text;not null"`
	ResultText      string         `json:"resultado" gorm:"type:text"`
	Characteristics *string        `json:"caracteristicas_inteligente,omitempty" gorm:"type:text"`
	Careers         *string        `json:"carreiras_associadas,omitempty" gorm:"type:text"`
	Color           string         `json:"cor" gorm:"not null"`
	Slug            *string        `json:"slug,omitempty"`
	Active          bool           `json:"ativo" gorm:"not null;default:true"`
	Questions       []Question     `json:"perguntas,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
