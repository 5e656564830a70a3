package model

import (
	"time"

	"gorm.io/gorm"
)

// Result is the scored outcome of one attempt for one category. Rows are
// written once during scoring and never recomputed; the composite unique
// index guards against a second scoring pass duplicating them.
type Result struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	TestID     uint           `json:"teste_id" gorm:"not null;uniqueIndex:idx_results_test_category"`
	CategoryID uint           `json:"categoria_id" gorm:"not null;uniqueIndex:idx_results_test_category"`
	Category   Category       `json:"categoria,omitempty" gorm:"foreignKey:CategoryID"`
	Score      int            `json:"pontuacao" gorm:"not null"`
	Percent    float64        `json:"percentual" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
