package model

import (
	"time"

	"gorm.io/gorm"
)

// IntelligenceTest is one respondent attempt at the Multiple Intelligences
// questionnaire. Concluded flips to true in the same transaction that writes
// the Result rows; Authorized is a one-way latch flipped later by an admin.
type IntelligenceTest struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	UserID             *uint          `json:"usuario_id,omitempty" gorm:"index"`
	UserName           *string        `json:"nome_usuario,omitempty"`
	UserEmail          *string        `json:"email_usuario,omitempty"`
	Concluded          bool           `json:"concluido" gorm:"not null;default:false"`
	Authorized         bool           `json:"autorizado" gorm:"not null;default:false"`
	TotalScore         int            `json:"pontuacao_total" gorm:"not null;default:0"`
	DominantCategoryID *uint          `json:"inteligencia_dominante,omitempty"`
	DominantCategory   *Category      `json:"categoria_dominante,omitempty" gorm:"foreignKey:DominantCategoryID"`
	Responses          []Response     `json:"respostas,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Results            []Result       `json:"resultados,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
