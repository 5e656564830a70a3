package model

import (
	"time"

	"gorm.io/gorm"
)

// Response records the option a respondent chose for one question of one
// attempt. The composite unique index enforces at most one row per
// (attempt, question) pair.
type Response struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	TestID     uint           `json:"teste_id" gorm:"not null;uniqueIndex:idx_responses_test_question"`
	QuestionID uint           `json:"pergunta_id" gorm:"not null;uniqueIndex:idx_responses_test_question"`
	Question   Question       `json:"pergunta,omitempty" gorm:"foreignKey:QuestionID"`
	OptionID   uint           `json:"possibilidade_id" gorm:"not null"`
	Option     AnswerOption   `json:"possibilidade,omitempty" gorm:"foreignKey:OptionID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
