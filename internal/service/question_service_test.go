package service

import (
	"testing"

	"github.com/renatinhocg/bruna/internal/apperrors"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/renatinhocg/bruna/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionFixture() (*fakeQuestionRepo, *fakeCategoryRepo, *fakeOptionRepo) {
	categoryRepo := newFakeCategoryRepo(
		model.Category{ID: 10, Name: "Lógico-Matemática", Active: true},
	)
	questionRepo := newFakeQuestionRepo(
		model.Question{ID: 1, Text: "Gosto de resolver problemas de lógica", CategoryID: 10, Order: 1, Active: true},
		model.Question{ID: 2, Text: "Pergunta desativada", CategoryID: 10, Order: 2, Active: false},
	)
	optionRepo := newFakeOptionRepo(
		model.AnswerOption{ID: 101, Label: "Discordo", Value: 1, Ordinal: 1, Active: true},
		model.AnswerOption{ID: 102, Label: "Concordo", Value: 5, Ordinal: 2, Active: true},
		model.AnswerOption{ID: 103, Label: "Antiga", Value: 9, Ordinal: 3, Active: false},
	)
	return questionRepo, categoryRepo, optionRepo
}

func TestQuestionCreateAutoAssignsOrder(t *testing.T) {
	questionRepo, categoryRepo, optionRepo := questionFixture()
	svc := NewQuestionService(questionRepo, categoryRepo, optionRepo)

	created, err := svc.Create(dto.QuestionCreateDTO{
		Text:       "Nova pergunta",
		CategoryID: 10,
		Type:       "escala",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.Order, "order follows the highest slot in the category")
	assert.True(t, created.Required, "questions default to required")
	assert.True(t, created.Active)
}

func TestQuestionCreateUnknownCategory(t *testing.T) {
	questionRepo, categoryRepo, optionRepo := questionFixture()
	svc := NewQuestionService(questionRepo, categoryRepo, optionRepo)

	_, err := svc.Create(dto.QuestionCreateDTO{Text: "x", CategoryID: 99, Type: "escala"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestQuestionDeleteDeactivates(t *testing.T) {
	questionRepo, categoryRepo, optionRepo := questionFixture()
	svc := NewQuestionService(questionRepo, categoryRepo, optionRepo)

	require.NoError(t, svc.Delete(1))

	stored, err := questionRepo.FindByID(1)
	require.NoError(t, err)
	assert.False(t, stored.Active, "delete must deactivate, never remove")
}

func TestQuizOnlyActiveRows(t *testing.T) {
	questionRepo, categoryRepo, optionRepo := questionFixture()
	svc := NewQuestionService(questionRepo, categoryRepo, optionRepo)

	quiz, err := svc.Quiz()
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, uint(1), quiz.Questions[0].ID)
	require.Len(t, quiz.Options, 2)
	assert.Equal(t, "Discordo", quiz.Options[0].Label)
	assert.Equal(t, "Concordo", quiz.Options[1].Label)
}

func TestQuestionListFiltersByCategory(t *testing.T) {
	questionRepo, categoryRepo, optionRepo := questionFixture()
	questionRepo.questions[3] = model.Question{ID: 3, Text: "Outra categoria", CategoryID: 20, Order: 1, Active: true}
	svc := NewQuestionService(questionRepo, categoryRepo, optionRepo)

	categoryID := uint(10)
	out, err := svc.List(&categoryID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, uint(10), out[0].CategoryID)
}
