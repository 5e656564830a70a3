package service

import (
	"testing"

	"github.com/renatinhocg/bruna/internal/apperrors"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/renatinhocg/bruna/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two categories, two questions each, a 1..5 scale.
func submissionFixture() (*fakeQuestionRepo, *fakeOptionRepo, *fakeTestRepo) {
	questionRepo := newFakeQuestionRepo(
		model.Question{ID: 1, Text: "Gosto de resolver problemas de lógica", CategoryID: 10, Active: true},
		model.Question{ID: 2, Text: "Faço contas de cabeça com facilidade", CategoryID: 10, Active: true},
		model.Question{ID: 3, Text: "Gosto de escrever textos", CategoryID: 20, Active: true},
		model.Question{ID: 4, Text: "Aprendo palavras novas com facilidade", CategoryID: 20, Active: true},
	)
	optionRepo := newFakeOptionRepo(
		model.AnswerOption{ID: 101, Label: "Discordo totalmente", Value: 1, Ordinal: 1, Active: true},
		model.AnswerOption{ID: 102, Label: "Discordo", Value: 2, Ordinal: 2, Active: true},
		model.AnswerOption{ID: 103, Label: "Neutro", Value: 3, Ordinal: 3, Active: true},
		model.AnswerOption{ID: 104, Label: "Concordo", Value: 4, Ordinal: 4, Active: true},
		model.AnswerOption{ID: 105, Label: "Concordo totalmente", Value: 5, Ordinal: 5, Active: true},
	)
	return questionRepo, optionRepo, newFakeTestRepo()
}

func TestSubmitEmptyResponses(t *testing.T) {
	questionRepo, optionRepo, testRepo := submissionFixture()
	svc := NewSubmissionService(questionRepo, optionRepo, testRepo)

	_, err := svc.Submit(dto.TestSubmitDTO{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestSubmitUnknownQuestion(t *testing.T) {
	questionRepo, optionRepo, testRepo := submissionFixture()
	svc := NewSubmissionService(questionRepo, optionRepo, testRepo)

	_, err := svc.Submit(dto.TestSubmitDTO{Responses: []dto.ResponseInputDTO{
		{QuestionID: 999, OptionID: 103},
	}})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "pergunta 999")
	assert.Empty(t, testRepo.tests, "nothing may be persisted on a rejected submission")
}

func TestSubmitUnknownOption(t *testing.T) {
	questionRepo, optionRepo, testRepo := submissionFixture()
	svc := NewSubmissionService(questionRepo, optionRepo, testRepo)

	_, err := svc.Submit(dto.TestSubmitDTO{Responses: []dto.ResponseInputDTO{
		{QuestionID: 1, OptionID: 999},
	}})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "possibilidade 999")
}

func TestSubmitNoActiveOptions(t *testing.T) {
	questionRepo, _, testRepo := submissionFixture()
	optionRepo := newFakeOptionRepo(
		model.AnswerOption{ID: 101, Label: "Desativada", Value: 5, Ordinal: 1, Active: false},
	)
	svc := NewSubmissionService(questionRepo, optionRepo, testRepo)

	_, err := svc.Submit(dto.TestSubmitDTO{Responses: []dto.ResponseInputDTO{
		{QuestionID: 1, OptionID: 101},
	}})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestSubmitScoresAndPersistsAtomically(t *testing.T) {
	questionRepo, optionRepo, testRepo := submissionFixture()
	svc := NewSubmissionService(questionRepo, optionRepo, testRepo)

	userID := uint(7)
	name := "Ana"
	ack, err := svc.Submit(dto.TestSubmitDTO{
		UserID:   &userID,
		UserName: &name,
		Responses: []dto.ResponseInputDTO{
			{QuestionID: 1, OptionID: 105}, // lógica: 5
			{QuestionID: 2, OptionID: 104}, // lógica: 4
			{QuestionID: 3, OptionID: 102}, // linguística: 2
			{QuestionID: 4, OptionID: 101}, // linguística: 1
		},
	})
	require.NoError(t, err)
	require.NotNil(t, ack)
	assert.True(t, ack.Concluded)
	assert.False(t, ack.Authorized)
	assert.NotZero(t, ack.ID)

	stored, err := testRepo.FindByID(ack.ID)
	require.NoError(t, err)
	assert.True(t, stored.Concluded)
	assert.False(t, stored.Authorized)
	assert.Equal(t, 12, stored.TotalScore)
	require.NotNil(t, stored.DominantCategoryID)
	assert.Equal(t, uint(10), *stored.DominantCategoryID)
	require.Len(t, stored.Results, 2)
	require.Len(t, stored.Responses, 4)

	byCategory := make(map[uint]model.Result)
	for _, r := range stored.Results {
		byCategory[r.CategoryID] = r
	}
	assert.Equal(t, 9, byCategory[10].Score)
	assert.InDelta(t, 90.0, byCategory[10].Percent, 0.001) // 9 / (2*5)
	assert.Equal(t, 3, byCategory[20].Score)
	assert.InDelta(t, 30.0, byCategory[20].Percent, 0.001)
}

func TestSubmitDeduplicatesRepeatedQuestions(t *testing.T) {
	questionRepo, optionRepo, testRepo := submissionFixture()
	svc := NewSubmissionService(questionRepo, optionRepo, testRepo)

	// Question 1 answered twice: the later pair wins and the question counts
	// once in the normalization.
	ack, err := svc.Submit(dto.TestSubmitDTO{Responses: []dto.ResponseInputDTO{
		{QuestionID: 1, OptionID: 101},
		{QuestionID: 1, OptionID: 105},
	}})
	require.NoError(t, err)

	stored, err := testRepo.FindByID(ack.ID)
	require.NoError(t, err)
	require.Len(t, stored.Responses, 1)
	assert.Equal(t, uint(105), stored.Responses[0].OptionID)
	require.Len(t, stored.Results, 1)
	assert.Equal(t, 5, stored.Results[0].Score)
	assert.InDelta(t, 100.0, stored.Results[0].Percent, 0.001)
	assert.Equal(t, 5, stored.TotalScore)
}

func TestSubmitAnonymousAttempt(t *testing.T) {
	questionRepo, optionRepo, testRepo := submissionFixture()
	svc := NewSubmissionService(questionRepo, optionRepo, testRepo)

	ack, err := svc.Submit(dto.TestSubmitDTO{Responses: []dto.ResponseInputDTO{
		{QuestionID: 1, OptionID: 103},
	}})
	require.NoError(t, err)

	stored, err := testRepo.FindByID(ack.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.UserID)
	assert.True(t, stored.Concluded)
}
