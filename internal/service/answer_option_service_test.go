package service

import (
	"testing"

	"github.com/renatinhocg/bruna/internal/apperrors"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/renatinhocg/bruna/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionCreateAutoAssignsOrdinal(t *testing.T) {
	repo := newFakeOptionRepo(
		model.AnswerOption{ID: 101, Label: "Discordo", Value: 1, Ordinal: 1, Active: true},
		model.AnswerOption{ID: 102, Label: "Concordo", Value: 5, Ordinal: 2, Active: true},
	)
	svc := NewAnswerOptionService(repo)

	value := 3
	created, err := svc.Create(dto.OptionCreateDTO{Label: "Neutro", Value: &value})
	require.NoError(t, err)
	assert.Equal(t, 3, created.Ordinal)
	assert.True(t, created.Active)
}

func TestOptionCreateAcceptsZeroValue(t *testing.T) {
	svc := NewAnswerOptionService(newFakeOptionRepo())

	// A 0..4 scale legitimately starts at zero.
	value := 0
	created, err := svc.Create(dto.OptionCreateDTO{Label: "Nunca", Value: &value})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Value)
}

func TestOptionCreateRequiresValue(t *testing.T) {
	svc := NewAnswerOptionService(newFakeOptionRepo())

	_, err := svc.Create(dto.OptionCreateDTO{Label: "Sem valor"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestOptionDeleteDeactivates(t *testing.T) {
	repo := newFakeOptionRepo(
		model.AnswerOption{ID: 101, Label: "Discordo", Value: 1, Ordinal: 1, Active: true},
	)
	svc := NewAnswerOptionService(repo)

	require.NoError(t, svc.Delete(101))

	stored, err := repo.FindByID(101)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}
