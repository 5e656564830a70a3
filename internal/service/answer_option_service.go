package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/renatinhocg/bruna/internal/apperrors"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/renatinhocg/bruna/internal/model"
	"github.com/renatinhocg/bruna/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AnswerOptionService interface {
	List() ([]dto.OptionDTO, error)
	Get(id uint) (*dto.OptionDTO, error)
	Create(req dto.OptionCreateDTO) (*dto.OptionDTO, error)
	Update(id uint, req dto.OptionUpdateDTO) (*dto.OptionDTO, error)
	Delete(id uint) error
}

type answerOptionService struct {
	optionRepo repository.AnswerOptionRepository
}

func NewAnswerOptionService(optionRepo repository.AnswerOptionRepository) AnswerOptionService {
	return &answerOptionService{optionRepo: optionRepo}
}

func (s *answerOptionService) List() ([]dto.OptionDTO, error) {
	options, err := s.optionRepo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list answer options: %w", err)
	}
	out := make([]dto.OptionDTO, 0, len(options))
	for i := range options {
		out = append(out, toOptionDTO(&options[i]))
	}
	return out, nil
}

func (s *answerOptionService) Get(id uint) (*dto.OptionDTO, error) {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("possibilidade %d não encontrada", id)
		}
		return nil, fmt.Errorf("failed to load answer option %d: %w", id, err)
	}
	d := toOptionDTO(option)
	return &d, nil
}

func (s *answerOptionService) Create(req dto.OptionCreateDTO) (*dto.OptionDTO, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, apperrors.Validationf("texto é obrigatório")
	}
	if req.Value == nil {
		return nil, apperrors.Validationf("valor é obrigatório")
	}

	ordinal := req.Ordinal
	if ordinal <= 0 {
		next, err := s.optionRepo.NextOrdinal()
		if err != nil {
			return nil, fmt.Errorf("failed to pick next option ordinal: %w", err)
		}
		ordinal = next
	}

	option := model.AnswerOption{
		Label:       label,
		Value:       *req.Value,
		Ordinal:     ordinal,
		Description: strings.TrimSpace(req.Description),
		Active:      true,
	}
	if err := s.optionRepo.Create(&option); err != nil {
		return nil, fmt.Errorf("failed to create answer option: %w", err)
	}

	log.Info().Uint("optionID", option.ID).Int("value", option.Value).Msg("Answer option created")
	d := toOptionDTO(&option)
	return &d, nil
}

func (s *answerOptionService) Update(id uint, req dto.OptionUpdateDTO) (*dto.OptionDTO, error) {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("possibilidade %d não encontrada", id)
		}
		return nil, fmt.Errorf("failed to load answer option %d: %w", id, err)
	}

	if req.Label != nil {
		label := strings.TrimSpace(*req.Label)
		if label == "" {
			return nil, apperrors.Validationf("texto não pode ser vazio")
		}
		option.Label = label
	}
	if req.Value != nil {
		option.Value = *req.Value
	}
	if req.Ordinal != nil && *req.Ordinal > 0 {
		option.Ordinal = *req.Ordinal
	}
	if req.Description != nil {
		option.Description = strings.TrimSpace(*req.Description)
	}
	if req.Active != nil {
		option.Active = *req.Active
	}

	if err := s.optionRepo.Update(option); err != nil {
		return nil, fmt.Errorf("failed to update answer option %d: %w", id, err)
	}
	d := toOptionDTO(option)
	return &d, nil
}

func (s *answerOptionService) Delete(id uint) error {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("possibilidade %d não encontrada", id)
		}
		return fmt.Errorf("failed to load answer option %d: %w", id, err)
	}

	option.Active = false
	if err := s.optionRepo.Update(option); err != nil {
		return fmt.Errorf("failed to deactivate answer option %d: %w", id, err)
	}
	log.Info().Uint("optionID", id).Msg("Answer option deactivated")
	return nil
}
