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

type QuestionService interface {
	List(categoryID *uint) ([]dto.QuestionDTO, error)
	Get(id uint) (*dto.QuestionDTO, error)
	Create(req dto.QuestionCreateDTO) (*dto.QuestionDTO, error)
	Update(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionDTO, error)
	// Delete deactivates; question rows referenced by historical attempts
	// are never removed.
	Delete(id uint) error
	// Quiz assembles everything the questionnaire wizard renders: active
	// questions in display order plus the active answer scale.
	Quiz() (*dto.QuizDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	optionRepo   repository.AnswerOptionRepository
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	optionRepo repository.AnswerOptionRepository,
) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		optionRepo:   optionRepo,
	}
}

func (s *questionService) List(categoryID *uint) ([]dto.QuestionDTO, error) {
	questions, err := s.questionRepo.FindActive(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	out := make([]dto.QuestionDTO, 0, len(questions))
	for i := range questions {
		out = append(out, toQuestionDTO(&questions[i]))
	}
	return out, nil
}

func (s *questionService) Get(id uint) (*dto.QuestionDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("pergunta %d não encontrada", id)
		}
		return nil, fmt.Errorf("failed to load question %d: %w", id, err)
	}
	d := toQuestionDTO(question)
	return &d, nil
}

func (s *questionService) Create(req dto.QuestionCreateDTO) (*dto.QuestionDTO, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.Validationf("texto é obrigatório")
	}
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validationf("categoria %d não encontrada", req.CategoryID)
		}
		return nil, fmt.Errorf("failed to check category %d: %w", req.CategoryID, err)
	}

	order := req.Order
	if order <= 0 {
		next, err := s.questionRepo.NextOrder(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to pick next question order: %w", err)
		}
		order = next
	}

	required := true
	if req.Required != nil {
		required = *req.Required
	}

	question := model.Question{
		Text:       text,
		CategoryID: req.CategoryID,
		Type:       strings.TrimSpace(req.Type),
		Order:      order,
		Required:   required,
		Active:     true,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	log.Info().Uint("questionID", question.ID).Uint("categoryID", question.CategoryID).Msg("Question created")
	d := toQuestionDTO(&question)
	return &d, nil
}

func (s *questionService) Update(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("pergunta %d não encontrada", id)
		}
		return nil, fmt.Errorf("failed to load question %d: %w", id, err)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.Validationf("categoria %d não encontrada", *req.CategoryID)
			}
			return nil, fmt.Errorf("failed to check category %d: %w", *req.CategoryID, err)
		}
		question.CategoryID = *req.CategoryID
	}
	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		if text == "" {
			return nil, apperrors.Validationf("texto não pode ser vazio")
		}
		question.Text = text
	}
	if req.Type != nil {
		question.Type = strings.TrimSpace(*req.Type)
	}
	if req.Order != nil && *req.Order > 0 {
		question.Order = *req.Order
	}
	if req.Required != nil {
		question.Required = *req.Required
	}
	if req.Active != nil {
		question.Active = *req.Active
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to update question %d: %w", id, err)
	}
	d := toQuestionDTO(question)
	return &d, nil
}

func (s *questionService) Delete(id uint) error {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("pergunta %d não encontrada", id)
		}
		return fmt.Errorf("failed to load question %d: %w", id, err)
	}

	question.Active = false
	if err := s.questionRepo.Update(question); err != nil {
		return fmt.Errorf("failed to deactivate question %d: %w", id, err)
	}
	log.Info().Uint("questionID", id).Msg("Question deactivated")
	return nil
}

func (s *questionService) Quiz() (*dto.QuizDTO, error) {
	questions, err := s.questionRepo.FindActive(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz questions: %w", err)
	}
	options, err := s.optionRepo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz options: %w", err)
	}

	quiz := dto.QuizDTO{
		Questions: make([]dto.QuestionDTO, 0, len(questions)),
		Options:   make([]dto.OptionDTO, 0, len(options)),
	}
	for i := range questions {
		quiz.Questions = append(quiz.Questions, toQuestionDTO(&questions[i]))
	}
	for i := range options {
		quiz.Options = append(quiz.Options, toOptionDTO(&options[i]))
	}
	return &quiz, nil
}
