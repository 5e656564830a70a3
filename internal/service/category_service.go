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

type CategoryService interface {
	List() ([]dto.CategoryDTO, error)
	Get(id uint) (*dto.CategoryDetailDTO, error)
	Create(req dto.CategoryCreateDTO) (*dto.CategoryDTO, error)
	Update(id uint, req dto.CategoryUpdateDTO) (*dto.CategoryDTO, error)
	// Delete hard-deletes only unreferenced categories; referenced ones must
	// be deactivated instead so historical results keep their meaning.
	Delete(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List() ([]dto.CategoryDTO, error) {
	rows, err := s.categoryRepo.FindActiveWithQuestionCount()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	out := make([]dto.CategoryDTO, 0, len(rows))
	for i := range rows {
		d := toCategoryDTO(&rows[i].Category)
		d.QuestionCount = rows[i].QuestionCount
		out = append(out, d)
	}
	return out, nil
}

func (s *categoryService) Get(id uint) (*dto.CategoryDetailDTO, error) {
	category, err := s.categoryRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("categoria %d não encontrada", id)
		}
		return nil, fmt.Errorf("failed to load category %d: %w", id, err)
	}

	detail := dto.CategoryDetailDTO{CategoryDTO: toCategoryDTO(category)}
	detail.QuestionCount = len(category.Questions)
	for i := range category.Questions {
		detail.Questions = append(detail.Questions, toQuestionDTO(&category.Questions[i]))
	}
	return &detail, nil
}

func (s *categoryService) Create(req dto.CategoryCreateDTO) (*dto.CategoryDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validationf("nome é obrigatório")
	}
	if err := s.ensureNameAvailable(name, 0); err != nil {
		return nil, err
	}

	category := model.Category{
		Name:            name,
		Description:     strings.TrimSpace(req.Description),
		ResultText:      strings.TrimSpace(req.ResultText),
		Characteristics: trimPtr(req.Characteristics),
		Careers:         trimPtr(req.Careers),
		Color:           strings.TrimSpace(req.Color),
		Slug:            trimPtr(req.Slug),
		Active:          true,
	}
	if err := s.categoryRepo.Create(&category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	log.Info().Uint("categoryID", category.ID).Str("name", category.Name).Msg("Category created")
	d := toCategoryDTO(&category)
	return &d, nil
}

func (s *categoryService) Update(id uint, req dto.CategoryUpdateDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("categoria %d não encontrada", id)
		}
		return nil, fmt.Errorf("failed to load category %d: %w", id, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.Validationf("nome não pode ser vazio")
		}
		if err := s.ensureNameAvailable(name, id); err != nil {
			return nil, err
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.ResultText != nil {
		category.ResultText = strings.TrimSpace(*req.ResultText)
	}
	if req.Characteristics != nil {
		category.Characteristics = trimPtr(req.Characteristics)
	}
	if req.Careers != nil {
		category.Careers = trimPtr(req.Careers)
	}
	if req.Color != nil {
		category.Color = strings.TrimSpace(*req.Color)
	}
	if req.Slug != nil {
		category.Slug = trimPtr(req.Slug)
	}
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", id, err)
	}
	d := toCategoryDTO(category)
	return &d, nil
}

func (s *categoryService) Delete(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("categoria %d não encontrada", id)
		}
		return fmt.Errorf("failed to load category %d: %w", id, err)
	}

	questions, results, err := s.categoryRepo.CountReferences(id)
	if err != nil {
		return fmt.Errorf("failed to count references of category %d: %w", id, err)
	}
	if questions > 0 || results > 0 {
		return apperrors.Conflictf(
			"categoria %d possui %d perguntas e %d resultados vinculados; desative-a em vez de excluir",
			id, questions, results,
		)
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	log.Info().Uint("categoryID", id).Msg("Category deleted")
	return nil
}

func (s *categoryService) ensureNameAvailable(name string, selfID uint) error {
	existing, err := s.categoryRepo.FindByNameInsensitive(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if existing.ID != selfID {
		return apperrors.Conflictf("já existe uma categoria com o nome %q", name)
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
