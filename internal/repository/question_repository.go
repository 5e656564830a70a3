package repository

import (
	"github.com/renatinhocg/bruna/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	Update(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	FindActive(categoryID *uint) ([]model.Question, error)
	NextOrder(categoryID uint) (int, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Category").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindActive(categoryID *uint) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Preload("Category").Where("active = ?", true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if err := query.Order("category_id ASC").Order("ordem ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// NextOrder returns the next free display slot within a category.
func (r *questionRepository) NextOrder(categoryID uint) (int, error) {
	var last model.Question
	err := r.db.Where("category_id = ?", categoryID).Order("ordem DESC").First(&last).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 1, nil
		}
		return 0, err
	}
	return last.Order + 1, nil
}
