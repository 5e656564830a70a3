package repository

import (
	"github.com/renatinhocg/bruna/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	Update(category *model.Category) error
	FindByID(id uint) (*model.Category, error)
	FindByIDWithQuestions(id uint) (*model.Category, error)
	FindByNameInsensitive(name string) (*model.Category, error)
	FindActiveWithQuestionCount() ([]struct {
		model.Category
		QuestionCount int
	}, error)
	CountReferences(id uint) (questions int64, results int64, err error)
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByIDWithQuestions(id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Where("questions.active = ?", true).Order("questions.ordem ASC")
	}).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByNameInsensitive(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindActiveWithQuestionCount() ([]struct {
	model.Category
	QuestionCount int
}, error) {
	var results []struct {
		model.Category
		QuestionCount int
	}
	err := r.db.Model(&model.Category{}).
		Select("categories.*, (SELECT COUNT(*) FROM questions WHERE questions.category_id = categories.id AND questions.active = true AND questions.deleted_at IS NULL) as question_count").
		Where("categories.active = ?", true).
		Order("categories.name ASC").
		Scan(&results).Error
	return results, err
}

func (r *categoryRepository) CountReferences(id uint) (int64, int64, error) {
	var questions, results int64
	if err := r.db.Model(&model.Question{}).Where("category_id = ?", id).Count(&questions).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&model.Result{}).Where("category_id = ?", id).Count(&results).Error; err != nil {
		return 0, 0, err
	}
	return questions, results, nil
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&model.Category{}, id).Error
}
