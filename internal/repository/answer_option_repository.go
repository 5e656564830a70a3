package repository

import (
	"github.com/renatinhocg/bruna/internal/model"
	"gorm.io/gorm"
)

type AnswerOptionRepository interface {
	Create(option *model.AnswerOption) error
	Update(option *model.AnswerOption) error
	FindByID(id uint) (*model.AnswerOption, error)
	FindByIDs(ids []uint) ([]model.AnswerOption, error)
	FindActive() ([]model.AnswerOption, error)
	// MaxActiveValue is the live scale ceiling used by scoring. Zero with no
	// error means no active option exists.
	MaxActiveValue() (int, error)
	NextOrdinal() (int, error)
}

type answerOptionRepository struct {
	db *gorm.DB
}

func NewAnswerOptionRepository(db *gorm.DB) AnswerOptionRepository {
	return &answerOptionRepository{db: db}
}

func (r *answerOptionRepository) Create(option *model.AnswerOption) error {
	return r.db.Create(option).Error
}

func (r *answerOptionRepository) Update(option *model.AnswerOption) error {
	return r.db.Save(option).Error
}

func (r *answerOptionRepository) FindByID(id uint) (*model.AnswerOption, error) {
	var option model.AnswerOption
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *answerOptionRepository) FindByIDs(ids []uint) ([]model.AnswerOption, error) {
	var options []model.AnswerOption
	if len(ids) == 0 {
		return options, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *answerOptionRepository) FindActive() ([]model.AnswerOption, error) {
	var options []model.AnswerOption
	if err := r.db.Where("active = ?", true).Order("ordem ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *answerOptionRepository) MaxActiveValue() (int, error) {
	var max *int
	err := r.db.Model(&model.AnswerOption{}).
		Where("active = ?", true).
		Select("MAX(value)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *answerOptionRepository) NextOrdinal() (int, error) {
	var last model.AnswerOption
	err := r.db.Order("ordem DESC").First(&last).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 1, nil
		}
		return 0, err
	}
	return last.Ordinal + 1, nil
}
