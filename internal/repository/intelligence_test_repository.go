package repository

import (
	"github.com/renatinhocg/bruna/internal/apperrors"
	"github.com/renatinhocg/bruna/internal/model"
	"gorm.io/gorm"
)

type IntelligenceTestRepository interface {
	// CreateScored persists the attempt, its responses and its result rows
	// as one transaction: either everything lands, including the concluded
	// flag, or nothing does.
	CreateScored(test *model.IntelligenceTest) error
	Update(test *model.IntelligenceTest) error
	FindByID(id uint) (*model.IntelligenceTest, error)
	FindByIDWithDetails(id uint) (*model.IntelligenceTest, error)
	FindLatestAuthorizedForUser(userID uint) (*model.IntelligenceTest, error)
	HasConcludedForUser(userID uint) (bool, error)
	FindAllFiltered(userID *uint, limit, offset int) ([]model.IntelligenceTest, int64, error)
}

type intelligenceTestRepository struct {
	db *gorm.DB
}

func NewIntelligenceTestRepository(db *gorm.DB) IntelligenceTestRepository {
	return &intelligenceTestRepository{db: db}
}

func (r *intelligenceTestRepository) CreateScored(test *model.IntelligenceTest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		results := test.Results
		test.Results = nil

		if err := tx.Create(test).Error; err != nil {
			return err
		}

		// The unique (test, category) index already blocks duplicates, but a
		// second scoring pass over an existing attempt must fail loudly, not
		// double-count.
		var existing int64
		if err := tx.Model(&model.Result{}).Where("test_id = ?", test.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperrors.Integrityf("attempt %d already has %d result rows", test.ID, existing)
		}

		for i := range results {
			results[i].TestID = test.ID
		}
		if len(results) > 0 {
			if err := tx.Create(&results).Error; err != nil {
				return err
			}
		}
		test.Results = results
		return nil
	})
}

func (r *intelligenceTestRepository) Update(test *model.IntelligenceTest) error {
	return r.db.Omit("Responses", "Results").Save(test).Error
}

func (r *intelligenceTestRepository) FindByID(id uint) (*model.IntelligenceTest, error) {
	var test model.IntelligenceTest
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *intelligenceTestRepository) FindByIDWithDetails(id uint) (*model.IntelligenceTest, error) {
	var test model.IntelligenceTest
	err := r.db.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("results.percent DESC")
		}).
		Preload("Results.Category").
		Preload("Responses.Question").
		Preload("Responses.Option").
		Preload("DominantCategory").
		First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *intelligenceTestRepository) FindLatestAuthorizedForUser(userID uint) (*model.IntelligenceTest, error) {
	var test model.IntelligenceTest
	err := r.db.
		Where("user_id = ? AND concluded = ? AND authorized = ?", userID, true, true).
		Order("created_at DESC").
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("results.percent DESC")
		}).
		Preload("Results.Category").
		First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *intelligenceTestRepository) HasConcludedForUser(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.IntelligenceTest{}).
		Where("user_id = ? AND concluded = ?", userID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *intelligenceTestRepository) FindAllFiltered(userID *uint, limit, offset int) ([]model.IntelligenceTest, int64, error) {
	query := r.db.Model(&model.IntelligenceTest{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tests []model.IntelligenceTest
	err := query.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("results.percent DESC")
		}).
		Preload("Results.Category").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tests).Error
	if err != nil {
		return nil, 0, err
	}
	return tests, total, nil
}
