package service

import (
	"errors"
	"fmt"

	"github.com/renatinhocg/bruna/internal/apperrors"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/renatinhocg/bruna/internal/repository"
	"github.com/renatinhocg/bruna/internal/slug"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultListLimit = 50

// ProjectedTest carries exactly one of the two projections of an attempt.
// The restricted view exists so an unauthorized attempt never leaks scores.
type ProjectedTest struct {
	Full       *dto.TestDetailDTO
	Restricted *dto.TestRestrictedDTO
}

type TestService interface {
	Get(id uint, viewer Viewer) (*ProjectedTest, error)
	Authorize(id uint, actorID uint) (*dto.TestSummaryDTO, error)
	HasCompleted(userID uint) (bool, error)
	List(userID *uint, limit, offset int) (*dto.TestListDTO, error)
	// MyResults returns the caller's released results: the latest attempt
	// that is both concluded and authorized, or an empty slice.
	MyResults(userID uint) ([]dto.ReleasedResultDTO, error)
}

type testService struct {
	testRepo repository.IntelligenceTestRepository
}

func NewTestService(testRepo repository.IntelligenceTestRepository) TestService {
	return &testService{testRepo: testRepo}
}

func (s *testService) Get(id uint, viewer Viewer) (*ProjectedTest, error) {
	test, err := s.testRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("teste %d não encontrado", id)
		}
		return nil, fmt.Errorf("failed to load attempt %d: %w", id, err)
	}

	switch viewer.Kind() {
	case ViewerAdmin:
		full := toTestDetailDTO(test)
		full.IsAdminView = true
		return &ProjectedTest{Full: &full}, nil
	case ViewerOwner, ViewerAnonymous:
		if !test.Authorized {
			return &ProjectedTest{Restricted: &dto.TestRestrictedDTO{
				ID:         test.ID,
				UserName:   test.UserName,
				UserEmail:  test.UserEmail,
				Concluded:  test.Concluded,
				Authorized: false,
				Message:    "Teste concluído. Aguardando autorização para visualizar resultados.",
				CreatedAt:  test.CreatedAt,
			}}, nil
		}
		full := toTestDetailDTO(test)
		return &ProjectedTest{Full: &full}, nil
	default:
		return nil, fmt.Errorf("unknown viewer kind %d", viewer.Kind())
	}
}

func (s *testService) Authorize(id uint, actorID uint) (*dto.TestSummaryDTO, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("teste %d não encontrado", id)
		}
		return nil, fmt.Errorf("failed to load attempt %d: %w", id, err)
	}
	if !test.Concluded {
		return nil, apperrors.Preconditionf("teste %d ainda não foi concluído", id)
	}
	if test.Authorized {
		return nil, apperrors.Conflictf("teste %d já foi autorizado", id)
	}

	test.Authorized = true
	if err := s.testRepo.Update(test); err != nil {
		return nil, fmt.Errorf("failed to authorize attempt %d: %w", id, err)
	}

	log.Info().Uint("testID", id).Uint("actorID", actorID).Msg("Attempt authorized")
	summary := toTestSummaryDTO(test)
	return &summary, nil
}

func (s *testService) HasCompleted(userID uint) (bool, error) {
	done, err := s.testRepo.HasConcludedForUser(userID)
	if err != nil {
		return false, fmt.Errorf("failed to check completed attempts for user %d: %w", userID, err)
	}
	return done, nil
}

func (s *testService) List(userID *uint, limit, offset int) (*dto.TestListDTO, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	tests, total, err := s.testRepo.FindAllFiltered(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	summaries := make([]dto.TestSummaryDTO, 0, len(tests))
	for i := range tests {
		summaries = append(summaries, toTestSummaryDTO(&tests[i]))
	}
	return &dto.TestListDTO{
		Data: summaries,
		Meta: dto.ListMetaDTO{Total: total, Limit: limit, Offset: offset},
	}, nil
}

func (s *testService) MyResults(userID uint) ([]dto.ReleasedResultDTO, error) {
	test, err := s.testRepo.FindLatestAuthorizedForUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.ReleasedResultDTO{}, nil
		}
		return nil, fmt.Errorf("failed to load released results for user %d: %w", userID, err)
	}

	out := make([]dto.ReleasedResultDTO, 0, len(test.Results))
	for i := range test.Results {
		r := &test.Results[i]
		intelligenceType := ""
		if r.Category.Slug != nil && *r.Category.Slug != "" {
			intelligenceType = *r.Category.Slug
		} else if r.Category.Name != "" {
			intelligenceType = slug.Make(r.Category.Name)
		}
		out = append(out, dto.ReleasedResultDTO{
			ID:               r.ID,
			IntelligenceType: intelligenceType,
			Score:            r.Score,
			Percent:          r.Percent,
			Category:         toCategoryDTO(&r.Category),
		})
	}
	return out, nil
}
