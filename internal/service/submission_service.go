package service

import (
	"fmt"

	"github.com/renatinhocg/bruna/internal/apperrors"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/renatinhocg/bruna/internal/model"
	"github.com/renatinhocg/bruna/internal/repository"
	"github.com/renatinhocg/bruna/internal/scoring"
	"github.com/rs/zerolog/log"
)

// SubmissionService records a full questionnaire submission and scores it in
// the same request. Results stay hidden from the respondent until an admin
// authorizes the attempt.
type SubmissionService interface {
	Submit(req dto.TestSubmitDTO) (*dto.SubmitAckDTO, error)
}

type submissionService struct {
	questionRepo repository.QuestionRepository
	optionRepo   repository.AnswerOptionRepository
	testRepo     repository.IntelligenceTestRepository
}

func NewSubmissionService(
	questionRepo repository.QuestionRepository,
	optionRepo repository.AnswerOptionRepository,
	testRepo repository.IntelligenceTestRepository,
) SubmissionService {
	return &submissionService{
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
		testRepo:     testRepo,
	}
}

func (s *submissionService) Submit(req dto.TestSubmitDTO) (*dto.SubmitAckDTO, error) {
	if len(req.Responses) == 0 {
		return nil, apperrors.Validationf("respostas são obrigatórias")
	}

	// One response per question: a re-submitted pair replaces the earlier
	// one instead of counting twice.
	chosen := make(map[uint]uint, len(req.Responses))
	order := make([]uint, 0, len(req.Responses))
	for _, in := range req.Responses {
		if _, seen := chosen[in.QuestionID]; !seen {
			order = append(order, in.QuestionID)
		}
		chosen[in.QuestionID] = in.OptionID
	}

	questions, options, err := s.resolveCatalog(chosen)
	if err != nil {
		return nil, err
	}

	// The scale ceiling comes from the live catalog, never from the request
	// and never hardcoded.
	maxValue, err := s.optionRepo.MaxActiveValue()
	if err != nil {
		return nil, fmt.Errorf("failed to read answer scale ceiling: %w", err)
	}
	if maxValue <= 0 {
		return nil, apperrors.Validationf("nenhuma possibilidade de resposta ativa configurada")
	}

	answers := make([]scoring.Answer, 0, len(order))
	responses := make([]model.Response, 0, len(order))
	for _, questionID := range order {
		optionID := chosen[questionID]
		question := questions[questionID]
		option := options[optionID]
		answers = append(answers, scoring.Answer{
			QuestionID:  questionID,
			CategoryID:  question.CategoryID,
			OptionValue: option.Value,
		})
		responses = append(responses, model.Response{
			QuestionID: questionID,
			OptionID:   optionID,
		})
	}

	outcome := scoring.Compute(answers, maxValue)

	results := make([]model.Result, 0, len(outcome.Scores))
	for _, score := range outcome.Scores {
		results = append(results, model.Result{
			CategoryID: score.CategoryID,
			Score:      score.Score,
			Percent:    score.Percent,
		})
	}

	test := model.IntelligenceTest{
		UserID:             req.UserID,
		UserName:           req.UserName,
		UserEmail:          req.UserEmail,
		Concluded:          true,
		Authorized:         false,
		TotalScore:         outcome.TotalScore,
		DominantCategoryID: outcome.DominantCategoryID,
		Responses:          responses,
		Results:            results,
	}

	if err := s.testRepo.CreateScored(&test); err != nil {
		log.Error().Err(err).Interface("userID", req.UserID).Msg("Submit: failed to persist scored attempt")
		return nil, fmt.Errorf("failed to persist scored attempt: %w", err)
	}

	log.Info().
		Uint("testID", test.ID).
		Int("answers", len(responses)).
		Int("categories", len(results)).
		Int("totalScore", outcome.TotalScore).
		Msg("Attempt submitted and scored")

	return &dto.SubmitAckDTO{
		ID:         test.ID,
		Concluded:  true,
		Authorized: false,
		Message:    "Teste enviado com sucesso! Aguarde a liberação do resultado.",
	}, nil
}

// resolveCatalog re-fetches every referenced question and option from the
// authoritative catalog. Client-side values are never trusted.
func (s *submissionService) resolveCatalog(chosen map[uint]uint) (map[uint]model.Question, map[uint]model.AnswerOption, error) {
	questionIDs := make([]uint, 0, len(chosen))
	optionIDSet := make(map[uint]struct{}, len(chosen))
	for questionID, optionID := range chosen {
		questionIDs = append(questionIDs, questionID)
		optionIDSet[optionID] = struct{}{}
	}
	optionIDs := make([]uint, 0, len(optionIDSet))
	for id := range optionIDSet {
		optionIDs = append(optionIDs, id)
	}

	questionRows, err := s.questionRepo.FindByIDs(questionIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load questions: %w", err)
	}
	questions := make(map[uint]model.Question, len(questionRows))
	for _, q := range questionRows {
		questions[q.ID] = q
	}

	optionRows, err := s.optionRepo.FindByIDs(optionIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load answer options: %w", err)
	}
	options := make(map[uint]model.AnswerOption, len(optionRows))
	for _, o := range optionRows {
		options[o.ID] = o
	}

	for questionID, optionID := range chosen {
		if _, ok := questions[questionID]; !ok {
			return nil, nil, apperrors.Validationf("pergunta %d não encontrada", questionID)
		}
		if _, ok := options[optionID]; !ok {
			return nil, nil, apperrors.Validationf("possibilidade %d não encontrada", optionID)
		}
	}
	return questions, options, nil
}
