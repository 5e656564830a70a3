package service

import (
	"github.com/jinzhu/copier"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/renatinhocg/bruna/internal/model"
	"github.com/rs/zerolog/log"
)

func toCategoryDTO(m *model.Category) dto.CategoryDTO {
	var out dto.CategoryDTO
	if err := copier.Copy(&out, m); err != nil {
		log.Error().Err(err).Uint("categoryID", m.ID).Msg("Failed to copy category to DTO")
	}
	return out
}

func toQuestionDTO(m *model.Question) dto.QuestionDTO {
	var out dto.QuestionDTO
	if err := copier.Copy(&out, m); err != nil {
		log.Error().Err(err).Uint("questionID", m.ID).Msg("Failed to copy question to DTO")
	}
	if m.Category.ID != 0 {
		cat := toCategoryDTO(&m.Category)
		out.Category = &cat
	} else {
		out.Category = nil
	}
	return out
}

func toOptionDTO(m *model.AnswerOption) dto.OptionDTO {
	var out dto.OptionDTO
	if err := copier.Copy(&out, m); err != nil {
		log.Error().Err(err).Uint("optionID", m.ID).Msg("Failed to copy answer option to DTO")
	}
	return out
}

func toResultDTO(m *model.Result) dto.ResultDTO {
	out := dto.ResultDTO{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Score:      m.Score,
		Percent:    m.Percent,
	}
	if m.Category.ID != 0 {
		cat := toCategoryDTO(&m.Category)
		out.Category = &cat
	}
	return out
}

func toResponseDTO(m *model.Response) dto.ResponseDTO {
	return dto.ResponseDTO{
		ID:           m.ID,
		QuestionID:   m.QuestionID,
		QuestionText: m.Question.Text,
		OptionID:     m.OptionID,
		OptionLabel:  m.Option.Label,
		OptionValue:  m.Option.Value,
	}
}

func toTestSummaryDTO(m *model.IntelligenceTest) dto.TestSummaryDTO {
	out := dto.TestSummaryDTO{
		ID:                 m.ID,
		UserID:             m.UserID,
		UserName:           m.UserName,
		UserEmail:          m.UserEmail,
		Concluded:          m.Concluded,
		Authorized:         m.Authorized,
		TotalScore:         m.TotalScore,
		DominantCategoryID: m.DominantCategoryID,
		CreatedAt:          m.CreatedAt,
	}
	// Results arrive sorted by percent descending; the first one is the
	// dominant intelligence shown in listings.
	if len(m.Results) > 0 {
		top := toResultDTO(&m.Results[0])
		out.TopResult = &top
	}
	return out
}

func toTestDetailDTO(m *model.IntelligenceTest) dto.TestDetailDTO {
	out := dto.TestDetailDTO{
		ID:                 m.ID,
		UserID:             m.UserID,
		UserName:           m.UserName,
		UserEmail:          m.UserEmail,
		Concluded:          m.Concluded,
		Authorized:         m.Authorized,
		TotalScore:         m.TotalScore,
		DominantCategoryID: m.DominantCategoryID,
		Results:            make([]dto.ResultDTO, 0, len(m.Results)),
		CreatedAt:          m.CreatedAt,
	}
	if m.DominantCategory != nil {
		cat := toCategoryDTO(m.DominantCategory)
		out.DominantCategory = &cat
	}
	for i := range m.Results {
		out.Results = append(out.Results, toResultDTO(&m.Results[i]))
	}
	for i := range m.Responses {
		out.Responses = append(out.Responses, toResponseDTO(&m.Responses[i]))
	}
	return out
}
