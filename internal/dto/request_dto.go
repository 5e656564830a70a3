package dto

// ResponseInputDTO is one (question, chosen option) pair of a submission.
type ResponseInputDTO struct {
	QuestionID uint `json:"pergunta_id" binding:"required"`
	OptionID   uint `json:"possibilidade_id" binding:"required"`
}

// TestSubmitDTO is the full questionnaire submission. Identity fields are
// optional: anonymous attempts are permitted and the name/email are stored
// as snapshots on the attempt itself.
type TestSubmitDTO struct {
	UserID    *uint              `json:"usuario_id"`
	UserName  *string            `json:"nome_usuario"`
	UserEmail *string            `json:"email_usuario"`
	Responses []ResponseInputDTO `json:"respostas" binding:"required,min=1,dive"`
}
