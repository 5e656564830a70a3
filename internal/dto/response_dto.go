package dto

import "time"

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// --- Catalog ---

type CategoryDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"nome"`
	Description     string    `json:"descricao"`
	ResultText      string    `json:"resultado"`
	Characteristics *string   `json:"caracteristicas_inteligente,omitempty"`
	Careers         *string   `json:"carreiras_associadas,omitempty"`
	Color           string    `json:"cor"`
	Slug            *string   `json:"slug,omitempty"`
	Active          bool      `json:"ativo"`
	QuestionCount   int       `json:"total_perguntas,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CategoryDetailDTO struct {
	CategoryDTO
	Questions []QuestionDTO `json:"perguntas,omitempty"`
}

type QuestionDTO struct {
	ID         uint         `json:"id"`
	Text       string       `json:"texto"`
	CategoryID uint         `json:"categoria_id"`
	Category   *CategoryDTO `json:"categoria,omitempty"`
	Type       string       `json:"tipo"`
	Order      int          `json:"ordem"`
	Required   bool         `json:"obrigatoria"`
	Active     bool         `json:"ativo"`
	CreatedAt  time.Time    `json:"created_at"`
}

type OptionDTO struct {
	ID          uint   `json:"id"`
	Label       string `json:"texto"`
	Value       int    `json:"valor"`
	Ordinal     int    `json:"ordem"`
	Description string `json:"descricao,omitempty"`
	Active      bool   `json:"ativo"`
}

// QuizDTO bundles what the questionnaire wizard needs to render.
type QuizDTO struct {
	Questions []QuestionDTO `json:"perguntas"`
	Options   []OptionDTO   `json:"possibilidades"`
}

// --- Attempts ---

// SubmitAckDTO acknowledges a submission without exposing results, which
// stay hidden until an admin releases them.
type SubmitAckDTO struct {
	ID         uint   `json:"id"`
	Concluded  bool   `json:"concluido"`
	Authorized bool   `json:"autorizado"`
	Message    string `json:"message"`
}

type ResultDTO struct {
	ID         uint         `json:"id"`
	CategoryID uint         `json:"categoria_id"`
	Category   *CategoryDTO `json:"categoria,omitempty"`
	Score      int          `json:"pontuacao"`
	Percent    float64      `json:"percentual"`
}

type ResponseDTO struct {
	ID           uint   `json:"id"`
	QuestionID   uint   `json:"pergunta_id"`
	QuestionText string `json:"pergunta_texto,omitempty"`
	OptionID     uint   `json:"possibilidade_id"`
	OptionLabel  string `json:"possibilidade_texto,omitempty"`
	OptionValue  int    `json:"possibilidade_valor"`
}

// TestDetailDTO is the full projection: admin view, or owner view once the
// attempt has been authorized.
type TestDetailDTO struct {
	ID                 uint          `json:"id"`
	UserID             *uint         `json:"usuario_id,omitempty"`
	UserName           *string       `json:"nome_usuario,omitempty"`
	UserEmail          *string       `json:"email_usuario,omitempty"`
	Concluded          bool          `json:"concluido"`
	Authorized         bool          `json:"autorizado"`
	TotalScore         int           `json:"pontuacao_total"`
	DominantCategoryID *uint         `json:"inteligencia_dominante,omitempty"`
	DominantCategory   *CategoryDTO  `json:"categoria_dominante,omitempty"`
	Results            []ResultDTO   `json:"resultados"`
	Responses          []ResponseDTO `json:"respostas,omitempty"`
	IsAdminView        bool          `json:"isAdminView,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

// TestRestrictedDTO is what a non-admin viewer sees before authorization:
// identification and status only, never scores.
type TestRestrictedDTO struct {
	ID         uint      `json:"id"`
	UserName   *string   `json:"nome_usuario,omitempty"`
	UserEmail  *string   `json:"email_usuario,omitempty"`
	Concluded  bool      `json:"concluido"`
	Authorized bool      `json:"autorizado"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type TestSummaryDTO struct {
	ID                 uint       `json:"id"`
	UserID             *uint      `json:"usuario_id,omitempty"`
	UserName           *string    `json:"nome_usuario,omitempty"`
	UserEmail          *string    `json:"email_usuario,omitempty"`
	Concluded          bool       `json:"concluido"`
	Authorized         bool       `json:"autorizado"`
	TotalScore         int        `json:"pontuacao_total"`
	DominantCategoryID *uint      `json:"inteligencia_dominante,omitempty"`
	TopResult          *ResultDTO `json:"resultado_dominante,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type ListMetaDTO struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type TestListDTO struct {
	Data []TestSummaryDTO `json:"data"`
	Meta ListMetaDTO      `json:"meta"`
}

// ReleasedResultDTO is one entry of the respondent's own released results,
// keyed by the category slug the frontend uses to pick artwork and copy.
type ReleasedResultDTO struct {
	ID               uint        `json:"id"`
	IntelligenceType string      `json:"tipoInteligencia"`
	Score            int         `json:"pontuacao"`
	Percent          float64     `json:"percentual"`
	Category         CategoryDTO `json:"categoria"`
}

type CompletionDTO struct {
	Completed bool `json:"jaFez"`
}
