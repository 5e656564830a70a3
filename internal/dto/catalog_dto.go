package dto

// --- Category administration ---

type CategoryCreateDTO struct {
	Name            string  `json:"nome" binding:"required"`
	Description     string  `json:"descricao" binding:"required"`
	ResultText      string  `json:"resultado" binding:"required"`
	Characteristics *string `json:"caracteristicas_inteligente"`
	Careers         *string `json:"carreiras_associadas"`
	Color           string  `json:"cor" binding:"required"`
	Slug            *string `json:"slug"`
}

type CategoryUpdateDTO struct {
	Name            *string `json:"nome"`
	Description     *string `json:"descricao"`
	ResultText      *string `json:"resultado"`
	Characteristics *string `json:"caracteristicas_inteligente"`
	Careers         *string `json:"carreiras_associadas"`
	Color           *string `json:"cor"`
	Slug            *string `json:"slug"`
	Active          *bool   `json:"ativo"`
}

// --- Question administration ---

type QuestionCreateDTO struct {
	Text       string `json:"texto" binding:"required"`
	CategoryID uint   `json:"categoria_id" binding:"required"`
	Type       string `json:"tipo" binding:"required"`
	// Order is auto-assigned to the next free slot in the category when zero.
	Order    int   `json:"ordem"`
	Required *bool `json:"obrigatoria"`
}

type QuestionUpdateDTO struct {
	Text       *string `json:"texto"`
	CategoryID *uint   `json:"categoria_id"`
	Type       *string `json:"tipo"`
	Order      *int    `json:"ordem"`
	Required   *bool   `json:"obrigatoria"`
	Active     *bool   `json:"ativo"`
}

// --- Answer option administration ---

type OptionCreateDTO struct {
	Label string `json:"texto" binding:"required"`
	// Value is a pointer so a legitimate 0 survives binding validation.
	Value       *int   `json:"valor" binding:"required"`
	Ordinal     int    `json:"ordem"`
	Description string `json:"descricao"`
}

type OptionUpdateDTO struct {
	Label       *string `json:"texto"`
	Value       *int    `json:"valor"`
	Ordinal     *int    `json:"ordem"`
	Description *string `json:"descricao"`
	Active      *bool   `json:"ativo"`
}
