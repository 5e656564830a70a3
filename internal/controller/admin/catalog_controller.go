package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renatinhocg/bruna/internal/controller"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/renatinhocg/bruna/internal/service"
	"github.com/rs/zerolog/log"
)

// CatalogController exposes the admin CRUD surface of the questionnaire
// catalog: intelligence categories, their questions and the answer scale.
type CatalogController struct {
	categoryService service.CategoryService
	questionService service.QuestionService
	optionService   service.AnswerOptionService
}

func NewCatalogController(
	categoryService service.CategoryService,
	questionService service.QuestionService,
	optionService service.AnswerOptionService,
) *CatalogController {
	return &CatalogController{
		categoryService: categoryService,
		questionService: questionService,
		optionService:   optionService,
	}
}

// --- Categories ---

// ListCategories godoc
// @Summary (Admin) List active categories
// @Tags Admin - Catalog
// @Produce json
// @Success 200 {array} dto.CategoryDTO
// @Router /admin/categorias [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.categoryService.List()
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao listar categorias")
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary (Admin) Category detail with its active questions
// @Tags Admin - Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/categorias/{id} [get]
func (c *CatalogController) GetCategory(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	category, err := c.categoryService.Get(id)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao buscar categoria")
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary (Admin) Create a category
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param category body dto.CategoryCreateDTO true "Category data"
// @Success 201 {object} dto.CategoryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/categorias [post]
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Corpo da requisição inválido", Details: []string{err.Error()}})
		return
	}
	category, err := c.categoryService.Create(req)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao criar categoria")
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary (Admin) Update a category
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body dto.CategoryUpdateDTO true "Fields to change"
// @Success 200 {object} dto.CategoryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/categorias/{id} [put]
func (c *CatalogController) UpdateCategory(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CategoryUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Corpo da requisição inválido", Details: []string{err.Error()}})
		return
	}
	category, err := c.categoryService.Update(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao atualizar categoria")
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary (Admin) Delete an unreferenced category
// @Description Categories with questions or results attached cannot be removed; deactivate them instead.
// @Tags Admin - Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/categorias/{id} [delete]
func (c *CatalogController) DeleteCategory(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.categoryService.Delete(id); err != nil {
		controller.RespondError(ctx, err, "Falha ao excluir categoria")
		return
	}
	log.Info().Uint("categoryID", id).Msg("Category removed via admin API")
	ctx.Status(http.StatusNoContent)
}

// --- Questions ---

// ListQuestions godoc
// @Summary (Admin) List active questions
// @Tags Admin - Catalog
// @Produce json
// @Param categoria_id query int false "Filter by category"
// @Success 200 {array} dto.QuestionDTO
// @Router /admin/perguntas [get]
func (c *CatalogController) ListQuestions(ctx *gin.Context) {
	categoryID, ok := controller.ParseUintQuery(ctx, "categoria_id")
	if !ok {
		return
	}
	questions, err := c.questionService.List(categoryID)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao listar perguntas")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary (Admin) Question detail
// @Tags Admin - Catalog
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/perguntas/{id} [get]
func (c *CatalogController) GetQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	question, err := c.questionService.Get(id)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao buscar pergunta")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Description The display order defaults to the next free slot within the category.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/perguntas [post]
func (c *CatalogController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Corpo da requisição inválido", Details: []string{err.Error()}})
		return
	}
	question, err := c.questionService.Create(req)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao criar pergunta")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Fields to change"
// @Success 200 {object} dto.QuestionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/perguntas/{id} [put]
func (c *CatalogController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Corpo da requisição inválido", Details: []string{err.Error()}})
		return
	}
	question, err := c.questionService.Update(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao atualizar pergunta")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Deactivate a question
// @Description Questions are deactivated, not removed, so past attempts keep their history.
// @Tags Admin - Catalog
// @Produce json
// @Param id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/perguntas/{id} [delete]
func (c *CatalogController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionService.Delete(id); err != nil {
		controller.RespondError(ctx, err, "Falha ao excluir pergunta")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// --- Answer options ---

// ListOptions godoc
// @Summary (Admin) List active answer options
// @Tags Admin - Catalog
// @Produce json
// @Success 200 {array} dto.OptionDTO
// @Router /admin/possibilidades [get]
func (c *CatalogController) ListOptions(ctx *gin.Context) {
	options, err := c.optionService.List()
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao listar possibilidades")
		return
	}
	ctx.JSON(http.StatusOK, options)
}

// GetOption godoc
// @Summary (Admin) Answer option detail
// @Tags Admin - Catalog
// @Produce json
// @Param id path int true "Option ID"
// @Success 200 {object} dto.OptionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/possibilidades/{id} [get]
func (c *CatalogController) GetOption(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	option, err := c.optionService.Get(id)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao buscar possibilidade")
		return
	}
	ctx.JSON(http.StatusOK, option)
}

// CreateOption godoc
// @Summary (Admin) Create an answer option
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param option body dto.OptionCreateDTO true "Option data"
// @Success 201 {object} dto.OptionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/possibilidades [post]
func (c *CatalogController) CreateOption(ctx *gin.Context) {
	var req dto.OptionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Corpo da requisição inválido", Details: []string{err.Error()}})
		return
	}
	option, err := c.optionService.Create(req)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao criar possibilidade")
		return
	}
	ctx.JSON(http.StatusCreated, option)
}

// UpdateOption godoc
// @Summary (Admin) Update an answer option
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param id path int true "Option ID"
// @Param option body dto.OptionUpdateDTO true "Fields to change"
// @Success 200 {object} dto.OptionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/possibilidades/{id} [put]
func (c *CatalogController) UpdateOption(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.OptionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Corpo da requisição inválido", Details: []string{err.Error()}})
		return
	}
	option, err := c.optionService.Update(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao atualizar possibilidade")
		return
	}
	ctx.JSON(http.StatusOK, option)
}

// DeleteOption godoc
// @Summary (Admin) Deactivate an answer option
// @Tags Admin - Catalog
// @Produce json
// @Param id path int true "Option ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/possibilidades/{id} [delete]
func (c *CatalogController) DeleteOption(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.optionService.Delete(id); err != nil {
		controller.RespondError(ctx, err, "Falha ao excluir possibilidade")
		return
	}
	ctx.Status(http.StatusNoContent)
}
