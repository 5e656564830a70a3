package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renatinhocg/bruna/internal/controller"
	"github.com/renatinhocg/bruna/internal/middleware"
	"github.com/renatinhocg/bruna/internal/service"
	"github.com/rs/zerolog/log"
)

type TestAdminController struct {
	testService service.TestService
}

func NewTestAdminController(testService service.TestService) *TestAdminController {
	return &TestAdminController{testService: testService}
}

// ListTests godoc
// @Summary (Admin) List attempts
// @Description Paginated attempt summaries, newest first, each with its dominant result.
// @Tags Admin - Attempts
// @Produce json
// @Param usuario_id query int false "Filter by respondent user ID"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.TestListDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /testes-inteligencia [get]
func (c *TestAdminController) ListTests(ctx *gin.Context) {
	userID, ok := controller.ParseUintQuery(ctx, "usuario_id")
	if !ok {
		return
	}
	limit := controller.ParseIntQuery(ctx, "limit", 50)
	offset := controller.ParseIntQuery(ctx, "offset", 0)

	list, err := c.testService.List(userID, limit, offset)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao listar testes")
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// AuthorizeTest godoc
// @Summary (Admin) Release an attempt's results
// @Description One-way latch: only concluded attempts can be authorized, and only once.
// @Tags Admin - Attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.TestSummaryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /testes-inteligencia/{id}/autorizar [put]
func (c *TestAdminController) AuthorizeTest(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	identity, _ := middleware.IdentityFrom(ctx)
	var actorID uint
	if identity != nil {
		actorID = identity.ID
	}

	summary, err := c.testService.Authorize(id, actorID)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao autorizar o teste")
		return
	}

	log.Info().Uint("testID", id).Uint("actorID", actorID).Msg("Attempt authorization released")
	ctx.JSON(http.StatusOK, summary)
}
