package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renatinhocg/bruna/internal/controller"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/renatinhocg/bruna/internal/middleware"
	"github.com/renatinhocg/bruna/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	submissionService service.SubmissionService
	testService       service.TestService
	questionService   service.QuestionService
}

func NewTestController(
	submissionService service.SubmissionService,
	testService service.TestService,
	questionService service.QuestionService,
) *TestController {
	return &TestController{
		submissionService: submissionService,
		testService:       testService,
		questionService:   questionService,
	}
}

// GetQuiz godoc
// @Summary Questionnaire content for the quiz wizard
// @Description Active questions in display order plus the active answer scale.
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz [get]
func (c *TestController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.questionService.Quiz()
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao carregar o questionário")
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitTest godoc
// @Summary Submit a completed questionnaire
// @Description Records all responses, scores them per category and concludes the attempt atomically. Results stay hidden until authorization.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param submission body dto.TestSubmitDTO true "Responses plus optional respondent identification"
// @Success 201 {object} dto.SubmitAckDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /testes-inteligencia [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	var req dto.TestSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Corpo da requisição inválido", Details: []string{err.Error()}})
		return
	}

	ack, err := c.submissionService.Submit(req)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao processar o teste")
		return
	}
	ctx.JSON(http.StatusCreated, ack)
}

// GetTest godoc
// @Summary View one attempt
// @Description Admins see everything. Everyone else sees only identification and status until the attempt has been authorized.
// @Tags Attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Param forceAdmin query bool false "Admin escape hatch used by the back office"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /testes-inteligencia/{id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	viewer := service.AnonymousViewer()
	if identity, authed := middleware.IdentityFrom(ctx); authed {
		if identity.IsAdmin {
			viewer = service.AdminViewer()
		} else {
			viewer = service.OwnerViewer(identity.ID)
		}
	}
	if ctx.Query("forceAdmin") == "true" {
		viewer = service.AdminViewer()
	}

	projected, err := c.testService.Get(id, viewer)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao buscar o teste")
		return
	}
	if projected.Restricted != nil {
		ctx.JSON(http.StatusOK, projected.Restricted)
		return
	}
	ctx.JSON(http.StatusOK, projected.Full)
}

// VerifyCompleted godoc
// @Summary Whether a user already concluded the questionnaire
// @Tags Attempts
// @Produce json
// @Param usuario_id query int true "User ID"
// @Success 200 {object} dto.CompletionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /testes-inteligencia/verificar [get]
func (c *TestController) VerifyCompleted(ctx *gin.Context) {
	userID, ok := controller.ParseUintQuery(ctx, "usuario_id")
	if !ok {
		return
	}
	if userID == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Parâmetro usuario_id ausente ou inválido."})
		return
	}

	done, err := c.testService.HasCompleted(*userID)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao verificar o teste")
		return
	}
	ctx.JSON(http.StatusOK, dto.CompletionDTO{Completed: done})
}

// MyResults godoc
// @Summary The caller's released intelligence results
// @Description Results of the latest concluded and authorized attempt, highest percentage first; empty when nothing has been released yet.
// @Tags Attempts
// @Produce json
// @Success 200 {array} dto.ReleasedResultDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /resultados-inteligencias [get]
func (c *TestController) MyResults(ctx *gin.Context) {
	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Autenticação necessária"})
		return
	}

	results, err := c.testService.MyResults(identity.ID)
	if err != nil {
		controller.RespondError(ctx, err, "Falha ao buscar resultados")
		return
	}
	ctx.JSON(http.StatusOK, results)
}
