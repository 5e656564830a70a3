package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/renatinhocg/bruna/internal/apperrors"
	"github.com/renatinhocg/bruna/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError maps taxonomy errors onto their HTTP status. Unknown errors
// become a 500 with the fallback message so internals never leak verbatim.
func RespondError(ctx *gin.Context, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	message := fallback
	if apperrors.KindOf(err) != apperrors.KindUnknown {
		message = err.Error()
	}
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Request failed")
		ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
		return
	}
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Request rejected")
	ctx.JSON(status, dto.ErrorResponse{Message: message})
}

// ParseIDParam reads a positive integer path parameter or answers 400.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Parâmetro " + name + " ausente ou inválido."})
		return 0, false
	}
	return uint(value), true
}

// ParseUintQuery reads an optional unsigned query parameter. The bool result
// reports a malformed value, already answered with a 400.
func ParseUintQuery(ctx *gin.Context, name string) (*uint, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Parâmetro " + name + " inválido."})
		return nil, false
	}
	id := uint(value)
	return &id, true
}

// ParseIntQuery reads an optional integer query parameter with a default.
func ParseIntQuery(ctx *gin.Context, name string, fallback int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
