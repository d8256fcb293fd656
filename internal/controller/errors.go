package controller

import (
	"errors"
	"net/http"

	"oecd_explorer/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 将领域错误映射为统一响应
func respondError(ctx *gin.Context, err error) {
	if ve, ok := util.AsValidationError(err); ok {
		util.ValidationFailed(ctx, ve)
		return
	}

	switch {
	case errors.Is(err, util.ErrModuleNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrNotOnboarded):
		util.Forbidden(ctx, err.Error())
	case errors.Is(err, util.ErrStepMismatch),
		errors.Is(err, util.ErrNoPreviousStep),
		errors.Is(err, util.ErrNoActiveSession),
		errors.Is(err, util.ErrQuizNotPassed),
		errors.Is(err, util.ErrAlreadyOnboarded):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrIntroModule),
		errors.Is(err, util.ErrNotIntroModule),
		errors.Is(err, util.ErrInvalidSettings):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrSchemaMismatch):
		util.BadRequest(ctx, util.ErrSchemaMismatch.Error())
	case errors.Is(err, util.ErrMalformedImport):
		util.BadRequest(ctx, util.ErrMalformedImport.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func moduleID(ctx *gin.Context) (int, bool) {
	id := util.ParseModuleID(ctx.Param("id"))
	if id < 0 {
		util.BadRequest(ctx, "invalid module id")
		return 0, false
	}
	return id, true
}
