package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"oecd_explorer/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err  error
		code int
	}{
		{util.NewValidationError("build", "infographic is required"), http.StatusUnprocessableEntity},
		{util.ErrModuleNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: at quiz, expected learn", util.ErrStepMismatch), http.StatusConflict},
		{util.ErrNoPreviousStep, http.StatusConflict},
		{util.ErrAlreadyOnboarded, http.StatusConflict},
		{util.ErrIntroModule, http.StatusBadRequest},
		{fmt.Errorf("%w: eventLog must be an array", util.ErrMalformedImport), http.StatusBadRequest},
		{util.ErrSchemaMismatch, http.StatusBadRequest},
		{util.ErrNotOnboarded, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		respondError(ctx, tc.err)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
	}
}

func TestRespondError_HidesImportDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	respondError(ctx, fmt.Errorf("%w: progressMap: json: cannot unmarshal", util.ErrMalformedImport))
	assert.Contains(t, w.Body.String(), util.ErrMalformedImport.Error())
	assert.NotContains(t, w.Body.String(), "cannot unmarshal")
}
