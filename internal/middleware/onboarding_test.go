package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"oecd_explorer/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type staticIdentity struct {
	identity *model.Identity
}

func (s staticIdentity) Identity() *model.Identity { return s.identity }

func newGateRouter(source IdentitySource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/gated", RequireIdentity(source), func(c *gin.Context) {
		c.String(http.StatusOK, IdentityFromContext(c).Name)
	})
	return r
}

func TestRequireIdentity_Rejects(t *testing.T) {
	w := httptest.NewRecorder()
	newGateRouter(staticIdentity{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "onboarding required")
}

func TestRequireIdentity_Passes(t *testing.T) {
	w := httptest.NewRecorder()
	router := newGateRouter(staticIdentity{identity: &model.Identity{Name: "Ada"}})
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada", w.Body.String())
}
