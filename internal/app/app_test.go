package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oecd_explorer/internal/config"
	"oecd_explorer/internal/model"
	"oecd_explorer/internal/repository"
	"oecd_explorer/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestConfig(t *testing.T) *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: "0", Mode: "test"},
		Store:   config.StoreConfig{Backend: config.BackendDatabase},
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
		Telemetry: config.TelemetryConfig{
			ActivityBase:  "http://oecd2026.edu/course",
			MailboxDomain: "example.com",
			Timeout:       time.Second,
		},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	a := &App{Config: newTestConfig(t), DB: db}
	require.NoError(t, a.build(&repositories{
		state:  repository.NewGormStateRepository(db),
		events: repository.NewGormEventLogRepository(db),
	}))
	t.Cleanup(func() { sqlDB.Close() })
	return a
}

func (a *App) call(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		data, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func quizBody() map[string]interface{} {
	answers := map[string]int{}
	for i, a := range model.AnswerKey() {
		answers[string(rune('0'+i))] = a
	}
	return map[string]interface{}{"answers": answers}
}

func packageBody() map[string]interface{} {
	return map[string]interface{}{
		"infographicRef": "data:image/png;base64,iVBORw0KGgo=",
		"articleText":    strings.TrimSpace(strings.Repeat("evidence ", 160)),
		"evidenceAnchor": "Figure 3.2",
		"reflections":    []string{"one", "two", "three"},
		"usedAI":         true,
		"aiLog": map[string]interface{}{
			"tool":               "Assistant",
			"promptsUsed":        "Summarize chapter 1",
			"inclusivityVerdict": "Yes",
			"risksChecked":       []string{"Privacy", "Bias", "Privacy"},
		},
	}
}

func TestRoutes_OnboardingGate(t *testing.T) {
	a := newTestApp(t)

	w, env := a.call(t, http.MethodGet, "/api/modules", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "onboarding required", env.Message)

	w, _ = a.call(t, http.MethodPost, "/api/onboard", map[string]string{"name": " "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = a.call(t, http.MethodPost, "/api/onboard", map[string]string{"name": "Ada Lovelace", "role": "Teacher"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = a.call(t, http.MethodPost, "/api/onboard", map[string]string{"name": "Eve"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = a.call(t, http.MethodGet, "/api/modules", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var overview model.Overview
	require.NoError(t, json.Unmarshal(env.Data, &overview))
	assert.Equal(t, model.CatalogSize(), overview.Total)
}

func TestRoutes_ModuleWorkflow(t *testing.T) {
	a := newTestApp(t)
	a.call(t, http.MethodPost, "/api/onboard", map[string]string{"name": "Ada Lovelace", "role": "Teacher"})

	w, _ := a.call(t, http.MethodPost, "/api/modules/1/learn", nil)
	assert.Equal(t, http.StatusConflict, w.Code, "not entered yet")

	steps := []string{"enter", "assignment", "learn"}
	for _, step := range steps {
		w, _ = a.call(t, http.MethodPost, "/api/modules/1/"+step, nil)
		require.Equal(t, http.StatusOK, w.Code, step)
	}

	w, env := a.call(t, http.MethodGet, "/api/modules/1/quiz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), `"answer":`)

	w, env = a.call(t, http.MethodPost, "/api/modules/1/quiz", quizBody())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"passed":true`)

	w, _ = a.call(t, http.MethodPost, "/api/modules/1/investigate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = a.call(t, http.MethodPut, "/api/modules/1/draft", map[string]string{"articleText": "too short"})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = a.call(t, http.MethodPost, "/api/modules/1/package", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, string(env.Data), "mini-article")

	w, _ = a.call(t, http.MethodPost, "/api/modules/1/package", packageBody())
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = a.call(t, http.MethodPost, "/api/modules/1/publish", map[string]interface{}{"publicationUrl": "https://example.com/post"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = a.call(t, http.MethodPost, "/api/modules/1/publish", map[string]interface{}{
		"publicationKind": "post",
		"publicationUrl":  "https://www.linkedin.com/posts/ada",
		"likeCount":       12,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = a.call(t, http.MethodGet, "/api/portfolio", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []model.SubmissionEntry
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Submission.Finalized())
	require.NotNil(t, entries[0].Submission.AILog)
	assert.Equal(t, []model.RiskCategory{model.RiskBias, model.RiskPrivacy}, entries[0].Submission.AILog.RisksChecked)

	w, env = a.call(t, http.MethodGet, "/api/certificate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"unlocked":false`)
}

func TestRoutes_IntroAndBadIDs(t *testing.T) {
	a := newTestApp(t)
	a.call(t, http.MethodPost, "/api/onboard", map[string]string{"name": "Ada"})

	w, _ := a.call(t, http.MethodPost, "/api/modules/0/complete", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = a.call(t, http.MethodPost, "/api/modules/0/enter", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = a.call(t, http.MethodPost, "/api/modules/2/complete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = a.call(t, http.MethodPost, "/api/modules/42/enter", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = a.call(t, http.MethodPost, "/api/modules/abc/enter", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_InfographicUpload(t *testing.T) {
	a := newTestApp(t)
	a.call(t, http.MethodPost, "/api/onboard", map[string]string{"name": "Ada"})
	for _, step := range []string{"enter", "assignment", "learn"} {
		a.call(t, http.MethodPost, "/api/modules/3/"+step, nil)
	}
	a.call(t, http.MethodPost, "/api/modules/3/quiz", quizBody())
	a.call(t, http.MethodPost, "/api/modules/3/investigate", nil)

	upload := func(content []byte) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "chart.png")
		require.NoError(t, err)
		part.Write(content)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/modules/3/infographic", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		return w
	}

	w := upload([]byte("plain text is not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	w = upload(png)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "data:image/png;base64,")
}

func TestRoutes_ExportImport(t *testing.T) {
	src := newTestApp(t)
	src.call(t, http.MethodPost, "/api/onboard", map[string]string{"name": "Ada Lovelace", "role": "Teacher"})
	src.call(t, http.MethodPost, "/api/modules/0/complete", nil)

	w, _ := src.call(t, http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "oecd-explorer-export-")
	exported := w.Body.Bytes()

	dst := newTestApp(t)
	w, env := dst.call(t, http.MethodPost, "/api/import", `{"schemaId":"other"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "that file does not look like an OECD Explorer export", env.Message)

	w, env = dst.call(t, http.MethodPost, "/api/import", string(exported))
	require.Equal(t, http.StatusOK, w.Code)
	var result model.ImportResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, model.RouteDashboard, result.Route)

	w, env = dst.call(t, http.MethodGet, "/api/modules", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var overview model.Overview
	require.NoError(t, json.Unmarshal(env.Data, &overview))
	assert.Equal(t, 1, overview.Completed)
	assert.Equal(t, "Ada Lovelace", overview.Identity.Name)

	w, env = src.call(t, http.MethodPost, "/api/export/archive", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(env.Data), "/exports/oecd-explorer-export-")
}

func TestRoutes_SettingsAndHealth(t *testing.T) {
	a := newTestApp(t)

	w, _ := a.call(t, http.MethodPut, "/api/settings", map[string]interface{}{"endpoint": "not a url", "enabled": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = a.call(t, http.MethodPut, "/api/settings", map[string]interface{}{"endpoint": "https://lrs.example.com/xapi", "key": "k", "secret": "s"})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := a.call(t, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "lrs.example.com")

	w, env = a.call(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"database":"up"`)
}

func TestApplyConfig_RunsCallbacks(t *testing.T) {
	a := newTestApp(t)
	var got string
	a.RegisterConfigCallback(func(cfg *config.Config) { got = cfg.Server.Mode })

	a.ApplyConfig(&config.Config{Server: config.ServerConfig{Mode: "debug"}})
	assert.Equal(t, "debug", got)
}
