package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"oecd_explorer/internal/config"
	"oecd_explorer/internal/model"

	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

type memStateRepo struct {
	mu       sync.Mutex
	data     map[string][]byte
	failSave bool
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{data: map[string][]byte{}}
}

func (r *memStateRepo) Load(ctx context.Context, key string) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *memStateRepo) Save(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return errDiskFull
	}
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *memStateRepo) Ping(ctx context.Context) error { return nil }

type memEventRepo struct {
	mu      sync.Mutex
	records []model.EventRecord
}

func (r *memEventRepo) Append(ctx context.Context, record model.EventRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *memEventRepo) List(ctx context.Context) ([]model.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.EventRecord(nil), r.records...), nil
}

func (r *memEventRepo) Replace(ctx context.Context, records []model.EventRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append([]model.EventRecord(nil), records...)
	return nil
}

func (r *memEventRepo) verbs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, rec := range r.records {
		out = append(out, rec.Statement.Verb.Label())
	}
	return out
}

type stubEmitter struct {
	mu  sync.Mutex
	got []model.Statement
	err error
}

func (e *stubEmitter) Emit(ctx context.Context, cfg model.IntegrationConfig, stmt model.Statement) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.got = append(e.got, stmt)
	return e.err
}

var (
	testTelemetry = config.TelemetryConfig{
		ActivityBase:  "http://oecd2026.edu/course",
		CourseName:    "OECD Digital Education Outlook 2026",
		MailboxDomain: "example.com",
		Timeout:       time.Second,
	}
	testClock = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
)

type testEnv struct {
	repo       *memStateRepo
	events     *memEventRepo
	emitter    *stubEmitter
	store      *StateStore
	recorder   *EventRecorder
	modules    *ModuleService
	onboarding *OnboardingService
	transfer   *TransferService
	reports    *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:    newMemStateRepo(),
		events:  &memEventRepo{},
		emitter: &stubEmitter{},
	}
	env.store = NewStateStore(env.repo)
	require.NoError(t, env.store.Init(context.Background()))

	env.recorder = NewEventRecorder(env.store, env.events, env.emitter, testTelemetry)
	env.recorder.now = func() time.Time { return testClock }
	seq := 0
	env.recorder.newID = func() string {
		seq++
		return fmt.Sprintf("stmt-%d", seq)
	}

	env.modules = NewModuleService(env.store, env.recorder)
	env.modules.now = func() time.Time { return testClock }
	env.onboarding = NewOnboardingService(env.store, env.recorder)
	env.transfer = NewTransferService(env.store, env.recorder, env.modules, &StorageService{
		Provider: &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: t.TempDir()}},
	})
	env.transfer.now = func() time.Time { return testClock }
	env.reports = NewReportService(env.store)
	return env
}

func (env *testEnv) onboard(t *testing.T) {
	t.Helper()
	_, err := env.onboarding.Onboard(context.Background(), "Ada Lovelace", "Teacher")
	require.NoError(t, err)
}

func passingAnswers() map[int]int {
	answers := map[int]int{}
	for i, a := range model.AnswerKey() {
		answers[i] = a
	}
	return answers
}

// answersWithCorrect 前 n 题答对，其余答错
func answersWithCorrect(n int) map[int]int {
	answers := map[int]int{}
	for i, a := range model.AnswerKey() {
		if i < n {
			answers[i] = a
		} else {
			answers[i] = (a + 1) % 4
		}
	}
	return answers
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func completeDraft(wordCount int) model.PackageDraft {
	ref := "data:image/png;base64,iVBORw0KGgo="
	article := words(wordCount)
	anchor := "Table 2.1, p. 34"
	reflections := [model.ReflectionCount]string{"First", "Second", "Third"}
	usedAI := false
	return model.PackageDraft{
		InfographicRef: &ref,
		ArticleText:    &article,
		EvidenceAnchor: &anchor,
		Reflections:    &reflections,
		UsedAI:         &usedAI,
	}
}

// walkToBuild 进入模块并推进到构建步骤
func (env *testEnv) walkToBuild(t *testing.T, moduleID int) {
	t.Helper()
	ctx := context.Background()
	_, err := env.modules.Enter(ctx, moduleID)
	require.NoError(t, err)
	_, err = env.modules.AcceptAssignment(ctx, moduleID)
	require.NoError(t, err)
	_, err = env.modules.CompleteLearning(ctx, moduleID)
	require.NoError(t, err)
	outcome, err := env.modules.SubmitQuiz(ctx, moduleID, passingAnswers())
	require.NoError(t, err)
	require.True(t, outcome.Passed)
	_, err = env.modules.CompleteInvestigation(ctx, moduleID)
	require.NoError(t, err)
}

func (env *testEnv) completeModule(t *testing.T, moduleID int) {
	t.Helper()
	ctx := context.Background()
	env.walkToBuild(t, moduleID)
	_, err := env.modules.SubmitPackage(ctx, moduleID, completeDraft(180))
	require.NoError(t, err)
	_, err = env.modules.Publish(ctx, moduleID, model.PublishRequest{
		PublicationURL: "https://www.linkedin.com/feed/update/urn:li:activity:1",
		LikeCount:      3,
	})
	require.NoError(t, err)
}
