package service

import (
	"context"
	"testing"
	"time"

	"oecd_explorer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeCatalog(env *testEnv, except int) {
	for _, m := range model.Catalog() {
		if m.ID == except {
			continue
		}
		env.store.UpdateProgress(context.Background(), m.ID, func(p *model.ModuleProgress) { p.Completed = true })
	}
}

func TestReport_CertificateUnlocksAtFullCompletion(t *testing.T) {
	env := newTestEnv(t)
	env.onboard(t)
	completeCatalog(env, 13)

	cert := env.reports.Certificate(testClock)
	assert.False(t, cert.Unlocked)
	assert.Equal(t, 13, cert.Completed)
	assert.Equal(t, 14, cert.Total)
	assert.Empty(t, cert.VerificationID)

	_, err := env.modules.CompleteIntro(context.Background(), model.IntroModuleID)
	require.NoError(t, err)
	env.completeModule(t, 13)

	cert = env.reports.Certificate(testClock)
	assert.True(t, cert.Unlocked)
	assert.Equal(t, "Ada Lovelace", cert.Name)
	assert.Equal(t, "Teacher", cert.Role)
	assert.Equal(t, model.CertificateHours, cert.Hours)
	assert.Equal(t, VerificationID("Ada Lovelace", testClock), cert.VerificationID)
}

func TestReport_Overview(t *testing.T) {
	env := newTestEnv(t)
	env.onboard(t)
	env.completeModule(t, 2)

	o := env.reports.Overview()
	assert.Equal(t, 1, o.Completed)
	assert.Equal(t, model.CatalogSize(), o.Total)
	require.Len(t, o.Modules, model.CatalogSize())
	assert.True(t, o.Modules[2].Completed)
	require.NotNil(t, o.Modules[2].QuizScore)
	assert.Nil(t, o.Modules[3].QuizScore)
}

func TestVerificationID(t *testing.T) {
	at := time.UnixMilli(1700000123456)
	assert.Equal(t, "OE-AD-123456", VerificationID("ada lovelace", at))
	assert.Equal(t, "OE-Q-000042", VerificationID("  q", time.UnixMilli(1000000042)))
}

func TestReport_SubmissionsSortedByModule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, id := range []int{9, 2, 5} {
		env.store.UpdateSubmission(ctx, id, func(s *model.Submission) { s.EvidenceAnchor = "x" })
	}

	entries := env.reports.Submissions()
	require.Len(t, entries, 3)
	assert.Equal(t, 2, entries[0].Submission.ModuleID)
	assert.Equal(t, 5, entries[1].Submission.ModuleID)
	assert.Equal(t, 9, entries[2].Submission.ModuleID)
	m, _ := model.FindModule(2)
	assert.Equal(t, m.Title, entries[0].ModuleTitle)
}
