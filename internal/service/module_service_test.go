package service

import (
	"context"
	"testing"

	"oecd_explorer/internal/model"
	"oecd_explorer/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleService_FullWorkflow(t *testing.T) {
	env := newTestEnv(t)
	env.onboard(t)
	ctx := context.Background()

	view, err := env.modules.Enter(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, model.StepAssign, view.Session.Step)
	assert.Len(t, view.Steps, model.StepCount)
	assert.Contains(t, env.store.ProgressMap(), 3)

	env.completeModule(t, 3)

	p := env.store.Progress(3)
	assert.True(t, p.Completed)
	assert.True(t, p.ReviewedMaterial)
	require.NotNil(t, p.QuizScore)
	assert.Equal(t, 100.0, *p.QuizScore)

	sub, ok := env.store.Submission(3)
	require.True(t, ok)
	require.NotNil(t, sub.CompletedAt)
	assert.Equal(t, testClock, *sub.CompletedAt)
	assert.Equal(t, model.PublicationComment, sub.PublicationKind)
	assert.Equal(t, 3, sub.LikeCount)

	assert.Equal(t, []string{"launched", "passed", "completed"}, env.events.verbs())

	// 发布后会话关闭
	_, err = env.modules.View(3)
	assert.ErrorIs(t, err, util.ErrNoActiveSession)
}

func TestModuleService_PublishRequiresRecognizedURL(t *testing.T) {
	env := newTestEnv(t)
	env.onboard(t)
	ctx := context.Background()
	env.walkToBuild(t, 2)
	_, err := env.modules.SubmitPackage(ctx, 2, completeDraft(160))
	require.NoError(t, err)

	_, err = env.modules.Publish(ctx, 2, model.PublishRequest{PublicationURL: "https://example.org/post/1"})
	ve, ok := util.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "publish", ve.Step)
	assert.False(t, env.store.Progress(2).Completed)
	assert.NotContains(t, env.events.verbs(), "completed")

	view, err := env.modules.View(2)
	require.NoError(t, err)
	assert.Equal(t, model.StepPublish, view.Session.Step)

	_, err = env.modules.Publish(ctx, 2, model.PublishRequest{PublicationURL: "https://linkedin.com/x", LikeCount: -1})
	_, ok = util.AsValidationError(err)
	assert.True(t, ok)

	_, err = env.modules.Publish(ctx, 2, model.PublishRequest{
		PublicationKind: model.PublicationPost,
		PublicationURL:  "https://www.LinkedIn.com/posts/abc",
	})
	require.NoError(t, err)
	assert.True(t, env.store.Progress(2).Completed)
}

func TestValidatePublication(t *testing.T) {
	ok := model.PublishRequest{PublicationURL: "https://linkedin.com/feed/update/1"}
	assert.Empty(t, ValidatePublication(ok))

	bad := model.PublishRequest{
		PublicationKind: model.PublicationKind("tweet"),
		PublicationURL:  "https://example.com/post",
		LikeCount:       -1,
	}
	assert.Len(t, ValidatePublication(bad), 3)
}

func TestScoreQuiz_Deterministic(t *testing.T) {
	for correct := 0; correct <= model.AssessmentSize(); correct++ {
		n, score := ScoreQuiz(answersWithCorrect(correct))
		assert.Equal(t, correct, n)
		assert.Equal(t, 100*float64(correct)/float64(model.AssessmentSize()), score)
	}
	_, score := ScoreQuiz(answersWithCorrect(4))
	assert.GreaterOrEqual(t, score, model.PassingScore)
}

func TestModuleService_QuizPolicy(t *testing.T) {
	env := newTestEnv(t)
	env.onboard(t)
	ctx := context.Background()
	_, err := env.modules.Enter(ctx, 5)
	require.NoError(t, err)
	_, err = env.modules.AcceptAssignment(ctx, 5)
	require.NoError(t, err)
	_, err = env.modules.CompleteLearning(ctx, 5)
	require.NoError(t, err)

	_, err = env.modules.ContinueQuiz(ctx, 5)
	assert.ErrorIs(t, err, util.ErrQuizNotPassed)

	// 未答完
	_, err = env.modules.SubmitQuiz(ctx, 5, map[int]int{0: 1})
	_, ok := util.AsValidationError(err)
	assert.True(t, ok)

	outcome, err := env.modules.SubmitQuiz(ctx, 5, answersWithCorrect(2))
	require.NoError(t, err)
	assert.False(t, outcome.Passed)
	assert.Equal(t, 40.0, outcome.Score)
	assert.Equal(t, model.StepQuiz, outcome.View.Session.Step)
	assert.Nil(t, env.store.Progress(5).QuizScore)

	outcome, err = env.modules.SubmitQuiz(ctx, 5, answersWithCorrect(4))
	require.NoError(t, err)
	assert.True(t, outcome.Passed)
	assert.Equal(t, model.StepInvestigate, outcome.View.Session.Step)
	require.NotNil(t, env.store.Progress(5).QuizScore)
	assert.Equal(t, 80.0, *env.store.Progress(5).QuizScore)

	// 回到测验后失败的重做不覆盖已通过的分数
	_, err = env.modules.Previous(ctx, 5, nil)
	require.NoError(t, err)
	_, err = env.modules.SubmitQuiz(ctx, 5, answersWithCorrect(1))
	require.NoError(t, err)
	assert.Equal(t, 80.0, *env.store.Progress(5).QuizScore)

	view, err := env.modules.View(5)
	require.NoError(t, err)
	assert.True(t, view.QuizPassed)

	before := len(env.events.verbs())
	view, err = env.modules.ContinueQuiz(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, model.StepInvestigate, view.Session.Step)
	assert.Len(t, env.events.verbs(), before)

	// 新的通过成绩替换旧成绩
	_, err = env.modules.Previous(ctx, 5, nil)
	require.NoError(t, err)
	_, err = env.modules.SubmitQuiz(ctx, 5, passingAnswers())
	require.NoError(t, err)
	assert.Equal(t, 100.0, *env.store.Progress(5).QuizScore)
}

func TestModuleService_ArticleWordCountBoundaries(t *testing.T) {
	cases := []struct {
		words int
		ok    bool
	}{
		{149, false},
		{150, true},
		{220, true},
		{221, false},
	}
	for _, tc := range cases {
		env := newTestEnv(t)
		env.onboard(t)
		env.walkToBuild(t, 1)

		view, err := env.modules.SubmitPackage(context.Background(), 1, completeDraft(tc.words))
		if tc.ok {
			require.NoError(t, err, "words=%d", tc.words)
			assert.Equal(t, model.StepPublish, view.Session.Step)
			continue
		}
		ve, ok := util.AsValidationError(err)
		require.True(t, ok, "words=%d", tc.words)
		assert.Len(t, ve.Problems, 1)

		current, err := env.modules.View(1)
		require.NoError(t, err)
		assert.Equal(t, model.StepBuild, current.Session.Step)
		// 草稿即使未通过校验也已保存
		assert.Equal(t, words(tc.words), current.Submission.ArticleText)
	}
}

func TestValidatePackage_AILog(t *testing.T) {
	sub := model.Submission{
		InfographicRef: "data:image/png;base64,AA==",
		ArticleText:    words(180),
		EvidenceAnchor: "p. 12",
		Reflections:    [model.ReflectionCount]string{"a", " ", "c"},
		UsedAI:         true,
	}
	problems := ValidatePackage(sub)
	assert.Contains(t, problems, "reflection 2 is required")
	assert.Contains(t, problems, "AI log: tool is required")
	assert.Contains(t, problems, "AI log: inclusivity verdict is required")

	sub.Reflections[1] = "b"
	sub.AILog = &model.AILog{Tool: "Chat assistant", PromptsUsed: "summarize", InclusivityVerdict: model.VerdictUnsure}
	assert.Empty(t, ValidatePackage(sub))
}

func TestModuleService_PreviousFromBuildPersistsDraft(t *testing.T) {
	env := newTestEnv(t)
	env.onboard(t)
	ctx := context.Background()
	env.walkToBuild(t, 4)

	draft := completeDraft(20)
	view, err := env.modules.Previous(ctx, 4, &draft)
	require.NoError(t, err)
	assert.Equal(t, model.StepInvestigate, view.Session.Step)

	sub, ok := env.store.Submission(4)
	require.True(t, ok)
	assert.Equal(t, words(20), sub.ArticleText)
	assert.False(t, sub.Finalized())
	assert.False(t, env.store.Progress(4).Completed)

	for i := 0; i < 3; i++ {
		_, err = env.modules.Previous(ctx, 4, nil)
		require.NoError(t, err)
	}
	_, err = env.modules.Previous(ctx, 4, nil)
	assert.ErrorIs(t, err, util.ErrNoPreviousStep)
}

func TestModuleService_DraftDropsAILogWhenUnused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.walkToBuild(t, 6)

	usedAI := true
	_, err := env.modules.SaveDraft(ctx, 6, model.PackageDraft{
		UsedAI: &usedAI,
		AILog:  &model.AILog{Tool: "Assistant"},
	})
	require.NoError(t, err)
	sub, _ := env.store.Submission(6)
	require.NotNil(t, sub.AILog)

	usedAI = false
	_, err = env.modules.SaveDraft(ctx, 6, model.PackageDraft{UsedAI: &usedAI})
	require.NoError(t, err)
	sub, _ = env.store.Submission(6)
	assert.Nil(t, sub.AILog)
}

func TestModuleService_AttachInfographic(t *testing.T) {
	env := newTestEnv(t)
	env.walkToBuild(t, 7)

	view, err := env.modules.AttachInfographic(context.Background(), 7, "image/png", []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	mime, data, err := util.DecodeDataURI(view.Submission.InfographicRef)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}

func TestModuleService_StepGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.modules.Enter(ctx, 99)
	assert.ErrorIs(t, err, util.ErrModuleNotFound)

	_, err = env.modules.AcceptAssignment(ctx, 8)
	assert.ErrorIs(t, err, util.ErrNoActiveSession)

	_, err = env.modules.Enter(ctx, 8)
	require.NoError(t, err)
	_, err = env.modules.CompleteLearning(ctx, 8)
	assert.ErrorIs(t, err, util.ErrStepMismatch)

	_, err = env.modules.Enter(ctx, model.IntroModuleID)
	assert.ErrorIs(t, err, util.ErrIntroModule)

	env.modules.Leave(8)
	_, err = env.modules.View(8)
	assert.ErrorIs(t, err, util.ErrNoActiveSession)
	assert.False(t, env.store.Progress(8).Completed)
}

func TestModuleService_CompleteIntro(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.modules.CompleteIntro(ctx, model.IntroModuleID)
	require.NoError(t, err)
	assert.True(t, p.Completed)
	assert.True(t, env.store.Progress(model.IntroModuleID).Completed)

	_, err = env.modules.CompleteIntro(ctx, 1)
	assert.ErrorIs(t, err, util.ErrNotIntroModule)
}

func TestModuleService_NoEventsWithoutIdentity(t *testing.T) {
	env := newTestEnv(t)
	env.completeModule(t, 9)

	assert.True(t, env.store.Progress(9).Completed)
	assert.Empty(t, env.events.verbs())
}
