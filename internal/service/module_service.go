package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"oecd_explorer/internal/model"
	"oecd_explorer/internal/util"
	"oecd_explorer/pkg/logger"
	"oecd_explorer/pkg/monitoring"

	"go.uber.org/zap"
)

// 迷你文章词数范围（含边界）
const (
	MinArticleWords = 150
	MaxArticleWords = 220
)

// ModuleService drives the per-module six-step workflow. Step position lives in memory
// only; progress and submissions go through the state store.
type ModuleService struct {
	store    *StateStore
	recorder *EventRecorder
	now      func() time.Time

	mu       sync.Mutex
	sessions map[int]*model.StepSession
}

func NewModuleService(store *StateStore, recorder *EventRecorder) *ModuleService {
	return &ModuleService{
		store:    store,
		recorder: recorder,
		now:      time.Now,
		sessions: make(map[int]*model.StepSession),
	}
}

type QuizOutcome struct {
	Correct int             `json:"correct"`
	Total   int             `json:"total"`
	Score   float64         `json:"score"`
	Passed  bool            `json:"passed"`
	View    *model.StepView `json:"view"`
}

func lookupModule(moduleID int) (model.CatalogModule, error) {
	m, ok := model.FindModule(moduleID)
	if !ok {
		return model.CatalogModule{}, util.ErrModuleNotFound
	}
	return m, nil
}

func stepModule(moduleID int) (model.CatalogModule, error) {
	m, err := lookupModule(moduleID)
	if err != nil {
		return m, err
	}
	if m.Intro {
		return m, util.ErrIntroModule
	}
	return m, nil
}

// Enter opens a module: progress is created on first open and the stepper restarts at Assign.
func (s *ModuleService) Enter(ctx context.Context, moduleID int) (*model.StepView, error) {
	m, err := stepModule(moduleID)
	if err != nil {
		return nil, err
	}
	s.store.EnsureProgress(ctx, moduleID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[moduleID] = &model.StepSession{ModuleID: moduleID, Step: model.StepAssign}
	return s.view(m, s.sessions[moduleID]), nil
}

func (s *ModuleService) View(moduleID int) (*model.StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, sess, err := s.session(moduleID)
	if err != nil {
		return nil, err
	}
	return s.view(m, sess), nil
}

// Leave 返回总览，不改变任何持久状态
func (s *ModuleService) Leave(moduleID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, moduleID)
}

// ResetSessions drops every open stepper, used after an import replaced the state.
func (s *ModuleService) ResetSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[int]*model.StepSession)
}

func (s *ModuleService) session(moduleID int) (model.CatalogModule, *model.StepSession, error) {
	m, err := stepModule(moduleID)
	if err != nil {
		return m, nil, err
	}
	sess, ok := s.sessions[moduleID]
	if !ok {
		return m, nil, util.ErrNoActiveSession
	}
	return m, sess, nil
}

func (s *ModuleService) sessionAt(moduleID int, want model.Step) (model.CatalogModule, *model.StepSession, error) {
	m, sess, err := s.session(moduleID)
	if err != nil {
		return m, nil, err
	}
	if sess.Step != want {
		return m, nil, fmt.Errorf("%w: at %s, expected %s", util.ErrStepMismatch, sess.Step, want)
	}
	return m, sess, nil
}

func (s *ModuleService) view(m model.CatalogModule, sess *model.StepSession) *model.StepView {
	progress := s.store.Progress(m.ID)
	v := &model.StepView{
		Module:     m,
		Session:    *sess,
		Progress:   progress,
		QuizPassed: progress.HasPassingScore(),
		Steps:      model.StepNames(),
	}
	if sess.LastQuizScore != nil {
		score := *sess.LastQuizScore
		v.Session.LastQuizScore = &score
	}
	if sub, ok := s.store.Submission(m.ID); ok {
		v.Submission = &sub
	}
	return v
}

func (s *ModuleService) advance(sess *model.StepSession, to model.Step) {
	sess.Step = to
	monitoring.StepTransitions.WithLabelValues(to.String(), "ok").Inc()
	logger.Log.Debug("Module step advanced", zap.Int("module", sess.ModuleID), zap.Stringer("step", to))
}

func rejected(step model.Step) {
	monitoring.StepTransitions.WithLabelValues(step.String(), "rejected").Inc()
}

// AcceptAssignment Assign → Learn
func (s *ModuleService) AcceptAssignment(ctx context.Context, moduleID int) (*model.StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, sess, err := s.sessionAt(moduleID, model.StepAssign)
	if err != nil {
		return nil, err
	}
	s.advance(sess, model.StepLearn)
	return s.view(m, sess), nil
}

// CompleteLearning Learn → Quiz，标记已阅读材料
func (s *ModuleService) CompleteLearning(ctx context.Context, moduleID int) (*model.StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, sess, err := s.sessionAt(moduleID, model.StepLearn)
	if err != nil {
		return nil, err
	}
	s.store.UpdateProgress(ctx, moduleID, func(p *model.ModuleProgress) {
		p.ReviewedMaterial = true
	})
	s.advance(sess, model.StepQuiz)
	return s.view(m, sess), nil
}

// ScoreQuiz returns the number of correct answers and 100 * correct / total.
func ScoreQuiz(answers map[int]int) (int, float64) {
	key := model.AnswerKey()
	correct := 0
	for i, want := range key {
		if got, ok := answers[i]; ok && got == want {
			correct++
		}
	}
	return correct, 100 * float64(correct) / float64(len(key))
}

func validateAnswers(answers map[int]int) []string {
	questions := model.Assessment()
	var problems []string
	for i, q := range questions {
		got, ok := answers[i]
		if !ok {
			problems = append(problems, fmt.Sprintf("question %d is unanswered", i+1))
			continue
		}
		if got < 0 || got >= len(q.Options) {
			problems = append(problems, fmt.Sprintf("question %d has no option %d", i+1, got))
		}
	}
	for i := range answers {
		if i < 0 || i >= len(questions) {
			problems = append(problems, fmt.Sprintf("question %d does not exist", i+1))
		}
	}
	return problems
}

// SubmitQuiz grades an attempt. A passing attempt overwrites the stored score, records a
// passed statement and moves to Investigate; a failing one leaves everything as it was.
func (s *ModuleService) SubmitQuiz(ctx context.Context, moduleID int, answers map[int]int) (*QuizOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, sess, err := s.sessionAt(moduleID, model.StepQuiz)
	if err != nil {
		return nil, err
	}
	if problems := validateAnswers(answers); len(problems) > 0 {
		rejected(model.StepInvestigate)
		return nil, util.NewValidationError(model.StepQuiz.String(), problems...)
	}

	correct, score := ScoreQuiz(answers)
	sess.LastQuizScore = &score
	outcome := &QuizOutcome{
		Correct: correct,
		Total:   model.AssessmentSize(),
		Score:   score,
		Passed:  score >= model.PassingScore,
	}

	if !outcome.Passed {
		rejected(model.StepInvestigate)
		outcome.View = s.view(m, sess)
		return outcome, nil
	}

	s.store.UpdateProgress(ctx, moduleID, func(p *model.ModuleProgress) {
		p.QuizScore = &score
	})
	s.recorder.Record(ctx, s.store.Identity(), model.VerbPassed, s.recorder.QuizActivity(m), &score)
	s.advance(sess, model.StepInvestigate)
	outcome.View = s.view(m, sess)
	return outcome, nil
}

// ContinueQuiz 已通过测验时直接进入下一步，不重新校验也不再记录事件
func (s *ModuleService) ContinueQuiz(ctx context.Context, moduleID int) (*model.StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, sess, err := s.sessionAt(moduleID, model.StepQuiz)
	if err != nil {
		return nil, err
	}
	if !s.store.Progress(moduleID).HasPassingScore() {
		rejected(model.StepInvestigate)
		return nil, util.ErrQuizNotPassed
	}
	s.advance(sess, model.StepInvestigate)
	return s.view(m, sess), nil
}

// CompleteInvestigation Investigate → Build
func (s *ModuleService) CompleteInvestigation(ctx context.Context, moduleID int) (*model.StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, sess, err := s.sessionAt(moduleID, model.StepInvestigate)
	if err != nil {
		return nil, err
	}
	s.advance(sess, model.StepBuild)
	return s.view(m, sess), nil
}

// SaveDraft persists whatever was entered on the Build step without validating it.
func (s *ModuleService) SaveDraft(ctx context.Context, moduleID int, draft model.PackageDraft) (*model.StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, sess, err := s.sessionAt(moduleID, model.StepBuild)
	if err != nil {
		return nil, err
	}
	s.store.UpdateSubmission(ctx, moduleID, draft.ApplyTo)
	return s.view(m, sess), nil
}

// AttachInfographic 上传的图片以 data URI 形式保存在草稿中
func (s *ModuleService) AttachInfographic(ctx context.Context, moduleID int, mimeType string, data []byte) (*model.StepView, error) {
	ref := util.DataURI(mimeType, data)
	return s.SaveDraft(ctx, moduleID, model.PackageDraft{InfographicRef: &ref})
}

// ValidatePackage lists every unmet Build → Publish condition.
func ValidatePackage(sub model.Submission) []string {
	var problems []string
	if strings.TrimSpace(sub.InfographicRef) == "" {
		problems = append(problems, "infographic is required")
	}
	if strings.TrimSpace(sub.EvidenceAnchor) == "" {
		problems = append(problems, "evidence anchor is required")
	}
	if n := util.WordCount(sub.ArticleText); n < MinArticleWords || n > MaxArticleWords {
		problems = append(problems, fmt.Sprintf("mini-article must be %d-%d words (got %d)", MinArticleWords, MaxArticleWords, n))
	}
	for i, r := range sub.Reflections {
		if strings.TrimSpace(r) == "" {
			problems = append(problems, fmt.Sprintf("reflection %d is required", i+1))
		}
	}
	if sub.UsedAI {
		log := sub.AILog
		if log == nil {
			log = &model.AILog{}
		}
		if strings.TrimSpace(log.Tool) == "" {
			problems = append(problems, "AI log: tool is required")
		}
		if strings.TrimSpace(log.PromptsUsed) == "" {
			problems = append(problems, "AI log: prompts are required")
		}
		if log.InclusivityVerdict == model.VerdictUnset {
			problems = append(problems, "AI log: inclusivity verdict is required")
		}
	}
	return problems
}

// SubmitPackage saves the draft and moves Build → Publish when the package is complete.
func (s *ModuleService) SubmitPackage(ctx context.Context, moduleID int, draft model.PackageDraft) (*model.StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, sess, err := s.sessionAt(moduleID, model.StepBuild)
	if err != nil {
		return nil, err
	}
	sub := s.store.UpdateSubmission(ctx, moduleID, draft.ApplyTo)
	if problems := ValidatePackage(sub); len(problems) > 0 {
		rejected(model.StepPublish)
		return nil, util.NewValidationError(model.StepBuild.String(), problems...)
	}
	s.advance(sess, model.StepPublish)
	return s.view(m, sess), nil
}

func ValidatePublication(req model.PublishRequest) []string {
	var problems []string
	if !strings.Contains(strings.ToLower(req.PublicationURL), util.PublicationURLMarker) {
		problems = append(problems, "please enter a valid LinkedIn URL")
	}
	switch req.PublicationKind {
	case "", model.PublicationComment, model.PublicationPost:
	default:
		problems = append(problems, "publication kind must be comment or post")
	}
	if req.LikeCount < 0 {
		problems = append(problems, "like count cannot be negative")
	}
	return problems
}

// Publish finalizes the submission, completes the module and closes the stepper.
func (s *ModuleService) Publish(ctx context.Context, moduleID int, req model.PublishRequest) (*model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, _, err := s.sessionAt(moduleID, model.StepPublish)
	if err != nil {
		return nil, err
	}
	if problems := ValidatePublication(req); len(problems) > 0 {
		rejected(model.StepPublish)
		return nil, util.NewValidationError(model.StepPublish.String(), problems...)
	}
	if req.PublicationKind == "" {
		req.PublicationKind = model.PublicationComment
	}

	completedAt := s.now().UTC()
	sub := s.store.UpdateSubmission(ctx, moduleID, func(sub *model.Submission) {
		sub.PublicationKind = req.PublicationKind
		sub.PublicationURL = strings.TrimSpace(req.PublicationURL)
		sub.LikeCount = req.LikeCount
		sub.CompletedAt = &completedAt
	})
	s.store.UpdateProgress(ctx, moduleID, func(p *model.ModuleProgress) {
		p.Completed = true
	})
	s.recorder.Record(ctx, s.store.Identity(), model.VerbCompleted, s.recorder.ModuleActivity(m), nil)

	delete(s.sessions, moduleID)
	monitoring.StepTransitions.WithLabelValues("complete", "ok").Inc()
	logger.Log.Info("Module completed", zap.Int("module", moduleID))
	return &sub, nil
}

// Previous steps back one step. Leaving Build saves the supplied draft unvalidated.
func (s *ModuleService) Previous(ctx context.Context, moduleID int, draft *model.PackageDraft) (*model.StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, sess, err := s.session(moduleID)
	if err != nil {
		return nil, err
	}
	if sess.Step == model.StepAssign {
		return nil, util.ErrNoPreviousStep
	}
	if sess.Step == model.StepBuild && draft != nil {
		s.store.UpdateSubmission(ctx, moduleID, draft.ApplyTo)
	}
	if sess.Step == model.StepQuiz {
		sess.LastQuizScore = nil
	}
	sess.Step--
	return s.view(m, sess), nil
}

// CompleteIntro 介绍模块：确认即完成
func (s *ModuleService) CompleteIntro(ctx context.Context, moduleID int) (model.ModuleProgress, error) {
	m, err := lookupModule(moduleID)
	if err != nil {
		return model.ModuleProgress{}, err
	}
	if !m.Intro {
		return model.ModuleProgress{}, util.ErrNotIntroModule
	}
	return s.store.UpdateProgress(ctx, moduleID, func(p *model.ModuleProgress) {
		p.Completed = true
	}), nil
}
