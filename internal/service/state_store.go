package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"oecd_explorer/internal/model"
	"oecd_explorer/internal/repository"
	"oecd_explorer/pkg/logger"
	"oecd_explorer/pkg/monitoring"

	"go.uber.org/zap"
)

// 四个聚合在持久层中的固定键
const (
	KeyIdentity    = "identity"
	KeyProgress    = "progress"
	KeySubmissions = "submissions"
	KeyIntegration = "integration"
)

// StateStore holds the four persisted aggregates. Every mutation writes the touched
// aggregate back before returning; aggregates are written independently of each other.
type StateStore struct {
	repo repository.StateRepository

	mu          sync.RWMutex
	identity    *model.Identity
	progress    model.ProgressMap
	submissions model.SubmissionMap
	integration model.IntegrationConfig
}

func NewStateStore(repo repository.StateRepository) *StateStore {
	return &StateStore{
		repo:        repo,
		progress:    model.ProgressMap{},
		submissions: model.SubmissionMap{},
	}
}

// Init loads every aggregate. A missing or undecodable aggregate falls back to its default.
func (s *StateStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var identity *model.Identity
	if err := s.load(ctx, KeyIdentity, &identity); err != nil {
		return err
	}
	progress := model.ProgressMap{}
	if err := s.load(ctx, KeyProgress, &progress); err != nil {
		return err
	}
	submissions := model.SubmissionMap{}
	if err := s.load(ctx, KeySubmissions, &submissions); err != nil {
		return err
	}
	var integration model.IntegrationConfig
	if err := s.load(ctx, KeyIntegration, &integration); err != nil {
		return err
	}

	if progress == nil {
		progress = model.ProgressMap{}
	}
	if submissions == nil {
		submissions = model.SubmissionMap{}
	}

	s.identity = identity
	s.progress = progress
	s.submissions = submissions
	s.integration = integration

	logger.Log.Info("State store loaded",
		zap.Bool("identity", identity != nil),
		zap.Int("progress", len(progress)),
		zap.Int("submissions", len(submissions)),
	)
	return nil
}

func (s *StateStore) load(ctx context.Context, key string, dst interface{}) error {
	raw, ok, err := s.repo.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Log.Warn("Discarding undecodable aggregate", zap.String("aggregate", key), zap.Error(err))
	}
	return nil
}

// flush 写回单个聚合；失败只记录日志，不返回给调用方
func (s *StateStore) flush(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err == nil {
		err = s.repo.Save(ctx, key, raw)
	}
	if err != nil {
		monitoring.StateWriteFailures.WithLabelValues(key).Inc()
		logger.Log.Error("Failed to write aggregate", zap.String("aggregate", key), zap.Error(err))
	}
}

func (s *StateStore) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *StateStore) Identity() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

func (s *StateStore) SetIdentity(ctx context.Context, identity model.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
	s.flush(ctx, KeyIdentity, s.identity)
}

// Progress returns the stored progress, or the default record when the module was never opened.
func (s *StateStore) Progress(moduleID int) model.ModuleProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.progress[moduleID]; ok {
		return p.Clone()
	}
	return model.NewModuleProgress(moduleID)
}

func (s *StateStore) ProgressMap() model.ProgressMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.Clone()
}

// EnsureProgress 首次打开模块时创建默认进度并写回
func (s *StateStore) EnsureProgress(ctx context.Context, moduleID int) model.ModuleProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.progress[moduleID]; !ok {
		s.progress[moduleID] = model.NewModuleProgress(moduleID)
		s.flush(ctx, KeyProgress, s.progress)
	}
	return s.progress[moduleID].Clone()
}

func (s *StateStore) UpdateProgress(ctx context.Context, moduleID int, fn func(*model.ModuleProgress)) model.ModuleProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.progress[moduleID]
	if !ok {
		p = model.NewModuleProgress(moduleID)
	}
	fn(&p)
	p.ModuleID = moduleID
	s.progress[moduleID] = p
	s.flush(ctx, KeyProgress, s.progress)
	return s.progress[moduleID].Clone()
}

func (s *StateStore) Submission(moduleID int) (model.Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.submissions[moduleID]
	if !ok {
		return model.Submission{}, false
	}
	return sub.Clone(), true
}

func (s *StateStore) SubmissionMap() model.SubmissionMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submissions.Clone()
}

// UpdateSubmission merges into the module's submission, creating it when absent.
func (s *StateStore) UpdateSubmission(ctx context.Context, moduleID int, fn func(*model.Submission)) model.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[moduleID]
	if !ok {
		sub = model.Submission{ModuleID: moduleID}
	}
	sub = sub.Clone()
	fn(&sub)
	sub.ModuleID = moduleID
	s.submissions[moduleID] = sub
	s.flush(ctx, KeySubmissions, s.submissions)
	return sub.Clone()
}

func (s *StateStore) Integration() model.IntegrationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.integration
}

func (s *StateStore) SetIntegration(ctx context.Context, cfg model.IntegrationConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.integration = cfg
	s.flush(ctx, KeyIntegration, s.integration)
}

// Sections 导入时的各聚合，nil 表示文档中不存在该段
type Sections struct {
	Identity    *model.Identity
	Progress    model.ProgressMap
	Submissions model.SubmissionMap
	Integration *model.IntegrationConfig
}

// Replace wholesale-replaces every section that is present and writes each one back.
func (s *StateStore) Replace(ctx context.Context, sec Sections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sec.Identity != nil {
		id := *sec.Identity
		s.identity = &id
		s.flush(ctx, KeyIdentity, s.identity)
	}
	if sec.Progress != nil {
		s.progress = sec.Progress.Clone()
		s.flush(ctx, KeyProgress, s.progress)
	}
	if sec.Submissions != nil {
		s.submissions = sec.Submissions.Clone()
		s.flush(ctx, KeySubmissions, s.submissions)
	}
	if sec.Integration != nil {
		s.integration = *sec.Integration
		s.flush(ctx, KeyIntegration, s.integration)
	}
}
