package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"oecd_explorer/internal/model"
	"oecd_explorer/internal/util"
	"oecd_explorer/pkg/logger"

	"go.uber.org/zap"
)

// OnboardingService 首次进入与集成设置
type OnboardingService struct {
	store    *StateStore
	recorder *EventRecorder
}

func NewOnboardingService(store *StateStore, recorder *EventRecorder) *OnboardingService {
	return &OnboardingService{store: store, recorder: recorder}
}

// Onboard creates the learner identity once and records the course launch.
func (s *OnboardingService) Onboard(ctx context.Context, name, role string) (*model.Identity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.NewValidationError("onboard", "name is required")
	}
	if s.store.Identity() != nil {
		return nil, util.ErrAlreadyOnboarded
	}

	identity := model.Identity{Name: name, Role: strings.TrimSpace(role)}
	s.store.SetIdentity(ctx, identity)
	s.recorder.Record(ctx, &identity, model.VerbLaunched, s.recorder.CourseActivity(), nil)
	logger.Log.Info("Learner onboarded", zap.String("role", identity.Role))
	return &identity, nil
}

func (s *OnboardingService) Settings() model.IntegrationConfig {
	return s.store.Integration()
}

// UpdateSettings replaces the integration config. Enabling requires an absolute http(s) endpoint.
func (s *OnboardingService) UpdateSettings(ctx context.Context, cfg model.IntegrationConfig) (model.IntegrationConfig, error) {
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if cfg.Enabled {
		u, err := url.Parse(cfg.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return model.IntegrationConfig{}, fmt.Errorf("%w: endpoint must be an absolute http(s) URL", util.ErrInvalidSettings)
		}
	}
	s.store.SetIntegration(ctx, cfg)
	logger.Log.Info("Integration settings updated", zap.Bool("enabled", cfg.Enabled), zap.String("endpoint", cfg.Endpoint))
	return cfg, nil
}
