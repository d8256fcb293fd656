package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"oecd_explorer/internal/model"
	"oecd_explorer/internal/util"
	"oecd_explorer/pkg/logger"

	"go.uber.org/zap"
)

// 导出文档各段的 JSON 键
const (
	sectionIdentity    = "identity"
	sectionProgress    = "progressMap"
	sectionSubmissions = "submissionMap"
	sectionIntegration = "integrationConfig"
	sectionEventLog    = "eventLog"
)

type sessionResetter interface {
	ResetSessions()
}

// TransferService exports the full persisted state and imports it back.
type TransferService struct {
	store    *StateStore
	recorder *EventRecorder
	sessions sessionResetter
	storage  *StorageService
	now      func() time.Time
}

func NewTransferService(store *StateStore, recorder *EventRecorder, sessions sessionResetter, storage *StorageService) *TransferService {
	return &TransferService{
		store:    store,
		recorder: recorder,
		sessions: sessions,
		storage:  storage,
		now:      time.Now,
	}
}

func (s *TransferService) Export(ctx context.Context) (*model.ExportDocument, error) {
	events, err := s.recorder.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("read event log: %w", err)
	}
	if events == nil {
		events = []model.EventRecord{}
	}
	return &model.ExportDocument{
		SchemaID:          model.ExportSchemaID,
		Version:           model.ExportVersion,
		ExportedAt:        s.now().UTC(),
		Identity:          s.store.Identity(),
		ProgressMap:       s.store.ProgressMap(),
		SubmissionMap:     s.store.SubmissionMap(),
		IntegrationConfig: s.store.Integration(),
		EventLog:          events,
	}, nil
}

// ExportFilename 形如 oecd-explorer-export-2026-01-31.json
func ExportFilename(at time.Time) string {
	return fmt.Sprintf("%s-%s.json", model.ExportSchemaID, at.Format(util.DateFormat))
}

// ExportToStorage writes the export document through the configured blob provider.
func (s *TransferService) ExportToStorage(ctx context.Context) (string, error) {
	doc, err := s.Export(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	name := "exports/" + ExportFilename(doc.ExportedAt)
	url, err := s.storage.Put(ctx, name, data, util.MimeJSON)
	if err != nil {
		return "", fmt.Errorf("upload export archive: %w", err)
	}
	logger.Log.Info("Export archived", zap.String("url", url), zap.Int("bytes", len(data)))
	return url, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Import validates the whole document before touching anything, then replaces every
// section present in it. Sections absent from the document are left as they are.
func (s *TransferService) Import(ctx context.Context, raw []byte) (*model.ImportResult, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMalformedImport, err)
	}

	var schemaID string
	if v, ok := doc["schemaId"]; !ok || json.Unmarshal(v, &schemaID) != nil || schemaID != model.ExportSchemaID {
		return nil, util.ErrSchemaMismatch
	}

	var (
		sec       Sections
		events    []model.EventRecord
		hasEvents bool
		names     []string
	)
	decode := func(key string, dst interface{}) (bool, error) {
		v, ok := doc[key]
		if !ok || isNull(v) {
			return false, nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return false, fmt.Errorf("%w: %s: %v", util.ErrMalformedImport, key, err)
		}
		names = append(names, key)
		return true, nil
	}

	var identity model.Identity
	if ok, err := decode(sectionIdentity, &identity); err != nil {
		return nil, err
	} else if ok {
		sec.Identity = &identity
	}
	progress := model.ProgressMap{}
	if ok, err := decode(sectionProgress, &progress); err != nil {
		return nil, err
	} else if ok {
		sec.Progress = progress
	}
	submissions := model.SubmissionMap{}
	if ok, err := decode(sectionSubmissions, &submissions); err != nil {
		return nil, err
	} else if ok {
		sec.Submissions = submissions
	}
	var integration model.IntegrationConfig
	if ok, err := decode(sectionIntegration, &integration); err != nil {
		return nil, err
	} else if ok {
		sec.Integration = &integration
	}
	if v, ok := doc[sectionEventLog]; ok && !isNull(v) {
		if trimmed := bytes.TrimSpace(v); len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, fmt.Errorf("%w: %s must be an array", util.ErrMalformedImport, sectionEventLog)
		}
		if _, err := decode(sectionEventLog, &events); err != nil {
			return nil, err
		}
		if events == nil {
			events = []model.EventRecord{}
		}
		hasEvents = true
	}

	s.store.Replace(ctx, sec)
	if hasEvents {
		if err := s.recorder.ReplaceLog(ctx, events); err != nil {
			logger.Log.Error("Failed to replace event log on import", zap.Error(err))
		}
	}
	s.sessions.ResetSessions()

	result := &model.ImportResult{Route: model.RouteOnboard, Sections: names}
	if s.store.Identity() != nil {
		result.Route = model.RouteDashboard
	}
	logger.Log.Info("State imported", zap.Strings("sections", names), zap.String("route", result.Route))
	return result, nil
}
