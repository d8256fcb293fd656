package service

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"oecd_explorer/internal/model"
)

// ReportService 总览、证书与作品列表，均为只读视图
type ReportService struct {
	store *StateStore
}

func NewReportService(store *StateStore) *ReportService {
	return &ReportService{store: store}
}

func (s *ReportService) Overview() model.Overview {
	progress := s.store.ProgressMap()
	catalog := model.Catalog()

	o := model.Overview{
		Identity: s.store.Identity(),
		Total:    len(catalog),
		Modules:  make([]model.ModuleStatus, 0, len(catalog)),
	}
	for _, m := range catalog {
		p := progress[m.ID]
		if p.Completed {
			o.Completed++
		}
		o.Modules = append(o.Modules, model.ModuleStatus{
			Module:    m,
			Completed: p.Completed,
			QuizScore: p.Clone().QuizScore,
		})
	}
	return o
}

// Certificate stays locked until every catalog module is completed.
func (s *ReportService) Certificate(now time.Time) model.Certificate {
	o := s.Overview()
	cert := model.Certificate{Completed: o.Completed, Total: o.Total}
	if o.Completed < o.Total || o.Identity == nil {
		return cert
	}

	cert.Unlocked = true
	cert.Name = o.Identity.Name
	cert.Role = o.Identity.Role
	cert.Hours = model.CertificateHours
	cert.IssuedAt = now.UTC()
	cert.VerificationID = VerificationID(o.Identity.Name, now)
	return cert
}

// VerificationID OE-<姓名前两个字母大写>-<毫秒时间戳后六位>
func VerificationID(name string, now time.Time) string {
	var initials []rune
	for _, r := range strings.TrimSpace(name) {
		if len(initials) == 2 {
			break
		}
		if unicode.IsSpace(r) {
			continue
		}
		initials = append(initials, unicode.ToUpper(r))
	}
	return fmt.Sprintf("OE-%s-%06d", string(initials), now.UnixMilli()%1000000)
}

// Submissions lists every stored submission ordered by module id.
func (s *ReportService) Submissions() []model.SubmissionEntry {
	subs := s.store.SubmissionMap()
	entries := make([]model.SubmissionEntry, 0, len(subs))
	for id, sub := range subs {
		title := fmt.Sprintf("Module %d", id)
		if m, ok := model.FindModule(id); ok {
			title = m.Title
		}
		entries = append(entries, model.SubmissionEntry{ModuleTitle: title, Submission: sub})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Submission.ModuleID < entries[j].Submission.ModuleID
	})
	return entries
}
