package model

import (
	"fmt"
	"sort"
	"time"
)

const ReflectionCount = 3

type PublicationKind string

const (
	PublicationComment PublicationKind = "comment"
	PublicationPost    PublicationKind = "post"
)

func (k *PublicationKind) UnmarshalText(text []byte) error {
	switch v := PublicationKind(text); v {
	case "", PublicationComment, PublicationPost:
		*k = v
		return nil
	default:
		return fmt.Errorf("unknown publication kind %q", string(text))
	}
}

type InclusivityVerdict string

const (
	VerdictUnset  InclusivityVerdict = ""
	VerdictYes    InclusivityVerdict = "Yes"
	VerdictNo     InclusivityVerdict = "No"
	VerdictUnsure InclusivityVerdict = "Unsure"
)

func (v *InclusivityVerdict) UnmarshalText(text []byte) error {
	switch got := InclusivityVerdict(text); got {
	case VerdictUnset, VerdictYes, VerdictNo, VerdictUnsure:
		*v = got
		return nil
	default:
		return fmt.Errorf("unknown inclusivity verdict %q", string(text))
	}
}

type RiskCategory string

const (
	RiskAccuracy      RiskCategory = "Accuracy"
	RiskBias          RiskCategory = "Bias"
	RiskPrivacy       RiskCategory = "Privacy"
	RiskFeasibility   RiskCategory = "Feasibility"
	RiskAccessibility RiskCategory = "Accessibility"
)

var RiskCategories = []RiskCategory{RiskAccuracy, RiskBias, RiskPrivacy, RiskFeasibility, RiskAccessibility}

func (r *RiskCategory) UnmarshalText(text []byte) error {
	for _, known := range RiskCategories {
		if string(known) == string(text) {
			*r = known
			return nil
		}
	}
	return fmt.Errorf("unknown risk category %q", string(text))
}

// AILog AI 使用记录，仅当 usedAI 为 true 时存在
type AILog struct {
	Tool               string             `json:"tool"`
	Goal               string             `json:"goal"`
	PromptsUsed        string             `json:"promptsUsed"`
	Output             string             `json:"output"`
	WhatWasKept        string             `json:"whatWasKept"`
	WhatWasChanged     string             `json:"whatWasChanged"`
	InclusivityVerdict InclusivityVerdict `json:"inclusivityVerdict"`
	InclusivityDetails string             `json:"inclusivityDetails"`
	RisksChecked       []RiskCategory     `json:"risksChecked"`
	VerificationNote   string             `json:"verificationNote"`
}

// NormalizeRisks de-duplicates and orders the checked risks so the set has one representation.
func (l *AILog) NormalizeRisks() {
	if l == nil {
		return
	}
	seen := make(map[RiskCategory]bool, len(l.RisksChecked))
	out := make([]RiskCategory, 0, len(l.RisksChecked))
	for _, r := range l.RisksChecked {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	l.RisksChecked = out
}

// Submission 学习者为一个模块提交的成果包
type Submission struct {
	ModuleID        int                     `json:"moduleId"`
	InfographicRef  string                  `json:"infographicRef"`
	ArticleText     string                  `json:"articleText"`
	EvidenceAnchor  string                  `json:"evidenceAnchor"`
	Reflections     [ReflectionCount]string `json:"reflections"`
	UsedAI          bool                    `json:"usedAI"`
	AILog           *AILog                  `json:"aiLog,omitempty"`
	PublicationKind PublicationKind         `json:"publicationKind"`
	PublicationURL  string                  `json:"publicationUrl"`
	LikeCount       int                     `json:"likeCount"`
	CompletedAt     *time.Time              `json:"completedAt"`
}

func (s Submission) Clone() Submission {
	if s.AILog != nil {
		log := *s.AILog
		log.RisksChecked = append([]RiskCategory(nil), s.AILog.RisksChecked...)
		s.AILog = &log
	}
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		s.CompletedAt = &t
	}
	return s
}

// Finalized reports whether the submission was stamped by a successful publish.
func (s Submission) Finalized() bool {
	return s.CompletedAt != nil
}

type SubmissionMap map[int]Submission

func (m SubmissionMap) Clone() SubmissionMap {
	out := make(SubmissionMap, len(m))
	for id, s := range m {
		out[id] = s.Clone()
	}
	return out
}

// PackageDraft 构建步骤中的草稿字段，nil 表示未修改
type PackageDraft struct {
	InfographicRef *string                  `json:"infographicRef"`
	ArticleText    *string                  `json:"articleText"`
	EvidenceAnchor *string                  `json:"evidenceAnchor"`
	Reflections    *[ReflectionCount]string `json:"reflections"`
	UsedAI         *bool                    `json:"usedAI"`
	AILog          *AILog                   `json:"aiLog"`
}

// ApplyTo merges the draft into sub. The AI log is kept only while usedAI is true.
func (d PackageDraft) ApplyTo(sub *Submission) {
	if d.InfographicRef != nil {
		sub.InfographicRef = *d.InfographicRef
	}
	if d.ArticleText != nil {
		sub.ArticleText = *d.ArticleText
	}
	if d.EvidenceAnchor != nil {
		sub.EvidenceAnchor = *d.EvidenceAnchor
	}
	if d.Reflections != nil {
		sub.Reflections = *d.Reflections
	}
	if d.UsedAI != nil {
		sub.UsedAI = *d.UsedAI
	}
	if d.AILog != nil {
		log := *d.AILog
		log.RisksChecked = append([]RiskCategory(nil), d.AILog.RisksChecked...)
		log.NormalizeRisks()
		sub.AILog = &log
	}
	if !sub.UsedAI {
		sub.AILog = nil
	}
}

// PublishRequest 发布步骤的输入
type PublishRequest struct {
	PublicationKind PublicationKind `json:"publicationKind"`
	PublicationURL  string          `json:"publicationUrl"`
	LikeCount       int             `json:"likeCount"`
}
