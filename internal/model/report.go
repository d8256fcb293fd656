package model

import "time"

// CertificateHours PD 学时，与模块数一致
const CertificateHours = 14

type ModuleStatus struct {
	Module    CatalogModule `json:"module"`
	Completed bool          `json:"completed"`
	QuizScore *float64      `json:"quizScore"`
}

type Overview struct {
	Identity  *Identity      `json:"identity"`
	Completed int            `json:"completed"`
	Total     int            `json:"total"`
	Modules   []ModuleStatus `json:"modules"`
}

type Certificate struct {
	Unlocked       bool      `json:"unlocked"`
	Completed      int       `json:"completed"`
	Total          int       `json:"total"`
	Name           string    `json:"name,omitempty"`
	Role           string    `json:"role,omitempty"`
	Hours          int       `json:"hours,omitempty"`
	VerificationID string    `json:"verificationId,omitempty"`
	IssuedAt       time.Time `json:"issuedAt,omitempty"`
}

// SubmissionEntry 管理员/作品集列表中的一行
type SubmissionEntry struct {
	ModuleTitle string     `json:"moduleTitle"`
	Submission  Submission `json:"submission"`
}
