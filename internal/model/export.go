package model

import "time"

const (
	ExportSchemaID = "oecd-explorer-export"
	ExportVersion  = 1
)

// ExportDocument 完整状态快照，可原样导入
type ExportDocument struct {
	SchemaID          string            `json:"schemaId"`
	Version           int               `json:"version"`
	ExportedAt        time.Time         `json:"exportedAt"`
	Identity          *Identity         `json:"identity"`
	ProgressMap       ProgressMap       `json:"progressMap"`
	SubmissionMap     SubmissionMap     `json:"submissionMap"`
	IntegrationConfig IntegrationConfig `json:"integrationConfig"`
	EventLog          []EventRecord     `json:"eventLog"`
}

// Route names handed back to the presentation layer.
const (
	RouteOnboard   = "onboard"
	RouteDashboard = "dashboard"
)

type ImportResult struct {
	Route    string   `json:"route"`
	Sections []string `json:"sections"`
}
