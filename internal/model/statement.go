package model

import "time"

// StatementVersion is the xAPI version stamped on every statement.
const StatementVersion = "1.0.3"

const (
	ObjectTypeAgent    = "Agent"
	ObjectTypeActivity = "Activity"
	DefaultLocale      = "en-US"
)

type LanguageMap map[string]string

type Actor struct {
	Mbox       string `json:"mbox"`
	Name       string `json:"name"`
	ObjectType string `json:"objectType"`
}

type Verb struct {
	ID      string      `json:"id"`
	Display LanguageMap `json:"display"`
}

type ActivityDefinition struct {
	Name LanguageMap `json:"name"`
}

type Activity struct {
	ID         string             `json:"id"`
	Definition ActivityDefinition `json:"definition"`
	ObjectType string             `json:"objectType"`
}

type Score struct {
	Raw float64 `json:"raw"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Result struct {
	Score Score `json:"score"`
}

// Statement 标准化的学习活动记录
type Statement struct {
	ID      string   `json:"id,omitempty"`
	Version string   `json:"version,omitempty"`
	Actor   Actor    `json:"actor"`
	Verb    Verb     `json:"verb"`
	Object  Activity `json:"object"`
	Result  *Result  `json:"result,omitempty"`
}

// EventRecord 本地事件日志中的一条记录，只追加不修改
type EventRecord struct {
	RecordedAt time.Time `json:"recordedAt"`
	Statement  Statement `json:"statement"`
}

const verbBase = "http://adlnet.gov/expapi/verbs/"

var (
	VerbLaunched  = NewVerb(verbBase+"launched", "launched")
	VerbPassed    = NewVerb(verbBase+"passed", "passed")
	VerbCompleted = NewVerb(verbBase+"completed", "completed")
)

func NewVerb(id, label string) Verb {
	return Verb{ID: id, Display: LanguageMap{DefaultLocale: label}}
}

func NewActivity(id, label string) Activity {
	return Activity{
		ID:         id,
		Definition: ActivityDefinition{Name: LanguageMap{DefaultLocale: label}},
		ObjectType: ObjectTypeActivity,
	}
}

// Label returns the en-US display label of the verb.
func (v Verb) Label() string {
	return v.Display[DefaultLocale]
}
