package model

import "fmt"

type Step int

const (
	StepAssign Step = iota
	StepLearn
	StepQuiz
	StepInvestigate
	StepBuild
	StepPublish
)

var stepNames = [...]string{"assign", "learn", "quiz", "investigate", "build", "publish"}

// StepCount 工作流固定六步
const StepCount = len(stepNames)

func (s Step) String() string {
	if s < 0 || int(s) >= StepCount {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StepSession 模块步骤会话，仅存于内存，重新进入模块时从第 0 步开始
type StepSession struct {
	ModuleID int  `json:"moduleId"`
	Step     Step `json:"step"`
	// 最近一次测验的得分，未提交时为 nil
	LastQuizScore *float64 `json:"lastQuizScore"`
}

// StepView is what the presentation layer renders for the active step.
type StepView struct {
	Module     CatalogModule  `json:"module"`
	Session    StepSession    `json:"session"`
	Progress   ModuleProgress `json:"progress"`
	Submission *Submission    `json:"submission,omitempty"`
	QuizPassed bool           `json:"quizPassed"`
	Steps      []string       `json:"steps"`
}

func StepNames() []string {
	return append([]string(nil), stepNames[:]...)
}
