package model

import "strconv"

// ModuleProgress 单个模块的学习进度
type ModuleProgress struct {
	ModuleID         int      `json:"moduleId"`
	ReviewedMaterial bool     `json:"reviewedMaterial"`
	QuizScore        *float64 `json:"quizScore"`
	Completed        bool     `json:"completed"`
}

// NewModuleProgress returns the default progress record for a module that was never opened.
func NewModuleProgress(moduleID int) ModuleProgress {
	return ModuleProgress{ModuleID: moduleID}
}

// HasPassingScore reports whether a stored quiz score meets the pass mark.
func (p ModuleProgress) HasPassingScore() bool {
	return p.QuizScore != nil && *p.QuizScore >= PassingScore
}

// ProgressMap 按模块ID索引，JSON键为字符串形式的ID
type ProgressMap map[int]ModuleProgress

func (p ModuleProgress) Clone() ModuleProgress {
	if p.QuizScore != nil {
		score := *p.QuizScore
		p.QuizScore = &score
	}
	return p
}

func (m ProgressMap) Clone() ProgressMap {
	out := make(ProgressMap, len(m))
	for id, p := range m {
		out[id] = p.Clone()
	}
	return out
}

// CompletedCount counts modules with completed = true.
func (m ProgressMap) CompletedCount() int {
	n := 0
	for _, p := range m {
		if p.Completed {
			n++
		}
	}
	return n
}

func ModuleKey(id int) string {
	return strconv.Itoa(id)
}
