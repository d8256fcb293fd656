package model

// PassingScore 测验通过线（百分制）
const PassingScore = 80.0

type AssessmentQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	answer  int
}

var assessment = []AssessmentQuestion{
	{Prompt: "When integrating AI tools, what is the primary pedagogical goal?", Options: []string{"Replacing teacher assessment", "Enhancing cognitive scaffolding", "Reducing total curriculum hours", "Automating all parent communication"}, answer: 1},
	{Prompt: "Which of the following represents a 'deficit framing' trap in AI use?", Options: []string{"Using AI to translate materials", "Prompting AI to 'simplify for lower-performing students'", "Generating multiple case study examples", "Using AI to analyze aggregate trends"}, answer: 1},
	{Prompt: "In the context of the OECD report, 'Human Skill Development' emphasizes:", Options: []string{"Memorization speed", "Prompt engineering solely", "Critical thinking and socio-emotional skills", "Typing proficiency"}, answer: 2},
	{Prompt: "A dialogue-based AI tutor is best utilized when it:", Options: []string{"Gives direct answers immediately", "Acts as a Socratic coach", "Grades essays without human review", "Replaces peer collaboration"}, answer: 1},
	{Prompt: "When sharing your Front Page Package, what is the required deliverable format?", Options: []string{"A 5-page PDF essay", "An infographic and 150-220 word mini-article", "A 10-minute podcast", "A slide deck"}, answer: 1},
}

// Assessment returns the questions without exposing the answer key.
func Assessment() []AssessmentQuestion {
	out := make([]AssessmentQuestion, len(assessment))
	for i, q := range assessment {
		out[i] = AssessmentQuestion{Prompt: q.Prompt, Options: append([]string(nil), q.Options...)}
	}
	return out
}

func AssessmentSize() int {
	return len(assessment)
}

// AnswerKey 返回标准答案，按题号索引
func AnswerKey() []int {
	key := make([]int, len(assessment))
	for i, q := range assessment {
		key[i] = q.answer
	}
	return key
}
