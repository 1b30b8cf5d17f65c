package models

// Survey outcome tiers, ordered from settled to at-risk. The ids and labels
// are persisted and shown in exported reports.
const (
	LevelSettled    = "an-tam-cong-tac"
	LevelCounseling = "can-tu-van"
	LevelMonitoring = "can-de-y-giam-sat"
)

// LevelLabel maps a tier id to its human label.
func LevelLabel(level string) string {
	switch level {
	case LevelSettled:
		return "An tâm công tác"
	case LevelCounseling:
		return "Cần tư vấn"
	case LevelMonitoring:
		return "Cần để ý giám sát"
	}
	return ""
}

// SurveyAnswer is one selectable option of a question with its point value.
type SurveyAnswer struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// SurveyQuestion is a single scored question. When HasNote is set, selecting
// the "Có" answer reveals a supplementary free-text note field.
type SurveyQuestion struct {
	ID       int            `json:"id"`
	Question string         `json:"question"`
	Answers  []SurveyAnswer `json:"answers"`
	HasNote  bool           `json:"hasNote,omitempty"`
}

// SurveySection groups questions under a numbered heading.
type SurveySection struct {
	Title     string           `json:"title"`
	Questions []SurveyQuestion `json:"questions"`
}

// ThoughtEvaluation is one submitted survey, at most one retained per person.
// Responses and Notes are keyed by question id; notes with ids 18 and 19 hold
// the two open-ended answers that are excluded from scoring.
type ThoughtEvaluation struct {
	TT          int               `json:"tt"`
	Name        string            `json:"name"`
	Responses   map[int]string    `json:"responses"`
	Notes       map[int]string    `json:"notes,omitempty"`
	InfoFields  map[string]string `json:"infoFields,omitempty"`
	TotalScore  float64           `json:"totalScore"`
	MaxScore    int               `json:"maxScore"`
	Level       string            `json:"level"`
	LevelLabel  string            `json:"levelLabel"`
	EvaluatedAt string            `json:"evaluatedAt"`
}
