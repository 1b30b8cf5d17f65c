package services

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/kien39/mil-mang/app/events"
	"github.com/kien39/mil-mang/app/models"
	"github.com/kien39/mil-mang/app/storage"
)

// Survey runs the thought survey: a fixed questionnaire, weighted scoring
// with a three-tier classification, and one retained evaluation per person.
type Survey struct {
	store  storage.Store
	roster *Roster
	bus    *events.Bus
	now    func() time.Time

	mu          sync.Mutex
	evaluations []models.ThoughtEvaluation
}

func NewSurvey(store storage.Store, roster *Roster, bus *events.Bus) *Survey {
	s := &Survey{store: store, roster: roster, bus: bus, now: time.Now}
	if _, err := store.Get(storage.KeyEvaluations, &s.evaluations); err != nil {
		log.Printf("Loading saved evaluations failed, starting empty: %v", err)
	}
	return s
}

// Enabled reports whether the survey is open to respondents.
func (s *Survey) Enabled() bool {
	var enabled bool
	if _, err := s.store.Get(storage.KeySurveyEnabled, &enabled); err != nil {
		return false
	}
	return enabled
}

// SetEnabled toggles respondent access to the survey.
func (s *Survey) SetEnabled(enabled bool) error {
	return s.store.Set(storage.KeySurveyEnabled, enabled)
}

// Results returns the retained evaluations, newest first.
func (s *Survey) Results() []models.ThoughtEvaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ThoughtEvaluation, len(s.evaluations))
	copy(out, s.evaluations)
	return out
}

// Score computes the weighted total for the given responses and the maximum
// attainable total. Unanswered questions contribute zero; the two trailing
// open-ended questions are excluded entirely.
func Score(responses map[int]string) (total float64, max int) {
	for _, section := range SurveySections {
		for _, q := range section.Questions {
			if q.ID >= OpenQuestionStart {
				continue
			}
			best := 0
			for _, a := range q.Answers {
				if a.Score > best {
					best = a.Score
				}
			}
			max += best

			selected, ok := responses[q.ID]
			if !ok {
				continue
			}
			for _, a := range q.Answers {
				if a.Text == selected {
					total += float64(a.Score)
					break
				}
			}
		}
	}
	return total, max
}

// Classify derives the tier from the score. Exactly 75% classifies as
// settled and exactly 50% as needing counseling; a zero maximum counts as
// zero percent.
func Classify(total float64, max int) (level, label string) {
	percentage := 0.0
	if max > 0 {
		percentage = total / float64(max) * 100
	}
	switch {
	case percentage >= 75:
		level = models.LevelSettled
	case percentage >= 50:
		level = models.LevelCounseling
	default:
		level = models.LevelMonitoring
	}
	return level, models.LevelLabel(level)
}

// Reload replaces the retained evaluations with whatever the store holds
// now. Used when another process has rewritten the state file.
func (s *Survey) Reload() {
	var evaluations []models.ThoughtEvaluation
	if _, err := s.store.Get(storage.KeyEvaluations, &evaluations); err != nil {
		log.Printf("Reloading evaluations failed, keeping current list: %v", err)
		return
	}
	s.mu.Lock()
	s.evaluations = evaluations
	s.mu.Unlock()
}

// Submit records an evaluation for the named respondent. The name must
// resolve to exactly one roster entry by full-name equality; otherwise the
// submission is rejected without persisting anything. Any prior evaluation
// for the same person is removed before the new one is prepended.
func (s *Survey) Submit(fullName string, responses map[int]string, notes map[int]string, infoFields map[string]string) (models.ThoughtEvaluation, error) {
	person, ok := s.roster.ResolveByName(fullName)
	if !ok {
		return models.ThoughtEvaluation{}, &ValidationError{
			Message: "Không tìm thấy quân nhân trong danh sách",
		}
	}

	total, max := Score(responses)
	level, label := Classify(total, max)

	eval := models.ThoughtEvaluation{
		TT:          person.TT,
		Name:        person.Name,
		Responses:   responses,
		Notes:       notes,
		InfoFields:  infoFields,
		TotalScore:  math.Round(total*10) / 10,
		MaxScore:    max,
		Level:       level,
		LevelLabel:  label,
		EvaluatedAt: s.now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	kept := make([]models.ThoughtEvaluation, 0, len(s.evaluations)+1)
	kept = append(kept, eval)
	for _, e := range s.evaluations {
		if e.TT != eval.TT {
			kept = append(kept, e)
		}
	}
	s.evaluations = kept
	snapshot := make([]models.ThoughtEvaluation, len(kept))
	copy(snapshot, kept)
	s.mu.Unlock()

	if err := s.store.Set(storage.KeyEvaluations, snapshot); err != nil {
		return models.ThoughtEvaluation{}, err
	}
	s.bus.Publish(events.TopicSurveyUpdated, person.Name)
	return eval, nil
}
