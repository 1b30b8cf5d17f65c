package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/kien39/mil-mang/app/events"
	"github.com/kien39/mil-mang/app/excel"
	"github.com/kien39/mil-mang/app/models"
	"github.com/kien39/mil-mang/app/storage"
)

// PageSize is the fixed number of roster rows per page in the attendance
// view.
const PageSize = 9

// Roster is the personnel record store: the spreadsheet rows merged with the
// persisted attendance records, mutated in place and saved wholesale.
type Roster struct {
	reader *excel.Reader
	store  storage.Store
	bus    *events.Bus

	mu     sync.Mutex
	people []*models.Person
}

func NewRoster(reader *excel.Reader, store storage.Store, bus *events.Bus) *Roster {
	return &Roster{reader: reader, store: store, bus: bus}
}

// Load re-reads the spreadsheet and merges in any persisted attendance
// records by TT. People without a persisted counterpart default to
// not-absent with an empty reason.
func (r *Roster) Load() error {
	people, err := r.reader.Read()
	if err != nil {
		return err
	}

	records := map[int]models.AttendanceRecord{}
	if _, err := r.store.Get(storage.KeyAttendance, &records); err != nil {
		log.Printf("Loading saved attendance failed, using defaults: %v", err)
		records = map[int]models.AttendanceRecord{}
	}
	for _, p := range people {
		if rec, ok := records[p.TT]; ok {
			p.Absent = rec.Present
			p.Reason = rec.Reason
		}
	}

	r.mu.Lock()
	r.people = people
	r.mu.Unlock()
	return nil
}

// People returns a snapshot of the merged roster in canonical order.
func (r *Roster) People() []models.Person {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Person, len(r.people))
	for i, p := range r.people {
		out[i] = *p
	}
	return out
}

// Stats returns total / present / absent counts.
func (r *Roster) Stats() (total, present, absent int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total = len(r.people)
	for _, p := range r.people {
		if p.Absent {
			absent++
		}
	}
	return total, total - absent, absent
}

// SetAbsent toggles the absence flag for the row at the canonical index.
// Un-marking absence clears the reason.
func (r *Roster) SetAbsent(index int, absent bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.people) {
		return fmt.Errorf("roster index %d out of range", index)
	}
	p := r.people[index]
	p.Absent = absent
	if !absent {
		p.Reason = ""
	}
	return nil
}

// SetReason updates the free-text reason for the row at the canonical index.
func (r *Roster) SetReason(index int, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.people) {
		return fmt.Errorf("roster index %d out of range", index)
	}
	r.people[index].Reason = reason
	return nil
}

// MarkByTT sets the absence state for every given TT that exists in the
// roster. Unknown TTs are ignored: task membership and other derived data
// must tolerate dangling references.
func (r *Roster) MarkByTT(tts []int, absent bool, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tt := range tts {
		for _, p := range r.people {
			if p.TT == tt {
				p.Absent = absent
				p.Reason = reason
				break
			}
		}
	}
}

// Save serializes the entire roster's attendance state keyed by TT,
// overwriting the previous save, and broadcasts the change.
func (r *Roster) Save() error {
	r.mu.Lock()
	records := make(map[int]models.AttendanceRecord, len(r.people))
	for _, p := range r.people {
		records[p.TT] = models.AttendanceRecord{TT: p.TT, Present: p.Absent, Reason: p.Reason}
	}
	r.mu.Unlock()

	if err := r.store.Set(storage.KeyAttendance, records); err != nil {
		return err
	}
	r.bus.Publish(events.TopicAttendanceSaved, "")
	return nil
}

// RosterRow is one row of a paged view, carrying the canonical index so a
// view mutation can be mapped back onto the unfiltered array.
type RosterRow struct {
	Index  int
	Person models.Person
}

// MarshalJSON flattens the row into the merged-record shape plus the
// canonical index.
func (r RosterRow) MarshalJSON() ([]byte, error) {
	m := r.Person.RosterFields()
	m["index"] = r.Index
	return json.Marshal(m)
}

// RosterPage is one page of a unit category.
type RosterPage struct {
	Category   string      `json:"category"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	TotalRows  int         `json:"totalRows"`
	Rows       []RosterRow `json:"rows"`
}

// Page partitions the roster by the fixed unit categories and returns one
// page of the requested category. An out-of-range page is clamped, so a
// category switch can always request page 0.
func (r *Roster) Page(categoryID string, page int) (RosterPage, error) {
	var match func(unit string) bool
	if categoryID == models.FallbackCategoryID {
		match = func(unit string) bool {
			return models.UnitNameFor(unit) == models.FallbackUnitName
		}
	} else {
		cat, ok := models.CategoryByID(categoryID)
		if !ok {
			return RosterPage{}, fmt.Errorf("unknown unit category %q", categoryID)
		}
		match = cat.Matches
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []RosterRow
	for i, p := range r.people {
		if match(p.Unit) {
			rows = append(rows, RosterRow{Index: i, Person: *p})
		}
	}

	totalPages := (len(rows) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}
	start := page * PageSize
	end := start + PageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}
	return RosterPage{
		Category:   categoryID,
		Page:       page,
		TotalPages: totalPages,
		TotalRows:  len(rows),
		Rows:       rows[start:end],
	}, nil
}

// FindByName returns roster entries whose full name contains the query,
// case-insensitively, preserving roster order. An empty query matches
// nothing: the survey form only suggests once the respondent starts typing.
func (r *Roster) FindByName(query string) []models.Person {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Person
	for _, p := range r.people {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, *p)
		}
	}
	return out
}

// ResolveByName returns the roster entry whose full name equals name
// exactly. The survey submission path requires this unambiguous match.
func (r *Roster) ResolveByName(name string) (models.Person, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.people {
		if p.Name == name {
			return *p, true
		}
	}
	return models.Person{}, false
}

// AbsentReasons returns the distinct reasons among absent people, sorted,
// with empty reasons replaced by the report placeholder.
func AbsentReasons(people []models.Person, placeholder string) []string {
	set := map[string]struct{}{}
	for _, p := range people {
		if !p.Absent {
			continue
		}
		reason := strings.TrimSpace(p.Reason)
		if reason == "" {
			reason = placeholder
		}
		set[reason] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
