package schedule

import (
	"errors"
	"sync"
)

var (
	// errors
	ErrNotFound      = errors.New("section not found")
	ErrSectionFull   = errors.New("section is full")
	ErrNegativeCount = errors.New("enrolled count cannot be negative")
)

// HasConflict reports whether any meeting of candidate shares a
// (dayOfWeek, startTime) pair with any meeting of the existing sections.
//
// Known simplification carried over from the original rule set: only exact
// start-time matches conflict. A 09:00 meeting and a 09:30 meeting never
// conflict regardless of duration.
func HasConflict(existing []Section, candidate Section) bool {
	taken := make(map[Cell]struct{})
	for _, sec := range existing {
		for _, m := range sec.Meetings {
			taken[Cell{Day: m.DayOfWeek, Slot: m.StartTime}] = struct{}{}
		}
	}
	for _, m := range candidate.Meetings {
		if _, ok := taken[Cell{Day: m.DayOfWeek, Slot: m.StartTime}]; ok {
			return true
		}
	}
	return false
}

// CapacityLeft returns the remaining seats in sec, never negative.
func CapacityLeft(sec Section) int {
	return sec.AvailableSpots()
}

// Catalog owns the Section set for one semester. The grid projection is
// recomputed on every write and served read-only.
type Catalog struct {
	semesterID int

	mutex    sync.RWMutex
	sections []Section
	byID     map[int]int // section ID -> index into sections
	grid     Grid
	diags    []Diagnostic
}

func NewCatalog(semesterID int) *Catalog {
	cat := &Catalog{semesterID: semesterID}
	cat.rebuild(nil)
	return cat
}

func (cat *Catalog) SemesterID() int { return cat.semesterID }

// rebuild swaps the section set and recomputes the projection. Callers must
// hold the write lock (or own cat exclusively).
func (cat *Catalog) rebuild(sections []Section) {
	cat.sections = sections
	cat.byID = make(map[int]int, len(sections))
	for i, sec := range sections {
		cat.byID[sec.ID] = i
	}
	cat.grid, cat.diags = Bucket(sections)
}

// Replace swaps in a freshly fetched section set.
func (cat *Catalog) Replace(sections []Section) {
	cat.mutex.Lock()
	defer cat.mutex.Unlock()
	cat.rebuild(sections)
}

func (cat *Catalog) Sections() []Section {
	cat.mutex.RLock()
	defer cat.mutex.RUnlock()
	out := make([]Section, len(cat.sections))
	copy(out, cat.sections)
	return out
}

func (cat *Catalog) Get(id int) (Section, error) {
	cat.mutex.RLock()
	defer cat.mutex.RUnlock()
	i, ok := cat.byID[id]
	if !ok {
		return Section{}, ErrNotFound
	}
	return cat.sections[i], nil
}

// Grid returns the cached (day, slot) projection.
func (cat *Catalog) Grid() Grid {
	cat.mutex.RLock()
	defer cat.mutex.RUnlock()
	return cat.grid
}

// Diagnostics returns the data-quality findings from the last rebuild.
func (cat *Catalog) Diagnostics() []Diagnostic {
	cat.mutex.RLock()
	defer cat.mutex.RUnlock()
	return cat.diags
}

// RecordEnrollment adjusts a section's enrolled count by delta (+1|-1) and
// returns the updated section. Callers must have validated via CapacityLeft
// first; the catalog never clamps. The local count is an optimistic mirror —
// the scheduler service remains the source of truth.
func (cat *Catalog) RecordEnrollment(id, delta int) (Section, error) {
	cat.mutex.Lock()
	defer cat.mutex.Unlock()

	i, ok := cat.byID[id]
	if !ok {
		return Section{}, ErrNotFound
	}
	sec := cat.sections[i]
	next := sec.EnrolledCount + delta
	if next > sec.Capacity {
		return Section{}, ErrSectionFull
	}
	if next < 0 {
		return Section{}, ErrNegativeCount
	}
	sec.EnrolledCount = next
	cat.sections[i] = sec
	// enrollment counts ride along on grid cells; recompute the projection
	cat.grid, cat.diags = Bucket(cat.sections)
	return sec, nil
}
