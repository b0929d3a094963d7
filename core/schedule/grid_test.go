package schedule

import (
	"reflect"
	"testing"
)

func testSection(id int, code string, meetings ...Meeting) Section {
	return Section{
		ID:            id,
		CourseCode:    code,
		CourseName:    code + " course",
		SectionNumber: 1,
		Capacity:      30,
		Meetings:      meetings,
	}
}

func meeting(id, sectionID, day int, start string) Meeting {
	return Meeting{ID: id, SectionID: sectionID, DayOfWeek: day, StartTime: start, DurationMinutes: 60}
}

func Test_Bucket(t *testing.T) {
	t.Run("lunch meeting is excluded with a diagnostic", func(t *testing.T) {
		sections := []Section{
			testSection(1, "MAT101", meeting(10, 1, 1, "09:00"), meeting(11, 1, 3, "12:00")),
		}
		grid, diags := Bucket(sections)

		if got := len(grid.Sections(1, "09:00")); got != 1 {
			t.Errorf("Sections(1, 09:00) len = %d, want 1", got)
		}
		if got := len(grid.Sections(3, "12:00")); got != 0 {
			t.Errorf("Sections(3, 12:00) len = %d, want 0", got)
		}
		want := []Diagnostic{{SectionID: 1, MeetingID: 11, Reason: ReasonInvalidTimeSlot}}
		if !reflect.DeepEqual(diags, want) {
			t.Errorf("diagnostics = %+v, want %+v", diags, want)
		}
	})

	t.Run("off-day and off-grid meetings are excluded", func(t *testing.T) {
		sections := []Section{
			testSection(1, "MAT101", meeting(10, 1, 6, "09:00")), // Saturday
			testSection(2, "SCI201", meeting(20, 2, 2, "09:30")), // off the hour
			testSection(3, "HIS301", meeting(30, 3, 2, "17:00")), // after hours
		}
		_, diags := Bucket(sections)

		if len(diags) != 3 {
			t.Fatalf("diagnostics len = %d, want 3", len(diags))
		}
		for _, d := range diags {
			if d.Reason != ReasonInvalidTimeSlot {
				t.Errorf("diagnostic reason = %s, want %s", d.Reason, ReasonInvalidTimeSlot)
			}
		}
	})

	t.Run("shared cell preserves input order", func(t *testing.T) {
		sections := []Section{
			testSection(2, "SCI201", meeting(20, 2, 4, "14:00")),
			testSection(1, "MAT101", meeting(10, 1, 4, "14:00")),
		}
		grid, diags := Bucket(sections)

		if len(diags) != 0 {
			t.Fatalf("unexpected diagnostics: %+v", diags)
		}
		cell := grid.Sections(4, "14:00")
		if len(cell) != 2 {
			t.Fatalf("Sections(4, 14:00) len = %d, want 2", len(cell))
		}
		if cell[0].ID != 2 || cell[1].ID != 1 {
			t.Errorf("cell order = [%d %d], want [2 1]", cell[0].ID, cell[1].ID)
		}
	})

	t.Run("idempotent and non-mutating", func(t *testing.T) {
		sections := []Section{
			testSection(1, "MAT101", meeting(10, 1, 1, "09:00"), meeting(11, 1, 2, "12:00")),
			testSection(2, "SCI201", meeting(20, 2, 1, "09:00")),
		}
		snapshot := make([]Section, len(sections))
		copy(snapshot, sections)

		grid1, diags1 := Bucket(sections)
		grid2, diags2 := Bucket(sections)

		if !reflect.DeepEqual(grid1, grid2) {
			t.Error("Bucket() grids differ between identical calls")
		}
		if !reflect.DeepEqual(diags1, diags2) {
			t.Error("Bucket() diagnostics differ between identical calls")
		}
		if !reflect.DeepEqual(sections, snapshot) {
			t.Error("Bucket() mutated its input")
		}
	})
}

func Test_IsCanonicalSlot(t *testing.T) {
	tests := []struct {
		slot string
		want bool
	}{
		{"09:00", true},
		{"11:00", true},
		{"13:00", true},
		{"16:00", true},
		{"12:00", false}, // lunch
		{"08:00", false},
		{"17:00", false},
		{"09:30", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsCanonicalSlot(tt.slot); got != tt.want {
			t.Errorf("IsCanonicalSlot(%q) = %v, want %v", tt.slot, got, tt.want)
		}
	}
}
