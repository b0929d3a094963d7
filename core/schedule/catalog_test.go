package schedule

import "testing"

func Test_HasConflict(t *testing.T) {
	mat := testSection(1, "MAT101", meeting(10, 1, 1, "09:00"), meeting(11, 1, 3, "14:00"))
	sci := testSection(2, "SCI201", meeting(20, 2, 1, "09:00"))
	his := testSection(3, "HIS301", meeting(30, 3, 1, "10:00"))
	art := testSection(4, "ART110", meeting(40, 4, 2, "09:00"))

	halfPast := testSection(5, "MUS120", Meeting{ID: 50, SectionID: 5, DayOfWeek: 1, StartTime: "09:30", DurationMinutes: 90})

	tests := []struct {
		name      string
		existing  []Section
		candidate Section
		want      bool
	}{
		{name: "same day and start", existing: []Section{mat}, candidate: sci, want: true},
		{name: "same day and start, swapped", existing: []Section{sci}, candidate: mat, want: true},
		{name: "same day, different slot", existing: []Section{mat}, candidate: his, want: false},
		{name: "same slot, different day", existing: []Section{mat}, candidate: art, want: false},
		{name: "overlapping duration but different start", existing: []Section{mat}, candidate: halfPast, want: false},
		{name: "empty schedule", existing: nil, candidate: mat, want: false},
		{name: "conflict on second meeting", existing: []Section{art, his}, candidate: testSection(6, "GEO210", meeting(60, 6, 5, "13:00"), meeting(61, 6, 1, "10:00")), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.existing, tt.candidate); got != tt.want {
				t.Errorf("HasConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_CapacityLeft(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		enrolled int
		want     int
	}{
		{name: "spots left", capacity: 30, enrolled: 12, want: 18},
		{name: "full", capacity: 30, enrolled: 30, want: 0},
		{name: "over-enrolled never goes negative", capacity: 30, enrolled: 33, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := Section{Capacity: tt.capacity, EnrolledCount: tt.enrolled}
			if got := CapacityLeft(sec); got != tt.want {
				t.Errorf("CapacityLeft() = %d, want %d", got, tt.want)
			}
		})
	}
}

func Test_Catalog_ReplaceAndGet(t *testing.T) {
	cat := NewCatalog(1)
	if _, err := cat.Get(1); err != ErrNotFound {
		t.Errorf("Get() on empty catalog error = %v, want %v", err, ErrNotFound)
	}

	cat.Replace([]Section{
		testSection(1, "MAT101", meeting(10, 1, 1, "09:00")),
		testSection(2, "SCI201", meeting(20, 2, 2, "10:00")),
	})

	sec, err := cat.Get(2)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if sec.CourseCode != "SCI201" {
		t.Errorf("Get(2).CourseCode = %s, want SCI201", sec.CourseCode)
	}

	// returned slice is a copy; mutating it must not leak into the catalog
	secs := cat.Sections()
	secs[0].CourseCode = "HACKED"
	sec, _ = cat.Get(1)
	if sec.CourseCode != "MAT101" {
		t.Errorf("Sections() aliases internal state: Get(1).CourseCode = %s", sec.CourseCode)
	}
}

func Test_Catalog_RecordEnrollment(t *testing.T) {
	newCat := func() *Catalog {
		cat := NewCatalog(1)
		full := testSection(1, "MAT101", meeting(10, 1, 1, "09:00"))
		full.Capacity, full.EnrolledCount = 25, 25
		open := testSection(2, "SCI201", meeting(20, 2, 2, "10:00"))
		open.Capacity, open.EnrolledCount = 30, 29
		cat.Replace([]Section{full, open})
		return cat
	}

	t.Run("unknown section", func(t *testing.T) {
		if _, err := newCat().RecordEnrollment(99, 1); err != ErrNotFound {
			t.Errorf("RecordEnrollment() error = %v, want %v", err, ErrNotFound)
		}
	})

	t.Run("full section rejects increment", func(t *testing.T) {
		if _, err := newCat().RecordEnrollment(1, 1); err != ErrSectionFull {
			t.Errorf("RecordEnrollment() error = %v, want %v", err, ErrSectionFull)
		}
	})

	t.Run("count never goes negative", func(t *testing.T) {
		cat := NewCatalog(1)
		empty := testSection(3, "HIS301", meeting(30, 3, 3, "11:00"))
		cat.Replace([]Section{empty})
		if _, err := cat.RecordEnrollment(3, -1); err != ErrNegativeCount {
			t.Errorf("RecordEnrollment() error = %v, want %v", err, ErrNegativeCount)
		}
	})

	t.Run("last seat fills the section", func(t *testing.T) {
		cat := newCat()
		sec, err := cat.RecordEnrollment(2, 1)
		if err != nil {
			t.Fatalf("RecordEnrollment() failed: %v", err)
		}
		if sec.EnrolledCount != 30 || sec.AvailableSpots() != 0 {
			t.Errorf("enrolled = %d, spots = %d; want 30, 0", sec.EnrolledCount, sec.AvailableSpots())
		}

		// the grid projection reflects the new count
		cell := cat.Grid().Sections(2, "10:00")
		if len(cell) != 1 || cell[0].EnrolledCount != 30 {
			t.Errorf("grid cell not refreshed after enrollment: %+v", cell)
		}

		if _, err = cat.RecordEnrollment(2, 1); err != ErrSectionFull {
			t.Errorf("RecordEnrollment() past capacity error = %v, want %v", err, ErrSectionFull)
		}
	})

	t.Run("drop frees a seat", func(t *testing.T) {
		cat := newCat()
		sec, err := cat.RecordEnrollment(1, -1)
		if err != nil {
			t.Fatalf("RecordEnrollment() failed: %v", err)
		}
		if sec.EnrolledCount != 24 || sec.AvailableSpots() != 1 {
			t.Errorf("enrolled = %d, spots = %d; want 24, 1", sec.EnrolledCount, sec.AvailableSpots())
		}
	})
}
