package schedule

// School hours run 09:00-17:00 on Mon-Fri; the 12:00-13:00 lunch break is
// never schedulable.
const (
	MinDay = 1 // Monday
	MaxDay = 5 // Friday
)

// Slots is the canonical ordered sequence of weekly start times.
var Slots = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}

var slotSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Slots))
	for _, s := range Slots {
		set[s] = struct{}{}
	}
	return set
}()

// Days returns the canonical school days, Monday (1) through Friday (5).
func Days() []int {
	days := make([]int, 0, MaxDay)
	for d := MinDay; d <= MaxDay; d++ {
		days = append(days, d)
	}
	return days
}

// IsCanonicalSlot reports whether start is one of the allowed weekly start times.
func IsCanonicalSlot(start string) bool {
	_, ok := slotSet[start]
	return ok
}

// Meeting is one recurring weekly time placement of a Section. Immutable once created.
type Meeting struct {
	ID              int    `json:"id"`
	SectionID       int    `json:"sectionId"`
	DayOfWeek       int    `json:"dayOfWeek"` // 1 = Monday .. 5 = Friday
	StartTime       string `json:"startTime"` // "HH:MM"
	DurationMinutes int    `json:"durationMinutes"`
}

// Section is one offered instance of a course with a fixed teacher, room and
// weekly meeting pattern.
//
// availableSpots is always derived via AvailableSpots(); it is deliberately
// not a struct field so the count cannot drift from capacity/enrolledCount.
type Section struct {
	ID            int       `json:"id"`
	CourseCode    string    `json:"courseCode"`
	CourseName    string    `json:"courseName"`
	SectionNumber int       `json:"sectionNumber"`
	TeacherName   string    `json:"teacherName"`
	RoomName      string    `json:"roomName"`
	Credits       float64   `json:"credits"`
	Capacity      int       `json:"capacity"`
	EnrolledCount int       `json:"enrolledCount"`
	Meetings      []Meeting `json:"meetings"`
}

// AvailableSpots returns the remaining seats, never negative.
func (s Section) AvailableSpots() int {
	if left := s.Capacity - s.EnrolledCount; left > 0 {
		return left
	}
	return 0
}

type Semester struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	OrderInYear int    `json:"orderInYear"`
	IsActive    bool   `json:"isActive"`
}

// DiagnosticReason classifies a data-quality finding. None of these are fatal.
type DiagnosticReason string

const (
	ReasonInvalidTimeSlot DiagnosticReason = "INVALID_TIME_SLOT"
)

// Diagnostic reports a Meeting that could not be placed on the grid.
type Diagnostic struct {
	SectionID int              `json:"sectionId"`
	MeetingID int              `json:"meetingId"`
	Reason    DiagnosticReason `json:"reason"`
}
