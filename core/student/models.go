package student

import (
	"github.com/volatiletech/null/v8"

	"github.com/maplewood/scheduler/core"
	"github.com/maplewood/scheduler/core/schedule"
)

// Reason identifies why enrollment is (not) permitted. The set is part of the
// API contract; clients assert on the code, never on the message text.
type Reason string

const (
	ReasonOK                Reason = "OK"
	ReasonSectionFull       Reason = "SECTION_FULL"
	ReasonTimeConflict      Reason = "TIME_CONFLICT"
	ReasonPrerequisiteUnmet Reason = "PREREQUISITE_UNMET"
	ReasonGradeLevelUnmet   Reason = "GRADE_LEVEL_UNMET"
	ReasonAlreadyEnrolled   Reason = "ALREADY_ENROLLED"
)

// statusMessages is the fixed, deterministic message per reason code.
var statusMessages = map[Reason]string{
	ReasonOK:                "Available for enrollment",
	ReasonSectionFull:       "Section is full",
	ReasonTimeConflict:      "Time conflict with your current schedule",
	ReasonPrerequisiteUnmet: "Prerequisite not satisfied",
	ReasonGradeLevelUnmet:   "Not available for your grade level",
	ReasonAlreadyEnrolled:   "Already enrolled in this section",
}

// StatusMessage returns the fixed human-readable text for a reason code.
func StatusMessage(reason Reason) string {
	return statusMessages[reason]
}

// Verdict is the outcome of one (student, candidate section) eligibility
// check. Never persisted; always recomputed.
type Verdict struct {
	CanEnroll     bool   `json:"canEnroll"`
	Reason        Reason `json:"reason"`
	StatusMessage string `json:"statusMessage"`
}

func newVerdict(reason Reason) Verdict {
	return Verdict{
		CanEnroll:     reason == ReasonOK,
		Reason:        reason,
		StatusMessage: StatusMessage(reason),
	}
}

// Context carries the student facts the evaluator needs. It is always passed
// in explicitly; the evaluator holds no ambient state.
type Context struct {
	StudentID        int
	GradeLevel       int
	CompletedCourses []string // passed course codes
}

// HasCompleted reports whether the student passed the course. Codes are
// compared case-insensitively since they come from more than one system.
func (c Context) HasCompleted(courseCode string) bool {
	target := core.CleanString(courseCode, true)
	for _, code := range c.CompletedCourses {
		if core.CleanString(code, true) == target {
			return true
		}
	}
	return false
}

// CandidateSection is a section offered for enrollment, annotated with
// eligibility info. The canEnroll/enrollmentStatus/statusMessage fields
// arriving from the scheduler service are advisory; the planning service
// recomputes them locally before anything renders them.
type CandidateSection struct {
	schedule.Section
	HoursPerWeek       int         `json:"hoursPerWeek"`
	CanEnroll          bool        `json:"canEnroll"`
	EnrollmentStatus   string      `json:"enrollmentStatus"`
	StatusMessage      string      `json:"statusMessage"`
	PrerequisiteCourse null.String `json:"prerequisiteCourse"`
	MinGradeLevel      int         `json:"gradeLevel"`
	SpecializationName string      `json:"specializationName"`
	IsCore             bool        `json:"isCore"`
}

// GraduationStatus classifies a student's graduation pace.
type GraduationStatus string

const (
	StatusOnTrack GraduationStatus = "ON_TRACK"
	StatusAtRisk  GraduationStatus = "AT_RISK"
	StatusBehind  GraduationStatus = "BEHIND"
)

// Progress is a student's graduation-readiness snapshot. creditsRemaining,
// onTrackToGraduate and graduationStatus are recomputed locally from the
// primitive fields (see Tracker.Reconcile); the server-supplied values are
// only used for drift detection.
type Progress struct {
	StudentID              int              `json:"studentId"`
	FirstName              string           `json:"firstName"`
	LastName               string           `json:"lastName"`
	GradeLevel             int              `json:"gradeLevel"`
	CoursesTaken           int              `json:"coursesTaken"`
	CoursesPassed          int              `json:"coursesPassed"`
	CreditsEarned          float64          `json:"creditsEarned"`
	GPA                    float64          `json:"gpa"`
	CreditsRequired        float64          `json:"creditsRequired"`
	CreditsRemaining       float64          `json:"creditsRemaining"`
	ExpectedGraduationYear int              `json:"expectedGraduationYear"`
	OnTrackToGraduate      bool             `json:"onTrackToGraduate"`
	GraduationStatus       GraduationStatus `json:"graduationStatus"`
	CompletedCourses       []string         `json:"completedCourses"`
}

// Schedule is a student's enrolled sections for one semester.
type Schedule struct {
	StudentID        int                `json:"studentId"`
	StudentName      string             `json:"studentName"`
	SemesterID       int                `json:"semesterId"`
	SemesterName     string             `json:"semesterName"`
	EnrolledSections []schedule.Section `json:"enrolledSections"`
	Progress         Progress           `json:"progress"`
}

// Discrepancy records a disagreement between a server-supplied derived field
// and the locally computed value. Local values win; discrepancies are logged,
// never fatal.
type Discrepancy struct {
	Field    string      `json:"field"`
	Server   interface{} `json:"server"`
	Computed interface{} `json:"computed"`
}
