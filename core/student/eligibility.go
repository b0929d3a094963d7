package student

import "github.com/maplewood/scheduler/core/schedule"

// Evaluate runs the eligibility checks for one (student, candidate) pair
// against the student's current schedule.
//
// Checks run in a fixed priority order and the first failure wins, so exactly
// one reason surfaces when several apply:
//
//	ALREADY_ENROLLED > SECTION_FULL > TIME_CONFLICT >
//	GRADE_LEVEL_UNMET > PREREQUISITE_UNMET > OK
//
// The ordering is a contract; reordering it changes which reason users see.
// Evaluate is a pure function and never fails: absence of eligibility is a
// value, not an error.
func Evaluate(student Context, candidate CandidateSection, currentSchedule []schedule.Section) Verdict {
	for _, sec := range currentSchedule {
		if sec.ID == candidate.ID {
			return newVerdict(ReasonAlreadyEnrolled)
		}
	}
	if schedule.CapacityLeft(candidate.Section) <= 0 {
		return newVerdict(ReasonSectionFull)
	}
	if schedule.HasConflict(currentSchedule, candidate.Section) {
		return newVerdict(ReasonTimeConflict)
	}
	if student.GradeLevel < candidate.MinGradeLevel {
		return newVerdict(ReasonGradeLevelUnmet)
	}
	if candidate.PrerequisiteCourse.Valid && !student.HasCompleted(candidate.PrerequisiteCourse.String) {
		return newVerdict(ReasonPrerequisiteUnmet)
	}
	return newVerdict(ReasonOK)
}
