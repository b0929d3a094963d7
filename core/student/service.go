package student

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/maplewood/scheduler/core"
)

// ErrSectionUnknown means the requested section is not among the semester's
// offered sections.
var ErrSectionUnknown = errors.New("section not offered this semester")

// RejectionError is an authoritative enrollment rejection from the scheduler
// service. Its message is user-visible.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

type (
	// API is the slice of the scheduler service the planning workflow needs.
	API interface {
		StudentSchedule(ctx context.Context, studentID, semesterID int) (Schedule, error)
		AvailableSections(ctx context.Context, studentID, semesterID int) ([]CandidateSection, error)
		Progress(ctx context.Context, studentID int) (Progress, error)
		Enroll(ctx context.Context, studentID, sectionID int) error
	}

	Service struct {
		api     API
		tracker *Tracker
		logger  core.Logger
	}
)

func NewService(api API, tracker *Tracker, logger core.Logger) *Service {
	return &Service{api: api, tracker: tracker, logger: logger}
}

// Selection identifies whose plan for which semester is being viewed.
// In-flight fetches are keyed by it so superseded responses can be discarded.
type Selection struct {
	StudentID  int
	SemesterID int
}

// Plan is the annotated planning view for one selection: the student's
// current schedule plus every offered section with a locally computed
// enrollment verdict.
type Plan struct {
	Selection  Selection
	Schedule   Schedule
	Candidates []CandidateSection
}

// Plan fetches the student's schedule and the semester's offered sections
// concurrently, joins both, then recomputes every derived field locally:
// progress classification and per-candidate enrollment verdicts. Values the
// server sent that disagree with the local computation are logged and
// overridden.
func (svc *Service) Plan(ctx context.Context, sel Selection) (Plan, error) {
	var (
		sched    Schedule
		cands    []CandidateSection
		schedErr error
		candErr  error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		sched, schedErr = svc.api.StudentSchedule(ctx, sel.StudentID, sel.SemesterID)
	}()
	go func() {
		defer wg.Done()
		cands, candErr = svc.api.AvailableSections(ctx, sel.StudentID, sel.SemesterID)
	}()
	wg.Wait()

	if schedErr != nil {
		return Plan{}, errors.Wrap(schedErr, "fetching student schedule")
	}
	if candErr != nil {
		return Plan{}, errors.Wrap(candErr, "fetching available sections")
	}

	sched.Progress = svc.reconcileProgress(sel.StudentID, sched.Progress)

	studentCtx := Context{
		StudentID:        sel.StudentID,
		GradeLevel:       sched.Progress.GradeLevel,
		CompletedCourses: sched.Progress.CompletedCourses,
	}
	for i, cand := range cands {
		verdict := Evaluate(studentCtx, cand, sched.EnrolledSections)
		if cand.CanEnroll != verdict.CanEnroll {
			svc.logger.Warn("server eligibility flag disagrees with local verdict", map[string]interface{}{
				"studentId": sel.StudentID,
				"sectionId": cand.ID,
				"server":    cand.CanEnroll,
				"computed":  verdict.CanEnroll,
				"reason":    string(verdict.Reason),
			})
		}
		cands[i].CanEnroll = verdict.CanEnroll
		cands[i].EnrollmentStatus = string(verdict.Reason)
		cands[i].StatusMessage = verdict.StatusMessage
	}

	return Plan{Selection: sel, Schedule: sched, Candidates: cands}, nil
}

// Progress returns the student's reconciled graduation progress.
func (svc *Service) Progress(ctx context.Context, studentID int) (Progress, error) {
	prog, err := svc.api.Progress(ctx, studentID)
	if err != nil {
		return Progress{}, errors.Wrap(err, "fetching student progress")
	}
	return svc.reconcileProgress(studentID, prog), nil
}

func (svc *Service) reconcileProgress(studentID int, p Progress) Progress {
	reconciled, diags := svc.tracker.Reconcile(p)
	for _, d := range diags {
		svc.logger.Warn("server progress field disagrees with local computation", map[string]interface{}{
			"studentId": studentID,
			"field":     d.Field,
			"server":    d.Server,
			"computed":  d.Computed,
		})
	}
	return reconciled
}

// Enroll re-runs the eligibility checks against a fresh snapshot immediately
// before committing, then submits to the scheduler service. The local verdict
// is advisory only: the server owns the authoritative capacity decrement, and
// its rejection surfaces as a *RejectionError.
func (svc *Service) Enroll(ctx context.Context, sel Selection, sectionID int) (Verdict, error) {
	plan, err := svc.Plan(ctx, sel)
	if err != nil {
		return Verdict{}, err
	}

	var candidate CandidateSection
	found := false
	for _, cand := range plan.Candidates {
		if cand.ID == sectionID {
			candidate = cand
			found = true
			break
		}
	}
	if !found {
		return Verdict{}, ErrSectionUnknown
	}

	studentCtx := Context{
		StudentID:        sel.StudentID,
		GradeLevel:       plan.Schedule.Progress.GradeLevel,
		CompletedCourses: plan.Schedule.Progress.CompletedCourses,
	}
	verdict := Evaluate(studentCtx, candidate, plan.Schedule.EnrolledSections)
	if !verdict.CanEnroll {
		return verdict, nil
	}

	if err := svc.api.Enroll(ctx, sel.StudentID, sectionID); err != nil {
		return Verdict{}, errors.Wrap(err, "submitting enrollment")
	}
	return verdict, nil
}
