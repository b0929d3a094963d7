package testutil

import (
	"context"

	"github.com/maplewood/scheduler/core/schedule"
	"github.com/maplewood/scheduler/core/student"
)

// FakeAPI is a scripted stand-in for the scheduler service. Unset hooks
// return zero values.
type FakeAPI struct {
	SemestersFn         func(ctx context.Context) ([]schedule.Semester, error)
	MasterScheduleFn    func(ctx context.Context, semesterID int) ([]schedule.Section, error)
	GenerateFn          func(ctx context.Context, semesterID int) ([]schedule.Section, error)
	StudentScheduleFn   func(ctx context.Context, studentID, semesterID int) (student.Schedule, error)
	AvailableSectionsFn func(ctx context.Context, studentID, semesterID int) ([]student.CandidateSection, error)
	ProgressFn          func(ctx context.Context, studentID int) (student.Progress, error)
	EnrollFn            func(ctx context.Context, studentID, sectionID int) error
}

var (
	_ schedule.API = (*FakeAPI)(nil)
	_ student.API  = (*FakeAPI)(nil)
)

func (f *FakeAPI) Semesters(ctx context.Context) ([]schedule.Semester, error) {
	if f.SemestersFn == nil {
		return nil, nil
	}
	return f.SemestersFn(ctx)
}

func (f *FakeAPI) MasterSchedule(ctx context.Context, semesterID int) ([]schedule.Section, error) {
	if f.MasterScheduleFn == nil {
		return nil, nil
	}
	return f.MasterScheduleFn(ctx, semesterID)
}

func (f *FakeAPI) GenerateMasterSchedule(ctx context.Context, semesterID int) ([]schedule.Section, error) {
	if f.GenerateFn == nil {
		return nil, nil
	}
	return f.GenerateFn(ctx, semesterID)
}

func (f *FakeAPI) StudentSchedule(ctx context.Context, studentID, semesterID int) (student.Schedule, error) {
	if f.StudentScheduleFn == nil {
		return student.Schedule{}, nil
	}
	return f.StudentScheduleFn(ctx, studentID, semesterID)
}

func (f *FakeAPI) AvailableSections(ctx context.Context, studentID, semesterID int) ([]student.CandidateSection, error) {
	if f.AvailableSectionsFn == nil {
		return nil, nil
	}
	return f.AvailableSectionsFn(ctx, studentID, semesterID)
}

func (f *FakeAPI) Progress(ctx context.Context, studentID int) (student.Progress, error) {
	if f.ProgressFn == nil {
		return student.Progress{}, nil
	}
	return f.ProgressFn(ctx, studentID)
}

func (f *FakeAPI) Enroll(ctx context.Context, studentID, sectionID int) error {
	if f.EnrollFn == nil {
		return nil
	}
	return f.EnrollFn(ctx, studentID, sectionID)
}
