package student_test

import (
	"context"
	"testing"
	"time"

	"github.com/maplewood/scheduler/core/student"
	"github.com/maplewood/scheduler/tests"
)

func Test_Planner_Load(t *testing.T) {
	fake := &testutil.FakeAPI{
		StudentScheduleFn: func(ctx context.Context, studentID, semesterID int) (student.Schedule, error) {
			return student.Schedule{StudentID: studentID, SemesterID: semesterID}, nil
		},
	}
	planner := student.NewPlanner(newTestService(fake))

	sel := student.Selection{StudentID: 7, SemesterID: 3}
	planner.Select(sel)
	if got := planner.Current(); got != sel {
		t.Errorf("Current() = %+v, want %+v", got, sel)
	}

	plan, err := planner.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if plan.Selection != sel {
		t.Errorf("Load() selection = %+v, want %+v", plan.Selection, sel)
	}
}

func Test_Planner_Load_staleSelection(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fake := &testutil.FakeAPI{
		StudentScheduleFn: func(ctx context.Context, studentID, semesterID int) (student.Schedule, error) {
			if studentID == 1 {
				close(started)
				<-release // hold the first fetch until the selection moves on
			}
			return student.Schedule{StudentID: studentID, SemesterID: semesterID}, nil
		},
	}
	planner := student.NewPlanner(newTestService(fake))
	planner.Select(student.Selection{StudentID: 1, SemesterID: 3})

	errc := make(chan error, 1)
	go func() {
		_, err := planner.Load(context.Background())
		errc <- err
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first load never started")
	}

	// the user switched students while the first load was in flight
	planner.Select(student.Selection{StudentID: 2, SemesterID: 3})
	close(release)

	if err := <-errc; err != student.ErrStaleSelection {
		t.Errorf("Load() error = %v, want %v", err, student.ErrStaleSelection)
	}

	// a load for the new selection succeeds
	plan, err := planner.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if plan.Schedule.StudentID != 2 {
		t.Errorf("Load() studentId = %d, want 2", plan.Schedule.StudentID)
	}
}
