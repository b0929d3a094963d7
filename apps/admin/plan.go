package main

import (
	"context"
	"fmt"

	"github.com/maplewood/scheduler/core/student"
)

// plan prints the student's planning view: enrolled sections plus every
// offered section with its locally computed enrollment verdict.
func (cli *commandLine) plan(studentID, semesterID int) error {
	cli.planner.Select(student.Selection{StudentID: studentID, SemesterID: semesterID})
	plan, err := cli.planner.Load(context.Background())
	if err != nil {
		if err == student.ErrStaleSelection {
			return nil // superseded; nothing to print
		}
		return err
	}

	sched := plan.Schedule
	fmt.Fprintf(cli.out, "%s - %s\n", sched.StudentName, sched.SemesterName)
	fmt.Fprintln(cli.out, "Enrolled:")
	for _, sec := range sched.EnrolledSections {
		fmt.Fprintf(cli.out, "  %s-%d %s (%d/%d)\n",
			sec.CourseCode, sec.SectionNumber, sec.CourseName, sec.EnrolledCount, sec.Capacity)
	}
	fmt.Fprintln(cli.out, "Available:")
	for _, cand := range plan.Candidates {
		fmt.Fprintf(cli.out, "  %s-%d %s: %s (%s)\n",
			cand.CourseCode, cand.SectionNumber, cand.CourseName, cand.EnrollmentStatus, cand.StatusMessage)
	}
	return nil
}
