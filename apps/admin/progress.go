package main

import (
	"context"
	"fmt"
)

// progress prints the student's reconciled graduation progress.
func (cli *commandLine) progress(studentID int) error {
	prog, err := cli.studentSvc.Progress(context.Background(), studentID)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "%s %s - Grade %d\n", prog.FirstName, prog.LastName, prog.GradeLevel)
	fmt.Fprintf(cli.out, "Credits: %.1f earned / %.1f required (%.1f remaining)\n",
		prog.CreditsEarned, prog.CreditsRequired, prog.CreditsRemaining)
	fmt.Fprintf(cli.out, "GPA: %.2f\n", prog.GPA)
	fmt.Fprintf(cli.out, "Status: %s (expected graduation %d)\n", prog.GraduationStatus, prog.ExpectedGraduationYear)
	return nil
}
