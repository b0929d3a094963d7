package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/maplewood/scheduler/core/schedule"
	"github.com/maplewood/scheduler/core/student"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	scheduleSvc *schedule.Service
	studentSvc  *student.Service
	planner     *student.Planner
	out         io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  grid -semester ID                 - print the semester's master schedule grid")
	fmt.Fprintln(cli.out, "  plan -student ID -semester ID     - print the student's annotated planning view")
	fmt.Fprintln(cli.out, "  progress -student ID              - print the student's graduation progress")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	gridCmd := flag.NewFlagSet("grid", flag.ExitOnError)
	gridSemester := gridCmd.Int("semester", 0, "The semester ID.")

	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	planStudent := planCmd.Int("student", 0, "The student ID.")
	planSemester := planCmd.Int("semester", 0, "The semester ID.")

	progressCmd := flag.NewFlagSet("progress", flag.ExitOnError)
	progressStudent := progressCmd.Int("student", 0, "The student ID.")

	switch args[1] {
	case "grid":
		if err := gridCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *gridSemester <= 0 {
			gridCmd.Usage()
			return errHelp
		}
		return cli.grid(*gridSemester)
	case "plan":
		if err := planCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *planStudent <= 0 || *planSemester <= 0 {
			planCmd.Usage()
			return errHelp
		}
		return cli.plan(*planStudent, *planSemester)
	case "progress":
		if err := progressCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *progressStudent <= 0 {
			progressCmd.Usage()
			return errHelp
		}
		return cli.progress(*progressStudent)
	default:
		cli.printUsage()
		return errHelp
	}
}
