package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/maplewood/scheduler/core/schedule"
)

// grid prints the semester's master schedule as a slot x day table.
func (cli *commandLine) grid(semesterID int) error {
	ctx := context.Background()
	cat, err := cli.scheduleSvc.Load(ctx, semesterID)
	if err != nil {
		return err
	}
	grid := cat.Grid()

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "\tMon\tTue\tWed\tThu\tFri\n")
	for _, slot := range schedule.Slots {
		fmt.Fprint(w, slot)
		for _, day := range schedule.Days() {
			fmt.Fprintf(w, "\t%s", cellLabel(grid.Sections(day, slot)))
		}
		fmt.Fprint(w, "\n")
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, d := range cat.Diagnostics() {
		fmt.Fprintf(cli.out, "invalid time slot: section %d meeting %d\n", d.SectionID, d.MeetingID)
	}
	return nil
}

func cellLabel(sections []schedule.Section) string {
	if len(sections) == 0 {
		return "-"
	}
	label := ""
	for i, sec := range sections {
		if i > 0 {
			label += ","
		}
		label += fmt.Sprintf("%s-%d", sec.CourseCode, sec.SectionNumber)
	}
	return label
}
