package main

import (
	"log"
	"os"

	"github.com/maplewood/scheduler/core"
	"github.com/maplewood/scheduler/core/schedule"
	"github.com/maplewood/scheduler/core/student"
	logsvc "github.com/maplewood/scheduler/services/logger"
	schedulersvc "github.com/maplewood/scheduler/services/scheduler"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up services
	client := schedulersvc.NewClient(conf)
	studentSvc := student.NewService(client, student.NewTracker(conf.Graduation), logger)

	// start CLI
	cli := commandLine{
		scheduleSvc: schedule.NewService(client, logger),
		studentSvc:  studentSvc,
		planner:     student.NewPlanner(studentSvc),
		out:         os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(err.Error(), err)
		}
		os.Exit(1)
	}
}
