package testutil

import (
	"github.com/maplewood/scheduler/core"
	"github.com/maplewood/scheduler/core/schedule"
)

// NewMeeting builds a weekly meeting fixture.
func NewMeeting(id, sectionID, day int, start string) schedule.Meeting {
	return schedule.Meeting{
		ID:              id,
		SectionID:       sectionID,
		DayOfWeek:       day,
		StartTime:       start,
		DurationMinutes: 60,
	}
}

// NewSection builds a section fixture with sane defaults.
func NewSection(id int, code string, capacity, enrolled int, meetings ...schedule.Meeting) schedule.Section {
	return schedule.Section{
		ID:            id,
		CourseCode:    code,
		CourseName:    code + " course",
		SectionNumber: 1,
		TeacherName:   "Jane Doe",
		RoomName:      "Room-101",
		Credits:       1,
		Capacity:      capacity,
		EnrolledCount: enrolled,
		Meetings:      meetings,
	}
}

type nopLogger struct{}

var _ core.Logger = (*nopLogger)(nil)

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// NopLogger returns a logger that drops everything.
func NopLogger() core.Logger { return nopLogger{} }
