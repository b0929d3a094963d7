package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/maplewood/scheduler/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, svc *student.Service, validate *validator.Validate) {
	api := studentApi{svc: svc, validate: validate}

	sg := g.Group("/students/:id")
	sg.GET("/progress", api.progress)
	sg.GET("/schedule", api.schedule)
	sg.GET("/available-sections", api.availableSections)
	sg.POST("/enroll", api.enroll)
}

// Handlers

func (api *studentApi) progress(ctx echo.Context) error {
	var params StudentParams
	if err := ctx.Bind(&params); err != nil {
		return errors.Wrap(err, "binding to StudentParams")
	}
	if err := api.validate.StructPartial(params, "ID"); err != nil {
		return err
	}

	prog, err := api.svc.Progress(ctx.Request().Context(), params.ID)
	if err != nil {
		return errors.Wrap(err, "fetching student progress")
	}
	return ctx.JSON(http.StatusOK, prog)
}

func (api *studentApi) schedule(ctx echo.Context) error {
	sel, err := api.bindSelection(ctx)
	if err != nil {
		return err
	}

	plan, err := api.svc.Plan(ctx.Request().Context(), sel)
	if err != nil {
		return errors.Wrap(err, "loading student plan")
	}
	return ctx.JSON(http.StatusOK, newScheduleResponse(plan.Schedule))
}

func (api *studentApi) availableSections(ctx echo.Context) error {
	sel, err := api.bindSelection(ctx)
	if err != nil {
		return err
	}

	plan, err := api.svc.Plan(ctx.Request().Context(), sel)
	if err != nil {
		return errors.Wrap(err, "loading student plan")
	}
	return ctx.JSON(http.StatusOK, newCandidateResponses(plan.Candidates))
}

func (api *studentApi) enroll(ctx echo.Context) error {
	var params EnrollParams
	if err := ctx.Bind(&params); err != nil {
		return errors.Wrap(err, "binding to EnrollParams")
	}
	if err := api.validate.Struct(params); err != nil {
		return err
	}

	sel := student.Selection{StudentID: params.ID, SemesterID: params.SemesterID}
	verdict, err := api.svc.Enroll(ctx.Request().Context(), sel, params.SectionID)
	if err != nil {
		var rejection *student.RejectionError
		if errors.As(err, &rejection) {
			// the scheduler service had the final word
			return ctx.JSON(http.StatusOK, EnrollResponse{Success: false, Message: rejection.Message})
		}
		return errors.Wrap(err, "enrolling student")
	}
	if !verdict.CanEnroll {
		return ctx.JSON(http.StatusOK, EnrollResponse{Success: false, Message: verdict.StatusMessage})
	}
	return ctx.JSON(http.StatusOK, EnrollResponse{Success: true, Message: "Successfully enrolled in section"})
}

func (api *studentApi) bindSelection(ctx echo.Context) (student.Selection, error) {
	var params StudentParams
	if err := ctx.Bind(&params); err != nil {
		return student.Selection{}, errors.Wrap(err, "binding to StudentParams")
	}
	if err := api.validate.Struct(params); err != nil {
		return student.Selection{}, err
	}
	return student.Selection{StudentID: params.ID, SemesterID: params.SemesterID}, nil
}

// Serialization

type (
	StudentParams struct {
		ID         int `param:"id" validate:"required,gt=0"`
		SemesterID int `query:"semesterId" validate:"required,gt=0"`
	}

	EnrollParams struct {
		ID         int `param:"id" validate:"required,gt=0"`
		SemesterID int `json:"semesterId" validate:"required,gt=0"`
		SectionID  int `json:"sectionId" validate:"required,gt=0"`
	}

	ScheduleResponse struct {
		StudentID        int               `json:"studentId"`
		StudentName      string            `json:"studentName"`
		SemesterID       int               `json:"semesterId"`
		SemesterName     string            `json:"semesterName"`
		EnrolledSections []SectionResponse `json:"enrolledSections"`
		Progress         student.Progress  `json:"progress"`
	}

	CandidateResponse struct {
		student.CandidateSection
		AvailableSpots int `json:"availableSpots"`
	}

	EnrollResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
)

func newScheduleResponse(sched student.Schedule) ScheduleResponse {
	return ScheduleResponse{
		StudentID:        sched.StudentID,
		StudentName:      sched.StudentName,
		SemesterID:       sched.SemesterID,
		SemesterName:     sched.SemesterName,
		EnrolledSections: newSectionResponses(sched.EnrolledSections),
		Progress:         sched.Progress,
	}
}

func newCandidateResponses(cands []student.CandidateSection) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(cands))
	for _, cand := range cands {
		out = append(out, CandidateResponse{CandidateSection: cand, AvailableSpots: cand.AvailableSpots()})
	}
	return out
}
