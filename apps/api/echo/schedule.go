package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/maplewood/scheduler/core/schedule"
)

type scheduleApi struct {
	svc      *schedule.Service
	validate *validator.Validate
}

func registerScheduleAPI(g *echo.Group, svc *schedule.Service, validate *validator.Validate) {
	api := scheduleApi{svc: svc, validate: validate}

	g.GET("/semesters", api.semesters)

	mg := g.Group("/master-schedule")
	mg.POST("/generate", api.generate)
	mg.GET("/semester/:id", api.semesterSchedule)
	mg.GET("/semester/:id/grid", api.semesterGrid)
}

// Handlers

func (api *scheduleApi) semesters(ctx echo.Context) error {
	semesters, err := api.svc.Semesters(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching semesters")
	}
	if semesters == nil {
		semesters = []schedule.Semester{}
	}
	return ctx.JSON(http.StatusOK, semesters)
}

func (api *scheduleApi) generate(ctx echo.Context) error {
	var data GenerateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerateRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cat, err := api.svc.Generate(ctx.Request().Context(), data.SemesterID)
	if err != nil {
		return errors.Wrap(err, "generating master schedule")
	}
	return ctx.JSON(http.StatusOK, newEntriesResponse(cat.Sections()))
}

func (api *scheduleApi) semesterSchedule(ctx echo.Context) error {
	var params SemesterParams
	if err := ctx.Bind(&params); err != nil {
		return errors.Wrap(err, "binding to SemesterParams")
	}
	if err := api.validate.Struct(params); err != nil {
		return err
	}

	cat, err := api.svc.Load(ctx.Request().Context(), params.ID)
	if err != nil {
		return errors.Wrap(err, "loading master schedule")
	}
	return ctx.JSON(http.StatusOK, newEntriesResponse(cat.Sections()))
}

func (api *scheduleApi) semesterGrid(ctx echo.Context) error {
	var params GridParams
	if err := ctx.Bind(&params); err != nil {
		return errors.Wrap(err, "binding to GridParams")
	}
	if err := api.validate.Struct(params); err != nil {
		return err
	}

	cat, err := api.svc.Load(ctx.Request().Context(), params.ID)
	if err != nil {
		return errors.Wrap(err, "loading master schedule")
	}
	return ctx.JSON(http.StatusOK, newGridResponse(cat, params))
}

// Serialization

type (
	GenerateRequest struct {
		SemesterID int `json:"semesterId" validate:"required,gt=0"`
	}

	SemesterParams struct {
		ID int `param:"id" validate:"required,gt=0"`
	}

	GridParams struct {
		ID   int    `param:"id" validate:"required,gt=0"`
		Day  int    `query:"day" validate:"omitempty,min=1,max=5"`
		Slot string `query:"slot" validate:"omitempty,timeslot"`
	}

	// SectionResponse re-serves a Section with its derived seat count; the
	// count is always computed at render time, never stored.
	SectionResponse struct {
		schedule.Section
		AvailableSpots int `json:"availableSpots"`
	}

	EntriesResponse struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Data    EntriesData `json:"data"`
	}

	EntriesData struct {
		Entries []SectionResponse `json:"entries"`
	}

	GridCell struct {
		Day      int               `json:"day"`
		Slot     string            `json:"slot"`
		Sections []SectionResponse `json:"sections"`
	}

	GridResponse struct {
		Cells       []GridCell            `json:"cells"`
		Diagnostics []schedule.Diagnostic `json:"diagnostics"`
	}
)

func (gr *GenerateRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(gr)
}

func newSectionResponse(sec schedule.Section) SectionResponse {
	return SectionResponse{Section: sec, AvailableSpots: sec.AvailableSpots()}
}

func newSectionResponses(secs []schedule.Section) []SectionResponse {
	out := make([]SectionResponse, 0, len(secs))
	for _, sec := range secs {
		out = append(out, newSectionResponse(sec))
	}
	return out
}

func newEntriesResponse(secs []schedule.Section) EntriesResponse {
	return EntriesResponse{
		Success: true,
		Data:    EntriesData{Entries: newSectionResponses(secs)},
	}
}

// newGridResponse walks the canonical slot x day sequence in order so all
// grid surfaces render cells identically.
func newGridResponse(cat *schedule.Catalog, params GridParams) GridResponse {
	grid := cat.Grid()

	cells := make([]GridCell, 0, len(schedule.Slots)*schedule.MaxDay)
	for _, slot := range schedule.Slots {
		if params.Slot != "" && params.Slot != slot {
			continue
		}
		for _, day := range schedule.Days() {
			if params.Day != 0 && params.Day != day {
				continue
			}
			cells = append(cells, GridCell{
				Day:      day,
				Slot:     slot,
				Sections: newSectionResponses(grid.Sections(day, slot)),
			})
		}
	}

	diags := cat.Diagnostics()
	if diags == nil {
		diags = []schedule.Diagnostic{}
	}
	return GridResponse{Cells: cells, Diagnostics: diags}
}
