package schedule

import (
	"context"
	"sync"

	"github.com/maplewood/scheduler/core"
)

type (
	// API is the slice of the scheduler service the master schedule needs.
	// The service is authoritative for generation and persistence; this
	// module only consumes its records.
	API interface {
		Semesters(ctx context.Context) ([]Semester, error)
		MasterSchedule(ctx context.Context, semesterID int) ([]Section, error)
		GenerateMasterSchedule(ctx context.Context, semesterID int) ([]Section, error)
	}

	Service struct {
		api    API
		logger core.Logger

		mutex    sync.Mutex
		catalogs map[int]*Catalog // semester ID -> catalog
	}
)

func NewService(api API, logger core.Logger) *Service {
	return &Service{
		api:      api,
		logger:   logger,
		catalogs: make(map[int]*Catalog),
	}
}

func (svc *Service) Semesters(ctx context.Context) ([]Semester, error) {
	return svc.api.Semesters(ctx)
}

// catalog returns the semester's catalog, creating it on first use.
func (svc *Service) catalog(semesterID int) *Catalog {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()
	cat, ok := svc.catalogs[semesterID]
	if !ok {
		cat = NewCatalog(semesterID)
		svc.catalogs[semesterID] = cat
	}
	return cat
}

// Load fetches the semester's master schedule and swaps it into the catalog.
// Meetings outside the canonical slots surface as catalog diagnostics.
func (svc *Service) Load(ctx context.Context, semesterID int) (*Catalog, error) {
	sections, err := svc.api.MasterSchedule(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	return svc.replace(semesterID, sections), nil
}

// Generate asks the scheduler service to regenerate the semester's schedule
// and swaps the result into the catalog.
func (svc *Service) Generate(ctx context.Context, semesterID int) (*Catalog, error) {
	sections, err := svc.api.GenerateMasterSchedule(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	return svc.replace(semesterID, sections), nil
}

func (svc *Service) replace(semesterID int, sections []Section) *Catalog {
	cat := svc.catalog(semesterID)
	cat.Replace(sections)
	for _, d := range cat.Diagnostics() {
		svc.logger.Warn("meeting excluded from grid", map[string]interface{}{
			"semesterId": semesterID,
			"sectionId":  d.SectionID,
			"meetingId":  d.MeetingID,
			"reason":     string(d.Reason),
		})
	}
	return cat
}
