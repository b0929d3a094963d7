package student

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ErrStaleSelection means a load finished after its selection was superseded.
// Callers discard the result silently; it is never user-visible.
var ErrStaleSelection = errors.New("selection superseded")

// Planner serializes plan loads against a changing selection. Each Select
// bumps a token; a Load that joins after the token moved on returns
// ErrStaleSelection instead of its (now stale) result, so a response for a
// previous student/semester can never overwrite the current view.
type Planner struct {
	svc *Service

	mutex sync.Mutex
	seq   uint64
	sel   Selection
}

func NewPlanner(svc *Service) *Planner {
	return &Planner{svc: svc}
}

// Select makes sel the current selection and supersedes in-flight loads.
func (p *Planner) Select(sel Selection) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.seq++
	p.sel = sel
}

// Current returns the selection loads are keyed by.
func (p *Planner) Current() Selection {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.sel
}

// Load fetches the plan for the current selection. If the selection changed
// while the fetch was in flight, the result is dropped and ErrStaleSelection
// returned.
func (p *Planner) Load(ctx context.Context) (Plan, error) {
	p.mutex.Lock()
	seq, sel := p.seq, p.sel
	p.mutex.Unlock()

	plan, err := p.svc.Plan(ctx, sel)
	if err != nil {
		return Plan{}, err
	}

	p.mutex.Lock()
	stale := p.seq != seq
	p.mutex.Unlock()
	if stale {
		return Plan{}, ErrStaleSelection
	}
	return plan, nil
}
