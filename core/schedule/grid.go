package schedule

// Cell addresses one (day, slot) position on the weekly grid.
type Cell struct {
	Day  int    `json:"day"`
	Slot string `json:"slot"`
}

// Grid maps each occupied cell to the sections meeting there, in input order.
// It is a read-only projection; mutate the catalog, never the grid.
type Grid map[Cell][]Section

// Sections returns the cell's sections in the order they were bucketed.
func (g Grid) Sections(day int, slot string) []Section {
	return g[Cell{Day: day, Slot: slot}]
}

// Bucket places every meeting of every section into its (day, slot) cell.
// A meeting whose start time is not canonical (the lunch hour, or any
// off-grid time) is excluded and reported as a diagnostic instead of being
// silently dropped. Bucket never mutates its input; calling it twice on the
// same input yields identical output.
//
// This is the single bucketing implementation: every grid surface (master
// schedule, student schedule) must consume it rather than re-deriving the
// rules.
func Bucket(sections []Section) (Grid, []Diagnostic) {
	grid := make(Grid)
	var diags []Diagnostic

	for _, sec := range sections {
		for _, m := range sec.Meetings {
			if m.DayOfWeek < MinDay || m.DayOfWeek > MaxDay || !IsCanonicalSlot(m.StartTime) {
				diags = append(diags, Diagnostic{
					SectionID: sec.ID,
					MeetingID: m.ID,
					Reason:    ReasonInvalidTimeSlot,
				})
				continue
			}
			cell := Cell{Day: m.DayOfWeek, Slot: m.StartTime}
			grid[cell] = append(grid[cell], sec)
		}
	}
	return grid, diags
}
