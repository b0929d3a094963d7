package student

import "github.com/maplewood/scheduler/core"

const (
	maxGradeLevel = 12

	// one course-equivalent of credits; the margin between AT_RISK and BEHIND
	courseCreditEquivalent = 1.0
)

// Tracker derives graduation-readiness metrics from a student's academic
// history. It never trusts the server-supplied onTrackToGraduate flag or
// status string; both are recomputed from primitive fields so every surface
// renders the same classification.
type Tracker struct {
	conf core.GraduationConfig
}

func NewTracker(conf core.GraduationConfig) *Tracker {
	return &Tracker{conf: conf}
}

// Classify computes the graduation pace on the 4-level (grades 9-12) scale:
// on track iff the credits still owed fit in the share of the requirement
// proportional to the grade levels remaining. AT_RISK means within one
// course-equivalent beyond that threshold, BEHIND anything past it.
func (t *Tracker) Classify(p Progress) (onTrack bool, status GraduationStatus) {
	required := p.CreditsRequired
	if required <= 0 {
		required = t.conf.CreditsRequired
	}
	totalLevels := t.conf.TotalLevels
	if totalLevels <= 0 {
		totalLevels = 4
	}

	remainingLevels := maxGradeLevel - p.GradeLevel
	if remainingLevels < 0 {
		remainingLevels = 0
	}
	if remainingLevels > totalLevels {
		remainingLevels = totalLevels
	}

	threshold := required * float64(remainingLevels) / float64(totalLevels)
	remaining := required - p.CreditsEarned
	if remaining < 0 {
		remaining = 0
	}

	switch {
	case remaining <= threshold:
		return true, StatusOnTrack
	case remaining <= threshold+courseCreditEquivalent:
		return false, StatusAtRisk
	default:
		return false, StatusBehind
	}
}

// Reconcile recomputes the derived progress fields and reports any
// disagreement with the values the scheduler service sent. The computed
// values win; discrepancies are diagnostics for the caller to log.
func (t *Tracker) Reconcile(p Progress) (Progress, []Discrepancy) {
	var diags []Discrepancy

	required := p.CreditsRequired
	if required <= 0 {
		required = t.conf.CreditsRequired
		p.CreditsRequired = required
	}

	remaining := required - p.CreditsEarned
	if remaining < 0 {
		remaining = 0
	}
	if p.CreditsRemaining != remaining {
		diags = append(diags, Discrepancy{Field: "creditsRemaining", Server: p.CreditsRemaining, Computed: remaining})
		p.CreditsRemaining = remaining
	}

	onTrack, status := t.Classify(p)
	if p.OnTrackToGraduate != onTrack {
		diags = append(diags, Discrepancy{Field: "onTrackToGraduate", Server: p.OnTrackToGraduate, Computed: onTrack})
		p.OnTrackToGraduate = onTrack
	}
	if p.GraduationStatus != status {
		diags = append(diags, Discrepancy{Field: "graduationStatus", Server: p.GraduationStatus, Computed: status})
		p.GraduationStatus = status
	}
	return p, diags
}
