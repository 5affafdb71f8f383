package pacing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Policy names accepted in configuration.
const (
	PolicyTiered = "tiered"
	PolicyBudget = "budget"
)

// ErrNoRecords is returned when a plan is requested for an empty timeline.
var ErrNoRecords = errors.New("no records to pace")

// Plan is the pacing schedule for one caption track.
type Plan struct {
	CardsToShow    int
	SecondsPerCard float64
	OpeningSeconds float64
	EndingSeconds  float64
	TotalSeconds   float64
}

// Reconstruct recomputes the total from its parts. It always equals
// TotalSeconds for plans built by this package.
func (p Plan) Reconstruct() float64 {
	return p.OpeningSeconds + float64(p.CardsToShow)*p.SecondsPerCard + p.EndingSeconds
}

// ContentSeconds is the span covered by record cards.
func (p Plan) ContentSeconds() float64 {
	return float64(p.CardsToShow) * p.SecondsPerCard
}

// Summary renders the plan for display with durations rounded to
// milliseconds.
func (p Plan) Summary() string {
	return fmt.Sprintf("cards=%d per_card=%.3fs opening=%.3fs ending=%.3fs total=%.3fs",
		p.CardsToShow, p.SecondsPerCard, p.OpeningSeconds, p.EndingSeconds, p.TotalSeconds)
}

// Bounds are the fixed durations surrounding the record cards.
type Bounds struct {
	OpeningSeconds float64
	EndingSeconds  float64
}

// Policy decides how many records to show and for how long.
type Policy interface {
	Name() string
	Plan(count int, bounds Bounds) (Plan, error)
}

func newPlan(cards int, perCard float64, bounds Bounds) Plan {
	plan := Plan{
		CardsToShow:    cards,
		SecondsPerCard: perCard,
		OpeningSeconds: bounds.OpeningSeconds,
		EndingSeconds:  bounds.EndingSeconds,
	}
	plan.TotalSeconds = plan.Reconstruct()
	return plan
}

// Tier is one row of a tiered schedule.
type Tier struct {
	// MaxCount is the largest record count the tier covers; 0 is unbounded.
	MaxCount int
	// MaxCards caps the cards shown; 0 shows every record.
	MaxCards       int
	SecondsPerCard float64
}

func (t Tier) covers(count int) bool {
	return t.MaxCount <= 0 || count <= t.MaxCount
}

func (t Tier) cards(count int) int {
	if t.MaxCards <= 0 {
		return count
	}
	return min(count, t.MaxCards)
}

// Tiered selects cards and seconds per card from an ascending threshold table.
type Tiered struct {
	Tiers []Tier
}

func (Tiered) Name() string { return PolicyTiered }

// Plan picks the first tier covering count, or the last tier when none does.
func (p Tiered) Plan(count int, bounds Bounds) (Plan, error) {
	if count <= 0 {
		return Plan{}, ErrNoRecords
	}
	if len(p.Tiers) == 0 {
		return Plan{}, errors.New("tiered pacing: no tiers configured")
	}
	tier := p.Tiers[len(p.Tiers)-1]
	for _, candidate := range p.Tiers {
		if candidate.covers(count) {
			tier = candidate
			break
		}
	}
	return newPlan(tier.cards(count), tier.SecondsPerCard, bounds), nil
}

// Budget shows small rosters in full and fits large ones into a maximum
// runtime at a minimum per-card duration.
type Budget struct {
	FewThreshold      int
	FewSeconds        float64
	ShowAllThreshold  int
	ShowAllSeconds    float64
	MinSecondsPerCard float64
	MaxTotalSeconds   float64
}

func (Budget) Name() string { return PolicyBudget }

func (p Budget) Plan(count int, bounds Bounds) (Plan, error) {
	if count <= 0 {
		return Plan{}, ErrNoRecords
	}
	switch {
	case count <= p.FewThreshold:
		return newPlan(count, p.FewSeconds, bounds), nil
	case count <= p.ShowAllThreshold:
		return newPlan(count, p.ShowAllSeconds, bounds), nil
	}
	if p.MinSecondsPerCard <= 0 {
		return Plan{}, fmt.Errorf("budget pacing: min_seconds_per_card must be positive, got %v", p.MinSecondsPerCard)
	}
	available := p.MaxTotalSeconds - bounds.OpeningSeconds - bounds.EndingSeconds
	fit := int(math.Floor(available / p.MinSecondsPerCard))
	cards := max(0, min(fit, count))
	return newPlan(cards, p.MinSecondsPerCard, bounds), nil
}

// Select resolves a configured policy name.
func Select(name string, tiered Tiered, budget Budget) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyTiered, "":
		return tiered, nil
	case PolicyBudget:
		return budget, nil
	default:
		return nil, fmt.Errorf("pacing policy: unsupported value %q", name)
	}
}
