package analysis

import (
	"fmt"
	"strings"

	"github.com/ternarybob/tickerlens/internal/models"
)

// Profile names accepted in configuration
const (
	ProfileStandard = "standard"
	ProfileEnhanced = "enhanced"
)

// Tier adds Delta to a score when the tested value is beyond Bound.
// Above tiers match value > Bound, below tiers match value < Bound.
type Tier struct {
	Bound float64
	Delta float64
}

// TierSet is an if/else-if chain: the first matching Above tier wins,
// otherwise the first matching Below tier, otherwise nothing.
type TierSet struct {
	Above []Tier
	Below []Tier
}

// Apply returns the delta contributed by value
func (ts TierSet) Apply(value float64) float64 {
	for _, t := range ts.Above {
		if value > t.Bound {
			return t.Delta
		}
	}
	for _, t := range ts.Below {
		if value < t.Bound {
			return t.Delta
		}
	}
	return 0
}

// Band maps an overall score to a verdict and confidence.
// Confidence = min(Cap, Base + Slope*score), or Base + Slope*(10-score) when Inverse is set.
type Band struct {
	Verdict  models.Verdict
	MinScore float64
	Base     float64
	Slope    float64
	Cap      float64
	Inverse  bool
}

// Profile holds every constant of the scoring routine.
type Profile struct {
	Name string

	// Technical score inputs
	Momentum TierSet // change percent
	Volume   TierSet // parsed volume
	// RangePosition scores where price sits in its 52-week range (0 = low, 1 = high).
	// Skipped when the range is empty.
	RangePosition TierSet

	// Fundamental score inputs
	MarketCap       TierSet
	Price           TierSet
	PremiumExchange []string
	ExchangeBonus   float64

	// Bands ordered from highest MinScore; the last band catches everything below
	Bands []Band
}

// StandardProfile is the default scoring routine.
func StandardProfile() Profile {
	return Profile{
		Name: ProfileStandard,
		Momentum: TierSet{
			Above: []Tier{{5, 2}, {2, 1}},
			Below: []Tier{{-5, -2}, {-2, -1}},
		},
		Volume: TierSet{
			Above: []Tier{{50_000_000, 1}},
		},
		MarketCap: TierSet{
			Above: []Tier{{500e9, 1}},
			Below: []Tier{{10e9, -1}},
		},
		Price: TierSet{
			Above: []Tier{{100, 0.5}},
		},
		Bands: []Band{
			{Verdict: models.VerdictBuy, MinScore: 7, Base: 70, Slope: 3, Cap: 95},
			{Verdict: models.VerdictHold, MinScore: 5, Base: 60, Slope: 2, Cap: 85},
			{Verdict: models.VerdictAvoid, Base: 50, Slope: 4, Cap: 90, Inverse: true},
		},
	}
}

// EnhancedProfile weighs more signals and requires a higher score for each verdict.
func EnhancedProfile() Profile {
	return Profile{
		Name: ProfileEnhanced,
		Momentum: TierSet{
			Above: []Tier{{8, 2.5}, {4, 1.5}, {0, 0.5}},
			Below: []Tier{{-8, -2.5}, {-4, -1.5}, {0, -0.5}},
		},
		Volume: TierSet{
			Above: []Tier{{100_000_000, 1.5}, {50_000_000, 1}},
			Below: []Tier{{10_000_000, -0.5}},
		},
		RangePosition: TierSet{
			Above: []Tier{{0.8, 1}},
			Below: []Tier{{0.2, -1}},
		},
		MarketCap: TierSet{
			Above: []Tier{{1000e9, 1.5}, {200e9, 1}, {10e9, 0.5}},
			Below: []Tier{{2e9, -1}},
		},
		Price: TierSet{
			Above: []Tier{{200, 0.5}},
			Below: []Tier{{10, -0.5}},
		},
		PremiumExchange: []string{"NASDAQ", "NYSE"},
		ExchangeBonus:   0.5,
		Bands: []Band{
			{Verdict: models.VerdictBuy, MinScore: 7.5, Base: 75, Slope: 2.5, Cap: 95},
			{Verdict: models.VerdictHold, MinScore: 5.5, Base: 65, Slope: 2, Cap: 85},
			{Verdict: models.VerdictAvoid, Base: 55, Slope: 3.5, Cap: 90, Inverse: true},
		},
	}
}

// ProfileByName resolves a configured profile name.
func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProfileStandard:
		return StandardProfile(), nil
	case ProfileEnhanced:
		return EnhancedProfile(), nil
	default:
		return Profile{}, fmt.Errorf("unknown analysis profile: %s", name)
	}
}

// isPremiumExchange reports whether exchange earns the exchange bonus
func (p Profile) isPremiumExchange(exchange string) bool {
	for _, e := range p.PremiumExchange {
		if strings.EqualFold(e, exchange) {
			return true
		}
	}
	return false
}
