package analysis

import (
	"github.com/ternarybob/tickerlens/internal/models"
)

// Score scales
const (
	BaseScore = 5.0
	MaxScore  = 10.0
)

// Scores is the breakdown behind a verdict
type Scores struct {
	Technical   float64
	Fundamental float64
	Overall     float64
}

// TechnicalScore rates price momentum, volume and 52-week range position. Range: 0-10.
func (p Profile) TechnicalScore(q *models.Quote) float64 {
	score := BaseScore
	score += p.Momentum.Apply(q.ChangePercent)
	score += p.Volume.Apply(ParseVolume(q.Volume))

	if span := q.WeekHigh52 - q.WeekLow52; span > 0 {
		score += p.RangePosition.Apply((q.CurrentPrice - q.WeekLow52) / span)
	}

	return ClampFloat64(score, 0, MaxScore)
}

// FundamentalScore rates market capitalization, price level and listing venue. Range: 0-10.
func (p Profile) FundamentalScore(q *models.Quote) float64 {
	score := BaseScore
	score += p.MarketCap.Apply(ParseMarketCap(q.MarketCap))
	score += p.Price.Apply(q.CurrentPrice)

	if p.isPremiumExchange(q.Exchange) {
		score += p.ExchangeBonus
	}

	return ClampFloat64(score, 0, MaxScore)
}

// Score computes the technical, fundamental and overall scores for a quote
func (p Profile) Score(q *models.Quote) Scores {
	technical := p.TechnicalScore(q)
	fundamental := p.FundamentalScore(q)
	return Scores{
		Technical:   technical,
		Fundamental: fundamental,
		Overall:     Mean(technical, fundamental),
	}
}

// Classify maps an overall score onto the profile's bands.
// The highest band whose MinScore is reached wins; confidence is rounded and kept within 0-100.
func (p Profile) Classify(overall float64) (models.Verdict, int) {
	for i, band := range p.Bands {
		if overall < band.MinScore && i < len(p.Bands)-1 {
			continue
		}

		x := overall
		if band.Inverse {
			x = MaxScore - overall
		}
		confidence := band.Base + band.Slope*x
		if confidence > band.Cap {
			confidence = band.Cap
		}
		return band.Verdict, int(ClampFloat64(Round(confidence), 0, 100))
	}

	return models.VerdictAvoid, 0
}
