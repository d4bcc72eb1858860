package analysis

import (
	"fmt"

	"github.com/ternarybob/tickerlens/internal/models"
)

const marketSentiment = "Market conditions remain dynamic with mixed signals across sectors. " +
	"Current volatility levels suggest cautious optimism while monitoring key economic indicators and geopolitical developments."

var genericCatalysts = []string{
	"Quarterly earnings announcement",
	"Annual shareholder meeting",
	"Product launch or major announcement",
	"Regulatory developments in sector",
	"Management guidance updates",
}

var symbolCatalysts = map[string][]string{
	"TSLA":  {"Cybertruck production updates", "FSD beta expansion", "Energy business metrics", "Gigafactory developments"},
	"AAPL":  {"iPhone sales data", "Services revenue growth", "AR/VR product launches", "China market performance"},
	"GOOGL": {"AI integration progress", "Cloud revenue growth", "Regulatory compliance costs", "YouTube monetization"},
	"MSFT":  {"Azure growth metrics", "AI copilot adoption", "Gaming division performance", "Enterprise software trends"},
	"AMZN":  {"AWS revenue growth", "Prime membership data", "International expansion", "Logistics automation"},
}

func summaryFor(verdict models.Verdict, q *models.Quote) string {
	switch verdict {
	case models.VerdictBuy:
		action, interest := "negative", "declining"
		if q.ChangePercent > 0 {
			action, interest = "positive", "increasing"
		}
		return fmt.Sprintf("Our AI analysis indicates strong bullish sentiment for %s based on multiple converging factors. "+
			"The stock shows robust technical momentum with %s price action, %s investor interest, and favorable market positioning.",
			q.Symbol, action, interest)
	case models.VerdictHold:
		return fmt.Sprintf("%s presents a balanced investment profile with mixed signals across technical and fundamental indicators. "+
			"The current price level suggests fair valuation, but investors should monitor upcoming catalysts and market conditions "+
			"before making significant position changes.", q.Symbol)
	default:
		return fmt.Sprintf("Our analysis reveals concerning signals for %s that suggest heightened risk and limited upside potential. "+
			"Technical indicators show negative momentum, and fundamental factors raise questions about near-term performance prospects.",
			q.Symbol)
	}
}

func reasoningFor(verdict models.Verdict, q *models.Quote) []models.ReasoningPoint {
	switch verdict {
	case models.VerdictBuy:
		points := []models.ReasoningPoint{
			{
				Title:       "Strong Market Position",
				Description: fmt.Sprintf("%s demonstrates robust market leadership with expanding market share and competitive advantages in its sector.", q.Symbol),
				Type:        models.ReasoningPositive,
			},
			{
				Title:       "Positive Technical Momentum",
				Description: "Technical analysis shows bullish patterns with strong volume confirmation and trend continuation signals.",
				Type:        models.ReasoningPositive,
			},
		}
		if q.ChangePercent > 3 {
			points = append(points, models.ReasoningPoint{
				Title:       "Strong Price Performance",
				Description: fmt.Sprintf("Current session showing %.2f%% gains with sustained buying pressure.", q.ChangePercent),
				Type:        models.ReasoningPositive,
			})
		}
		return append(points, models.ReasoningPoint{
			Title:       "Valuation Considerations",
			Description: "Monitor valuation metrics for any signs of overextension relative to fundamentals.",
			Type:        models.ReasoningNeutral,
		})
	case models.VerdictHold:
		return []models.ReasoningPoint{
			{
				Title:       "Stable Financial Position",
				Description: "Company maintains solid fundamentals with balanced risk-reward profile in current market conditions.",
				Type:        models.ReasoningPositive,
			},
			{
				Title:       "Mixed Technical Signals",
				Description: "Technical indicators show conflicting signals requiring careful monitoring of trend development.",
				Type:        models.ReasoningNeutral,
			},
			{
				Title:       "Market Uncertainty",
				Description: "Broader market conditions suggest cautious approach until clearer directional signals emerge.",
				Type:        models.ReasoningNeutral,
			},
		}
	default:
		return []models.ReasoningPoint{
			{
				Title:       "Weakening Fundamentals",
				Description: "Key financial metrics show deterioration that may impact future performance prospects.",
				Type:        models.ReasoningNegative,
			},
			{
				Title:       "Technical Breakdown",
				Description: "Chart patterns indicate potential for further downside with limited support levels.",
				Type:        models.ReasoningNegative,
			},
			{
				Title:       "Risk Management",
				Description: "Current risk-reward profile unfavorable for new positions until conditions improve.",
				Type:        models.ReasoningNegative,
			},
		}
	}
}

func timelineFor(verdict models.Verdict, q *models.Quote) models.Timeline {
	var t models.Timeline
	switch verdict {
	case models.VerdictBuy:
		t.ShortTerm = models.Outlook{
			Outlook:     "BULLISH",
			Sentiment:   "Strong technical momentum suggests continued upward movement.",
			Description: fmt.Sprintf("Price target: $%s-%s.", formatNumber(Round(q.CurrentPrice*1.15)), formatNumber(Round(q.CurrentPrice*1.25))),
		}
		t.MediumTerm = models.Outlook{
			Outlook:     "POSITIVE",
			Sentiment:   "Fundamental growth drivers support sustained appreciation.",
			Description: "Market expansion and strategic initiatives provide multiple catalysts.",
		}
		t.LongTerm = models.Outlook{
			Outlook:     "OPTIMISTIC",
			Sentiment:   "Long-term secular trends favor continued outperformance.",
			Description: "Strong competitive position in growing addressable market.",
		}
	case models.VerdictHold:
		t.ShortTerm = models.Outlook{
			Outlook:     "NEUTRAL",
			Sentiment:   "Mixed signals suggest range-bound trading in near term.",
			Description: "Monitor key technical levels for directional breakout.",
		}
		t.MediumTerm = models.Outlook{
			Outlook:     "STABLE",
			Sentiment:   "Fundamentals support current valuation levels.",
			Description: "Focus on operational execution and market developments.",
		}
		t.LongTerm = models.Outlook{
			Outlook:     "CAUTIOUS",
			Sentiment:   "Long-term prospects depend on strategic execution.",
			Description: "Industry dynamics may impact competitive positioning.",
		}
	default:
		t.ShortTerm = models.Outlook{
			Outlook:     "BEARISH",
			Sentiment:   "Technical breakdown suggests further downside risk.",
			Description: "Limited support levels increase volatility concerns.",
		}
		t.MediumTerm = models.Outlook{
			Outlook:     "NEGATIVE",
			Sentiment:   "Fundamental headwinds may persist for several quarters.",
			Description: "Structural challenges require significant strategic adjustments.",
		}
		t.LongTerm = models.Outlook{
			Outlook:     "UNCERTAIN",
			Sentiment:   "Long-term viability depends on successful transformation.",
			Description: "Consider alternatives with better risk-adjusted returns.",
		}
	}
	t.Catalysts = catalystsFor(q.Symbol)
	return t
}

// catalystsFor returns up to two symbol-specific catalysts followed by three generic ones
func catalystsFor(symbol string) []string {
	specific := symbolCatalysts[symbol]
	if len(specific) > 2 {
		specific = specific[:2]
	}
	out := make([]string, 0, len(specific)+3)
	out = append(out, specific...)
	return append(out, genericCatalysts[:3]...)
}
