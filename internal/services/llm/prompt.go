package llm

import (
	"fmt"
	"strconv"

	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/models"
)

const systemInstruction = "You are a world-class financial analyst with 20+ years of experience in equity research " +
	"and investment advisory. You answer only with the requested JSON."

// BuildPrompt renders the analysis request for a quote
func BuildPrompt(q *models.Quote) string {
	currency := common.CurrencySymbol(q.Exchange)
	indian := common.IsIndianExchange(q.Exchange)

	focus := "US equity markets, Federal Reserve policy, and developed market conditions"
	guideline := "Consider Federal Reserve decisions, earnings seasons, and US economic indicators"
	if indian {
		focus = "Indian equity markets (NSE/BSE), RBI monetary policy, and emerging market dynamics"
		guideline = "Consider monsoon impact, government policy changes, FII/DII flows, and sectoral regulations specific to India"
	}

	return fmt.Sprintf(`Analyze the following stock data and provide a comprehensive investment recommendation.

STOCK DATA:
- Company: %s (%s)
- Current Price: %s%s
- Change: %s%s%s (%s%%)
- Volume: %s
- Market Cap: %s
- 52-Week Range: %s%s - %s%s
- Exchange: %s

ANALYSIS REQUIREMENTS:

1. **Investment Verdict**: Provide a clear BUY, HOLD, or AVOID recommendation
2. **Confidence Level**: Rate your confidence from 0-100%%
3. **Executive Summary**: Write a compelling 2-3 sentence summary of your recommendation
4. **Technical Analysis**: Analyze price momentum, volume trends, and technical indicators
5. **Fundamental Analysis**: Evaluate financial health, valuation metrics, and growth prospects
6. **Key Reasoning**: Provide 4-6 detailed reasoning points (mix of positive, negative, and neutral factors)
7. **Risk Assessment**: Score market volatility, sector risk, liquidity risk, and financial health (1-10 scale)
8. **Investment Timeline**: Provide short-term (1-6 months), medium-term (6-18 months), and long-term (2+ years) outlooks
9. **Market Context**: Assess current sector performance and broader market conditions

ANALYSIS GUIDELINES:
- Base your analysis on the real market data provided
- Consider current market conditions and economic environment (focus on %s)
- Be specific and actionable in your recommendations
- Balance bullish and bearish factors objectively
- Provide clear rationale for your verdict and confidence level
- Consider both growth and value investment perspectives
- Factor in company-specific catalysts and industry trends
- %s

Provide your analysis in the exact JSON format specified in the schema.
`,
		q.CompanyName, q.Symbol,
		currency, price(q.CurrentPrice),
		sign(q.ChangeAmount), currency, price(q.ChangeAmount), sign(q.ChangePercent)+price(q.ChangePercent),
		q.Volume,
		q.MarketCap,
		currency, price(q.WeekLow52), currency, price(q.WeekHigh52),
		q.Exchange,
		focus,
		guideline,
	)
}

func price(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sign(v float64) string {
	if v >= 0 {
		return "+"
	}
	return ""
}
