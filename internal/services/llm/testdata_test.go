package llm

const validAnalysisJSON = `{
  "verdict": "BUY",
  "confidence": 82.6,
  "summary": "Strong momentum with healthy fundamentals.",
  "technicalIndicators": {"rsi": "64 (Bullish)", "macd": "Positive Crossover", "movingAverage": "Above 50-day MA", "volumeTrend": "+18% Above Avg"},
  "fundamentalFactors": {"peRatio": "28.4", "revenueGrowth": "+12% YoY", "profitMargin": "24%", "debtToEquity": "0.4"},
  "reasoningPoints": [
    {"title": "Earnings momentum", "description": "Three consecutive beats.", "type": "positive"},
    {"title": "Valuation", "description": "Premium to sector.", "type": "Neutral"}
  ],
  "riskFactors": {"marketVolatility": 4.5, "sectorRisk": 5, "liquidityRisk": 2, "financialHealth": 3, "overallScore": 3.6},
  "timeline": {
    "shortTerm": {"outlook": "BULLISH", "sentiment": "Positive", "description": "Momentum continues."},
    "mediumTerm": {"outlook": "POSITIVE", "sentiment": "Constructive", "description": "Margin expansion."},
    "longTerm": {"outlook": "OPTIMISTIC", "sentiment": "Favourable", "description": "Secular growth."},
    "catalysts": ["Quarterly earnings", "Product launch"]
  },
  "marketContext": {"sectorPerformance": "+6.2%", "spyPerformance": "+1.1%", "vixLevel": "14.3", "sentimentSummary": "Risk-on."}
}`
