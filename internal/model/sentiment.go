package model

// NewsSentiment is the filtered news feed for one ticker: only articles
// whose relevance score for that ticker exceeds the provider threshold.
type NewsSentiment struct {
	Ticker string        `json:"ticker"`
	Items  int           `json:"items"`
	Feed   []NewsArticle `json:"feed"`
}

// NewsArticle is one scored article from the sentiment feed.
type NewsArticle struct {
	Title                string  `json:"title"`
	URL                  string  `json:"url"`
	TimePublished        string  `json:"timePublished"`
	Summary              string  `json:"summary"`
	Source               string  `json:"source"`
	OverallSentiment     string  `json:"overallSentimentLabel"`
	RelevanceScore       float64 `json:"relevanceScore"`
	TickerSentimentScore float64 `json:"tickerSentimentScore"`
	TickerSentimentLabel string  `json:"tickerSentimentLabel"`
}
