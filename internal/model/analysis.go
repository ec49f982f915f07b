package model

// AnalysisReport is the structured bull/bear case produced by the language
// model for one company, parsed from its JSON response.
type AnalysisReport struct {
	Date       string                   `json:"date"`
	Company    string                   `json:"company"`
	BullCase   map[string]AnalysisPoint `json:"bull_case"`
	BearCase   map[string]AnalysisPoint `json:"bear_case"`
	FinalGrade AnalysisGrade            `json:"final_grade"`
}

// AnalysisPoint is one argument in a bull or bear case.
type AnalysisPoint struct {
	Summary   string `json:"summary"`
	Indicator string `json:"indicator"`
	Analysis  string `json:"analysis"`
}

// AnalysisGrade is the 1-5 investment grade closing an analysis
// (1 very bearish, 3 neutral, 5 very bullish).
type AnalysisGrade struct {
	Grade         int    `json:"grade"`
	Clarification string `json:"clarification"`
}
