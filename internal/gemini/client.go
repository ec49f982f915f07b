// Package gemini generates structured bull/bear investment analyses with
// Google's Gemini models. The call is stateless: one prompt in, one JSON
// document out, parsed into a typed report at this boundary.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"google.golang.org/genai"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/model"
)

const defaultModel = "gemini-2.0-flash"

const analysisPrompt = `You are a seasoned financial analyst and investment professional with extensive knowledge of global markets, industry trends, and company valuations. Provide a comprehensive bull and bear case analysis for %s, covering financial health, market position, industry trends, valuation, growth potential, and risks.

For each point in the bull and bear cases:
- Provide a concise summary.
- Include specific indicators or metrics to monitor.
- Offer a detailed analysis with factual information, including precise figures, dates, and sources where applicable.

Present up to 5 of the most compelling points for each case, prioritizing the most significant factors that could impact the stock's performance.

Finally, provide an investment grade from 1-5 (1 being very bearish, 3 neutral, and 5 very bullish) with a detailed explanation of the rationale behind the grade.

Respond with a single JSON object of this exact shape:
{
  "date": "YYYY-MM-DD",
  "company": "Company Name",
  "bull_case": {"1": {"summary": "...", "indicator": "...", "analysis": "..."}},
  "bear_case": {"1": {"summary": "...", "indicator": "...", "analysis": "..."}},
  "final_grade": {"grade": 3, "clarification": "..."}
}

Ensure all analyses are fact-based and balanced. Only reply with the JSON object.`

// Client generates bull/bear analyses through the Gemini API.
type Client struct {
	apiKey string
	model  string
}

// NewClient creates a new Gemini analysis client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  defaultModel,
	}
}

// GenerateAnalysis produces a structured bull/bear case for the named
// company. The model is asked for JSON directly; the response is still run
// through a JSON repairer before parsing because models occasionally wrap
// output in code fences or drop a trailing brace.
func (c *Client) GenerateAnalysis(ctx context.Context, companyName string) (model.AnalysisReport, error) {
	if c.apiKey == "" {
		return model.AnalysisReport{}, fmt.Errorf("%w: no API key configured", apperrors.ErrAnalysisUnavailable)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return model.AnalysisReport{}, fmt.Errorf("failed to create genai client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.7)),
		ResponseMIMEType: "application/json",
	}

	result, err := client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(fmt.Sprintf(analysisPrompt, companyName)),
		config,
	)
	if err != nil {
		return model.AnalysisReport{}, fmt.Errorf("%w: %v", apperrors.ErrAnalysisUnavailable, err)
	}

	text := result.Text()
	if text == "" {
		return model.AnalysisReport{}, fmt.Errorf("%w: empty model response", apperrors.ErrAnalysisUnavailable)
	}

	return ParseReport(text)
}

// ParseReport parses a model response into an AnalysisReport, repairing
// common JSON defects (code fences, truncation) first.
func ParseReport(text string) (model.AnalysisReport, error) {
	repaired, err := jsonrepair.RepairJSON(text)
	if err != nil {
		return model.AnalysisReport{}, fmt.Errorf("%w: unrepairable response: %v", apperrors.ErrAnalysisUnavailable, err)
	}

	var report model.AnalysisReport
	if err := json.Unmarshal([]byte(repaired), &report); err != nil {
		return model.AnalysisReport{}, fmt.Errorf("%w: %v", apperrors.ErrAnalysisUnavailable, err)
	}

	if report.Company == "" || (len(report.BullCase) == 0 && len(report.BearCase) == 0) {
		return model.AnalysisReport{}, fmt.Errorf("%w: response missing required fields", apperrors.ErrAnalysisUnavailable)
	}

	// The model occasionally grades outside the requested scale.
	if report.FinalGrade.Grade < 1 {
		report.FinalGrade.Grade = 1
	} else if report.FinalGrade.Grade > 5 {
		report.FinalGrade.Grade = 5
	}

	return report, nil
}
