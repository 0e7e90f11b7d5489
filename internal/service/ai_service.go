package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"ai-clinic-backend/internal/ai"
	"ai-clinic-backend/internal/models"
)

// AIService wraps the text-generation API behind the two clinic prompts.
// Every upstream failure is recovered locally with a static fallback -
// clinical workflow never blocks on AI availability.
type AIService struct {
	generator ai.Generator
}

func NewAIService(generator ai.Generator) *AIService {
	return &AIService{generator: generator}
}

// DiagnoseInput is the symptom-triage request
type DiagnoseInput struct {
	Symptoms string `json:"symptoms" binding:"required"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	History  string `json:"history"`
}

// DiagnosisResult is the triage payload returned to the doctor
type DiagnosisResult struct {
	PossibleConditions []string `json:"possible_conditions"`
	RiskLevel          string   `json:"risk_level"`
	SuggestedTests     []string `json:"suggested_tests"`
	Error              string   `json:"error,omitempty"`
}

// Diagnose renders the triage prompt, calls the generator once and decodes
// the fenced JSON block from the reply. Never returns an error - any
// failure yields the fallback payload.
func (s *AIService) Diagnose(ctx context.Context, in DiagnoseInput) *DiagnosisResult {
	prompt := fmt.Sprintf(`Act as an expert medical AI assistant. Analyze the following patient data:
Symptoms: %s
Age: %s
Gender: %s
Medical History: %s

Provide a brief JSON response strictly following this format:
{
  "possible_conditions": ["Condition 1", "Condition 2"],
  "risk_level": "Low/Medium/High/Critical",
  "suggested_tests": ["Test 1", "Test 2"]
}`,
		in.Symptoms,
		defaultString(in.Age, "Not provided"),
		defaultString(in.Gender, "Not provided"),
		defaultString(in.History, "None"),
	)

	var result DiagnosisResult
	if err := s.generate(ctx, prompt, &result); err != nil {
		log.Printf("AI diagnosis unavailable: %v", err)
		return &DiagnosisResult{
			PossibleConditions: []string{"Unable to fetch AI diagnosis at this moment"},
			RiskLevel:          "Unknown",
			SuggestedTests:     []string{"Please consult the doctor directly."},
			Error:              "AI service temporarily unavailable",
		}
	}
	return &result
}

// ExplainResult is the prescription-explanation payload
type ExplainResult struct {
	Explanation              string   `json:"explanation"`
	LifestyleRecommendations []string `json:"lifestyle_recommendations"`
	Error                    string   `json:"error,omitempty"`
}

// Explain renders the pharmacist prompt for a prescription and decodes the
// reply the same way Diagnose does
func (s *AIService) Explain(ctx context.Context, prescription *models.Prescription) *ExplainResult {
	data, _ := json.Marshal(prescription)

	prompt := fmt.Sprintf(`Act as a friendly, helpful AI pharmacist. Analyze the following prescription data:
%s

Provide a simplified explanation of the medicines, what they are for, and general lifestyle recommendations.
Respond in a brief JSON format:
{
  "explanation": "Simple explanation of the medication...",
  "lifestyle_recommendations": ["Advice 1", "Advice 2"]
}`, data)

	var result ExplainResult
	if err := s.generate(ctx, prompt, &result); err != nil {
		log.Printf("AI explanation unavailable: %v", err)
		return &ExplainResult{
			Explanation:              "AI explanation is temporarily unavailable. Please follow your doctor's instructions.",
			LifestyleRecommendations: []string{"Stay hydrated.", "Rest well."},
			Error:                    "AI service temporarily unavailable",
		}
	}
	return &result
}

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)```")

func (s *AIService) generate(ctx context.Context, prompt string, out interface{}) error {
	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return err
	}

	// Models wrap JSON in a markdown fence more often than not
	raw := text
	if match := fencedJSON.FindStringSubmatch(text); match != nil {
		raw = match[1]
	}

	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), out); err != nil {
		return fmt.Errorf("invalid AI response format: %w", err)
	}
	return nil
}
