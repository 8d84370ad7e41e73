package screening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	_ "embed"

	"google.golang.org/genai"

	"smartrecruit/internal/model"
)

const defaultModel = "gemini-2.5-flash"

//go:embed prompt.md
var promptTemplate string

// GeminiReviewer implements Reviewer on top of the Gemini API.
type GeminiReviewer struct {
	client    *genai.Client
	modelName string
}

// NewGeminiReviewer creates a reviewer backed by the Gemini API.
func NewGeminiReviewer(ctx context.Context, apiKey, modelName string) (*GeminiReviewer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if modelName = strings.TrimSpace(modelName); modelName == "" {
		modelName = defaultModel
	}

	return &GeminiReviewer{client: client, modelName: modelName}, nil
}

var _ Reviewer = (*GeminiReviewer)(nil)

// Evaluate submits the job text and resume to Gemini and parses the
// structured verdict. Malformed model output is reported as
// ErrUpstreamFormat so the caller can distinguish it from transport errors.
func (r *GeminiReviewer) Evaluate(ctx context.Context, job *model.Job, resumeText string) (*Assessment, error) {
	prompt, err := buildPrompt(job, resumeText)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Models.GenerateContent(ctx, r.modelName, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil {
				continue
			}
			b.WriteString(part.Text)
		}
	}

	return parseAssessment(b.String())
}

func buildPrompt(job *model.Job, resumeText string) (string, error) {
	jobJSON, err := json.MarshalIndent(map[string]string{
		"title":            job.Title,
		"description":      job.Description,
		"qualifications":   job.Qualifications,
		"experience_level": job.ExperienceLevel,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal job payload: %w", err)
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{JOB_JSON}}", string(jobJSON))
	prompt = strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", resumeText)
	return prompt, nil
}

// parseAssessment interprets the raw model response. The model is asked for
// a bare JSON object but frequently wraps it in a markdown fence.
func parseAssessment(raw string) (*Assessment, error) {
	cleaned := extractJSON(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", ErrUpstreamFormat)
	}

	var payload struct {
		Eligible      *bool    `json:"eligible"`
		Score         *float64 `json:"score"`
		Reasons       []string `json:"reasons"`
		MissingSkills []string `json:"missing_skills"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}
	if payload.Score == nil || payload.Eligible == nil {
		return nil, fmt.Errorf("%w: missing eligible or score field", ErrUpstreamFormat)
	}
	if math.IsNaN(*payload.Score) {
		return nil, fmt.Errorf("%w: score is not a number", ErrUpstreamFormat)
	}

	score := int(math.Round(*payload.Score))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &Assessment{
		Eligible:      *payload.Eligible,
		Score:         score,
		Reasons:       payload.Reasons,
		MissingSkills: payload.MissingSkills,
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}
