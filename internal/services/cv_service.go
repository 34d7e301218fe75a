package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openhire/jobboard/internal/apperrors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

const maxResumeChars = 20000

const resumeExtractionPrompt = `You are an expert Resume Data Extraction Agent. Analyze the provided resume text and extract structured data.

### INSTRUCTIONS:
1. **Analyze** the text to identify the candidate's details.
2. **Ignore** page headers, footers, and formatting artifacts.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "name": "Candidate's full name",
    "email": "Email address",
    "phone": "Phone number",
    "location": "City/country if mentioned, otherwise null",
    "linkedin": "LinkedIn URL if mentioned, otherwise null",
    "github": "GitHub URL if mentioned, otherwise null",
    "website": "Personal website if mentioned, otherwise null",
    "summary": "A short professional summary",
    "skills": ["Array", "of", "skills", "e.g., Go, React, AWS"],
    "experiences": [{"company_name": "...", "title": "...", "start_date": "YYYY-MM", "end_date": "YYYY-MM or null", "is_current": false, "description": "..."}],
    "educations": [{"degree_title": "...", "institution": "...", "start_date": "YYYY-MM", "end_date": "YYYY-MM or null"}]
}

### CONSTRAINT:
If a piece of information is missing, set the value to null (or an empty array). Do not hallucinate or guess.

### RESUME TEXT:
%s
`

// CVService turns extracted resume text into a structured candidate profile.
// File upload and text extraction from PDF/DOCX happen outside this service.
type CVService struct {
	Client llms.Model
	Logger *zap.Logger
}

func NewCVService(apiKey, model string, logger *zap.Logger) (*CVService, error) {
	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &CVService{
		Client: llm,
		Logger: logger,
	}, nil
}

// ParseResume extracts a structured profile from raw resume text and returns
// the parser's JSON verbatim.
func (s *CVService) ParseResume(ctx context.Context, text string) (json.RawMessage, error) {
	if len(text) > maxResumeChars {
		text = text[:maxResumeChars]
	}

	prompt := fmt.Sprintf(resumeExtractionPrompt, text)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		s.Logger.Error("resume extraction failed", zap.Error(err))
		return nil, apperrors.Internal("resume parsing failed", err)
	}

	cleaned := stripCodeFences(resp)
	if !json.Valid([]byte(cleaned)) {
		s.Logger.Error("resume parser returned invalid JSON", zap.Int("length", len(cleaned)))
		return nil, apperrors.Internal("resume parsing failed", nil)
	}

	return json.RawMessage(cleaned), nil
}

// stripCodeFences tolerates models that wrap the JSON in a markdown block
// despite the prompt.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
