package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/cv-matcher/internal/payload"
	"github.com/spigell/cv-matcher/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Analyzer asks Gemini for a matching analysis and decodes it through the
// payload boundary.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewAnalyzer(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, resume, jobDescription string) (*payload.Document, error) {
	if strings.TrimSpace(resume) == "" {
		return nil, errors.New("resume text is required")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.New("job description text is required")
	}

	prompt := buildPrompt(resume, jobDescription)

	a.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	doc, err := parseResponse(raw)
	if err != nil {
		a.logger.Warn("gemini response rejected",
			zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
			zap.Error(err),
		)
		return nil, err
	}

	return doc, nil
}

func buildPrompt(resume, jobDescription string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume:\n{{RESUME}}\n\nJob description:\n{{JOB_DESCRIPTION}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{RESUME}}", strings.TrimSpace(resume))
	prompt = strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", strings.TrimSpace(jobDescription))
	return prompt
}

func parseResponse(raw string) (*payload.Document, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(extractJSON(raw)), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	doc, err := payload.DecodeMap(data)
	if err != nil {
		return nil, fmt.Errorf("gemini response: %w", err)
	}
	return doc, nil
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
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
