package ai

import (
	"context"

	"github.com/spigell/cv-matcher/internal/payload"
)

// Analyzer compares a resume with a job description and returns the
// matching analysis together with the parsed candidate data.
type Analyzer interface {
	Analyze(ctx context.Context, resume, jobDescription string) (*payload.Document, error)
}
