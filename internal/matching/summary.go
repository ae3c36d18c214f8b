package matching

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MinNarrativeLength is the shortest upstream summary, in characters after
// trimming, that is shown as-is.
const MinNarrativeLength = 50

const (
	maxListedStrong  = 3
	maxListedPartial = 2
	maxListedMissing = 2
)

// Summarizer derives a Summary from an Analysis.
type Summarizer struct {
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*Summarizer)

// WithClock overrides the wall clock used to resolve the current year.
func WithClock(now func() time.Time) Option {
	return func(s *Summarizer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCurrentYear pins the current year. Zero keeps the wall clock.
func WithCurrentYear(year int) Option {
	return func(s *Summarizer) {
		if year > 0 {
			s.now = func() time.Time {
				return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
			}
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Summarizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSummarizer(opts ...Option) *Summarizer {
	s := &Summarizer{
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentYear returns the year used for open-ended periods.
func (s *Summarizer) CurrentYear() int {
	return s.now().Year()
}

// Summarize computes the summary for a single analysis run.
func (s *Summarizer) Summarize(analysis Analysis, experiences []ExperienceRecord) Summary {
	years := TotalYears(experiences, s.CurrentYear())
	tier := ClassifyScore(analysis.OverallScore)
	buckets := Bucketize(analysis.Domains)

	summary := Summary{
		TotalYears: years,
		Tier:       tier,
		Strong:     buckets.Strong,
		Partial:    buckets.Partial,
		Missing:    buckets.Missing,
		Text:       analysis.NarrativeSummary,
	}

	if NeedsFallback(analysis.NarrativeSummary) {
		summary.Text = ComposeFallback(tier, analysis.OverallScore, years, buckets)
		summary.Fallback = true
		s.logger.Debug("upstream summary too short, composed fallback",
			zap.Int("upstream_length", utf8.RuneCountInString(strings.TrimSpace(analysis.NarrativeSummary))),
			zap.Int("score", analysis.OverallScore),
		)
	}

	return summary
}

// NeedsFallback reports whether the upstream narrative is missing or too
// short to be displayed.
func NeedsFallback(narrative string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(narrative)) < MinNarrativeLength
}

// ComposeFallback assembles the local narrative summary.
func ComposeFallback(tier Tier, score, totalYears int, buckets Buckets) string {
	parts := []string{fmt.Sprintf("%s with %d/100 score.", tier, score)}

	if totalYears > 0 {
		parts = append(parts, fmt.Sprintf("Candidate has %d years of experience.", totalYears))
	}

	if n := len(buckets.Strong); n > 0 {
		list := strings.Join(buckets.Strong, ", ")
		if n > maxListedStrong {
			list = strings.Join(buckets.Strong[:maxListedStrong], ", ") +
				fmt.Sprintf(", and %d other domains", n-maxListedStrong)
		}
		parts = append(parts, fmt.Sprintf("Exceeds requirements in: %s.", list))
	}

	if n := len(buckets.Partial); n > maxListedPartial {
		parts = append(parts, fmt.Sprintf("Partial match in %d domains.", n))
	} else if n > 0 {
		parts = append(parts, fmt.Sprintf("Partial match in: %s.", strings.Join(buckets.Partial, ", ")))
	}

	if n := len(buckets.Missing); n > maxListedMissing {
		parts = append(parts, fmt.Sprintf("Gaps identified in %d areas.", n))
	} else if n > 0 {
		parts = append(parts, fmt.Sprintf("Gap in: %s.", strings.Join(buckets.Missing, ", ")))
	}

	return strings.Join(parts, " ")
}
