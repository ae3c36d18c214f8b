// Package payload decodes matching analysis documents produced by the
// enrichment step into typed matching records.
package payload

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"

	"github.com/spigell/cv-matcher/internal/matching"
)

// Document is a decoded and validated analysis payload.
type Document struct {
	Candidate matching.Candidate `json:"candidate"`
	Analysis  matching.Analysis  `json:"analysis"`
}

type wireDocument struct {
	Candidate wireCandidate `mapstructure:"candidate"`
	Analysis  wireAnalysis  `mapstructure:"analysis"`
}

type wireCandidate struct {
	FullName    string           `mapstructure:"full_name"`
	Experiences []wireExperience `mapstructure:"experiences"`
}

type wireExperience struct {
	Period string `mapstructure:"period"`
}

type wireAnalysis struct {
	OverallScore     int          `mapstructure:"overall_score"`
	Domains          []wireDomain `mapstructure:"domain_assessments" validate:"dive"`
	NarrativeSummary string       `mapstructure:"narrative_summary"`
	Strengths        []string     `mapstructure:"strengths"`
}

type wireDomain struct {
	Name     string `mapstructure:"domain_name" validate:"required"`
	Weight   int    `mapstructure:"weight_percent" validate:"gte=0,lte=100"`
	Score    int    `mapstructure:"score"`
	ScoreMax int    `mapstructure:"score_max" validate:"gte=0"`
	Level    string `mapstructure:"match_level"`
	Comment  string `mapstructure:"comment"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses a JSON or YAML payload.
func Decode(data []byte) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("analysis payload is empty")
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse analysis payload: %w", err)
	}

	normalized, ok := normalizeKeys(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("analysis payload must be an object, got %T", raw)
	}

	return decodeNormalized(normalized)
}

// DecodeMap converts an already parsed payload, such as a model response.
func DecodeMap(raw map[string]any) (*Document, error) {
	if raw == nil {
		return nil, errors.New("analysis payload is empty")
	}
	return decodeNormalized(normalizeKeys(raw).(map[string]any))
}

func decodeNormalized(doc map[string]any) (*Document, error) {
	// A bare analysis object is accepted without the envelope.
	if _, ok := doc["analysis"]; !ok && isBareAnalysis(doc) {
		doc = map[string]any{"analysis": doc}
	}

	if err := checkSchema(doc); err != nil {
		return nil, err
	}

	var wire wireDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &wire,
	})
	if err != nil {
		return nil, fmt.Errorf("create payload decoder: %w", err)
	}

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode analysis payload: %w", err)
	}

	if err := validate.Struct(wire); err != nil {
		return nil, toValidationError(err)
	}

	return wire.toDocument(), nil
}

func isBareAnalysis(doc map[string]any) bool {
	_, score := doc["overall_score"]
	_, domains := doc["domain_assessments"]
	return score || domains
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate analysis payload: %w", err)
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		ve.Errors = append(ve.Errors, FieldError{
			Field:   field,
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return ve
}

func (w wireDocument) toDocument() *Document {
	doc := &Document{
		Candidate: matching.Candidate{
			FullName: strings.TrimSpace(w.Candidate.FullName),
		},
		Analysis: matching.Analysis{
			OverallScore:     w.Analysis.OverallScore,
			NarrativeSummary: w.Analysis.NarrativeSummary,
			Strengths:        w.Analysis.Strengths,
		},
	}

	for _, exp := range w.Candidate.Experiences {
		doc.Candidate.Experiences = append(doc.Candidate.Experiences, matching.ExperienceRecord{Period: exp.Period})
	}

	for _, d := range w.Analysis.Domains {
		doc.Analysis.Domains = append(doc.Analysis.Domains, matching.DomainAssessment{
			Name:     d.Name,
			Weight:   d.Weight,
			Score:    d.Score,
			ScoreMax: d.ScoreMax,
			Level:    matching.ParseMatchLevel(d.Level),
			Comment:  d.Comment,
		})
	}

	return doc
}
