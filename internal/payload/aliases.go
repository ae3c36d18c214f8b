package payload

import "fmt"

// keyAliases maps the legacy, mostly French, keys of the enrichment service to the
// canonical payload keys.
var keyAliases = map[string]string{
	"parsed_cv":         "candidate",
	"matching_analysis": "analysis",
	"nom_complet":       "full_name",
	"periode":           "period",
	"score_matching":    "overall_score",
	"domaines_analyses": "domain_assessments",
	"domaine":           "domain_name",
	"poids":             "weight_percent",
	"match":             "match_level",
	"commentaire":       "comment",
	"synthese_matching": "narrative_summary",
	"points_forts":      "strengths",
}

// normalizeKeys rewrites aliased keys recursively. Canonical keys win when a
// map carries both spellings.
func normalizeKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			if _, ok := keyAliases[key]; ok {
				continue
			}
			out[key] = normalizeKeys(item)
		}
		for key, item := range val {
			canonical, ok := keyAliases[key]
			if !ok {
				continue
			}
			if _, exists := out[canonical]; !exists {
				out[canonical] = normalizeKeys(item)
			}
		}
		return out
	case map[any]any:
		converted := make(map[string]any, len(val))
		for key, item := range val {
			converted[fmt.Sprint(key)] = item
		}
		return normalizeKeys(converted)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeKeys(item)
		}
		return out
	default:
		return v
	}
}
