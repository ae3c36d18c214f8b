package matching

// Buckets groups domain names by match level, keeping evaluation order.
type Buckets struct {
	Strong  []string
	Partial []string
	Missing []string
}

func Bucketize(domains []DomainAssessment) Buckets {
	var b Buckets
	for _, d := range domains {
		switch ParseMatchLevel(string(d.Level)) {
		case LevelComplete:
			b.Strong = append(b.Strong, d.Name)
		case LevelPartial:
			b.Partial = append(b.Partial, d.Name)
		case LevelIncompatible:
			b.Missing = append(b.Missing, d.Name)
		}
	}
	return b
}
