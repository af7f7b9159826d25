package model

// Source identifies the provider a problem record came from.
type Source string

const (
	SourceLeetCode   Source = "leetcode"
	SourceCodeforces Source = "codeforces"
	SourceGFG        Source = "gfg"
	SourceOther      Source = "other"
)

// Difficulty labels. Expert only appears through the rating mapping.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
)

// Problem is the canonical normalized problem record shared by all
// providers and tiers.
type Problem struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Difficulty     string   `json:"difficulty"`
	Topic          string   `json:"topic"`
	Tags           []string `json:"tags"`
	URL            string   `json:"url"`
	Source         Source   `json:"source"`
	Rating         int      `json:"rating,omitempty"`
	AcceptanceRate float64  `json:"acceptanceRate,omitempty"`
}

// DifficultyFromRating maps a contest rating onto a difficulty label.
func DifficultyFromRating(rating int) string {
	switch {
	case rating < 1200:
		return DifficultyEasy
	case rating < 1600:
		return DifficultyMedium
	case rating < 2000:
		return DifficultyHard
	default:
		return DifficultyExpert
	}
}

// DedupeProblems removes records sharing a (source, id) pair, keeping
// the first occurrence and preserving insertion order.
func DedupeProblems(problems []Problem) []Problem {
	if len(problems) == 0 {
		return problems
	}
	type key struct {
		source Source
		id     string
	}
	seen := make(map[key]struct{}, len(problems))
	result := make([]Problem, 0, len(problems))
	for _, p := range problems {
		k := key{source: p.Source, id: p.ID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, p)
	}
	return result
}

// RatingRange is a labeled contest-rating band.
type RatingRange struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}
