package fallback

import "algoprep/internal/catalog/model"

// Static catalog used when live and cached data are unavailable.
// Pure data: no I/O, no mutation after init.

var dsaProblems = []model.Problem{
	{
		ID:             "1",
		Title:          "Two Sum",
		Difficulty:     model.DifficultyEasy,
		Topic:          "array",
		Tags:           []string{"array", "hash-table"},
		URL:            "https://leetcode.com/problems/two-sum/",
		Source:         model.SourceLeetCode,
		AcceptanceRate: 45.5,
	},
	{
		ID:             "2",
		Title:          "Add Two Numbers",
		Difficulty:     model.DifficultyMedium,
		Topic:          "linked-list",
		Tags:           []string{"linked-list", "math", "recursion"},
		URL:            "https://leetcode.com/problems/add-two-numbers/",
		Source:         model.SourceLeetCode,
		AcceptanceRate: 35.4,
	},
	{
		ID:             "3",
		Title:          "Longest Substring Without Repeating Characters",
		Difficulty:     model.DifficultyMedium,
		Topic:          "string",
		Tags:           []string{"hash-table", "string", "sliding-window"},
		URL:            "https://leetcode.com/problems/longest-substring-without-repeating-characters/",
		Source:         model.SourceLeetCode,
		AcceptanceRate: 31.1,
	},
	{
		ID:             "4",
		Title:          "Median of Two Sorted Arrays",
		Difficulty:     model.DifficultyHard,
		Topic:          "array",
		Tags:           []string{"array", "binary-search", "divide-and-conquer"},
		URL:            "https://leetcode.com/problems/median-of-two-sorted-arrays/",
		Source:         model.SourceLeetCode,
		AcceptanceRate: 30.2,
	},
	{
		ID:             "5",
		Title:          "Longest Palindromic Substring",
		Difficulty:     model.DifficultyMedium,
		Topic:          "string",
		Tags:           []string{"string", "dynamic-programming"},
		URL:            "https://leetcode.com/problems/longest-palindromic-substring/",
		Source:         model.SourceLeetCode,
		AcceptanceRate: 30.8,
	},
}

var cpProblems = []model.Problem{
	{
		ID:         "1A",
		Title:      "Theatre Square",
		Difficulty: model.DifficultyEasy,
		Topic:      "math",
		Tags:       []string{"math"},
		URL:        "https://codeforces.com/problemset/problem/1/A",
		Source:     model.SourceCodeforces,
		Rating:     1000,
	},
	{
		ID:         "4A",
		Title:      "Watermelon",
		Difficulty: model.DifficultyEasy,
		Topic:      "math",
		Tags:       []string{"math"},
		URL:        "https://codeforces.com/problemset/problem/4/A",
		Source:     model.SourceCodeforces,
		Rating:     800,
	},
	{
		ID:         "71A",
		Title:      "Way Too Long Words",
		Difficulty: model.DifficultyEasy,
		Topic:      "strings",
		Tags:       []string{"strings"},
		URL:        "https://codeforces.com/problemset/problem/71/A",
		Source:     model.SourceCodeforces,
		Rating:     800,
	},
	{
		ID:         "158A",
		Title:      "Next Round",
		Difficulty: model.DifficultyEasy,
		Topic:      "implementation",
		Tags:       []string{"implementation"},
		URL:        "https://codeforces.com/problemset/problem/158/A",
		Source:     model.SourceCodeforces,
		Rating:     800,
	},
	{
		ID:         "282A",
		Title:      "Bit++",
		Difficulty: model.DifficultyEasy,
		Topic:      "implementation",
		Tags:       []string{"implementation"},
		URL:        "https://codeforces.com/problemset/problem/282/A",
		Source:     model.SourceCodeforces,
		Rating:     800,
	},
}

// DSAProblems returns a copy of the generic fallback problem list.
func DSAProblems() []model.Problem {
	return copyProblems(dsaProblems)
}

// CPProblems returns a copy of the rating-tagged fallback problem list.
func CPProblems() []model.Problem {
	return copyProblems(cpProblems)
}

func copyProblems(src []model.Problem) []model.Problem {
	out := make([]model.Problem, len(src))
	copy(out, src)
	return out
}

// ListSheets returns the metadata of every bundled sheet, in declaration order.
func ListSheets() []model.SheetMeta {
	metas := make([]model.SheetMeta, 0, len(sheetOrder))
	for _, key := range sheetOrder {
		metas = append(metas, sheets[key].Meta)
	}
	return metas
}

// SheetProblems returns the ordered items of the sheet with the given
// key. ok is false for unknown keys.
func SheetProblems(key string) ([]model.SheetProblemItem, bool) {
	sheet, ok := sheets[key]
	if !ok {
		return nil, false
	}
	items := make([]model.SheetProblemItem, len(sheet.Problems))
	copy(items, sheet.Problems)
	return items, true
}

// Sheet bundles a sheet's metadata with its ordered problem items.
type Sheet struct {
	Meta     model.SheetMeta
	Problems []model.SheetProblemItem
}

// Sheets returns every bundled sheet in declaration order. Used by the
// seeding command.
func Sheets() []Sheet {
	out := make([]Sheet, 0, len(sheetOrder))
	for _, key := range sheetOrder {
		out = append(out, sheets[key])
	}
	return out
}
