package service

import "algoprep/internal/catalog/model"

// Static enumerations served by the meta endpoints. These mirror the
// filter values the providers accept.

var dsaTopics = []string{
	"array", "string", "hash-table", "dynamic-programming", "math",
	"greedy", "sorting", "depth-first-search", "breadth-first-search",
	"tree", "binary-search", "matrix", "two-pointers", "bit-manipulation",
	"stack", "heap", "graph", "backtracking", "sliding-window",
	"union-find", "trie", "recursion", "divide-and-conquer",
}

var dsaDifficulties = []string{
	model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard,
}

var cpTopics = []string{
	"implementation", "math", "greedy", "constructive algorithms",
	"dp", "graphs", "trees", "number theory", "combinatorics",
	"geometry", "strings", "data structures", "sortings",
	"binary search", "brute force", "two pointers", "bitmasks",
	"dfs and similar", "shortest paths", "hashing", "games",
	"flows", "dsu", "divide and conquer", "probabilities",
}

var cpRatingRanges = []model.RatingRange{
	{Min: 800, Max: 1200, Label: "Beginner"},
	{Min: 1200, Max: 1600, Label: "Intermediate"},
	{Min: 1600, Max: 2000, Label: "Advanced"},
	{Min: 2000, Max: 2400, Label: "Expert"},
	{Min: 2400, Max: 3000, Label: "Master"},
}

// DSATopics returns the supported catalog topic slugs.
func (s *CatalogService) DSATopics() []string {
	return append([]string(nil), dsaTopics...)
}

// DSADifficulties returns the supported difficulty labels.
func (s *CatalogService) DSADifficulties() []string {
	return append([]string(nil), dsaDifficulties...)
}

// CPTopics returns the supported contest-judge tags.
func (s *CatalogService) CPTopics() []string {
	return append([]string(nil), cpTopics...)
}

// CPRatingRanges returns the labeled rating bands.
func (s *CatalogService) CPRatingRanges() []model.RatingRange {
	return append([]model.RatingRange(nil), cpRatingRanges...)
}
