package fallback

import "algoprep/internal/catalog/model"

var sheetOrder = []string{"striver", "babbar"}

var sheets = map[string]Sheet{
	"striver": {
		Meta: model.SheetMeta{
			Key:          "striver",
			Title:        "Striver's A2Z DSA Sheet",
			Author:       "Striver",
			Description:  "Curated progression of DSA topics and problems.",
			Topics:       []string{"array", "string", "linked-list", "stack", "queue", "tree", "graph", "dp"},
			Total:        30,
			ReferenceURL: "https://takeuforward.org/strivers-a2z-dsa-course/strivers-a2z-dsa-course-sheet-2/",
		},
		Problems: []model.SheetProblemItem{
			{ID: "LC-1", Title: "Two Sum", URL: "https://leetcode.com/problems/two-sum/", Topic: "array", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-121", Title: "Best Time to Buy and Sell Stock", URL: "https://leetcode.com/problems/best-time-to-buy-and-sell-stock/", Topic: "array", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-217", Title: "Contains Duplicate", URL: "https://leetcode.com/problems/contains-duplicate/", Topic: "array", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-238", Title: "Product of Array Except Self", URL: "https://leetcode.com/problems/product-of-array-except-self/", Topic: "array", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-20", Title: "Valid Parentheses", URL: "https://leetcode.com/problems/valid-parentheses/", Topic: "stack", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-21", Title: "Merge Two Sorted Lists", URL: "https://leetcode.com/problems/merge-two-sorted-lists/", Topic: "linked-list", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-141", Title: "Linked List Cycle", URL: "https://leetcode.com/problems/linked-list-cycle/", Topic: "linked-list", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-704", Title: "Binary Search", URL: "https://leetcode.com/problems/binary-search/", Topic: "binary-search", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-347", Title: "Top K Frequent Elements", URL: "https://leetcode.com/problems/top-k-frequent-elements/", Topic: "heap", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-70", Title: "Climbing Stairs", URL: "https://leetcode.com/problems/climbing-stairs/", Topic: "dp", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-53", Title: "Maximum Subarray", URL: "https://leetcode.com/problems/maximum-subarray/", Topic: "array", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-125", Title: "Valid Palindrome", URL: "https://leetcode.com/problems/valid-palindrome/", Topic: "string", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-3", Title: "Longest Substring Without Repeating Characters", URL: "https://leetcode.com/problems/longest-substring-without-repeating-characters/", Topic: "string", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-560", Title: "Subarray Sum Equals K", URL: "https://leetcode.com/problems/subarray-sum-equals-k/", Topic: "array", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-15", Title: "3Sum", URL: "https://leetcode.com/problems/3sum/", Topic: "array", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-2", Title: "Add Two Numbers", URL: "https://leetcode.com/problems/add-two-numbers/", Topic: "linked-list", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-206", Title: "Reverse Linked List", URL: "https://leetcode.com/problems/reverse-linked-list/", Topic: "linked-list", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-234", Title: "Palindrome Linked List", URL: "https://leetcode.com/problems/palindrome-linked-list/", Topic: "linked-list", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-94", Title: "Binary Tree Inorder Traversal", URL: "https://leetcode.com/problems/binary-tree-inorder-traversal/", Topic: "tree", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-102", Title: "Binary Tree Level Order Traversal", URL: "https://leetcode.com/problems/binary-tree-level-order-transversal/", Topic: "tree", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-226", Title: "Invert Binary Tree", URL: "https://leetcode.com/problems/invert-binary-tree/", Topic: "tree", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-543", Title: "Diameter of Binary Tree", URL: "https://leetcode.com/problems/diameter-of-binary-tree/", Topic: "tree", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-141", Title: "Linked List Cycle", URL: "https://leetcode.com/problems/linked-list-cycle/", Topic: "linked-list", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-200", Title: "Number of Islands", URL: "https://leetcode.com/problems/number-of-islands/", Topic: "graph", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-207", Title: "Course Schedule", URL: "https://leetcode.com/problems/course-schedule/", Topic: "graph", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-78", Title: "Subsets", URL: "https://leetcode.com/problems/subsets/", Topic: "backtracking", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-46", Title: "Permutations", URL: "https://leetcode.com/problems/permutations/", Topic: "backtracking", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-322", Title: "Coin Change", URL: "https://leetcode.com/problems/coin-change/", Topic: "dp", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-198", Title: "House Robber", URL: "https://leetcode.com/problems/house-robber/", Topic: "dp", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-300", Title: "Longest Increasing Subsequence", URL: "https://leetcode.com/problems/longest-increasing-subsequence/", Topic: "dp", Difficulty: "medium", Source: model.SourceLeetCode},
		},
	},
	"babbar": {
		Meta: model.SheetMeta{
			Key:          "babbar",
			Title:        "Love Babbar's 450 DSA Sheet",
			Author:       "Love Babbar",
			Description:  "450 classic DSA problems across core topics.",
			Topics:       []string{"array", "string", "linked-list", "stack", "queue", "tree", "graph", "search", "dp"},
			Total:        30,
			ReferenceURL: "https://www.codingninjas.com/codestudio/guided-paths/coding-interview-questions",
		},
		Problems: []model.SheetProblemItem{
			{ID: "GFG-rotate-array", Title: "Rotate Array", URL: "https://www.geeksforgeeks.org/array-rotation/", Topic: "array", Difficulty: "easy", Source: model.SourceGFG},
			{ID: "LC-53", Title: "Maximum Subarray", URL: "https://leetcode.com/problems/maximum-subarray/", Topic: "array", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-75", Title: "Sort Colors", URL: "https://leetcode.com/problems/sort-colors/", Topic: "array", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-73", Title: "Set Matrix Zeroes", URL: "https://leetcode.com/problems/set-matrix-zeroes/", Topic: "matrix", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-160", Title: "Intersection of Two Linked Lists", URL: "https://leetcode.com/problems/intersection-of-two-linked-lists/", Topic: "linked-list", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-234", Title: "Palindrome Linked List", URL: "https://leetcode.com/problems/palindrome-linked-list/", Topic: "linked-list", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-94", Title: "Binary Tree Inorder Traversal", URL: "https://leetcode.com/problems/binary-tree-inorder-traversal/", Topic: "tree", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-102", Title: "Binary Tree Level Order Traversal", URL: "https://leetcode.com/problems/binary-tree-level-order-transversal/", Topic: "tree", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "CF-339A", Title: "Helpful Maths", URL: "https://codeforces.com/problemset/problem/339/A", Topic: "strings", Difficulty: "easy", Source: model.SourceCodeforces},
			{ID: "LC-198", Title: "House Robber", URL: "https://leetcode.com/problems/house-robber/", Topic: "dp", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-1", Title: "Two Sum", URL: "https://leetcode.com/problems/two-sum/", Topic: "array", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-2", Title: "Add Two Numbers", URL: "https://leetcode.com/problems/add-two-numbers/", Topic: "linked-list", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-20", Title: "Valid Parentheses", URL: "https://leetcode.com/problems/valid-parentheses/", Topic: "stack", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-121", Title: "Best Time to Buy and Sell Stock", URL: "https://leetcode.com/problems/best-time-to-buy-and-sell-stock/", Topic: "array", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-347", Title: "Top K Frequent Elements", URL: "https://leetcode.com/problems/top-k-frequent-elements/", Topic: "heap", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-238", Title: "Product of Array Except Self", URL: "https://leetcode.com/problems/product-of-array-except-self/", Topic: "array", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-3", Title: "Longest Substring Without Repeating Characters", URL: "https://leetcode.com/problems/longest-substring-without-repeating-characters/", Topic: "string", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-125", Title: "Valid Palindrome", URL: "https://leetcode.com/problems/valid-palindrome/", Topic: "string", Difficulty: "easy", Source: model.SourceLeetCode},
			{ID: "LC-560", Title: "Subarray Sum Equals K", URL: "https://leetcode.com/problems/subarray-sum-equals-k/", Topic: "array", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "CF-282A", Title: "Bit++", URL: "https://codeforces.com/problemset/problem/282/A", Topic: "implementation", Difficulty: "easy", Source: model.SourceCodeforces},
			{ID: "CF-4A", Title: "Watermelon", URL: "https://codeforces.com/problemset/problem/4/A", Topic: "math", Difficulty: "easy", Source: model.SourceCodeforces},
			{ID: "CF-71A", Title: "Way Too Long Words", URL: "https://codeforces.com/problemset/problem/71/A", Topic: "strings", Difficulty: "easy", Source: model.SourceCodeforces},
			{ID: "CF-158A", Title: "Next Round", URL: "https://codeforces.com/problemset/problem/158/A", Topic: "implementation", Difficulty: "easy", Source: model.SourceCodeforces},
			{ID: "LC-200", Title: "Number of Islands", URL: "https://leetcode.com/problems/number-of-islands/", Topic: "graph", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-207", Title: "Course Schedule", URL: "https://leetcode.com/problems/course-schedule/", Topic: "graph", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-78", Title: "Subsets", URL: "https://leetcode.com/problems/subsets/", Topic: "backtracking", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-46", Title: "Permutations", URL: "https://leetcode.com/problems/permutations/", Topic: "backtracking", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-322", Title: "Coin Change", URL: "https://leetcode.com/problems/coin-change/", Topic: "dp", Difficulty: "medium", Source: model.SourceLeetCode},
			{ID: "LC-300", Title: "Longest Increasing Subsequence", URL: "https://leetcode.com/problems/longest-increasing-subsequence/", Topic: "dp", Difficulty: "medium", Source: model.SourceLeetCode},
		},
	},
}
