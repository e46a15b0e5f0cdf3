package domain_test

import (
	"testing"

	"grindlock/internal/modules/catalog/domain"
)

func sample() domain.Catalog {
	return domain.Catalog{
		{Slug: "two-sum", Title: "Two Sum", Difficulty: domain.DifficultyEasy, Category: "Array"},
		{Slug: "3sum", Title: "3Sum", Difficulty: domain.DifficultyMedium, Category: "Array"},
		{Slug: "valid-parentheses", Title: "Valid Parentheses", Difficulty: domain.DifficultyEasy, Category: "String"},
	}
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()
	if err := sample().Validate(); err != nil {
		t.Fatalf("sample catalog should be valid: %v", err)
	}
	if err := (domain.Catalog{}).Validate(); err == nil {
		t.Fatalf("empty catalog should fail")
	}
	dup := append(sample(), domain.TaskItem{Slug: "two-sum", Title: "Two Sum", Difficulty: domain.DifficultyEasy})
	if err := dup.Validate(); err == nil {
		t.Fatalf("duplicate slug should fail")
	}
	badDifficulty := domain.Catalog{{Slug: "x", Title: "X", Difficulty: "Impossible"}}
	if err := badDifficulty.Validate(); err == nil {
		t.Fatalf("unknown difficulty should fail")
	}
}

func TestCatalogGet(t *testing.T) {
	t.Parallel()
	c := sample()
	task, ok := c.Get("3sum")
	if !ok || task.Title != "3Sum" {
		t.Fatalf("get returned %+v ok=%t", task, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("missing slug should not be found")
	}
}

func TestTaskURLs(t *testing.T) {
	t.Parallel()
	task := domain.TaskItem{Slug: "two-sum", Title: "Two Sum", Difficulty: domain.DifficultyEasy}
	if got := task.LeetCodeURL("https://leetcode.com/"); got != "https://leetcode.com/problems/two-sum/" {
		t.Fatalf("leetcode url: %s", got)
	}
	if got := task.NeetCodeURL("https://neetcode.io"); got != "https://neetcode.io/problems/two-sum" {
		t.Fatalf("neetcode url: %s", got)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	summary := sample().Summarize(map[string]bool{"two-sum": true, "valid-parentheses": true})
	if summary.Total != 3 || summary.Done != 2 {
		t.Fatalf("totals: %+v", summary)
	}
	if len(summary.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(summary.Categories))
	}
	if summary.Categories[0].Category != "Array" || summary.Categories[0].Done != 1 || summary.Categories[0].Total != 2 {
		t.Fatalf("array category: %+v", summary.Categories[0])
	}
}
