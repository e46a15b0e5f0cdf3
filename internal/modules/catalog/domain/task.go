package domain

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// TaskItem is one problem in the reference list. The catalog is an immutable
// reference loaded once per run; completion state lives with the progress
// provider, never here.
type TaskItem struct {
	Slug       string
	Title      string
	Difficulty Difficulty
	Category   string
}

func (d Difficulty) Validate() error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return fmt.Errorf("unsupported difficulty %q", string(d))
	}
}

func (t TaskItem) Validate() error {
	if strings.TrimSpace(t.Slug) == "" {
		return fmt.Errorf("slug is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return t.Difficulty.Validate()
}

// LeetCodeURL returns the canonical problem URL under the given base.
func (t TaskItem) LeetCodeURL(base string) string {
	return strings.TrimSuffix(base, "/") + "/problems/" + t.Slug + "/"
}

// NeetCodeURL returns the guided-solution URL under the given base.
func (t TaskItem) NeetCodeURL(base string) string {
	return strings.TrimSuffix(base, "/") + "/problems/" + t.Slug
}

// Catalog is the ordered reference list. Order is canonical: guided-task
// selection picks the first entry not yet completed.
type Catalog []TaskItem

func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	seen := make(map[string]struct{}, len(c))
	for i, task := range c {
		if err := task.Validate(); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
		if _, ok := seen[task.Slug]; ok {
			return fmt.Errorf("duplicate slug %q", task.Slug)
		}
		seen[task.Slug] = struct{}{}
	}
	return nil
}

func (c Catalog) Get(slug string) (TaskItem, bool) {
	for _, task := range c {
		if task.Slug == slug {
			return task, true
		}
	}
	return TaskItem{}, false
}

// Slugs returns the catalog slugs in canonical order.
func (c Catalog) Slugs() []string {
	out := make([]string, 0, len(c))
	for _, task := range c {
		out = append(out, task.Slug)
	}
	return out
}

// CategoryProgress is a per-category completion tally.
type CategoryProgress struct {
	Category string
	Total    int
	Done     int
}

type Summary struct {
	Total      int
	Done       int
	Categories []CategoryProgress
}

// Summarize tallies completion against the catalog, preserving the order in
// which categories first appear.
func (c Catalog) Summarize(done map[string]bool) Summary {
	summary := Summary{Total: len(c)}
	index := map[string]int{}
	for _, task := range c {
		i, ok := index[task.Category]
		if !ok {
			i = len(summary.Categories)
			index[task.Category] = i
			summary.Categories = append(summary.Categories, CategoryProgress{Category: task.Category})
		}
		summary.Categories[i].Total++
		if done[task.Slug] {
			summary.Categories[i].Done++
			summary.Done++
		}
	}
	return summary
}
