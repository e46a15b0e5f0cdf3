package dto

// GuidedTaskOutput points at the next problem a blocked user should solve.
type GuidedTaskOutput struct {
	Slug        string
	Title       string
	LeetCodeURL string
	NeetCodeURL string
}

// BlockStatusOutput is the mechanism's current state, read without
// evaluating any goal.
type BlockStatusOutput struct {
	Active  bool
	Phase   string
	Domains []string
}

// DecisionOutput is one evaluation's result for handlers and the UI.
type DecisionOutput struct {
	Phase          string
	ShouldBlock    bool
	Threshold      int
	Actual         int
	Delta          int
	Today          int
	Yesterday      int
	BlockActive    bool // mechanism state after reconciliation
	BlockChanged   bool
	GuidedTask     *GuidedTaskOutput
	CompletedSlugs []string
}
