package dto

type TaskOutput struct {
	Index       int
	Slug        string
	Title       string
	Difficulty  string
	Category    string
	LeetCodeURL string
	NeetCodeURL string
}

type CategoryOutput struct {
	Category string
	Total    int
	Done     int
}

type SummaryOutput struct {
	Total      int
	Done       int
	Categories []CategoryOutput
}
