package domain

// Task is the enforce-side view of a catalog problem: just enough to guide
// the user to the next thing to solve.
type Task struct {
	Slug        string
	Title       string
	LeetCodeURL string
	NeetCodeURL string
}

// NextIncomplete returns the first task in canonical order whose slug is
// not in done. Selection is deterministic so a blocked user is always
// pointed at the same problem until it is solved.
func NextIncomplete(tasks []Task, done map[string]bool) (Task, bool) {
	for _, task := range tasks {
		if !done[task.Slug] {
			return task, true
		}
	}
	return Task{}, false
}
