package task

import "sort"

// SortCanonical sorts tasks in place into the canonical list order:
//  1. incomplete tasks before completed tasks,
//  2. ascending due date (calendar-day comparison),
//  3. among equal due dates, most recently created first.
//
// The sort is stable so equal elements keep their load order.
func SortCanonical(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if a.Done != b.Done {
			return !a.Done
		}

		da, db := a.DueDate.Normalized(), b.DueDate.Normalized()
		if !da.Equal(db) {
			return da.Before(db)
		}

		return a.CreatedAt.After(b.CreatedAt)
	})
}

// Sorted returns a canonically ordered copy, leaving the input untouched.
func Sorted(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	SortCanonical(out)
	return out
}
