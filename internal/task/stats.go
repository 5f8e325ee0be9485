package task

import "time"

// EmptyDueDisplay is shown when there is no task to take a due date from.
const EmptyDueDisplay = "—"

// Stats holds the aggregate numbers displayed above the task list.
// They are computed from the full, unfiltered collection.
type Stats struct {
	Total      int
	Completed  int
	Overdue    int
	NearestDue string
}

// ComputeStats derives statistics from a canonically sorted collection.
// NearestDue is the due date of the first element in canonical order (the
// earliest incomplete task when any exist), rendered with the given layout.
func ComputeStats(sorted []Task, now time.Time, layout string) Stats {
	s := Stats{
		Total:      len(sorted),
		NearestDue: EmptyDueDisplay,
	}

	for _, t := range sorted {
		if t.Done {
			s.Completed++
		}
		if t.Overdue(now) {
			s.Overdue++
		}
	}

	if len(sorted) > 0 && !sorted[0].DueDate.IsZero() {
		s.NearestDue = sorted[0].DueDate.Format(layout)
	}

	return s
}
