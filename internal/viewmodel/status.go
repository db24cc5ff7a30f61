package viewmodel

// StatusCount is the tally of one status bucket.
type StatusCount struct {
	Status  string
	Total   int // rows in the full set
	Visible int // rows in the filtered view
}

// DiscoverStatuses returns the distinct status labels of rows in order of
// first appearance. The model calls it once at load; labels that appear
// later are not picked up.
func DiscoverStatuses(rows []Row) []string {
	seen := make(map[string]bool)
	var statuses []string
	for _, row := range rows {
		if !seen[row.Status] {
			seen[row.Status] = true
			statuses = append(statuses, row.Status)
		}
	}
	return statuses
}

// CountByStatus tallies rows per status label.
func CountByStatus(rows []Row) map[string]int {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Status]++
	}
	return counts
}

// Aggregate builds the ordered bucket list for the given statuses. Rows
// whose status is not a bucket are not counted.
func Aggregate(statuses []string, all, filtered []Row) []StatusCount {
	total := CountByStatus(all)
	visible := CountByStatus(filtered)

	out := make([]StatusCount, len(statuses))
	for i, s := range statuses {
		out[i] = StatusCount{Status: s, Total: total[s], Visible: visible[s]}
	}
	return out
}

// VisibleTotal sums the visible counts.
func VisibleTotal(counts []StatusCount) int {
	n := 0
	for _, c := range counts {
		n += c.Visible
	}
	return n
}
