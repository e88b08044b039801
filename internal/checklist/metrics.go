package checklist

// Metrics are the aggregate figures shown in the header. They are derived
// from the sequence on every call and never stored.
type Metrics struct {
	Completed  int
	Percentage float64 // 0..100
	Revenue    int
	Remaining  int
}

// Compute derives Metrics from a completion sequence. Entries past
// TotalItems are ignored.
func Compute(items []bool) Metrics {
	if len(items) > TotalItems {
		items = items[:TotalItems]
	}
	done := countTrue(items)
	return Metrics{
		Completed:  done,
		Percentage: float64(done*100) / TotalItems,
		Revenue:    done * UnitPrice,
		Remaining:  TotalItems - done,
	}
}

// Milestone is a fixed marker on the progress bar.
type Milestone struct {
	Position int // completed count the marker sits at
	Label    string
}

var milestones = []Milestone{
	{Position: 250, Label: "25%"},
	{Position: 500, Label: "50%"},
	{Position: 750, Label: "75%"},
	{Position: 1000, Label: "100%"},
}

// Milestones returns the static marker table in ascending order.
func Milestones() []Milestone {
	out := make([]Milestone, len(milestones))
	copy(out, milestones)
	return out
}

// Fraction is the marker's relative position along the bar, in (0, 1].
func (m Milestone) Fraction() float64 {
	return float64(m.Position) / TotalItems
}

// Reached reports whether the completed count has passed this marker.
func (m Milestone) Reached(completed int) bool {
	return completed >= m.Position
}
