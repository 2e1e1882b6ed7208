package library

// FinePolicy maps a borrow duration in days to a fine amount. Calling
// Calculate(1) doubles as the per-day rate shown to the user.
type FinePolicy interface {
	Calculate(days int) int
}

// SimpleFine charges a flat rate per borrowed day.
type SimpleFine struct {
	Rate int
}

func (p SimpleFine) Calculate(days int) int { return p.Rate * days }
