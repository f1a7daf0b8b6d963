package engine

// AssignmentCost resolves the monetary cost of one resource assignment given
// the referenced resource's cost model.
func AssignmentCost(a Assignment, r Resource) float64 {
	if r.CostModel == CostModelFixed {
		// The unit price is ignored for flat-fee resources.
		return a.FixedPrice
	}
	// hourly and quantity share the same arithmetic; PricePerHour is read as
	// a per-unit price for quantity resources.
	return a.Hours * r.PricePerHour
}
