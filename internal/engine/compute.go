// Package engine implements the budget pricing computation: per-assignment
// resource costs, per-activity aggregation with discount and VAT, and the
// budget-wide discount/margin roll-up. Every entry point is a pure function
// of its inputs; the package performs no I/O and keeps no state between
// calls, so identical inputs always produce identical results.
package engine

// Compute runs the full budget calculation in a fixed order: every activity
// is aggregated, the general discount is applied against the summed activity
// totals, then the general margin is added on its configured base. Any error
// aborts the whole computation; partial results are never returned.
func Compute(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	res := Result{
		Currency:   in.Currency,
		Activities: make([]ActivityBreakdown, 0, len(in.Activities)),
	}
	if len(in.Activities) == 0 {
		// An empty budget totals zero no matter how discounts, margin or VAT
		// are configured.
		return res, nil
	}

	for _, act := range in.Activities {
		bd, err := AggregateActivity(act, in.Resources)
		if err != nil {
			return Result{}, err
		}
		res.Activities = append(res.Activities, bd)
		res.TaxableTotal += bd.TaxableSubtotal
		res.VATTotal += bd.VATAmount
		res.ActivitiesTotal += bd.Total
	}

	// The taxable candidate base at budget level is the pre-VAT share of the
	// summed activity totals.
	netTaxable := res.ActivitiesTotal - res.VATTotal
	res.GeneralDiscountAmount = in.GeneralDiscount.Amount(netTaxable, res.ActivitiesTotal)
	afterDiscount := res.ActivitiesTotal - res.GeneralDiscountAmount

	marginBase := afterDiscount
	if in.GeneralMargin.ApplyOn == MarginBeforeDiscount {
		marginBase = res.ActivitiesTotal
	}
	res.GeneralMarginAmount = in.GeneralMargin.Amount(marginBase)

	res.GrandTotal = afterDiscount + res.GeneralMarginAmount
	return res, nil
}
