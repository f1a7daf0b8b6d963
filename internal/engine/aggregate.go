package engine

// AggregateActivity computes the breakdown of one activity: assignment costs
// are summed first, the activity discount is applied against its configured
// base, then VAT completes the line total.
func AggregateActivity(act Activity, catalog Catalog) (ActivityBreakdown, error) {
	bd := ActivityBreakdown{ActivityID: act.ID, Name: act.Name}
	if len(act.Assignments) == 0 {
		return bd, nil
	}

	for _, a := range act.Assignments {
		res, ok := catalog[a.ResourceID]
		if !ok {
			return ActivityBreakdown{}, &UnresolvedResourceError{ResourceID: a.ResourceID, ActivityID: act.ID}
		}
		bd.TaxableSubtotal += AssignmentCost(a, res)
	}

	gross := bd.TaxableSubtotal * (1 + act.VATRate/100)
	bd.DiscountAmount = act.Discount.Amount(bd.TaxableSubtotal, gross)

	if act.Discount.Enabled && act.Discount.ApplyOn == OnWithVAT {
		bd.NetTaxable, bd.VATAmount = discountGross(bd.TaxableSubtotal, act.VATRate, bd.DiscountAmount)
	} else {
		bd.NetTaxable = bd.TaxableSubtotal - bd.DiscountAmount
		bd.VATAmount = bd.NetTaxable * act.VATRate / 100
	}

	bd.Total = bd.NetTaxable + bd.VATAmount
	return bd, nil
}
