package engine

import "sort"

// Validate checks the semantic invariants the engine enforces on its input:
// known enum tags, non-negative quantities, prices, VAT rates and policy
// values. Percentage values above 100 are accepted; keeping them in range is
// the caller's responsibility.
func Validate(in Input) error {
	ids := make([]string, 0, len(in.Resources))
	for id := range in.Resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		r := in.Resources[id]
		if !r.CostModel.valid() {
			return invalidf("resource %q: unknown cost model %q", id, r.CostModel)
		}
		if r.PricePerHour < 0 {
			return invalidf("resource %q: negative unit price %v", id, r.PricePerHour)
		}
	}

	for _, act := range in.Activities {
		if act.VATRate < 0 {
			return invalidf("activity %q: negative VAT rate %v", act.ID, act.VATRate)
		}
		if err := validateDiscount(act.Discount, "activity "+act.ID+" discount"); err != nil {
			return err
		}
		for _, a := range act.Assignments {
			if a.Hours < 0 {
				return invalidf("activity %q: negative hours/quantity %v for resource %q", act.ID, a.Hours, a.ResourceID)
			}
			if a.FixedPrice < 0 {
				return invalidf("activity %q: negative fixed price %v for resource %q", act.ID, a.FixedPrice, a.ResourceID)
			}
		}
	}

	if err := validateDiscount(in.GeneralDiscount, "general discount"); err != nil {
		return err
	}
	if in.GeneralMargin.Enabled {
		if !in.GeneralMargin.Kind.valid() {
			return invalidf("general margin: unknown kind %q", in.GeneralMargin.Kind)
		}
		if in.GeneralMargin.ApplyOn != MarginAfterDiscount && in.GeneralMargin.ApplyOn != MarginBeforeDiscount {
			return invalidf("general margin: unknown base %q", in.GeneralMargin.ApplyOn)
		}
		if in.GeneralMargin.Value < 0 {
			return invalidf("general margin: negative value %v", in.GeneralMargin.Value)
		}
	}

	return nil
}

func validateDiscount(d Discount, scope string) error {
	if !d.Enabled {
		return nil
	}
	if !d.Kind.valid() {
		return invalidf("%s: unknown kind %q", scope, d.Kind)
	}
	if d.ApplyOn != OnTaxable && d.ApplyOn != OnWithVAT {
		return invalidf("%s: unknown base %q", scope, d.ApplyOn)
	}
	if d.Value < 0 {
		return invalidf("%s: negative value %v", scope, d.Value)
	}
	return nil
}
