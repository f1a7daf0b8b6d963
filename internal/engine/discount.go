package engine

// Amount returns the discount to subtract given the two candidate bases.
// Disabled policies are a no-op. Fixed amounts are not scaled by the base and
// are deliberately not clamped to it: a fixed discount larger than its base
// drives the net amount negative.
func (d Discount) Amount(taxableBase, grossBase float64) float64 {
	if !d.Enabled {
		return 0
	}
	base := taxableBase
	if d.ApplyOn == OnWithVAT {
		base = grossBase
	}
	if d.Kind == Percentage {
		return base * d.Value / 100
	}
	return d.Value
}

// Amount returns the margin to add on top of the supplied base. Same
// percentage/fixed selection as Discount, additive instead of subtractive.
func (m Margin) Amount(base float64) float64 {
	if !m.Enabled {
		return 0
	}
	if m.Kind == Percentage {
		return base * m.Value / 100
	}
	return m.Value
}

// discountGross subtracts a discount that was computed on the VAT-inclusive
// amount and derives the resulting net taxable / VAT split proportionally
// from the discount ratio. VAT is computed once, on the undiscounted taxable
// amount; it is never compounded on an already-taxed figure.
func discountGross(taxable, vatRate, discount float64) (netTaxable, vatAmount float64) {
	gross := taxable * (1 + vatRate/100)
	if gross == 0 {
		// Nothing to split: the whole discount lands on the taxable side.
		return taxable - discount, 0
	}
	ratio := (gross - discount) / gross
	return taxable * ratio, taxable * (vatRate / 100) * ratio
}
