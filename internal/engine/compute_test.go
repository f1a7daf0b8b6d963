package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func singleActivityInput() Input {
	return Input{
		Currency: "€",
		Resources: Catalog{
			"dev": {ID: "dev", Name: "Sviluppatore", CostModel: CostModelHourly, PricePerHour: 50},
		},
		Activities: []Activity{
			{
				ID:          "a1",
				Name:        "Sviluppo",
				VATRate:     22,
				Assignments: []Assignment{{ResourceID: "dev", Hours: 10}},
			},
		},
	}
}

func TestComputeSingleActivity(t *testing.T) {
	res, err := Compute(singleActivityInput())
	require.NoError(t, err)

	require.Equal(t, 500.0, res.TaxableTotal)
	require.InDelta(t, 110.0, res.VATTotal, 1e-9)
	require.InDelta(t, 610.0, res.ActivitiesTotal, 1e-9)
	require.Zero(t, res.GeneralDiscountAmount)
	require.Zero(t, res.GeneralMarginAmount)
	require.InDelta(t, 610.0, res.GrandTotal, 1e-9)
	require.Len(t, res.Activities, 1)
	require.Equal(t, "€", res.Currency)
}

func TestComputeGeneralDiscountOnTaxableBase(t *testing.T) {
	// The taxable candidate base at budget level is the pre-VAT share of the
	// summed activity totals (610 - 110 = 500), even though VAT is already
	// embedded in the activities total.
	in := singleActivityInput()
	in.GeneralDiscount = Discount{Enabled: true, Kind: Percentage, Value: 10, ApplyOn: OnTaxable}

	res, err := Compute(in)
	require.NoError(t, err)
	require.InDelta(t, 50.0, res.GeneralDiscountAmount, 1e-9)
	require.InDelta(t, 560.0, res.GrandTotal, 1e-9)
}

func TestComputeGeneralDiscountOnGrossBase(t *testing.T) {
	in := singleActivityInput()
	in.GeneralDiscount = Discount{Enabled: true, Kind: Percentage, Value: 10, ApplyOn: OnWithVAT}

	res, err := Compute(in)
	require.NoError(t, err)
	require.InDelta(t, 61.0, res.GeneralDiscountAmount, 1e-9)
	require.InDelta(t, 549.0, res.GrandTotal, 1e-9)
}

func TestComputeMarginBaseSelection(t *testing.T) {
	in := singleActivityInput()
	in.Activities[0].VATRate = 0 // activities total 500
	in.GeneralDiscount = Discount{Enabled: true, Kind: Fixed, Value: 100, ApplyOn: OnTaxable}

	after := in
	after.GeneralMargin = Margin{Enabled: true, Kind: Percentage, Value: 10, ApplyOn: MarginAfterDiscount}
	before := in
	before.GeneralMargin = Margin{Enabled: true, Kind: Percentage, Value: 10, ApplyOn: MarginBeforeDiscount}

	resAfter, err := Compute(after)
	require.NoError(t, err)
	require.InDelta(t, 40.0, resAfter.GeneralMarginAmount, 1e-9)
	require.InDelta(t, 440.0, resAfter.GrandTotal, 1e-9)

	resBefore, err := Compute(before)
	require.NoError(t, err)
	require.InDelta(t, 50.0, resBefore.GeneralMarginAmount, 1e-9)
	require.InDelta(t, 450.0, resBefore.GrandTotal, 1e-9)
}

func TestComputeDisabledPoliciesEqualAbsentOnes(t *testing.T) {
	plain := singleActivityInput()

	configured := singleActivityInput()
	configured.GeneralDiscount = Discount{Enabled: false, Kind: Percentage, Value: 40, ApplyOn: OnWithVAT}
	configured.GeneralMargin = Margin{Enabled: false, Kind: Fixed, Value: 999, ApplyOn: MarginAfterDiscount}
	configured.Activities[0].Discount = Discount{Enabled: false, Kind: Fixed, Value: 123, ApplyOn: OnTaxable}

	a, err := Compute(plain)
	require.NoError(t, err)
	b, err := Compute(configured)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestComputeIsDeterministic(t *testing.T) {
	in := singleActivityInput()
	in.GeneralDiscount = Discount{Enabled: true, Kind: Percentage, Value: 7.5, ApplyOn: OnWithVAT}
	in.GeneralMargin = Margin{Enabled: true, Kind: Percentage, Value: 12, ApplyOn: MarginAfterDiscount}

	first, err := Compute(in)
	require.NoError(t, err)
	second, err := Compute(in)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestComputeEmptyBudgetIsZero(t *testing.T) {
	in := Input{
		Currency:        "€",
		Resources:       Catalog{},
		GeneralDiscount: Discount{Enabled: true, Kind: Fixed, Value: 300, ApplyOn: OnTaxable},
		GeneralMargin:   Margin{Enabled: true, Kind: Fixed, Value: 120, ApplyOn: MarginAfterDiscount},
	}

	res, err := Compute(in)
	require.NoError(t, err)
	require.Zero(t, res.GrandTotal)
	require.Zero(t, res.GeneralDiscountAmount)
	require.Zero(t, res.GeneralMarginAmount)
	require.Empty(t, res.Activities)
}

func TestComputeMultipleActivitiesWithDifferentVATRates(t *testing.T) {
	in := Input{
		Currency: "€",
		Resources: Catalog{
			"dev":   {ID: "dev", CostModel: CostModelHourly, PricePerHour: 50},
			"audit": {ID: "audit", CostModel: CostModelFixed},
		},
		Activities: []Activity{
			{ID: "a1", VATRate: 22, Assignments: []Assignment{{ResourceID: "dev", Hours: 10}}},
			{ID: "a2", VATRate: 4, Assignments: []Assignment{{ResourceID: "audit", FixedPrice: 1000}}},
		},
	}

	res, err := Compute(in)
	require.NoError(t, err)
	require.Equal(t, 1500.0, res.TaxableTotal)
	require.InDelta(t, 150.0, res.VATTotal, 1e-9)
	require.InDelta(t, 1650.0, res.GrandTotal, 1e-9)
}

func TestComputeAbortsOnUnresolvedResource(t *testing.T) {
	in := singleActivityInput()
	in.Activities = append(in.Activities, Activity{
		ID:          "a2",
		Assignments: []Assignment{{ResourceID: "ghost", Hours: 1}},
	})

	_, err := Compute(in)
	var unresolved *UnresolvedResourceError
	require.ErrorAs(t, err, &unresolved)
}
