package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscountAmountDisabledIsZero(t *testing.T) {
	d := Discount{Enabled: false, Kind: Percentage, Value: 50, ApplyOn: OnTaxable}
	require.Equal(t, 0.0, d.Amount(1000, 1220))
}

func TestDiscountAmountPercentageSelectsBase(t *testing.T) {
	onTaxable := Discount{Enabled: true, Kind: Percentage, Value: 10, ApplyOn: OnTaxable}
	onGross := Discount{Enabled: true, Kind: Percentage, Value: 10, ApplyOn: OnWithVAT}

	require.Equal(t, 100.0, onTaxable.Amount(1000, 1220))
	require.Equal(t, 122.0, onGross.Amount(1000, 1220))
}

func TestDiscountAmountFixedIgnoresBase(t *testing.T) {
	d := Discount{Enabled: true, Kind: Fixed, Value: 700, ApplyOn: OnTaxable}
	require.Equal(t, 700.0, d.Amount(500, 610))
	// Not clamped even when it exceeds the base.
	require.Equal(t, 700.0, d.Amount(100, 122))
}

func TestMarginAmount(t *testing.T) {
	pct := Margin{Enabled: true, Kind: Percentage, Value: 15, ApplyOn: MarginAfterDiscount}
	fixed := Margin{Enabled: true, Kind: Fixed, Value: 80, ApplyOn: MarginAfterDiscount}
	off := Margin{Enabled: false, Kind: Percentage, Value: 15}

	require.Equal(t, 150.0, pct.Amount(1000))
	require.Equal(t, 80.0, fixed.Amount(1000))
	require.Equal(t, 0.0, off.Amount(1000))
}

func TestDiscountGrossSplitsProportionally(t *testing.T) {
	// 1000 taxable at 10% VAT, 110 discount on the 1100 gross: a 10% cut on
	// both sides of the split.
	net, vat := discountGross(1000, 10, 110)
	require.InDelta(t, 900.0, net, 1e-9)
	require.InDelta(t, 90.0, vat, 1e-9)
}

func TestDiscountGrossZeroBase(t *testing.T) {
	net, vat := discountGross(0, 22, 50)
	require.Equal(t, -50.0, net)
	require.Equal(t, 0.0, vat)
}

func TestDiscountGrossOverdraw(t *testing.T) {
	// Discount larger than the gross drives both shares negative; no clamp.
	net, vat := discountGross(100, 10, 220)
	require.InDelta(t, -100.0, net, 1e-9)
	require.InDelta(t, -10.0, vat, 1e-9)
}
