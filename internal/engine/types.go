package engine

// CostModel selects how a resource assignment is priced.
type CostModel string

const (
	CostModelHourly   CostModel = "hourly"
	CostModelQuantity CostModel = "quantity"
	CostModelFixed    CostModel = "fixed"
)

func (m CostModel) valid() bool {
	switch m {
	case CostModelHourly, CostModelQuantity, CostModelFixed:
		return true
	}
	return false
}

// AdjustmentKind selects between a percentage and a flat-amount adjustment.
type AdjustmentKind string

const (
	Percentage AdjustmentKind = "percentage"
	Fixed      AdjustmentKind = "fixed"
)

func (k AdjustmentKind) valid() bool {
	return k == Percentage || k == Fixed
}

// DiscountBase selects which amount a discount is computed against.
type DiscountBase string

const (
	// OnTaxable computes the discount against the pre-VAT amount.
	OnTaxable DiscountBase = "taxable"
	// OnWithVAT computes the discount against the VAT-inclusive amount.
	OnWithVAT DiscountBase = "withVat"
)

// MarginBase selects which amount the general margin is computed against.
type MarginBase string

const (
	MarginAfterDiscount  MarginBase = "afterDiscount"
	MarginBeforeDiscount MarginBase = "beforeDiscount"
)

// Resource is a reusable billable unit referenced by assignments. It must not
// be mutated for the duration of a computation.
type Resource struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CostModel    CostModel `json:"costModel"`
	PricePerHour float64   `json:"pricePerHour"`
}

// Catalog maps resource identifiers to resources. Lookups during a
// computation treat it as read-only.
type Catalog map[string]Resource

// Assignment links a resource to an activity with a quantity dimension.
// Hours holds hours or units depending on the resource's cost model;
// FixedPrice is meaningful only for the fixed cost model.
type Assignment struct {
	ResourceID string  `json:"resourceId"`
	Hours      float64 `json:"hours"`
	FixedPrice float64 `json:"fixedPrice"`
}

// Discount is a percentage-or-fixed reduction against a chosen base amount.
// The same policy shape serves activity-level and budget-level discounts.
type Discount struct {
	Enabled bool           `json:"enabled"`
	Kind    AdjustmentKind `json:"kind"`
	Value   float64        `json:"value"`
	ApplyOn DiscountBase   `json:"applyOn"`
}

// Margin is the additive counterpart of Discount, applied once at budget
// level. ApplyOn picks whether the margin base is the total before or after
// the general discount.
type Margin struct {
	Enabled bool           `json:"enabled"`
	Kind    AdjustmentKind `json:"kind"`
	Value   float64        `json:"value"`
	ApplyOn MarginBase     `json:"applyOn"`
}

// Activity is one billable line of a budget: an ordered list of assignments
// plus its own VAT rate and optional discount. The dates are carried for the
// document renderer and never influence pricing.
type Activity struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Assignments []Assignment `json:"assignments"`
	VATRate     float64      `json:"vatRate"`
	Discount    Discount     `json:"discount"`
	StartDate   string       `json:"startDate,omitempty"`
	EndDate     string       `json:"endDate,omitempty"`
}

// Input is the immutable snapshot a computation runs over. The engine never
// retains or mutates it.
type Input struct {
	Resources       Catalog    `json:"resources"`
	Activities      []Activity `json:"activities"`
	GeneralDiscount Discount   `json:"generalDiscount"`
	GeneralMargin   Margin     `json:"generalMargin"`
	Currency        string     `json:"currency"`
}

// ActivityBreakdown is the per-activity slice of the result.
type ActivityBreakdown struct {
	ActivityID      string  `json:"activityId"`
	Name            string  `json:"name"`
	TaxableSubtotal float64 `json:"taxableSubtotal"`
	DiscountAmount  float64 `json:"discountAmount"`
	NetTaxable      float64 `json:"netTaxable"`
	VATAmount       float64 `json:"vatAmount"`
	Total           float64 `json:"total"`
}

// Result groups the full output of a budget computation. All values are
// exact numbers; formatting happens only at presentation boundaries.
type Result struct {
	Currency              string              `json:"currency"`
	Activities            []ActivityBreakdown `json:"activities"`
	TaxableTotal          float64             `json:"taxableTotal"`
	VATTotal              float64             `json:"vatTotal"`
	ActivitiesTotal       float64             `json:"activitiesTotal"`
	GeneralDiscountAmount float64             `json:"generalDiscountAmount"`
	GeneralMarginAmount   float64             `json:"generalMarginAmount"`
	GrandTotal            float64             `json:"grandTotal"`
}
