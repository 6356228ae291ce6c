package shipping

// Calculator applies policies in order, starting from zero.
type Calculator struct {
	policies []Policy
}

// Step is the running total after one policy.
type Step struct {
	Policy string
	Total  Money
}

// NewCalculatorWithPolicies returns a calculator that applies policies in the given order.
func NewCalculatorWithPolicies(policies ...Policy) *Calculator {
	return &Calculator{policies: policies}
}

// NewLegacyCalculator returns a calculator where only International weekend shipments are surcharged.
func NewLegacyCalculator(table RateTable) *Calculator {
	return NewCalculatorWithPolicies(
		BaseRate{Rates: table.BaseRates},
		WeightTier{Tiers: table.WeightTiers, Overweight: table.OverweightSurcharge},
		RegionMultiplier{InternationalFactor: table.InternationalFactor, LegacyWeekendFactor: table.WeekendFactor},
	)
}

// NewCalculator returns a calculator where every weekend shipment is surcharged.
func NewCalculator(table RateTable) *Calculator {
	return NewCalculatorWithPolicies(
		BaseRate{Rates: table.BaseRates},
		WeightTier{Tiers: table.WeightTiers, Overweight: table.OverweightSurcharge},
		RegionMultiplier{InternationalFactor: table.InternationalFactor},
		WeekendSurcharge{Factor: table.WeekendFactor},
	)
}

// Calculate returns the total for r.
func (c *Calculator) Calculate(r Request) Money {
	var total Money
	for _, p := range c.policies {
		total = p.Apply(total, r)
	}
	return total
}

// Breakdown returns the running total after each policy. The last step's Total equals Calculate(r).
func (c *Calculator) Breakdown(r Request) []Step {
	steps := make([]Step, 0, len(c.policies))
	var total Money
	for _, p := range c.policies {
		total = p.Apply(total, r)
		steps = append(steps, Step{Policy: p.Name(), Total: total})
	}
	return steps
}
