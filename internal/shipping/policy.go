package shipping

// Policy adjusts a running shipping total for a request.
type Policy interface {
	Name() string
	Apply(current Money, r Request) Money
}

// BaseRate adds the rate for the request's speed. Speeds missing from Rates use the Standard rate.
type BaseRate struct {
	Rates map[Speed]Money
}

func (BaseRate) Name() string { return "base rate" }

func (p BaseRate) Apply(current Money, r Request) Money {
	rate, ok := p.Rates[r.Speed]
	if !ok {
		rate = p.Rates[Standard]
	}
	return current + rate
}

// WeightTier adds the surcharge of the first tier whose UpToKg is >= the request's weight, or Overweight if the weight exceeds every tier.
type WeightTier struct {
	Tiers      []Tier
	Overweight Money
}

// Tier is an inclusive weight bound and its surcharge.
type Tier struct {
	UpToKg    float64
	Surcharge Money
}

func (WeightTier) Name() string { return "weight tier" }

func (p WeightTier) Apply(current Money, r Request) Money {
	for _, t := range p.Tiers {
		if r.WeightKg <= t.UpToKg {
			return current + t.Surcharge
		}
	}
	return current + p.Overweight
}

// RegionMultiplier multiplies International shipments by InternationalFactor.
//
// If LegacyWeekendFactor is non-zero, International shipments on a weekend are additionally multiplied by it. Domestic shipments never get the weekend factor
// here; use WeekendSurcharge for that.
type RegionMultiplier struct {
	InternationalFactor Factor
	LegacyWeekendFactor Factor
}

func (RegionMultiplier) Name() string { return "region multiplier" }

func (p RegionMultiplier) Apply(current Money, r Request) Money {
	if r.Region != International {
		return current
	}
	total := current.Times(p.InternationalFactor)
	if p.LegacyWeekendFactor != 0 && r.OnWeekend() {
		total = total.Times(p.LegacyWeekendFactor)
	}
	return total
}

// WeekendSurcharge multiplies any shipment on a Saturday or Sunday by Factor.
type WeekendSurcharge struct {
	Factor Factor
}

func (WeekendSurcharge) Name() string { return "weekend surcharge" }

func (p WeekendSurcharge) Apply(current Money, r Request) Money {
	if !r.OnWeekend() {
		return current
	}
	return current.Times(p.Factor)
}
