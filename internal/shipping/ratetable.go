package shipping

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RateTable holds the numbers the policies use.
type RateTable struct {
	BaseRates           map[Speed]Money
	WeightTiers         []Tier // Ascending by UpToKg.
	OverweightSurcharge Money
	InternationalFactor Factor
	WeekendFactor       Factor
}

// DefaultRateTable returns the built-in rates: 5/10/20 by speed, +0 up to 1kg, +3 up to 5kg, +7 above, x1.5 International, x1.10 on weekends.
func DefaultRateTable() RateTable {
	return RateTable{
		BaseRates: map[Speed]Money{
			Standard:  500,
			Express:   1000,
			Overnight: 2000,
		},
		WeightTiers: []Tier{
			{UpToKg: 1, Surcharge: 0},
			{UpToKg: 5, Surcharge: 300},
		},
		OverweightSurcharge: 700,
		InternationalFactor: 15000,
		WeekendFactor:       11000,
	}
}

// Validate returns an error describing every problem with t.
func (t RateTable) Validate() error {
	var errs []error
	for speed := range speedNames {
		rate, ok := t.BaseRates[speed]
		if !ok {
			errs = append(errs, fmt.Errorf("base rate for %s is missing", speed))
		} else if rate < 0 {
			errs = append(errs, fmt.Errorf("base rate for %s is negative", speed))
		}
	}
	for i, tier := range t.WeightTiers {
		if i > 0 && tier.UpToKg <= t.WeightTiers[i-1].UpToKg {
			errs = append(errs, fmt.Errorf("weight tier %d: up_to_kg %g is not above the previous tier", i, tier.UpToKg))
		}
		if tier.Surcharge < 0 {
			errs = append(errs, fmt.Errorf("weight tier %d: surcharge is negative", i))
		}
	}
	if t.OverweightSurcharge < 0 {
		errs = append(errs, errors.New("overweight surcharge is negative"))
	}
	if t.InternationalFactor <= 0 {
		errs = append(errs, errors.New("international factor must be positive"))
	}
	if t.WeekendFactor <= 0 {
		errs = append(errs, errors.New("weekend factor must be positive"))
	}
	return errors.Join(errs...)
}

type rateTableFile struct {
	BaseRates   map[string]float64 `yaml:"base_rates"`
	WeightTiers []struct {
		UpToKg    float64 `yaml:"up_to_kg"`
		Surcharge float64 `yaml:"surcharge"`
	} `yaml:"weight_tiers"`
	OverweightSurcharge float64 `yaml:"overweight_surcharge"`
	InternationalFactor float64 `yaml:"international_factor"`
	WeekendFactor       float64 `yaml:"weekend_factor"`
}

// LoadRateTable decodes a YAML rate table and validates it. Unknown keys are errors. Example:
//
//	base_rates: {standard: 5, express: 10, overnight: 20}
//	weight_tiers:
//	  - {up_to_kg: 1, surcharge: 0}
//	  - {up_to_kg: 5, surcharge: 3}
//	overweight_surcharge: 7
//	international_factor: 1.5
//	weekend_factor: 1.1
func LoadRateTable(r io.Reader) (RateTable, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f rateTableFile
	if err := dec.Decode(&f); err != nil {
		return RateTable{}, fmt.Errorf("decode rate table: %w", err)
	}

	t := RateTable{
		BaseRates:           make(map[Speed]Money, len(f.BaseRates)),
		OverweightSurcharge: MoneyFromFloat(f.OverweightSurcharge),
		InternationalFactor: FactorFromFloat(f.InternationalFactor),
		WeekendFactor:       FactorFromFloat(f.WeekendFactor),
	}
	for name, rate := range f.BaseRates {
		speed, err := ParseSpeed(strings.TrimSpace(name))
		if err != nil {
			return RateTable{}, fmt.Errorf("base_rates: %w", err)
		}
		t.BaseRates[speed] = MoneyFromFloat(rate)
	}
	for _, tier := range f.WeightTiers {
		t.WeightTiers = append(t.WeightTiers, Tier{UpToKg: tier.UpToKg, Surcharge: MoneyFromFloat(tier.Surcharge)})
	}

	if err := t.Validate(); err != nil {
		return RateTable{}, fmt.Errorf("invalid rate table: %w", err)
	}
	return t, nil
}

// LoadRateTableFile is LoadRateTable on the file at path. An empty path returns DefaultRateTable().
func LoadRateTableFile(path string) (RateTable, error) {
	if path == "" {
		return DefaultRateTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return RateTable{}, fmt.Errorf("open rate table: %w", err)
	}
	defer f.Close()
	return LoadRateTable(f)
}
