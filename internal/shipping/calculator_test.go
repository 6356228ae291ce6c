package shipping

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLegacyCalculator(t *testing.T) {
	c := NewLegacyCalculator(DefaultRateTable())

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "international weekend applies surcharge",
			req:  Request{Speed: Express, Region: International, WeightKg: 3, ShipDate: date(2026, time.January, 10)},
			want: "21.45",
		},
		{
			name: "international weekday has no surcharge",
			req:  Request{Speed: Express, Region: International, WeightKg: 3, ShipDate: date(2026, time.January, 6)},
			want: "19.50",
		},
		{
			name: "domestic weekend has no surcharge",
			req:  Request{Speed: Standard, Region: Domestic, WeightKg: 0.5, ShipDate: date(2026, time.January, 11)},
			want: "5.00",
		},
		{
			name: "overweight overnight",
			req:  Request{Speed: Overnight, Region: Domestic, WeightKg: 12, ShipDate: date(2026, time.January, 6)},
			want: "27.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Calculate(tt.req).String())
		})
	}
}

func TestCalculator_WeekendSurchargeForAllShipments(t *testing.T) {
	c := NewCalculator(DefaultRateTable())

	domesticWeekend := Request{Speed: Standard, Region: Domestic, WeightKg: 0.5, ShipDate: date(2026, time.January, 11)}
	assert.Equal(t, "5.50", c.Calculate(domesticWeekend).String())

	intlWeekend := Request{Speed: Express, Region: International, WeightKg: 3, ShipDate: date(2026, time.January, 10)}
	assert.Equal(t, "21.45", c.Calculate(intlWeekend).String())

	intlWeekday := Request{Speed: Express, Region: International, WeightKg: 3, ShipDate: date(2026, time.January, 6)}
	assert.Equal(t, "19.50", c.Calculate(intlWeekday).String())
}

func TestBreakdown(t *testing.T) {
	c := NewCalculator(DefaultRateTable())
	req := Request{Speed: Express, Region: International, WeightKg: 3, ShipDate: date(2026, time.January, 10)}

	steps := c.Breakdown(req)
	assert.Equal(t, []Step{
		{Policy: "base rate", Total: 1000},
		{Policy: "weight tier", Total: 1300},
		{Policy: "region multiplier", Total: 1950},
		{Policy: "weekend surcharge", Total: 2145},
	}, steps)
	assert.Equal(t, c.Calculate(req), steps[len(steps)-1].Total)
}

func TestBaseRate_UnknownSpeedUsesStandard(t *testing.T) {
	p := BaseRate{Rates: DefaultRateTable().BaseRates}
	assert.Equal(t, Money(500), p.Apply(0, Request{Speed: Speed(42)}))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "21.45", Money(2145).String())
	assert.Equal(t, "-0.05", Money(-5).String())

	// Ties round to even cents.
	assert.Equal(t, Money(2), Money(5).Times(FactorFromFloat(0.5)))
	assert.Equal(t, Money(8), Money(15).Times(FactorFromFloat(0.5)))
	assert.Equal(t, Money(-2), Money(-5).Times(FactorFromFloat(0.5)))
	assert.Equal(t, Money(-8), Money(-15).Times(FactorFromFloat(0.5)))
	assert.Equal(t, Money(1001), Money(910).Times(FactorFromFloat(1.1)))

	// Parsing rounds ties the same way.
	assert.Equal(t, Money(12), MoneyFromFloat(0.125))
	assert.Equal(t, Money(38), MoneyFromFloat(0.375))
	assert.Equal(t, Money(-12), MoneyFromFloat(-0.125))
}

func TestParse(t *testing.T) {
	s, err := ParseSpeed("Express")
	require.NoError(t, err)
	assert.Equal(t, Express, s)

	_, err = ParseSpeed("teleport")
	assert.ErrorIs(t, err, ErrUnknownSpeed)

	r, err := ParseRegion("INTERNATIONAL")
	require.NoError(t, err)
	assert.Equal(t, International, r)

	_, err = ParseRegion("mars")
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestLoadRateTable(t *testing.T) {
	src := `
base_rates: {standard: 5, express: 10, overnight: 20}
weight_tiers:
  - {up_to_kg: 1, surcharge: 0}
  - {up_to_kg: 5, surcharge: 3}
overweight_surcharge: 7
international_factor: 1.5
weekend_factor: 1.1
`
	table, err := LoadRateTable(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, DefaultRateTable(), table)
}

func TestLoadRateTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "unknown key",
			src:     "base_rate: {}\n",
			wantErr: "decode rate table",
		},
		{
			name:    "unknown speed",
			src:     "base_rates: {warp: 1}\n",
			wantErr: "unknown shipping speed",
		},
		{
			name:    "missing speed and factors",
			src:     "base_rates: {standard: 5, express: 10}\n",
			wantErr: "base rate for overnight is missing",
		},
		{
			name: "unsorted tiers",
			src: `
base_rates: {standard: 5, express: 10, overnight: 20}
weight_tiers: [{up_to_kg: 5, surcharge: 3}, {up_to_kg: 1, surcharge: 0}]
international_factor: 1.5
weekend_factor: 1.1
`,
			wantErr: "weight tier 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRateTable(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRateTableFile_EmptyPathIsDefault(t *testing.T) {
	table, err := LoadRateTableFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRateTable(), table)
}
