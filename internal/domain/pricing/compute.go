package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"aquaria-partner-portal/internal/domain/apperr"
	"aquaria-partner-portal/internal/domain/catalog"
	"aquaria-partner-portal/internal/domain/feature"
	"aquaria-partner-portal/internal/domain/quote"
)

// Line is one priced component of a quote.
type Line struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type Result struct {
	Breakdown     []Line  `json:"breakdown"`
	OriginalTotal float64 `json:"originalTotal"`
	Discount      float64 `json:"discount"`
	FinalTotal    float64 `json:"finalTotal"`
}

// Compute prices cfg against an already resolved table. Component sums are kept
// exact and rounded to cents only in the result; lines are rounded for display.
func Compute(cfg quote.Config, prices catalog.PriceTable, f feature.Config, discount float64) (Result, error) {
	var c calc
	if discount < 0 {
		return Result{}, invalidf("discount must not be negative")
	}

	m, ok := prices.Model(cfg.Model)
	if !ok {
		return Result{}, apperr.Unknown("model", cfg.Model)
	}
	c.add("system", "System", dec(m.System))
	c.add("ship", "Shipping", dec(m.Ship))
	if cfg.UnitPad {
		c.add("unitPad", "Unit pad", dec(m.Pad))
	}
	if cfg.Mobility {
		c.add("mobility", "Mobility", dec(m.Mobility))
	}
	switch cfg.Warranty {
	case "", catalog.None, quote.Warranty5, quote.Warranty8:
	default:
		return Result{}, apperr.Unknown("warranty", cfg.Warranty)
	}
	if f.EnableWarrantyUpgrades {
		switch cfg.Warranty {
		case quote.Warranty5:
			c.add("warranty", "5-year warranty", dec(m.Warranty5))
		case quote.Warranty8:
			c.add("warranty", "8-year warranty", dec(m.Warranty8))
		}
	}

	if catalog.Selected(cfg.Tank) {
		tp, ok := prices.Tank(cfg.Tank)
		if !ok {
			return Result{}, apperr.Unknown("tank", cfg.Tank)
		}
		c.add("tank", "Tank "+cfg.Tank, dec(tp))
		if cfg.TankPad {
			pad, ok := prices.TankPad(cfg.Tank)
			if !ok {
				return Result{}, apperr.Unknown("tank pad", cfg.Tank)
			}
			c.add("tankPad", "Tank pad "+cfg.Tank, dec(pad))
		}
	}

	city, ok := prices.City(cfg.City)
	if !ok {
		return Result{}, apperr.Unknown("city", cfg.City)
	}
	c.add("delivery", "Delivery to "+cfg.City, dec(city))

	// Selections are validated even when their section is disabled; a disabled section prices at 0.
	if catalog.Selected(cfg.Sensor) {
		sp, ok := prices.Sensor(cfg.Sensor)
		if !ok {
			return Result{}, apperr.Unknown("sensor", cfg.Sensor)
		}
		if f.EnableSensors {
			c.add("sensor", "Tank sensor", dec(sp))
		}
	}

	if cfg.FilterQty < 0 {
		return Result{}, invalidf("filter quantity must not be negative")
	}
	if catalog.Selected(cfg.Filter) {
		fp, ok := prices.Filter(cfg.Filter)
		if !ok {
			return Result{}, apperr.Unknown("filter", cfg.Filter)
		}
		if f.EnableFilters && cfg.FilterQty > 0 {
			c.add("filter", fmt.Sprintf("Filters x%d", cfg.FilterQty), dec(fp).Mul(decimal.NewFromInt(int64(cfg.FilterQty))))
		}
	}

	if catalog.Selected(cfg.Pump) {
		pp, ok := prices.Pump(cfg.Pump)
		if !ok {
			return Result{}, apperr.Unknown("pump", cfg.Pump)
		}
		if f.EnablePumps {
			c.add("pump", "Pump", dec(pp))
		}
	}

	if err := c.sections("trenching", "Trenching", cfg.TrenchingSections, prices.Trench, f.EnableTrenching); err != nil {
		return Result{}, err
	}
	if err := c.sections("abTrenching", "Aboveground trenching", cfg.AbTrenchingSections, prices.AbTrench, f.EnableAbovegroundTrenching); err != nil {
		return Result{}, err
	}

	if cfg.Demolition.Distance < 0 {
		return Result{}, invalidf("demolition distance must not be negative")
	}
	if f.EnableDemolition && cfg.Demolition.Enabled {
		d := catalog.DefaultDemolition
		c.add("demolition", "Demolition", dec(d.Base).Add(dec(d.PerFoot).Mul(dec(cfg.Demolition.Distance))))
	}

	if f.EnableCustomAdjustments {
		for _, a := range cfg.CustomAdjs {
			if a.Enabled {
				c.add("adjustment", a.Label, dec(a.Amount))
			}
		}
	}

	final := c.total.Sub(dec(discount))
	if final.IsNegative() {
		final = decimal.Zero
	}
	return Result{
		Breakdown:     c.lines,
		OriginalTotal: money(c.total),
		Discount:      money(dec(discount)),
		FinalTotal:    money(final),
	}, nil
}

type calc struct {
	lines []Line
	total decimal.Decimal
}

func (c *calc) add(key, label string, amount decimal.Decimal) {
	c.total = c.total.Add(amount)
	c.lines = append(c.lines, Line{Key: key, Label: label, Amount: money(amount)})
}

// sections validates every run and prices them only when enabled.
func (c *calc) sections(key, label string, secs []quote.Section, rate func(string) (float64, bool), enabled bool) error {
	for i, s := range secs {
		r, ok := rate(s.Type)
		if !ok {
			return apperr.Unknown("trench type", s.Type)
		}
		if s.Distance < 0 {
			return invalidf("%s section %d: distance must not be negative", key, i)
		}
		if !enabled {
			continue
		}
		c.add(key, fmt.Sprintf("%s %s (%g ft)", label, s.Type, s.Distance), dec(r).Mul(dec(s.Distance)))
	}
	return nil
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func money(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{apperr.ErrInvalidConfiguration}, args...)...)
}
