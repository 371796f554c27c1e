package pricing

import (
	"aquaria-partner-portal/internal/domain/catalog"
	"aquaria-partner-portal/internal/domain/feature"
	"aquaria-partner-portal/internal/domain/quote"
)

// Catalog is what a partner's calculator may offer.
type Catalog struct {
	Models      []string            `json:"models"`
	Tanks       []string            `json:"tanks"`
	Cities      []string            `json:"cities"`
	Sensors     []string            `json:"sensors"`
	Filters     []string            `json:"filters"`
	Pumps       []string            `json:"pumps"`
	Trenches    []string            `json:"trenches"`
	AbTrenches  []string            `json:"abTrenches"`
	Warranties  []string            `json:"warranties"`
	Demolition  *catalog.Demolition `json:"demolition,omitempty"`
	Disclaimers string              `json:"disclaimers,omitempty"`
	Notes       string              `json:"notes,omitempty"`

	// Prices is nil when the partner hides pricing.
	Prices *catalog.PriceTable `json:"prices,omitempty"`
}

// Offer intersects the catalog with the partner's enabled subsets, in canonical order.
func Offer(f feature.Config, prices catalog.PriceTable) Catalog {
	c := Catalog{
		Models:      ordered(catalog.Models, f.EnabledModels),
		Tanks:       ordered(catalog.TankSizes, f.EnabledTanks),
		Cities:      ordered(catalog.Cities, f.EnabledCities),
		Sensors:     gated(f.EnableSensors, catalog.SensorTypes),
		Pumps:       gated(f.EnablePumps, catalog.PumpTypes),
		Trenches:    gated(f.EnableTrenching, catalog.TrenchTypes),
		AbTrenches:  gated(f.EnableAbovegroundTrenching, catalog.AbovegroundTrenchTypes),
		Disclaimers: f.CustomDisclaimers,
		Notes:       f.CustomNotes,
	}
	c.Filters = gated(f.EnableFilters, c.Models)
	if f.EnableWarrantyUpgrades {
		c.Warranties = []string{quote.Warranty5, quote.Warranty8}
	} else {
		c.Warranties = []string{}
	}
	if f.EnableDemolition {
		d := catalog.DefaultDemolition
		c.Demolition = &d
	}
	if f.ShowPricing {
		c.Prices = &prices
	}
	return c
}

func ordered(canonical, enabled []string) []string {
	out := []string{}
	for _, k := range canonical {
		if catalog.Contains(enabled, k) {
			out = append(out, k)
		}
	}
	return out
}

func gated(on bool, keys []string) []string {
	if !on {
		return []string{}
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
