// Package pricing resolves partner price tables and computes quote totals.
package pricing

import (
	"bytes"
	"encoding/json"

	"aquaria-partner-portal/internal/domain/apperr"
	"aquaria-partner-portal/internal/domain/catalog"
)

// ResolvePrices merges overrides over the default table leaf by leaf.
// When editAllowed is false the default table is returned whatever is stored.
// Only leaves of the default schema are resolved; unknown stored keys are ignored.
func ResolvePrices(o *catalog.PriceOverrides, editAllowed bool) catalog.PriceTable {
	t := catalog.Default()
	if !editAllowed || o == nil {
		return t
	}
	for k, def := range t.ModelPrices {
		ov, ok := o.ModelPrices[k]
		if !ok {
			continue
		}
		t.ModelPrices[k] = catalog.ModelPrice{
			System:    ov.System.Or(def.System),
			Ship:      ov.Ship.Or(def.Ship),
			Pad:       ov.Pad.Or(def.Pad),
			Mobility:  ov.Mobility.Or(def.Mobility),
			Warranty5: ov.Warranty5.Or(def.Warranty5),
			Warranty8: ov.Warranty8.Or(def.Warranty8),
		}
	}
	mergeLeaves(t.TankPrices, o.TankPrices)
	mergeLeaves(t.TankPads, o.TankPads)
	mergeLeaves(t.CityDelivery, o.CityDelivery)
	mergeLeaves(t.SensorPrices, o.SensorPrices)
	mergeLeaves(t.FilterPrices, o.FilterPrices)
	mergeLeaves(t.PumpPrices, o.PumpPrices)
	mergeLeaves(t.TrenchRates, o.TrenchRates)
	mergeLeaves(t.AbTrenchRates, o.AbTrenchRates)
	return t
}

func mergeLeaves(dst map[string]float64, src map[string]catalog.Price) {
	for k, def := range dst {
		if p, ok := src[k]; ok {
			dst[k] = p.Or(def)
		}
	}
}

// ParseOverrides decodes a stored pricing_overrides column. Empty or null yields nil.
func ParseOverrides(raw []byte) (*catalog.PriceOverrides, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var o catalog.PriceOverrides
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, apperr.Invalid("pricing_overrides", "malformed: %v", err)
	}
	return &o, nil
}

func ResolvePricesJSON(raw []byte, editAllowed bool) (catalog.PriceTable, error) {
	if !editAllowed {
		return catalog.Default(), nil
	}
	o, err := ParseOverrides(raw)
	if err != nil {
		return catalog.PriceTable{}, err
	}
	return ResolvePrices(o, true), nil
}
