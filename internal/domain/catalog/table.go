package catalog

import (
	"sort"

	"aquaria-partner-portal/internal/domain/apperr"
)

type ModelPrice struct {
	System    float64 `json:"system"`
	Ship      float64 `json:"ship"`
	Pad       float64 `json:"pad"`
	Mobility  float64 `json:"mobility"`
	Warranty5 float64 `json:"warranty5"`
	Warranty8 float64 `json:"warranty8"`
}

// PriceTable is an effective price table: every leaf is concrete.
type PriceTable struct {
	ModelPrices   map[string]ModelPrice `json:"modelPrices"`
	TankPrices    map[string]float64    `json:"tankPrices"`
	TankPads      map[string]float64    `json:"tankPads"`
	CityDelivery  map[string]float64    `json:"cityDelivery"`
	SensorPrices  map[string]float64    `json:"sensorPrices"`
	FilterPrices  map[string]float64    `json:"filterPrices"`
	PumpPrices    map[string]float64    `json:"pumpPrices"`
	TrenchRates   map[string]float64    `json:"trenchRates"`
	AbTrenchRates map[string]float64    `json:"ab_trenchRates"`
}

type ModelPriceOverride struct {
	System    Price `json:"system"`
	Ship      Price `json:"ship"`
	Pad       Price `json:"pad"`
	Mobility  Price `json:"mobility"`
	Warranty5 Price `json:"warranty5"`
	Warranty8 Price `json:"warranty8"`
}

// PriceOverrides is a partner's partial price table as stored on the partner record.
type PriceOverrides struct {
	ModelPrices   map[string]ModelPriceOverride `json:"modelPrices,omitempty"`
	TankPrices    map[string]Price              `json:"tankPrices,omitempty"`
	TankPads      map[string]Price              `json:"tankPads,omitempty"`
	CityDelivery  map[string]Price              `json:"cityDelivery,omitempty"`
	SensorPrices  map[string]Price              `json:"sensorPrices,omitempty"`
	FilterPrices  map[string]Price              `json:"filterPrices,omitempty"`
	PumpPrices    map[string]Price              `json:"pumpPrices,omitempty"`
	TrenchRates   map[string]Price              `json:"trenchRates,omitempty"`
	AbTrenchRates map[string]Price              `json:"ab_trenchRates,omitempty"`
}

// Default returns a fresh copy of the vendor default price table.
func Default() PriceTable {
	return PriceTable{
		ModelPrices: map[string]ModelPrice{
			ModelS:        {System: 9999, Ship: 645, Pad: 1750, Mobility: 500, Warranty5: 999, Warranty8: 1499},
			ModelStandard: {System: 17499, Ship: 1095, Pad: 1850, Mobility: 500, Warranty5: 1749, Warranty8: 2599},
			ModelX:        {System: 29999, Ship: 1550, Pad: 2100, Mobility: 1000, Warranty5: 2999, Warranty8: 4499},
		},
		TankPrices: map[string]float64{"500": 770.9, "1550": 1430.35, "3000": 2428.9, "5000": 5125.99},
		TankPads:   map[string]float64{"500": 1750, "1550": 1850, "3000": 2300, "5000": 4200},
		CityDelivery: map[string]float64{
			"Austin": 999, "Corpus Christi": 858, "Dallas": 577.5, "Houston": 200, "San Antonio": 660,
		},
		SensorPrices:  map[string]float64{"normal": 35},
		FilterPrices:  map[string]float64{ModelS: 100, ModelStandard: 150, ModelX: 200},
		PumpPrices:    map[string]float64{"mini": 800},
		TrenchRates:   map[string]float64{"trench_elec": 32.5, "trench_plumb": 58.5, "trench_comb": 65.5},
		AbTrenchRates: map[string]float64{"ab_elec": 35.5, "ab_plumb": 26.5, "ab_comb": 35.5},
	}
}

func (t PriceTable) Model(k string) (ModelPrice, bool) { v, ok := t.ModelPrices[k]; return v, ok }
func (t PriceTable) Tank(k string) (float64, bool)     { v, ok := t.TankPrices[k]; return v, ok }
func (t PriceTable) TankPad(k string) (float64, bool)  { v, ok := t.TankPads[k]; return v, ok }
func (t PriceTable) City(k string) (float64, bool)     { v, ok := t.CityDelivery[k]; return v, ok }
func (t PriceTable) Sensor(k string) (float64, bool)   { v, ok := t.SensorPrices[k]; return v, ok }
func (t PriceTable) Filter(k string) (float64, bool)   { v, ok := t.FilterPrices[k]; return v, ok }
func (t PriceTable) Pump(k string) (float64, bool)     { v, ok := t.PumpPrices[k]; return v, ok }
func (t PriceTable) Trench(k string) (float64, bool)   { v, ok := t.TrenchRates[k]; return v, ok }
func (t PriceTable) AbTrench(k string) (float64, bool) { v, ok := t.AbTrenchRates[k]; return v, ok }

type namedPrice struct {
	name  string
	price Price
}

func (o ModelPriceOverride) fields() []namedPrice {
	return []namedPrice{
		{"system", o.System}, {"ship", o.Ship}, {"pad", o.Pad},
		{"mobility", o.Mobility}, {"warranty5", o.Warranty5}, {"warranty8", o.Warranty8},
	}
}

// Validate rejects negative override leaves.
func (o *PriceOverrides) Validate() error {
	if o == nil {
		return nil
	}
	for _, m := range sortedKeys(o.ModelPrices) {
		mp := o.ModelPrices[m]
		for _, f := range mp.fields() {
			if v, ok := f.price.Get(); ok && v < 0 {
				return apperr.Invalid("modelPrices."+m+"."+f.name, "must not be negative")
			}
		}
	}
	groups := []struct {
		name   string
		leaves map[string]Price
	}{
		{"tankPrices", o.TankPrices}, {"tankPads", o.TankPads}, {"cityDelivery", o.CityDelivery},
		{"sensorPrices", o.SensorPrices}, {"filterPrices", o.FilterPrices}, {"pumpPrices", o.PumpPrices},
		{"trenchRates", o.TrenchRates}, {"ab_trenchRates", o.AbTrenchRates},
	}
	for _, g := range groups {
		for _, k := range sortedKeys(g.leaves) {
			if v, ok := g.leaves[k].Get(); ok && v < 0 {
				return apperr.Invalid(g.name+"."+k, "must not be negative")
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
