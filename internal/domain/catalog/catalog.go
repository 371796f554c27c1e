// Package catalog holds the vendor-wide product catalog and its default price table.
package catalog

const (
	ModelS        = "s"
	ModelStandard = "standard"
	ModelX        = "x"
)

// Canonical key order. Listings and partner offers follow this order.
var (
	Models                 = []string{ModelS, ModelStandard, ModelX}
	TankSizes              = []string{"500", "1550", "3000", "5000"}
	Cities                 = []string{"Austin", "Corpus Christi", "Dallas", "Houston", "San Antonio"}
	SensorTypes            = []string{"normal"}
	FilterTypes            = Models
	PumpTypes              = []string{"mini"}
	TrenchTypes            = []string{"trench_elec", "trench_plumb", "trench_comb"}
	AbovegroundTrenchTypes = []string{"ab_elec", "ab_plumb", "ab_comb"}
)

// None is the explicit "not selected" value for optional selections.
const None = "none"

// Selected reports whether an optional selection key names something.
func Selected(key string) bool { return key != "" && key != None }

func Contains(keys []string, k string) bool {
	for _, v := range keys {
		if v == k {
			return true
		}
	}
	return false
}

// Demolition is the fixed-plus-per-foot removal policy. It is not partner-overridable.
type Demolition struct {
	Base    float64 `json:"base"`
	PerFoot float64 `json:"per_foot"`
}

var DefaultDemolition = Demolition{Base: 750, PerFoot: 12.5}
