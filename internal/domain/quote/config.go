package quote

// Section is one trenching run priced per foot.
type Section struct {
	Type     string  `json:"type"`
	Distance float64 `json:"distance"`
}

type Demolition struct {
	Enabled  bool    `json:"enabled"`
	Distance float64 `json:"distance"`
}

// Adjustment is a signed, labelled line added by the quoting user.
type Adjustment struct {
	Enabled bool    `json:"enabled"`
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Notes   string  `json:"notes"`
}

// Config is the calculator selection frozen into a saved quote.
type Config struct {
	Model               string       `json:"model"`
	UnitPad             bool         `json:"unitPad"`
	Mobility            bool         `json:"mobility"`
	Tank                string       `json:"tank"`
	TankPad             bool         `json:"tankPad"`
	City                string       `json:"city"`
	Sensor              string       `json:"sensor"`
	Filter              string       `json:"filter"`
	FilterQty           int          `json:"filterQty"`
	Pump                string       `json:"pump"`
	Connection          string       `json:"connection"`
	TrenchingSections   []Section    `json:"trenchingSections"`
	AbTrenchingSections []Section    `json:"ab_trenchingSections"`
	PanelUpgrade        string       `json:"panelUpgrade"`
	Warranty            string       `json:"warranty"`
	Demolition          Demolition   `json:"demolition"`
	CustomAdjs          []Adjustment `json:"customAdjs"`
}

// Warranty selections. Blank or "none" means no upgrade; anything else is rejected.
const (
	Warranty5 = "warranty5"
	Warranty8 = "warranty8"
)
