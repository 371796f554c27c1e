package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Price is a single price-table leaf that may be unset.
// Blank strings, null and non-numeric input all decode as unset, never as zero.
type Price struct {
	value float64
	set   bool
}

func Of(v float64) Price { return Price{value: v, set: true} }

func Unset() Price { return Price{} }

func (p Price) Get() (float64, bool) { return p.value, p.set }

func (p Price) IsSet() bool { return p.set }

// Or returns the leaf value, or def when the leaf is unset.
func (p Price) Or(def float64) float64 {
	if p.set {
		return p.value
	}
	return def
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(p.value, 'f', -1, 64)), nil
}

func (p *Price) UnmarshalJSON(b []byte) error {
	*p = Price{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*p = Of(v)
	return nil
}
