package quote

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"aquaria-partner-portal/internal/domain/apperr"
)

func TestNewNumber(t *testing.T) {
	day := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)
	tests := []struct {
		name, partner, want string
	}{
		{"partner prefix", "ABCD42", "AB-20250307-X1Y2Z3"},
		{"lowercase code is uppercased", "ws01", "WS-20250307-X1Y2Z3"},
		{"house partner", "AQUARIA_HQ", "AQ-20250307-X1Y2Z3"},
		{"no partner", "", "AQ-20250307-X1Y2Z3"},
		{"single character code", "Z", "Z-20250307-X1Y2Z3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewNumber(tt.partner, "AQUARIA_HQ", day, "x1y2z3"); got != tt.want {
				t.Fatalf("NewNumber = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewNumber_Format(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9_]{1,2}-\d{8}-[0-9A-Z]{6}$`)
	n := NewNumber("AWS07", "AQUARIA_HQ", time.Now(), "0A9ZQ1")
	if !re.MatchString(n) {
		t.Fatalf("%q does not match quote number format", n)
	}
}

func TestStatus_Transition(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusDraft, StatusOrdered, true},
		{StatusSent, StatusAccepted, true},
		{StatusAccepted, StatusOrdered, true},
		{StatusSent, StatusDraft, false},
		{StatusOrdered, StatusAccepted, false},
		{StatusSent, StatusSent, false},
	}
	for _, tt := range tests {
		err := tt.from.Transition(tt.to)
		if tt.ok && err != nil {
			t.Errorf("%s -> %s: unexpected %v", tt.from, tt.to, err)
		}
		if !tt.ok && !errors.Is(err, apperr.ErrInvalidTransition) {
			t.Errorf("%s -> %s: want ErrInvalidTransition, got %v", tt.from, tt.to, err)
		}
	}

	if err := StatusDraft.Transition("archived"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("unknown target: want validation error, got %v", err)
	}
}

func TestStatus_Resendable(t *testing.T) {
	for s, want := range map[Status]bool{
		StatusDraft: true, StatusSent: true, StatusAccepted: false, StatusOrdered: false,
	} {
		if got := s.Resendable(); got != want {
			t.Errorf("%s.Resendable() = %v, want %v", s, got, want)
		}
	}
}

func TestPatch_Columns(t *testing.T) {
	if !(Patch{}).Empty() {
		t.Fatal("zero patch must be empty")
	}
	sent := StatusSent
	notes := ""
	cols := Patch{Status: &sent, Notes: &notes}.Columns()
	if len(cols) != 2 || cols["status"] != StatusSent || cols["notes"] != "" {
		t.Fatalf("Columns() = %v", cols)
	}
}

func TestConfig_StoredShape(t *testing.T) {
	raw := `{
		"model":"standard","unitPad":false,"mobility":true,"tank":"1550","tankPad":true,
		"city":"Houston","sensor":"none","filter":"","filterQty":0,"pump":"none","connection":"direct",
		"trenchingSections":[{"type":"trench_elec","distance":40}],
		"ab_trenchingSections":[],
		"panelUpgrade":"none","warranty":"warranty8",
		"demolition":{"enabled":false,"distance":0},
		"customAdjs":[{"enabled":true,"label":"Crane","amount":-150.5,"notes":""}]
	}`
	var c Config
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.Model != "standard" || !c.TankPad || c.Warranty != Warranty8 {
		t.Fatalf("decoded %+v", c)
	}
	if len(c.TrenchingSections) != 1 || c.TrenchingSections[0].Distance != 40 {
		t.Fatalf("trenching = %+v", c.TrenchingSections)
	}
	if len(c.CustomAdjs) != 1 || c.CustomAdjs[0].Amount != -150.5 {
		t.Fatalf("adjustments = %+v", c.CustomAdjs)
	}
}

func TestNewEvent(t *testing.T) {
	pid := "p-1"
	q := &Quote{ID: "q-1", QuoteNumber: "AB-20250101-ABCDEF", PartnerID: &pid, Status: StatusSent, FinalTotal: 10}
	at := time.Date(2025, 1, 1, 8, 0, 0, 0, time.FixedZone("CST", -6*3600))
	e := NewEvent(EventStatusChanged, q, StatusDraft, at)
	if e.PartnerID != pid || e.PrevStatus != StatusDraft || e.OccurredAt.Location() != time.UTC {
		t.Fatalf("event = %+v", e)
	}
}
