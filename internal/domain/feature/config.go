// Package feature resolves a partner's stored feature configuration against system defaults.
package feature

import (
	"bytes"
	"encoding/json"

	"aquaria-partner-portal/internal/domain/apperr"
	"aquaria-partner-portal/internal/domain/catalog"
)

// Config is the effective feature configuration of a partner calculator.
type Config struct {
	EnabledModels []string `json:"enabledModels"`
	EnabledTanks  []string `json:"enabledTanks"`
	EnabledCities []string `json:"enabledCities"`

	EnableWarrantyUpgrades     bool `json:"enableWarrantyUpgrades"`
	EnableDemolition           bool `json:"enableDemolition"`
	EnableTrenching            bool `json:"enableTrenching"`
	EnableAbovegroundTrenching bool `json:"enableAbovegroundTrenching"`
	EnablePanelUpgrade         bool `json:"enablePanelUpgrade"`
	EnableCustomAdjustments    bool `json:"enableCustomAdjustments"`
	EnablePumps                bool `json:"enablePumps"`
	EnableSensors              bool `json:"enableSensors"`
	EnableFilters              bool `json:"enableFilters"`

	CustomDisclaimers string `json:"customDisclaimers,omitempty"`
	CustomNotes       string `json:"customNotes,omitempty"`

	ShowPricing     bool `json:"showPricing"`
	RequireApproval bool `json:"requireApproval"`
}

// Partial is a stored feature configuration. A nil field means "not stored".
type Partial struct {
	EnabledModels *[]string `json:"enabledModels,omitempty"`
	EnabledTanks  *[]string `json:"enabledTanks,omitempty"`
	EnabledCities *[]string `json:"enabledCities,omitempty"`

	EnableWarrantyUpgrades     *bool `json:"enableWarrantyUpgrades,omitempty"`
	EnableDemolition           *bool `json:"enableDemolition,omitempty"`
	EnableTrenching            *bool `json:"enableTrenching,omitempty"`
	EnableAbovegroundTrenching *bool `json:"enableAbovegroundTrenching,omitempty"`
	EnablePanelUpgrade         *bool `json:"enablePanelUpgrade,omitempty"`
	EnableCustomAdjustments    *bool `json:"enableCustomAdjustments,omitempty"`
	EnablePumps                *bool `json:"enablePumps,omitempty"`
	EnableSensors              *bool `json:"enableSensors,omitempty"`
	EnableFilters              *bool `json:"enableFilters,omitempty"`

	CustomDisclaimers *string `json:"customDisclaimers,omitempty"`
	CustomNotes       *string `json:"customNotes,omitempty"`

	ShowPricing     *bool `json:"showPricing,omitempty"`
	RequireApproval *bool `json:"requireApproval,omitempty"`
}

// Default enables every model, tank, city and toggle; approval is not required.
func Default() Config {
	return Config{
		EnabledModels:              clone(catalog.Models),
		EnabledTanks:               clone(catalog.TankSizes),
		EnabledCities:              clone(catalog.Cities),
		EnableWarrantyUpgrades:     true,
		EnableDemolition:           true,
		EnableTrenching:            true,
		EnableAbovegroundTrenching: true,
		EnablePanelUpgrade:         true,
		EnableCustomAdjustments:    true,
		EnablePumps:                true,
		EnableSensors:              true,
		EnableFilters:              true,
		ShowPricing:                true,
		RequireApproval:            false,
	}
}

// Resolve merges p over the defaults key by key. Array keys replace the default wholesale.
func Resolve(p *Partial) Config {
	c := Default()
	if p == nil {
		return c
	}
	setSlice(&c.EnabledModels, p.EnabledModels)
	setSlice(&c.EnabledTanks, p.EnabledTanks)
	setSlice(&c.EnabledCities, p.EnabledCities)

	set(&c.EnableWarrantyUpgrades, p.EnableWarrantyUpgrades)
	set(&c.EnableDemolition, p.EnableDemolition)
	set(&c.EnableTrenching, p.EnableTrenching)
	set(&c.EnableAbovegroundTrenching, p.EnableAbovegroundTrenching)
	set(&c.EnablePanelUpgrade, p.EnablePanelUpgrade)
	set(&c.EnableCustomAdjustments, p.EnableCustomAdjustments)
	set(&c.EnablePumps, p.EnablePumps)
	set(&c.EnableSensors, p.EnableSensors)
	set(&c.EnableFilters, p.EnableFilters)

	set(&c.CustomDisclaimers, p.CustomDisclaimers)
	set(&c.CustomNotes, p.CustomNotes)

	set(&c.ShowPricing, p.ShowPricing)
	set(&c.RequireApproval, p.RequireApproval)
	return c
}

// ResolveJSON resolves a raw stored feature_config column. Empty or null yields defaults.
func ResolveJSON(raw []byte) (Config, error) {
	p, err := ParseJSON(raw)
	if err != nil {
		return Config{}, err
	}
	return Resolve(p), nil
}

func ParseJSON(raw []byte) (*Partial, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var p Partial
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, apperr.Invalid("feature_config", "malformed: %v", err)
	}
	return &p, nil
}

// Validate checks enabled subsets against the catalog.
func (p *Partial) Validate() error {
	if p == nil {
		return nil
	}
	if err := subset("enabledModels", p.EnabledModels, catalog.Models); err != nil {
		return err
	}
	if err := subset("enabledTanks", p.EnabledTanks, catalog.TankSizes); err != nil {
		return err
	}
	return subset("enabledCities", p.EnabledCities, catalog.Cities)
}

// CheckSelection rejects a model, tank or city the partner has not enabled.
// An unselected tank is always allowed.
func (c Config) CheckSelection(model, tank, city string) error {
	if !catalog.Contains(c.EnabledModels, model) {
		return apperr.Invalid("model", "%q is not offered", model)
	}
	if catalog.Selected(tank) && !catalog.Contains(c.EnabledTanks, tank) {
		return apperr.Invalid("tank", "%q is not offered", tank)
	}
	if !catalog.Contains(c.EnabledCities, city) {
		return apperr.Invalid("city", "%q is not offered", city)
	}
	return nil
}

func subset(field string, got *[]string, allowed []string) error {
	if got == nil {
		return nil
	}
	for _, v := range *got {
		if !catalog.Contains(allowed, v) {
			return apperr.Invalid(field, "unknown value %q", v)
		}
	}
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setSlice(dst *[]string, src *[]string) {
	if src != nil {
		*dst = clone(*src)
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
