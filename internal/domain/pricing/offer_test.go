package pricing

import (
	"reflect"
	"testing"

	"aquaria-partner-portal/internal/domain/catalog"
	"aquaria-partner-portal/internal/domain/feature"
)

func TestOffer_Defaults(t *testing.T) {
	c := Offer(feature.Default(), catalog.Default())
	if !reflect.DeepEqual(c.Models, catalog.Models) || !reflect.DeepEqual(c.Cities, catalog.Cities) {
		t.Fatalf("offer = %+v", c)
	}
	if len(c.Warranties) != 2 || c.Demolition == nil || c.Prices == nil {
		t.Fatalf("default offer incomplete: %+v", c)
	}
}

func TestOffer_CanonicalOrderAndToggles(t *testing.T) {
	f := feature.Default()
	f.EnabledModels = []string{"x", "s"}
	f.EnabledCities = []string{"Houston", "Austin", "Nowhere"}
	f.EnablePumps = false
	f.EnableWarrantyUpgrades = false
	f.EnableDemolition = false
	f.ShowPricing = false

	c := Offer(f, catalog.Default())
	if !reflect.DeepEqual(c.Models, []string{"s", "x"}) {
		t.Fatalf("models = %v", c.Models)
	}
	if !reflect.DeepEqual(c.Filters, []string{"s", "x"}) {
		t.Fatalf("filters follow enabled models, got %v", c.Filters)
	}
	if !reflect.DeepEqual(c.Cities, []string{"Austin", "Houston"}) {
		t.Fatalf("cities = %v", c.Cities)
	}
	if len(c.Pumps) != 0 || len(c.Warranties) != 0 || c.Demolition != nil {
		t.Fatalf("disabled sections offered: %+v", c)
	}
	if c.Prices != nil {
		t.Fatal("prices must be hidden when showPricing is off")
	}
}
