package catalog_test

import (
	"testing"

	"github.com/husan7006/davon-taxi-bot/internal/catalog"
)

func TestCities(t *testing.T) {
	cities := catalog.Cities()
	if len(cities) != 2 {
		t.Fatalf("got %d cities, want 2", len(cities))
	}
	for _, c := range cities {
		if !catalog.IsCity(c) {
			t.Errorf("IsCity(%q) = false", c)
		}
	}
	if catalog.IsCity("Самарқанд") {
		t.Error("unknown city accepted")
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"toshkent":  catalog.CityToshkent,
		"Ташкент":   catalog.CityToshkent,
		" Тошкент ": catalog.CityToshkent,
		"qo'qon":    catalog.CityQoqon,
		"кўкон":     catalog.CityQoqon,
		"Андижон":   "Андижон",
	}

	for in, want := range cases {
		if got := catalog.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDistricts(t *testing.T) {
	for _, city := range catalog.Cities() {
		list := catalog.DistrictsFor(city)
		if len(list) == 0 {
			t.Errorf("city %q has no districts", city)
			continue
		}
		if !catalog.HasDistrict(city, list[0]) {
			t.Errorf("HasDistrict(%q, %q) = false", city, list[0])
		}
	}

	if catalog.HasDistrict(catalog.CityQoqon, "Чилонзор") {
		t.Error("Toshkent district matched against Qoqon catalog")
	}
	if len(catalog.DistrictsFor("Андижон")) != 0 {
		t.Error("unknown city has districts")
	}
}
