package cache

import (
	"reflect"
	"testing"
)

func TestRouteKeyNormalizesWaypoints(t *testing.T) {
	a := RouteKey([]string{"  Phoenix,   AZ", "Tucson, AZ", "El Paso, TX "})
	b := RouteKey([]string{"phoenix, az", "TUCSON, AZ", "El  Paso, TX"})
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
	if a != "phoenix, az|tucson, az|el paso, tx" {
		t.Fatalf("unexpected key %q", a)
	}

	if RouteKey([]string{"A", "B"}) == RouteKey([]string{"B", "A"}) {
		t.Fatal("waypoint order must be part of the key")
	}
}

func TestUniqueNormalized(t *testing.T) {
	got := uniqueNormalized([]string{" A  St ", "", "A St", "B", "   "})
	want := []string{"A St", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}
