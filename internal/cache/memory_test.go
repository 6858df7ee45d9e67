package cache

import (
	"testing"
	"time"

	"github.com/vesoapp/veso-backend/internal/models"
)

func testSet() models.ResultSet {
	return models.ResultSet{
		"mien-nam": {Name: "Miền Nam", Region: models.RegionSouth, Date: "15-01-2024", Prizes: map[string][]string{"DB": {"889246"}}},
	}
}

func TestKey(t *testing.T) {
	if got := Key("15-01-2024", models.RegionSouth); got != "lottery:15-01-2024:nam" {
		t.Errorf("unexpected key %q", got)
	}
	if got := Key("15-01-2024", ""); got != "lottery:15-01-2024:all" {
		t.Errorf("unexpected all-region key %q", got)
	}
}

func TestMemory(t *testing.T) {
	t.Run("hit before expiry", func(t *testing.T) {
		m := NewMemory(5 * time.Minute)
		m.Put("k", testSet())
		got, ok := m.Get("k")
		if !ok {
			t.Fatal("expected a hit")
		}
		if got["mien-nam"].Prizes["DB"][0] != "889246" {
			t.Errorf("wrong cached payload: %+v", got)
		}
	})

	t.Run("miss after expiry", func(t *testing.T) {
		m := NewMemory(5 * time.Minute)
		base := time.Now()
		m.now = func() time.Time { return base }
		m.Put("k", testSet())
		m.now = func() time.Time { return base.Add(6 * time.Minute) }
		if _, ok := m.Get("k"); ok {
			t.Error("expected expiry after TTL")
		}
	})

	t.Run("empty set is never stored", func(t *testing.T) {
		m := NewMemory(5 * time.Minute)
		m.Put("k", models.ResultSet{})
		if _, ok := m.Get("k"); ok {
			t.Error("empty set must not be cached")
		}
	})
}
