package regions

import (
	"encoding/json"
	"testing"
)

func TestLookup(t *testing.T) {
	r, ok := Lookup("California")
	if !ok || r.ID != 6 || r.Abbr != "CA" {
		t.Fatalf("California: got %+v ok=%v", r, ok)
	}

	r, ok = Lookup("  new   YORK ")
	if !ok || r.ID != 36 {
		t.Errorf("expected case/space-insensitive match for New York, got %+v ok=%v", r, ok)
	}

	if _, ok := Lookup("Puerto Rico"); ok {
		t.Error("Puerto Rico has no geometry and should not resolve")
	}
}

func TestID_National(t *testing.T) {
	id, ok := ID("United States")
	if !ok || id != NationalID {
		t.Errorf("expected national sentinel 0, got %d ok=%v", id, ok)
	}
	if _, ok := Lookup(NationalName); ok {
		t.Error("national aggregate must not be a region")
	}
}

func TestAll_UniqueIDs(t *testing.T) {
	seen := map[int]bool{}
	for _, r := range All() {
		if r.ID == NationalID {
			t.Errorf("%s uses the national sentinel id", r.Name)
		}
		if seen[r.ID] {
			t.Errorf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
	if len(seen) != 51 {
		t.Errorf("expected 50 states plus DC, got %d", len(seen))
	}
}

func TestFeatureCollection(t *testing.T) {
	fc := FeatureCollection(map[int]map[string]any{
		6: {"rank": 3, "incidence": 12.5},
	})
	if len(fc.Features) != 51 {
		t.Fatalf("expected 51 features, got %d", len(fc.Features))
	}

	raw, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	var found bool
	for _, f := range decoded.Features {
		if f.Properties["abbr"] != "CA" {
			continue
		}
		found = true
		if f.Properties["rank"] != float64(3) {
			t.Errorf("rank property: got %v", f.Properties["rank"])
		}
		if len(f.Geometry.Coordinates) != 2 || f.Geometry.Coordinates[0] > 0 {
			t.Errorf("expected [lng, lat] with negative longitude, got %v", f.Geometry.Coordinates)
		}
	}
	if !found {
		t.Error("California feature missing")
	}
}
