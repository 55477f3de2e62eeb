package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
)

func fixtureServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	csvBody, err := os.ReadFile(fixtureCSV)
	if err != nil {
		t.Fatal(err)
	}
	tsvBody, err := os.ReadFile("testdata/short_names.tsv")
	if err != nil {
		t.Fatal(err)
	}

	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/data.csv", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/csv")
		w.Write(csvBody)
	})
	mux.HandleFunc("/short_names.tsv", func(w http.ResponseWriter, r *http.Request) {
		w.Write(tsvBody)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestLoader_Load(t *testing.T) {
	srv, _ := fixtureServer(t)
	l := NewLoader(srv.URL+"/data.csv", srv.URL+"/short_names.tsv", 0)

	ds, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Observations) != 21 {
		t.Fatalf("expected 21 rows, got %d", len(ds.Observations))
	}
	for _, o := range ds.Observations {
		if o.ShortIndicator == "" {
			t.Errorf("expected every fixture indicator to have a short name, %q has none", o.Indicator)
		}
	}

	again, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if again.SnapshotID != ds.SnapshotID {
		t.Errorf("snapshot id should depend only on content: %s vs %s", ds.SnapshotID, again.SnapshotID)
	}
}

func TestLoader_WithoutShortNames(t *testing.T) {
	srv, _ := fixtureServer(t)
	ds, err := NewLoader(srv.URL+"/data.csv", "", 0).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Observations[0].ShortIndicator != "" {
		t.Error("no short names expected when the lookup URL is unset")
	}
}

func TestLoader_LocalFile(t *testing.T) {
	ds, err := NewLoader(fixtureCSV, "file://testdata/short_names.tsv", 0).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Observations[0].ShortIndicator != "Ever had long COVID" {
		t.Errorf("short name: got %q", ds.Observations[0].ShortIndicator)
	}
}

func TestLoader_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewLoader(srv.URL+"/missing.csv", "", 0).Load(context.Background())
	if !errors.Is(err, ErrBadStatus) {
		t.Errorf("expected ErrBadStatus, got %v", err)
	}
}
