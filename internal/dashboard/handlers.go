package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/EmpoweredVote/covid-dashboard/internal/dataset"
	"github.com/EmpoweredVote/covid-dashboard/internal/regions"
	"github.com/EmpoweredVote/covid-dashboard/internal/snapshot"
	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

type handlers struct {
	svc *Service
}

// parseSelections reads widget state from the query string. A submitted form
// always carries groups_set, so an emptied multiselect stays empty instead of
// falling back to the default groups.
func (h handlers) parseSelections(q url.Values) views.Selections {
	sel := views.DefaultSelections(h.svc.Options())
	if v := q.Get("time_period"); v != "" {
		sel.TimePeriod = v
	}
	if v := q.Get("dimension"); v != "" {
		sel.Dimension = v
	}
	if groups, ok := q["group"]; ok {
		sel.Groups = groups
	} else if q.Get("groups_set") != "" {
		sel.Groups = []string{}
	}
	return sel
}

func (h handlers) run(w http.ResponseWriter, r *http.Request) (Result, bool) {
	res, err := h.svc.Run(r.Context(), h.parseSelections(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return Result{}, false
	}
	w.Header().Set("X-Dataset-Snapshot", res.Dataset.SnapshotID.String())
	return res, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, views.ErrUnknownTimePeriod), errors.Is(err, views.ErrUnknownDimension):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("[dashboard] pipeline error: %v", err)
		http.Error(w, "Dataset unavailable", http.StatusServiceUnavailable)
	}
}

// writeJSON sends v with an ETag derived from the encoded body, so repeated
// identical selections revalidate instead of re-downloading.
func writeJSON(w http.ResponseWriter, r *http.Request, contentType string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	etag := `"` + uuid.NewSHA1(dataset.Namespace, body).String() + `"`

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(body)
}

// Options lists the widget choices. Query selections are ignored, so a stale
// link still gets the current options.
func (h handlers) Options(w http.ResponseWriter, r *http.Request) {
	ds, groups, err := h.svc.GroupOptions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("X-Dataset-Snapshot", ds.SnapshotID.String())

	opts := h.svc.Options()
	writeJSON(w, r, "application/json", map[string]any{
		"time_periods":  opts.TimePeriods,
		"groups":        groups,
		"dimensions":    opts.Dimensions,
		"defaults":      views.DefaultSelections(opts),
		"snapshot_id":   ds.SnapshotID,
		"ranked_metric": opts.RankedIndicator,
	})
}

func (h handlers) Views(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, "application/json", res.Views)
}

func (h handlers) Charts(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, "application/json", res.Specs)
}

// Regions exports the ranked state view as GeoJSON centroid points.
func (h handlers) Regions(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}

	props := map[int]map[string]any{}
	for _, row := range res.Views.StateRanked {
		if row.ID == nil {
			continue
		}
		props[*row.ID] = map[string]any{
			"rank":        row.Rank,
			"incidence":   row.Incidence,
			"low_ci":      row.LowCI,
			"high_ci":     row.HighCI,
			"time_period": row.TimePeriod,
		}
	}
	writeJSON(w, r, "application/geo+json", regions.FeatureCollection(props))
}

// TrendPNG renders one indicator of the trend panel as a static image. The
// indicator defaults to the ranked metric.
func (h handlers) TrendPNG(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	indicator := r.URL.Query().Get("indicator")
	if indicator == "" {
		indicator = h.svc.Options().RankedIndicator
	}

	var buf bytes.Buffer
	if err := snapshot.TrendPNG(&buf, res.Views.Trend, indicator, snapshot.DefaultWidth, snapshot.DefaultHeight); err != nil {
		log.Printf("[dashboard] trend png: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render trend: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	buf.WriteTo(w)
}
