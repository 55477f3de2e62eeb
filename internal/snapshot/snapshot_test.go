package snapshot

import (
	"bytes"
	"testing"

	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func ptr(f float64) *float64 { return &f }

func TestTrendPNG(t *testing.T) {
	rows := []views.TrendRow{
		{Indicator: "Ever had", ShortIndicator: "Ever", Subgroup: "Male", TimePeriodEnd: "2022-07-11", Value: ptr(15.2)},
		{Indicator: "Ever had", ShortIndicator: "Ever", Subgroup: "Male", TimePeriodEnd: "2022-06-13", Value: ptr(14.8)},
		{Indicator: "Ever had", ShortIndicator: "Ever", Subgroup: "Female", TimePeriodEnd: "2022-06-13", Value: ptr(22.4)},
		{Indicator: "Ever had", ShortIndicator: "Ever", Subgroup: "Female", TimePeriodEnd: "2022-07-11"},
		{Indicator: "Other", ShortIndicator: "Other", Subgroup: "Male", TimePeriodEnd: "2022-06-13", Value: ptr(3)},
	}

	var buf bytes.Buffer
	if err := TrendPNG(&buf, rows, "Ever", DefaultWidth, DefaultHeight); err != nil {
		t.Fatalf("TrendPNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("output is not a PNG (%d bytes)", buf.Len())
	}
}

func TestTrendPNG_NoRows(t *testing.T) {
	var buf bytes.Buffer
	if err := TrendPNG(&buf, nil, "Missing indicator", DefaultWidth, DefaultHeight); err != nil {
		t.Fatalf("empty data must still render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("expected a PNG for an empty plot")
	}
}

func TestTrendPNG_BadDate(t *testing.T) {
	rows := []views.TrendRow{{Indicator: "I", Subgroup: "S", TimePeriodEnd: "06/13/2022", Value: ptr(1)}}
	if err := TrendPNG(&bytes.Buffer{}, rows, "I", DefaultWidth, DefaultHeight); err == nil {
		t.Error("expected an error for a malformed end date")
	}
}
