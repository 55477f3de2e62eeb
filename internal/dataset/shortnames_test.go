package dataset

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestParseShortNames_TSV(t *testing.T) {
	f, err := os.Open("testdata/short_names.tsv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	names, err := ParseShortNames(f)
	if err != nil {
		t.Fatalf("ParseShortNames: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	got := names["Ever experienced long COVID, as a percentage of adults who ever had COVID"]
	if got != "Ever had long COVID" {
		t.Errorf("short name: got %q", got)
	}
}

func TestParseShortNames_CSV(t *testing.T) {
	in := "Indicator,Short Name\n\"Long name, with comma\",Short\nBlank,\n"
	names, err := ParseShortNames(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseShortNames: %v", err)
	}
	if names["Long name, with comma"] != "Short" {
		t.Errorf("got %v", names)
	}
	if _, ok := names["Blank"]; ok {
		t.Error("rows without a short name should be skipped")
	}
}

func TestParseShortNames_MissingColumn(t *testing.T) {
	_, err := ParseShortNames(strings.NewReader("Indicator,Label\nA,B\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestJoinShortNames_LeftJoin(t *testing.T) {
	obs := []Observation{
		{Indicator: "A"},
		{Indicator: "B"},
	}
	joined := JoinShortNames(obs, map[string]string{"A": "a"})

	if joined[0].ShortIndicator != "a" || joined[0].DisplayIndicator() != "a" {
		t.Errorf("expected A joined, got %+v", joined[0])
	}
	if joined[1].ShortIndicator != "" || joined[1].DisplayIndicator() != "B" {
		t.Errorf("expected B kept without short name, got %+v", joined[1])
	}
	if obs[0].ShortIndicator != "" {
		t.Error("input observations must not be modified")
	}
}
