package dataset

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

const fixtureCSV = "testdata/post_covid_conditions.csv"

func readFixture(t *testing.T) []Observation {
	t.Helper()
	f, err := os.Open(fixtureCSV)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	obs, err := ParseCSV(f)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	return obs
}

func TestParseCSV_Fixture(t *testing.T) {
	obs := readFixture(t)

	if len(obs) != 21 {
		t.Fatalf("expected 21 rows, got %d", len(obs))
	}

	first := obs[0]
	if first.Group != "National Estimate" || first.State != "United States" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.TimePeriodNum != 46 || first.TimePeriodLabel != "Jun 1 - Jun 13, 2022" {
		t.Errorf("time period: got %d %q", first.TimePeriodNum, first.TimePeriodLabel)
	}
	if want := time.Date(2022, 6, 13, 0, 0, 0, 0, time.UTC); !first.TimePeriodEnd.Equal(want) {
		t.Errorf("end date: got %v", first.TimePeriodEnd)
	}
	if first.Value == nil || *first.Value != 18.9 {
		t.Errorf("value: got %v", first.Value)
	}

	var sentinel, suppressed int
	for _, o := range obs {
		if o.IsSentinelPhase() {
			sentinel++
		}
		if o.Value == nil {
			suppressed++
			if o.State != "Wyoming" {
				t.Errorf("unexpected blank value on %s", o.State)
			}
		}
	}
	if sentinel != 1 {
		t.Errorf("expected 1 sentinel-phase row, got %d", sentinel)
	}
	if suppressed != 1 {
		t.Errorf("expected 1 suppressed row, got %d", suppressed)
	}
}

func TestParseCSV_BOMHeader(t *testing.T) {
	in := "\ufeff" + strings.Join(requiredColumns, ",") + "\n" +
		"Ind,By Age,United States,18 - 29 years,3.5,46,Jun 1 - Jun 13 2022,06/01/2022,06/13/2022,1.5,1,2\n"
	obs, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(obs) != 1 || obs[0].Indicator != "Ind" {
		t.Errorf("unexpected rows: %+v", obs)
	}
}

func TestParseCSV_Errors(t *testing.T) {
	header := strings.Join(requiredColumns, ",") + "\n"

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no rows", header, ErrNoRows},
		{"missing column", "Indicator,Group\nA,B\n", ErrMissingColumn},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tc.in))
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	bad := header + "Ind,By Age,United States,18 - 29,3.5,46,L,06/01/2022,06/13/2022,abc,1,2\n"
	_, err := ParseCSV(strings.NewReader(bad))
	if err == nil || !strings.Contains(err.Error(), "row 2: Value") {
		t.Errorf("expected row-numbered Value error, got %v", err)
	}

	badDate := header + "Ind,By Age,United States,18 - 29,3.5,46,L,2022-06-01,06/13/2022,1,1,2\n"
	if _, err := ParseCSV(strings.NewReader(badDate)); err == nil {
		t.Error("expected error for ISO date")
	}
}

func TestParseCSV_MissingTokens(t *testing.T) {
	header := strings.Join(requiredColumns, ",") + "\n"
	row := func(v string) string {
		return "Ind,By Age,United States,18 - 29,3.5,46,L,06/01/2022,06/13/2022," + v + ",1,2\n"
	}

	for _, tok := range []string{"NaN", "nan", "-NaN", "NA", "N/A", "null", "#N/A", "None"} {
		obs, err := ParseCSV(strings.NewReader(header + row(tok)))
		if err != nil {
			t.Fatalf("%s: ParseCSV: %v", tok, err)
		}
		if obs[0].Value != nil {
			t.Errorf("%s: expected a missing value, got %v", tok, *obs[0].Value)
		}
		if obs[0].LowCI == nil || *obs[0].LowCI != 1 {
			t.Errorf("%s: neighbouring cells must still parse", tok)
		}
	}

	for _, tok := range []string{"Inf", "+Inf", "-Infinity"} {
		_, err := ParseCSV(strings.NewReader(header + row(tok)))
		if err == nil || !strings.Contains(err.Error(), "row 2: Value") {
			t.Errorf("%s: expected row-numbered Value error, got %v", tok, err)
		}
	}
}
