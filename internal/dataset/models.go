package dataset

import (
	"time"

	"github.com/google/uuid"
)

// SentinelPhase marks survey rows that belong to no valid collection phase.
const SentinelPhase = "-1"

// Observation is one row of the Post-COVID Conditions survey table.
// Observations are shared between views and must not be modified.
type Observation struct {
	Indicator      string `json:"indicator"`
	ShortIndicator string `json:"short_indicator,omitempty"`
	Group          string `json:"group"`
	State          string `json:"state"`
	Subgroup       string `json:"subgroup"`
	Phase          string `json:"phase"`

	TimePeriodNum   int       `json:"time_period_num"`
	TimePeriodLabel string    `json:"time_period_label"`
	TimePeriodStart time.Time `json:"time_period_start"`
	TimePeriodEnd   time.Time `json:"time_period_end"`

	// Percentages. Nil when the cell is blank or suppressed.
	Value  *float64 `json:"value"`
	LowCI  *float64 `json:"low_ci"`
	HighCI *float64 `json:"high_ci"`
}

// DisplayIndicator is the short name when one was joined, else the full name.
func (o Observation) DisplayIndicator() string {
	if o.ShortIndicator != "" {
		return o.ShortIndicator
	}
	return o.Indicator
}

// IsSentinelPhase reports whether the row carries the excluded phase marker.
func (o Observation) IsSentinelPhase() bool {
	return o.Phase == SentinelPhase
}

// Dataset is the loaded, joined survey table.
type Dataset struct {
	Observations []Observation
	// SnapshotID is a name-based UUID of the raw survey bytes.
	SnapshotID uuid.UUID
	Source     string
	LoadedAt   time.Time
}

// Namespace scopes the name-based UUIDs minted by this module.
var Namespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("covid-dashboard"))

// SnapshotID derives the identifier of a raw dataset body.
func SnapshotID(raw []byte) uuid.UUID {
	return uuid.NewSHA1(Namespace, raw)
}
