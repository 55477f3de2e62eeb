package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

var ErrBadStatus = errors.New("unexpected HTTP status")

// Source produces a dataset. Loader is the production implementation.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Loader fetches the survey table and the optional short-name table.
// Locations are http(s) URLs, file:// URLs or plain file paths.
type Loader struct {
	DatasetURL    string
	ShortNamesURL string

	httpClient *http.Client
}

// NewLoader creates a loader. A zero timeout means the download is bounded
// only by the caller's context.
func NewLoader(datasetURL, shortNamesURL string, timeout time.Duration) *Loader {
	return &Loader{
		DatasetURL:    datasetURL,
		ShortNamesURL: shortNamesURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Load downloads, parses and joins the tables. Any failure aborts the load.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	raw, err := l.fetch(ctx, l.DatasetURL)
	if err != nil {
		LogError("fetch dataset", err)
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}

	start := time.Now()
	obs, err := ParseCSV(bytes.NewReader(raw))
	if err != nil {
		LogError("parse dataset", err)
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	var names map[string]string
	if l.ShortNamesURL != "" {
		rawNames, err := l.fetch(ctx, l.ShortNamesURL)
		if err != nil {
			LogError("fetch short names", err)
			return nil, fmt.Errorf("fetching short names: %w", err)
		}
		names, err = ParseShortNames(bytes.NewReader(rawNames))
		if err != nil {
			LogError("parse short names", err)
			return nil, fmt.Errorf("parsing short names: %w", err)
		}
		obs = JoinShortNames(obs, names)
	}

	matched := 0
	for _, o := range obs {
		if o.ShortIndicator != "" {
			matched++
		}
	}
	LogParsed(len(obs), len(names), matched, time.Since(start))

	return &Dataset{
		Observations: obs,
		SnapshotID:   SnapshotID(raw),
		Source:       l.DatasetURL,
		LoadedAt:     time.Now(),
	}, nil
}

func (l *Loader) fetch(ctx context.Context, src string) ([]byte, error) {
	if path, ok := localPath(src); ok {
		return os.ReadFile(path)
	}

	LogFetch(src)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := l.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned HTTP %d", ErrBadStatus, src, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	LogFetched(src, len(raw), time.Since(start))
	return raw, nil
}

func (l *Loader) client() *http.Client {
	if l.httpClient == nil {
		return http.DefaultClient
	}
	return l.httpClient
}

func localPath(src string) (string, bool) {
	if rest, ok := strings.CutPrefix(src, "file://"); ok {
		return rest, true
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return "", false
	}
	return src, true
}
