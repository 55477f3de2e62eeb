package dataset

import (
	"log"
	"time"
)

// LogFetch logs a download about to start.
func LogFetch(source string) {
	log.Printf("[dataset] GET %s", source)
}

// LogFetched logs a completed download.
func LogFetched(source string, bytes int, duration time.Duration) {
	log.Printf("[dataset] fetched %s bytes=%d duration=%dms", source, bytes, duration.Milliseconds())
}

// LogParsed logs the outcome of parsing and joining the survey table.
func LogParsed(rows, shortNames, matched int, duration time.Duration) {
	log.Printf("[dataset] parsed %d rows, %d short names (%d rows matched) in %dms",
		rows, shortNames, matched, duration.Milliseconds())
}

// LogError logs a failed load step.
func LogError(operation string, err error) {
	log.Printf("[dataset] %s error: %v", operation, err)
}
