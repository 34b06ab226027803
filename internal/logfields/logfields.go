// Package logfields holds the canonical slog attribute keys used by the site
// builder and its CLI.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeySource     = "source"
	KeyOutput     = "output"
	KeyPath       = "path"
	KeySection    = "section"
	KeyCount      = "count"
	KeyFailed     = "failed"
	KeyWorkers    = "workers"
	KeyDurationMS = "duration_ms"
	KeyPrevious   = "previous"
	KeyError      = "error"
)

func Source(p string) slog.Attr   { return slog.String(KeySource, p) }
func Output(p string) slog.Attr   { return slog.String(KeyOutput, p) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Section(s string) slog.Attr  { return slog.String(KeySection, s) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Failed(n int) slog.Attr      { return slog.Int(KeyFailed, n) }
func Workers(n int) slog.Attr     { return slog.Int(KeyWorkers, n) }
func Previous(p string) slog.Attr { return slog.String(KeyPrevious, p) }

// Duration reports d in fractional milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
