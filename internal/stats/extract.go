package stats

import (
	"log/slog"

	"github.com/hollowellis/hypixel-data/internal/record"
)

// Extractor walks a game's catalog over a player record and produces an
// ordered report. It holds no mutable state: extraction is a pure function
// of the record and the catalog, so one Extractor is safe to use from
// multiple goroutines.
type Extractor struct {
	catalog Catalog
	logger  *slog.Logger
}

// NewExtractor creates an extractor for the given catalog. logger is used
// only for debug tracing and may be nil.
func NewExtractor(catalog Catalog, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{catalog: catalog, logger: logger}
}

// Catalog returns the extraction table this extractor was built with.
func (e *Extractor) Catalog() Catalog { return e.catalog }

// emitOverall writes the overall counters and their ratios. Overall
// entries are always present, zero or not; a ratio with a zero denominator
// shows the N/A sentinel.
func (e *Extractor) emitOverall(rep *Report, data record.Record) {
	vals := make(map[string]int64, len(e.catalog.Counters))
	for _, c := range e.catalog.Counters {
		v := data.Int(c.Key, 0)
		vals[c.Key] = v
		rep.Put(c.Label+" (Overall)", IntValue(v))
	}
	for _, rt := range e.catalog.Ratios {
		rep.Put(rt.Label+" (Overall)", Ratio(float64(vals[rt.NumKey]), float64(vals[rt.DenKey])))
	}
}

// emitMode writes one sub-mode's counters and ratios. A counter appears
// only when strictly positive; a ratio appears only when at least one of
// its operands is positive.
func (e *Extractor) emitMode(rep *Report, data record.Record, mode Mode) {
	vals := make(map[string]int64, len(e.catalog.Counters))
	for _, c := range e.catalog.Counters {
		v := data.Int(mode.Prefix+c.Key, 0)
		vals[c.Key] = v
		if v > 0 {
			rep.Put(c.Label+" ("+mode.Name+")", IntValue(v))
		}
	}
	for _, rt := range e.catalog.Ratios {
		num, den := vals[rt.NumKey], vals[rt.DenKey]
		if num > 0 || den > 0 {
			rep.Put(rt.Label+" ("+mode.Name+")", Ratio(float64(num), float64(den)))
		}
	}
}

// emitModes walks the sub-mode catalog in order.
func (e *Extractor) emitModes(rep *Report, data record.Record) {
	for _, mode := range e.catalog.Modes {
		e.traceMode(data, mode)
		e.emitMode(rep, data, mode)
	}
}

// traceMode logs which sub-modes actually carry data, at debug level only.
func (e *Extractor) traceMode(data record.Record, mode Mode) {
	if !e.logger.Enabled(nil, slog.LevelDebug) {
		return
	}
	kills := data.Int(mode.Prefix+e.catalog.Counters[0].Key, 0)
	if kills > 0 {
		e.logger.Debug("sub-mode has data",
			"game", e.catalog.Game, "mode", mode.Name, "prefix", mode.Prefix)
	}
}
