package stats

import (
	"fmt"
	"log/slog"

	"github.com/hollowellis/hypixel-data/internal/record"
)

// ExtractBedwars derives the curated Bedwars report from a full player
// record using the default catalog.
func ExtractBedwars(rec record.Record) *Report {
	return NewExtractor(BedwarsCatalog(), slog.Default()).ExtractBedwars(rec)
}

// ExtractBedwars walks the Bedwars subtree of a player record and emits
// headline fields, overall counters with ratios, and per-sub-mode stats in
// catalog order.
func (e *Extractor) ExtractBedwars(rec record.Record) *Report {
	rep := NewReport()
	bw := rec.Sub(e.catalog.Root)

	// Headline progression and account-level counters. The Bedwars level
	// lives under achievements, not under the stats subtree, and tokens
	// moved under rewards at some point, so both keys are tried in order.
	level := rec.Int("achievements.bedwars_level", 0)
	rep.Put("Bedwars Level", IntValue(level))
	rep.Put("Prestige", StrValue(fmt.Sprintf("Determined by Bedwars Level (%d)", level)))
	rep.Put("Tokens", IntValue(rec.FirstInt(0, "total_tokens", "rewards.total_tokens")))
	rep.Put("Quests Completed", IntValue(rec.Int("achievements.bedwars_quests_completed", 0)))
	rep.Put("Karma", IntValue(rec.Int("karma", 0)))
	rep.Put("Winstreak", IntValue(bw.Int("winstreak", 0)))

	// Resource collection, dream modes excluded.
	rep.Put("Diamonds Collected", IntValue(bw.Int("diamond_resources_collected_bedwars", 0)))
	rep.Put("Emeralds Collected", IntValue(bw.Int("emerald_resources_collected_bedwars", 0)))
	rep.Put("Gold Collected", IntValue(bw.Int("gold_resources_collected_bedwars", 0)))
	rep.Put("Iron Collected", IntValue(bw.Int("iron_resources_collected_bedwars", 0)))

	e.emitOverall(rep, bw)
	e.emitModes(rep, bw)
	return rep
}
