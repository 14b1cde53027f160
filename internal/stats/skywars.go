package stats

import (
	"log/slog"

	"github.com/hollowellis/hypixel-data/internal/record"
)

// ExtractSkywars derives the curated SkyWars report from a full player
// record using the default catalog.
func ExtractSkywars(rec record.Record) *Report {
	return NewExtractor(SkywarsCatalog(), slog.Default()).ExtractSkywars(rec)
}

// ExtractSkywars walks the SkyWars subtree of a player record and emits
// headline progression, soul-well and currency counters, overall combat
// stats with ratios, projectile stats, and per-sub-mode stats in catalog
// order.
func (e *Extractor) ExtractSkywars(rec record.Record) *Report {
	rep := NewReport()
	sw := rec.Sub(e.catalog.Root)

	// Experience moved from skywars_experience to experience; a zero in
	// the newer field falls through to the older one.
	xp := sw.Float("experience", 0)
	if xp == 0 {
		xp = sw.Float("skywars_experience", 0)
	}

	level := SkywarsLevel(xp)
	rep.Put("Level", FloatValue(round2(level)))
	rep.Put("Prestige", StrValue(SkywarsPrestige(level)))
	rep.Put("Experience", numValue(xp))
	rep.Put("Coins", IntValue(sw.Int("coins", 0)))
	rep.Put("Soul Well Uses", IntValue(sw.Int("soul_well_uses", 0)))
	rep.Put("Soul Well Legendaries", IntValue(sw.Int("soul_well_leg", 0)))
	rep.Put("Soul Well Rares", IntValue(sw.Int("soul_well_rares", 0)))
	rep.Put("Paid Souls", IntValue(sw.Int("paid_souls", 0)))
	rep.Put("Souls Gathered", IntValue(sw.Int("souls_gathered", 0)))

	e.emitOverall(rep, sw)

	// Projectile stats exist only at the overall level.
	rep.Put("Eggs Thrown (Overall)", IntValue(sw.Int("egg_thrown", 0)))
	rep.Put("Enderpearls Thrown (Overall)", IntValue(sw.Int("enderpearls_thrown", 0)))
	shot := sw.Int("arrows_shot", 0)
	hit := sw.Int("arrows_hit", 0)
	rep.Put("Arrows Shot (Overall)", IntValue(shot))
	rep.Put("Arrows Hit (Overall)", IntValue(hit))
	rep.Put("Arrow Hit/Shot Ratio (Overall)", Ratio(float64(hit), float64(shot)))

	e.emitModes(rep, sw)
	return rep
}
