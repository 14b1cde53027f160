package stats_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/tidwall/sjson"

	"github.com/hollowellis/hypixel-data/internal/record"
	"github.com/hollowellis/hypixel-data/internal/stats"
)

const bedwarsFixture = `{
	"karma": 2500,
	"total_tokens": 300,
	"achievements": {"bedwars_level": 30, "bedwars_quests_completed": 12},
	"stats": {"Bedwars": {
		"winstreak": 4,
		"diamond_resources_collected_bedwars": 40,
		"emerald_resources_collected_bedwars": 15,
		"gold_resources_collected_bedwars": 220,
		"iron_resources_collected_bedwars": 900,
		"kills_bedwars": 100,
		"deaths_bedwars": 50,
		"final_kills_bedwars": 30,
		"final_deaths_bedwars": 10,
		"beds_broken_bedwars": 25,
		"wins_bedwars": 20,
		"losses_bedwars": 8,
		"eight_one_kills_bedwars": 10,
		"eight_one_deaths_bedwars": 5,
		"eight_one_wins_bedwars": 3,
		"four_three_final_kills_bedwars": 6
	}}
}`

// derive returns the fixture with one path overwritten.
func derive(t *testing.T, doc, path string, value interface{}) string {
	t.Helper()
	out, err := sjson.Set(doc, path, value)
	if err != nil {
		t.Fatalf("derive fixture: %v", err)
	}
	return out
}

// deleteKey returns the fixture with one path removed.
func deleteKey(t *testing.T, doc, path string) string {
	t.Helper()
	out, err := sjson.Delete(doc, path)
	if err != nil {
		t.Fatalf("derive fixture: %v", err)
	}
	return out
}

func wantInt(t *testing.T, rep *stats.Report, label string, want int64) {
	t.Helper()
	v, ok := rep.Get(label)
	if !ok {
		t.Fatalf("missing entry %q", label)
	}
	if v.Kind() != stats.KindInt || v.Int() != want {
		t.Errorf("%q = %v, want %d", label, v, want)
	}
}

func wantFloat(t *testing.T, rep *stats.Report, label string, want float64) {
	t.Helper()
	v, ok := rep.Get(label)
	if !ok {
		t.Fatalf("missing entry %q", label)
	}
	if v.Kind() != stats.KindFloat || math.Abs(v.Float()-want) > 0.0001 {
		t.Errorf("%q = %v, want %f", label, v, want)
	}
}

func wantNA(t *testing.T, rep *stats.Report, label string) {
	t.Helper()
	v, ok := rep.Get(label)
	if !ok {
		t.Fatalf("missing entry %q", label)
	}
	if !v.IsNA() {
		t.Errorf("%q = %v, want N/A", label, v)
	}
}

func wantAbsent(t *testing.T, rep *stats.Report, label string) {
	t.Helper()
	if rep.Has(label) {
		t.Errorf("entry %q should not be emitted", label)
	}
}

func TestExtractBedwarsHeadline(t *testing.T) {
	rep := stats.ExtractBedwars(record.FromString(bedwarsFixture))

	wantInt(t, rep, "Bedwars Level", 30)
	wantInt(t, rep, "Tokens", 300)
	wantInt(t, rep, "Quests Completed", 12)
	wantInt(t, rep, "Karma", 2500)
	wantInt(t, rep, "Winstreak", 4)
	wantInt(t, rep, "Diamonds Collected", 40)
	wantInt(t, rep, "Emeralds Collected", 15)
	wantInt(t, rep, "Gold Collected", 220)
	wantInt(t, rep, "Iron Collected", 900)

	prestige, _ := rep.Get("Prestige")
	if prestige.String() != "Determined by Bedwars Level (30)" {
		t.Errorf("Prestige = %q", prestige.String())
	}
}

func TestExtractBedwarsTokensFallback(t *testing.T) {
	doc := deleteKey(t, bedwarsFixture, "total_tokens")
	doc = derive(t, doc, "rewards.total_tokens", 55)

	rep := stats.ExtractBedwars(record.FromString(doc))
	wantInt(t, rep, "Tokens", 55)
}

func TestExtractBedwarsOverall(t *testing.T) {
	rep := stats.ExtractBedwars(record.FromString(bedwarsFixture))

	wantInt(t, rep, "Kills (Overall)", 100)
	wantInt(t, rep, "Final Kills (Overall)", 30)
	wantInt(t, rep, "Bed Breaks (Overall)", 25)
	wantInt(t, rep, "Deaths (Overall)", 50)
	wantInt(t, rep, "Final Deaths (Overall)", 10)
	wantInt(t, rep, "Wins (Overall)", 20)
	wantInt(t, rep, "Losses (Overall)", 8)
	wantFloat(t, rep, "Kill Death Ratio (KDR) (Overall)", 2.0)
	wantFloat(t, rep, "Final Kill Death Ratio (FKDR) (Overall)", 3.0)
	wantFloat(t, rep, "Win Loss Ratio (WLR) (Overall)", 2.5)
}

func TestExtractBedwarsSubModes(t *testing.T) {
	rep := stats.ExtractBedwars(record.FromString(bedwarsFixture))

	// Solo has kills, deaths, and wins; everything else stays hidden.
	wantInt(t, rep, "Kills (Solo)", 10)
	wantInt(t, rep, "Deaths (Solo)", 5)
	wantInt(t, rep, "Wins (Solo)", 3)
	wantAbsent(t, rep, "Final Kills (Solo)")
	wantAbsent(t, rep, "Bed Breaks (Solo)")
	wantAbsent(t, rep, "Losses (Solo)")
	wantFloat(t, rep, "Kill Death Ratio (KDR) (Solo)", 2.0)
	wantNA(t, rep, "Win Loss Ratio (WLR) (Solo)")
	wantAbsent(t, rep, "Final Kill Death Ratio (FKDR) (Solo)")

	// Trios only has final kills.
	wantInt(t, rep, "Final Kills (Trios)", 6)
	wantNA(t, rep, "Final Kill Death Ratio (FKDR) (Trios)")
	wantAbsent(t, rep, "Kills (Trios)")
	wantAbsent(t, rep, "Kill Death Ratio (KDR) (Trios)")

	// Untouched sub-modes produce nothing at all.
	for _, mode := range []string{"Doubles", "Quads", "4v4", "Dream Mode"} {
		wantAbsent(t, rep, "Kills ("+mode+")")
		wantAbsent(t, rep, "Kill Death Ratio (KDR) ("+mode+")")
	}
}

func TestExtractBedwarsZeroDeathsRatio(t *testing.T) {
	doc := derive(t, bedwarsFixture, "stats.Bedwars.eight_one_deaths_bedwars", 0)
	rep := stats.ExtractBedwars(record.FromString(doc))

	// Kills alone still trigger the ratio entry, but with the sentinel.
	wantNA(t, rep, "Kill Death Ratio (KDR) (Solo)")
	wantAbsent(t, rep, "Deaths (Solo)")
}

func TestExtractBedwarsEmptyRecord(t *testing.T) {
	rep := stats.ExtractBedwars(record.FromString(`{}`))

	// Headline and overall entries are always present, even at zero.
	wantInt(t, rep, "Bedwars Level", 0)
	wantInt(t, rep, "Kills (Overall)", 0)
	wantInt(t, rep, "Losses (Overall)", 0)
	wantNA(t, rep, "Kill Death Ratio (KDR) (Overall)")
	wantNA(t, rep, "Win Loss Ratio (WLR) (Overall)")

	// No sub-mode rows leak through.
	wantAbsent(t, rep, "Kills (Solo)")
	if rep.Len() != 20 {
		t.Errorf("empty-record report has %d entries, want 20: %v", rep.Len(), rep.Labels())
	}
}

func TestExtractBedwarsOrdering(t *testing.T) {
	rep := stats.ExtractBedwars(record.FromString(bedwarsFixture))

	want := []string{
		"Bedwars Level",
		"Prestige",
		"Tokens",
		"Quests Completed",
		"Karma",
		"Winstreak",
		"Diamonds Collected",
		"Emeralds Collected",
		"Gold Collected",
		"Iron Collected",
		"Kills (Overall)",
		"Final Kills (Overall)",
		"Bed Breaks (Overall)",
		"Deaths (Overall)",
		"Final Deaths (Overall)",
		"Wins (Overall)",
		"Losses (Overall)",
		"Kill Death Ratio (KDR) (Overall)",
		"Final Kill Death Ratio (FKDR) (Overall)",
		"Win Loss Ratio (WLR) (Overall)",
		"Kills (Solo)",
		"Deaths (Solo)",
		"Wins (Solo)",
		"Kill Death Ratio (KDR) (Solo)",
		"Win Loss Ratio (WLR) (Solo)",
		"Final Kills (Trios)",
		"Final Kill Death Ratio (FKDR) (Trios)",
	}
	if !reflect.DeepEqual(rep.Labels(), want) {
		t.Errorf("label order mismatch:\n got: %v\nwant: %v", rep.Labels(), want)
	}
}

func TestExtractBedwarsOrderIndependentOfInput(t *testing.T) {
	// Same content, keys inserted in reverse order.
	reordered := `{}`
	src := record.FromString(bedwarsFixture)
	for _, path := range []string{
		"stats.Bedwars.four_three_final_kills_bedwars",
		"stats.Bedwars.eight_one_wins_bedwars",
		"stats.Bedwars.eight_one_deaths_bedwars",
		"stats.Bedwars.eight_one_kills_bedwars",
		"stats.Bedwars.losses_bedwars",
		"stats.Bedwars.wins_bedwars",
		"stats.Bedwars.beds_broken_bedwars",
		"stats.Bedwars.final_deaths_bedwars",
		"stats.Bedwars.final_kills_bedwars",
		"stats.Bedwars.deaths_bedwars",
		"stats.Bedwars.kills_bedwars",
		"stats.Bedwars.iron_resources_collected_bedwars",
		"stats.Bedwars.gold_resources_collected_bedwars",
		"stats.Bedwars.emerald_resources_collected_bedwars",
		"stats.Bedwars.diamond_resources_collected_bedwars",
		"stats.Bedwars.winstreak",
		"achievements.bedwars_quests_completed",
		"achievements.bedwars_level",
		"total_tokens",
		"karma",
	} {
		reordered = derive(t, reordered, path, src.Int(path, 0))
	}

	a := stats.ExtractBedwars(record.FromString(bedwarsFixture))
	b := stats.ExtractBedwars(record.FromString(reordered))
	if !reflect.DeepEqual(a.Labels(), b.Labels()) {
		t.Errorf("output order depends on input key order:\n got: %v\nwant: %v", b.Labels(), a.Labels())
	}
}

func TestExtractBedwarsIdempotent(t *testing.T) {
	rec := record.FromString(bedwarsFixture)
	a := stats.ExtractBedwars(rec)
	b := stats.ExtractBedwars(rec)
	if !reflect.DeepEqual(a.Entries(), b.Entries()) {
		t.Error("two extractions of the same record differ")
	}
}
