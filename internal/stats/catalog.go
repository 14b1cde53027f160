package stats

// Mode is one named variant of a game with its own raw-key prefix.
// The overall namespace is represented by an empty prefix.
type Mode struct {
	Name   string
	Prefix string
}

// CounterDef binds an output label to a raw counter key suffix.
type CounterDef struct {
	Label string
	Key   string
}

// RatioDef binds an output label to the counter key suffixes of its
// numerator and denominator.
type RatioDef struct {
	Label  string
	NumKey string
	DenKey string
}

// Catalog is the fixed, ordered extraction table for one game: the raw
// stats subtree it reads, its sub-modes, and the counter and ratio
// definitions applied per mode. Catalogs are build-time configuration and
// are handed to extractors explicitly; a constructor returns a fresh value
// so callers can never corrupt a shared table.
type Catalog struct {
	Game     string
	Root     string
	Modes    []Mode
	Counters []CounterDef
	Ratios   []RatioDef
}

// BedwarsCatalog returns the Bedwars extraction table.
func BedwarsCatalog() Catalog {
	return Catalog{
		Game: "Bedwars",
		Root: "stats.Bedwars",
		Modes: []Mode{
			{Name: "Solo", Prefix: "eight_one_"},
			{Name: "Doubles", Prefix: "eight_two_"},
			{Name: "Trios", Prefix: "four_three_"},
			{Name: "Quads", Prefix: "four_four_"},
			{Name: "4v4", Prefix: "four_two_"},
			{Name: "Dream Mode", Prefix: "dream_"},
		},
		Counters: []CounterDef{
			{Label: "Kills", Key: "kills_bedwars"},
			{Label: "Final Kills", Key: "final_kills_bedwars"},
			{Label: "Bed Breaks", Key: "beds_broken_bedwars"},
			{Label: "Deaths", Key: "deaths_bedwars"},
			{Label: "Final Deaths", Key: "final_deaths_bedwars"},
			{Label: "Wins", Key: "wins_bedwars"},
			{Label: "Losses", Key: "losses_bedwars"},
		},
		Ratios: []RatioDef{
			{Label: "Kill Death Ratio (KDR)", NumKey: "kills_bedwars", DenKey: "deaths_bedwars"},
			{Label: "Final Kill Death Ratio (FKDR)", NumKey: "final_kills_bedwars", DenKey: "final_deaths_bedwars"},
			{Label: "Win Loss Ratio (WLR)", NumKey: "wins_bedwars", DenKey: "losses_bedwars"},
		},
	}
}

// SkywarsCatalog returns the SkyWars extraction table.
func SkywarsCatalog() Catalog {
	return Catalog{
		Game: "SkyWars",
		Root: "stats.SkyWars",
		Modes: []Mode{
			{Name: "Solo Normal", Prefix: "solo_normal_"},
			{Name: "Solo Insane", Prefix: "solo_insane_"},
			{Name: "Teams Normal", Prefix: "team_normal_"},
			{Name: "Teams Insane", Prefix: "team_insane_"},
			{Name: "Ranked", Prefix: "ranked_normal_"},
			{Name: "Mega", Prefix: "mega_"},
			{Name: "Mini", Prefix: "mini_"},
			{Name: "Labs", Prefix: "lab_"},
		},
		Counters: []CounterDef{
			{Label: "Kills", Key: "kills"},
			{Label: "Assists", Key: "assists"},
			{Label: "Deaths", Key: "deaths"},
			{Label: "Wins", Key: "wins"},
			{Label: "Losses", Key: "losses"},
		},
		Ratios: []RatioDef{
			{Label: "Kill Death Ratio (KDR)", NumKey: "kills", DenKey: "deaths"},
			{Label: "Win Loss Ratio (WLR)", NumKey: "wins", DenKey: "losses"},
		},
	}
}
