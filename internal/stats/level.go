package stats

import "math"

// SkyWars experience breakpoints for levels 0–11. At or beyond the final
// breakpoint the curve goes linear and levels are uncapped.
var skywarsBreakpoints = []float64{
	0, 20, 70, 150, 250, 500, 1000, 2000, 3500, 6000, 10000, 15000,
}

const (
	skywarsMaxBreakpoint = 15000
	skywarsXPPerLevel    = 10000 // per level past the final breakpoint
)

// SkywarsLevel converts raw SkyWars experience into a fractional level via
// piecewise-linear interpolation over the breakpoint table. The result is
// continuous and monotonically increasing. Experience is expected to be
// non-negative; negative input is clamped to zero.
func SkywarsLevel(experience float64) float64 {
	if experience < 0 {
		experience = 0
	}
	if experience >= skywarsMaxBreakpoint {
		return (experience-skywarsMaxBreakpoint)/skywarsXPPerLevel + 12
	}
	for i, bp := range skywarsBreakpoints {
		if experience < bp {
			if i == 0 {
				return experience / math.Max(1, bp)
			}
			prev := skywarsBreakpoints[i-1]
			return float64(i) + (experience-prev)/(bp-prev) - 1
		}
	}
	return 0
}

// prestigeTiers maps floored levels onto named tiers over half-open
// intervals: a level belongs to the first tier whose upper bound exceeds
// it. Levels of 60 and above are Mythic.
var prestigeTiers = []struct {
	below int
	name  string
}{
	{5, "Stone"},
	{10, "Iron"},
	{15, "Gold"},
	{20, "Diamond"},
	{25, "Emerald"},
	{30, "Sapphire"},
	{35, "Ruby"},
	{40, "Crystal"},
	{45, "Opal"},
	{50, "Amethyst"},
	{60, "Rainbow"},
}

// SkywarsPrestige returns the prestige tier name for a fractional level.
func SkywarsPrestige(level float64) string {
	floored := int(math.Floor(level))
	for _, tier := range prestigeTiers {
		if floored < tier.below {
			return tier.name
		}
	}
	return "Mythic"
}
