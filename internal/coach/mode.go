package coach

// ModeConfig is a pacing strategy: how fast to move toward the target weight
// and how large a calorie deficit or surplus to run while doing it.
type ModeConfig struct {
	Name       string  `json:"name"`
	LossRate   float64 `json:"loss_rate"`   // kg/week when losing
	GainRate   float64 `json:"gain_rate"`   // kg/week when gaining
	DeficitPct float64 `json:"deficit_pct"` // fraction of TDEE
	Color      string  `json:"color"`
	RiskMsg    string  `json:"risk_msg"`
}

const (
	ModeAccelerated  = "Acelerado"
	ModeModerate     = "Moderado"
	ModeConservative = "Conservador"
)

// DefaultMode is used whenever a mode name is missing or unrecognized.
const DefaultMode = ModeModerate

var modes = []ModeConfig{
	{
		Name:       ModeAccelerated,
		LossRate:   1.0,
		GainRate:   0.75,
		DeficitPct: 0.25,
		Color:      "#f87171",
		RiskMsg:    "⚠️ Alto riesgo. Solo por periodos cortos.",
	},
	{
		Name:       ModeModerate,
		LossRate:   0.6,
		GainRate:   0.4,
		DeficitPct: 0.15,
		Color:      "#34d399",
		RiskMsg:    "✅ Balance ideal sostenible.",
	},
	{
		Name:       ModeConservative,
		LossRate:   0.35,
		GainRate:   0.35,
		DeficitPct: 0.10,
		Color:      "#60a5fa",
		RiskMsg:    "🐢 Lento pero seguro. Sin rebote.",
	},
}

// Modes returns a copy of the catalog in display order (fastest first).
func Modes() []ModeConfig {
	out := make([]ModeConfig, len(modes))
	copy(out, modes)
	return out
}

// ResolveMode looks up a mode by exact name. Stale or unknown selections
// resolve to DefaultMode instead of failing.
func ResolveMode(name string) ModeConfig {
	if m, ok := lookupMode(name); ok {
		return m
	}
	m, _ := lookupMode(DefaultMode)
	return m
}

// IsMode reports whether name is an exact catalog entry.
func IsMode(name string) bool {
	_, ok := lookupMode(name)
	return ok
}

func lookupMode(name string) (ModeConfig, bool) {
	for _, m := range modes {
		if m.Name == name {
			return m, true
		}
	}
	return ModeConfig{}, false
}
