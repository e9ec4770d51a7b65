package coach

import "testing"

func TestResolveMode_Known(t *testing.T) {
	cases := []struct {
		name     string
		loss     float64
		gain     float64
		deficit  float64
		wantName string
	}{
		{ModeAccelerated, 1.0, 0.75, 0.25, ModeAccelerated},
		{ModeModerate, 0.6, 0.4, 0.15, ModeModerate},
		{ModeConservative, 0.35, 0.35, 0.10, ModeConservative},
	}
	for _, tc := range cases {
		m := ResolveMode(tc.name)
		if m.Name != tc.wantName || m.LossRate != tc.loss || m.GainRate != tc.gain || m.DeficitPct != tc.deficit {
			t.Errorf("ResolveMode(%q) = %+v", tc.name, m)
		}
	}
}

// TestResolveMode_Fallback: missing, differently-cased and unknown names all
// resolve to Moderado.
func TestResolveMode_Fallback(t *testing.T) {
	for _, name := range []string{"", "moderado", "ACELERADO", "Extremo"} {
		if got := ResolveMode(name); got.Name != ModeModerate {
			t.Errorf("ResolveMode(%q).Name = %q, want %q", name, got.Name, ModeModerate)
		}
		if IsMode(name) {
			t.Errorf("IsMode(%q) = true, want false", name)
		}
	}
}

func TestModes_ReturnsCopy(t *testing.T) {
	got := Modes()
	if len(got) != 3 || got[0].Name != ModeAccelerated || got[2].Name != ModeConservative {
		t.Fatalf("Modes() = %+v", got)
	}
	got[0].LossRate = 99
	if ResolveMode(ModeAccelerated).LossRate != 1.0 {
		t.Error("mutating Modes() result changed the catalog")
	}
}
