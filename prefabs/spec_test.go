package prefabs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLColorUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#ff8000"`, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, false},
		{"rgba", `"#10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"no_hash", `"a0b0c0"`, color.NRGBA{R: 0xa0, G: 0xb0, B: 0xc0, A: 0xff}, false},
		{"too_short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.NRGBA{}, true},
		{"not_a_string", `[1, 2]`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.input), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", c.input, err)
			}
			if got.Color != c.want {
				t.Fatalf("got %v, want %v", got.Color, c.want)
			}
		})
	}
}

func TestYAMLColorNilFallsBackToWhite(t *testing.T) {
	var c *YAMLColor
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := color.White.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Fatalf("nil color should read as opaque white")
	}
}

func TestEmbeddedSpecsLoad(t *testing.T) {
	ship, err := LoadShipSpec()
	if err != nil {
		t.Fatalf("ship spec: %v", err)
	}
	if ship.Radius <= 0 || ship.Lives <= 0 || ship.TurnSpeed <= 0 {
		t.Fatalf("ship spec missing required tuning: %+v", ship)
	}

	rock, err := LoadRockSpec()
	if err != nil {
		t.Fatalf("rock spec: %v", err)
	}
	if rock.Large.Radius <= rock.Medium.Radius || rock.Medium.Radius <= rock.Small.Radius {
		t.Fatalf("rock sizes should shrink: %+v", rock)
	}
	if rock.SplitCount < 2 {
		t.Fatalf("rocks must split into at least 2, got %d", rock.SplitCount)
	}

	hud, err := LoadHUDSpec()
	if err != nil {
		t.Fatalf("hud spec: %v", err)
	}
	if hud.TextSize <= 0 {
		t.Fatalf("hud spec missing text size: %+v", hud)
	}

	wave, err := LoadWaveSpec()
	if err != nil {
		t.Fatalf("wave spec: %v", err)
	}
	if wave.Script == "" {
		t.Fatalf("wave spec should name a pacing script")
	}
	if _, err := Load(wave.Script); err != nil {
		t.Fatalf("pacing script %s: %v", wave.Script, err)
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ship.yaml", "ship.yaml"},
		{"prefabs/ship.yaml", "ship.yaml"},
		{"", ""},
	}
	for _, c := range cases {
		if got := cleanPrefabPath(c.in); got != c.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
