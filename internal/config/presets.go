package config

// Presets are ready-made input scenarios for demonstrating particular
// behaviors of the sort.
var Presets = map[string]*Config{
	"classic": {
		Count: 7, MinValue: 1, MaxValue: 100, Speed: 1.0, View: ViewBars, ShowPrevious: true,
		Values: []float64{64, 34, 25, 12, 22, 11, 90},
	},
	"reversed": {
		Count: 8, MinValue: 1, MaxValue: 8, Speed: 0.5, View: ViewBars, ShowPrevious: true,
		Values: []float64{8, 7, 6, 5, 4, 3, 2, 1},
	},
	"nearly_sorted": {
		Count: 8, MinValue: 1, MaxValue: 8, Speed: 0.5, View: ViewBars, ShowPrevious: true,
		Values: []float64{1, 2, 4, 3, 5, 6, 8, 7},
	},
	"duplicates": {
		Count: 8, MinValue: 1, MaxValue: 3, Speed: 0.5, View: ViewBars, ShowPrevious: true,
		Values: []float64{3, 1, 2, 3, 1, 2, 3, 1},
	},
	"two_values": {
		Count: 10, MinValue: 0, MaxValue: 1, Speed: 0.3, View: ViewTree, ShowPrevious: false,
		Values: []float64{1, 0, 1, 1, 0, 0, 1, 0, 1, 0},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
