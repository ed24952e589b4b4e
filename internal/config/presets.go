package config

var Presets = map[string]map[string]*Config{
	"grid": {
		"axis": {
			Backend: "auto", GroupSize: DefaultGroupSize, DataDir: "runs",
			Grid: GridConfig{ReMin: -6.0, ReMax: 6.0, Im: 0.5, Points: 400},
			Beam: GridBeamDefaults(),
		},
		"wide": {
			Backend: "auto", GroupSize: DefaultGroupSize, DataDir: "runs",
			Grid: GridConfig{ReMin: -12.0, ReMax: 12.0, Im: 2.0, Points: 800},
			Beam: GridBeamDefaults(),
		},
		"fine": {
			Backend: "auto", GroupSize: DefaultGroupSize, DataDir: "runs",
			Grid: GridConfig{ReMin: -2.0, ReMax: 2.0, Im: 0.1, Points: 2000},
			Beam: GridBeamDefaults(),
		},
	},
	"field": {
		"flat": {
			Backend: "auto", GroupSize: DefaultGroupSize, DataDir: "runs",
			Grid: GridConfig{ReMin: -5e-3, ReMax: 5e-3, Im: 0.0, Points: 400},
			Beam: BeamConfig{SigmaX: 2e-3, SigmaY: 5e-4, MinSigmaDiff: DefaultMinSigmaDiff},
		},
		"round": {
			Backend: "auto", GroupSize: DefaultGroupSize, DataDir: "runs",
			Grid: GridConfig{ReMin: -5e-3, ReMax: 5e-3, Im: 0.0, Points: 400},
			Beam: BeamConfig{SigmaX: 1e-3, SigmaY: 1e-3, MinSigmaDiff: DefaultMinSigmaDiff},
		},
		"tall": {
			Backend: "auto", GroupSize: DefaultGroupSize, DataDir: "runs",
			Grid: GridConfig{ReMin: -5e-3, ReMax: 5e-3, Im: 0.0, Points: 400},
			Beam: BeamConfig{SigmaX: 5e-4, SigmaY: 2e-3, MinSigmaDiff: DefaultMinSigmaDiff},
		},
	},
}

func GridBeamDefaults() BeamConfig {
	return BeamConfig{
		SigmaX:       DefaultSigmaX,
		SigmaY:       DefaultSigmaY,
		MinSigmaDiff: DefaultMinSigmaDiff,
	}
}

func GetPreset(kind, preset string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	cfg, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	return names
}
