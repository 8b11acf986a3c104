package sensor

// Quantum efficiency profiles for photometric luminance extraction.
// The weights describe the relative spectral response of a sensor's
// RGB channels; by convention they sum close to 1.0. Table derived
// from SPCC (Spectrophotometric Color Calibration) data.

// A Profile is an immutable triple of RGB weighting coefficients plus
// descriptive metadata. Held by read-only reference throughout the
// pipeline.
type Profile struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"` // "standard", "sensor-specific", "narrowband"
	RWeight     float64 `yaml:"rweight"`
	GWeight     float64 `yaml:"gweight"`
	BWeight     float64 `yaml:"bweight"`
}

// Profiles is the built-in database. Index 0 is the universal default
// (Rec.709) and is what everything falls back to.
var Profiles = []Profile{
	// --- standard ---
	{"Rec.709 (Recommended)", "ITU-R BT.709 standard for sRGB/HDTV", "standard", 0.2126, 0.7152, 0.0722},

	// --- Sony modern BSI (APS-C / full frame) ---
	{"Sony IMX571 (ASI2600/QHY268)", "Sony IMX571 26MP APS-C BSI (STARVIS)", "sensor-specific", 0.2944, 0.5021, 0.2035},
	{"Sony IMX455 (ASI6200/QHY600)", "Sony IMX455 61MP Full Frame BSI", "sensor-specific", 0.2987, 0.5001, 0.2013},
	{"Sony IMX410 (ASI2400)", "Sony IMX410 24MP Full Frame (Large Pixels)", "sensor-specific", 0.3015, 0.5050, 0.1935},
	{"Sony IMX269 (Altair/ToupTek)", "Sony IMX269 20MP 4/3\" BSI", "sensor-specific", 0.3040, 0.5010, 0.1950},
	{"Sony IMX294 (ASI294)", "Sony IMX294 11.7MP 4/3\" BSI", "sensor-specific", 0.3068, 0.5008, 0.1925},

	// --- Sony medium format / square ---
	{"Sony IMX533 (ASI533)", "Sony IMX533 9MP 1\" Square BSI", "sensor-specific", 0.2910, 0.5072, 0.2018},
	{"Sony IMX676 (ASI676)", "Sony IMX676 12MP Square BSI (Starvis 2)", "sensor-specific", 0.2880, 0.5100, 0.2020},

	// --- Sony planetary / guiding (high sensitivity) ---
	{"Sony IMX585 (ASI585)", "Sony IMX585 8.3MP 1/1.2\" BSI (STARVIS 2)", "sensor-specific", 0.3431, 0.4822, 0.1747},
	{"Sony IMX662 (ASI662)", "Sony IMX662 2.1MP 1/2.8\" BSI (STARVIS 2)", "sensor-specific", 0.3430, 0.4821, 0.1749},
	{"Sony IMX678 (ASI678)", "Sony IMX678 8MP BSI (STARVIS 2)", "sensor-specific", 0.3426, 0.4825, 0.1750},
	{"Sony IMX462 (ASI462)", "Sony IMX462 2MP 1/2.8\" (High NIR)", "sensor-specific", 0.3333, 0.4866, 0.1801},
	{"Sony IMX715 (ASI715)", "Sony IMX715 8MP (Starvis 2)", "sensor-specific", 0.3410, 0.4840, 0.1750},
	{"Sony IMX482 (ASI482)", "Sony IMX482 2MP (Large Pixels)", "sensor-specific", 0.3150, 0.4950, 0.1900},
	{"Sony IMX183 (ASI183)", "Sony IMX183 20MP 1\" BSI", "sensor-specific", 0.2967, 0.4983, 0.2050},
	{"Sony IMX178 (ASI178)", "Sony IMX178 6.4MP 1/1.8\" BSI", "sensor-specific", 0.2346, 0.5206, 0.2448},
	{"Sony IMX224 (ASI224)", "Sony IMX224 1.27MP 1/3\" BSI", "sensor-specific", 0.3402, 0.4765, 0.1833},

	// --- Canon DSLR ---
	{"Canon EOS (Modern)", "Canon CMOS (Digic 4/5 Era)", "sensor-specific", 0.2600, 0.5200, 0.2200},
	{"Canon EOS (Legacy)", "Canon CMOS (Legacy Digic 2/3)", "sensor-specific", 0.2450, 0.5350, 0.2200},

	// --- Nikon DSLR ---
	{"Nikon DSLR (Modern)", "Nikon DX/FX CMOS (Modern)", "sensor-specific", 0.2650, 0.5100, 0.2250},
	{"Nikon DSLR (Legacy)", "Nikon CMOS (Legacy)", "sensor-specific", 0.2500, 0.5300, 0.2200},

	// --- Fuji / others ---
	{"Fujifilm X-Trans 5 HR", "Fujifilm X-Trans 5 (40MP)", "sensor-specific", 0.2800, 0.5100, 0.2100},
	{"Panasonic MN34230 (ASI1600)", "Panasonic MN34230 4/3\" CMOS", "sensor-specific", 0.2650, 0.5250, 0.2100},

	// --- smart telescopes ---
	{"ZWO Seestar S50", "ZWO Seestar S50 (IMX462)", "sensor-specific", 0.3333, 0.4866, 0.1801},
	{"ZWO Seestar S30", "ZWO Seestar S30", "sensor-specific", 0.2928, 0.5053, 0.2019},

	// --- narrowband ---
	{"Narrowband HOO", "Bicolor palette: Ha=Red, OIII=Green+Blue", "narrowband", 0.5000, 0.2500, 0.2500},
	{"Narrowband SHO", "Hubble palette: SII=Red, Ha=Green, OIII=Blue", "narrowband", 0.3333, 0.3400, 0.3267},
}

// Default returns the Rec.709 profile.
func Default() Profile { return Profiles[0] }

// ByName looks a profile up by its exact name.
func ByName(name string) (Profile, bool) {
	for _, p := range Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names lists all built-in profile names, in table order.
func Names() []string {
	out := make([]string, len(Profiles))
	for i, p := range Profiles {
		out[i] = p.Name
	}
	return out
}
