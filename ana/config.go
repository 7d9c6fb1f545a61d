// Package ana drives the four-lepton analysis: it streams every sample
// of every category, weights and selects events, and hands the
// surviving mass spectra to the exporter.
package ana

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind distinguishes observed data from simulation. The two kinds take
// different paths through the pipeline: simulation is weighted and
// normalized, data is counted as-is.
type Kind int

const (
	KindData Kind = iota
	KindMC
)

func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindMC:
		return "mc"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalYAML() (interface{}, error) { return k.String(), nil }

func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	switch node.Value {
	case "data":
		*k = KindData
	case "mc", "simulation":
		*k = KindMC
	default:
		return fmt.Errorf("ana: unknown sample kind %q", node.Value)
	}
	return nil
}

// Color is a display color, read from YAML as "#rrggbb". Presentation
// only: it never influences histogram content.
type Color color.NRGBA

func (c Color) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	s := strings.TrimPrefix(node.Value, "#")
	if len(s) != 6 {
		return fmt.Errorf("ana: invalid color %q", node.Value)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("ana: invalid color %q: %w", node.Value, err)
	}
	*c = Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	return nil
}

// NRGBA returns the color in the form gonum/plot consumes.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA(c) }

// Category is a named physics process group made of one or more
// underlying samples, all observed or all simulated.
type Category struct {
	Name    string   `yaml:"name"`
	Kind    Kind     `yaml:"kind"`
	Color   Color    `yaml:"color"`
	Samples []string `yaml:"samples"`
}

// Config carries the run-wide knobs. It is passed explicitly into the
// Runner; nothing in the pipeline reads ambient state.
type Config struct {
	Luminosity float64    `yaml:"luminosity"` // integrated luminosity, fb⁻¹
	Fraction   float64    `yaml:"fraction"`   // fraction of each file to read, (0,1]
	Base       string     `yaml:"base"`       // sample store: local dir, http(s) or xrootd URL
	BatchSize  int        `yaml:"batch_size"` // events per read batch
	Categories []Category `yaml:"categories"`
}

// DefaultConfig is the standard H→ZZ*→4ℓ run over the full 13 TeV
// open-data four-lepton skim.
func DefaultConfig() Config {
	return Config{
		Luminosity: 10.0,
		Fraction:   1.0,
		Base:       "https://atlas-opendata.web.cern.ch/atlas-opendata/samples/2020/4lep/",
		BatchSize:  4096,
		Categories: []Category{
			{
				Name:    "Data",
				Kind:    KindData,
				Color:   Color{A: 255},
				Samples: []string{"data_A", "data_B", "data_C", "data_D"},
			},
			{
				Name:    "Signal (m_H = 125 GeV)",
				Kind:    KindMC,
				Color:   Color{R: 0x00, G: 0xcd, B: 0xff, A: 255},
				Samples: []string{"ggH125_ZZ4lep", "VBFH125_ZZ4lep", "WH125_ZZ4lep", "ZH125_ZZ4lep"},
			},
			{
				Name:    "Background ZZ*",
				Kind:    KindMC,
				Color:   Color{R: 0xff, A: 255},
				Samples: []string{"llll"},
			},
			{
				Name:    "Background Z, ttbar",
				Kind:    KindMC,
				Color:   Color{R: 0x87, B: 0xda, A: 255},
				Samples: []string{"Zee", "Zmumu", "ttbar_lep"},
			},
		},
	}
}

// LoadConfig reads a YAML config file on top of the defaults: fields
// absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ana: could not read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("ana: could not parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the run-wide invariants before any file is touched.
func (c Config) Validate() error {
	if c.Luminosity <= 0 {
		return fmt.Errorf("ana: luminosity %v must be > 0", c.Luminosity)
	}
	if c.Fraction <= 0 || c.Fraction > 1 {
		return fmt.Errorf("ana: fraction %v out of (0,1]", c.Fraction)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("ana: no categories configured")
	}
	for _, cat := range c.Categories {
		if len(cat.Samples) == 0 {
			return fmt.Errorf("ana: category %q has no samples", cat.Name)
		}
	}
	return nil
}

func (c Config) base() string {
	return strings.TrimRight(c.Base, "/") + "/"
}

// samplePath resolves a sample name to its file under the store.
// Observed data and simulation live in different subdirectories, and
// simulated file names embed the dataset ID.
func (c Config) samplePath(cat Category, sample string, dsid int) string {
	switch cat.Kind {
	case KindData:
		return c.base() + "Data/" + sample + ".4lep.root"
	default:
		return fmt.Sprintf("%sMC/mc_%d.%s.4lep.root", c.base(), dsid, sample)
	}
}
