package ringgraph

import (
	"fmt"
	"strings"
)

// DescriptionPreset selects which overlays a surface builds.
type DescriptionPreset int

const (
	// PresetNone builds no overlays.
	PresetNone DescriptionPreset = iota
	// PresetCentralDescription builds one ProgressReadout bound to the
	// first meter, placed in the middle of the rings.
	PresetCentralDescription
	// PresetMetersDescription builds one FadingLabel per meter.
	PresetMetersDescription
)

// String returns the preset name used in configuration files.
func (p DescriptionPreset) String() string {
	switch p {
	case PresetNone:
		return "none"
	case PresetCentralDescription:
		return "central"
	case PresetMetersDescription:
		return "meters"
	default:
		return fmt.Sprintf("DescriptionPreset(%d)", int(p))
	}
}

// ParsePreset parses a preset name as produced by String.
func ParsePreset(s string) (DescriptionPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PresetNone, nil
	case "central", "central-description":
		return PresetCentralDescription, nil
	case "meters", "meters-description":
		return PresetMetersDescription, nil
	default:
		return PresetNone, fmt.Errorf("unknown description preset %q", s)
	}
}
