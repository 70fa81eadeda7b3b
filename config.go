/*
 * config.go, part of cavity.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * cavity is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package cavity

import (
	"fmt"
	"strings"
)

// PotentialMode selects the form of the pair potential between the marker and its neighbors.
type PotentialMode string

const (
	//Repulsive uses only the (rho/d)^12 term.
	Repulsive PotentialMode = "repulsive"
	//LJ126 uses (rho/d)^12 - (rho/d)^6.
	LJ126 PotentialMode = "lj126"
)

// Config contains all the tables and parameters used by the analysis. It is passed explicitly to
// every operation, and it is not modified by them, so one Config can be shared by
// concurrent workers. The mapstructure tags allow reading it from configuration files.
type Config struct {
	DefaultThreshold float64            `mapstructure:"default_threshold"`
	HalogenThreshold float64            `mapstructure:"halogen_threshold"`
	SulfurThreshold  float64            `mapstructure:"sulfur_threshold"`
	Radii            map[string]float64 `mapstructure:"radii"`
	DefaultRadius    float64            `mapstructure:"default_radius"` //used for unknown elements in the void volume.
	SeedElements     []string           `mapstructure:"seed_elements"`
	MarkerSymbol     string             `mapstructure:"marker_symbol"`
	ProbeRadius      float64            `mapstructure:"probe_radius"`
	MarkerRadius     float64            `mapstructure:"marker_radius"`
	GridStep         float64            `mapstructure:"grid_step"`
	Potential        PotentialMode      `mapstructure:"potential"`
	SpatialIndex     bool               `mapstructure:"spatial_index"`
}

// DefaultConfig returns a Config with the default values: bond thresholds of 1.8 A (2.2 A for
// halogens), Bondi radii, C-N seeds, a Ba marker, a 2.0 A probe sphere sampled every 0.1 A,
// and the purely repulsive potential.
func DefaultConfig() *Config {
	return &Config{
		DefaultThreshold: defaultThreshold,
		HalogenThreshold: halogenThreshold,
		SulfurThreshold:  sulfurThreshold,
		Radii:            BondiRadii(),
		DefaultRadius:    defaultRadius,
		SeedElements:     []string{"C", "N"},
		MarkerSymbol:     markerSymbol,
		ProbeRadius:      probeRadius,
		MarkerRadius:     markerRadius,
		GridStep:         gridStep,
		Potential:        Repulsive,
	}
}

// Copy returns a deep copy of C.
func (C *Config) Copy() *Config {
	ret := *C
	ret.Radii = make(map[string]float64, len(C.Radii))
	for k, v := range C.Radii {
		ret.Radii[k] = v
	}
	ret.SeedElements = append([]string(nil), C.SeedElements...)
	return &ret
}

// Threshold returns the maximum bond length to an atom with the given symbol.
func (C *Config) Threshold(symbol string) float64 {
	switch CategoryOf(symbol) {
	case Halogen:
		return C.HalogenThreshold
	case Sulfur:
		return C.SulfurThreshold
	}
	return C.DefaultThreshold
}

// Radius returns the van der Waals radius for the symbol, and whether it
// is in the table.
func (C *Config) Radius(symbol string) (float64, bool) {
	r, ok := C.Radii[symbol]
	return r, ok
}

// Validate checks that all the thresholds, radii and steps are strictly positive, that there are
// 2 seed elements, and that the potential mode is known.
func (C *Config) Validate() error {
	var problems []string
	positive := []struct {
		name string
		v    float64
	}{
		{"default_threshold", C.DefaultThreshold},
		{"halogen_threshold", C.HalogenThreshold},
		{"sulfur_threshold", C.SulfurThreshold},
		{"default_radius", C.DefaultRadius},
		{"probe_radius", C.ProbeRadius},
		{"marker_radius", C.MarkerRadius},
		{"grid_step", C.GridStep},
	}
	for _, p := range positive {
		if p.v <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive (got %g)", p.name, p.v))
		}
	}
	for k, v := range C.Radii {
		if v <= 0 {
			problems = append(problems, fmt.Sprintf("radius for %s must be positive (got %g)", k, v))
		}
	}
	if len(C.SeedElements) != 2 || C.SeedElements[0] == "" || C.SeedElements[1] == "" {
		problems = append(problems, fmt.Sprintf("exactly 2 seed elements are needed (got %v)", C.SeedElements))
	}
	if C.MarkerSymbol == "" {
		problems = append(problems, "marker_symbol can't be empty")
	}
	if C.Potential != Repulsive && C.Potential != LJ126 {
		problems = append(problems, fmt.Sprintf("unknown potential mode %q", C.Potential))
	}
	if len(problems) > 0 {
		err := NewError(ErrConfig, true, "Invalid configuration: %s", strings.Join(problems, "; "))
		err.Decorate("Validate")
		return err
	}
	return nil
}
