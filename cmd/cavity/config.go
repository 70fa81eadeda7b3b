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

package main

import (
	"fmt"
	"strings"

	"github.com/rmera/cavity"
	"github.com/spf13/viper"
)

const envPrefix = "CAVITY"

// newViper returns a viper instance with the defaults of the library, reading
// overrides from CAVITY_* environment variables (e.g. CAVITY_GRID_STEP).
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	def := cavity.DefaultConfig()
	v.SetDefault("default_threshold", def.DefaultThreshold)
	v.SetDefault("halogen_threshold", def.HalogenThreshold)
	v.SetDefault("sulfur_threshold", def.SulfurThreshold)
	radii := make(map[string]interface{}, len(def.Radii))
	for k, r := range def.Radii {
		radii[k] = r
	}
	v.SetDefault("radii", radii) //one key per element, so a file can change just some of them.
	v.SetDefault("default_radius", def.DefaultRadius)
	v.SetDefault("seed_elements", def.SeedElements)
	v.SetDefault("marker_symbol", def.MarkerSymbol)
	v.SetDefault("probe_radius", def.ProbeRadius)
	v.SetDefault("marker_radius", def.MarkerRadius)
	v.SetDefault("grid_step", def.GridStep)
	v.SetDefault("potential", string(def.Potential))
	v.SetDefault("spatial_index", def.SpatialIndex)
	return v
}

// loadConfig reads the YAML file path, if not empty, into v, and returns the resulting,
// validated, configuration. Flags bound to v take precedence over the environment, which takes
// precedence over the file.
func loadConfig(v *viper.Viper, path string) (*cavity.Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("can't read config file %s: %w", path, err)
		}
	}
	cfg := &cavity.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("can't decode configuration: %w", err)
	}
	//viper folds keys to lower case.
	radii := make(map[string]float64, len(cfg.Radii))
	for k, r := range cfg.Radii {
		radii[cavity.CanonicalSymbol(k)] = r
	}
	cfg.Radii = radii
	for i, s := range cfg.SeedElements {
		cfg.SeedElements[i] = cavity.CanonicalSymbol(s)
	}
	cfg.MarkerSymbol = cavity.CanonicalSymbol(cfg.MarkerSymbol)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
