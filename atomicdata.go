/*
 * atomicdata.go, part of cavity.
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

import "strings"

//Bond-length thresholds, in A. Bonds to halogens are allowed to be longer.
const (
	defaultThreshold = 1.8
	halogenThreshold = 2.2
	sulfurThreshold  = 1.8
)

//Marker ("ghost" atom) parameters. The probe radius delimits the sphere sampled for the
//void volume, the marker radius is the Bondi radius of Ba, used for the potential.
const (
	markerSymbol  = "Ba"
	probeRadius   = 2.0
	markerRadius  = 2.68
	defaultRadius = 1.20 //H
	gridStep      = 0.1
)

//A map for assigning van der Waals radii to elements
//Values from Bondi, 10.1021/j100785a001
//Note that just common organic elements are present
var symbolVdwrad = map[string]float64{
	"H":  1.20,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"Cl": 1.75,
	"Br": 1.85,
	"I":  1.98,
	"S":  1.80,
}

// Category classifies elements for the purpose of choosing a bond threshold.
type Category int

const (
	Other Category = iota
	Halogen
	Sulfur
)

func (c Category) String() string {
	switch c {
	case Halogen:
		return "halogen"
	case Sulfur:
		return "sulfur"
	default:
		return "other"
	}
}

// CategoryOf returns the bond-threshold category of the element with the given symbol.
func CategoryOf(symbol string) Category {
	switch symbol {
	case "F", "Cl", "Br", "I":
		return Halogen
	case "S":
		return Sulfur
	}
	return Other
}

// CanonicalSymbol returns symbol with the first letter in upper case and the rest in
// lower case, i.e. "CL" and "cl" become "Cl". Configuration readers that fold keys to lower
// case need it to map their keys back to element symbols.
func CanonicalSymbol(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// BondiRadii returns a copy of the default van der Waals radius table.
func BondiRadii() map[string]float64 {
	ret := make(map[string]float64, len(symbolVdwrad))
	for k, v := range symbolVdwrad {
		ret[k] = v
	}
	return ret
}
