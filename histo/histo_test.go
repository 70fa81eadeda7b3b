/*
 * histo_test.go, part of cavity.
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

package histo

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestHisto(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	D := NewData([]float64{0, 1, 2, 3, 4, 8}, rawdata, 3)
	want := []float64{2, 6, 2, 7, 9}
	for i, v := range D.View() {
		if v != want[i] {
			Te.Errorf("Bin %d: %g, expected %g", i, v, want[i])
		}
	}
	if D.Total() != 26 || D.ID() != 3 {
		Te.Errorf("Total %d, ID %d", D.Total(), D.ID())
	}
	if rawdata[0] != 1 {
		Te.Error("The raw data should not be modified")
	}
	D.Normalize()
	if math.Abs(D.Sum()-1) > 1e-12 {
		Te.Errorf("Normalized histogram sums %g", D.Sum())
	}
	D.AddData(0.5, 100)
	D.UnNormalize()
	if math.Abs(D.View()[0]-3) > 1e-9 || D.Total() != 27 {
		Te.Errorf("AddData failed: %v %d", D.View(), D.Total())
	}
	j, err := json.Marshal(D)
	if err != nil || !strings.Contains(string(j), `"total":27`) {
		Te.Errorf("Bad JSON %s %v", j, err)
	}
	if strings.Count(D.String(), "\n") != 5 {
		Te.Errorf("Unexpected string representation:\n%s", D.String())
	}
}

func TestDividers(Te *testing.T) {
	d := Dividers(2, 4, 4)
	if len(d) != 5 || d[0] != 2 || d[1] != 2.5 || d[4] <= 4 {
		Te.Errorf("Wrong dividers %v", d)
	}
	H := NewData(d, []float64{2, 4, 4, 3})
	if H.Total() != 4 || H.View()[3] != 2 {
		Te.Errorf("The maximum should fall in the last bin: %v", H.View())
	}
	if s := Dividers(1, 1, 0); len(s) != 2 || s[1] <= s[0] {
		Te.Errorf("Degenerate range gave %v", s)
	}
}
