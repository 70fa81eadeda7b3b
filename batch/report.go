/*
 * report.go, part of cavity.
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

package batch

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/rmera/cavity/histo"
	"gonum.org/v1/gonum/stat"
)

// Entry is one void volume in a group.
type Entry struct {
	Job    string
	Volume float64
}

// Group contains the void volumes of all the jobs with the same label, sorted
// in ascending order, and their mean and standard deviation.
type Group struct {
	Label   string
	Entries []Entry
	Mean    float64
	StdDev  float64 //0 for groups with less than 2 entries
}

// Volumes returns the volumes in the group, in ascending order.
func (G *Group) Volumes() []float64 {
	ret := make([]float64, len(G.Entries))
	for i, e := range G.Entries {
		ret[i] = e.Volume
	}
	return ret
}

// Histogram returns the distribution of the volumes of the group in the given number of bins,
// spanning from the smallest to the largest volume.
func (G *Group) Histogram(bins int) *histo.Data {
	v := G.Volumes()
	return histo.NewData(histo.Dividers(v[0], v[len(v)-1], bins), v)
}

// Ranked is the potential on the marker of one job.
type Ranked struct {
	Job    string
	Energy float64
}

// Report contains the results of a batch run, aggregated once all the workers are done.
type Report struct {
	RunID    string
	Mode     Mode
	Results  []*Result //in the order of the jobs
	Skips    []Skip    //in the order of the jobs
	Groups   []Group   //sorted by label
	Energies []Ranked  //in ascending order of energy
}

// VolumeValues returns the void volumes of all the markers in R.
func (R *Result) VolumeValues() []float64 {
	ret := make([]float64, len(R.Volumes))
	for i, v := range R.Volumes {
		ret[i] = v.Volume
	}
	return ret
}

func newReport(runID string, mode Mode, outs []outcome) *Report {
	rep := &Report{RunID: runID, Mode: mode}
	groups := make(map[string]*Group)
	for _, o := range outs {
		switch {
		case o.skip != nil:
			rep.Skips = append(rep.Skips, *o.skip)
		case o.res != nil:
			r := o.res
			rep.Results = append(rep.Results, r)
			for _, v := range r.Volumes {
				g, ok := groups[r.Group]
				if !ok {
					g = &Group{Label: r.Group}
					groups[r.Group] = g
				}
				g.Entries = append(g.Entries, Entry{Job: r.Job, Volume: v.Volume})
			}
			if r.Energy != nil {
				rep.Energies = append(rep.Energies, Ranked{Job: r.Job, Energy: r.Energy.Sum})
			}
		}
	}
	for _, g := range groups {
		sort.SliceStable(g.Entries, func(i, j int) bool { return g.Entries[i].Volume < g.Entries[j].Volume })
		vols := g.Volumes()
		if len(vols) > 1 {
			g.Mean, g.StdDev = stat.MeanStdDev(vols, nil)
		} else {
			g.Mean = vols[0]
		}
		rep.Groups = append(rep.Groups, *g)
	}
	sort.Slice(rep.Groups, func(i, j int) bool { return rep.Groups[i].Label < rep.Groups[j].Label })
	sort.SliceStable(rep.Energies, func(i, j int) bool { return rep.Energies[i].Energy < rep.Energies[j].Energy })
	return rep
}

// Group returns the group with the given label, or nil if there is none.
func (R *Report) Group(label string) *Group {
	for i := range R.Groups {
		if R.Groups[i].Label == label {
			return &R.Groups[i]
		}
	}
	return nil
}

// Write prints the report as text: the files written, the void volumes by group, the
// energy ranking and the skipped jobs.
func (R *Report) Write(w io.Writer) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "Run %s (%s): %d processed, %d skipped\n", R.RunID, R.Mode, len(R.Results), len(R.Skips))
	for _, r := range R.Results {
		if r.Output != "" {
			fmt.Fprintf(b, "Processed file: %s\nModified molecule saved to %s\n", r.Job, r.Output)
		}
	}
	for _, g := range R.Groups {
		fmt.Fprintf(b, "Group: %s (mean %.4f, std. dev. %.4f)\n", g.Label, g.Mean, g.StdDev)
		for _, e := range g.Entries {
			fmt.Fprintf(b, "  %s: %.4f\n", e.Job, e.Volume)
		}
	}
	if len(R.Energies) > 0 {
		fmt.Fprintln(b, "Total potentials on the marker in ascending order:")
		for _, e := range R.Energies {
			fmt.Fprintf(b, "%s: %.6f\n", e.Job, e.Energy)
		}
	}
	for _, s := range R.Skips {
		fmt.Fprintf(b, "Skipped %s: %v\n", s.Job, s.Err)
	}
	return b.Flush()
}
