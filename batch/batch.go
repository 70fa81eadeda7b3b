/*
 * batch.go, part of cavity.
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
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rmera/cavity"
	"github.com/rmera/cavity/lj"
	"github.com/rmera/cavity/void"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Mode selects what is done with each molecule.
type Mode int

const (
	//ModeGhost replaces the central fragment by a marker, then measures the void
	//volume and the potential around the marker.
	ModeGhost Mode = iota
	//ModeVoid measures the void volume around every marker of already substituted structures.
	ModeVoid
	//ModeEnergy evaluates the potential on the first marker of already substituted structures.
	ModeEnergy
)

func (m Mode) String() string {
	switch m {
	case ModeGhost:
		return "ghost"
	case ModeVoid:
		return "void"
	case ModeEnergy:
		return "energy"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Job is one structure to process. If Mol is nil, the structure is read from the XYZ file Path.
type Job struct {
	Name string
	Path string
	Mol  *cavity.Molecule
}

// FileJobs returns one Job per path.
func FileJobs(paths []string) []Job {
	ret := make([]Job, len(paths))
	for i, p := range paths {
		ret[i] = Job{Name: filepath.Base(p), Path: p}
	}
	return ret
}

// Result contains everything computed for one job.
type Result struct {
	Job      string
	Group    string
	Pair     *cavity.SeedPair //only in ModeGhost
	Fragment int              //atoms removed, only in ModeGhost
	Output   string           //file where the substituted structure was written, if any
	Volumes  []void.Volume
	Energy   *lj.Result
	Warnings []error
	Duration time.Duration
}

// Skip is a job that could not be processed.
type Skip struct {
	Job string
	Err error
}

// Options for a batch run. The zero value is usable.
type Options struct {
	Workers int //defaults to the number of CPUs
	Mode    Mode
	OutDir  string      //in ModeGhost, the directory where substituted structures are written. Empty means no output.
	Logger  *zap.Logger //defaults to a no-op logger
	Metrics *Metrics    //may be nil
}

// Label returns the group label for a job name: the part of the base name after the
// last '-', up to the first '.' after it. Names without '-' are their own group.
func Label(name string) string {
	base := filepath.Base(name)
	if i := strings.LastIndex(base, "-"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}

// jobName is the name used for the job in the report and for its output file.
func jobName(job Job) string {
	if job.Name != "" {
		return job.Name
	}
	return filepath.Base(job.Path)
}

// checkOutputs makes sure that, in ModeGhost, no two jobs write the same output
// file and no output file replaces an input.
func checkOutputs(jobs []Job, opts Options) error {
	if opts.Mode != ModeGhost || opts.OutDir == "" {
		return nil
	}
	out, err := filepath.Abs(opts.OutDir)
	if err != nil {
		return outputError("Bad output path: %v", err)
	}
	seen := make(map[string]bool, len(jobs))
	for _, job := range jobs {
		name := jobName(job)
		if seen[name] {
			return outputError("Two jobs would write the same output file %s", filepath.Join(opts.OutDir, name))
		}
		seen[name] = true
		if job.Path == "" {
			continue
		}
		in, err := filepath.Abs(job.Path)
		if err != nil {
			return outputError("Bad output path: %v", err)
		}
		if in == filepath.Join(out, name) {
			return outputError("Output file would overwrite the input %s", job.Path)
		}
	}
	return nil
}

func outputError(format string, args ...interface{}) error {
	err := cavity.NewError(cavity.ErrConfig, true, format, args...)
	err.Decorate("batch.Run")
	return err
}

// isSkip reports whether err is one of the per-molecule conditions that cause a job to be skipped.
func isSkip(err error) bool {
	return errors.Is(err, cavity.ErrParse) || errors.Is(err, cavity.ErrNoSeedPair) || errors.Is(err, cavity.ErrNoMarker)
}

type outcome struct {
	res  *Result
	skip *Skip
}

// Run processes all the jobs concurrently, with at most opts.Workers at the same time, and
// returns the aggregated report. A job that fails is recorded as a Skip and doesn't affect the others.
// Run fails before starting if cfg is invalid or, in ModeGhost, if the output files of two
// jobs would collide or replace an input. Otherwise, the only error returned is the context's,
// if it is cancelled before all the jobs are done.
func Run(ctx context.Context, jobs []Job, cfg *cavity.Config, opts Options) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkOutputs(jobs, opts); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	runID := uuid.New().String()
	log = log.With(zap.String("run", runID), zap.Stringer("mode", opts.Mode))
	log.Info("starting batch", zap.Int("jobs", len(jobs)), zap.Int("workers", workers))
	outs := make([]outcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outs[i] = process(job, cfg, opts, log)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		log.Warn("batch cancelled", zap.Error(err))
		return nil, err
	}
	rep := newReport(runID, opts.Mode, outs)
	log.Info("batch done", zap.Int("results", len(rep.Results)), zap.Int("skipped", len(rep.Skips)))
	return rep, nil
}

// process runs one job. It never fails: errors become skips.
func process(job Job, cfg *cavity.Config, opts Options, log *zap.Logger) outcome {
	start := time.Now()
	name := jobName(job)
	log = log.With(zap.String("file", name))
	skip := func(err error) outcome {
		if !isSkip(err) {
			log.Error("unexpected failure", zap.Error(err))
		} else {
			log.Warn("skipped", zap.Error(err))
		}
		opts.Metrics.skipped()
		return outcome{skip: &Skip{Job: name, Err: err}}
	}
	mol := job.Mol
	if mol == nil {
		var err error
		mol, err = cavity.XYZRead(job.Path)
		if err != nil {
			return skip(err)
		}
	}
	res := &Result{Job: name, Group: Label(name)}
	switch opts.Mode {
	case ModeGhost:
		s, err := cavity.Ghost(mol, cfg)
		if err != nil {
			return skip(err)
		}
		res.Pair = &s.Pair
		res.Fragment = len(s.Fragment)
		if opts.OutDir != "" {
			res.Output = filepath.Join(opts.OutDir, name)
			if err = cavity.XYZWrite(res.Output, s.Reduced, s.Comment(name)); err != nil {
				return skip(err)
			}
		}
		last := s.Reduced.Len() - 1
		neighbors := s.Reduced.Without([]int{last})
		vol := void.Estimate(s.Marker.Position, neighbors, cfg)
		res.Volumes = []void.Volume{{Index: last, Result: vol}}
		e := lj.Sum(s.Marker, neighbors, cfg)
		res.Energy = &e
	case ModeVoid:
		vols, err := void.Markers(mol, cfg)
		if err != nil {
			return skip(err)
		}
		res.Volumes = vols
	case ModeEnergy:
		e, err := lj.Marker(mol, cfg)
		if err != nil {
			return skip(err)
		}
		res.Energy = &e
	default:
		return skip(fmt.Errorf("unknown batch mode %v", opts.Mode))
	}
	for _, v := range res.Volumes {
		res.Warnings = append(res.Warnings, v.Warnings...)
		opts.Metrics.observeVolume(v.Volume)
	}
	if res.Energy != nil {
		res.Warnings = append(res.Warnings, res.Energy.Warnings...)
	}
	for _, w := range res.Warnings {
		log.Warn("warning", zap.Error(w))
	}
	res.Duration = time.Since(start)
	opts.Metrics.done(res.Duration)
	fields := []zap.Field{zap.String("group", res.Group), zap.Duration("elapsed", res.Duration)}
	if len(res.Volumes) > 0 {
		fields = append(fields, zap.Float64s("volume", res.VolumeValues()))
	}
	if res.Energy != nil {
		fields = append(fields, zap.Float64("energy", res.Energy.Sum))
	}
	log.Debug("processed", fields...)
	return outcome{res: res}
}
