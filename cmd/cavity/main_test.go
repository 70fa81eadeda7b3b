/*
 * main_test.go, part of cavity.
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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/cavity"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cluster = `5
C-N pair with a neighbor
C 0.0 0.0 0.0
N 1.3 0.0 0.0
H -1.0 0.0 0.0
O 0.65 3.2 0.0
H 0.65 4.1 0.0
`

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cavity.yaml")
	yaml := "potential: lj126\nprobe_radius: 2.5\nradii:\n  Cl: 1.80\n  Ba: 2.68\nseed_elements: [c, o]\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CAVITY_GRID_STEP", "0.05")
	cfg, err := loadConfig(newViper(), path)
	require.NoError(t, err)
	assert.Equal(t, cavity.LJ126, cfg.Potential)
	assert.Equal(t, 2.5, cfg.ProbeRadius)
	assert.Equal(t, 0.05, cfg.GridStep)
	assert.Equal(t, 1.80, cfg.Radii["Cl"])
	assert.Equal(t, 2.68, cfg.Radii["Ba"])
	assert.Equal(t, 1.70, cfg.Radii["C"], "radii not in the file keep their defaults")
	assert.Equal(t, []string{"C", "O"}, cfg.SeedElements)
	assert.Equal(t, 1.8, cfg.DefaultThreshold)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_step: -1\n"), 0o644))
	_, err := loadConfig(newViper(), path)
	assert.ErrorIs(t, err, cavity.ErrConfig)
	_, err = loadConfig(newViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGhostCommand(t *testing.T) {
	in := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "cluster-A.xyz"), []byte(cluster), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "empty-A.xyz"), []byte("1\n\nO 0 0 0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("ignored"), 0o644))
	out := t.TempDir()
	metrics := filepath.Join(t.TempDir(), "cavity.prom")
	var buf bytes.Buffer
	cmd := newRootCommand(context.Background(), &buf)
	cmd.SetArgs([]string{"ghost", in, "--out", out, "--grid-step", "0.2", "--metrics-file", metrics, "--log-level", "error"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Processed file: cluster-A.xyz")
	assert.Contains(t, buf.String(), "Skipped empty-A.xyz")
	assert.Contains(t, buf.String(), "Group: A")
	mol, err := cavity.XYZRead(filepath.Join(out, "cluster-A.xyz"))
	require.NoError(t, err)
	assert.Equal(t, []string{"O", "H", "Ba"}, mol.Symbols())
	_, err = os.Stat(metrics)
	assert.NoError(t, err)

	buf.Reset()
	cmd = newRootCommand(context.Background(), &buf)
	cmd.SetArgs([]string{"energy", out, "--log-level", "error"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "cluster-A.xyz:")
}

func TestFlagsOverrideConfig(t *testing.T) {
	var buf bytes.Buffer
	var cmd *cobra.Command
	require.NotPanics(t, func() { cmd = newRootCommand(context.Background(), &buf) })
	path := filepath.Join(t.TempDir(), "cluster.xyz")
	require.NoError(t, os.WriteFile(path, []byte(cluster), 0o644))
	cmd.SetArgs([]string{"fragments", path, "--potential", "morse", "--log-level", "error"})
	assert.ErrorIs(t, cmd.Execute(), cavity.ErrConfig)
}

func TestGhostOutputOverInput(t *testing.T) {
	in := t.TempDir()
	path := filepath.Join(in, "cluster-A.xyz")
	require.NoError(t, os.WriteFile(path, []byte(cluster), 0o644))
	var buf bytes.Buffer
	cmd := newRootCommand(context.Background(), &buf)
	cmd.SetArgs([]string{"ghost", in, "--out", in, "--log-level", "error"})
	assert.ErrorIs(t, cmd.Execute(), cavity.ErrConfig)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cluster, string(data))
}

func TestFragmentsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cluster.xyz")
	require.NoError(t, os.WriteFile(path, []byte(cluster), 0o644))
	var buf bytes.Buffer
	cmd := newRootCommand(context.Background(), &buf)
	cmd.SetArgs([]string{"fragments", path, "--log-level", "error"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "2 fragments")
	assert.Contains(t, buf.String(), "central fragment: [0 1 2]")
}

func TestInputFiles(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"b.xyz", "a.xyz.gz", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
	files, err := inputFiles([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.xyz.gz"), filepath.Join(dir, "b.xyz")}, files)
	_, err = inputFiles([]string{t.TempDir()})
	assert.Error(t, err)
}
