/*
 * files.go, part of cavity.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/cavity/v3"
)

// XYZ files with names ending in .zst or .gz are compressed with zstd or gzip, respectively.
const (
	zstdExt = ".zst"
	gzipExt = ".gz"
)

// ReadXYZ reads one structure in XYZ format from r. name is only used to label the
// molecule and the errors. Lines after the last atom are ignored.
// Element symbols are kept as they appear in the file.
func ReadXYZ(r io.Reader, name string) (*Molecule, error) {
	xyz := bufio.NewReader(r)
	parseErr := func(format string, args ...interface{}) error {
		err := NewError(ErrParse, true, format, args...).InFile(name)
		err.Decorate("ReadXYZ")
		return err
	}
	line, err := xyz.ReadString('\n')
	if err != nil && line == "" {
		return nil, parseErr("Empty XYZ input")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, parseErr("Ill formatted atom count %q", strings.TrimSpace(line))
	}
	if natoms <= 0 {
		return nil, parseErr("Atom count must be positive, got %d", natoms)
	}
	_, err = xyz.ReadString('\n') //the comment
	if err != nil {
		return nil, parseErr("XYZ input ends before the comment line")
	}
	ats := make([]*Atom, natoms)
	coords := make([]float64, 3*natoms)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return nil, parseErr("Expected %d atoms, found %d", natoms, i)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, parseErr("Line %d ill formed: %q", i+3, strings.TrimSpace(line))
		}
		ats[i] = &Atom{Symbol: fields[0], ID: i + 1}
		for j := 0; j < 3; j++ {
			coords[3*i+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, parseErr("Line %d: bad coordinate %q", i+3, fields[j+1])
			}
		}
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "ReadXYZ")
	}
	mol, err := NewMolecule(ats, c)
	if err != nil {
		return nil, errDecorate(err, "ReadXYZ")
	}
	mol.Name = name
	return mol, nil
}

// XYZRead reads the XYZ file xyzname, which can be compressed (see above).
func XYZRead(xyzname string) (*Molecule, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, NewError(ErrParse, true, "Can't open file: %s", err.Error()).InFile(xyzname)
	}
	defer f.Close()
	r, err := decompressor(f, xyzname)
	if err != nil {
		e := NewError(ErrParse, true, "Can't decompress: %s", err.Error()).InFile(xyzname)
		e.Decorate("XYZRead")
		return nil, e
	}
	defer r.Close()
	mol, err := ReadXYZ(r, filepath.Base(xyzname))
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return mol, nil
}

// WriteXYZ writes mol to w in XYZ format, with the given comment.
// Newlines in the comment are replaced by spaces.
func WriteXYZ(w io.Writer, mol *Molecule, comment string) error {
	comment = strings.NewReplacer("\n", " ", "\r", " ").Replace(comment)
	if _, err := fmt.Fprintf(w, "%d\n%s\n", mol.Len(), comment); err != nil {
		return errDecorate(err, "WriteXYZ")
	}
	for i, at := range mol.Atoms {
		c := mol.Coord(i)
		if _, err := fmt.Fprintf(w, "%-2s %14.8f %14.8f %14.8f\n", at.Symbol, c[0], c[1], c[2]); err != nil {
			return errDecorate(err, "WriteXYZ")
		}
	}
	return nil
}

// XYZWrite writes mol to the file xyzname, which is created or truncated. The file is
// compressed if its name ends in .zst or .gz.
func XYZWrite(xyzname string, mol *Molecule, comment string) error {
	f, err := os.Create(xyzname)
	if err != nil {
		return errDecorate(err, "XYZWrite")
	}
	defer f.Close()
	w, err := compressor(f, xyzname)
	if err != nil {
		return errDecorate(err, "XYZWrite")
	}
	bw := bufio.NewWriter(w)
	if err = WriteXYZ(bw, mol, comment); err != nil {
		w.Close()
		return errDecorate(err, "XYZWrite")
	}
	if err = bw.Flush(); err != nil {
		w.Close()
		return errDecorate(err, "XYZWrite")
	}
	if err = w.Close(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	return errDecorate(f.Close(), "XYZWrite")
}

// zstd.Decoder.Close doesn't return an error, so it doesn't implement io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func decompressor(r io.Reader, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case zstdExt:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case gzipExt:
		return gzip.NewReader(r)
	}
	return io.NopCloser(r), nil
}

func compressor(w io.Writer, name string) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case zstdExt:
		return zstd.NewWriter(w)
	case gzipExt:
		return gzip.NewWriter(w), nil
	}
	return nopWriteCloser{w}, nil
}

// IsXYZName reports whether name looks like an XYZ file, compressed or not.
func IsXYZName(name string) bool {
	n := strings.ToLower(name)
	n = strings.TrimSuffix(strings.TrimSuffix(n, zstdExt), gzipExt)
	return strings.HasSuffix(n, ".xyz")
}
