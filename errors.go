/*
 * errors.go, part of cavity.
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
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every error produced by the library wraps one of these, so
// callers can classify failures with errors.Is.
var (
	// ErrParse marks malformed atom counts or coordinate fields in an input.
	ErrParse = errors.New("cavity: malformed input")
	// ErrNoSeedPair is returned when no seed pair lies within the bond threshold.
	ErrNoSeedPair = errors.New("cavity: no seed pair found")
	// ErrUnknownRadius marks an element missing from the radius table.
	ErrUnknownRadius = errors.New("cavity: unknown element radius")
	// ErrDegenerateGrid marks a sampling grid with no points inside the probe sphere.
	ErrDegenerateGrid = errors.New("cavity: degenerate sampling grid")
	// ErrNoMarker is returned when a substituted structure contains no marker atom.
	ErrNoMarker = errors.New("cavity: no marker atom found")
	// ErrConfig marks an invalid configuration.
	ErrConfig = errors.New("cavity: invalid configuration")
)

// CError is the general error type of the package. It satisfies Error and
// wraps one of the sentinel errors above.
type CError struct {
	msg      string
	filename string
	deco     []string
	critical bool
	kind     error
}

// NewError returns a CError of the kind given (one of the sentinel errors of the package),
// with a message built from format and args.
func NewError(kind error, critical bool, format string, args ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), critical: critical, kind: kind}
}

// Error returns a string with the error message, the file involved, if any, and
// the decoration trail.
func (err *CError) Error() string {
	var b strings.Builder
	b.WriteString(err.msg)
	if err.filename != "" {
		b.WriteString(" (file: " + err.filename + ")")
	}
	if len(err.deco) > 0 {
		b.WriteString(" [" + strings.Join(err.deco, " < ") + "]")
	}
	return b.String()
}

// Decorate adds dec to the decoration trail of the error and returns the trail.
// An empty dec just returns the current trail.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns false for recoverable conditions, which are reported as warnings.
func (err *CError) Critical() bool { return err.critical }

// FileName returns the input file associated to the error, if any.
func (err *CError) FileName() string { return err.filename }

// InFile sets the input file associated to the error and returns the error.
func (err *CError) InFile(name string) *CError {
	err.filename = name
	return err
}

// Unwrap returns the sentinel error that classifies err.
func (err *CError) Unwrap() error { return err.kind }

// errDecorate decorates err with the caller's name if it implements Error,
// otherwise it wraps it in a critical CError.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	ret := &CError{msg: err.Error(), critical: true, kind: err}
	ret.Decorate(caller)
	return ret
}

// IsCritical reports whether err is critical. Errors that don't implement Error
// are considered critical.
func IsCritical(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Critical()
	}
	return err != nil
}
