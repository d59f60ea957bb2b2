// SPDX-License-Identifier: MIT
// Package: motifguard/automaton
//
// errors.go — sentinel errors for the automaton package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Configuration failures wrap ErrConfig AND the precise cause.
//   • Nothing here is retried: builds are pure and deterministic.

package automaton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/motifguard/iupac"
	"github.com/katalvlaran/motifguard/progress"
)

// ErrConfig indicates an invalid build request. Nothing is explored and
// no partial machine is returned.
var ErrConfig = errors.New("automaton: invalid configuration")

// Causes wrapped together with ErrConfig.
var (
	ErrEmptyMotif   = iupac.ErrEmptyMotif
	ErrInvalidCode  = iupac.ErrInvalidCode
	ErrMotifTooLong = progress.ErrMotifTooLong
)

// ErrInternal indicates a broken construction invariant. It signals a
// programming defect, never bad input.
var ErrInternal = errors.New("automaton: internal invariant violated")

// configErrorf wraps cause with ErrConfig.
func configErrorf(cause error) error {
	return fmt.Errorf("%w: %w", ErrConfig, cause)
}
