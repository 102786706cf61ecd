package bintrie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the parent of every caller error a validated
	// entry point may panic with.
	ErrInvalidArgument = errors.New("bintrie: invalid argument")

	// ErrItemRange reports an item with the leaf bit (bit 31) set.
	ErrItemRange = fmt.Errorf("%w: item out of range", ErrInvalidArgument)
	// ErrGroupRange reports a Key or Lookup group outside [0, 16).
	ErrGroupRange = fmt.Errorf("%w: group out of range", ErrInvalidArgument)
	// ErrCandidateRange reports a Heuristic candidate outside [0, 16).
	ErrCandidateRange = fmt.Errorf("%w: candidate out of range", ErrInvalidArgument)
	// ErrDepth reports a zero depth.
	ErrDepth = fmt.Errorf("%w: depth must be positive", ErrInvalidArgument)

	// ErrCapacity reports that the arena cannot address another node.
	ErrCapacity = errors.New("bintrie: node capacity exhausted")
)
