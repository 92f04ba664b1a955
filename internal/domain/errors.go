package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Precondition errors
	ErrMsgInvalidAmount   = "invalid amount"
	ErrMsgInvalidTransfer = "invalid transfer"

	// Broken possession errors
	ErrMsgBroken           = "possession is broken"
	ErrMsgAlreadyDestroyed = "already destroyed"
	ErrMsgPurseBurst       = "purse burst"

	// Placement errors
	ErrMsgInvalidPlacement = "invalid placement"
	ErrMsgCapacityExceeded = "capacity exceeded"
	ErrMsgUnknownAnchor    = "unknown anchor"
	ErrMsgNotHeld          = "possession not held by this holder"

	// Entity errors
	ErrMsgDeadEntity       = "entity is dead"
	ErrMsgDeadEntityTarget = "dead entity cannot take part in combat"

	// Combat errors
	ErrMsgInvalidTarget = "invalid target"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid armor catalog"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// Specialised errors wrap their kind so errors.Is matches both.
var (
	ErrInvalidAmount   = errors.New(ErrMsgInvalidAmount)
	ErrInvalidTransfer = errors.New(ErrMsgInvalidTransfer)

	ErrBroken           = errors.New(ErrMsgBroken)
	ErrAlreadyDestroyed = fmt.Errorf("%w: %s", ErrBroken, ErrMsgAlreadyDestroyed)
	ErrPurseBurst       = fmt.Errorf("%w: %s", ErrBroken, ErrMsgPurseBurst)

	ErrInvalidPlacement = errors.New(ErrMsgInvalidPlacement)
	ErrCapacityExceeded = fmt.Errorf("%w: %s", ErrInvalidPlacement, ErrMsgCapacityExceeded)
	ErrUnknownAnchor    = errors.New(ErrMsgUnknownAnchor)
	ErrNotHeld          = errors.New(ErrMsgNotHeld)

	ErrDeadEntity       = errors.New(ErrMsgDeadEntity)
	ErrDeadEntityTarget = fmt.Errorf("%w: %s", ErrDeadEntity, ErrMsgDeadEntityTarget)

	ErrInvalidTarget = errors.New(ErrMsgInvalidTarget)

	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
)
