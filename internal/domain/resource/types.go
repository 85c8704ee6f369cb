package resource

import (
	"errors"
	"strings"
)

var (
	ErrEmptyKind     = errors.New("kind is required")
	ErrInvalidStatus = errors.New("invalid resource status")
)

// Kind is the top-level resource category (e.g. ROOM, EQUIPMENT),
// stored upper-cased.
type Kind struct {
	value string
}

func NewKind(s string) (Kind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Kind{}, ErrEmptyKind
	}
	return Kind{value: s}, nil
}

func (k Kind) Value() string {
	return k.value
}

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusInactive    Status = "Inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusInactive:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
