package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking transition")
)

type Status string

const (
	StatusRequest Status = "REQUEST"
	StatusOngoing Status = "ONGOING"
	StatusSuccess Status = "SUCCESS"
	StatusCancel  Status = "CANCEL"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequest, StatusOngoing, StatusSuccess, StatusCancel:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still counts against conflict
// detection and blocks resource hard delete.
func (s Status) IsActive() bool {
	return s == StatusRequest || s == StatusOngoing
}

func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusCancel
}

// Transition names one of the staff-driven lifecycle operations.
type Transition string

const (
	TransitionStart  Transition = "start"
	TransitionFinish Transition = "finish"
	TransitionCancel Transition = "cancel"
)

func NewTransition(s string) (Transition, error) {
	tr := Transition(s)
	switch tr {
	case TransitionStart, TransitionFinish, TransitionCancel:
		return tr, nil
	default:
		return "", ErrInvalidTransition
	}
}

// Target returns the status the transition moves a booking into.
func (t Transition) Target() Status {
	switch t {
	case TransitionStart:
		return StatusOngoing
	case TransitionFinish:
		return StatusSuccess
	case TransitionCancel:
		return StatusCancel
	default:
		return ""
	}
}
