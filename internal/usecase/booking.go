package usecase

import (
	"context"
	"errors"
	"time"

	"reserva/internal/domain/booking"
	"reserva/internal/domain/resource"
	"reserva/internal/infra"
	"reserva/internal/pkg/clock"
	"reserva/internal/pkg/errs"
	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingConflict     = errors.New("booking window overlaps an active booking")
	ErrBookingFinalized    = errors.New("booking is in a terminal state")
	ErrUnknownResource     = errors.New("booking references an unknown resource")
	ErrInvalidBookingInput = errors.New("invalid booking input")
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type BookingRepository interface {
	List(ctx context.Context, limit int32) ([]*readmodel.BookingRM, error)
	// CreateIfFree must run the overlap check and the insert atomically.
	CreateIfFree(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error)
	ApplyTransition(ctx context.Context, id uuid.UUID, tr booking.Transition, at time.Time) (*readmodel.BookingRM, error)
}

type CreateBookingParams struct {
	Kind          string
	ResourceID    uuid.UUID
	ResourceName  string
	StartDT       time.Time
	EndDT         time.Time
	Quantity      *int32
	RequesterName *string
	RequesterRole *string
	Purpose       *string
}

type BookingUseCase interface {
	List(ctx context.Context, limit int32) ([]*readmodel.BookingRM, error)
	Create(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error)
	Transition(ctx context.Context, id uuid.UUID, tr booking.Transition) (*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	clock       clock.Clock
}

func NewBookingUseCase(bookingRepo BookingRepository, clk clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		clock:       clk,
	}
}

func (b *bookingUseCaseImpl) List(ctx context.Context, limit int32) ([]*readmodel.BookingRM, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return b.bookingRepo.List(ctx, limit)
}

func (b *bookingUseCaseImpl) Create(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error) {
	kind, err := resource.NewKind(params.Kind)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	window, err := booking.NewTimeWindow(params.StartDT, params.EndDT)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	entity, err := booking.NewBooking(
		kind,
		params.ResourceID,
		params.ResourceName,
		window,
		params.Quantity,
		params.RequesterName,
		params.RequesterRole,
		params.Purpose,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	created, err := b.bookingRepo.CreateIfFree(ctx, entity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrBookingConflict
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrUnknownResource
		default:
			return nil, err
		}
	}

	return created, nil
}

func (b *bookingUseCaseImpl) Transition(ctx context.Context, id uuid.UUID, tr booking.Transition) (*readmodel.BookingRM, error) {
	updated, err := b.bookingRepo.ApplyTransition(ctx, id, tr, b.clock.Now())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrBookingFinalized
		default:
			return nil, err
		}
	}

	return updated, nil
}
