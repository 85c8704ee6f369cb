package booking

import (
	"errors"
	"strings"

	"reserva/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName = errors.New("resource name is required")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
)

type Booking struct {
	id            uuid.UUID
	kind          resource.Kind
	resourceID    uuid.UUID
	resourceName  string
	window        TimeWindow
	quantity      *int32
	requesterName *string
	requesterRole *string
	purpose       *string
	status        Status
}

// NewBooking builds a booking in the initial REQUEST state. The resource name
// is a denormalized snapshot kept for history after resource deletion.
func NewBooking(
	kind resource.Kind,
	resourceID uuid.UUID,
	resourceName string,
	window TimeWindow,
	quantity *int32,
	requesterName, requesterRole, purpose *string,
) (*Booking, error) {
	resourceName = strings.TrimSpace(resourceName)
	if resourceName == "" {
		return nil, ErrEmptyResourceName
	}
	if quantity != nil && *quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return &Booking{
		id:            uuid.New(),
		kind:          kind,
		resourceID:    resourceID,
		resourceName:  resourceName,
		window:        window,
		quantity:      quantity,
		requesterName: requesterName,
		requesterRole: requesterRole,
		purpose:       purpose,
		status:        StatusRequest,
	}, nil
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Kind() resource.Kind    { return b.kind }
func (b *Booking) ResourceID() uuid.UUID  { return b.resourceID }
func (b *Booking) ResourceName() string   { return b.resourceName }
func (b *Booking) Window() TimeWindow     { return b.window }
func (b *Booking) Quantity() *int32       { return b.quantity }
func (b *Booking) RequesterName() *string { return b.requesterName }
func (b *Booking) RequesterRole() *string { return b.requesterRole }
func (b *Booking) Purpose() *string       { return b.purpose }
func (b *Booking) Status() Status         { return b.status }
