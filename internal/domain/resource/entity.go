package resource

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("name is required")
	ErrNegativeQuantity = errors.New("quantity must be non-negative")
)

const DefaultQuantity = 1

type Resource struct {
	id          uuid.UUID
	kind        Kind
	name        string
	subcategory *string
	typ         *string
	quantity    int32
	status      Status
}

func NewResource(kind Kind, name string, subcategory, typ *string, quantity *int32, status *Status) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	qty := int32(DefaultQuantity)
	if quantity != nil {
		if *quantity < 0 {
			return nil, ErrNegativeQuantity
		}
		qty = *quantity
	}

	st := StatusAvailable
	if status != nil {
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		st = *status
	}

	return &Resource{
		id:          uuid.New(),
		kind:        kind,
		name:        name,
		subcategory: subcategory,
		typ:         typ,
		quantity:    qty,
		status:      st,
	}, nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) Kind() Kind           { return r.kind }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Subcategory() *string { return r.subcategory }
func (r *Resource) Type() *string        { return r.typ }
func (r *Resource) Quantity() int32      { return r.quantity }
func (r *Resource) Status() Status       { return r.status }
