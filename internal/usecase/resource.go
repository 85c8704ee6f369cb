package usecase

import (
	"context"
	"errors"

	"reserva/internal/domain/resource"
	"reserva/internal/infra"
	"reserva/internal/pkg/errs"
	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound     = errors.New("resource not found")
	ErrDuplicateResource    = errors.New("resource with the same kind and name already exists")
	ErrResourceInUse        = errors.New("resource has active bookings")
	ErrEmptyUpdate          = errors.New("update contains no fields")
	ErrInvalidResourceInput = errors.New("invalid resource input")
)

// DeleteMode distinguishes the two removal paths: soft keeps the row for
// booking history, hard removes it together with terminal bookings.
type DeleteMode int

const (
	DeleteSoft DeleteMode = iota
	DeleteHard
)

// ResourcePatch is the allow-list of updatable fields; nil means unchanged.
type ResourcePatch struct {
	Name        *string
	Subcategory *string
	Type        *string
	Quantity    *int32
	Status      *resource.Status
}

func (p ResourcePatch) IsEmpty() bool {
	return p.Name == nil && p.Subcategory == nil && p.Type == nil && p.Quantity == nil && p.Status == nil
}

type ResourceRepository interface {
	List(ctx context.Context, kind *string) ([]*readmodel.ResourceRM, error)
	Create(ctx context.Context, res *resource.Resource) (*readmodel.ResourceRM, error)
	Update(ctx context.Context, id uuid.UUID, patch ResourcePatch) (*readmodel.ResourceRM, error)
	SetStatus(ctx context.Context, id uuid.UUID, status resource.Status) error
	DeleteWithBookings(ctx context.Context, id uuid.UUID) error
}

type CreateResourceParams struct {
	Kind        string
	Name        string
	Subcategory *string
	Type        *string
	Quantity    *int32
	Status      *string
}

type UpdateResourceParams struct {
	Name        *string
	Subcategory *string
	Type        *string
	Quantity    *int32
	Status      *string
}

type ResourceUseCase interface {
	List(ctx context.Context, kind *string) ([]*readmodel.ResourceRM, error)
	Create(ctx context.Context, params CreateResourceParams) (*readmodel.ResourceRM, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateResourceParams) (*readmodel.ResourceRM, error)
	Delete(ctx context.Context, id uuid.UUID, mode DeleteMode) error
}

type resourceUseCaseImpl struct {
	resourceRepo ResourceRepository
}

func NewResourceUseCase(resourceRepo ResourceRepository) ResourceUseCase {
	return &resourceUseCaseImpl{
		resourceRepo: resourceRepo,
	}
}

func (r *resourceUseCaseImpl) List(ctx context.Context, kind *string) ([]*readmodel.ResourceRM, error) {
	return r.resourceRepo.List(ctx, kind)
}

func (r *resourceUseCaseImpl) Create(ctx context.Context, params CreateResourceParams) (*readmodel.ResourceRM, error) {
	kind, err := resource.NewKind(params.Kind)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidResourceInput)
	}

	var status *resource.Status
	if params.Status != nil {
		parsed, statusErr := resource.NewStatus(*params.Status)
		if statusErr != nil {
			return nil, errs.Mark(statusErr, ErrInvalidResourceInput)
		}
		status = &parsed
	}

	entity, err := resource.NewResource(kind, params.Name, params.Subcategory, params.Type, params.Quantity, status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidResourceInput)
	}

	created, err := r.resourceRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateResource
		}
		return nil, err
	}

	return created, nil
}

func (r *resourceUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateResourceParams) (*readmodel.ResourceRM, error) {
	patch := ResourcePatch{
		Name:        params.Name,
		Subcategory: params.Subcategory,
		Type:        params.Type,
		Quantity:    params.Quantity,
	}

	if params.Status != nil {
		parsed, err := resource.NewStatus(*params.Status)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidResourceInput)
		}
		patch.Status = &parsed
	}

	if patch.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, errs.Mark(resource.ErrNegativeQuantity, ErrInvalidResourceInput)
	}

	updated, err := r.resourceRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrResourceNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateResource
		default:
			return nil, err
		}
	}

	return updated, nil
}

func (r *resourceUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, mode DeleteMode) error {
	var err error
	switch mode {
	case DeleteHard:
		err = r.resourceRepo.DeleteWithBookings(ctx, id)
	default:
		err = r.resourceRepo.SetStatus(ctx, id, resource.StatusInactive)
	}

	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrResourceNotFound
		case infra.IsKind(err, infra.KindConflict):
			return ErrResourceInUse
		default:
			return err
		}
	}

	return nil
}
