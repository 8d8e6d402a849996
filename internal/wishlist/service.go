package wishlist

import (
	"context"

	"github.com/emoorm/storefront/internal/cart"
	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/clientstate"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
)

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	State   *clientstate.Store
	Catalog cart.Catalog
}

// Service exposes business rules for the device-scoped wishlist.
type Service interface {
	IDs(ctx context.Context, deviceID string) ([]string, error)
	View(ctx context.Context, deviceID string) ([]catalog.Product, error)
	Add(ctx context.Context, deviceID, productID string) ([]string, error)
	Remove(ctx context.Context, deviceID, productID string) ([]string, error)
	Contains(ctx context.Context, deviceID, productID string) (bool, error)
}

type service struct {
	state   *clientstate.Store
	catalog cart.Catalog
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.State == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client state store is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	return &service{state: params.State, catalog: params.Catalog}, nil
}

// IDs returns the wishlisted product ids in insertion order.
func (s *service) IDs(ctx context.Context, deviceID string) ([]string, error) {
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "device id is required")
	}
	return s.load(ctx, deviceID)
}

// View resolves the wishlist newest first. Ids that no longer resolve are
// skipped in the view; storage keeps them.
func (s *service) View(ctx context.Context, deviceID string) ([]catalog.Product, error) {
	ids, err := s.IDs(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		product, ok, err := s.catalog.Lookup(ctx, ids[i])
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolving wishlist products")
		}
		if !ok {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// Add appends the product id; already-present ids are a no-op.
func (s *service) Add(ctx context.Context, deviceID, productID string) ([]string, error) {
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "device id is required")
	}
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	ids, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id == productID {
			return ids, nil
		}
	}

	ids = append(ids, productID)
	if err := s.save(ctx, deviceID, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Remove deletes the product id; absent ids are a no-op.
func (s *service) Remove(ctx context.Context, deviceID, productID string) ([]string, error) {
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "device id is required")
	}

	ids, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	kept := ids[:0]
	for _, id := range ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return ids, nil
	}

	if err := s.save(ctx, deviceID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Contains reports whether the product is wishlisted.
func (s *service) Contains(ctx context.Context, deviceID, productID string) (bool, error) {
	ids, err := s.IDs(ctx, deviceID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) load(ctx context.Context, deviceID string) ([]string, error) {
	var ids []string
	if err := s.state.Load(ctx, deviceID, clientstate.SlotWishlist, &ids); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading wishlist")
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *service) save(ctx context.Context, deviceID string, ids []string) error {
	if err := s.state.Save(ctx, deviceID, clientstate.SlotWishlist, ids); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving wishlist")
	}
	return nil
}
