package cart

import (
	"context"

	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/clientstate"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/shopspring/decimal"
)

// Flat delivery fee applied to any non-empty cart.
var shippingFee = decimal.NewFromInt(50)

// Line is a stored cart entry. Only the id and quantity persist; pricing is
// resolved against the catalog at render time.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ViewItem is a cart line joined with its catalog product.
type ViewItem struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// View is the rendered cart with totals.
type View struct {
	Items    []ViewItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Catalog is the product resolution surface the cart needs.
type Catalog interface {
	Lookup(ctx context.Context, id string) (catalog.Product, bool, error)
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	State   *clientstate.Store
	Catalog Catalog
}

// Service exposes business rules for the device-scoped cart.
type Service interface {
	Lines(ctx context.Context, deviceID string) ([]Line, error)
	View(ctx context.Context, deviceID string) (View, error)
	Add(ctx context.Context, deviceID, productID string) ([]Line, error)
	UpdateQuantity(ctx context.Context, deviceID, productID string, quantity int) ([]Line, error)
	Remove(ctx context.Context, deviceID, productID string) ([]Line, error)
	Clear(ctx context.Context, deviceID string) error
}

type service struct {
	state   *clientstate.Store
	catalog Catalog
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.State == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client state store is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	return &service{state: params.State, catalog: params.Catalog}, nil
}

// Lines returns the stored cart lines.
func (s *service) Lines(ctx context.Context, deviceID string) ([]Line, error) {
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "device id is required")
	}
	return s.load(ctx, deviceID)
}

// View joins the stored lines against the catalog. Lines whose product no
// longer resolves are dropped from the view only; storage keeps them in case
// the product comes back.
func (s *service) View(ctx context.Context, deviceID string) (View, error) {
	lines, err := s.Lines(ctx, deviceID)
	if err != nil {
		return View{}, err
	}

	view := View{
		Items:    make([]ViewItem, 0, len(lines)),
		Subtotal: decimal.Zero,
		Shipping: decimal.Zero,
		Total:    decimal.Zero,
	}
	for _, line := range lines {
		product, ok, err := s.catalog.Lookup(ctx, line.ProductID)
		if err != nil {
			return View{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolving cart products")
		}
		if !ok {
			continue
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Items = append(view.Items, ViewItem{
			Product:   product,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		view.Subtotal = view.Subtotal.Add(lineTotal)
	}

	if view.Subtotal.IsPositive() {
		view.Shipping = shippingFee
	}
	view.Total = view.Subtotal.Add(view.Shipping)
	return view, nil
}

// Add increments the product's line, creating it at quantity 1.
func (s *service) Add(ctx context.Context, deviceID, productID string) ([]Line, error) {
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "device id is required")
	}
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, ok, err := s.catalog.Lookup(ctx, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolving product")
	} else if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	lines, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{ProductID: productID, Quantity: 1})
	}

	if err := s.save(ctx, deviceID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets the line's quantity. Anything below 1 is a no-op; use
// Remove to take a line out.
func (s *service) UpdateQuantity(ctx context.Context, deviceID, productID string, quantity int) ([]Line, error) {
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "device id is required")
	}

	lines, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return lines, nil
	}

	changed := false
	for i := range lines {
		if lines[i].ProductID == productID && lines[i].Quantity != quantity {
			lines[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return lines, nil
	}

	if err := s.save(ctx, deviceID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove deletes the product's line if present.
func (s *service) Remove(ctx context.Context, deviceID, productID string) ([]Line, error) {
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "device id is required")
	}

	lines, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return lines, nil
	}

	if err := s.save(ctx, deviceID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the cart.
func (s *service) Clear(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "device id is required")
	}
	if err := s.state.Clear(ctx, deviceID, clientstate.SlotCart); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return nil
}

func (s *service) load(ctx context.Context, deviceID string) ([]Line, error) {
	var lines []Line
	if err := s.state.Load(ctx, deviceID, clientstate.SlotCart, &lines); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	if lines == nil {
		lines = []Line{}
	}
	return lines, nil
}

func (s *service) save(ctx context.Context, deviceID string, lines []Line) error {
	if err := s.state.Save(ctx, deviceID, clientstate.SlotCart, lines); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return nil
}
