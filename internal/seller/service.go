package seller

import (
	"context"
	"errors"

	"github.com/emoorm/storefront/internal/remote"
	"github.com/emoorm/storefront/pkg/db/models"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxGenres caps the badge row on a storefront page.
const maxGenres = 5

// Repo is the remote persistence surface for seller dashboard operations.
type Repo interface {
	CreateProduct(ctx context.Context, record *models.ProductRecord) (*models.ProductRecord, error)
	UpdateProduct(ctx context.Context, record *models.ProductRecord) (*models.ProductRecord, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductRecord, error)
	DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error
	ListAllProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ProductRecord, error)
	UpdateStoreSettings(ctx context.Context, sellerID uuid.UUID, settings remote.StoreSettings) error
	UpdateStoreAbout(ctx context.Context, sellerID uuid.UUID, about string) error
	UpdateStoreLocation(ctx context.Context, sellerID uuid.UUID, loc remote.StoreLocation) error
	ReplaceStoreGenres(ctx context.Context, sellerID uuid.UUID, genres []models.StoreGenre) error
	AddStorePhoto(ctx context.Context, photo *models.StorePhoto) (*models.StorePhoto, error)
	RemoveStorePhoto(ctx context.Context, sellerID, photoID uuid.UUID) error
}

// Invalidator drops the merged catalog so buyers see dashboard changes.
type Invalidator interface {
	Invalidate()
}

// ProductInput carries the editable listing fields.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	ImageHint   string
	Category    string
	Stock       int
	OnSale      bool
}

// GenreInput is one badge on the storefront page.
type GenreInput struct {
	Icon string
	Text string
}

// PhotoInput is one gallery image.
type PhotoInput struct {
	URL       string
	Hint      string
	SortOrder int
}

// ServiceParams groups dependencies for the seller service.
type ServiceParams struct {
	Repo  Repo
	Cache Invalidator
}

// Service exposes the seller dashboard operations. Every successful mutation
// invalidates the catalog cache; failures surface as typed errors.
type Service interface {
	CreateProduct(ctx context.Context, sellerID string, input ProductInput) (*models.ProductRecord, error)
	UpdateProduct(ctx context.Context, sellerID, productID string, input ProductInput) (*models.ProductRecord, error)
	DeactivateProduct(ctx context.Context, sellerID, productID string) error
	ListProducts(ctx context.Context, sellerID string) ([]models.ProductRecord, error)
	UpdateStoreSettings(ctx context.Context, sellerID string, settings remote.StoreSettings) error
	UpdateStoreAbout(ctx context.Context, sellerID, about string) error
	UpdateStoreLocation(ctx context.Context, sellerID string, loc remote.StoreLocation) error
	ReplaceGenres(ctx context.Context, sellerID string, genres []GenreInput) error
	AddPhoto(ctx context.Context, sellerID string, input PhotoInput) (*models.StorePhoto, error)
	RemovePhoto(ctx context.Context, sellerID, photoID string) error
}

type service struct {
	repo  Repo
	cache Invalidator
}

// NewService builds a seller service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller repo is required")
	}
	if params.Cache == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog cache is required")
	}
	return &service{repo: params.Repo, cache: params.Cache}, nil
}

// CreateProduct inserts a new active listing.
func (s *service) CreateProduct(ctx context.Context, sellerID string, input ProductInput) (*models.ProductRecord, error) {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	record := &models.ProductRecord{
		SellerID: seller,
		Name:     input.Name,
		Price:    input.Price,
		Stock:    input.Stock,
		OnSale:   input.OnSale,
		IsActive: true,
	}
	applyOptionalFields(record, input)

	created, err := s.repo.CreateProduct(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating product")
	}
	s.cache.Invalidate()
	return created, nil
}

// UpdateProduct applies the input to an owned listing.
func (s *service) UpdateProduct(ctx context.Context, sellerID, productID string, input ProductInput) (*models.ProductRecord, error) {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return nil, err
	}
	product, err := uuid.Parse(productID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "valid product id is required")
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	record, err := s.repo.GetProduct(ctx, product)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}
	if record.SellerID != seller {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "product belongs to another seller")
	}

	record.Name = input.Name
	record.Price = input.Price
	record.Stock = input.Stock
	record.OnSale = input.OnSale
	record.Seller = nil
	record.Description = nil
	record.ImageURL = nil
	record.ImageHint = nil
	record.Category = nil
	applyOptionalFields(record, input)

	updated, err := s.repo.UpdateProduct(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating product")
	}
	s.cache.Invalidate()
	return updated, nil
}

// DeactivateProduct soft-deletes a listing so it disappears from the
// storefront but keeps its row.
func (s *service) DeactivateProduct(ctx context.Context, sellerID, productID string) error {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return err
	}
	product, err := uuid.Parse(productID)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "valid product id is required")
	}

	if err := s.repo.DeactivateProduct(ctx, seller, product); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deactivating product")
	}
	s.cache.Invalidate()
	return nil
}

// ListProducts returns the seller's full inventory, inactive listings
// included.
func (s *service) ListProducts(ctx context.Context, sellerID string) ([]models.ProductRecord, error) {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListAllProductsBySeller(ctx, seller)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing products")
	}
	return records, nil
}

// UpdateStoreSettings applies shop name, logo, banner, and description edits.
func (s *service) UpdateStoreSettings(ctx context.Context, sellerID string, settings remote.StoreSettings) error {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateStoreSettings(ctx, seller, settings); err != nil {
		return s.profileError(err, "updating store settings")
	}
	s.cache.Invalidate()
	return nil
}

// UpdateStoreAbout replaces the about text.
func (s *service) UpdateStoreAbout(ctx context.Context, sellerID, about string) error {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateStoreAbout(ctx, seller, about); err != nil {
		return s.profileError(err, "updating store about")
	}
	s.cache.Invalidate()
	return nil
}

// UpdateStoreLocation applies address and coordinate edits.
func (s *service) UpdateStoreLocation(ctx context.Context, sellerID string, loc remote.StoreLocation) error {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateStoreLocation(ctx, seller, loc); err != nil {
		return s.profileError(err, "updating store location")
	}
	s.cache.Invalidate()
	return nil
}

// ReplaceGenres swaps the badge row; at most five badges are allowed.
func (s *service) ReplaceGenres(ctx context.Context, sellerID string, genres []GenreInput) error {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return err
	}
	if len(genres) > maxGenres {
		return pkgerrors.New(pkgerrors.CodeValidation, "a store may pin at most five genres")
	}
	records := make([]models.StoreGenre, 0, len(genres))
	for _, genre := range genres {
		if genre.Text == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "genre text is required")
		}
		records = append(records, models.StoreGenre{Icon: genre.Icon, Text: genre.Text})
	}

	if err := s.repo.ReplaceStoreGenres(ctx, seller, records); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replacing genres")
	}
	s.cache.Invalidate()
	return nil
}

// AddPhoto appends a gallery photo.
func (s *service) AddPhoto(ctx context.Context, sellerID string, input PhotoInput) (*models.StorePhoto, error) {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return nil, err
	}
	if input.URL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "photo url is required")
	}

	photo := &models.StorePhoto{
		SellerID:  seller,
		URL:       input.URL,
		SortOrder: input.SortOrder,
	}
	if input.Hint != "" {
		hint := input.Hint
		photo.Hint = &hint
	}

	created, err := s.repo.AddStorePhoto(ctx, photo)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adding photo")
	}
	s.cache.Invalidate()
	return created, nil
}

// RemovePhoto deletes an owned gallery photo.
func (s *service) RemovePhoto(ctx context.Context, sellerID, photoID string) error {
	seller, err := parseSellerID(sellerID)
	if err != nil {
		return err
	}
	photo, err := uuid.Parse(photoID)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "valid photo id is required")
	}

	if err := s.repo.RemoveStorePhoto(ctx, seller, photo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "photo not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing photo")
	}
	s.cache.Invalidate()
	return nil
}

func (s *service) profileError(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "seller profile not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, message)
}

func applyOptionalFields(record *models.ProductRecord, input ProductInput) {
	if input.Description != "" {
		description := input.Description
		record.Description = &description
	}
	if input.ImageURL != "" {
		url := input.ImageURL
		record.ImageURL = &url
	}
	if input.ImageHint != "" {
		hint := input.ImageHint
		record.ImageHint = &hint
	}
	if input.Category != "" {
		category := input.Category
		record.Category = &category
	}
}

func validateProductInput(input ProductInput) error {
	if input.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if !input.Price.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price must be positive")
	}
	if input.Stock < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product stock cannot be negative")
	}
	return nil
}

func parseSellerID(sellerID string) (uuid.UUID, error) {
	seller, err := uuid.Parse(sellerID)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "valid seller id is required")
	}
	return seller, nil
}
