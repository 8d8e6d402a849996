package seller

import (
	"context"
	"errors"
	"testing"

	"github.com/emoorm/storefront/internal/remote"
	"github.com/emoorm/storefront/pkg/db/models"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubRepo struct {
	product   *models.ProductRecord
	createErr error
	updateErr error

	createdProduct  *models.ProductRecord
	replacedGenres  []models.StoreGenre
	deactivated     bool
	settingsApplied *remote.StoreSettings
}

func (s *stubRepo) CreateProduct(ctx context.Context, record *models.ProductRecord) (*models.ProductRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	record.ID = uuid.New()
	s.createdProduct = record
	return record, nil
}

func (s *stubRepo) UpdateProduct(ctx context.Context, record *models.ProductRecord) (*models.ProductRecord, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.product = record
	return record, nil
}

func (s *stubRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductRecord, error) {
	if s.product == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.product, nil
}

func (s *stubRepo) DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	if s.product == nil || s.product.ID != productID || s.product.SellerID != sellerID {
		return gorm.ErrRecordNotFound
	}
	s.deactivated = true
	return nil
}

func (s *stubRepo) ListAllProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ProductRecord, error) {
	if s.product == nil {
		return []models.ProductRecord{}, nil
	}
	return []models.ProductRecord{*s.product}, nil
}

func (s *stubRepo) UpdateStoreSettings(ctx context.Context, sellerID uuid.UUID, settings remote.StoreSettings) error {
	s.settingsApplied = &settings
	return nil
}

func (s *stubRepo) UpdateStoreAbout(ctx context.Context, sellerID uuid.UUID, about string) error {
	return nil
}

func (s *stubRepo) UpdateStoreLocation(ctx context.Context, sellerID uuid.UUID, loc remote.StoreLocation) error {
	return nil
}

func (s *stubRepo) ReplaceStoreGenres(ctx context.Context, sellerID uuid.UUID, genres []models.StoreGenre) error {
	s.replacedGenres = genres
	return nil
}

func (s *stubRepo) AddStorePhoto(ctx context.Context, photo *models.StorePhoto) (*models.StorePhoto, error) {
	photo.ID = uuid.New()
	return photo, nil
}

func (s *stubRepo) RemoveStorePhoto(ctx context.Context, sellerID, photoID uuid.UUID) error {
	return nil
}

type stubInvalidator struct {
	calls int
}

func (s *stubInvalidator) Invalidate() { s.calls++ }

func testService(t *testing.T, repo *stubRepo) (Service, *stubInvalidator) {
	t.Helper()
	cache := &stubInvalidator{}
	svc, err := NewService(ServiceParams{Repo: repo, Cache: cache})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc, cache
}

func validInput() ProductInput {
	return ProductInput{
		Name:     "Wild Honey (500ml)",
		Price:    decimal.NewFromInt(350),
		Category: "Local Delicacies",
		Stock:    10,
	}
}

func TestCreateProductInvalidatesCache(t *testing.T) {
	repo := &stubRepo{}
	svc, cache := testService(t, repo)

	record, err := svc.CreateProduct(context.Background(), uuid.NewString(), validInput())
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if !record.IsActive {
		t.Fatal("expected new listings active")
	}
	if cache.calls != 1 {
		t.Fatalf("expected one cache invalidation, got %d", cache.calls)
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc, cache := testService(t, &stubRepo{})

	input := validInput()
	input.Price = decimal.Zero
	_, err := svc.CreateProduct(context.Background(), uuid.NewString(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if cache.calls != 0 {
		t.Fatal("validation failures must not invalidate the cache")
	}
}

func TestCreateProductFailureSurfaces(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("connection reset")}
	svc, cache := testService(t, repo)

	_, err := svc.CreateProduct(context.Background(), uuid.NewString(), validInput())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected DEPENDENCY_ERROR, got %v", err)
	}
	if cache.calls != 0 {
		t.Fatal("failed mutations must not invalidate the cache")
	}
}

func TestUpdateProductEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	repo := &stubRepo{product: &models.ProductRecord{ID: uuid.New(), SellerID: owner}}
	svc, _ := testService(t, repo)

	_, err := svc.UpdateProduct(context.Background(), uuid.NewString(), repo.product.ID.String(), validInput())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}
}

func TestDeactivateProductSoftDeletes(t *testing.T) {
	owner := uuid.New()
	repo := &stubRepo{product: &models.ProductRecord{ID: uuid.New(), SellerID: owner, IsActive: true}}
	svc, cache := testService(t, repo)

	err := svc.DeactivateProduct(context.Background(), owner.String(), repo.product.ID.String())
	if err != nil {
		t.Fatalf("DeactivateProduct returned error: %v", err)
	}
	if !repo.deactivated {
		t.Fatal("expected repo soft delete")
	}
	if cache.calls != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.calls)
	}
}

func TestDeactivateMissingProduct(t *testing.T) {
	svc, _ := testService(t, &stubRepo{})

	err := svc.DeactivateProduct(context.Background(), uuid.NewString(), uuid.NewString())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestReplaceGenresCapsAtFive(t *testing.T) {
	svc, _ := testService(t, &stubRepo{})

	genres := make([]GenreInput, 6)
	for i := range genres {
		genres[i] = GenreInput{Icon: "leaf", Text: "Organic"}
	}
	err := svc.ReplaceGenres(context.Background(), uuid.NewString(), genres)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestReplaceGenresInvalidatesCache(t *testing.T) {
	repo := &stubRepo{}
	svc, cache := testService(t, repo)

	err := svc.ReplaceGenres(context.Background(), uuid.NewString(), []GenreInput{
		{Icon: "leaf", Text: "Organic"},
		{Icon: "fish", Text: "Seafood"},
	})
	if err != nil {
		t.Fatalf("ReplaceGenres returned error: %v", err)
	}
	if len(repo.replacedGenres) != 2 {
		t.Fatalf("unexpected genres %v", repo.replacedGenres)
	}
	if cache.calls != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.calls)
	}
}
