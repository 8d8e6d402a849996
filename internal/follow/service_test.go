package follow

import (
	"context"
	"errors"
	"io"
	"testing"

	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
	"github.com/google/uuid"
)

type stubRepo struct {
	followErr   error
	unfollowErr error
	following   bool

	adjustments []int
}

func (s *stubRepo) Follow(ctx context.Context, userID, sellerID uuid.UUID) error {
	return s.followErr
}

func (s *stubRepo) Unfollow(ctx context.Context, userID, sellerID uuid.UUID) error {
	return s.unfollowErr
}

func (s *stubRepo) IsFollowing(ctx context.Context, userID, sellerID uuid.UUID) (bool, error) {
	return s.following, nil
}

func (s *stubRepo) AdjustFollowerCount(ctx context.Context, sellerID uuid.UUID, delta int) error {
	s.adjustments = append(s.adjustments, delta)
	return nil
}

func testService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:   repo,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc
}

func TestFollowAdjustsCounter(t *testing.T) {
	repo := &stubRepo{}
	svc := testService(t, repo)

	err := svc.Follow(context.Background(), uuid.NewString(), uuid.NewString())
	if err != nil {
		t.Fatalf("Follow returned error: %v", err)
	}
	if len(repo.adjustments) != 1 || repo.adjustments[0] != 1 {
		t.Fatalf("unexpected adjustments %v", repo.adjustments)
	}
}

func TestFollowRollsBackOnFailure(t *testing.T) {
	repo := &stubRepo{followErr: errors.New("connection reset")}
	svc := testService(t, repo)

	err := svc.Follow(context.Background(), uuid.NewString(), uuid.NewString())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected DEPENDENCY_ERROR, got %v", err)
	}
	if len(repo.adjustments) != 2 || repo.adjustments[1] != -1 {
		t.Fatalf("expected optimistic increment rolled back, got %v", repo.adjustments)
	}
}

func TestFollowDuplicateIsNoOp(t *testing.T) {
	repo := &stubRepo{followErr: errors.New(`duplicate key value violates unique constraint "idx_store_followers_user_seller"`)}
	svc := testService(t, repo)

	if err := svc.Follow(context.Background(), uuid.NewString(), uuid.NewString()); err != nil {
		t.Fatalf("expected duplicate follow absorbed, got %v", err)
	}
	// The optimistic increment still reverts because the edge already existed.
	if len(repo.adjustments) != 2 || repo.adjustments[1] != -1 {
		t.Fatalf("unexpected adjustments %v", repo.adjustments)
	}
}

func TestUnfollowRollsBackOnFailure(t *testing.T) {
	repo := &stubRepo{unfollowErr: errors.New("connection reset")}
	svc := testService(t, repo)

	err := svc.Unfollow(context.Background(), uuid.NewString(), uuid.NewString())
	if pkgerrors.As(err) == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if len(repo.adjustments) != 2 || repo.adjustments[0] != -1 || repo.adjustments[1] != 1 {
		t.Fatalf("expected decrement rolled back, got %v", repo.adjustments)
	}
}

func TestFollowRejectsInvalidIDs(t *testing.T) {
	svc := testService(t, &stubRepo{})

	err := svc.Follow(context.Background(), "not-a-uuid", uuid.NewString())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}
