package follow

import (
	"context"

	"github.com/emoorm/storefront/pkg/db"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
	"github.com/google/uuid"
)

// Repo is the remote persistence surface for follow edges.
type Repo interface {
	Follow(ctx context.Context, userID, sellerID uuid.UUID) error
	Unfollow(ctx context.Context, userID, sellerID uuid.UUID) error
	IsFollowing(ctx context.Context, userID, sellerID uuid.UUID) (bool, error)
	AdjustFollowerCount(ctx context.Context, sellerID uuid.UUID, delta int) error
}

// ServiceParams groups dependencies for the follow service.
type ServiceParams struct {
	Repo   Repo
	Logger *logger.Logger
}

// Service exposes follow/unfollow with an optimistic follower counter: the
// cached count moves first and is rolled back when the edge mutation fails.
type Service interface {
	Follow(ctx context.Context, userID, sellerID string) error
	Unfollow(ctx context.Context, userID, sellerID string) error
	IsFollowing(ctx context.Context, userID, sellerID string) (bool, error)
}

type service struct {
	repo Repo
	logg *logger.Logger
}

// NewService builds a follow service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "follow repo is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{repo: params.Repo, logg: params.Logger}, nil
}

// Follow records the edge. Following a seller twice is a no-op.
func (s *service) Follow(ctx context.Context, userID, sellerID string) error {
	user, seller, err := parseIDs(userID, sellerID)
	if err != nil {
		return err
	}

	if err := s.repo.AdjustFollowerCount(ctx, seller, 1); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adjusting follower count")
	}

	if err := s.repo.Follow(ctx, user, seller); err != nil {
		s.rollback(ctx, seller, -1)
		if db.IsUniqueViolation(err, "") {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording follow")
	}
	return nil
}

// Unfollow removes the edge. Unfollowing a seller not followed is a no-op at
// the edge level; the counter adjustment clamps at zero remotely.
func (s *service) Unfollow(ctx context.Context, userID, sellerID string) error {
	user, seller, err := parseIDs(userID, sellerID)
	if err != nil {
		return err
	}

	if err := s.repo.AdjustFollowerCount(ctx, seller, -1); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adjusting follower count")
	}

	if err := s.repo.Unfollow(ctx, user, seller); err != nil {
		s.rollback(ctx, seller, 1)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing follow")
	}
	return nil
}

// IsFollowing reports whether the user follows the seller.
func (s *service) IsFollowing(ctx context.Context, userID, sellerID string) (bool, error) {
	user, seller, err := parseIDs(userID, sellerID)
	if err != nil {
		return false, err
	}
	following, err := s.repo.IsFollowing(ctx, user, seller)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking follow")
	}
	return following, nil
}

func (s *service) rollback(ctx context.Context, seller uuid.UUID, delta int) {
	if err := s.repo.AdjustFollowerCount(ctx, seller, delta); err != nil {
		ctx = s.logg.WithField(ctx, "seller_id", seller.String())
		s.logg.Error(ctx, "follower count rollback failed", err)
	}
}

func parseIDs(userID, sellerID string) (uuid.UUID, uuid.UUID, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "valid user id is required")
	}
	seller, err := uuid.Parse(sellerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "valid seller id is required")
	}
	return user, seller, nil
}
