package family

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateFamily creates the family and moves the creator into it in one
// transaction. A creator who already belongs to another family is simply
// reassigned, matching the invite behavior.
func (s *Service) CreateFamily(ctx context.Context, ownerID, name string) (*Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created := Family{
		ID:   uuid.NewString(),
		Name: name,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetMemberByID(ctx, ownerID); err != nil {
			return err
		}
		if err := tx.CreateFamily(ctx, &created); err != nil {
			return err
		}
		return tx.Reassign(ctx, ownerID, &created.ID)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) GetFamilyByUser(ctx context.Context, userID string) (*Family, error) {
	member, err := s.repo.GetMemberByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member.FamilyID == nil {
		return nil, ErrFamilyNotFound
	}
	return s.repo.GetFamilyByID(ctx, *member.FamilyID)
}

// InviteMember adds the user registered under targetEmail to the family.
// A target who belongs to another family is reassigned; only an existing
// member of the same family is a conflict. Lookup failures are reported in
// the order target, family, inviter membership.
func (s *Service) InviteMember(ctx context.Context, inviterID, targetEmail, familyID string) error {
	targetEmail = strings.ToLower(strings.TrimSpace(targetEmail))
	familyID = strings.TrimSpace(familyID)
	if targetEmail == "" || familyID == "" {
		return fmt.Errorf("%w: email and family id are required", ErrInvalidInput)
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		target, err := tx.GetMemberByEmail(ctx, targetEmail)
		if err != nil {
			return err
		}

		if _, err := tx.GetFamilyByID(ctx, familyID); err != nil {
			return err
		}

		inviter, err := tx.GetMemberByID(ctx, inviterID)
		if err != nil {
			return err
		}
		if inviter.FamilyID == nil || *inviter.FamilyID != familyID {
			return ErrNotMember
		}

		if target.FamilyID != nil && *target.FamilyID == familyID {
			return ErrAlreadyMember
		}

		return tx.Reassign(ctx, target.ID, &familyID)
	})
}

// ListMembers returns the caller's family members. A caller without a
// family gets a singleton list containing only themself, so a fresh account
// sees a sensible roster instead of an error.
func (s *Service) ListMembers(ctx context.Context, userID string) ([]Member, error) {
	me, err := s.repo.GetMemberByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if me.FamilyID == nil {
		return []Member{*me}, nil
	}
	return s.repo.ListMembers(ctx, *me.FamilyID)
}
