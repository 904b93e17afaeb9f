package family

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateFamily(ctx context.Context, family *Family) error
	GetFamilyByID(ctx context.Context, familyID string) (*Family, error)
	GetMemberByID(ctx context.Context, userID string) (*Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*Member, error)
	ListMembers(ctx context.Context, familyID string) ([]Member, error)
	// Reassign points the user at the given family (or at none when nil).
	// This is the only write that changes membership, which keeps the
	// at-most-one-family invariant in one place.
	Reassign(ctx context.Context, userID string, familyID *string) error
}
