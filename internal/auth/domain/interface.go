package domain

import "context"

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user *User) error
}
