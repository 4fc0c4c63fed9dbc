package repository

import "github.com/taskify/taskify-api/internal/domain/entity"

// UserRepository defines the persistence contract for user accounts.
// Lookup methods return (nil, nil) when no user matches.
type UserRepository interface {
	Create(u *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	Delete(id string) (bool, error)
	ExistsByEmail(email string) (bool, error)
}
