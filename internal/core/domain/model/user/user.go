package user

import (
	"errors"
	"time"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const MinNameLength = 3

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a customer or a staff member. Only active users may place orders.
type User struct {
	id        kernel.UUID
	name      string
	email     Email
	role      Role
	active    bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewUser registers an active user with a fresh identifier.
func NewUser(name string, email Email, role Role) (*User, error) {
	now := time.Now()
	return RestoreUser(kernel.NewUUID(), name, email, role, true, now, now)
}

// RestoreUser rebuilds a persisted user.
func RestoreUser(
	id kernel.UUID,
	name string,
	email Email,
	role Role,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() Email { return u.email }
func (u *User) Role() Role { return u.role }
func (u *User) IsActive() bool { return u.active }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// CanManageOrders is true for staff (CEO and ADMIN).
func (u *User) CanManageOrders() bool {
	return u.role.IsStaff()
}

// CanUpdateToDelivered is true for customers, who confirm receipt themselves.
func (u *User) CanUpdateToDelivered() bool {
	return u.role == Customer
}

func (u *User) Activate() error {
	if u.active {
		return errs.NewDomainError("user is already active")
	}
	u.active = true
	u.touch()
	return nil
}

func (u *User) Deactivate() error {
	if !u.active {
		return errs.NewDomainError("user is already inactive")
	}
	u.active = false
	u.touch()
	return nil
}

func (u *User) ChangeName(name string) error {
	if err := u.setName(name); err != nil {
		return err
	}
	u.touch()
	return nil
}

func (u *User) ChangeRole(role Role) error {
	if err := u.setRole(role); err != nil {
		return err
	}
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now()
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if utf8.RuneCountInString(name) < MinNameLength {
		return errs.NewDomainErrorf("name must have at least %d characters", MinNameLength)
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
