package food

import (
	"errors"
	"time"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const (
	MinNameLength = 3

	// DefaultPreparationMinutes is used by callers that do not know the recipe.
	DefaultPreparationMinutes = 30

	// FreshnessWindow is how long a batch counts as freshly made.
	FreshnessWindow = 2 * time.Hour
)

var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood constructor")

// Food is a menu entry. Orders copy its name and price into their items, so
// editing a food never changes existing orders.
type Food struct {
	id                 kernel.UUID
	name               string
	description        string
	price              kernel.Money
	imageURL           string
	available          bool
	preparationMinutes int
	preparationType    PreparationType
	lastReadyAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time

	isConstructed bool
}

// NewFood adds an available dish to the menu.
func NewFood(
	name, description string,
	price kernel.Money,
	imageURL string,
	preparationMinutes int,
	preparationType PreparationType,
) (*Food, error) {
	now := time.Now()
	return RestoreFood(State{
		ID:                 kernel.NewUUID(),
		Name:               name,
		Description:        description,
		Price:              price,
		ImageURL:           imageURL,
		Available:          true,
		PreparationMinutes: preparationMinutes,
		PreparationType:    preparationType,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
}

// State carries a persisted food back into the domain.
type State struct {
	ID                 kernel.UUID
	Name               string
	Description        string
	Price              kernel.Money
	ImageURL           string
	Available          bool
	PreparationMinutes int
	PreparationType    PreparationType
	LastReadyAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func RestoreFood(s State) (*Food, error) {
	f := &Food{
		description:   s.Description,
		imageURL:      s.ImageURL,
		available:     s.Available,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}
	if s.LastReadyAt != nil {
		readyAt := *s.LastReadyAt
		f.lastReadyAt = &readyAt
	}
	if err := errors.Join(
		f.setID(s.ID),
		f.setName(s.Name),
		f.setPrice(s.Price),
		f.setPreparationMinutes(s.PreparationMinutes),
		f.setPreparationType(s.PreparationType),
	); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Food) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

func (f *Food) ID() kernel.UUID {
	return f.id
}

func (f *Food) Name() string {
	return f.name
}

func (f *Food) Description() string {
	return f.description
}

func (f *Food) Price() kernel.Money {
	return f.price
}

func (f *Food) ImageURL() string {
	return f.imageURL
}

func (f *Food) IsAvailable() bool {
	return f.available
}

func (f *Food) PreparationMinutes() int {
	return f.preparationMinutes
}

func (f *Food) PreparationType() PreparationType {
	return f.preparationType
}

// LastReadyAt is nil until the kitchen first marks a batch ready.
func (f *Food) LastReadyAt() *time.Time {
	if f.lastReadyAt == nil {
		return nil
	}
	t := *f.lastReadyAt
	return &t
}

func (f *Food) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Food) UpdatedAt() time.Time {
	return f.updatedAt
}

// MarkAsFreshlyReady records that a new batch just left the kitchen.
func (f *Food) MarkAsFreshlyReady() error {
	if !f.available {
		return errs.NewDomainErrorf("food %s is not available", f.name)
	}
	now := time.Now()
	f.lastReadyAt = &now
	f.updatedAt = now
	return nil
}

func (f *Food) MakeAvailable() error {
	if f.available {
		return errs.NewDomainErrorf("food %s is already available", f.name)
	}
	f.available = true
	f.updatedAt = time.Now()
	return nil
}

func (f *Food) MakeUnavailable() error {
	if !f.available {
		return errs.NewDomainErrorf("food %s is already unavailable", f.name)
	}
	f.available = false
	f.updatedAt = time.Now()
	return nil
}

// IsFresh reports whether the last batch is younger than FreshnessWindow at now.
func (f *Food) IsFresh(now time.Time) bool {
	return f.lastReadyAt != nil && now.Sub(*f.lastReadyAt) < FreshnessWindow
}

func (f *Food) ChangePrice(price kernel.Money) error {
	if err := f.setPrice(price); err != nil {
		return err
	}
	f.updatedAt = time.Now()
	return nil
}

func (f *Food) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Food) setName(name string) error {
	if utf8.RuneCountInString(name) < MinNameLength {
		return errs.NewDomainErrorf("food name must have at least %d characters", MinNameLength)
	}
	f.name = name
	return nil
}

func (f *Food) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	f.price = price
	return nil
}

func (f *Food) setPreparationMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsOutOfRangeError("preparation minutes", minutes, 0, "unbounded")
	}
	f.preparationMinutes = minutes
	return nil
}

func (f *Food) setPreparationType(p PreparationType) error {
	if err := p.Validate(); err != nil {
		return err
	}
	f.preparationType = p
	return nil
}
