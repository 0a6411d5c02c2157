package ports

// ActorInput is either an ExistingActorRef or a NewActorInput.
type ActorInput interface {
	CreditedRole() string
}

// ExistingActorRef credits an existing person by id.
type ExistingActorRef struct {
	PersonID uint
	Role     string
}

// NewActorInput creates a person and credits them in the same transaction.
type NewActorInput struct {
	FirstName string
	LastName  string
	BirthDate string
	Country   string
	Role      string
}

func (a ExistingActorRef) CreditedRole() string { return a.Role }
func (a NewActorInput) CreditedRole() string    { return a.Role }

// LocationInput is either an ExistingLocationRef or a LocationAddress.
type LocationInput interface {
	isLocationInput()
}

// ExistingLocationRef links an existing location by id.
type ExistingLocationRef struct {
	ID uint
}

// LocationAddress links the location at this address, creating it when absent.
type LocationAddress struct {
	Street  string
	City    string
	Country string
}

func (ExistingLocationRef) isLocationInput() {}
func (LocationAddress) isLocationInput()     {}

type AwardInput struct {
	Name string
	Year string
}

type CreateFilmInput struct {
	Name       string
	Year       string
	Duration   string
	Genre      string
	Rating     string
	DirectorID *uint
	Actors     []ActorInput
	Awards     []AwardInput
	Locations  []LocationInput
}

// UpdateFilmInput changes only the non-nil scalar fields. A non-empty
// Actors, Awards or Locations list replaces the film's current set.
type UpdateFilmInput struct {
	Name       *string
	Year       *string
	Duration   *string
	Genre      *string
	Rating     *string
	DirectorID *uint
	Actors     []ActorInput
	Awards     []AwardInput
	Locations  []LocationInput
}

type CreatePersonInput struct {
	FirstName string
	LastName  string
	BirthDate string
	Country   string
}

type CreateLocationInput struct {
	Street  string
	City    string
	Country string
	Photo   string
}

type CreateAwardInput struct {
	Name   string
	Year   string
	FilmID uint
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}
