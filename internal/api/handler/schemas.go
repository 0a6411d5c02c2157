package handler

import (
	"github.com/filmcatalog/webservices-film/internal/api/validation"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

// --- Path parameters ---

type idParams struct {
	ID string `param:"id" validate:"required,posint"`
}

func (p *idParams) value() uint { return validation.ID(p.ID) }

type userIDParams struct {
	ID string `param:"id" validate:"required,id_or_me"`
}

// --- Sessions and users ---

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Naam     string `json:"naam" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=12,max=128"`
}

type updateUserRequest struct {
	Naam  *string `json:"naam" validate:"omitnil,min=1,max=255"`
	Email *string `json:"email" validate:"omitnil,email,max=255"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Films ---

// filmActorRequest credits an existing person by PersoonID or creates one from
// the name fields. The two forms exclude each other, even with empty strings.
type filmActorRequest struct {
	PersoonID     *uint   `json:"PersoonID" validate:"omitnil,gt=0"`
	Rol           string  `json:"Rol" validate:"required,max=255"`
	Voornaam      *string `json:"Voornaam" validate:"excluded_with=PersoonID,required_without=PersoonID,omitnil,min=1,max=255"`
	Achternaam    *string `json:"Achternaam" validate:"excluded_with=PersoonID,required_without=PersoonID,omitnil,min=1,max=255"`
	GeboorteDatum *string `json:"GeboorteDatum" validate:"excluded_with=PersoonID,required_without=PersoonID,omitnil,min=1,max=255"`
	Land          *string `json:"Land" validate:"excluded_with=PersoonID,required_without=PersoonID,omitnil,min=1,max=255"`
}

func (r filmActorRequest) toInput() ports.ActorInput {
	if r.PersoonID != nil {
		return ports.ExistingActorRef{PersonID: *r.PersoonID, Role: r.Rol}
	}
	return ports.NewActorInput{
		FirstName: deref(r.Voornaam),
		LastName:  deref(r.Achternaam),
		BirthDate: deref(r.GeboorteDatum),
		Country:   deref(r.Land),
		Role:      r.Rol,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type filmAwardRequest struct {
	Naam string `json:"Naam" validate:"required,max=255"`
	Jaar string `json:"Jaar" validate:"required,max=255"`
}

// filmLocationRequest references a location by LocatieID or by address.
type filmLocationRequest struct {
	LocatieID *uint  `json:"LocatieID" validate:"omitnil,gt=0"`
	Straat    string `json:"Straat" validate:"required_without=LocatieID,max=255"`
	Stad      string `json:"Stad" validate:"required_without=LocatieID,max=255"`
	Land      string `json:"Land" validate:"required_without=LocatieID,max=255"`
}

func (r filmLocationRequest) toInput() ports.LocationInput {
	if r.LocatieID != nil {
		return ports.ExistingLocationRef{ID: *r.LocatieID}
	}
	return ports.LocationAddress{Street: r.Straat, City: r.Stad, Country: r.Land}
}

type filmRelations struct {
	Acteurs  []filmActorRequest
	Awards   []filmAwardRequest
	Locaties []filmLocationRequest
}

func (r filmRelations) inputs() ([]ports.ActorInput, []ports.AwardInput, []ports.LocationInput) {
	var (
		actors    []ports.ActorInput
		awards    []ports.AwardInput
		locations []ports.LocationInput
	)
	for _, a := range r.Acteurs {
		actors = append(actors, a.toInput())
	}
	for _, a := range r.Awards {
		awards = append(awards, ports.AwardInput{Name: a.Naam, Year: a.Jaar})
	}
	for _, l := range r.Locaties {
		locations = append(locations, l.toInput())
	}
	return actors, awards, locations
}

type createFilmRequest struct {
	Naam        string                `json:"Naam" validate:"required,max=255"`
	Duur        string                `json:"Duur" validate:"required,max=255"`
	Jaar        string                `json:"Jaar" validate:"required,max=255"`
	Genre       string                `json:"Genre" validate:"required,max=255"`
	Rating      string                `json:"Rating" validate:"required,max=255"`
	RegisseurID *uint                 `json:"RegisseurID" validate:"omitnil,gt=0"`
	Acteurs     []filmActorRequest    `json:"Acteurs" validate:"omitempty,dive"`
	Awards      []filmAwardRequest    `json:"Awards" validate:"omitempty,dive"`
	Locaties    []filmLocationRequest `json:"Locaties" validate:"omitempty,dive"`
}

func (r *createFilmRequest) toInput() ports.CreateFilmInput {
	actors, awards, locations := filmRelations{r.Acteurs, r.Awards, r.Locaties}.inputs()
	return ports.CreateFilmInput{
		Name:       r.Naam,
		Year:       r.Jaar,
		Duration:   r.Duur,
		Genre:      r.Genre,
		Rating:     r.Rating,
		DirectorID: r.RegisseurID,
		Actors:     actors,
		Awards:     awards,
		Locations:  locations,
	}
}

type updateFilmRequest struct {
	Naam        *string               `json:"Naam" validate:"omitnil,min=1,max=255"`
	Duur        *string               `json:"Duur" validate:"omitnil,min=1,max=255"`
	Jaar        *string               `json:"Jaar" validate:"omitnil,min=1,max=255"`
	Genre       *string               `json:"Genre" validate:"omitnil,min=1,max=255"`
	Rating      *string               `json:"Rating" validate:"omitnil,min=1,max=255"`
	RegisseurID *uint                 `json:"RegisseurID" validate:"omitnil,gt=0"`
	Acteurs     []filmActorRequest    `json:"Acteurs" validate:"omitempty,dive"`
	Awards      []filmAwardRequest    `json:"Awards" validate:"omitempty,dive"`
	Locaties    []filmLocationRequest `json:"Locaties" validate:"omitempty,dive"`
}

func (r *updateFilmRequest) toInput() ports.UpdateFilmInput {
	actors, awards, locations := filmRelations{r.Acteurs, r.Awards, r.Locaties}.inputs()
	return ports.UpdateFilmInput{
		Name:       r.Naam,
		Year:       r.Jaar,
		Duration:   r.Duur,
		Genre:      r.Genre,
		Rating:     r.Rating,
		DirectorID: r.RegisseurID,
		Actors:     actors,
		Awards:     awards,
		Locations:  locations,
	}
}

// --- Persons, locations, awards ---

type createPersonRequest struct {
	Voornaam      string `json:"Voornaam" validate:"required,max=255"`
	Achternaam    string `json:"Achternaam" validate:"required,max=255"`
	GeboorteDatum string `json:"GeboorteDatum" validate:"required,max=255"`
	Land          string `json:"Land" validate:"required,max=255"`
}

type createLocationRequest struct {
	Straat string `json:"Straat" validate:"required,max=255"`
	Stad   string `json:"Stad" validate:"required,max=255"`
	Land   string `json:"Land" validate:"required,max=255"`
	Foto   string `json:"Foto" validate:"omitempty,max=2048"`
}

type createAwardRequest struct {
	Naam   string `json:"Naam" validate:"required,max=255"`
	Jaar   string `json:"Jaar" validate:"required,max=255"`
	FilmID uint   `json:"FilmID" validate:"required,gt=0"`
}

// --- Schemas ---

func newIDParams() any     { return &idParams{} }
func newUserIDParams() any { return &userIDParams{} }

var (
	LoginSchema      = &validation.Schema{Body: func() any { return &loginRequest{} }}
	RegisterSchema   = &validation.Schema{Body: func() any { return &registerRequest{} }}
	UserByIDSchema   = &validation.Schema{Params: newUserIDParams}
	UpdateUserSchema = &validation.Schema{Params: newUserIDParams, Body: func() any { return &updateUserRequest{} }}

	ByIDSchema       = &validation.Schema{Params: newIDParams}
	CreateFilmSchema = &validation.Schema{Body: func() any { return &createFilmRequest{} }}
	UpdateFilmSchema = &validation.Schema{Params: newIDParams, Body: func() any { return &updateFilmRequest{} }}

	CreatePersonSchema   = &validation.Schema{Body: func() any { return &createPersonRequest{} }}
	CreateLocationSchema = &validation.Schema{Body: func() any { return &createLocationRequest{} }}
	CreateAwardSchema    = &validation.Schema{Body: func() any { return &createAwardRequest{} }}
)
