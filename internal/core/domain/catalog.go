package domain

// Person is an actor or director.
type Person struct {
	ID        uint   `json:"PersoonID"`
	FirstName string `json:"Voornaam"`
	LastName  string `json:"Achternaam"`
	BirthDate string `json:"GeboorteDatum"`
	Country   string `json:"Land"`
}

// PersonRole is one acting credit of a person.
type PersonRole struct {
	FilmID   uint   `json:"FilmID"`
	FilmName string `json:"Naam"`
	Role     string `json:"Rol"`
}

// PersonDetail is a person together with the films they acted in.
type PersonDetail struct {
	Person
	Roles []PersonRole `json:"Rollen"`
}

// Location is a filming location, unique by (street, city, country).
type Location struct {
	ID      uint   `json:"LocatieID"`
	Street  string `json:"Straat"`
	City    string `json:"Stad"`
	Country string `json:"Land"`
	Photo   string `json:"Foto"`
}

// FilmRef is the minimal view of a film embedded in other resources.
type FilmRef struct {
	ID   uint   `json:"FilmID"`
	Name string `json:"Naam"`
}

// LocationDetail is a location with the films shot there.
type LocationDetail struct {
	Location
	Films []FilmRef `json:"Films"`
}

// Award belongs to exactly one film.
type Award struct {
	ID     uint   `json:"AwardID"`
	Name   string `json:"Naam"`
	Year   string `json:"Jaar"`
	FilmID uint   `json:"FilmID"`
}

// Film is a catalog entry. AddedBy is the name of the creating user, when known.
type Film struct {
	ID            uint    `json:"FilmID"`
	Name          string  `json:"Naam"`
	Year          string  `json:"Jaar"`
	Duration      string  `json:"Duur"`
	Genre         string  `json:"Genre"`
	Rating        string  `json:"Rating"`
	DirectorID    *uint   `json:"RegisseurID"`
	AddedByUserID *uint   `json:"-"`
	AddedBy       *string `json:"Toegevoegd door"`
}

// Actor is a person credited in a film with the role they played.
type Actor struct {
	Person
	Role string `json:"Rol"`
}

// FilmDetail is a film with its director, cast, awards and locations embedded.
type FilmDetail struct {
	Film
	Director  *Person    `json:"Regisseur"`
	Actors    []Actor    `json:"Acteurs"`
	Awards    []Award    `json:"Awards"`
	Locations []Location `json:"Locaties"`
}
