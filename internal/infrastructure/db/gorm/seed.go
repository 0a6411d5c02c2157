package gorm

import (
	"context"
	"fmt"
	"slices"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "12345678"

// HashFunc produces the stored hash for a plaintext password.
type HashFunc func(plain string) (string, error)

type seedUser struct {
	name  string
	email string
	roles []string
}

var seedUsers = []seedUser{
	{name: "Robbe Pauwels", email: "robbe.pauwels2@student.hogent.be", roles: []string{domain.RoleAdmin, domain.RoleUser}},
	{name: "testgebruiker", email: "test.gebruiker@hogent.be", roles: []string{domain.RoleUser}},
}

// Seed loads the demo catalog. Rows are matched on their natural keys, so
// running it again leaves existing data untouched.
func Seed(ctx context.Context, db *gorm.DB, hash HashFunc) error {
	passwordHash, err := hash(SeedPassword)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var adminID uint
		for _, u := range seedUsers {
			m := userModel{Name: u.name, Email: u.email, PasswordHash: passwordHash, Roles: datatypes.NewJSONSlice(u.roles)}
			if err := tx.Where(userModel{Email: u.email}).FirstOrCreate(&m).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", u.email, err)
			}
			if adminID == 0 && slices.Contains(u.roles, domain.RoleAdmin) {
				adminID = m.ID
			}
		}

		persons := map[string]*personModel{
			"holland":     {FirstName: "Tom", LastName: "Holland", BirthDate: "1996-06-01", Country: "Verenigd Koninkrijk"},
			"hamill":      {FirstName: "Mark", LastName: "Hamill", BirthDate: "1951-09-25", Country: "Verenigde Staten"},
			"cumberbatch": {FirstName: "Benedict", LastName: "Cumberbatch", BirthDate: "1976-07-19", Country: "Verenigd Koninkrijk"},
			"watts":       {FirstName: "Jon", LastName: "Watts", BirthDate: "1981-06-28", Country: "Verenigde Staten"},
			"lucas":       {FirstName: "George", LastName: "Lucas", BirthDate: "1944-05-14", Country: "Verenigde Staten"},
		}
		for _, key := range []string{"holland", "hamill", "cumberbatch", "watts", "lucas"} {
			p := persons[key]
			where := personModel{FirstName: p.FirstName, LastName: p.LastName, BirthDate: p.BirthDate}
			if err := tx.Where(where).FirstOrCreate(p).Error; err != nil {
				return fmt.Errorf("seed person %s: %w", key, err)
			}
		}

		spiderman := filmModel{Name: "Spiderman No Way Home", Year: "2021", Duration: "148 min", Genre: "SiFi/Actie", Rating: "8.2", DirectorID: &persons["watts"].ID, AddedByUserID: &adminID}
		starWars := filmModel{Name: "Star Wars: A New Hope", Year: "1977", Duration: "121 min", Genre: "SiFi/Actie", Rating: "8.6", DirectorID: &persons["lucas"].ID, AddedByUserID: &adminID}
		for _, f := range []*filmModel{&spiderman, &starWars} {
			if err := tx.Omit(clause.Associations).Where(filmModel{Name: f.Name}).FirstOrCreate(f).Error; err != nil {
				return fmt.Errorf("seed film %s: %w", f.Name, err)
			}
		}

		actors := []filmActorModel{
			{FilmID: spiderman.ID, PersonID: persons["holland"].ID, Role: "Peter Parker aka Spiderman"},
			{FilmID: spiderman.ID, PersonID: persons["cumberbatch"].ID, Role: "Stephen Strange"},
			{FilmID: starWars.ID, PersonID: persons["hamill"].ID, Role: "Luke Skywalker"},
		}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&actors).Error; err != nil {
			return fmt.Errorf("seed actors: %w", err)
		}

		awards := []awardModel{
			{Name: "Best Visual Effects", Year: "2022", FilmID: spiderman.ID},
			{Name: "Best Cinematography", Year: "1978", FilmID: starWars.ID},
		}
		for i := range awards {
			a := &awards[i]
			if err := tx.Omit(clause.Associations).Where(awardModel{Name: a.Name, FilmID: a.FilmID}).FirstOrCreate(a).Error; err != nil {
				return fmt.Errorf("seed award %s: %w", a.Name, err)
			}
		}

		liberty := locationModel{Street: "Statue Of Liberty", City: "New York", Country: "Verenigde Staten", Photo: "link_to_photo_1.jpg"}
		deathValley := locationModel{Street: "Death Valley National Park", City: "California", Country: "Verenigde Staten", Photo: "link_to_photo_2.jpg"}
		for _, l := range []*locationModel{&liberty, &deathValley} {
			where := locationModel{Street: l.Street, City: l.City, Country: l.Country}
			if err := tx.Where(where).FirstOrCreate(l).Error; err != nil {
				return fmt.Errorf("seed location %s: %w", l.Street, err)
			}
		}

		links := []filmLocationModel{
			{FilmID: spiderman.ID, LocationID: liberty.ID},
			{FilmID: starWars.ID, LocationID: deathValley.ID},
		}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
			return fmt.Errorf("seed film locations: %w", err)
		}
		return nil
	})
}
