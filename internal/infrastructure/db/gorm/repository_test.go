package gorm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Connect(context.Background(), Config{
		Driver: "sqlite",
		DSN:    "file:" + name + "?mode=memory&cache=shared&_foreign_keys=1",
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func plainHash(s string) (string, error) { return "hash:" + s, nil }

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, db, plainHash); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	checks := []struct {
		name  string
		model any
		want  int64
	}{
		{"users", &userModel{}, 2},
		{"persons", &personModel{}, 5},
		{"films", &filmModel{}, 2},
		{"awards", &awardModel{}, 2},
		{"locations", &locationModel{}, 2},
		{"film_actors", &filmActorModel{}, 3},
		{"film_locations", &filmLocationModel{}, 2},
	}
	for _, c := range checks {
		if got := count(t, db, c.model); got != c.want {
			t.Errorf("%s: expected %d rows, got %d", c.name, c.want, got)
		}
	}

	admin, err := NewUserRepository(db).FindByEmail(ctx, "robbe.pauwels2@student.hogent.be")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if len(admin.Roles) != 2 || admin.Roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected admin roles: %v", admin.Roles)
	}
	if admin.PasswordHash != "hash:"+SeedPassword {
		t.Fatalf("unexpected password hash %q", admin.PasswordHash)
	}

	films, err := NewFilmRepository(db).FindAll(ctx)
	if err != nil {
		t.Fatalf("find films: %v", err)
	}
	for _, f := range films {
		if f.AddedByUserID == nil || *f.AddedByUserID != admin.ID {
			t.Errorf("%s: expected to be added by the admin, got %v", f.Name, f.AddedByUserID)
		}
		if f.AddedBy == nil || *f.AddedBy != "Robbe Pauwels" {
			t.Errorf("%s: unexpected added by name %v", f.Name, f.AddedBy)
		}
	}
}

func TestUserRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	u := &domain.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x", Roles: []string{domain.RoleUser}}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected generated id")
	}

	dup := &domain.User{Name: "Other", Email: "ann@example.com", PasswordHash: "y", Roles: []string{domain.RoleUser}}
	err := repo.Create(ctx, dup)
	if domain.KindOf(err) != domain.KindValidationFailed {
		t.Fatalf("expected VALIDATION_FAILED for duplicate email, got %v", err)
	}
	if se, _ := domain.AsServiceError(err); se.Message != "There is already a user with this email address" {
		t.Fatalf("unexpected message %q", se.Message)
	}

	u.Name = "Ann Updated"
	if err := repo.Update(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Name != "Ann Updated" || got.PasswordHash != "x" {
		t.Fatalf("unexpected user after update: %+v", got)
	}

	if err := repo.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, u.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, u.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestUniqueConstraints_AreTranslated(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	films := NewFilmRepository(db)
	if err := films.Create(ctx, &domain.Film{Name: "Heat", Year: "1995", Duration: "170 min", Genre: "Crime", Rating: "8.3"}); err != nil {
		t.Fatalf("create film: %v", err)
	}
	err := films.Create(ctx, &domain.Film{Name: "Heat", Year: "1986", Duration: "101 min", Genre: "Action", Rating: "5.0"})
	if se, ok := domain.AsServiceError(err); !ok || se.Kind != domain.KindValidationFailed || se.Message != "A film with this name already exists" {
		t.Fatalf("unexpected duplicate film error: %v", err)
	}

	locations := NewLocationRepository(db)
	if err := locations.Create(ctx, &domain.Location{Street: "Main", City: "Ghent", Country: "BE"}); err != nil {
		t.Fatalf("create location: %v", err)
	}
	if err := locations.Create(ctx, &domain.Location{Street: "Main", City: "Bruges", Country: "BE"}); err != nil {
		t.Fatalf("different city must be allowed: %v", err)
	}
	err = locations.Create(ctx, &domain.Location{Street: "Main", City: "Ghent", Country: "BE"})
	if se, ok := domain.AsServiceError(err); !ok || se.Message != "A place with this street, city, and country already exists" {
		t.Fatalf("unexpected duplicate location error: %v", err)
	}
}

func TestFilmRepository_LinksAndCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	persons := NewPersonRepository(db)
	locations := NewLocationRepository(db)
	awards := NewAwardRepository(db)
	films := NewFilmRepository(db)

	director := &domain.Person{FirstName: "Michael", LastName: "Mann", BirthDate: "1943-02-05", Country: "USA"}
	actor := &domain.Person{FirstName: "Al", LastName: "Pacino", BirthDate: "1940-04-25", Country: "USA"}
	for _, p := range []*domain.Person{director, actor} {
		if err := persons.Create(ctx, p); err != nil {
			t.Fatalf("create person: %v", err)
		}
	}
	place := &domain.Location{Street: "Figueroa St", City: "Los Angeles", Country: "USA"}
	if err := locations.Create(ctx, place); err != nil {
		t.Fatalf("create location: %v", err)
	}

	film := &domain.Film{Name: "Heat", Year: "1995", Duration: "170 min", Genre: "Crime", Rating: "8.3", DirectorID: &director.ID}
	if err := films.Create(ctx, film); err != nil {
		t.Fatalf("create film: %v", err)
	}
	if err := films.AddActor(ctx, film.ID, actor.ID, "Vincent Hanna"); err != nil {
		t.Fatalf("add actor: %v", err)
	}
	if err := films.AddActor(ctx, film.ID, actor.ID, "Again"); domain.KindOf(err) != domain.KindValidationFailed {
		t.Fatalf("expected duplicate credit to fail validation, got %v", err)
	}
	if err := films.AddLocation(ctx, film.ID, place.ID); err != nil {
		t.Fatalf("add location: %v", err)
	}
	if err := awards.Create(ctx, &domain.Award{Name: "Best Score", Year: "1996", FilmID: film.ID}); err != nil {
		t.Fatalf("create award: %v", err)
	}

	cast, err := films.FindActors(ctx, film.ID)
	if err != nil || len(cast) != 1 || cast[0].Role != "Vincent Hanna" || cast[0].LastName != "Pacino" {
		t.Fatalf("unexpected cast %+v (err %v)", cast, err)
	}
	roles, err := persons.FindRoles(ctx, actor.ID)
	if err != nil || len(roles) != 1 || roles[0].FilmName != "Heat" {
		t.Fatalf("unexpected roles %+v (err %v)", roles, err)
	}
	linked, err := locations.FindFilms(ctx, place.ID)
	if err != nil || len(linked) != 1 || linked[0].ID != film.ID {
		t.Fatalf("unexpected location films %+v (err %v)", linked, err)
	}
	if n, _ := persons.CountDirected(ctx, director.ID); n != 1 {
		t.Fatalf("expected director of one film, got %d", n)
	}

	// the director is still referenced by the film
	if err := persons.Delete(ctx, director.ID); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("expected CONFLICT deleting a director, got %v", err)
	}

	if err := films.Delete(ctx, film.ID); err != nil {
		t.Fatalf("delete film: %v", err)
	}
	for name, model := range map[string]any{"film_actors": &filmActorModel{}, "film_locations": &filmLocationModel{}, "awards": &awardModel{}} {
		if n := count(t, db, model); n != 0 {
			t.Errorf("%s: expected cascade delete, %d rows left", name, n)
		}
	}
	if n := count(t, db, &personModel{}); n != 2 {
		t.Errorf("persons must survive film deletion, got %d", n)
	}
	if n := count(t, db, &locationModel{}); n != 1 {
		t.Errorf("locations must survive film deletion, got %d", n)
	}
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tx := NewTransactor(db)
	persons := NewPersonRepository(db)
	boom := errors.New("boom")

	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if err := persons.Create(ctx, &domain.Person{FirstName: "Tmp", LastName: "Person", BirthDate: "2000-01-01", Country: "BE"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if n := count(t, db, &personModel{}); n != 0 {
		t.Fatalf("expected rollback, found %d persons", n)
	}

	err = tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return persons.Create(ctx, &domain.Person{FirstName: "Kept", LastName: "Person", BirthDate: "2000-01-01", Country: "BE"})
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if n := count(t, db, &personModel{}); n != 1 {
		t.Fatalf("expected committed person, found %d", n)
	}
}
