package gorm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

func TestTranslateError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind domain.ErrorKind
		msg  string
	}{
		{
			name: "postgres unique film name",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: idxFilmNameUnique, Message: "duplicate key value violates unique constraint"},
			kind: domain.KindValidationFailed,
			msg:  "A film with this name already exists",
		},
		{
			name: "postgres unique unknown index",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "idx_other", Message: "duplicate key value violates unique constraint"},
			kind: domain.KindValidationFailed,
			msg:  msgDuplicateFallback,
		},
		{
			name: "postgres missing director",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: fkFilmsDirector, Message: "insert or update on table \"films\" violates foreign key constraint"},
			kind: domain.KindNotFound,
			msg:  "This director does not exist",
		},
		{
			name: "postgres person still credited",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: fkFilmActorsPerson, Message: "update or delete on table \"persons\" violates foreign key constraint"},
			kind: domain.KindConflict,
			msg:  "This person does not exist or is still linked to other films",
		},
		{
			name: "mysql duplicate location",
			err:  &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a-b-c' for key 'locations.idx_location_street_city_country_unique'"},
			kind: domain.KindValidationFailed,
			msg:  "A place with this street, city, and country already exists",
		},
		{
			name: "mysql missing location",
			err:  &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails (CONSTRAINT `fk_film_locations_location` ...)"},
			kind: domain.KindNotFound,
			msg:  "This location does not exist",
		},
		{
			name: "mysql blocked delete unknown key",
			err:  &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row: a foreign key constraint fails"},
			kind: domain.KindConflict,
			msg:  msgStillReferenced,
		},
		{
			name: "sqlite unique",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			kind: domain.KindValidationFailed,
			msg:  msgDuplicateFallback,
		},
		{
			name: "sqlite foreign key",
			err:  fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}),
			kind: domain.KindConflict,
			msg:  msgStillReferenced,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := translateError(c.err)
			se, ok := domain.AsServiceError(got)
			if !ok {
				t.Fatalf("expected ServiceError, got %v", got)
			}
			if se.Kind != c.kind || se.Message != c.msg {
				t.Fatalf("got %s %q, want %s %q", se.Kind, se.Message, c.kind, c.msg)
			}
			if !errors.Is(got, c.err) {
				t.Fatalf("translated error must wrap the driver error")
			}
		})
	}
}

func TestTranslateError_PassThrough(t *testing.T) {
	if translateError(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
	if err := translateError(gorm.ErrRecordNotFound); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	other := errors.New("connection reset")
	if err := translateError(other); err != other {
		t.Fatalf("unknown errors must be returned unchanged, got %v", err)
	}
	pgOther := &pgconn.PgError{Code: "57014", Message: "canceling statement"}
	if err := translateError(pgOther); err != pgOther {
		t.Fatalf("non-constraint postgres errors must be returned unchanged, got %v", err)
	}
}

func TestTranslateError_CoversDeclaredConstraints(t *testing.T) {
	for _, fk := range []string{fkFilmsDirector, fkFilmsAddedBy, fkAwardsFilm, fkFilmActorsFilm, fkFilmActorsPerson, fkFilmLocationsFilm, fkFilmLocationsPlace} {
		r, ok := findForeignKey(fk)
		if !ok || r.constraint != fk {
			t.Errorf("foreign key %s has no exact rule", fk)
		}
	}

	for _, idx := range []string{idxFilmNameUnique, idxUserEmailUnique, idxLocationUnique, pkFilmActors, pkFilmLocations} {
		matched := false
		for _, r := range uniqueRules {
			if containsAny(idx, r.keys) {
				matched = true
			}
		}
		if !matched {
			t.Errorf("unique index %s has no rule", idx)
		}
	}
}

func TestTranslateError_SQLiteRestrictedDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	director := &domain.Person{FirstName: "Denis", LastName: "Villeneuve", BirthDate: "1967-10-03", Country: "Canada"}
	if err := NewPersonRepository(db).Create(ctx, director); err != nil {
		t.Fatalf("create person: %v", err)
	}
	if err := NewFilmRepository(db).Create(ctx, &domain.Film{Name: "Arrival", Year: "2016", DirectorID: &director.ID}); err != nil {
		t.Fatalf("create film: %v", err)
	}

	raw := db.WithContext(ctx).Delete(&personModel{}, director.ID).Error
	var liteErr sqlite3.Error
	if !errors.As(raw, &liteErr) {
		t.Fatalf("expected a sqlite3.Error, got %T %v", raw, raw)
	}
	if liteErr.Code != sqlite3.ErrConstraint {
		t.Fatalf("expected a constraint error, got %v", liteErr.Code)
	}

	got := translateError(raw)
	if domain.KindOf(got) != domain.KindConflict {
		t.Fatalf("expected CONFLICT, got %v", got)
	}
	if !errors.Is(got, raw) {
		t.Fatalf("translated error must wrap the driver error")
	}
}
