package gorm

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

const (
	msgDuplicateFallback = "This item already exists"
	msgReferenceMissing  = "A referenced item does not exist"
	msgStillReferenced   = "This item is still linked to other records"
)

// uniqueRule maps a unique index (and the SQLite column list that identifies
// it) to a VALIDATION_FAILED message.
type uniqueRule struct {
	keys    []string
	message string
}

var uniqueRules = []uniqueRule{
	{keys: []string{idxFilmNameUnique, "films.name"}, message: "A film with this name already exists"},
	{keys: []string{idxUserEmailUnique, "users.email"}, message: "There is already a user with this email address"},
	{keys: []string{idxLocationUnique, "locations.street, locations.city, locations.country"}, message: "A place with this street, city, and country already exists"},
	{keys: []string{pkFilmActors, "film_actors.PRIMARY", "film_actors.film_id, film_actors.person_id"}, message: "This person is already credited in this film"},
	{keys: []string{pkFilmLocations, "film_locations.PRIMARY", "film_locations.film_id, film_locations.location_id"}, message: "This location is already linked to this film"},
}

// foreignKeyRule maps a foreign key to the message used when the referenced
// row is missing (NOT_FOUND) and when a delete is blocked by it (CONFLICT).
type foreignKeyRule struct {
	constraint string
	missing    string
	referenced string
}

var foreignKeyRules = []foreignKeyRule{
	{constraint: fkFilmsDirector, missing: "This director does not exist", referenced: "This person does not exist or is still linked to other films"},
	{constraint: fkFilmsAddedBy, missing: "No user with this ID exists", referenced: "This user is still linked to other films"},
	{constraint: fkAwardsFilm, missing: "No film with this ID exists", referenced: "This film does not exist or is still linked to other records"},
	{constraint: fkFilmActorsFilm, missing: "No film with this ID exists", referenced: "This film does not exist or is still linked to other records"},
	{constraint: fkFilmActorsPerson, missing: "This actor does not exist", referenced: "This person does not exist or is still linked to other films"},
	{constraint: fkFilmLocationsFilm, missing: "No film with this ID exists", referenced: "This film does not exist or is still linked to other records"},
	{constraint: fkFilmLocationsPlace, missing: "This location does not exist", referenced: "This location does not exist or is still linked to films"},
}

type violation int

const (
	violationNone violation = iota
	violationUnique
	violationMissingReference
	violationStillReferenced
	violationForeignKey
)

// translateError maps driver constraint violations to service errors and
// gorm.ErrRecordNotFound to domain.ErrNotFound. Anything else is returned as is.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	kind, ident := classify(err)
	switch kind {
	case violationUnique:
		for _, r := range uniqueRules {
			if containsAny(ident, r.keys) {
				return domain.ValidationFailed(r.message).Wrap(err)
			}
		}
		return domain.ValidationFailed(msgDuplicateFallback).Wrap(err)
	case violationMissingReference:
		if r, ok := findForeignKey(ident); ok {
			return domain.NotFound(r.missing).Wrap(err)
		}
		return domain.NotFound(msgReferenceMissing).Wrap(err)
	case violationStillReferenced:
		if r, ok := findForeignKey(ident); ok {
			return domain.Conflict(r.referenced).Wrap(err)
		}
		return domain.Conflict(msgStillReferenced).Wrap(err)
	case violationForeignKey:
		return domain.Conflict(msgStillReferenced).Wrap(err)
	}
	return err
}

// classify inspects the concrete driver error. ident is the text that names
// the violated constraint (constraint name, key name or column list).
func classify(err error) (violation, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		ident := pgErr.ConstraintName + " " + pgErr.Message
		switch pgErr.Code {
		case "23505":
			return violationUnique, ident
		case "23503":
			if strings.HasPrefix(pgErr.Message, "insert or update") {
				return violationMissingReference, ident
			}
			return violationStillReferenced, ident
		}
		return violationNone, ""
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062:
			return violationUnique, myErr.Message
		case 1452:
			return violationMissingReference, myErr.Message
		case 1451:
			return violationStillReferenced, myErr.Message
		}
		return violationNone, ""
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return violationUnique, liteErr.Error()
		case sqlite3.ErrConstraintForeignKey:
			// SQLite does not name the failing key
			return violationForeignKey, liteErr.Error()
		}
		// RESTRICT actions surface as SQLITE_CONSTRAINT_TRIGGER
		if liteErr.Code == sqlite3.ErrConstraint && strings.Contains(liteErr.Error(), "FOREIGN KEY") {
			return violationForeignKey, liteErr.Error()
		}
		return violationNone, ""
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return violationUnique, err.Error()
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return violationForeignKey, err.Error()
	}
	return violationNone, ""
}

func findForeignKey(ident string) (foreignKeyRule, bool) {
	for _, r := range foreignKeyRules {
		if strings.Contains(ident, r.constraint) {
			return r, true
		}
	}
	return foreignKeyRule{}, false
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
