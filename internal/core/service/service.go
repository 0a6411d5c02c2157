// Package service holds the business rules of the film catalog. Services
// talk to storage only through the ports interfaces.
package service

import (
	"errors"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

const (
	msgNotAllowed          = "You are not allowed to do this action"
	msgNotAllowedUser      = "You are not allowed to view this user's information"
	msgCredentialsMismatch = "The given email and password do not match"

	msgFilmNotFound     = "No film with this ID exists"
	msgPersonNotFound   = "No person with this ID exists"
	msgLocationNotFound = "No location with this ID exists"
	msgAwardNotFound    = "No award with this ID exists"
	msgUserNotFound     = "No user with this ID exists"
	msgDirectorNotFound = "This director does not exist"
	msgActorNotFound    = "This actor does not exist"
	msgLocationMissing  = "This location does not exist"
)

// Audit resource names.
const (
	resourceFilm     = "film"
	resourcePerson   = "person"
	resourceLocation = "location"
	resourceAward    = "award"
	resourceUser     = "user"
)

func requireAdmin(session domain.Session) error {
	if !session.IsAdmin() {
		return domain.Forbidden(msgNotAllowed)
	}
	return nil
}

// notFound converts domain.ErrNotFound into a NOT_FOUND service error with msg.
func notFound(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(msg).Wrap(err)
	}
	return err
}

// nopRecorder is used when no audit recorder is configured.
type nopRecorder struct{}

func (nopRecorder) Record(domain.AuditEvent) {}

func recorderOrNop(r ports.AuditRecorder) ports.AuditRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

func auditEvent(action domain.AuditAction, resource string, id uint, session domain.Session) domain.AuditEvent {
	return domain.AuditEvent{Action: action, Resource: resource, ResourceID: id, ActorID: session.UserID}
}
