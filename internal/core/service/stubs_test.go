package service

import (
	"context"
	"sync"
	"testing"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create mirrors the unique email index of the real store.
func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ValidationFailed("There is already a user with this email address")
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email && u.ID != user.ID {
			return domain.ValidationFailed("There is already a user with this email address")
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type stubPersonRepo struct {
	persons  map[uint]*domain.Person
	roles    map[uint][]domain.PersonRole
	directed map[uint]int64
	nextID   uint
}

func newStubPersonRepo() *stubPersonRepo {
	return &stubPersonRepo{
		persons:  make(map[uint]*domain.Person),
		roles:    make(map[uint][]domain.PersonRole),
		directed: make(map[uint]int64),
		nextID:   1,
	}
}

func (r *stubPersonRepo) FindAll(_ context.Context) ([]domain.Person, error) {
	var out []domain.Person
	for _, p := range r.persons {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPersonRepo) FindByID(_ context.Context, id uint) (*domain.Person, error) {
	p, ok := r.persons[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPersonRepo) FindRoles(_ context.Context, id uint) ([]domain.PersonRole, error) {
	return r.roles[id], nil
}

func (r *stubPersonRepo) CountDirected(_ context.Context, id uint) (int64, error) {
	return r.directed[id], nil
}

func (r *stubPersonRepo) Create(_ context.Context, p *domain.Person) error {
	p.ID = r.nextID
	r.nextID++
	clone := *p
	r.persons[p.ID] = &clone
	return nil
}

func (r *stubPersonRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.persons[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.persons, id)
	delete(r.roles, id)
	return nil
}

type stubLocationRepo struct {
	locations map[uint]*domain.Location
	links     map[uint]int64
	nextID    uint
}

func newStubLocationRepo() *stubLocationRepo {
	return &stubLocationRepo{locations: make(map[uint]*domain.Location), links: make(map[uint]int64), nextID: 1}
}

func (r *stubLocationRepo) FindAll(_ context.Context) ([]domain.Location, error) {
	var out []domain.Location
	for _, l := range r.locations {
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubLocationRepo) FindByID(_ context.Context, id uint) (*domain.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLocationRepo) FindByAddress(_ context.Context, street, city, country string) (*domain.Location, error) {
	for _, l := range r.locations {
		if l.Street == street && l.City == city && l.Country == country {
			clone := *l
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubLocationRepo) FindFilms(_ context.Context, _ uint) ([]domain.FilmRef, error) {
	return []domain.FilmRef{{ID: 1, Name: "Star Wars: A New Hope"}}, nil
}

func (r *stubLocationRepo) CountFilmLinks(_ context.Context, id uint) (int64, error) {
	return r.links[id], nil
}

func (r *stubLocationRepo) Create(ctx context.Context, l *domain.Location) error {
	if _, err := r.FindByAddress(ctx, l.Street, l.City, l.Country); err == nil {
		return domain.ValidationFailed("A place with this street, city, and country already exists")
	}
	l.ID = r.nextID
	r.nextID++
	clone := *l
	r.locations[l.ID] = &clone
	return nil
}

func (r *stubLocationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.locations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.locations, id)
	return nil
}

type stubAwardRepo struct {
	awards map[uint]*domain.Award
	nextID uint
}

func newStubAwardRepo() *stubAwardRepo {
	return &stubAwardRepo{awards: make(map[uint]*domain.Award), nextID: 1}
}

func (r *stubAwardRepo) FindAll(_ context.Context) ([]domain.Award, error) {
	var out []domain.Award
	for _, a := range r.awards {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAwardRepo) FindByID(_ context.Context, id uint) (*domain.Award, error) {
	a, ok := r.awards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAwardRepo) FindByFilm(_ context.Context, filmID uint) ([]domain.Award, error) {
	var out []domain.Award
	for _, a := range r.awards {
		if a.FilmID == filmID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAwardRepo) Create(_ context.Context, a *domain.Award) error {
	a.ID = r.nextID
	r.nextID++
	clone := *a
	r.awards[a.ID] = &clone
	return nil
}

func (r *stubAwardRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.awards[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.awards, id)
	return nil
}

func (r *stubAwardRepo) DeleteByFilm(_ context.Context, filmID uint) error {
	for id, a := range r.awards {
		if a.FilmID == filmID {
			delete(r.awards, id)
		}
	}
	return nil
}

// stubFilmRepo only knows which film ids exist; AwardService needs nothing more.
type stubFilmRepo struct {
	films map[uint]*domain.Film
}

func (r *stubFilmRepo) FindAll(context.Context) ([]domain.Film, error) { return nil, nil }

func (r *stubFilmRepo) FindByID(_ context.Context, id uint) (*domain.Film, error) {
	f, ok := r.films[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFilmRepo) FindActors(context.Context, uint) ([]domain.Actor, error)       { return nil, nil }
func (r *stubFilmRepo) FindLocations(context.Context, uint) ([]domain.Location, error) { return nil, nil }
func (r *stubFilmRepo) Create(context.Context, *domain.Film) error                     { return nil }
func (r *stubFilmRepo) Update(context.Context, *domain.Film) error                     { return nil }
func (r *stubFilmRepo) Delete(context.Context, uint) error                             { return nil }
func (r *stubFilmRepo) AddActor(context.Context, uint, uint, string) error             { return nil }
func (r *stubFilmRepo) DeleteActors(context.Context, uint) error                       { return nil }
func (r *stubFilmRepo) AddLocation(context.Context, uint, uint) error                  { return nil }
func (r *stubFilmRepo) DeleteLocations(context.Context, uint) error                    { return nil }

// passthroughTx runs fn directly; the stubs have no rollback.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Record(e domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *recordingAudit) last() domain.AuditEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.events) == 0 {
		return domain.AuditEvent{}
	}
	return a.events[len(a.events)-1]
}

var (
	adminSession = domain.Session{UserID: 1, Roles: []string{domain.RoleAdmin, domain.RoleUser}}
	userSession  = domain.Session{UserID: 2, Roles: []string{domain.RoleUser}}
)

func assertKind(t testing.TB, err error, want domain.ErrorKind) {
	t.Helper()
	if got := domain.KindOf(err); got != want {
		t.Fatalf("expected %s, got %v", want, err)
	}
}
