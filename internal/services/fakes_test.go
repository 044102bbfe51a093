package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

// fakeConferenceRepo is an in-memory ConferenceRepository for tests.
type fakeConferenceRepo struct {
	byID          map[string]*domain.Conference
	nextID        int
	createErr     error
	queryResults  []*domain.Conference
	queryFilters  []domain.ConferenceFilter
	queryOrder    string
	nearlySoldOut []*domain.Conference
}

func newFakeConferenceRepo() *fakeConferenceRepo {
	return &fakeConferenceRepo{
		byID:   make(map[string]*domain.Conference),
		nextID: 1,
	}
}

func (f *fakeConferenceRepo) Create(ctx context.Context, c *domain.Conference) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = fmt.Sprintf("conf-%d", f.nextID)
	f.nextID++
	f.byID[c.ID] = c
	return nil
}

func (f *fakeConferenceRepo) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeConferenceRepo) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	var out []*domain.Conference
	for _, c := range f.byID {
		if c.OrganizerID == organizerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeConferenceRepo) Update(ctx context.Context, c *domain.Conference) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeConferenceRepo) Query(ctx context.Context, filters []domain.ConferenceFilter, orderColumn string) ([]*domain.Conference, error) {
	f.queryFilters = filters
	f.queryOrder = orderColumn
	return f.queryResults, nil
}

func (f *fakeConferenceRepo) ListNearlySoldOut(ctx context.Context, limit int) ([]*domain.Conference, error) {
	return f.nearlySoldOut, nil
}

func (f *fakeConferenceRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	var out []*domain.Conference
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	sessions  []*domain.Session
	nextID    int
	createErr error
	past      []*domain.Session
	today     []*domain.Session
	early     []*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{nextID: 1}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	f.sessions = append(f.sessions, s)
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.sessions {
		if s.ConferenceID == conferenceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByConferenceIDAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.sessions {
		if s.ConferenceID == conferenceID && strings.EqualFold(s.TypeOfSession, typeOfSession) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.sessions {
		if s.Speaker == speaker {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListBySpeakerAndConference(ctx context.Context, speaker, conferenceID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.sessions {
		if s.Speaker == speaker && s.ConferenceID == conferenceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) CountBySpeakerAndConference(ctx context.Context, speaker, conferenceID string) (int, error) {
	sessions, _ := f.ListBySpeakerAndConference(ctx, speaker, conferenceID)
	return len(sessions), nil
}

func (f *fakeSessionRepo) ListPast(ctx context.Context) ([]*domain.Session, error) {
	return f.past, nil
}

func (f *fakeSessionRepo) ListToday(ctx context.Context) ([]*domain.Session, error) {
	return f.today, nil
}

func (f *fakeSessionRepo) ListStartingBefore(ctx context.Context, hour int) ([]*domain.Session, error) {
	return f.early, nil
}

func (f *fakeSessionRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, id := range ids {
		for _, s := range f.sessions {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// fakeSpeakerRepo is an in-memory SpeakerRepository for tests.
type fakeSpeakerRepo struct {
	byName map[string]*domain.Speaker
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{byName: make(map[string]*domain.Speaker)}
}

func (f *fakeSpeakerRepo) GetByName(ctx context.Context, displayName string) (*domain.Speaker, error) {
	if sp, ok := f.byName[displayName]; ok {
		return sp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, speaker *domain.Speaker) error {
	f.byName[speaker.DisplayName] = speaker
	return nil
}

func (f *fakeSpeakerRepo) Update(ctx context.Context, speaker *domain.Speaker) error {
	if _, ok := f.byName[speaker.DisplayName]; !ok {
		return domain.ErrNotFound
	}
	f.byName[speaker.DisplayName] = speaker
	return nil
}

func (f *fakeSpeakerRepo) AppendSessionID(ctx context.Context, displayName, sessionID string) error {
	sp, ok := f.byName[displayName]
	if !ok {
		return domain.ErrNotFound
	}
	sp.SessionIDs = append(sp.SessionIDs, sessionID)
	return nil
}

func (f *fakeSpeakerRepo) ListAll(ctx context.Context) ([]*domain.Speaker, error) {
	var out []*domain.Speaker
	for _, sp := range f.byName {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

// fakeProfileRepo is an in-memory ProfileRepository for tests.
type fakeProfileRepo struct {
	byID        map[string]*domain.Profile
	registerErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: make(map[string]*domain.Profile)}
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) AddWishlistSession(ctx context.Context, profileID, sessionID string) error {
	p, ok := f.byID[profileID]
	if !ok {
		return domain.ErrNotFound
	}
	p.WishlistSessionIDs = append(p.WishlistSessionIDs, sessionID)
	return nil
}

func (f *fakeProfileRepo) RemoveWishlistSession(ctx context.Context, profileID, sessionID string) error {
	p, ok := f.byID[profileID]
	if !ok {
		return domain.ErrNotFound
	}
	var kept []string
	for _, id := range p.WishlistSessionIDs {
		if id != sessionID {
			kept = append(kept, id)
		}
	}
	p.WishlistSessionIDs = kept
	return nil
}

func (f *fakeProfileRepo) Register(ctx context.Context, profileID, conferenceID string) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	p, ok := f.byID[profileID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, id := range p.ConferenceIDs {
		if id == conferenceID {
			return fmt.Errorf("already registered for this conference: %w", domain.ErrConflict)
		}
	}
	p.ConferenceIDs = append(p.ConferenceIDs, conferenceID)
	return nil
}

func (f *fakeProfileRepo) Unregister(ctx context.Context, profileID, conferenceID string) (bool, error) {
	p, ok := f.byID[profileID]
	if !ok {
		return false, domain.ErrNotFound
	}
	var kept []string
	removed := false
	for _, id := range p.ConferenceIDs {
		if id == conferenceID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	p.ConferenceIDs = kept
	return removed, nil
}

func (f *fakeProfileRepo) GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string)
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			names[id] = p.DisplayName
		}
	}
	return names, nil
}

// fakeCache is an in-memory Cache for tests.
type fakeCache struct {
	values  map[string]string
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Set(key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Get(key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Delete(key string) error {
	delete(f.values, key)
	f.deleted = append(f.deleted, key)
	return nil
}

// fakeTaskQueue records enqueued tasks for tests.
type fakeTaskQueue struct {
	enqueued []domain.Task
}

func (f *fakeTaskQueue) Enqueue(ctx context.Context, name string, params map[string]string) error {
	f.enqueued = append(f.enqueued, domain.Task{Name: name, Params: params})
	return nil
}

func (f *fakeTaskQueue) byName(name string) []domain.Task {
	var out []domain.Task
	for _, t := range f.enqueued {
		if t.Name == name {
			out = append(out, t)
		}
	}
	return out
}

// fakeAccountRepo is an in-memory AccountRepository for tests.
type fakeAccountRepo struct {
	byEmail map[string]*domain.Account
	nextID  int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*domain.Account), nextID: 1}
}

func (f *fakeAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	a.ID = fmt.Sprintf("acct-%d", f.nextID)
	f.nextID++
	f.byEmail[a.Email] = a
	return nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if a, ok := f.byEmail[email]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

// fakeHasher hashes by concatenation so tests stay deterministic.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

// fakeIssuer issues predictable tokens.
type fakeIssuer struct{}

func (fakeIssuer) Issue(userID, email, nickname string, expiry time.Duration) (string, error) {
	return "token-" + userID, nil
}

func testIdentity() *domain.Identity {
	return &domain.Identity{UserID: "user-1", Email: "user@example.com", Nickname: "user"}
}
