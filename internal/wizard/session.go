package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
)

// Session is one server-held wizard instance: a draft, its sequencer, and the
// publish in-flight flag (the "submit disabled" backpressure of the client).
// The draft is owned exclusively by one creator for the session's lifetime.
type Session struct {
	ID      string
	OwnerID string
	EventID string // non-empty in edit mode

	mu         sync.Mutex
	draft      entities.EventDraft
	seq        *Sequencer
	publishing bool
	touchedAt  time.Time
}

// Draft returns a snapshot of the current draft value.
func (s *Session) Draft() entities.EventDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.Step()
}

// SetField applies one immutable field update to the draft.
func (s *Session) SetField(field string, value any) (entities.EventDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := SetField(s.draft, field, value)
	if err != nil {
		return s.draft, err
	}
	s.draft = next
	s.touchedAt = time.Now()
	return next, nil
}

// Next runs the current step's validator and advances on success.
func (s *Session) Next() (Step, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.seq.Next(s.draft)
	s.touchedAt = time.Now()
	return s.seq.Step(), res
}

func (s *Session) Previous() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Previous()
	s.touchedAt = time.Now()
	return s.seq.Step()
}

func (s *Session) JumpTo(step Step) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.seq.JumpTo(step); err != nil {
		return s.seq.Step(), err
	}
	s.touchedAt = time.Now()
	return s.seq.Step(), nil
}

// Review projects the draft into its review sections.
func (s *Session) Review(loc *time.Location) []Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Project(s.draft, loc)
}

// BeginPublish marks the session as publishing. A second publish while one is
// in flight is refused; there is no other overlap to guard against since the
// session has a single owner.
func (s *Session) BeginPublish() (entities.EventDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.publishing {
		return s.draft, domain.ErrPublishInFlight
	}
	s.publishing = true
	return s.draft, nil
}

// EndPublish re-arms the session after a failed publish so the creator can
// retry without re-entering anything.
func (s *Session) EndPublish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishing = false
}

// Registry holds live wizard sessions in memory, keyed by session id.
// Sessions expire after ttl of inactivity.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create opens a new session for ownerID. draft is the starting value (blank
// defaults, or a hydrated draft in edit mode); eventID is empty for a new
// event.
func (r *Registry) Create(ownerID string, draft entities.EventDraft, eventID string) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		EventID:   eventID,
		draft:     draft,
		seq:       NewSequencer(),
		touchedAt: time.Now(),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session when it exists, has not expired, and belongs to
// ownerID. Any other case is ErrDraftNotFound: a foreign session must be
// indistinguishable from a missing one.
func (r *Registry) Get(id, ownerID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.OwnerID != ownerID {
		return nil, domain.ErrDraftNotFound
	}
	s.mu.Lock()
	expired := time.Since(s.touchedAt) > r.ttl
	s.mu.Unlock()
	if expired {
		delete(r.sessions, id)
		return nil, domain.ErrDraftNotFound
	}
	return s, nil
}

// Delete discards a session (cancel, or successful publish).
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Sweep drops every expired session and returns how many were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		expired := now.Sub(s.touchedAt) > r.ttl
		s.mu.Unlock()
		if expired {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
