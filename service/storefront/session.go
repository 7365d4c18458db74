package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	sessionRepo "greenearth.GO/model/repository/session"
	"greenearth.GO/service/cart"
	"greenearth.GO/service/overlay"
)

// Session is everything the page remembers for one visitor.
type Session struct {
	Cart    cart.Store      `json:"cart"`
	Overlay overlay.Overlay `json:"overlay"`
	// Toast is shown once on the next page render.
	Toast string `json:"toast,omitempty"`
}

const lockShards = 64

// Sessions serializes load-mutate-save per visitor id.
type Sessions struct {
	repo  sessionRepo.SessionRepository
	locks [lockShards]sync.Mutex
}

func NewSessions(repo sessionRepo.SessionRepository) *Sessions {
	return &Sessions{repo: repo}
}

func (s *Sessions) lock(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockShards]
}

func (s *Sessions) load(ctx context.Context, id string) (*Session, error) {
	data, err := s.repo.Load(ctx, id)
	if errors.Is(err, sessionRepo.ErrNotFound) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt blob is treated as a fresh session.
		return &Session{}, nil
	}
	return &sess, nil
}

// Get returns a copy of the visitor's session without changing it.
func (s *Sessions) Get(ctx context.Context, id string) (Session, error) {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()
	sess, err := s.load(ctx, id)
	if err != nil {
		return Session{}, err
	}
	return *sess, nil
}

// Update runs fn on the visitor's session and saves it unless fn fails.
func (s *Sessions) Update(ctx context.Context, id string, fn func(*Session) error) error {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(sess); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Save(ctx, id, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Sweep drops expired sessions from the backing store.
func (s *Sessions) Sweep(ctx context.Context) (int, error) {
	return s.repo.Sweep(ctx)
}
