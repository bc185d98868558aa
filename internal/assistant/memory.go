package assistant

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrAccessDenied         = errors.New("access denied")
)

// Message is one entry in a conversation's history.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a caller-identified exchange held only in process memory.
type Conversation struct {
	ID           string    `json:"conversation_id"`
	UserID       int64     `json:"-"`
	Messages     []Message `json:"messages"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// Store maps caller-supplied conversation IDs to message histories. It is a
// single shared map guarded by one mutex; every operation is O(1) apart from
// the sweep. State does not survive a restart.
//
// IDs are chosen by the client. If two users race to create the same ID the
// first writer owns it and the second's later reads fail the ownership check.
type Store struct {
	mu            sync.Mutex
	conversations map[string]*Conversation
	ttl           time.Duration
}

// NewStore creates a conversation store whose sweep removes conversations
// inactive for longer than ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		conversations: make(map[string]*Conversation),
		ttl:           ttl,
	}
}

// Append records a message in the conversation, creating it (owned by userID)
// on first use and refreshing last_activity. An empty id is a no-op: the
// client opted out of server-side memory for this exchange.
func (s *Store) Append(id string, userID int64, role, content string) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	conv, ok := s.conversations[id]
	if !ok {
		conv = &Conversation{
			ID:        id,
			UserID:    userID,
			CreatedAt: now,
		}
		s.conversations[id] = conv
	}
	conv.LastActivity = now
	conv.Messages = append(conv.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
}

// Get returns a copy of the conversation. Only the owner may read it.
func (s *Store) Get(id string, userID int64) (Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return Conversation{}, ErrConversationNotFound
	}
	if conv.UserID != userID {
		return Conversation{}, ErrAccessDenied
	}

	cp := *conv
	cp.Messages = make([]Message, len(conv.Messages))
	copy(cp.Messages, conv.Messages)
	return cp, nil
}

// Delete removes the conversation. Only the owner may delete it.
func (s *Store) Delete(id string, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return ErrConversationNotFound
	}
	if conv.UserID != userID {
		return ErrAccessDenied
	}

	delete(s.conversations, id)
	return nil
}

// Sweep drops every conversation inactive for longer than the store TTL.
// Called opportunistically at the start of each chat request rather than
// from a background timer.
func (s *Store) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, conv := range s.conversations {
		if conv.LastActivity.Before(cutoff) {
			delete(s.conversations, id)
		}
	}
}

// Len returns the number of live conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}
