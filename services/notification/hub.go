package notification

import (
	"fmt"
	"sync"

	"github.com/olahol/melody"
)

// UserKey là key lưu user id trong melody.Session
const UserKey = "user_id"

type Observer interface {
	Notify(message string) error
}

type MelodyObserver struct {
	session *melody.Session
}

func NewMelodyObserver(session *melody.Session) *MelodyObserver {
	return &MelodyObserver{session: session}
}

func (o *MelodyObserver) Notify(message string) error {
	return o.session.Write([]byte(message))
}

// TargetedService gửi thông báo tới đúng user thay vì broadcast
type TargetedService interface {
	Service
	SendToUsers(message string, userIDs ...string) error
}

// Hub giữ observer websocket theo user id
type Hub struct {
	mu        sync.RWMutex
	melody    *melody.Melody
	observers map[string][]Observer
}

func NewHub(m *melody.Melody) *Hub {
	return &Hub{
		melody:    m,
		observers: make(map[string][]Observer),
	}
}

// đăng ký observer cho user
func (h *Hub) Register(userID string, observer Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers[userID] = append(h.observers[userID], observer)
}

// xóa observer cho user
func (h *Hub) Remove(userID string, observer Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	observers := h.observers[userID]
	for i, obs := range observers {
		if obs == observer {
			h.observers[userID] = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	if len(h.observers[userID]) == 0 {
		delete(h.observers, userID)
	}
}

// Attach gắn hub vào vòng đời kết nối của melody
func (h *Hub) Attach() {
	sessions := make(map[*melody.Session]Observer)
	var mu sync.Mutex

	h.melody.HandleConnect(func(s *melody.Session) {
		userID, ok := sessionUser(s)
		if !ok {
			return
		}
		obs := NewMelodyObserver(s)
		mu.Lock()
		sessions[s] = obs
		mu.Unlock()
		h.Register(userID, obs)
	})

	h.melody.HandleDisconnect(func(s *melody.Session) {
		userID, ok := sessionUser(s)
		if !ok {
			return
		}
		mu.Lock()
		obs, found := sessions[s]
		delete(sessions, s)
		mu.Unlock()
		if found {
			h.Remove(userID, obs)
		}
	})
}

func sessionUser(s *melody.Session) (string, bool) {
	v, exists := s.Get(UserKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// SendMessage broadcast tới mọi client
func (h *Hub) SendMessage(message string) error {
	if h.melody == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return h.melody.Broadcast([]byte(message))
}

// SendToUsers gửi tới các user đang kết nối; user không online thì bỏ qua
func (h *Hub) SendToUsers(message string, userIDs ...string) error {
	h.mu.RLock()
	var targets []Observer
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		targets = append(targets, h.observers[id]...)
	}
	h.mu.RUnlock()

	var firstErr error
	for _, obs := range targets {
		if err := obs.Notify(message); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
