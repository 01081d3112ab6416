package session

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/alert_dashboard/internal/viewstate"
	"github.com/sirupsen/logrus"
)

type entry struct {
	dashboard *viewstate.Dashboard
	lastSeen  time.Time
}

// Store хранит дашборды сессий в памяти и выселяет простаивающие
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
	logger   *logrus.Logger
}

// NewStore создает хранилище; ttl <= 0 отключает выселение
func NewStore(ttl time.Duration, logger *logrus.Logger) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// GetOrCreate возвращает дашборд сессии, создавая его при необходимости.
// Второе значение сообщает, был ли дашборд создан.
func (s *Store) GetOrCreate(id string, create func() *viewstate.Dashboard) (*viewstate.Dashboard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[id]; ok {
		e.lastSeen = s.now()
		return e.dashboard, false
	}

	d := create()
	s.sessions[id] = &entry{dashboard: d, lastSeen: s.now()}
	return d, true
}

// Delete удаляет сессию и освобождает ресурсы ее представлений
func (s *Store) Delete(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		closeDashboard(e.dashboard)
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep выселяет сессии, простаивающие дольше ttl, и возвращает их число
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	deadline := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*viewstate.Dashboard
	for id, e := range s.sessions {
		if e.lastSeen.Before(deadline) {
			expired = append(expired, e.dashboard)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, d := range expired {
		closeDashboard(d)
	}
	return len(expired)
}

// Start запускает горутину периодического выселения
func (s *Store) Start(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	s.logger.Info("Starting session janitor...")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping session janitor.")
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					s.logger.WithField("evicted", n).Debug("Idle sessions evicted")
				}
			}
		}
	}()
}

func closeDashboard(d *viewstate.Dashboard) {
	d.Lock()
	defer d.Unlock()
	d.Close()
}
