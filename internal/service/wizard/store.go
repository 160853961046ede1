package wizard

import (
	"sync"
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

const janitorInterval = time.Minute

// session состояние одной сессии визарда
// Каждая сессия защищена собственным мьютексом: операции над разными
// сессиями не конкурируют между собой
type session struct {
	mu sync.Mutex

	id             string
	step           domain.WizardStep
	experienceSlug string
	experienceName string
	startDate      string
	endDate        string
	guests         int
	availability   *domain.AvailabilityResult
	selectedSlotID string

	lastActive time.Time
}

// snapshot копирует состояние под блокировкой вызывающего
func (s *session) snapshot() *State {
	return &State{
		ID:             s.id,
		Step:           s.step,
		ExperienceSlug: s.experienceSlug,
		ExperienceName: s.experienceName,
		StartDate:      s.startDate,
		EndDate:        s.endDate,
		Guests:         s.guests,
		Availability:   s.availability,
		SelectedSlotID: s.selectedSlotID,
	}
}

// store in-memory хранилище сессий с фоновой очисткой по TTL
type store struct {
	mu       sync.RWMutex
	sessions map[string]*session

	ttl   time.Duration
	gauge SessionsGauge
	now   func() time.Time

	stop chan struct{}
	done chan struct{}
}

func newStore(ttl time.Duration, gauge SessionsGauge, now func() time.Time) *store {
	st := &store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		gauge:    gauge,
		now:      now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go st.janitor()
	return st
}

func (st *store) put(s *session) {
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()

	if st.gauge != nil {
		st.gauge.Inc()
	}
}

func (st *store) get(id string) (*session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	return s, ok
}

// janitor удаляет сессии, неактивные дольше TTL
func (st *store) janitor() {
	defer close(st.done)

	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.sweep()
		case <-st.stop:
			return
		}
	}
}

func (st *store) sweep() {
	deadline := st.now().Add(-st.ttl)

	st.mu.Lock()
	var expired []string
	for id, s := range st.sessions {
		s.mu.Lock()
		if s.lastActive.Before(deadline) {
			expired = append(expired, id)
		}
		s.mu.Unlock()
	}
	for _, id := range expired {
		delete(st.sessions, id)
	}
	st.mu.Unlock()

	if st.gauge != nil {
		for range expired {
			st.gauge.Dec()
		}
	}
}

func (st *store) close() {
	close(st.stop)
	<-st.done
}
