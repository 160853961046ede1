package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/internal/service/handoff"
	"github.com/sulfurea/SPA-BookingService/internal/service/tracking"
	check "github.com/sulfurea/SPA-BookingService/internal/usecase/check_availability"
)

// Service трёхшаговый визард бронирования
// Шаги идут строго вперёд (1 → 2 → 3), назад только явной операцией Back,
// введённые данные при возврате сохраняются
type Service struct {
	store        *store
	checker      AvailabilityChecker
	experiences  ExperienceCatalog
	handoff      HandoffBuilder
	tracker      Tracker
	limits       Limits
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис визарда и запускает фоновую очистку сессий
func NewService(
	checker AvailabilityChecker,
	experiences ExperienceCatalog,
	handoffBuilder HandoffBuilder,
	tracker Tracker,
	limits Limits,
	sessionTTL time.Duration,
	gauge SessionsGauge,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	svc := &Service{
		checker:      checker,
		experiences:  experiences,
		handoff:      handoffBuilder,
		tracker:      tracker,
		limits:       limits,
		timeProvider: timeProvider,
		logger:       logger,
	}
	svc.store = newStore(sessionTTL, gauge, timeProvider.Now)
	return svc
}

// Close останавливает фоновую очистку сессий
func (s *Service) Close() {
	s.store.close()
}

// Start создает новую сессию визарда
// Валидный slug включённой esperienza сразу переводит на шаг 2,
// неизвестный или выключенный игнорируется
func (s *Service) Start(_ context.Context, preselect string) (*State, error) {
	sess := &session{
		id:         uuid.NewString(),
		step:       domain.StepExperienceSelection,
		guests:     s.limits.MinGuests,
		lastActive: s.timeProvider.Now(),
	}

	if preselect != "" {
		exp, err := s.experiences.EnabledExperienceBySlug(preselect)
		if err != nil {
			s.logger.Warn("Start: preselect %q ignored: %v", preselect, err)
		} else {
			sess.experienceSlug = exp.Slug
			sess.experienceName = exp.Name
			sess.step = domain.StepDateAndGuests
		}
	}

	s.store.put(sess)
	s.logger.Info("Start: session=%s, step=%s", sess.id, sess.step)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// Get возвращает снимок состояния сессии
func (s *Service) Get(_ context.Context, id string) (*State, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// SelectExperience записывает выбранную esperienza и переводит на шаг 2
func (s *Service) SelectExperience(_ context.Context, id, slug string) (*State, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	exp, err := s.experiences.EnabledExperienceBySlug(slug)
	if err != nil {
		s.logger.Warn("SelectExperience: session=%s, unknown slug %q", id, slug)
		return nil, ErrExperienceNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.experienceSlug = exp.Slug
	sess.experienceName = exp.Name
	if sess.step == domain.StepExperienceSelection {
		sess.step = domain.StepDateAndGuests
	}
	sess.lastActive = s.timeProvider.Now()

	s.logger.Info("SelectExperience: session=%s, experience=%s", id, slug)
	return sess.snapshot(), nil
}

// AdjustGuests изменяет число гостей на delta с клэмпом к допустимому диапазону
func (s *Service) AdjustGuests(_ context.Context, id string, delta int) (*State, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.guests = domain.ClampGuests(sess.guests+delta, s.limits.MinGuests, s.limits.MaxGuests)
	sess.lastActive = s.timeProvider.Now()

	return sess.snapshot(), nil
}

// CheckAvailability запускает запрос доступности и при успехе переводит на шаг 3
// Операция доступна только на шаге 2 и только когда выбраны обе даты
func (s *Service) CheckAvailability(ctx context.Context, id, start, end string) (*State, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	if start == "" || end == "" {
		return nil, ErrMissingDates
	}
	startDate, err := time.Parse(domain.DateFormat, start)
	if err != nil {
		return nil, fmt.Errorf("%w: start=%q", ErrInvalidDate, start)
	}
	endDate, err := time.Parse(domain.DateFormat, end)
	if err != nil {
		return nil, fmt.Errorf("%w: end=%q", ErrInvalidDate, end)
	}

	sess.mu.Lock()
	if sess.step != domain.StepDateAndGuests {
		step := sess.step
		sess.mu.Unlock()
		return nil, fmt.Errorf("%w: step=%s", ErrInvalidTransition, step)
	}

	sess.startDate = start
	sess.endDate = end
	sess.lastActive = s.timeProvider.Now()

	req := &check.Request{
		Start:          startDate,
		End:            endDate,
		Guests:         sess.guests,
		ExperienceType: sess.experienceSlug,
	}
	// Запрос выполняется без блокировки сессии: он может занять секунды,
	// и другие операции над сессией не должны его ждать
	sess.mu.Unlock()

	s.tracker.Track(ctx, tracking.EventAvailabilityCheck, map[string]interface{}{
		"experience": req.ExperienceType,
		"guests":     req.Guests,
		"start":      start,
		"end":        end,
	})

	resp, err := s.checker.Execute(ctx, req)
	if err != nil {
		s.logger.Warn("CheckAvailability: session=%s, check failed: %v", id, err)
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Поздний ответ перезаписывает результат, даже если пользователь уже
	// успел уйти с шага 2 операцией Back
	sess.availability = resp.Result
	sess.selectedSlotID = ""
	sess.step = domain.StepAvailabilityResults
	sess.lastActive = s.timeProvider.Now()

	s.logger.Info("CheckAvailability: session=%s, slots=%d", id, len(resp.Result.Slots))
	return sess.snapshot(), nil
}

// SelectSlot записывает выбранный слот, шаг не меняется
func (s *Service) SelectSlot(_ context.Context, id, slotID string) (*State, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.step != domain.StepAvailabilityResults || sess.availability == nil {
		return nil, fmt.Errorf("%w: step=%s", ErrInvalidTransition, sess.step)
	}

	var slot *domain.TimeSlot
	for i := range sess.availability.Slots {
		if sess.availability.Slots[i].ID == slotID {
			slot = &sess.availability.Slots[i]
			break
		}
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	if !slot.Available {
		return nil, ErrSlotUnavailable
	}

	sess.selectedSlotID = slotID
	sess.lastActive = s.timeProvider.Now()

	s.logger.Info("SelectSlot: session=%s, slot=%s", id, slotID)
	return sess.snapshot(), nil
}

// Back возвращает на предыдущий шаг, введённые данные сохраняются
func (s *Service) Back(_ context.Context, id string) (*State, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.step {
	case domain.StepAvailabilityResults:
		sess.step = domain.StepDateAndGuests
	case domain.StepDateAndGuests:
		sess.step = domain.StepExperienceSelection
	default:
		return nil, fmt.Errorf("%w: already at first step", ErrInvalidTransition)
	}
	sess.lastActive = s.timeProvider.Now()

	s.logger.Info("Back: session=%s, step=%s", id, sess.step)
	return sess.snapshot(), nil
}

// Confirm завершает заявку: событие аналитики и handoff-ссылки
// Записи в какую-либо систему не происходит
func (s *Service) Confirm(ctx context.Context, id string) (*ConfirmResult, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	state := sess.snapshot()
	sess.lastActive = s.timeProvider.Now()
	sess.mu.Unlock()

	slot := state.SelectedSlot()
	if slot == nil {
		return nil, ErrNoSlotSelected
	}

	slotDate := slot.Date.Format(domain.DateFormat)
	slotTime := slot.Time.String()

	s.tracker.Track(ctx, tracking.EventBookingSubmit, map[string]interface{}{
		"experience": state.ExperienceSlug,
		"guests":     state.Guests,
		"date":       slotDate,
		"time":       slotTime,
	})

	links := s.handoff.BuildLinks(&handoff.BookingIntent{
		ExperienceName: state.ExperienceName,
		Guests:         state.Guests,
		Date:           slotDate,
		Time:           slotTime,
	})

	s.logger.Info("Confirm: session=%s, slot=%s", id, slot.ID)
	return &ConfirmResult{
		Links: links,
		Summary: fmt.Sprintf("Richiesta di prenotazione: %s, %d persone, %s alle %s",
			state.ExperienceName, state.Guests, slotDate, slotTime),
	}, nil
}
