package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"focusforge/internal/modules/session/domain"
	"focusforge/internal/modules/session/dto"
	sessionout "focusforge/internal/modules/session/port/out"
	"focusforge/internal/platform/clock"
	"focusforge/internal/platform/id"
)

// SessionService wraps the pure timer state machine with a 1 Hz tick loop,
// listener notifications and outcome recording. All transitions happen under
// one mutex; events are emitted after the lock is released.
type SessionService struct {
	clock    clock.Clock
	idGen    id.Generator
	tickers  sessionout.TickerFactory
	recorder sessionout.OutcomeRecorder

	mu        sync.Mutex
	timer     domain.Timer
	sessionID string
	safe      domain.SafePredicate
	ticks     sessionout.TickSource
	done      chan struct{}

	listenerMu   sync.Mutex
	listeners    map[int]func(dto.Event)
	nextListener int
}

func NewSessionService(clk clock.Clock, idGen id.Generator, tickers sessionout.TickerFactory, recorder sessionout.OutcomeRecorder) *SessionService {
	return &SessionService{
		clock:     clk,
		idGen:     idGen,
		tickers:   tickers,
		recorder:  recorder,
		timer:     domain.NewTimer(),
		listeners: map[int]func(dto.Event){},
	}
}

func (s *SessionService) Start(_ context.Context, durationSeconds int) (dto.StartOutput, error) {
	s.mu.Lock()
	if err := s.timer.Start(durationSeconds); err != nil {
		s.mu.Unlock()
		return dto.StartOutput{}, err
	}
	s.sessionID = s.idGen.New()
	s.ticks = s.tickers.NewTicker()
	s.done = make(chan struct{})
	go s.run(s.ticks, s.done)
	view := s.viewLocked()
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{"session": view.SessionID, "duration": durationSeconds, "at": s.clock.Now()}).Info("session started")
	s.emit(dto.Event{Kind: dto.EventStarted, Timer: view})
	return dto.StartOutput{SessionID: view.SessionID, DurationSeconds: durationSeconds}, nil
}

func (s *SessionService) run(ticks sessionout.TickSource, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticks.C():
			if terminal := s.handleTick(); terminal {
				return
			}
		}
	}
}

// handleTick applies one tick. The state check inside domain.Tick makes a
// stale tick delivered after stop or completion a no-op.
func (s *SessionService) handleTick() (terminal bool) {
	s.mu.Lock()
	completed := s.timer.Tick()
	view := s.viewLocked()
	if completed {
		s.haltTicksLocked()
	}
	s.mu.Unlock()

	if !completed {
		if view.Status == string(domain.StatusRunning) {
			s.emit(dto.Event{Kind: dto.EventTicked, Timer: view})
		}
		return false
	}

	outcome := s.record(true, view.DurationSeconds)
	logrus.WithField("session", view.SessionID).Info("session completed")
	s.emit(dto.Event{Kind: dto.EventCompleted, Timer: view, Outcome: outcome})
	return true
}

func (s *SessionService) Pause(context.Context) error {
	s.mu.Lock()
	applied := s.timer.Pause()
	view := s.viewLocked()
	s.mu.Unlock()

	if !applied {
		logrus.WithField("status", view.Status).Debug("pause ignored: illegal transition")
		return nil
	}
	s.emit(dto.Event{Kind: dto.EventPaused, Timer: view})
	return nil
}

func (s *SessionService) Resume(context.Context) error {
	s.mu.Lock()
	applied := s.timer.Resume()
	view := s.viewLocked()
	s.mu.Unlock()

	if !applied {
		logrus.WithField("status", view.Status).Debug("resume ignored: illegal transition")
		return nil
	}
	s.emit(dto.Event{Kind: dto.EventResumed, Timer: view})
	return nil
}

// Stop abandons the live session and records it as failed with the elapsed
// time reached so far. Stopping when nothing runs is a logged no-op.
func (s *SessionService) Stop(context.Context) (dto.OutcomeOutput, error) {
	return s.terminate(dto.EventStopped)
}

// ReportInput classifies a raw input event against the current timer state.
// A classified interruption terminates the session exactly like Stop, but is
// reported separately so the UI can play its failure treatment.
func (s *SessionService) ReportInput(_ context.Context, target string) (bool, error) {
	s.mu.Lock()
	decision := domain.Classify(domain.InputEvent{Target: target}, s.timer.Status, s.safe)
	s.mu.Unlock()
	if decision != domain.DecisionInterrupt {
		return false, nil
	}
	if _, err := s.terminate(dto.EventInterrupted); err != nil {
		return true, err
	}
	return true, nil
}

func (s *SessionService) terminate(kind string) (dto.OutcomeOutput, error) {
	s.mu.Lock()
	applied := s.timer.Stop()
	elapsed := s.timer.ElapsedSeconds()
	view := s.viewLocked()
	if applied {
		s.haltTicksLocked()
	}
	s.mu.Unlock()

	if !applied {
		logrus.WithField("status", view.Status).Debug("stop ignored: illegal transition")
		return dto.OutcomeOutput{}, nil
	}

	outcome := s.record(false, elapsed)
	logrus.WithFields(logrus.Fields{"session": view.SessionID, "elapsed": elapsed, "kind": kind}).Info("session aborted")
	s.emit(dto.Event{Kind: kind, Timer: view, Outcome: outcome})
	if outcome == nil {
		return dto.OutcomeOutput{}, nil
	}
	return *outcome, nil
}

func (s *SessionService) Reset(context.Context) error {
	s.mu.Lock()
	applied := s.timer.Reset()
	if applied {
		s.sessionID = ""
	}
	s.mu.Unlock()
	if !applied {
		logrus.Debug("reset ignored: session still live")
	}
	return nil
}

func (s *SessionService) Status(context.Context) (dto.TimerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(), nil
}

func (s *SessionService) SetSafePredicate(safe func(target string) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if safe == nil {
		s.safe = nil
		return
	}
	s.safe = func(ev domain.InputEvent) bool { return safe(ev.Target) }
}

func (s *SessionService) Subscribe(listener func(dto.Event)) func() {
	s.listenerMu.Lock()
	key := s.nextListener
	s.nextListener++
	s.listeners[key] = listener
	s.listenerMu.Unlock()
	return func() {
		s.listenerMu.Lock()
		delete(s.listeners, key)
		s.listenerMu.Unlock()
	}
}

// record lands the outcome in the ledger. Ledger failures must never break
// the session flow, so they are logged and swallowed.
func (s *SessionService) record(completed bool, seconds int) *dto.OutcomeOutput {
	if s.recorder == nil {
		return nil
	}
	var outcome dto.OutcomeOutput
	var err error
	if completed {
		outcome, err = s.recorder.RecordCompleted(context.Background(), seconds)
	} else {
		outcome, err = s.recorder.RecordFailed(context.Background(), seconds)
	}
	if err != nil {
		logrus.WithError(err).Error("recording session outcome failed")
		return nil
	}
	return &outcome
}

func (s *SessionService) haltTicksLocked() {
	if s.ticks != nil {
		s.ticks.Stop()
		s.ticks = nil
	}
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
}

func (s *SessionService) viewLocked() dto.TimerView {
	return dto.TimerView{
		SessionID:        s.sessionID,
		Status:           string(s.timer.Status),
		DurationSeconds:  s.timer.DurationSeconds,
		RemainingSeconds: s.timer.RemainingSeconds,
	}
}

func (s *SessionService) emit(ev dto.Event) {
	s.listenerMu.Lock()
	listeners := make([]func(dto.Event), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenerMu.Unlock()
	for _, l := range listeners {
		l(ev)
	}
}
