package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/event"
	"github.com/osse101/FruitReels_Go/internal/logger"
	"github.com/osse101/FruitReels_Go/internal/scheduler"
	"github.com/osse101/FruitReels_Go/internal/slots"
	"github.com/osse101/FruitReels_Go/internal/timing"
)

// Service defines the interface for the game session
type Service interface {
	// RequestRoll starts a roll when idle. While a roll is in progress it
	// returns the in-flight roll with started=false and changes nothing.
	RequestRoll(ctx context.Context) (roll *domain.Roll, started bool, err error)
	RequestReset(ctx context.Context) error
	Snapshot() domain.SessionSnapshot
	GetRoll(ctx context.Context, id uuid.UUID) (*domain.RollRecord, error)
	RecentRolls() []domain.RollRecord
	Shutdown(ctx context.Context) error
}

type service struct {
	cfg         Config
	engine      *slots.Engine
	coordinator *timing.Coordinator
	scheduler   *scheduler.Scheduler
	bus         event.Bus
	formatter   *slots.Formatter
	history     *rollHistory
	now         func() time.Time

	mu      sync.Mutex
	state   domain.SessionState
	current *domain.Roll              // Roll being displayed, nil when idle
	pending map[uuid.UUID]domain.Roll // Rolls whose payout has not been applied
	last    *domain.Settlement
	outbox  []event.Event
	closed  bool

	emitMu   sync.Mutex // Serializes outbox flushes so events leave in transition order
	inFlight sync.WaitGroup
}

// NewService creates a session in the Idle state
func NewService(
	cfg Config,
	engine *slots.Engine,
	coordinator *timing.Coordinator,
	sched *scheduler.Scheduler,
	bus event.Bus,
	formatter *slots.Formatter,
) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if engine == nil || coordinator == nil || sched == nil || bus == nil || formatter == nil {
		return nil, fmt.Errorf("%w: session dependencies are required", domain.ErrInvalidConfig)
	}
	if cfg.ResetPolicy == "" {
		cfg.ResetPolicy = ResetPolicyKeep
	}

	return &service{
		cfg:         cfg,
		engine:      engine,
		coordinator: coordinator,
		scheduler:   sched,
		bus:         bus,
		formatter:   formatter,
		history:     newRollHistory(cfg.HistorySize, cfg.HistoryTTL),
		now:         time.Now,
		state:       domain.SessionState{Winnings: cfg.InitialWinnings},
		pending:     make(map[uuid.UUID]domain.Roll),
	}, nil
}

func (s *service) RequestRoll(ctx context.Context) (*domain.Roll, bool, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, false, domain.ErrSessionClosed
	}

	if s.state.RollInProgress {
		inFlight := *s.current
		s.enqueue(event.NewRollIgnoredEvent(inFlight.Result.ID.String()))
		s.mu.Unlock()

		log.Debug(LogMsgRollIgnored, "in_flight_roll_id", inFlight.Result.ID)
		s.flush(ctx)
		return &inFlight, false, nil
	}

	engineCfg := s.engine.Config()
	t := s.coordinator.AssignTimings(engineCfg.ReelCount)
	result, err := s.engine.Roll()
	if err != nil {
		s.mu.Unlock()
		return nil, false, fmt.Errorf("%s: %w", ErrContextStartRoll, err)
	}

	roll := domain.Roll{
		Result:    result,
		Timing:    t,
		Stops:     timing.Stops(t, engineCfg.ReelLength),
		StartedAt: s.now(),
	}
	id := result.ID

	s.inFlight.Add(1)
	if !s.scheduler.ScheduleOnce(id, t.Completion(), &payoutJob{svc: s, rollID: id}) {
		s.inFlight.Done()
		s.mu.Unlock()
		return nil, false, fmt.Errorf("%s: %w", ErrContextStartRoll, domain.ErrSessionClosed)
	}

	s.state.RollInProgress = true
	s.current = &roll
	s.pending[id] = roll
	s.history.Put(domain.RollRecord{Roll: roll})
	s.enqueue(event.NewRollStartedEvent(roll, s.state.Winnings))
	s.mu.Unlock()

	log.Info(LogMsgRollStarted,
		"roll_id", id,
		"landing", result.Landing,
		"timing_units", t.Units,
		"completes_in", t.Completion())
	s.flush(ctx)

	out := roll
	return &out, true, nil
}

func (s *service) RequestReset(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}

	var rollID uuid.UUID
	cancelled := false
	if s.state.RollInProgress && s.current != nil {
		rollID = s.current.Result.ID
		if s.cfg.ResetPolicy == ResetPolicyCancel {
			cancelled = s.cancelPayoutLocked(rollID)
		}
		s.history.Update(rollID, func(rec *domain.RollRecord) {
			rec.Reset = true
		})
	}

	s.state.RollInProgress = false
	s.current = nil

	idStr := ""
	if rollID != uuid.Nil {
		idStr = rollID.String()
	}
	s.enqueue(event.NewRollResetEvent(idStr, cancelled, s.state.Winnings))
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgRollReset,
		"roll_id", idStr,
		"policy", s.cfg.ResetPolicy,
		"payout_cancelled", cancelled)
	s.flush(ctx)
	return nil
}

// cancelPayoutLocked drops the pending payout for id. A task that already
// fired finds nothing pending and exits without touching winnings.
func (s *service) cancelPayoutLocked(id uuid.UUID) bool {
	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	if s.scheduler.Cancel(id) {
		s.inFlight.Done()
	}
	return true
}

// settle applies the payout of a roll once its last reel has stopped
func (s *service) settle(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	roll, ok := s.pending[id]
	if !ok {
		s.mu.Unlock()
		log.Debug(LogMsgPayoutSkipped, "roll_id", id)
		return nil
	}
	delete(s.pending, id)

	outcome, err := s.engine.Evaluate(roll.Result.Reels)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%s %s: %w", ErrContextEvaluateRoll, id, err)
	}

	before := s.state.Winnings
	s.state.Winnings += outcome.PayoutDelta

	stale := s.current == nil || s.current.Result.ID != id
	if !stale {
		s.state.RollInProgress = false
		s.current = nil
	}

	settlement := domain.Settlement{
		RollID:         id,
		Outcome:        outcome,
		WinningsBefore: before,
		WinningsAfter:  s.state.Winnings,
		Stale:          stale,
		Message:        s.formatter.Format(outcome),
		SettledAt:      s.now(),
	}
	s.last = &settlement
	s.history.Update(id, func(rec *domain.RollRecord) {
		st := settlement
		rec.Settlement = &st
	})
	s.enqueue(event.NewRollSettledEvent(settlement))
	s.mu.Unlock()

	if stale {
		log.Info(LogMsgStalePayout, "roll_id", id, "payout_delta", outcome.PayoutDelta, "winnings", settlement.WinningsAfter)
	} else {
		log.Info(LogMsgRollSettled, "roll_id", id, "payout_delta", outcome.PayoutDelta, "winnings", settlement.WinningsAfter)
	}
	s.flush(ctx)
	return nil
}

func (s *service) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.SessionSnapshot{
		Status:         domain.SessionStatusIdle,
		Winnings:       s.state.Winnings,
		RollInProgress: s.state.RollInProgress,
		PendingPayouts: len(s.pending),
	}
	if s.state.RollInProgress {
		snap.Status = domain.SessionStatusRolling
	}
	if s.current != nil {
		roll := *s.current
		snap.CurrentRoll = &roll
	}
	if s.last != nil {
		last := *s.last
		snap.LastSettlement = &last
	}
	return snap
}

func (s *service) GetRoll(ctx context.Context, id uuid.UUID) (*domain.RollRecord, error) {
	rec, ok := s.history.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRollNotFound, id)
	}
	return &rec, nil
}

func (s *service) RecentRolls() []domain.RollRecord {
	return s.history.Recent()
}

// Shutdown rejects new requests, cancels payouts that have not fired and
// waits for the ones already running.
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	s.mu.Lock()
	s.closed = true
	for id := range s.pending {
		if s.scheduler.Cancel(id) {
			delete(s.pending, id)
			s.inFlight.Done()
			log.Info(LogMsgCancelledOnStop, "roll_id", id)
		}
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

// enqueue queues an event for publication; the caller holds s.mu
func (s *service) enqueue(evt event.Event) {
	s.outbox = append(s.outbox, evt)
}

// flush publishes queued events outside the state lock, in the order the
// transitions that produced them happened.
func (s *service) flush(ctx context.Context) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	events := s.outbox
	s.outbox = nil
	s.mu.Unlock()

	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}
