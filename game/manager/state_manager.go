package manager

import (
	"time"

	"gridsnake/game/types"

	"github.com/google/uuid"
)

// Session summarises one game from start to termination.
type Session struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Ticks     int
	Cause     types.Cause
}

// Duration is the wall time the session ran for. It is zero while running.
func (s Session) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// StateManager owns the lifecycle state machine and the score.
// Running moves to Terminated once; Terminated is absorbing.
type StateManager struct {
	state   types.State
	session Session
	now     func() time.Time
}

func NewStateManager() *StateManager {
	return newStateManager(time.Now)
}

func newStateManager(now func() time.Time) *StateManager {
	return &StateManager{
		state: types.Running,
		session: Session{
			ID:        uuid.New().String(),
			StartTime: now(),
		},
		now: now,
	}
}

func (sm *StateManager) State() types.State {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == types.Running
}

func (sm *StateManager) Score() int {
	return sm.session.Score
}

// AddPoint increments the score by one while the game is running.
func (sm *StateManager) AddPoint() {
	if sm.Running() {
		sm.session.Score++
	}
}

// Tick counts one completed simulation step.
func (sm *StateManager) Tick() {
	if sm.Running() {
		sm.session.Ticks++
	}
}

// Terminate moves the game to Terminated. Only the first call has effect;
// it reports whether this call performed the transition.
func (sm *StateManager) Terminate(cause types.Cause) bool {
	if !sm.Running() {
		return false
	}
	sm.state = types.Terminated
	sm.session.Cause = cause
	sm.session.EndTime = sm.now()
	return true
}

// Session returns a copy of the current session record.
func (sm *StateManager) Session() Session {
	return sm.session
}
