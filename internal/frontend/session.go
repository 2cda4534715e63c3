// Package frontend implements the operations a user-facing driver (a
// console, a GUI, a network client) consumes to play a game against the
// engine: session bookkeeping, legality checks, and the
// apply-user-move-then-reply turn cycle. Rendering, input loops, and
// transport are deliberately left to the driver — cmd/console is the
// thinnest possible example of one.
package frontend

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"xionghan/internal/engine"
	"xionghan/internal/xiangqi"
)

// Outcome is the result of ApplyUserMove. It replaces the bare
// "ongoing"/"no_moves" status string the teacher's HTTP DTOs used with a
// typed enum, per the frontend contract.
type Outcome int

const (
	// Illegal means the move does not appear in the user side's
	// pseudo-move list (and the from cell did hold a user piece).
	Illegal Outcome = iota
	// NotYourPiece means the from cell does not hold a piece belonging
	// to the user side.
	NotYourPiece
	// Continue means the user move was applied and, unless EngineWins
	// is also set on the result, the game goes on.
	Continue
	// UserWins means the user's move captured the opposing general;
	// the engine never gets to reply.
	UserWins
)

func (o Outcome) String() string {
	switch o {
	case Illegal:
		return "Illegal"
	case NotYourPiece:
		return "NotYourPiece"
	case Continue:
		return "Continue"
	case UserWins:
		return "UserWins"
	default:
		return "Unknown"
	}
}

// MoveResult is what ApplyUserMove returns. EngineMove/EngineWins/
// EngineDuration are only meaningful when Outcome is Continue.
type MoveResult struct {
	Outcome        Outcome
	EngineMove     xiangqi.Move
	EngineWins     bool
	EngineDuration time.Duration
}

// Session is one game in progress: a board, the side the user plays,
// and the shared read-only evaluator used to compute the engine's
// replies. Guarded by mu exactly as the teacher's Manager guards its
// games map — here there is one board per Session instead of one map
// entry per game, but the locking discipline (RLock for reads that
// don't mutate the board, Lock for everything that does) is the same.
type Session struct {
	mu   sync.RWMutex
	ID   string
	ev   *engine.Evaluator
	b    *xiangqi.Board
	user xiangqi.Side
}

// NewGame resets board and history and starts a fresh session for
// userSide. ev must already be loaded; NewGame does not call Load.
func NewGame(ev *engine.Evaluator, userSide xiangqi.Side) *Session {
	if userSide != xiangqi.Upper && userSide != xiangqi.Lower {
		panic("frontend: NewGame called with invalid side")
	}
	s := &Session{
		ID:   uuid.NewString(),
		ev:   ev,
		b:    xiangqi.NewBoard(),
		user: userSide,
	}
	log.Printf("frontend: new session %s, user plays %v", s.ID, userSide)
	return s
}

// engineSide is whichever side the user is not playing.
func (s *Session) engineSide() xiangqi.Side { return xiangqi.Opposite(s.user) }

// LegalUserMove reports whether m is in the user side's pseudo-move
// list. It takes a read lock only; it does not mutate the board.
func (s *Session) LegalUserMove(m xiangqi.Move) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.legalLocked(m)
}

func (s *Session) legalLocked(m xiangqi.Move) bool {
	for _, candidate := range xiangqi.PseudoMoves(s.b, s.user) {
		if candidate == m {
			return true
		}
	}
	return false
}

// ApplyUserMove validates m against the user side, applies it, checks
// for a user win, and — if the game continues — computes and applies
// the engine's reply before returning. The board is left exactly where
// the turn cycle ends: unchanged on Illegal/NotYourPiece, after the
// user's move on UserWins, after both the user's move and the engine's
// reply on Continue.
func (s *Session) ApplyUserMove(m xiangqi.Move) MoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	fromPiece := s.b.Get(m.From)
	if fromPiece == xiangqi.Empty || fromPiece == xiangqi.Sentinel || fromPiece.Side() != s.user {
		return MoveResult{Outcome: NotYourPiece}
	}
	if !s.legalLocked(m) {
		return MoveResult{Outcome: Illegal}
	}

	s.b.Apply(m)
	if xiangqi.IsWin(s.b, s.user) {
		return MoveResult{Outcome: UserWins}
	}

	start := time.Now()
	reply, _ := engine.BestMove(s.ev, s.b, s.engineSide(), engine.SearchDepth)
	elapsed := time.Since(start)
	s.b.Apply(reply)

	return MoveResult{
		Outcome:        Continue,
		EngineMove:     reply,
		EngineWins:     xiangqi.IsWin(s.b, s.engineSide()),
		EngineDuration: elapsed,
	}
}

// Hint runs best_move on behalf of the user side without mutating the
// session's board: the search runs against a clone.
func (s *Session) Hint() (xiangqi.Move, time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := s.b.Clone()
	start := time.Now()
	mv, _ := engine.BestMove(s.ev, clone, s.user, engine.SearchDepth)
	return mv, time.Since(start)
}

// UndoPair undoes the last two half-moves: the engine's reply, then
// the user's move that provoked it. With fewer than two half-moves in
// history it undoes as many as there are.
func (s *Session) UndoPair() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Undo()
	s.b.Undo()
}

// Reset reinstalls the opening position and clears history, keeping
// the session's id and user-side selection — an alias for NewGame that
// does not hand back a new Session.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Reset()
}

// Board returns the session's current board. Callers must not mutate
// it directly; it is exposed for rendering and for constructing move
// strings with FormatMoveString.
func (s *Session) Board() *xiangqi.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b
}

// UserSide reports which side the user plays in this session.
func (s *Session) UserSide() xiangqi.Side {
	return s.user
}
