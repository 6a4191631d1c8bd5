package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"kingsearch/internal/board"
	"kingsearch/internal/engine"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrIllegalMove  = errors.New("illegal move")
	ErrWrongTurn    = errors.New("not this side's turn")
	ErrGameOver     = errors.New("game is over")
	ErrGameChanged  = errors.New("game changed during search")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	// afterSearch 在搜索结束、重新加锁之前调用，只给测试用
	afterSearch func()
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 以 start 为初始局面开局，toMove 先走
func (m *Manager) NewGame(start board.Position, toMove, human board.Side) GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       start,
		ToMove:    toMove,
		Human:     human,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.Status = statusOf(&g.Pos, g.ToMove)
	m.games[g.ID] = g
	return g.Snapshot()
}

func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, ErrGameNotFound
	}
	return g.Snapshot(), nil
}

// Play 由人类一方走一步
func (m *Manager) Play(id string, mv board.Move) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, ErrGameNotFound
	}
	if g.Status != StatusOngoing {
		return GameState{}, ErrGameOver
	}
	if g.ToMove != g.Human {
		return GameState{}, ErrWrongTurn
	}
	if !board.IsLegal(&g.Pos, g.ToMove, mv) {
		return GameState{}, fmt.Errorf("%w: %+v", ErrIllegalMove, mv)
	}
	g.apply(HistoryEntry{Move: mv, Side: g.ToMove})
	return g.Snapshot(), nil
}

// EngineMove 让引擎替轮到的一方走一步。搜索在锁外进行，期间其它对局不受影响；
// 搜索结束后若该局已被别的请求改动，返回 ErrGameChanged，不落子。
func (m *Manager) EngineMove(id string, eng *engine.Engine, depth int) (GameState, engine.SearchResult, error) {
	m.mu.RLock()
	g, ok := m.games[id]
	if !ok {
		m.mu.RUnlock()
		return GameState{}, engine.SearchResult{}, ErrGameNotFound
	}
	if g.Status != StatusOngoing {
		m.mu.RUnlock()
		return GameState{}, engine.SearchResult{}, ErrGameOver
	}
	if g.ToMove == g.Human {
		m.mu.RUnlock()
		return GameState{}, engine.SearchResult{}, ErrWrongTurn
	}
	pos, toMove, ply := g.Pos, g.ToMove, len(g.History)
	m.mu.RUnlock()

	res := eng.Search(&pos, toMove, depth)
	if m.afterSearch != nil {
		m.afterSearch()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if g.Status != StatusOngoing || g.ToMove != toMove || len(g.History) != ply {
		return GameState{}, res, ErrGameChanged
	}
	if res.BestMove.IsNone() {
		g.Status = StatusNoMoves
		g.UpdatedAt = time.Now()
		return g.Snapshot(), res, nil
	}
	g.apply(HistoryEntry{
		Move:  res.BestMove,
		Side:  toMove,
		IsAI:  true,
		Score: res.Score,
		Nodes: res.Nodes,
	})
	return g.Snapshot(), res, nil
}

func (g *GameState) apply(h HistoryEntry) {
	g.Pos = g.Pos.Apply(h.Move)
	g.ToMove = g.ToMove.Opposite()
	g.History = append(g.History, h)
	g.Status = statusOf(&g.Pos, g.ToMove)
	g.UpdatedAt = time.Now()
}
