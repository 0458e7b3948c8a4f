package service

import (
	"context"
	"time"

	"github.com/wricardo/mcp-training/monopoly/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, playerNames []string, rulesName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Turn Operations
	Roll(ctx context.Context, sessionID, player string) (*TurnResult, error)
	PayJailFine(ctx context.Context, sessionID, player string) (*TurnResult, error)
	UseJailCard(ctx context.Context, sessionID, player string) (*TurnResult, error)

	// Purchase Decision
	BuyProperty(ctx context.Context, sessionID, player string) (*PurchaseResult, error)
	DeclineProperty(ctx context.Context, sessionID, player string, bids map[string]int) (*PurchaseResult, error)

	// Asset Management
	BuildHouse(ctx context.Context, sessionID, player string, position int) (*PropertyResult, error)
	SellBuilding(ctx context.Context, sessionID, player string, position int) (*PropertyResult, error)
	MortgageProperty(ctx context.Context, sessionID, player string, position int) (*PropertyResult, error)
	UnmortgageProperty(ctx context.Context, sessionID, player string, position int) (*PropertyResult, error)
	Trade(ctx context.Context, sessionID string, offer engine.TradeOffer) (*TradeResult, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetPlayerProperties(ctx context.Context, sessionID, player string) (*PlayerPropertiesResult, error)
	BoardCatalog(ctx context.Context) []engine.Space

	// Rules
	ListRules(ctx context.Context) ([]*RulesInfo, error)
	LoadRules(ctx context.Context, rulesName string) (*engine.Rules, error)
	SaveRules(ctx context.Context, rulesName string, rules *engine.Rules) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, playerNames []string, rules *engine.Rules) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// RulesManager handles rule set loading
type RulesManager interface {
	LoadRules(name string) (*engine.Rules, error)
	ListRules() ([]*RulesInfo, error)
	GetDefault() *engine.Rules
	SaveRules(name string, rules *engine.Rules) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Rules          *engine.Rules
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
