package service

import (
	"time"

	"github.com/wricardo/mcp-training/monopoly/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	RulesName      string            `json:"rules_name"`
	Players        []string          `json:"players"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}

// GameEvent represents something noteworthy that happened during an operation
type GameEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// TurnResult contains the result of a roll, jail fine or jail card play.
// CashDelta and PositionDelta are the net change for the acting player
// over the whole resolution, cards and rent included.
type TurnResult struct {
	Player        string            `json:"player"`
	Dice          [2]int            `json:"dice"`
	Doubles       bool              `json:"doubles"`
	ExtraTurn     bool              `json:"extra_turn"`
	LandedOn      *engine.Space     `json:"landed_on,omitempty"`
	PassedGo      bool              `json:"passed_go"`
	Cash          int               `json:"cash"`
	CashDelta     int               `json:"cash_delta"`
	PositionDelta int               `json:"position_delta"`
	Message       string            `json:"message"`
	Events        []GameEvent       `json:"events,omitempty"`
	GameState     *engine.GameState `json:"game_state"`
}

// PurchaseResult contains the result of a buy or decline-and-auction
type PurchaseResult struct {
	Position  int               `json:"position"`
	Property  string            `json:"property"`
	Buyer     string            `json:"buyer,omitempty"`
	Price     int               `json:"price"`
	Sold      bool              `json:"sold"`
	ExtraTurn bool              `json:"extra_turn"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
	GameState *engine.GameState `json:"game_state"`
}

// PropertyResult contains the deed view after a build, sell or mortgage move
type PropertyResult struct {
	Player    string                `json:"player"`
	Property  engine.PropertyDetail `json:"property"`
	Cash      int                   `json:"cash"`
	GameState *engine.GameState     `json:"game_state"`
}

// TradeResult contains the result of an executed trade
type TradeResult struct {
	OfferID   string            `json:"offer_id"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	Events    []GameEvent       `json:"events"`
	GameState *engine.GameState `json:"game_state"`
}

// PlayerPropertiesResult lists a player's holdings
type PlayerPropertiesResult struct {
	Player     string                  `json:"player"`
	Cash       int                     `json:"cash"`
	JailCards  int                     `json:"jail_cards"`
	Properties []engine.PropertyDetail `json:"properties"`
}

// RulesInfo describes an available rule set
type RulesInfo struct {
	Filename     string `json:"filename"`
	RulesID      string `json:"rules_id"` // identifier to use for session creation
	Name         string `json:"name"`
	Description  string `json:"description"`
	StartingCash int    `json:"starting_cash"`
	GoSalary     int    `json:"go_salary"`
}
