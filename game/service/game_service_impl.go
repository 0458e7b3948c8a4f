package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wricardo/mcp-training/monopoly/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	rules    RulesManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, rules RulesManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		rules:    rules,
	}
}

// CreateSession creates a new game session for the named players
func (s *gameServiceImpl) CreateSession(ctx context.Context, playerNames []string, rulesName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rules *engine.Rules
	var err error
	if rulesName != "" {
		rules, err = s.rules.LoadRules(rulesName)
		if err != nil {
			if available, listErr := s.rules.ListRules(); listErr == nil && len(available) > 0 {
				var ids []string
				for _, r := range available {
					ids = append(ids, r.RulesID)
				}
				return nil, fmt.Errorf("rules '%s' not found. Available rule sets: %v", rulesName, ids)
			}
			return nil, fmt.Errorf("failed to load rules %s: %w", rulesName, err)
		}
	} else {
		rules = s.rules.GetDefault()
	}

	// Let the session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", playerNames, rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Roll throws the dice for the current player
func (s *gameServiceImpl) Roll(ctx context.Context, sessionID, player string) (*TurnResult, error) {
	return s.turnOp(sessionID, player, func(eng *engine.GameEngine) (*engine.TurnOutcome, error) {
		return eng.Roll(player)
	})
}

// PayJailFine pays the jail fine before rolling
func (s *gameServiceImpl) PayJailFine(ctx context.Context, sessionID, player string) (*TurnResult, error) {
	return s.turnOp(sessionID, player, func(eng *engine.GameEngine) (*engine.TurnOutcome, error) {
		return eng.PayJailFine(player)
	})
}

// UseJailCard plays a Get Out of Jail Free card
func (s *gameServiceImpl) UseJailCard(ctx context.Context, sessionID, player string) (*TurnResult, error) {
	return s.turnOp(sessionID, player, func(eng *engine.GameEngine) (*engine.TurnOutcome, error) {
		return eng.UseJailCard(player)
	})
}

func (s *gameServiceImpl) turnOp(sessionID, player string, op func(*engine.GameEngine) (*engine.TurnOutcome, error)) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	cashBefore, posBefore := playerSnapshot(sess.Engine.GetState(), player)

	outcome, err := op(sess.Engine)
	if err != nil {
		return nil, err
	}

	result := &TurnResult{
		Player:    outcome.Player,
		Dice:      outcome.Dice,
		Doubles:   outcome.Doubles,
		ExtraTurn: outcome.ExtraTurn,
		PassedGo:  outcome.PassedGo,
		Cash:      outcome.Cash,
		CashDelta: outcome.Cash - cashBefore,
		Events:    toGameEvents(outcome.Events),
		GameState: sess.Engine.GetState(),
	}
	_, posAfter := playerSnapshot(result.GameState, player)
	result.PositionDelta = posAfter - posBefore
	if outcome.LandedOn >= 0 {
		space := engine.SpaceAt(outcome.LandedOn)
		result.LandedOn = &space
	}
	result.Message = summarize(outcome.Events)
	return result, nil
}

// BuyProperty completes the pending purchase decision
func (s *gameServiceImpl) BuyProperty(ctx context.Context, sessionID, player string) (*PurchaseResult, error) {
	return s.purchaseOp(sessionID, func(eng *engine.GameEngine) (*engine.PurchaseOutcome, error) {
		return eng.Buy(player)
	})
}

// DeclineProperty declines the purchase and auctions the deed
func (s *gameServiceImpl) DeclineProperty(ctx context.Context, sessionID, player string, bids map[string]int) (*PurchaseResult, error) {
	return s.purchaseOp(sessionID, func(eng *engine.GameEngine) (*engine.PurchaseOutcome, error) {
		return eng.Decline(player, bids)
	})
}

func (s *gameServiceImpl) purchaseOp(sessionID string, op func(*engine.GameEngine) (*engine.PurchaseOutcome, error)) (*PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	outcome, err := op(sess.Engine)
	if err != nil {
		return nil, err
	}

	return &PurchaseResult{
		Position:  outcome.Position,
		Property:  outcome.Property,
		Buyer:     outcome.Buyer,
		Price:     outcome.Price,
		Sold:      outcome.Sold,
		ExtraTurn: outcome.ExtraTurn,
		Message:   summarize(outcome.Events),
		Events:    toGameEvents(outcome.Events),
		GameState: sess.Engine.GetState(),
	}, nil
}

// BuildHouse adds one building level to a street
func (s *gameServiceImpl) BuildHouse(ctx context.Context, sessionID, player string, position int) (*PropertyResult, error) {
	return s.propertyOp(sessionID, player, func(eng *engine.GameEngine) (*engine.PropertyDetail, error) {
		return eng.Build(player, position)
	})
}

// SellBuilding removes one building level from a street
func (s *gameServiceImpl) SellBuilding(ctx context.Context, sessionID, player string, position int) (*PropertyResult, error) {
	return s.propertyOp(sessionID, player, func(eng *engine.GameEngine) (*engine.PropertyDetail, error) {
		return eng.SellBuilding(player, position)
	})
}

// MortgageProperty pledges a deed to the bank
func (s *gameServiceImpl) MortgageProperty(ctx context.Context, sessionID, player string, position int) (*PropertyResult, error) {
	return s.propertyOp(sessionID, player, func(eng *engine.GameEngine) (*engine.PropertyDetail, error) {
		return eng.Mortgage(player, position)
	})
}

// UnmortgageProperty lifts a mortgage
func (s *gameServiceImpl) UnmortgageProperty(ctx context.Context, sessionID, player string, position int) (*PropertyResult, error) {
	return s.propertyOp(sessionID, player, func(eng *engine.GameEngine) (*engine.PropertyDetail, error) {
		return eng.Unmortgage(player, position)
	})
}

func (s *gameServiceImpl) propertyOp(sessionID, player string, op func(*engine.GameEngine) (*engine.PropertyDetail, error)) (*PropertyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	detail, err := op(sess.Engine)
	if err != nil {
		return nil, err
	}

	cash := 0
	for _, p := range sess.Engine.GetState().Players {
		if p.Name == player {
			cash = p.Cash
		}
	}

	return &PropertyResult{
		Player:    player,
		Property:  *detail,
		Cash:      cash,
		GameState: sess.Engine.GetState(),
	}, nil
}

// Trade executes an atomic exchange between two players
func (s *gameServiceImpl) Trade(ctx context.Context, sessionID string, offer engine.TradeOffer) (*TradeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	events, err := sess.Engine.Trade(offer)
	if err != nil {
		return nil, err
	}

	return &TradeResult{
		OfferID:   offer.ID,
		From:      offer.From,
		To:        offer.To,
		Events:    toGameEvents(events),
		GameState: sess.Engine.GetState(),
	}, nil
}

// GetGameState returns the full table state of a session
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return sess.Engine.GetState(), nil
}

// GetPlayerProperties returns the deeds a player holds
func (s *gameServiceImpl) GetPlayerProperties(ctx context.Context, sessionID, player string) (*PlayerPropertiesResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	details, err := sess.Engine.PlayerProperties(player)
	if err != nil {
		return nil, err
	}

	result := &PlayerPropertiesResult{
		Player:     player,
		Properties: details,
	}
	for _, p := range sess.Engine.GetState().Players {
		if p.Name == player {
			result.Cash = p.Cash
			result.JailCards = p.JailCards
		}
	}
	return result, nil
}

// BoardCatalog returns the immutable 40-space board
func (s *gameServiceImpl) BoardCatalog(ctx context.Context) []engine.Space {
	return engine.Board()
}

// ListRules returns the available rule sets
func (s *gameServiceImpl) ListRules(ctx context.Context) ([]*RulesInfo, error) {
	return s.rules.ListRules()
}

// LoadRules loads one rule set by name
func (s *gameServiceImpl) LoadRules(ctx context.Context, rulesName string) (*engine.Rules, error) {
	rules, err := s.rules.LoadRules(rulesName)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules %s: %w", rulesName, err)
	}
	return rules, nil
}

// SaveRules persists a rule set
func (s *gameServiceImpl) SaveRules(ctx context.Context, rulesName string, rules *engine.Rules) error {
	if rules == nil {
		return errors.New("rules cannot be nil")
	}
	return s.rules.SaveRules(rulesName, rules)
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	state := sess.Engine.GetState()
	players := make([]string, 0, len(state.Players))
	for _, p := range state.Players {
		players = append(players, p.Name)
	}
	return &SessionInfo{
		ID:             sess.ID,
		RulesName:      sess.Rules.Name,
		Players:        players,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      state,
	}
}

// playerSnapshot reads a player's cash and position off a state. Used to
// compute the net change a turn operation produced for the acting player.
func playerSnapshot(state *engine.GameState, name string) (cash, position int) {
	for _, p := range state.Players {
		if p.Name == name {
			return p.Cash, p.Position
		}
	}
	return 0, 0
}

func toGameEvents(events []engine.Event) []GameEvent {
	now := time.Now()
	result := make([]GameEvent, 0, len(events))
	for _, ev := range events {
		result = append(result, GameEvent{Type: ev.Type, Message: ev.Message, Timestamp: now})
	}
	return result
}

// summarize joins event messages into a single human-readable line.
func summarize(events []engine.Event) string {
	if len(events) == 0 {
		return ""
	}
	msg := events[0].Message
	for _, ev := range events[1:] {
		msg += "; " + ev.Message
	}
	return msg
}
