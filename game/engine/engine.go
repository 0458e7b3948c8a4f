package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	GetRules() *Rules

	// Turn operations
	Roll(player string) (*TurnOutcome, error)
	PayJailFine(player string) (*TurnOutcome, error)
	UseJailCard(player string) (*TurnOutcome, error)

	// Purchase decision
	Buy(player string) (*PurchaseOutcome, error)
	Decline(player string, bids map[string]int) (*PurchaseOutcome, error)

	// Asset management
	Build(player string, position int) (*PropertyDetail, error)
	SellBuilding(player string, position int) (*PropertyDetail, error)
	Mortgage(player string, position int) (*PropertyDetail, error)
	Unmortgage(player string, position int) (*PropertyDetail, error)
	Trade(offer TradeOffer) ([]Event, error)

	// Views
	PlayerProperties(player string) ([]PropertyDetail, error)
	RentAt(position int, diceSum int) int
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state *GameState
	rules *Rules
	rng   *rand.Rand

	// roll produces one throw of two dice; replaced in tests
	roll func() (int, int)
}

// DefaultRules returns the classic parameter set.
func DefaultRules() *Rules {
	return &Rules{
		Name:                 "classic",
		Description:          "Standard rules",
		StartingCash:         1500,
		GoSalary:             200,
		JailFine:             50,
		MaxJailTurns:         3,
		Houses:               32,
		Hotels:               12,
		AuctionFloor:         10,
		UnmortgagePremiumPct: 10,
	}
}

// ValidateRules checks that a rule set is internally usable.
func ValidateRules(r *Rules) error {
	if r == nil {
		return fmt.Errorf("rules cannot be nil")
	}
	if r.Name == "" {
		return fmt.Errorf("rules name is required")
	}
	if r.StartingCash <= 0 {
		return fmt.Errorf("starting_cash must be positive, got %d", r.StartingCash)
	}
	if r.GoSalary < 0 {
		return fmt.Errorf("go_salary cannot be negative, got %d", r.GoSalary)
	}
	if r.JailFine <= 0 {
		return fmt.Errorf("jail_fine must be positive, got %d", r.JailFine)
	}
	if r.MaxJailTurns <= 0 {
		return fmt.Errorf("max_jail_turns must be positive, got %d", r.MaxJailTurns)
	}
	if r.Houses <= 0 || r.Hotels <= 0 {
		return fmt.Errorf("building pools must be positive, got %d houses %d hotels", r.Houses, r.Hotels)
	}
	if r.AuctionFloor <= 0 {
		return fmt.Errorf("auction_floor must be positive, got %d", r.AuctionFloor)
	}
	if r.UnmortgagePremiumPct < 0 {
		return fmt.Errorf("unmortgage_premium_pct cannot be negative, got %d", r.UnmortgagePremiumPct)
	}
	return nil
}

// NewEngine creates a new game engine for the named players. A nil rules
// argument selects DefaultRules. Player names must be unique and non-empty,
// and seat order follows the slice order.
func NewEngine(playerNames []string, rules *Rules) (*GameEngine, error) {
	return NewEngineWithSeed(playerNames, rules, time.Now().UnixNano())
}

// NewEngineWithSeed is like NewEngine but seeds the dice and deck shuffles
// deterministically, so the same seed replays the same game.
func NewEngineWithSeed(playerNames []string, rules *Rules, seed int64) (*GameEngine, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	if len(playerNames) < MinPlayers || len(playerNames) > MaxPlayers {
		return nil, fmt.Errorf("%w: need %d-%d players, got %d", ErrInvalidPlayerCount, MinPlayers, MaxPlayers, len(playerNames))
	}
	seen := make(map[string]bool, len(playerNames))
	for _, name := range playerNames {
		if name == "" {
			return nil, fmt.Errorf("%w: player name cannot be empty", ErrInvalidPlayerCount)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate player name %q", ErrInvalidPlayerCount, name)
		}
		seen[name] = true
	}

	rng := rand.New(rand.NewSource(seed))
	engine := &GameEngine{
		rules: rules,
		rng:   rng,
	}
	engine.roll = func() (int, int) {
		return rng.Intn(6) + 1, rng.Intn(6) + 1
	}
	engine.state = initGameState(playerNames, rules, rng)
	return engine, nil
}

func initGameState(playerNames []string, rules *Rules, rng *rand.Rand) *GameState {
	players := make([]*Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, &Player{
			Name:       name,
			Position:   GoPosition,
			Cash:       rules.StartingCash,
			Properties: []int{},
		})
	}

	titles := make(map[int]*Title, BoardSize)
	for _, s := range board {
		if s.Ownable() {
			titles[s.Position] = &Title{}
		}
	}

	chance := newChanceDeck()
	chest := newCommunityChestDeck()
	chance.Shuffle(rng)
	chest.Shuffle(rng)

	return &GameState{
		Players:         players,
		Current:         0,
		Phase:           PhaseAwaitingRoll,
		PendingPurchase: -1,
		Titles:          titles,
		HousePool:       rules.Houses,
		HotelPool:       rules.Hotels,
		Chance:          chance,
		CommunityChest:  chest,
		RulesName:       rules.Name,
	}
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// GetRules returns the rule set the game was created with
func (e *GameEngine) GetRules() *Rules {
	return e.rules
}

// playerByName finds any seat, bankrupt or not.
func (e *GameEngine) playerByName(name string) (*Player, error) {
	for _, p := range e.state.Players {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
}

// activePlayer finds a seat that is still in the game.
func (e *GameEngine) activePlayer(name string) (*Player, error) {
	p, err := e.playerByName(name)
	if err != nil {
		return nil, err
	}
	if p.Bankrupt {
		return nil, fmt.Errorf("%w: %s is bankrupt", ErrInvalidPhase, name)
	}
	return p, nil
}

// requireTurn validates that name is the current player and the game is
// in the expected phase.
func (e *GameEngine) requireTurn(name string, phase Phase) (*Player, error) {
	if e.state.GameOver {
		return nil, fmt.Errorf("%w: winner is %s", ErrGameOver, e.state.Winner)
	}
	p, err := e.activePlayer(name)
	if err != nil {
		return nil, err
	}
	if e.state.Players[e.state.Current] != p {
		return nil, fmt.Errorf("%w: it is %s's turn", ErrNotCurrentPlayer, e.state.Players[e.state.Current].Name)
	}
	if e.state.Phase != phase {
		return nil, fmt.Errorf("%w: phase is %s", ErrInvalidPhase, e.state.Phase)
	}
	return p, nil
}

func (e *GameEngine) titleAt(position int) (Space, *Title, error) {
	if position < 0 || position >= BoardSize {
		return Space{}, nil, fmt.Errorf("%w: position %d out of range", ErrPropertyNotOwnable, position)
	}
	space := board[position]
	title, ok := e.state.Titles[position]
	if !ok {
		return Space{}, nil, fmt.Errorf("%w: %s", ErrPropertyNotOwnable, space.Name)
	}
	return space, title, nil
}

// ownsFullGroup reports whether owner holds every street of the group
// with none mortgaged.
func (e *GameEngine) ownsFullGroup(owner string, color ColorGroup) bool {
	positions := GroupPositions(color)
	for _, pos := range positions {
		t := e.state.Titles[pos]
		if t.Owner != owner || t.Mortgaged {
			return false
		}
	}
	return len(positions) > 0
}

func (e *GameEngine) countOwnedOfKind(owner string, kind SpaceKind) int {
	n := 0
	for _, pos := range kindPositions(kind) {
		if e.state.Titles[pos].Owner == owner {
			n++
		}
	}
	return n
}

func addProperty(p *Player, position int) {
	p.Properties = append(p.Properties, position)
	sort.Ints(p.Properties)
}

func removeProperty(p *Player, position int) {
	for i, pos := range p.Properties {
		if pos == position {
			p.Properties = append(p.Properties[:i], p.Properties[i+1:]...)
			return
		}
	}
}

// deckByName resolves the deck recorded on a held jail-free card.
func (e *GameEngine) deckByName(name string) *Deck {
	if name == e.state.CommunityChest.Name {
		return e.state.CommunityChest
	}
	return e.state.Chance
}

// takeJailCard removes one held jail-free card and returns the deck it
// came from.
func (e *GameEngine) takeJailCard(p *Player) *Deck {
	p.JailCards--
	name := ""
	if n := len(p.JailDecks); n > 0 {
		name = p.JailDecks[n-1]
		p.JailDecks = p.JailDecks[:n-1]
	}
	return e.deckByName(name)
}

func moveJailCards(from, to *Player, n int) {
	from.JailCards -= n
	to.JailCards += n
	for i := 0; i < n && len(from.JailDecks) > 0; i++ {
		last := len(from.JailDecks) - 1
		to.JailDecks = append(to.JailDecks, from.JailDecks[last])
		from.JailDecks = from.JailDecks[:last]
	}
}

// assertPools panics when building pool accounting has drifted. Buildings
// on the board plus bank stock must always equal the configured totals.
func (e *GameEngine) assertPools() {
	housesOut, hotelsOut := 0, 0
	for _, t := range e.state.Titles {
		if t.Buildings == HotelLevel {
			hotelsOut++
		} else {
			housesOut += t.Buildings
		}
	}
	if housesOut+e.state.HousePool != e.rules.Houses {
		panic(fmt.Sprintf("invariant: house pool drift, %d out + %d banked != %d", housesOut, e.state.HousePool, e.rules.Houses))
	}
	if hotelsOut+e.state.HotelPool != e.rules.Hotels {
		panic(fmt.Sprintf("invariant: hotel pool drift, %d out + %d banked != %d", hotelsOut, e.state.HotelPool, e.rules.Hotels))
	}
}
