package engine

import "fmt"

// Buy completes the pending purchase decision: the current player buys the
// deed they are standing on at list price.
func (e *GameEngine) Buy(player string) (*PurchaseOutcome, error) {
	p, err := e.requireTurn(player, PhaseAwaitingPurchase)
	if err != nil {
		return nil, err
	}
	position := e.state.PendingPurchase
	space, title, err := e.titleAt(position)
	if err != nil {
		return nil, err
	}
	if title.Owner != "" {
		return nil, fmt.Errorf("%w: %s belongs to %s", ErrPropertyAlreadyOwned, space.Name, title.Owner)
	}
	if p.Cash < space.Price {
		return nil, fmt.Errorf("%w: %s costs $%d, %s has $%d", ErrInsufficientFunds, space.Name, space.Price, player, p.Cash)
	}

	p.Cash -= space.Price
	title.Owner = p.Name
	addProperty(p, position)

	out := &PurchaseOutcome{
		Position: position,
		Property: space.Name,
		Buyer:    p.Name,
		Price:    space.Price,
		Sold:     true,
	}
	out.Events = append(out.Events, Event{Type: "purchase", Message: fmt.Sprintf("%s bought %s for $%d", p.Name, space.Name, space.Price)})
	e.settlePurchaseDecision(out)
	return out, nil
}

// Decline refuses the pending purchase and runs a sealed-bid auction over
// the deed. Every solvent player, the decliner included, may submit one
// bid. The highest bid at or above the auction floor wins; ties go to the
// bidder earliest in turn order. With no valid bids the deed stays with
// the bank.
func (e *GameEngine) Decline(player string, bids map[string]int) (*PurchaseOutcome, error) {
	_, err := e.requireTurn(player, PhaseAwaitingPurchase)
	if err != nil {
		return nil, err
	}
	position := e.state.PendingPurchase
	space, title, err := e.titleAt(position)
	if err != nil {
		return nil, err
	}

	out := &PurchaseOutcome{Position: position, Property: space.Name}
	out.Events = append(out.Events, Event{Type: "auction", Message: fmt.Sprintf("%s declined %s, the deed goes to auction", player, space.Name)})

	var winner *Player
	highest := 0
	n := len(e.state.Players)
	for i := 0; i < n; i++ {
		bidder := e.state.Players[(e.state.Current+i)%n]
		bid, ok := bids[bidder.Name]
		if !ok || bidder.Bankrupt {
			continue
		}
		if bid < e.rules.AuctionFloor || bid > bidder.Cash {
			out.Events = append(out.Events, Event{Type: "auction", Message: fmt.Sprintf("bid of $%d by %s is not valid", bid, bidder.Name)})
			continue
		}
		if bid > highest {
			highest = bid
			winner = bidder
		}
	}

	if winner != nil {
		winner.Cash -= highest
		title.Owner = winner.Name
		addProperty(winner, position)
		out.Buyer = winner.Name
		out.Price = highest
		out.Sold = true
		out.Events = append(out.Events, Event{Type: "auction", Message: fmt.Sprintf("%s won the auction for %s at $%d", winner.Name, space.Name, highest)})
	} else {
		out.Events = append(out.Events, Event{Type: "auction", Message: fmt.Sprintf("no valid bids, %s stays with the bank", space.Name)})
	}

	e.settlePurchaseDecision(out)
	return out, nil
}

// settlePurchaseDecision resumes the turn after a buy or auction: the
// roller keeps a pending doubles throw, otherwise the turn passes.
func (e *GameEngine) settlePurchaseDecision(out *PurchaseOutcome) {
	e.state.PendingPurchase = -1
	e.state.Phase = PhaseAwaitingRoll
	if e.state.ExtraRoll {
		e.state.ExtraRoll = false
		out.ExtraTurn = true
		return
	}
	e.endTurn()
}

// Build adds one building level to a street the player owns. Requires the
// full color group unmortgaged, even building across the group, bank
// stock, and cash for the house cost (four times that for the hotel
// conversion, which returns the four houses to the pool).
func (e *GameEngine) Build(player string, position int) (*PropertyDetail, error) {
	p, space, title, err := e.buildableDeed(player, position)
	if err != nil {
		return nil, err
	}
	if !e.ownsFullGroup(p.Name, space.Color) {
		return nil, fmt.Errorf("%w: %s does not hold the full %s group unmortgaged", ErrBuildingRule, player, space.Color)
	}
	if title.Buildings >= MaxBuildings {
		return nil, fmt.Errorf("%w: %s already carries a hotel", ErrBuildingRule, space.Name)
	}
	if title.Buildings > e.minGroupBuildings(space.Color) {
		return nil, fmt.Errorf("%w: build evenly across the %s group", ErrBuildingRule, space.Color)
	}

	cost := space.HouseCost
	toHotel := title.Buildings == MaxBuildings-1
	if toHotel {
		cost = space.HouseCost * 4
		if e.state.HotelPool == 0 {
			return nil, fmt.Errorf("%w: no hotels left in the bank", ErrBuildingRule)
		}
	} else if e.state.HousePool == 0 {
		return nil, fmt.Errorf("%w: no houses left in the bank", ErrBuildingRule)
	}
	if p.Cash < cost {
		return nil, fmt.Errorf("%w: building costs $%d, %s has $%d", ErrInsufficientFunds, cost, player, p.Cash)
	}

	p.Cash -= cost
	title.Buildings++
	if toHotel {
		e.state.HotelPool--
		e.state.HousePool += MaxBuildings - 1
	} else {
		e.state.HousePool--
	}
	e.assertPools()

	detail := e.propertyDetail(position, e.state.LastDice[0]+e.state.LastDice[1])
	return &detail, nil
}

// SellBuilding removes one building level, refunding half its cost.
// Selling must keep the group even, and breaking a hotel back to four
// houses needs four houses in the bank.
func (e *GameEngine) SellBuilding(player string, position int) (*PropertyDetail, error) {
	p, space, title, err := e.buildableDeed(player, position)
	if err != nil {
		return nil, err
	}
	if title.Buildings == 0 {
		return nil, fmt.Errorf("%w: %s carries no buildings", ErrBuildingRule, space.Name)
	}
	if title.Buildings < e.maxGroupBuildings(space.Color) {
		return nil, fmt.Errorf("%w: sell evenly across the %s group", ErrBuildingRule, space.Color)
	}

	fromHotel := title.Buildings == HotelLevel
	if fromHotel {
		if e.state.HousePool < MaxBuildings-1 {
			return nil, fmt.Errorf("%w: breaking a hotel needs %d houses in the bank", ErrBuildingRule, MaxBuildings-1)
		}
		p.Cash += space.HouseCost * 4 / 2
		title.Buildings--
		e.state.HotelPool++
		e.state.HousePool -= MaxBuildings - 1
	} else {
		p.Cash += space.HouseCost / 2
		title.Buildings--
		e.state.HousePool++
	}
	e.assertPools()

	detail := e.propertyDetail(position, e.state.LastDice[0]+e.state.LastDice[1])
	return &detail, nil
}

func (e *GameEngine) buildableDeed(player string, position int) (*Player, Space, *Title, error) {
	p, err := e.managingPlayer(player)
	if err != nil {
		return nil, Space{}, nil, err
	}
	space, title, err := e.titleAt(position)
	if err != nil {
		return nil, Space{}, nil, err
	}
	if space.Kind != SpaceProperty {
		return nil, Space{}, nil, fmt.Errorf("%w: only street properties carry buildings", ErrBuildingRule)
	}
	if title.Owner != p.Name {
		return nil, Space{}, nil, fmt.Errorf("%w: %s does not own %s", ErrBuildingRule, player, space.Name)
	}
	return p, space, title, nil
}

// managingPlayer gates asset management operations: any solvent seat may
// manage its holdings while the game runs.
func (e *GameEngine) managingPlayer(player string) (*Player, error) {
	if e.state.GameOver {
		return nil, fmt.Errorf("%w: winner is %s", ErrGameOver, e.state.Winner)
	}
	return e.activePlayer(player)
}

func (e *GameEngine) minGroupBuildings(color ColorGroup) int {
	min := MaxBuildings
	for _, pos := range GroupPositions(color) {
		if b := e.state.Titles[pos].Buildings; b < min {
			min = b
		}
	}
	return min
}

func (e *GameEngine) maxGroupBuildings(color ColorGroup) int {
	max := 0
	for _, pos := range GroupPositions(color) {
		if b := e.state.Titles[pos].Buildings; b > max {
			max = b
		}
	}
	return max
}

// Mortgage pledges an unmortgaged, building-free deed to the bank for
// half its list price.
func (e *GameEngine) Mortgage(player string, position int) (*PropertyDetail, error) {
	p, err := e.managingPlayer(player)
	if err != nil {
		return nil, err
	}
	space, title, err := e.titleAt(position)
	if err != nil {
		return nil, err
	}
	if title.Owner != p.Name {
		return nil, fmt.Errorf("%w: %s does not own %s", ErrBuildingRule, player, space.Name)
	}
	if title.Mortgaged {
		return nil, fmt.Errorf("%w: %s is already mortgaged", ErrBuildingRule, space.Name)
	}
	if title.Buildings > 0 {
		return nil, fmt.Errorf("%w: sell the buildings on %s first", ErrBuildingRule, space.Name)
	}

	title.Mortgaged = true
	p.Cash += space.MortgageValue()

	detail := e.propertyDetail(position, e.state.LastDice[0]+e.state.LastDice[1])
	return &detail, nil
}

// Unmortgage lifts a mortgage for the principal plus the configured
// premium percentage.
func (e *GameEngine) Unmortgage(player string, position int) (*PropertyDetail, error) {
	p, err := e.managingPlayer(player)
	if err != nil {
		return nil, err
	}
	space, title, err := e.titleAt(position)
	if err != nil {
		return nil, err
	}
	if title.Owner != p.Name {
		return nil, fmt.Errorf("%w: %s does not own %s", ErrBuildingRule, player, space.Name)
	}
	if !title.Mortgaged {
		return nil, fmt.Errorf("%w: %s is not mortgaged", ErrBuildingRule, space.Name)
	}

	cost := e.unmortgageCost(space)
	if p.Cash < cost {
		return nil, fmt.Errorf("%w: lifting the mortgage costs $%d, %s has $%d", ErrInsufficientFunds, cost, player, p.Cash)
	}

	p.Cash -= cost
	title.Mortgaged = false

	detail := e.propertyDetail(position, e.state.LastDice[0]+e.state.LastDice[1])
	return &detail, nil
}

func (e *GameEngine) unmortgageCost(space Space) int {
	principal := space.MortgageValue()
	return principal + principal*e.rules.UnmortgagePremiumPct/100
}

// Trade executes an atomic two-sided exchange of deeds, cash and jail
// cards between two solvent players. Either side may be empty but not
// both. Traded deeds must be building-free; mortgaged deeds transfer
// mortgaged.
func (e *GameEngine) Trade(offer TradeOffer) ([]Event, error) {
	if e.state.GameOver {
		return nil, fmt.Errorf("%w: winner is %s", ErrGameOver, e.state.Winner)
	}
	if offer.From == offer.To {
		return nil, fmt.Errorf("%w: cannot trade with yourself", ErrInvalidTrade)
	}
	from, err := e.activePlayer(offer.From)
	if err != nil {
		return nil, err
	}
	to, err := e.activePlayer(offer.To)
	if err != nil {
		return nil, err
	}
	if isEmptyOffer(offer) {
		return nil, fmt.Errorf("%w: offer exchanges nothing", ErrInvalidTrade)
	}
	if offer.GiveCash < 0 || offer.ReceiveCash < 0 || offer.GiveJailCards < 0 || offer.ReceiveJailCards < 0 {
		return nil, fmt.Errorf("%w: amounts cannot be negative", ErrInvalidTrade)
	}
	if from.Cash < offer.GiveCash {
		return nil, fmt.Errorf("%w: %s cannot cover $%d", ErrInsufficientFunds, from.Name, offer.GiveCash)
	}
	if to.Cash < offer.ReceiveCash {
		return nil, fmt.Errorf("%w: %s cannot cover $%d", ErrInsufficientFunds, to.Name, offer.ReceiveCash)
	}
	if from.JailCards < offer.GiveJailCards {
		return nil, fmt.Errorf("%w: %s holds %d jail cards", ErrInvalidTrade, from.Name, from.JailCards)
	}
	if to.JailCards < offer.ReceiveJailCards {
		return nil, fmt.Errorf("%w: %s holds %d jail cards", ErrInvalidTrade, to.Name, to.JailCards)
	}
	if err := e.checkTradedDeeds(from, offer.GiveProperties); err != nil {
		return nil, err
	}
	if err := e.checkTradedDeeds(to, offer.ReceiveProperties); err != nil {
		return nil, err
	}

	// All checks passed, apply both sides.
	from.Cash += offer.ReceiveCash - offer.GiveCash
	to.Cash += offer.GiveCash - offer.ReceiveCash
	moveJailCards(from, to, offer.GiveJailCards)
	moveJailCards(to, from, offer.ReceiveJailCards)
	for _, pos := range offer.GiveProperties {
		e.transferDeed(pos, from, to)
	}
	for _, pos := range offer.ReceiveProperties {
		e.transferDeed(pos, to, from)
	}

	events := []Event{{Type: "trade", Message: fmt.Sprintf("%s and %s completed a trade", from.Name, to.Name)}}
	for _, pos := range offer.GiveProperties {
		events = append(events, Event{Type: "trade", Message: fmt.Sprintf("%s transferred to %s", board[pos].Name, to.Name)})
	}
	for _, pos := range offer.ReceiveProperties {
		events = append(events, Event{Type: "trade", Message: fmt.Sprintf("%s transferred to %s", board[pos].Name, from.Name)})
	}
	if offer.GiveCash > 0 {
		events = append(events, Event{Type: "trade", Message: fmt.Sprintf("%s paid $%d to %s", from.Name, offer.GiveCash, to.Name)})
	}
	if offer.ReceiveCash > 0 {
		events = append(events, Event{Type: "trade", Message: fmt.Sprintf("%s paid $%d to %s", to.Name, offer.ReceiveCash, from.Name)})
	}
	return events, nil
}

func isEmptyOffer(o TradeOffer) bool {
	return len(o.GiveProperties) == 0 && len(o.ReceiveProperties) == 0 &&
		o.GiveCash == 0 && o.ReceiveCash == 0 &&
		o.GiveJailCards == 0 && o.ReceiveJailCards == 0
}

func (e *GameEngine) checkTradedDeeds(owner *Player, positions []int) error {
	seen := make(map[int]bool, len(positions))
	for _, pos := range positions {
		if seen[pos] {
			return fmt.Errorf("%w: position %d listed twice", ErrInvalidTrade, pos)
		}
		seen[pos] = true
		space, title, err := e.titleAt(pos)
		if err != nil {
			return err
		}
		if title.Owner != owner.Name {
			return fmt.Errorf("%w: %s does not own %s", ErrInvalidTrade, owner.Name, space.Name)
		}
		if title.Buildings > 0 {
			return fmt.Errorf("%w: %s carries buildings, sell them first", ErrInvalidTrade, space.Name)
		}
	}
	return nil
}

func (e *GameEngine) transferDeed(position int, from, to *Player) {
	title := e.state.Titles[position]
	title.Owner = to.Name
	removeProperty(from, position)
	addProperty(to, position)
}
