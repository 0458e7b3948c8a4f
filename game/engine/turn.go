package engine

import "fmt"

// Roll throws the dice for the current player and resolves everything the
// throw triggers: movement, GO salary, rent, taxes, cards, jail entry and
// any cascading bankruptcies. When the player is in jail the throw is an
// escape attempt instead of a normal move.
func (e *GameEngine) Roll(player string) (*TurnOutcome, error) {
	p, err := e.requireTurn(player, PhaseAwaitingRoll)
	if err != nil {
		return nil, err
	}

	out := &TurnOutcome{Player: player, LandedOn: -1}
	d1, d2 := e.roll()
	out.Dice = [2]int{d1, d2}
	out.Doubles = d1 == d2
	e.state.LastDice = out.Dice
	e.addEvent(out, "roll", "%s rolled %d+%d=%d", player, d1, d2, d1+d2)

	if p.InJail {
		e.jailRoll(p, d1, d2, out)
	} else {
		e.normalRoll(p, d1, d2, out)
	}

	e.finishOutcome(p, out)
	return out, nil
}

func (e *GameEngine) normalRoll(p *Player, d1, d2 int, out *TurnOutcome) {
	if d1 == d2 {
		e.state.DoublesStreak++
		if e.state.DoublesStreak >= MaxConsecutiveDoubles {
			e.addEvent(out, "jail", "%s threw three consecutive doubles and is sent to jail", p.Name)
			e.goToJail(p, out)
			e.endTurn()
			return
		}
	} else {
		e.state.DoublesStreak = 0
	}

	e.movePlayer(p, d1+d2, out)
	e.resolveLanding(p, d1+d2, out)
	e.concludeRoll(p, d1 == d2, false, out)
}

func (e *GameEngine) jailRoll(p *Player, d1, d2 int, out *TurnOutcome) {
	if d1 == d2 {
		e.addEvent(out, "jail", "%s rolled doubles and leaves jail", p.Name)
		e.releaseFromJail(p)
		e.movePlayer(p, d1+d2, out)
		e.resolveLanding(p, d1+d2, out)
		e.concludeRoll(p, false, true, out)
		return
	}

	p.JailTurns++
	if p.JailTurns < e.rules.MaxJailTurns {
		e.addEvent(out, "jail", "%s failed to roll doubles and stays in jail (attempt %d of %d)", p.Name, p.JailTurns, e.rules.MaxJailTurns)
		e.endTurn()
		return
	}

	// Last allowed attempt failed: the fine is due whether or not the
	// player can afford it. The release does not move the player; the
	// throw was already spent on the failed escape.
	e.addEvent(out, "jail", "%s failed the final escape roll and must pay the $%d fine", p.Name, e.rules.JailFine)
	e.chargePayment(p, nil, e.rules.JailFine, "fine", out)
	if !p.Bankrupt {
		e.releaseFromJail(p)
		e.addEvent(out, "jail", "%s is released from jail without moving", p.Name)
	}
	e.endTurn()
}

// concludeRoll decides what happens after a throw has fully resolved:
// rotate the turn, hold for a purchase decision, or grant the doubles
// extra throw. Rolls made from jail never earn an extra throw.
func (e *GameEngine) concludeRoll(p *Player, doubles, fromJail bool, out *TurnOutcome) {
	if e.state.GameOver {
		return
	}
	if p.Bankrupt {
		e.endTurn()
		return
	}
	earned := doubles && !fromJail && !p.InJail
	if e.state.Phase == PhaseAwaitingPurchase {
		// The purchase decision happens first; the extra throw, if any,
		// resumes once the deed is bought or auctioned.
		e.state.ExtraRoll = earned
		return
	}
	if earned {
		out.ExtraTurn = true
		e.addEvent(out, "roll", "%s rolled doubles and throws again", p.Name)
		return
	}
	e.endTurn()
}

// PayJailFine pays the fine before rolling, releasing the current player
// from jail. The player then rolls normally on the same turn.
func (e *GameEngine) PayJailFine(player string) (*TurnOutcome, error) {
	p, err := e.requireTurn(player, PhaseAwaitingRoll)
	if err != nil {
		return nil, err
	}
	if !p.InJail {
		return nil, fmt.Errorf("%w: %s is not in jail", ErrInvalidPhase, player)
	}
	if p.Cash < e.rules.JailFine {
		return nil, fmt.Errorf("%w: fine is $%d, %s has $%d", ErrInsufficientFunds, e.rules.JailFine, player, p.Cash)
	}

	out := &TurnOutcome{Player: player, LandedOn: -1, ExtraTurn: true}
	p.Cash -= e.rules.JailFine
	e.releaseFromJail(p)
	e.addEvent(out, "jail", "%s paid the $%d fine and is released from jail", player, e.rules.JailFine)
	e.finishOutcome(p, out)
	return out, nil
}

// UseJailCard plays a held Get Out of Jail Free card, releasing the
// current player. The card returns to the bottom of the deck it was
// drawn from.
func (e *GameEngine) UseJailCard(player string) (*TurnOutcome, error) {
	p, err := e.requireTurn(player, PhaseAwaitingRoll)
	if err != nil {
		return nil, err
	}
	if !p.InJail {
		return nil, fmt.Errorf("%w: %s is not in jail", ErrInvalidPhase, player)
	}
	if p.JailCards == 0 {
		return nil, fmt.Errorf("%w: %s holds no Get Out of Jail Free card", ErrInvalidPhase, player)
	}

	out := &TurnOutcome{Player: player, LandedOn: -1, ExtraTurn: true}
	e.takeJailCard(p).ReturnJailFree()
	e.releaseFromJail(p)
	e.addEvent(out, "jail", "%s used a Get Out of Jail Free card", player)
	e.finishOutcome(p, out)
	return out, nil
}

func (e *GameEngine) releaseFromJail(p *Player) {
	p.InJail = false
	p.JailTurns = 0
}

func (e *GameEngine) goToJail(p *Player, out *TurnOutcome) {
	p.Position = JailPosition
	p.InJail = true
	p.JailTurns = 0
	e.state.DoublesStreak = 0
	e.addEvent(out, "jail", "%s goes directly to jail", p.Name)
	out.LandedOn = JailPosition
}

// movePlayer advances clockwise by spaces, paying GO salary on a wrap.
func (e *GameEngine) movePlayer(p *Player, spaces int, out *TurnOutcome) {
	from := p.Position
	to := (from + spaces) % BoardSize
	p.Position = to
	out.LandedOn = to
	if to < from {
		e.paySalary(p, out)
	}
	e.addEvent(out, "move", "%s moved %d spaces to %s", p.Name, spaces, board[to].Name)
}

// jumpTo teleports to a position. Salary is paid when collectGo is set
// and the jump passes or lands on GO going forward.
func (e *GameEngine) jumpTo(p *Player, position int, collectGo bool, out *TurnOutcome) {
	if collectGo && position < p.Position {
		e.paySalary(p, out)
	}
	p.Position = position
	out.LandedOn = position
	e.addEvent(out, "move", "%s advances to %s", p.Name, board[position].Name)
}

func (e *GameEngine) paySalary(p *Player, out *TurnOutcome) {
	p.Cash += e.rules.GoSalary
	out.PassedGo = true
	e.addEvent(out, "salary", "%s passed GO and collected $%d", p.Name, e.rules.GoSalary)
}

// resolveLanding applies the effect of the space the player now occupies.
// Card effects can move the player again, so this recurses through jumps.
func (e *GameEngine) resolveLanding(p *Player, diceSum int, out *TurnOutcome) {
	space := board[p.Position]
	switch space.Kind {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		e.resolveOwnable(p, space, diceSum, 1, out)
	case SpaceTax:
		e.addEvent(out, "tax", "%s owes %s of $%d", p.Name, space.Name, space.TaxAmount)
		e.chargePayment(p, nil, space.TaxAmount, "tax", out)
	case SpaceChance:
		e.drawCard(p, e.state.Chance, diceSum, out)
	case SpaceCommunityChest:
		e.drawCard(p, e.state.CommunityChest, diceSum, out)
	case SpaceGoToJail:
		e.goToJail(p, out)
	}
}

// resolveOwnable handles landing on a deed space. rentMultiplier is 1 for
// normal landings and 2 for the nearest-railroad card.
func (e *GameEngine) resolveOwnable(p *Player, space Space, diceSum, rentMultiplier int, out *TurnOutcome) {
	title := e.state.Titles[space.Position]
	switch {
	case title.Owner == "":
		e.state.Phase = PhaseAwaitingPurchase
		e.state.PendingPurchase = space.Position
		e.addEvent(out, "purchase_pending", "%s is unowned, %s may buy it for $%d or decline to auction", space.Name, p.Name, space.Price)
	case title.Owner == p.Name:
		e.addEvent(out, "move", "%s landed on their own property %s", p.Name, space.Name)
	case title.Mortgaged:
		e.addEvent(out, "rent", "%s is mortgaged, no rent is due", space.Name)
	default:
		rent := e.RentAt(space.Position, diceSum) * rentMultiplier
		owner, err := e.playerByName(title.Owner)
		if err != nil {
			panic(fmt.Sprintf("invariant: title at %d owned by unknown player %s", space.Position, title.Owner))
		}
		e.addEvent(out, "rent", "%s owes $%d rent to %s for %s", p.Name, rent, owner.Name, space.Name)
		e.chargePayment(p, owner, rent, "rent", out)
	}
}

func (e *GameEngine) drawCard(p *Player, deck *Deck, diceSum int, out *TurnOutcome) {
	card := deck.Draw()
	e.addEvent(out, "card", "%s drew from %s: %s", p.Name, deck.Name, card.Text)
	if card.Effect.Kind == EffectJailFree {
		p.JailCards++
		p.JailDecks = append(p.JailDecks, deck.Name)
		deck.HeldJailFree++
		return
	}
	deck.Recycle(card)
	e.applyCardEffect(p, card.Effect, diceSum, out)
}

func (e *GameEngine) applyCardEffect(p *Player, eff CardEffect, diceSum int, out *TurnOutcome) {
	switch eff.Kind {
	case EffectAdvance:
		e.jumpTo(p, eff.Position, eff.CollectGo, out)
		e.resolveLanding(p, diceSum, out)
	case EffectAdvanceNearest:
		e.advanceNearest(p, eff.Target, out)
	case EffectMoveBack:
		p.Position = ((p.Position-eff.Spaces)%BoardSize + BoardSize) % BoardSize
		out.LandedOn = p.Position
		e.addEvent(out, "move", "%s moves back %d spaces to %s", p.Name, eff.Spaces, board[p.Position].Name)
		e.resolveLanding(p, diceSum, out)
	case EffectCollect:
		p.Cash += eff.Amount
		e.addEvent(out, "card", "%s collects $%d from the bank", p.Name, eff.Amount)
	case EffectPay:
		e.chargePayment(p, nil, eff.Amount, "card", out)
	case EffectCollectEach:
		for _, other := range e.state.Players {
			if other == p || other.Bankrupt {
				continue
			}
			e.chargePayment(other, p, eff.Amount, "card", out)
		}
	case EffectPayEach:
		for _, other := range e.state.Players {
			if other == p || other.Bankrupt {
				continue
			}
			e.chargePayment(p, other, eff.Amount, "card", out)
			if p.Bankrupt {
				return
			}
		}
	case EffectGoToJail:
		e.goToJail(p, out)
	case EffectRepairs:
		cost := e.repairBill(p, eff.PerHouse, eff.PerHotel)
		e.addEvent(out, "repairs", "%s is assessed $%d for repairs", p.Name, cost)
		e.chargePayment(p, nil, cost, "repairs", out)
	}
}

// advanceNearest moves to the closest railroad or utility ahead. An owned
// destination charges the card's special rate: double rent for railroads,
// ten times a fresh throw for utilities.
func (e *GameEngine) advanceNearest(p *Player, target SpaceKind, out *TurnOutcome) {
	var targets []int
	if target == SpaceRailroad {
		targets = RailroadPositions()
	} else {
		targets = UtilityPositions()
	}
	dest := nearestAhead(p.Position, targets)
	e.jumpTo(p, dest, true, out)

	space := board[dest]
	title := e.state.Titles[dest]
	switch {
	case title.Owner == "":
		e.state.Phase = PhaseAwaitingPurchase
		e.state.PendingPurchase = dest
		e.addEvent(out, "purchase_pending", "%s is unowned, %s may buy it for $%d or decline to auction", space.Name, p.Name, space.Price)
	case title.Owner == p.Name || title.Mortgaged:
		// nothing due
	case target == SpaceRailroad:
		rent := e.RentAt(dest, 0) * 2
		owner, _ := e.playerByName(title.Owner)
		e.addEvent(out, "rent", "%s owes double rent of $%d to %s for %s", p.Name, rent, owner.Name, space.Name)
		e.chargePayment(p, owner, rent, "rent", out)
	default:
		d1, d2 := e.roll()
		rent := (d1 + d2) * UtilityPairMultiplier
		owner, _ := e.playerByName(title.Owner)
		e.addEvent(out, "rent", "%s threw %d+%d and owes $%d to %s for %s", p.Name, d1, d2, rent, owner.Name, space.Name)
		e.chargePayment(p, owner, rent, "rent", out)
	}
}

func (e *GameEngine) repairBill(p *Player, perHouse, perHotel int) int {
	total := 0
	for _, pos := range p.Properties {
		t := e.state.Titles[pos]
		if t.Buildings == HotelLevel {
			total += perHotel
		} else {
			total += perHouse * t.Buildings
		}
	}
	return total
}

// chargePayment moves amount from payer to creditor (nil creditor means
// the bank). A payer who cannot cover it goes bankrupt; partial cash goes
// to the creditor and the estate is resolved.
func (e *GameEngine) chargePayment(payer, creditor *Player, amount int, kind string, out *TurnOutcome) {
	if amount <= 0 {
		return
	}
	if payer.Cash >= amount {
		payer.Cash -= amount
		if creditor != nil {
			creditor.Cash += amount
			e.addEvent(out, kind, "%s paid $%d to %s", payer.Name, amount, creditor.Name)
		} else {
			e.addEvent(out, kind, "%s paid $%d to the bank", payer.Name, amount)
		}
		return
	}
	e.bankruptPlayer(payer, creditor, amount, out)
}

// endTurn rotates to the next solvent player and resets per-turn state.
func (e *GameEngine) endTurn() {
	e.state.DoublesStreak = 0
	e.state.ExtraRoll = false
	e.state.Phase = PhaseAwaitingRoll
	e.state.PendingPurchase = -1
	e.state.TurnCount++
	if e.state.GameOver {
		return
	}
	n := len(e.state.Players)
	for i := 1; i <= n; i++ {
		idx := (e.state.Current + i) % n
		if !e.state.Players[idx].Bankrupt {
			e.state.Current = idx
			return
		}
	}
}

func (e *GameEngine) finishOutcome(p *Player, out *TurnOutcome) {
	out.Cash = p.Cash
	out.Phase = e.state.Phase
	out.GameOver = e.state.GameOver
	out.Winner = e.state.Winner
}

func (e *GameEngine) addEvent(out *TurnOutcome, kind, format string, args ...interface{}) {
	out.Events = append(out.Events, Event{Type: kind, Message: fmt.Sprintf(format, args...)})
}
