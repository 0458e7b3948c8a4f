package engine

// bankruptPlayer resolves a debtor who cannot cover a charge. A player
// creditor inherits the estate as-is: titles keep their mortgage flags
// and building counts. When the debt is owed to the bank, buildings are
// sold off at half cost and the deeds revert unencumbered. The seat is
// out for the rest of the game.
func (e *GameEngine) bankruptPlayer(debtor, creditor *Player, debt int, out *TurnOutcome) {
	to := "the bank"
	if creditor != nil {
		to = creditor.Name
	}
	e.addEvent(out, "bankruptcy", "%s cannot pay $%d to %s and is bankrupt", debtor.Name, debt, to)

	if creditor != nil {
		if debtor.Cash > 0 {
			e.addEvent(out, "bankruptcy", "%s receives %s's remaining $%d", creditor.Name, debtor.Name, debtor.Cash)
			creditor.Cash += debtor.Cash
		}
		for _, pos := range debtor.Properties {
			title := e.state.Titles[pos]
			title.Owner = creditor.Name
			addProperty(creditor, pos)
			e.addEvent(out, "bankruptcy", "%s transfers to %s", board[pos].Name, creditor.Name)
		}
		if debtor.JailCards > 0 {
			e.addEvent(out, "bankruptcy", "%s receives %d Get Out of Jail Free card(s)", creditor.Name, debtor.JailCards)
			moveJailCards(debtor, creditor, debtor.JailCards)
		}
	} else {
		// Buildings sell back at half cost, then the deeds revert to the
		// bank unencumbered and become buyable again.
		for _, pos := range debtor.Properties {
			title := e.state.Titles[pos]
			space := board[pos]
			if title.Buildings == HotelLevel {
				debtor.Cash += space.HouseCost * 4 / 2
				e.state.HotelPool++
			} else if title.Buildings > 0 {
				debtor.Cash += space.HouseCost * title.Buildings / 2
				e.state.HousePool += title.Buildings
			}
			title.Buildings = 0
			title.Owner = ""
			title.Mortgaged = false
		}
		for debtor.JailCards > 0 {
			e.takeJailCard(debtor).ReturnJailFree()
		}
	}

	debtor.Cash = 0
	debtor.Properties = []int{}
	debtor.JailCards = 0
	debtor.JailDecks = nil
	debtor.InJail = false
	debtor.JailTurns = 0
	debtor.Bankrupt = true
	e.assertPools()
	e.checkGameOver(out)
}

// checkGameOver ends the game when one solvent seat remains.
func (e *GameEngine) checkGameOver(out *TurnOutcome) {
	var last *Player
	alive := 0
	for _, p := range e.state.Players {
		if !p.Bankrupt {
			alive++
			last = p
		}
	}
	if alive != 1 {
		return
	}
	e.state.GameOver = true
	e.state.Winner = last.Name
	e.addEvent(out, "game_over", "%s wins the game", last.Name)
}
