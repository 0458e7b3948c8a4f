package engine

// RentAt returns the rent currently due on a position, given the dice sum
// that brought the visitor there. Unowned and mortgaged deeds charge
// nothing. Street rent scales with buildings and doubles unimproved when
// the owner holds the whole group; railroads double per railroad owned;
// utilities multiply the dice sum.
func (e *GameEngine) RentAt(position int, diceSum int) int {
	space := SpaceAt(position)
	title, ok := e.state.Titles[position]
	if !ok || title.Owner == "" || title.Mortgaged {
		return 0
	}

	switch space.Kind {
	case SpaceRailroad:
		owned := e.countOwnedOfKind(title.Owner, SpaceRailroad)
		rent := RailroadBaseRent
		for i := 1; i < owned; i++ {
			rent *= 2
		}
		return rent
	case SpaceUtility:
		if e.countOwnedOfKind(title.Owner, SpaceUtility) == 2 {
			return diceSum * UtilityPairMultiplier
		}
		return diceSum * UtilitySingleMultiplier
	case SpaceProperty:
		if title.Buildings > 0 {
			return space.Rents[title.Buildings]
		}
		if e.ownsFullGroup(title.Owner, space.Color) {
			return space.Rents[0] * 2
		}
		return space.Rents[0]
	}
	return 0
}

// PlayerProperties returns the per-deed view of a player's holdings, in
// board order. CurrentRent uses the last throw for utility estimates.
func (e *GameEngine) PlayerProperties(player string) ([]PropertyDetail, error) {
	p, err := e.playerByName(player)
	if err != nil {
		return nil, err
	}

	diceSum := e.state.LastDice[0] + e.state.LastDice[1]
	details := make([]PropertyDetail, 0, len(p.Properties))
	for _, pos := range p.Properties {
		details = append(details, e.propertyDetail(pos, diceSum))
	}
	return details, nil
}

func (e *GameEngine) propertyDetail(position, diceSum int) PropertyDetail {
	space := board[position]
	title := e.state.Titles[position]
	detail := PropertyDetail{
		Position:      position,
		Name:          space.Name,
		Kind:          space.Kind,
		Color:         space.Color,
		Price:         space.Price,
		Buildings:     title.Buildings,
		Mortgaged:     title.Mortgaged,
		MortgageValue: space.MortgageValue(),
		CurrentRent:   e.RentAt(position, diceSum),
	}
	if space.Kind == SpaceProperty {
		detail.FullGroup = e.ownsFullGroup(title.Owner, space.Color)
	}
	return detail
}
