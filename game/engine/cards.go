package engine

import "math/rand"

// newChanceDeck returns the 16 Chance cards in canonical order.
func newChanceDeck() *Deck {
	return &Deck{
		Name: "Chance",
		Cards: []Card{
			{Text: "Advance to Boardwalk", Effect: CardEffect{Kind: EffectAdvance, Position: 39}},
			{Text: "Advance to Go (Collect $200)", Effect: CardEffect{Kind: EffectAdvance, Position: GoPosition, CollectGo: true}},
			{Text: "Advance to Illinois Avenue. If you pass Go, collect $200", Effect: CardEffect{Kind: EffectAdvance, Position: 24, CollectGo: true}},
			{Text: "Advance to St. Charles Place. If you pass Go, collect $200", Effect: CardEffect{Kind: EffectAdvance, Position: 11, CollectGo: true}},
			{Text: "Advance to the nearest Railroad. If owned, pay the owner twice the rental to which they are otherwise entitled", Effect: CardEffect{Kind: EffectAdvanceNearest, Target: SpaceRailroad}},
			{Text: "Advance to the nearest Railroad. If owned, pay the owner twice the rental to which they are otherwise entitled", Effect: CardEffect{Kind: EffectAdvanceNearest, Target: SpaceRailroad}},
			{Text: "Advance token to nearest Utility. If owned, throw dice and pay owner a total ten times the amount thrown", Effect: CardEffect{Kind: EffectAdvanceNearest, Target: SpaceUtility}},
			{Text: "Bank pays you dividend of $50", Effect: CardEffect{Kind: EffectCollect, Amount: 50}},
			{Text: "Get Out of Jail Free", Effect: CardEffect{Kind: EffectJailFree}},
			{Text: "Go Back 3 Spaces", Effect: CardEffect{Kind: EffectMoveBack, Spaces: 3}},
			{Text: "Go to Jail. Go directly to Jail, do not pass Go, do not collect $200", Effect: CardEffect{Kind: EffectGoToJail}},
			{Text: "Make general repairs on all your property. For each house pay $25. For each hotel pay $100", Effect: CardEffect{Kind: EffectRepairs, PerHouse: 25, PerHotel: 100}},
			{Text: "Speeding fine $15", Effect: CardEffect{Kind: EffectPay, Amount: 15}},
			{Text: "Take a trip to Reading Railroad. If you pass Go, collect $200", Effect: CardEffect{Kind: EffectAdvance, Position: 5, CollectGo: true}},
			{Text: "You have been elected Chairman of the Board. Pay each player $50", Effect: CardEffect{Kind: EffectPayEach, Amount: 50}},
			{Text: "Your building loan matures. Collect $150", Effect: CardEffect{Kind: EffectCollect, Amount: 150}},
		},
	}
}

// newCommunityChestDeck returns the 16 Community Chest cards in canonical order.
func newCommunityChestDeck() *Deck {
	return &Deck{
		Name: "Community Chest",
		Cards: []Card{
			{Text: "Advance to Go (Collect $200)", Effect: CardEffect{Kind: EffectAdvance, Position: GoPosition, CollectGo: true}},
			{Text: "Bank error in your favor. Collect $200", Effect: CardEffect{Kind: EffectCollect, Amount: 200}},
			{Text: "Doctor's fee. Pay $50", Effect: CardEffect{Kind: EffectPay, Amount: 50}},
			{Text: "From sale of stock you get $50", Effect: CardEffect{Kind: EffectCollect, Amount: 50}},
			{Text: "Get Out of Jail Free", Effect: CardEffect{Kind: EffectJailFree}},
			{Text: "Go to Jail. Go directly to Jail, do not pass Go, do not collect $200", Effect: CardEffect{Kind: EffectGoToJail}},
			{Text: "Holiday fund matures. Receive $100", Effect: CardEffect{Kind: EffectCollect, Amount: 100}},
			{Text: "Income tax refund. Collect $20", Effect: CardEffect{Kind: EffectCollect, Amount: 20}},
			{Text: "It is your birthday. Collect $10 from every player", Effect: CardEffect{Kind: EffectCollectEach, Amount: 10}},
			{Text: "Life insurance matures. Collect $100", Effect: CardEffect{Kind: EffectCollect, Amount: 100}},
			{Text: "Pay hospital fees of $100", Effect: CardEffect{Kind: EffectPay, Amount: 100}},
			{Text: "Pay school fees of $50", Effect: CardEffect{Kind: EffectPay, Amount: 50}},
			{Text: "Receive $25 consultancy fee", Effect: CardEffect{Kind: EffectCollect, Amount: 25}},
			{Text: "You are assessed for street repair. $40 per house. $115 per hotel", Effect: CardEffect{Kind: EffectRepairs, PerHouse: 40, PerHotel: 115}},
			{Text: "You have won second prize in a beauty contest. Collect $10", Effect: CardEffect{Kind: EffectCollect, Amount: 10}},
			{Text: "You inherit $100", Effect: CardEffect{Kind: EffectCollect, Amount: 100}},
		},
	}
}

// Shuffle randomizes the draw order using the provided source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the top card. The caller recycles it after
// resolution unless it is a jail-free card.
func (d *Deck) Draw() Card {
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card
}

// Recycle places a resolved card at the bottom of the deck.
func (d *Deck) Recycle(card Card) {
	d.Cards = append(d.Cards, card)
}

// ReturnJailFree puts a used jail-free card back at the bottom.
func (d *Deck) ReturnJailFree() {
	if d.HeldJailFree == 0 {
		return
	}
	d.HeldJailFree--
	d.Cards = append(d.Cards, Card{
		Text:   "Get Out of Jail Free",
		Effect: CardEffect{Kind: EffectJailFree},
	})
}
