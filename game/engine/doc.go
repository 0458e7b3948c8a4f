// Package engine provides the core game logic for the Monopoly game server.
//
// The engine package implements the game mechanics including:
//   - The 40-space board catalog with rent tables and color groups
//   - Dice rolls, movement, doubles and the speeding rule
//   - Jail entry and the three escape routes (doubles, fine, card)
//   - Chance and Community Chest decks with typed card effects
//   - Property purchase, sealed-bid auctions, building, mortgaging and trades
//   - Rent assessment, bankruptcy resolution and win detection
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents the full table state,
// while Rules defines the tunable game parameters loaded from JSON files.
//
// Usage:
//
//	eng, err := engine.NewEngine([]string{"alice", "bob"}, engine.DefaultRules())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := eng.Roll("alice")
//	state := eng.GetState()
//
// Game Rules:
//
// Players take turns rolling two dice and moving clockwise around the board.
// Landing on an unowned property opens a purchase decision; declining sends
// the deed to a sealed-bid auction. Owned properties charge rent, scaled by
// buildings, monopolies, railroad counts and utility dice multipliers. A
// player who cannot cover a debt after liquidating is bankrupt, and the last
// solvent player wins.
package engine
