// Package websocket provides WebSocket transport for the Monopoly game server.
//
// The websocket package implements:
//   - Real-time game state broadcasting to spectators and players
//   - Session-aware WebSocket connections
//   - Connection lifecycle management with ping/pong keepalives
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a pair of
// goroutines for reading and writing. The hub's Run loop owns the session
// map, so registration and broadcast never race.
//
// Message Protocol:
//
// Messages are JSON-encoded. The socket is a one-way feed: after every
// mutating game operation (roll, buy, build, trade, ...) subscribers
// receive the full game state:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=ab12)
// when establishing the connection. State updates are broadcast only to
// clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// from an HTTP handler, after verifying the session exists
//	hub.ServeWS(w, r, sessionID)
//
//	// after a game mutation
//	hub.BroadcastToSession(sessionID, state)
package websocket
