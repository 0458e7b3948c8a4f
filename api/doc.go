// Package api provides HTTP REST API handlers for the Monopoly game server.
//
// The api package implements:
//   - RESTful endpoints for turn, purchase and asset operations
//   - Session management endpoints
//   - Rule set listing, loading and creation
//   - WebSocket upgrade handling with state broadcast
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new game session
//   - GET /api/sessions - List all sessions (sort, order, limit)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Turn Operations:
//   - GET /api/sessions/{id}/state - Get full game state
//   - POST /api/sessions/{id}/roll - Roll dice and resolve movement
//   - POST /api/sessions/{id}/jail/pay - Pay the jail fine
//   - POST /api/sessions/{id}/jail/card - Play a Get Out of Jail Free card
//
// Purchase Decision:
//   - POST /api/sessions/{id}/buy - Buy the pending property at list price
//   - POST /api/sessions/{id}/decline - Decline and auction with sealed bids
//
// Asset Management:
//   - POST /api/sessions/{id}/build - Build a house or hotel
//   - POST /api/sessions/{id}/sell-building - Sell a building back to the bank
//   - POST /api/sessions/{id}/mortgage - Mortgage a deed
//   - POST /api/sessions/{id}/unmortgage - Lift a mortgage
//   - POST /api/sessions/{id}/trade - Execute a two-player trade
//
// Views:
//   - GET /api/sessions/{id}/players/{player}/properties - Player holdings
//   - GET /api/board - Static board catalog
//
// Rules:
//   - GET /api/rules - List available rule sets
//   - GET /api/rules/{name} - Get a rule set
//   - POST /api/rules - Save a new rule set
//
// WebSocket:
//   - GET /ws?session={id} - Real-time game state updates
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Game operations identify the
// acting player in the request body:
//
//	{
//	  "player": "alice",
//	  "position": 39,            // asset operations
//	  "bids": {"bob": 120}       // decline-and-auction
//	}
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
//
// Rule violations (wrong turn, wrong phase, insufficient funds, uneven
// building) map to 409 Conflict; unknown sessions and players to 404.
package api
