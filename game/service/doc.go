// Package service provides the business logic layer for the Monopoly game server.
//
// The service package implements:
//   - Multi-session game management
//   - Rule set management and loading
//   - Turn, purchase, building and trade processing
//   - Session lifecycle management
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// RulesManager manages rule set loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, rule set management, and
// business logic orchestration. Each session maintains its own game engine
// instance with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	rulesMgr := rules.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, rulesMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, []string{"alice", "bob"}, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Take a turn
//	result, err := gameService.Roll(ctx, sessionInfo.ID, "alice")
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different rule
// sets. Sessions track creation time and last access time so idle games can
// be expired.
package service
