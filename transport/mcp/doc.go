// Package mcp provides a Model Context Protocol server for the Monopoly game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every game operation
//   - Session-aware command execution
//   - Stdio transport mode
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_game: Create a new game with 2-8 named players
//   - list_active_games: List all running game sessions
//   - get_game_state: Full state with players, deeds, pools and phase
//   - play_turn: Roll dice, pay the jail fine, or use a jail card
//   - buy_property: Buy the pending property at list price
//   - decline_property: Decline and run a sealed-bid auction
//   - build_house / sell_building: Manage houses and hotels
//   - mortgage_property / unmortgage_property: Manage mortgages
//   - trade: Atomic two-player exchange of deeds, cash and jail cards
//   - get_player_properties: One player's holdings and rents
//   - get_board_info: The static 40-space board catalog
//   - list_rules: Available rule sets
//   - game_instructions: Comprehensive rules reference
//
// Architecture:
//
// The MCP server is a thin client: every tool call is proxied to the
// REST API server over HTTP and the JSON response is rendered as text
// for the agent. Running the game behind the REST API keeps a single
// source of truth when humans (WebSocket/REST) and agents (MCP) share
// a session.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play full games autonomously against each other
//   - Negotiate and execute trades
//   - Manage multiple concurrent game sessions
//   - Reason about auctions, building and mortgage decisions
package mcp
