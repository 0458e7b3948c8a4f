package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/monopoly/game/engine"
	"github.com/wricardo/mcp-training/monopoly/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Monopoly Game Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Monopoly Game Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Bankrupt every opponent. Buy properties, collect rent, complete color groups and build houses and hotels. The last solvent player wins.

AVAILABLE TOOLS:
- create_game: Create a new game with 2-8 named players
- list_active_games: List all running game sessions
- get_game_state: Full state (players, deeds, pools, phase)
- play_turn: Roll the dice, pay the jail fine, or use a jail card
- buy_property: Buy the property just landed on at list price
- decline_property: Decline the purchase and auction with sealed bids
- build_house / sell_building: Manage houses and hotels
- mortgage_property / unmortgage_property: Manage mortgages
- trade: Atomic two-player exchange of deeds, cash and jail cards
- get_player_properties: One player's holdings and current rents
- get_board_info: The static 40-space board catalog
- list_rules: Available rule sets
- game_instructions: Comprehensive rules reference

TURN FLOW:
1. The current player calls play_turn with action "roll".
2. If they land on an unowned property they must buy_property or decline_property before anything else.
3. Doubles grant another roll; three doubles in a row is jail.
4. Asset moves (build, mortgage, trade) are allowed on your turn between rolls.

NOTE: The 'intent' parameter on play_turn serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	sessionProp := map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
	playerProp := map[string]interface{}{
		"type":        "string",
		"description": "Name of the acting player",
	}
	positionProp := map[string]interface{}{
		"type":        "integer",
		"description": "Board position of the property (0-39)",
	}

	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_game",
		Description: "Create a new game session with 2-8 named players and an optional rule set",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"players": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Player names in seating order (2-8, unique)",
				},
				"rules_id": map[string]interface{}{
					"type":        "string",
					"description": "Name of the rule set to use (optional, defaults to classic)",
				},
			},
			Required: []string{"players"},
		},
	}, c.handleCreateGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_active_games",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListGames)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_game_state",
		Description: "Get the full game state: players, cash, positions, deeds, building pools and whose turn it is",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	// Turn operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_turn",
		Description: "Take a turn action: roll the dice, pay the jail fine before rolling, or play a Get Out of Jail Free card",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"player":     playerProp,
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"roll", "pay_jail_fine", "use_jail_card"},
					"description": "Turn action to take",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this action (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "player", "action"},
		},
	}, c.handlePlayTurn)

	// Purchase decision
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "buy_property",
		Description: "Buy the unowned property the current player just landed on, at list price",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"player":     playerProp,
			},
			Required: []string{"session_id", "player"},
		},
	}, c.handleBuyProperty)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "decline_property",
		Description: "Decline the pending purchase and run a sealed-bid auction among all solvent players. Bids below the auction floor are ignored; ties go to the earliest seat after the decliner.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"player":     playerProp,
				"bids": map[string]interface{}{
					"type":        "object",
					"description": "Sealed bids keyed by player name, e.g. {\"bob\": 120, \"carol\": 90}",
					"additionalProperties": map[string]interface{}{
						"type": "integer",
					},
				},
			},
			Required: []string{"session_id", "player"},
		},
	}, c.handleDeclineProperty)

	// Asset management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "build_house",
		Description: "Build a house on a street (or convert 4 houses to a hotel). Requires the full color group, even building, and stock in the bank.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"player":     playerProp,
				"position":   positionProp,
			},
			Required: []string{"session_id", "player", "position"},
		},
	}, c.handleBuildHouse)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "sell_building",
		Description: "Sell one building back to the bank for half its build cost. Selling a hotel returns 4 houses to the street.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"player":     playerProp,
				"position":   positionProp,
			},
			Required: []string{"session_id", "player", "position"},
		},
	}, c.handleSellBuilding)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "mortgage_property",
		Description: "Mortgage an unimproved deed for half its price. Mortgaged deeds collect no rent.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"player":     playerProp,
				"position":   positionProp,
			},
			Required: []string{"session_id", "player", "position"},
		},
	}, c.handleMortgageProperty)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "unmortgage_property",
		Description: "Lift a mortgage by paying the principal plus the premium",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"player":     playerProp,
				"position":   positionProp,
			},
			Required: []string{"session_id", "player", "position"},
		},
	}, c.handleUnmortgageProperty)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "trade",
		Description: "Execute an atomic two-player trade of deeds, cash and jail cards. Deeds with buildings cannot be traded; mortgages transfer as-is.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"from": map[string]interface{}{
					"type":        "string",
					"description": "Proposing player",
				},
				"to": map[string]interface{}{
					"type":        "string",
					"description": "Counterparty player",
				},
				"give_properties": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "integer"},
					"description": "Board positions given by the proposer",
				},
				"give_cash": map[string]interface{}{
					"type":        "integer",
					"description": "Cash given by the proposer",
				},
				"give_jail_cards": map[string]interface{}{
					"type":        "integer",
					"description": "Jail cards given by the proposer",
				},
				"receive_properties": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "integer"},
					"description": "Board positions received from the counterparty",
				},
				"receive_cash": map[string]interface{}{
					"type":        "integer",
					"description": "Cash received from the counterparty",
				},
				"receive_jail_cards": map[string]interface{}{
					"type":        "integer",
					"description": "Jail cards received from the counterparty",
				},
			},
			Required: []string{"session_id", "from", "to"},
		},
	}, c.handleTrade)

	// Views
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_player_properties",
		Description: "List one player's deeds with buildings, mortgage state and current rent",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"player":     playerProp,
			},
			Required: []string{"session_id", "player"},
		},
	}, c.handlePlayerProperties)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_board_info",
		Description: "Get the static 40-space board catalog with prices, rents and color groups",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleBoardInfo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_rules",
		Description: "List available rule sets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListRules)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	playersRaw, _ := args["players"].([]interface{})
	rulesID, _ := args["rules_id"].(string)

	players := make([]string, 0, len(playersRaw))
	for _, p := range playersRaw {
		if name, ok := p.(string); ok {
			players = append(players, name)
		}
	}

	body := map[string]interface{}{"players": players}
	if rulesID != "" {
		body["rules_id"] = rulesID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created game: %s\nRules: %s\nPlayers: %s\n\n%s",
		session.ID, session.RulesName, strings.Join(session.Players, ", "),
		formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Games (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Rules: %s, Players: %s, Created: %s)\n",
			s.ID, s.RulesName, strings.Join(s.Players, ", "), s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handlePlayTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)
	action, _ := args["action"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	var path string
	switch action {
	case "roll":
		path = fmt.Sprintf("/api/sessions/%s/roll", sessionID)
	case "pay_jail_fine":
		path = fmt.Sprintf("/api/sessions/%s/jail/pay", sessionID)
	case "use_jail_card":
		path = fmt.Sprintf("/api/sessions/%s/jail/card", sessionID)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown action: %s", action)), nil
	}

	body := map[string]string{"player": player}

	var result service.TurnResult
	err := c.apiCall("POST", path, body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTurnResult(&result)), nil
}

func (c *Client) handleBuyProperty(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)

	var result service.PurchaseResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/buy", sessionID),
		map[string]string{"player": player}, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatPurchaseResult(&result)), nil
}

func (c *Client) handleDeclineProperty(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)

	bids := map[string]int{}
	if bidsRaw, ok := args["bids"].(map[string]interface{}); ok {
		for name, v := range bidsRaw {
			if amount, ok := v.(float64); ok {
				bids[name] = int(amount)
			}
		}
	}

	body := map[string]interface{}{"player": player}
	if len(bids) > 0 {
		body["bids"] = bids
	}

	var result service.PurchaseResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/decline", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatPurchaseResult(&result)), nil
}

func (c *Client) handleBuildHouse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.propertyOp(request, "build")
}

func (c *Client) handleSellBuilding(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.propertyOp(request, "sell-building")
}

func (c *Client) handleMortgageProperty(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.propertyOp(request, "mortgage")
}

func (c *Client) handleUnmortgageProperty(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.propertyOp(request, "unmortgage")
}

func (c *Client) propertyOp(request mcp.CallToolRequest, op string) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)
	position := 0
	if p, ok := args["position"].(float64); ok {
		position = int(p)
	}

	body := map[string]interface{}{
		"player":   player,
		"position": position,
	}

	var result service.PropertyResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/%s", sessionID, op), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatPropertyResult(&result)), nil
}

func (c *Client) handleTrade(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	offer := map[string]interface{}{
		"from": args["from"],
		"to":   args["to"],
	}
	for _, key := range []string{"give_properties", "give_cash", "give_jail_cards",
		"receive_properties", "receive_cash", "receive_jail_cards"} {
		if v, ok := args[key]; ok {
			offer[key] = v
		}
	}

	var result service.TradeResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/trade", sessionID), offer, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Trade %s executed: %s <-> %s\n", result.OfferID, result.From, result.To)
	for _, event := range result.Events {
		response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
	}
	response += "\n" + formatGameState(result.GameState)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePlayerProperties(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)

	var result service.PlayerPropertiesResult
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/players/%s/properties", sessionID, player), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s — Cash: $%d, Jail cards: %d\n\n", result.Player, result.Cash, result.JailCards))
	if len(result.Properties) == 0 {
		b.WriteString("(no properties)\n")
	}
	for _, p := range result.Properties {
		b.WriteString(formatDeedLine(p))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleBoardInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Spaces []engine.Space `json:"spaces"`
	}
	err := c.apiCall("GET", "/api/board", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Board Catalog (40 spaces):\n\n")
	for _, s := range response.Spaces {
		switch s.Kind {
		case engine.SpaceProperty:
			b.WriteString(fmt.Sprintf("%2d. %s [%s] $%d (rent $%d, house $%d)\n",
				s.Position, s.Name, s.Color, s.Price, s.Rents[0], s.HouseCost))
		case engine.SpaceRailroad, engine.SpaceUtility:
			b.WriteString(fmt.Sprintf("%2d. %s $%d\n", s.Position, s.Name, s.Price))
		case engine.SpaceTax:
			b.WriteString(fmt.Sprintf("%2d. %s (pay $%d)\n", s.Position, s.Name, s.TaxAmount))
		default:
			b.WriteString(fmt.Sprintf("%2d. %s\n", s.Position, s.Name))
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleListRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var rules []service.RulesInfo
	err := c.apiCall("GET", "/api/rules", nil, &rules)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Rule Sets:\n\n"
	for _, r := range rules {
		result += fmt.Sprintf("• %s\n  %s\n  Starting cash: $%d, GO salary: $%d\n\n",
			r.RulesID, r.Description, r.StartingCash, r.GoSalary)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎲 Monopoly Game Server - Complete Instructions

GAME OBJECTIVE:
Be the last solvent player. Buy properties, collect rent, complete color groups, build houses and hotels, and drive your opponents into bankruptcy.

TURN FLOW:
1. The current player rolls two dice (play_turn with action "roll") and moves clockwise.
2. Landing resolves automatically: rent is charged, taxes are paid, cards are drawn, GO salary is collected when passing GO.
3. Landing on an unowned property opens a purchase decision. The game will not continue until the player calls buy_property or decline_property.
4. Doubles grant an extra roll. Three consecutive doubles means straight to jail, no movement.
5. The turn passes automatically when the roll is resolved and no extra roll is due.

JAIL:
• Get in: land on Go To Jail, draw a Go To Jail card, or roll three doubles in a row.
• Get out: roll doubles (moves immediately, no extra roll), pay the fine before rolling, or play a Get Out of Jail Free card.
• After the third failed roll the fine is charged automatically and the player is released without moving; the turn ends.

PROPERTY AND RENT:
• Streets: base rent, doubled on an unimproved full color group, stepped up by houses (1-4) and a hotel.
• Railroads: $25 × 2^(railroads owned − 1), so $25/$50/$100/$200.
• Utilities: 4× the dice throw, 10× when both utilities are owned.
• Mortgaged deeds collect no rent and break the owner's full-group double.

AUCTIONS:
Declining a purchase runs a single sealed-bid auction. Every solvent player may bid; bids below the auction floor or above the bidder's cash are ignored; the highest valid bid wins, ties going to the earliest seat after the decliner. If nobody bids the deed stays with the bank.

BUILDING:
• Houses require the full, unmortgaged color group and must be built evenly across it.
• The 5th building converts 4 houses into a hotel (houses return to the bank's pool).
• House and hotel stock is finite; when the pool is empty nobody can build.
• Selling returns half the build cost.

MORTGAGE:
• Mortgage an unimproved deed for half its price; unmortgage for the principal plus a premium.
• Mortgaged deeds transfer as-is in trades and bankruptcies.

TRADING:
Trades are atomic two-player exchanges of deeds, cash and jail cards. Deeds carrying buildings cannot change hands; sell the buildings first.

BANKRUPTCY:
A player who cannot cover a debt is bankrupt. A player creditor inherits the estate (cash, deeds, jail cards) as-is, buildings and mortgages included. When the bank is the creditor, buildings are liquidated at half cost and the deeds return to the bank unencumbered. Bankrupt players stop taking turns.

VICTORY:
When only one solvent player remains, the game is over and that player wins.

SESSION MANAGEMENT:
• Multiple games can run simultaneously, each with a unique 4-character ID.
• Use get_game_state after every action; the phase field tells you what is legal next.
• The current player and pending purchase are always in the state.

STRATEGY HINTS FOR AI AGENTS:
• Check phase before acting: "awaiting_purchase" blocks everything except buy/decline.
• Orange and red groups are landed on most often; railroads are strong early.
• Keep cash reserves before building; a hotel on Boardwalk is worthless if one rent payment bankrupts you first.
• Mortgaging is cheap liquidity; selling buildings loses half their cost.

Good luck, and may the dice be with you! 🎩`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Turn %d | Phase: %s | Rules: %s\n", state.TurnCount, state.Phase, state.RulesName))
	if state.LastDice != [2]int{0, 0} {
		b.WriteString(fmt.Sprintf("Last dice: %d+%d\n", state.LastDice[0], state.LastDice[1]))
	}
	b.WriteString("\n")

	for i, p := range state.Players {
		marker := "  "
		if i == state.Current && !state.GameOver {
			marker = "▶ "
		}
		status := ""
		if p.Bankrupt {
			status = " [BANKRUPT]"
		} else if p.InJail {
			status = fmt.Sprintf(" [IN JAIL %d]", p.JailTurns)
		}
		space := engine.SpaceAt(p.Position)
		b.WriteString(fmt.Sprintf("%s%s: $%d at %d (%s), %d deeds, %d jail cards%s\n",
			marker, p.Name, p.Cash, p.Position, space.Name, len(p.Properties), p.JailCards, status))
	}

	if state.Phase == engine.PhaseAwaitingPurchase && state.PendingPurchase >= 0 {
		space := engine.SpaceAt(state.PendingPurchase)
		b.WriteString(fmt.Sprintf("\nPending purchase: %s (position %d, $%d)\n",
			space.Name, space.Position, space.Price))
	}

	b.WriteString(fmt.Sprintf("\nBank: %d houses, %d hotels remaining\n", state.HousePool, state.HotelPool))

	if state.GameOver {
		b.WriteString(fmt.Sprintf("\n🏆 GAME OVER — winner: %s\n", state.Winner))
	}

	return b.String()
}

func formatTurnResult(result *service.TurnResult) string {
	var b strings.Builder

	if result.Dice != [2]int{0, 0} {
		b.WriteString(fmt.Sprintf("%s rolled %d+%d", result.Player, result.Dice[0], result.Dice[1]))
		if result.Doubles {
			b.WriteString(" (doubles)")
		}
		b.WriteString("\n")
	}
	if result.LandedOn != nil {
		b.WriteString(fmt.Sprintf("Landed on: %s\n", result.LandedOn.Name))
	}
	if result.PassedGo {
		b.WriteString("Passed GO and collected salary\n")
	}
	if result.ExtraTurn {
		b.WriteString("Extra roll earned\n")
	}
	if result.Message != "" {
		b.WriteString(result.Message + "\n")
	}

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

func formatPurchaseResult(result *service.PurchaseResult) string {
	var b strings.Builder

	if result.Sold {
		b.WriteString(fmt.Sprintf("%s bought %s (position %d) for $%d\n",
			result.Buyer, result.Property, result.Position, result.Price))
	} else {
		b.WriteString(fmt.Sprintf("%s was not sold and stays with the bank\n", result.Property))
	}
	if result.ExtraTurn {
		b.WriteString("Extra roll pending for the current player\n")
	}
	if result.Message != "" {
		b.WriteString(result.Message + "\n")
	}

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

func formatPropertyResult(result *service.PropertyResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s — cash now $%d\n\n", result.Player, result.Cash))
	b.WriteString(formatDeedLine(result.Property))
	return b.String()
}

func formatDeedLine(p engine.PropertyDetail) string {
	flags := ""
	if p.Buildings > 0 {
		if p.Buildings == engine.HotelLevel {
			flags += " [HOTEL]"
		} else {
			flags += fmt.Sprintf(" [%d houses]", p.Buildings)
		}
	}
	if p.Mortgaged {
		flags += " [MORTGAGED]"
	}
	if p.FullGroup {
		flags += " [full group]"
	}
	return fmt.Sprintf("%2d. %s — rent $%d, mortgage value $%d%s\n",
		p.Position, p.Name, p.CurrentRent, p.MortgageValue, flags)
}
