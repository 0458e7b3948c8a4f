package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wricardo/mcp-training/monopoly/game/engine"
	"github.com/wricardo/mcp-training/monopoly/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":         "ab12",
		"rules_name": "classic",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api/sessions/ab12", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api/sessions", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "not this player's turn"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("POST", "/api/sessions/ab12/roll", map[string]string{"player": "bob"}, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 409 response")
	}

	if err.Error() != "not this player's turn" {
		t.Errorf("Expected API error message to surface, got: %v", err)
	}
}

func TestClient_handleCreateGame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		var req struct {
			Players []string `json:"players"`
			RulesID string   `json:"rules_id"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Players) != 2 || req.Players[0] != "alice" {
			t.Errorf("Players not forwarded: %v", req.Players)
		}

		resp := service.SessionInfo{
			ID:        "ab12",
			RulesName: "classic",
			Players:   req.Players,
			GameState: &engine.GameState{
				Players: []*engine.Player{
					{Name: "alice", Cash: 1500},
					{Name: "bob", Cash: 1500},
				},
				Phase:     engine.PhaseAwaitingRoll,
				RulesName: "classic",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "create_game",
			Arguments: map[string]interface{}{
				"players": []interface{}{"alice", "bob"},
			},
		},
	}

	result, err := client.handleCreateGame(ctx, request)
	if err != nil {
		t.Fatalf("handleCreateGame failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "alice") {
		t.Errorf("Expected player names in result, got: %s", resultStr.Text)
	}
}

func TestClient_handlePlayTurn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sessions/ab12/roll" {
			t.Errorf("Expected roll path, got %s", r.URL.Path)
		}

		space := engine.SpaceAt(14)
		resp := service.TurnResult{
			Player:   "alice",
			Dice:     [2]int{6, 2},
			LandedOn: &space,
			GameState: &engine.GameState{
				Players: []*engine.Player{{Name: "alice", Cash: 1500, Position: 14}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "play_turn",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"player":     "alice",
				"action":     "roll",
				"intent":     "opening roll",
			},
		},
	}

	result, err := client.handlePlayTurn(context.Background(), request)
	if err != nil {
		t.Fatalf("handlePlayTurn failed: %v", err)
	}

	resultStr := result.Content[0].(mcp.TextContent)
	if !strings.Contains(resultStr.Text, "rolled 6+2") {
		t.Errorf("Expected dice in result, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "Virginia Avenue") {
		t.Errorf("Expected landed space in result, got: %s", resultStr.Text)
	}
}

func TestClient_handlePlayTurn_UnknownAction(t *testing.T) {
	client := NewClient("http://localhost:8080")

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "play_turn",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"player":     "alice",
				"action":     "teleport",
			},
		},
	}

	result, err := client.handlePlayTurn(context.Background(), request)
	if err != nil {
		t.Fatalf("handlePlayTurn failed: %v", err)
	}

	if !result.IsError {
		t.Error("Expected error result for unknown action")
	}
}

func TestClient_handleDeclineProperty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Player string         `json:"player"`
			Bids   map[string]int `json:"bids"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Bids["bob"] != 120 {
			t.Errorf("Bids not forwarded: %v", req.Bids)
		}

		resp := service.PurchaseResult{
			Position:  39,
			Property:  "Boardwalk",
			Buyer:     "bob",
			Price:     120,
			Sold:      true,
			GameState: &engine.GameState{},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "decline_property",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"player":     "alice",
				"bids":       map[string]interface{}{"bob": float64(120)},
			},
		},
	}

	result, err := client.handleDeclineProperty(context.Background(), request)
	if err != nil {
		t.Fatalf("handleDeclineProperty failed: %v", err)
	}

	resultStr := result.Content[0].(mcp.TextContent)
	if !strings.Contains(resultStr.Text, "bob bought Boardwalk") {
		t.Errorf("Expected auction result, got: %s", resultStr.Text)
	}
}

func TestFormatGameState(t *testing.T) {
	gameState := &engine.GameState{
		Players: []*engine.Player{
			{Name: "alice", Cash: 1320, Position: 24, Properties: []int{24, 26}},
			{Name: "bob", Cash: 900, Position: 10, InJail: true, JailTurns: 1},
		},
		Current:   0,
		Phase:     engine.PhaseAwaitingRoll,
		LastDice:  [2]int{3, 4},
		HousePool: 30,
		HotelPool: 12,
		TurnCount: 9,
		RulesName: "classic",
	}

	result := formatGameState(gameState)

	expectedFields := []string{
		"Turn 9",
		"Last dice: 3+4",
		"▶ alice: $1320",
		"Illinois Avenue",
		"[IN JAIL 1]",
		"30 houses, 12 hotels remaining",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_PendingPurchase(t *testing.T) {
	gameState := &engine.GameState{
		Players: []*engine.Player{
			{Name: "alice", Cash: 1500, Position: 39},
			{Name: "bob", Cash: 1500},
		},
		Phase:           engine.PhaseAwaitingPurchase,
		PendingPurchase: 39,
	}

	result := formatGameState(gameState)

	if !strings.Contains(result, "Pending purchase: Boardwalk") {
		t.Errorf("Expected pending purchase in result, got: %s", result)
	}
}

func TestFormatGameState_GameOver(t *testing.T) {
	gameState := &engine.GameState{
		Players: []*engine.Player{
			{Name: "alice", Cash: 3200},
			{Name: "bob", Bankrupt: true},
		},
		GameOver: true,
		Winner:   "alice",
	}

	result := formatGameState(gameState)

	if !strings.Contains(result, "GAME OVER") || !strings.Contains(result, "alice") {
		t.Errorf("Expected winner announcement, got: %s", result)
	}
	if !strings.Contains(result, "[BANKRUPT]") {
		t.Errorf("Expected bankrupt marker, got: %s", result)
	}
}

func TestFormatDeedLine(t *testing.T) {
	line := formatDeedLine(engine.PropertyDetail{
		Position:      39,
		Name:          "Boardwalk",
		Buildings:     engine.HotelLevel,
		CurrentRent:   2000,
		MortgageValue: 200,
		FullGroup:     true,
	})

	for _, want := range []string{"Boardwalk", "[HOTEL]", "[full group]", "$2000"} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected '%s' in deed line, got: %s", want, line)
		}
	}

	line = formatDeedLine(engine.PropertyDetail{
		Position:  1,
		Name:      "Mediterranean Avenue",
		Mortgaged: true,
	})
	if !strings.Contains(line, "[MORTGAGED]") {
		t.Errorf("Expected mortgage flag, got: %s", line)
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"GAME OBJECTIVE:",
		"TURN FLOW:",
		"JAIL:",
		"PROPERTY AND RENT:",
		"AUCTIONS:",
		"BUILDING:",
		"MORTGAGE:",
		"TRADING:",
		"BANKRUPTCY:",
		"VICTORY:",
		"SESSION MANAGEMENT:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
