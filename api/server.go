package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/wricardo/mcp-training/monopoly/game/engine"
	"github.com/wricardo/mcp-training/monopoly/game/service"
	"github.com/wricardo/mcp-training/monopoly/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.GameService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// API routes with clean REST patterns
	api := s.router.PathPrefix("/api").Subrouter()

	// Session management
	api.HandleFunc("/sessions", s.handleCreateSession).Methods("POST")
	api.HandleFunc("/sessions", s.handleListSessions).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods("DELETE")

	// Turn operations
	api.HandleFunc("/sessions/{id}/state", s.handleGetGameState).Methods("GET")
	api.HandleFunc("/sessions/{id}/roll", s.handleRoll).Methods("POST")
	api.HandleFunc("/sessions/{id}/jail/pay", s.handlePayJailFine).Methods("POST")
	api.HandleFunc("/sessions/{id}/jail/card", s.handleUseJailCard).Methods("POST")

	// Purchase decision
	api.HandleFunc("/sessions/{id}/buy", s.handleBuy).Methods("POST")
	api.HandleFunc("/sessions/{id}/decline", s.handleDecline).Methods("POST")

	// Asset management
	api.HandleFunc("/sessions/{id}/build", s.handleBuild).Methods("POST")
	api.HandleFunc("/sessions/{id}/sell-building", s.handleSellBuilding).Methods("POST")
	api.HandleFunc("/sessions/{id}/mortgage", s.handleMortgage).Methods("POST")
	api.HandleFunc("/sessions/{id}/unmortgage", s.handleUnmortgage).Methods("POST")
	api.HandleFunc("/sessions/{id}/trade", s.handleTrade).Methods("POST")

	// Views
	api.HandleFunc("/sessions/{id}/players/{player}/properties", s.handlePlayerProperties).Methods("GET")
	api.HandleFunc("/board", s.handleBoard).Methods("GET")

	// Rules
	api.HandleFunc("/rules", s.handleListRules).Methods("GET")
	api.HandleFunc("/rules", s.handleCreateRules).Methods("POST")
	api.HandleFunc("/rules/{name}", s.handleGetRules).Methods("GET")

	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps engine errors to HTTP status codes. Rule
// violations are conflicts, unknown names are not-found, anything else
// is a server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, engine.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrNotCurrentPlayer),
		errors.Is(err, engine.ErrInvalidPhase),
		errors.Is(err, engine.ErrInsufficientFunds),
		errors.Is(err, engine.ErrPropertyAlreadyOwned),
		errors.Is(err, engine.ErrPropertyNotOwnable),
		errors.Is(err, engine.ErrBuildingRule),
		errors.Is(err, engine.ErrInvalidTrade),
		errors.Is(err, engine.ErrInvalidPlayerCount),
		errors.Is(err, engine.ErrGameOver):
		return http.StatusConflict
	case strings.Contains(err.Error(), "session not found"):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Session Handlers

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Players []string `json:"players"`
		RulesID string   `json:"rules_id,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := s.service.CreateSession(r.Context(), req.Players, req.RulesID)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	fmt.Printf("[SESSION] created id=%s rules=%s players=%v\n", session.ID, session.RulesName, session.Players)
	respondJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.service.ListSessions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Parse query parameters
	query := r.URL.Query()
	sortBy := query.Get("sort")    // "created", "accessed" (default)
	order := query.Get("order")    // "asc", "desc" (default: "desc")
	limitStr := query.Get("limit") // number of sessions to return

	if sortBy == "" {
		sortBy = "accessed"
	}
	if order == "" {
		order = "desc"
	}

	sort.Slice(sessions, func(i, j int) bool {
		var ti, tj time.Time
		if sortBy == "created" {
			ti, tj = sessions[i].CreatedAt, sessions[j].CreatedAt
		} else { // "accessed"
			ti, tj = sessions[i].LastAccessedAt, sessions[j].LastAccessedAt
		}

		if order == "asc" {
			return ti.Before(tj)
		}
		return ti.After(tj) // desc
	})

	limit := len(sessions)
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(sessions) {
			limit = l
		}
	}
	sessions = sessions[:limit]

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(sessions),
		"sessions": sessions,
		"sort":     sortBy,
		"order":    order,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	session, err := s.service.GetSession(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := s.service.DeleteSession(r.Context(), sessionID); err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Session %s deleted", sessionID),
	})
}

// Turn Handlers

func (s *Server) handleGetGameState(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	state, err := s.service.GetGameState(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, state)
}

type playerRequest struct {
	Player string `json:"player"`
}

func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.Roll(r.Context(), sessionID, req.Player)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	s.broadcast(sessionID, result.GameState)

	// Compact server log for observability
	landed := ""
	if result.LandedOn != nil {
		landed = result.LandedOn.Name
	}
	fmt.Printf("[ROLL] session=%s player=%s dice=%d+%d landed=%q extra=%v\n",
		sessionID, req.Player, result.Dice[0], result.Dice[1], landed, result.ExtraTurn)

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handlePayJailFine(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.PayJailFine(r.Context(), sessionID, req.Player)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	s.broadcast(sessionID, result.GameState)

	fmt.Printf("[JAIL] session=%s player=%s paid fine\n", sessionID, req.Player)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleUseJailCard(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.UseJailCard(r.Context(), sessionID, req.Player)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	s.broadcast(sessionID, result.GameState)

	fmt.Printf("[JAIL] session=%s player=%s used card\n", sessionID, req.Player)
	respondJSON(w, http.StatusOK, result)
}

// Purchase Handlers

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.BuyProperty(r.Context(), sessionID, req.Player)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	s.broadcast(sessionID, result.GameState)

	fmt.Printf("[BUY] session=%s player=%s property=%q price=%d\n",
		sessionID, req.Player, result.Property, result.Price)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleDecline(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req struct {
		Player string         `json:"player"`
		Bids   map[string]int `json:"bids,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.DeclineProperty(r.Context(), sessionID, req.Player, req.Bids)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	s.broadcast(sessionID, result.GameState)

	fmt.Printf("[AUCTION] session=%s property=%q sold=%v buyer=%q price=%d\n",
		sessionID, result.Property, result.Sold, result.Buyer, result.Price)
	respondJSON(w, http.StatusOK, result)
}

// Asset Handlers

type propertyRequest struct {
	Player   string `json:"player"`
	Position int    `json:"position"`
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	s.propertyOp(w, r, "BUILD", s.service.BuildHouse)
}

func (s *Server) handleSellBuilding(w http.ResponseWriter, r *http.Request) {
	s.propertyOp(w, r, "SELL", s.service.SellBuilding)
}

func (s *Server) handleMortgage(w http.ResponseWriter, r *http.Request) {
	s.propertyOp(w, r, "MORTGAGE", s.service.MortgageProperty)
}

func (s *Server) handleUnmortgage(w http.ResponseWriter, r *http.Request) {
	s.propertyOp(w, r, "UNMORTGAGE", s.service.UnmortgageProperty)
}

func (s *Server) propertyOp(w http.ResponseWriter, r *http.Request, tag string, op func(context.Context, string, string, int) (*service.PropertyResult, error)) {
	sessionID := mux.Vars(r)["id"]

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := op(r.Context(), sessionID, req.Player, req.Position)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	s.broadcast(sessionID, result.GameState)

	fmt.Printf("[%s] session=%s player=%s property=%q buildings=%d mortgaged=%v\n",
		tag, sessionID, req.Player, result.Property.Name, result.Property.Buildings, result.Property.Mortgaged)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleTrade(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var offer engine.TradeOffer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.Trade(r.Context(), sessionID, offer)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	s.broadcast(sessionID, result.GameState)

	fmt.Printf("[TRADE] session=%s from=%s to=%s offer=%s\n", sessionID, offer.From, offer.To, result.OfferID)
	respondJSON(w, http.StatusOK, result)
}

// View Handlers

func (s *Server) handlePlayerProperties(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := s.service.GetPlayerProperties(r.Context(), vars["id"], vars["player"])
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"spaces": s.service.BoardCatalog(r.Context()),
	})
}

// Rules Handlers

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := s.service.ListRules(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, rules)
}

func (s *Server) handleGetRules(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(mux.Vars(r)["name"], ".json")

	rules, err := s.service.LoadRules(r.Context(), name)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, rules)
}

func (s *Server) handleCreateRules(w http.ResponseWriter, r *http.Request) {
	var rules engine.Rules
	if err := json.NewDecoder(r.Body).Decode(&rules); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if rules.Name == "" {
		respondError(w, http.StatusBadRequest, "Rules name is required")
		return
	}

	if err := s.service.SaveRules(r.Context(), rules.Name, &rules); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save rules: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Rules saved successfully",
		"rules_id": rules.Name,
	})
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	// Verify session exists
	if _, err := s.service.GetSession(context.Background(), sessionID); err != nil {
		http.Error(w, "Invalid session", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, sessionID)
}

func (s *Server) broadcast(sessionID string, state *engine.GameState) {
	if s.hub != nil {
		s.hub.BroadcastToSession(sessionID, state)
	}
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
