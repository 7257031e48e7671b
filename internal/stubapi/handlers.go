// Package stubapi is an in-memory stand-in for the calculator API. It accepts
// expressions and lists them but never evaluates anything; statuses only move
// when someone posts to /internal/expressions/{id}.
package stubapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"calculator-frontend/internal/types"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusError      = "ERROR"
)

type Store struct {
	mu          sync.RWMutex
	expressions map[string]types.Expression
	order       []string
}

func NewStore() *Store {
	return &Store{expressions: make(map[string]types.Expression)}
}

func (s *Store) ResetState() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expressions = make(map[string]types.Expression)
	s.order = nil
}

// NewRouter mounts the public and internal routes of the store.
func NewRouter(s *Store) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/v1/calculate", s.HandleCalculate).Methods("POST")
	r.HandleFunc("/api/v1/expressions", s.HandleGetExpressions).Methods("GET")
	r.HandleFunc("/api/v1/expressions/{id}", s.HandleGetExpression).Methods("GET")

	r.HandleFunc("/internal/expressions/{id}", s.HandleSetStatus).Methods("POST")

	return r
}

func (s *Store) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req types.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusUnprocessableEntity)
		return
	}

	text := strings.TrimSpace(req.Expression)
	if text == "" {
		http.Error(w, "Invalid expression: empty expression", http.StatusUnprocessableEntity)
		return
	}

	exprID := uuid.New().String()
	expr := types.Expression{
		ID:       types.Field(exprID),
		Original: text,
		Status:   StatusProcessing,
	}

	s.mu.Lock()
	s.expressions[exprID] = expr
	s.order = append(s.order, exprID)
	s.mu.Unlock()

	log.Printf("Accepted expression %s: %s", exprID, text)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(types.CalculateResponse{ID: types.Field(exprID)})
}

func (s *Store) HandleGetExpressions(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expressionsList := make([]types.Expression, 0, len(s.order))
	for _, id := range s.order {
		expressionsList = append(expressionsList, s.expressions[id])
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(types.ExpressionResponse{Expressions: expressionsList})
}

func (s *Store) HandleGetExpression(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.RLock()
	expr, exists := s.expressions[id]
	s.mu.RUnlock()

	if !exists {
		http.Error(w, "Expression not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(types.SingleExpressionResponse{Expression: &expr})
}

func (s *Store) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update types.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil || update.Status == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !s.SetStatus(id, update.Status, update.Result) {
		http.Error(w, "Expression not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// SetStatus updates an expression in place and reports whether it exists.
func (s *Store) SetStatus(id, status string, result types.Field) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expr, exists := s.expressions[id]
	if !exists {
		return false
	}
	expr.Status = status
	expr.Result = result
	s.expressions[id] = expr
	return true
}
