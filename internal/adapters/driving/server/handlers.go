package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/custodia-labs/recipe-book/internal/adapters/wire"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Timestamp: time.Now().UTC()})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.catalogue.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, wire.FromRecipes(recipes))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.decodeDraft(w, r)
	if !ok {
		return
	}
	recipe, err := s.catalogue.Create(r.Context(), draft.RecipeDraft())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, wire.FromRecipe(recipe))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.decodeDraft(w, r)
	if !ok {
		return
	}
	recipe, err := s.catalogue.Update(r.Context(), r.PathValue("id"), draft.RecipeDraft())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, wire.FromRecipe(recipe))
}

// handleDelete responds with the deleted record.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	recipe, err := s.catalogue.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := s.catalogue.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, wire.FromRecipe(recipe))
}

func (s *Server) decodeDraft(w http.ResponseWriter, r *http.Request) (wire.Draft, bool) {
	var draft wire.Draft
	body := http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&draft); err != nil {
		msg := "Malformed JSON body"
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			msg = "Request body too large"
		}
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, msg)
		return wire.Draft{}, false
	}
	return draft, true
}
