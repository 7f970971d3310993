package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/nikogura/creatoros/pkg/collab"
)

type statusRequest struct {
	Status string `json:"status"`
}

// handleListCollabs lists collaborations oldest first, or best first with ?sort=score.
func (s *Server) handleListCollabs(w http.ResponseWriter, r *http.Request) {
	collabs, err := s.store.ListCollabs()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("sort") == "score" {
		collabs = s.scorer.Rank(collabs, s.profile)
	}

	writeJSON(w, http.StatusOK, collabs)
}

func (s *Server) handleCreateCollab(w http.ResponseWriter, r *http.Request) {
	var c collab.Collaboration
	if err := decode(w, r, &c); err != nil {
		s.writeError(w, r, err)
		return
	}

	c.ID = ""
	c.CreatedAt = time.Time{}
	c.Status = collab.StatusInbox
	if c.Currency == "" {
		c.Currency = "USD"
	}
	if err := c.Validate(); err != nil {
		s.writeError(w, r, badRequest(err))
		return
	}

	c.Score = s.scorer.Score(c, s.profile).Total

	created, err := s.store.CreateCollab(c)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetCollab(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetCollab(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCollab(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteCollab(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCollabStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	status, err := collab.ParseStatus(req.Status)
	if err != nil {
		s.writeError(w, r, badRequest(err))
		return
	}

	c, err := s.store.UpdateCollabStatus(mux.Vars(r)["id"], status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}
