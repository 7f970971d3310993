package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/nikogura/creatoros/pkg/scrapbook"
	"github.com/pkg/errors"
)

// ideaFilter reads the list filters from the query string.
func ideaFilter(r *http.Request) (f scrapbook.Filter, err error) {
	q := r.URL.Query()

	f = scrapbook.Filter{
		Tag:      q.Get("tag"),
		Platform: q.Get("platform"),
		Query:    q.Get("q"),
	}

	if status := q.Get("status"); status != "" {
		f.Status, err = scrapbook.ParseStatus(status)
		if err != nil {
			err = badRequest(err)
			return f, err
		}
	}

	if favorites := q.Get("favorites"); favorites != "" {
		f.FavoritesOnly, err = strconv.ParseBool(favorites)
		if err != nil {
			err = badRequest(errors.Errorf("favorites must be true or false, got %q", favorites))
			return f, err
		}
	}

	return f, err
}

func (s *Server) handleListIdeas(w http.ResponseWriter, r *http.Request) {
	f, err := ideaFilter(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ideas, err := s.store.ListIdeas()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, scrapbook.Apply(ideas, f))
}

func (s *Server) handleCreateIdea(w http.ResponseWriter, r *http.Request) {
	var idea scrapbook.Idea
	if err := decode(w, r, &idea); err != nil {
		s.writeError(w, r, err)
		return
	}

	idea.ID = ""
	idea.CreatedAt = time.Time{}
	if idea.Status == "" {
		idea.Status = scrapbook.StatusIdea
	}
	if err := idea.Validate(); err != nil {
		s.writeError(w, r, badRequest(err))
		return
	}

	created, err := s.store.CreateIdea(idea)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := s.store.GetIdea(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, idea)
}

func (s *Server) handleUpdateIdea(w http.ResponseWriter, r *http.Request) {
	var idea scrapbook.Idea
	if err := decode(w, r, &idea); err != nil {
		s.writeError(w, r, err)
		return
	}

	idea.ID = mux.Vars(r)["id"]
	if err := idea.Validate(); err != nil {
		s.writeError(w, r, badRequest(err))
		return
	}

	updated, err := s.store.UpdateIdea(idea)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteIdea(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteIdea(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFavoriteIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := s.store.ToggleFavorite(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, idea)
}
