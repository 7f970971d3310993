package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nikogura/creatoros/pkg/publish"
	"github.com/nikogura/creatoros/pkg/sanitize"
	"github.com/nikogura/creatoros/pkg/store"
	"github.com/nikogura/creatoros/pkg/website"
)

// handleRenderWebsite previews a page description without saving it.
func (s *Server) handleRenderWebsite(w http.ResponseWriter, r *http.Request) {
	var page website.PageDescription
	if err := decode(w, r, &page); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeHTML(w, http.StatusOK, website.Render(sanitize.Page(page)))
}

func (s *Server) handleSaveWebsite(w http.ResponseWriter, r *http.Request) {
	var site store.Website
	if err := decode(w, r, &site); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := site.Page.Validate(); err != nil {
		s.writeError(w, r, badRequest(err))
		return
	}

	saved, err := s.store.SaveWebsite(site)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListWebsites(w http.ResponseWriter, r *http.Request) {
	sites, err := s.store.ListWebsites()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sites)
}

func (s *Server) handleGetWebsite(w http.ResponseWriter, r *http.Request) {
	site, err := s.store.GetWebsite(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, site)
}

func (s *Server) handleDeleteWebsite(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteWebsite(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDownloadWebsite(w http.ResponseWriter, r *http.Request) {
	site, err := s.store.GetWebsite(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, publish.Filename(site.Slug)))
	writeHTML(w, http.StatusOK, site.HTML)
}

// handleServeSite serves a published site by slug.
func (s *Server) handleServeSite(w http.ResponseWriter, r *http.Request) {
	site, err := s.store.GetWebsiteBySlug(mux.Vars(r)["slug"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeHTML(w, http.StatusOK, site.HTML)
}
