package server

import (
	"net/http"

	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/scrapbook"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// relatedIdeaLimit caps the scrapbook titles passed to the model as context.
const relatedIdeaLimit = 10

// errAssistantUnavailable is returned by AI routes when no gateway is configured.
var errAssistantUnavailable = errors.New("AI gateway is not configured")

// prepareAI checks that an assistant is available and decodes the request body.
func (s *Server) prepareAI(w http.ResponseWriter, r *http.Request, req interface{}) (err error) {
	if s.assistant == nil {
		err = errAssistantUnavailable
		return err
	}

	err = decode(w, r, req)
	return err
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	var req llm.CalendarRequest
	if err := s.prepareAI(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.Niche == "" {
		req.Niche = s.profile.Niche
	}
	if len(req.Platforms) == 0 {
		req.Platforms = s.profile.PlatformNames()
	}
	if req.Audience == "" {
		req.Audience = s.profile.Audience
	}
	if req.Tone == "" {
		req.Tone = s.profile.Tone
	}
	if len(req.Ideas) == 0 {
		req.Ideas = s.scrapbookTitles(r, scrapbook.Filter{FavoritesOnly: true})
	}

	resp, err := s.assistant.GenerateCalendar(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSuggestIdeas(w http.ResponseWriter, r *http.Request) {
	var req llm.IdeasRequest
	if err := s.prepareAI(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.Niche == "" {
		req.Niche = s.profile.Niche
	}

	if len(req.Existing) == 0 {
		ideas, err := s.store.ListIdeas()
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		topic := req.Topic
		if topic == "" {
			topic = req.Niche
		}
		req.Existing = scrapbook.Titles(s.retriever.Related(ideas, topic, nil, relatedIdeaLimit))
	}

	resp, err := s.assistant.SuggestIdeas(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRescript(w http.ResponseWriter, r *http.Request) {
	var req llm.RescriptRequest
	if err := s.prepareAI(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.Tone == "" {
		req.Tone = s.profile.Tone
	}

	resp, err := s.assistant.Rescript(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateWebsite(w http.ResponseWriter, r *http.Request) {
	var req llm.WebsiteRequest
	if err := s.prepareAI(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.Name == "" {
		req.Name = s.profile.Name
	}
	if req.Niche == "" {
		req.Niche = s.profile.Niche
	}
	if req.Description == "" {
		req.Description = s.profile.Bio
	}
	if len(req.Offerings) == 0 {
		req.Offerings = s.profile.Offerings
	}

	page, err := s.assistant.GenerateWebsite(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handlePitch(w http.ResponseWriter, r *http.Request) {
	var req llm.PitchRequest
	if err := s.prepareAI(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.CreatorName == "" {
		req.CreatorName = s.profile.Name
	}
	if req.Niche == "" {
		req.Niche = s.profile.Niche
	}
	if req.Audience == "" {
		req.Audience = s.profile.Audience
	}
	if req.Followers == 0 {
		req.Followers = s.profile.TotalFollowers()
	}
	if len(req.Platforms) == 0 {
		req.Platforms = s.profile.PlatformNames()
	}

	resp, err := s.assistant.DraftPitch(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCollabAnalysis(w http.ResponseWriter, r *http.Request) {
	var req llm.CollabAnalysisRequest
	if err := s.prepareAI(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.Niche == "" {
		req.Niche = s.profile.Niche
	}
	if req.Audience == "" {
		req.Audience = s.profile.Audience
	}
	if req.Followers == 0 {
		req.Followers = s.profile.TotalFollowers()
	}

	resp, err := s.assistant.AnalyzeCollab(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// scrapbookTitles lists the titles of stored ideas matching f. Lookup failures only drop context.
func (s *Server) scrapbookTitles(r *http.Request, f scrapbook.Filter) (titles []string) {
	ideas, err := s.store.ListIdeas()
	if err != nil {
		s.logger.Warn("failed to load scrapbook", zap.String("path", r.URL.Path), zap.Error(err))
		return titles
	}

	for _, idea := range scrapbook.Apply(ideas, f) {
		titles = append(titles, idea.Title)
	}
	return titles
}
