package httpserver

import (
	"net/http"
)

// Public content endpoints serve the published view only; drafts are an
// admin concern.

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	list, err := s.content.PublishedArticles(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	a, err := s.content.GetArticle(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	list, err := s.content.PublishedVideos(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetVideo(w http.ResponseWriter, r *http.Request) {
	v, err := s.content.GetVideo(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleListGuides(w http.ResponseWriter, r *http.Request) {
	list, err := s.content.ListGuides(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetGuide(w http.ResponseWriter, r *http.Request) {
	g, err := s.content.GetGuide(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}
