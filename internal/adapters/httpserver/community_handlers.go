package httpserver

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	list, err := s.community.ListPosts(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	post := &domain.ForumPost{UserID: userID, Title: req.Title, Content: req.Content}
	if err := s.community.CreatePost(r.Context(), post); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid post id")
		return
	}
	post, err := s.community.GetPost(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid post id")
		return
	}
	if err := s.community.DeletePost(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid post id")
		return
	}
	list, err := s.community.ListComments(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid post id")
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	comment := &domain.Comment{UserID: userID, PostID: postID, Content: req.Content}
	if err := s.community.AddComment(r.Context(), comment); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
