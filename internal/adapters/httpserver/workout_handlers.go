package httpserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	list, err := s.workouts.ListExercises(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var e domain.Exercise
	if err := decodeJSON(r, &e); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.workouts.CreateExercise(r.Context(), &e); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleListWorkoutPlans(w http.ResponseWriter, r *http.Request) {
	list, err := s.workouts.ListPlans(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		ExerciseIDs []uuid.UUID `json:"exercise_ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	plan := &domain.WorkoutPlan{Name: req.Name, Description: req.Description}
	for _, id := range req.ExerciseIDs {
		plan.Exercises = append(plan.Exercises, domain.Exercise{ID: id})
	}
	if err := s.workouts.CreatePlan(r.Context(), plan); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (s *Server) handleGetWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid plan id")
		return
	}
	plan, err := s.workouts.GetPlan(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleCreateWorkoutLog(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req struct {
		WorkoutPlanID uuid.UUID `json:"workout_plan_id"`
		Date          time.Time `json:"date"`
		DurationMin   int       `json:"duration_min"`
		Notes         string    `json:"notes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	logEntry := &domain.WorkoutLog{
		UserID:        userID,
		WorkoutPlanID: req.WorkoutPlanID,
		Date:          req.Date,
		DurationMin:   req.DurationMin,
		Notes:         req.Notes,
	}
	if err := s.workouts.LogSession(r.Context(), logEntry); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, logEntry)
}

func (s *Server) handleListWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	list, err := s.workouts.ListLogs(r.Context(), userID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
