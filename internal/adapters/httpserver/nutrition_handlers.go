package httpserver

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

func (s *Server) handleListMeals(w http.ResponseWriter, r *http.Request) {
	list, err := s.nutrition.ListMeals(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateMeal(w http.ResponseWriter, r *http.Request) {
	var m domain.Meal
	if err := decodeJSON(r, &m); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.nutrition.CreateMeal(r.Context(), &m); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleListMealPlans(w http.ResponseWriter, r *http.Request) {
	list, err := s.nutrition.ListPlans(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateMealPlan(w http.ResponseWriter, r *http.Request) {
	var p domain.MealPlan
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.nutrition.CreatePlan(r.Context(), &p); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetMealPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid plan id")
		return
	}
	plan, err := s.nutrition.GetPlan(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"plan":           plan,
		"total_calories": plan.TotalCalories(),
		"total_protein":  plan.TotalProtein(),
		"total_carbs":    plan.TotalCarbs(),
		"total_fats":     plan.TotalFats(),
	})
}

func (s *Server) handleAddMealToPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid plan id")
		return
	}
	var req struct {
		MealID   uuid.UUID `json:"meal_id"`
		Position int       `json:"position"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.nutrition.AddMealToPlan(r.Context(), planID, req.MealID, req.Position); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	list, err := s.nutrition.ListRecipes(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	var rec domain.Recipe
	if err := decodeJSON(r, &rec); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.nutrition.CreateRecipe(r.Context(), &rec); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}
