package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mvaldez/fitpulse/internal/domain"
)

func (s *Server) handleListMeasurements(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	list, err := s.fitness.ListByUser(r.Context(), userID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]map[string]interface{}, 0, len(list))
	for i := range list {
		out = append(out, measurementView(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateMeasurement(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req struct {
		HeightCM    float64    `json:"height_cm"`
		WeightKG    float64    `json:"weight_kg"`
		Gender      string     `json:"gender"`
		DateOfBirth *time.Time `json:"date_of_birth"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	m := &domain.FitnessMeasurement{
		UserID:      userID,
		HeightCM:    req.HeightCM,
		WeightKG:    req.WeightKG,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	}
	if err := s.fitness.Record(r.Context(), m); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, measurementView(m))
}

func measurementView(m *domain.FitnessMeasurement) map[string]interface{} {
	return map[string]interface{}{
		"id":           m.ID,
		"user_id":      m.UserID,
		"height_cm":    m.HeightCM,
		"weight_kg":    m.WeightKG,
		"gender":       m.Gender,
		"bmi":          m.BMI(),
		"bmi_category": m.BMICategory(),
		"bsa":          m.BSA(),
		"created_at":   m.CreatedAt,
	}
}

func (s *Server) handleBMITool(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	height, err1 := strconv.ParseFloat(q.Get("height_cm"), 64)
	weight, err2 := strconv.ParseFloat(q.Get("weight_kg"), 64)
	if err1 != nil || err2 != nil {
		badRequest(w, "height_cm and weight_kg query parameters are required")
		return
	}
	errs := domain.FieldErrors{}
	if height <= 0 {
		errs.Add("height_cm", "height must be a positive number")
	}
	if weight <= 0 {
		errs.Add("weight_kg", "weight must be a positive number")
	}
	if err := errs.OrNil(); err != nil {
		writeErr(w, err)
		return
	}
	bmi := domain.BMI(height, weight)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bmi":      bmi,
		"category": domain.BMICategory(bmi),
		"bsa":      domain.BSA(height, weight),
	})
}

func (s *Server) handleCaloriesTool(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	age, _ := strconv.Atoi(q.Get("age"))
	weight, _ := strconv.ParseFloat(q.Get("weight_kg"), 64)
	height, _ := strconv.ParseFloat(q.Get("height_cm"), 64)
	profile := &domain.CalorieProfile{
		Gender:        q.Get("gender"),
		Age:           age,
		WeightKG:      weight,
		HeightCM:      height,
		ActivityLevel: domain.ActivityLevel(q.Get("activity_level")),
	}
	calories, err := s.nutrition.DailyCalories(profile)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"daily_calories": calories})
}
