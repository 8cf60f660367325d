package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mvaldez/fitpulse/internal/domain"
)

const adminCookie = "fp_admin"

func (s *Server) signAdmin(email string, expires int64) string {
	h := hmac.New(sha256.New, s.adminSecret)
	fmt.Fprintf(h, "%s|%d", email, expires)
	return hex.EncodeToString(h.Sum(nil))
}

func (s *Server) adminEmail(r *http.Request) (string, bool) {
	c, err := r.Cookie(adminCookie)
	if err != nil {
		return "", false
	}
	parts := strings.Split(c.Value, "|")
	if len(parts) != 3 {
		return "", false
	}
	email := parts[0]
	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || time.Now().Unix() > expires {
		return "", false
	}
	if !hmac.Equal([]byte(parts[2]), []byte(s.signAdmin(email, expires))) {
		return "", false
	}
	if _, ok := s.adminAllowed[strings.ToLower(email)]; !ok {
		return "", false
	}
	return email, true
}

func (s *Server) requireAdmin(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.adminEmail(r); !ok {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "admin access required"})
			return
		}
		next(w, r)
	})
}

func (s *Server) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if s.oauthCfg == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "google login not configured"})
		return
	}
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{Name: "fp_oauth_state", Value: state, Path: "/", HttpOnly: true, MaxAge: 600})
	http.Redirect(w, r, s.oauthCfg.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if s.oauthCfg == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "google login not configured"})
		return
	}
	stateCookie, err := r.Cookie("fp_oauth_state")
	if err != nil || stateCookie.Value != r.URL.Query().Get("state") {
		badRequest(w, "state mismatch")
		return
	}
	token, err := s.oauthCfg.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		log.Error().Err(err).Msg("oauth exchange")
		badRequest(w, "oauth exchange failed")
		return
	}
	client := s.oauthCfg.Client(r.Context(), token)
	res, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Error().Err(err).Msg("oauth userinfo")
		writeErr(w, err)
		return
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	var info struct {
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.Unmarshal(body, &info); err != nil || info.Email == "" {
		badRequest(w, "could not read account email")
		return
	}
	email := strings.ToLower(info.Email)
	if _, ok := s.adminAllowed[email]; !ok {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "account not allowed"})
		return
	}

	if s.users != nil {
		user, err := s.users.FindByEmail(r.Context(), email)
		if errors.Is(err, domain.ErrNotFound) {
			user = &domain.User{
				ID:        uuid.New(),
				Email:     email,
				Username:  email,
				FirstName: info.GivenName,
				LastName:  info.FamilyName,
			}
		} else if err != nil {
			writeErr(w, err)
			return
		}
		user.IsStaff = true
		if err := s.users.Save(r.Context(), user); err != nil {
			writeErr(w, err)
			return
		}
	}
	expires := time.Now().Add(12 * time.Hour).Unix()
	value := fmt.Sprintf("%s|%d|%s", email, expires, s.signAdmin(email, expires))
	http.SetCookie(w, &http.Cookie{Name: adminCookie, Value: value, Path: "/", HttpOnly: true, MaxAge: 12 * 3600})
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}

type adminProductReq struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	ImageURL    string          `json:"image_url"`
}

func (s *Server) handleAdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req adminProductReq
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	p := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	}
	if err := s.catalog.Create(r.Context(), p); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleAdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	var req adminProductReq
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Stock = req.Stock
	p.CategoryID = req.CategoryID
	p.ImageURL = req.ImageURL
	if err := s.catalog.Update(r.Context(), p); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleAdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := s.catalog.Delete(r.Context(), p.ID); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdminRestock(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.catalog.Restock(r.Context(), p.ID, req.Quantity); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var c domain.Category
	if err := decodeJSON(r, &c); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.catalog.CreateCategory(r.Context(), &c); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// handleAdminExportProducts streams the full catalog as an xlsx workbook.
func (s *Server) handleAdminExportProducts(w http.ResponseWriter, r *http.Request) {
	list, _, err := s.catalog.List(r.Context(), domain.ProductFilter{PageSize: 10000})
	if err != nil {
		writeErr(w, err)
		return
	}
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Products"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"Slug", "Name", "Description", "Price", "Stock", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, p := range list {
		values := []interface{}{p.Slug, p.Name, p.Description, p.Price.InexactFloat64(), p.Stock, p.CreatedAt.Format(time.RFC3339)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="products.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("xlsx export")
	}
}

func (s *Server) handleAdminCreateArticle(w http.ResponseWriter, r *http.Request) {
	var a domain.Article
	if err := decodeJSON(r, &a); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.content.CreateArticle(r.Context(), &a); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleAdminPublishArticle(w http.ResponseWriter, r *http.Request) {
	a, err := s.content.PublishArticle(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleAdminCreateVideo(w http.ResponseWriter, r *http.Request) {
	var v domain.Video
	if err := decodeJSON(r, &v); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	// Prefill title and thumbnail from the page when the client sent only
	// a URL.
	if s.videoMeta != nil && v.URL != "" && (v.Title == "" || v.Thumbnail == "") {
		title, thumb, err := s.videoMeta.Fetch(v.URL)
		if err != nil {
			log.Warn().Err(err).Str("url", v.URL).Msg("video metadata fetch failed")
		} else {
			if v.Title == "" {
				v.Title = title
			}
			if v.Thumbnail == "" {
				v.Thumbnail = thumb
			}
		}
	}
	if err := s.content.CreateVideo(r.Context(), &v); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) handleAdminPublishVideo(w http.ResponseWriter, r *http.Request) {
	v, err := s.content.PublishVideo(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleAdminCreateGuide(w http.ResponseWriter, r *http.Request) {
	var g domain.ExerciseGuide
	if err := decodeJSON(r, &g); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.content.CreateGuide(r.Context(), &g); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleAdminDescribe(w http.ResponseWriter, r *http.Request) {
	if s.enricher == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "description enrichment not configured"})
		return
	}
	var req struct {
		Name string `json:"name"`
		Hint string `json:"hint"`
	}
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		badRequest(w, "name is required")
		return
	}
	text, err := s.enricher.Describe(req.Name, req.Hint)
	if err != nil {
		log.Error().Err(err).Msg("describe")
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"description": text})
}
