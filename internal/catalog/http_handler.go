package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"boardgameapi/internal/httpx"
)

// HTTPHandler exposes the catalog service over HTTP. One method per route;
// each decodes, validates, delegates and serializes independently.
type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /api/boardgames
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.svc.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	if games == nil {
		games = []Game{}
	}
	httpx.WriteJSON(w, http.StatusOK, games)
}

type gameDetailsRequest struct {
	ID int `json:"id_bg"`
}

// Details handles POST /api/game-details
func (h *HTTPHandler) Details(w http.ResponseWriter, r *http.Request) {
	var req gameDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "id_bg is required")
		return
	}

	details, err := h.svc.Details(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Board game not found")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, details)
}

type searchRequest struct {
	Year       string   `json:"year"`
	MinPlayers string   `json:"minPlayers"`
	MaxPlayers string   `json:"maxPlayers"`
	Playtime   string   `json:"playtime"`
	Keywords   []string `json:"keywords"`
}

// Search handles POST /api/search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	games, err := h.svc.Search(r.Context(), SearchFilter{
		Year:       req.Year,
		MinPlayers: req.MinPlayers,
		MaxPlayers: req.MaxPlayers,
		Playtime:   req.Playtime,
		Keywords:   req.Keywords,
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	if games == nil {
		games = []Game{}
	}
	httpx.WriteJSON(w, http.StatusOK, games)
}

// AggregatedDetails handles GET /api/game/{id}
func (h *HTTPHandler) AggregatedDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid game ID")
		return
	}

	details, err := h.svc.AggregatedDetails(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, details)
}

type categorySearchRequest struct {
	Category string `json:"category"`
}

// SearchByCategory handles POST /api/search/category
func (h *HTTPHandler) SearchByCategory(w http.ResponseWriter, r *http.Request) {
	var req categorySearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Category == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Category is required")
		return
	}

	games, err := h.svc.SearchByCategory(r.Context(), req.Category)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	if games == nil {
		games = []Game{}
	}
	httpx.WriteJSON(w, http.StatusOK, games)
}

type designerSearchRequest struct {
	Designer string `json:"designer"`
}

// SearchByDesigner handles POST /api/search/designer
func (h *HTTPHandler) SearchByDesigner(w http.ResponseWriter, r *http.Request) {
	var req designerSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	games, err := h.svc.SearchByDesigner(r.Context(), req.Designer)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	if games == nil {
		games = []Game{}
	}
	httpx.WriteJSON(w, http.StatusOK, games)
}

type rateRequest struct {
	ID     int     `json:"id_bg"`
	Rating float64 `json:"rating"`
}

type rateResponse struct {
	Message    string `json:"message"`
	NewAverage string `json:"newAverage"`
}

// Rate handles POST /api/rate
func (h *HTTPHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input.")
		return
	}

	newAverage, err := h.svc.Rate(r.Context(), req.ID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			httpx.JSONError(w, http.StatusBadRequest, "Invalid input.")
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "Board game not found.")
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "Server error.")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rateResponse{
		Message:    "Rating updated successfully.",
		NewAverage: strconv.FormatFloat(newAverage, 'f', 2, 64),
	})
}

// TopRated handles GET /api/top-rated
func (h *HTTPHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	games, err := h.svc.TopRated(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	if games == nil {
		games = []Game{}
	}
	httpx.WriteJSON(w, http.StatusOK, games)
}

// DeleteLookup handles GET /api/deletebg/{id}
func (h *HTTPHandler) DeleteLookup(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid game ID")
		return
	}

	ref, err := h.svc.DeleteLookup(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Board Game not found.")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ref)
}

// Delete handles DELETE /api/boardgames/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid game ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Error deleting data")
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Board Game and all related data deleted successfully!")
}

type updateGameRequest struct {
	ID            *int    `json:"id_bg" validate:"required"`
	Name          *string `json:"name" validate:"required,notblank"`
	Description   *string `json:"description" validate:"required,notblank"`
	YearPublished *int    `json:"yearpublished" validate:"required"`
	MinPlayers    int     `json:"min_p"`
	MaxPlayers    int     `json:"max_p"`
	PlayingTime   int     `json:"time_p"`
	MinAge        int     `json:"minage"`
	Owned         int     `json:"owned"`
	Designer      string  `json:"designer"`
	Wanting       int     `json:"wanting"`
	ArtworkURL    *string `json:"artwork_url"`
	Publisher     string  `json:"publisher"`
	Category      string  `json:"category"`
	Mechanic      string  `json:"meca_g"`
	UsersRated    int     `json:"user_rating"`
	Average       float64 `json:"average_rating"`
}

// Update handles POST /api/update. Full replace: every scalar column is
// overwritten with the provided value and the relation lists are rewritten.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := ValidateStruct(req); len(errs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Missing required fields: id_bg, name, description, yearpublished")
		return
	}

	game := Game{
		ID:            *req.ID,
		Name:          *req.Name,
		Description:   *req.Description,
		YearPublished: *req.YearPublished,
		MinPlayers:    req.MinPlayers,
		MaxPlayers:    req.MaxPlayers,
		PlayingTime:   req.PlayingTime,
		MinAge:        req.MinAge,
		Owned:         req.Owned,
		Wanting:       req.Wanting,
		ImageURL:      req.ArtworkURL,
		UsersRated:    req.UsersRated,
		Average:       req.Average,
	}

	err := h.svc.Update(r.Context(), game, req.Designer, req.Publisher, req.Category, req.Mechanic)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "An error occurred while updating the game.")
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Game updated successfully!")
}

type addGameRequest struct {
	ID            *int     `json:"bg_id" validate:"required"`
	Title         *string  `json:"title" validate:"required,notblank"`
	Description   *string  `json:"description" validate:"required,notblank"`
	ReleaseDate   *int     `json:"release_date" validate:"required"`
	MinPlayers    *int     `json:"min_p" validate:"required"`
	MaxPlayers    *int     `json:"max_p" validate:"required"`
	PlayingTime   *int     `json:"time_p" validate:"required"`
	MinAge        *int     `json:"minage" validate:"required"`
	Owned         *int     `json:"owned" validate:"required"`
	Designers     []string `json:"designer" validate:"required,min=1"`
	Wanting       *int     `json:"wanting" validate:"required"`
	Publishers    []string `json:"publisher" validate:"required,min=1"`
	Categories    []string `json:"category" validate:"required,min=1"`
	Mechanics     []string `json:"meca_g" validate:"required,min=1"`
	ArtworkURL    *string  `json:"artwork_url"`
	UsersRated    int      `json:"user_rating"`
	Average       float64  `json:"average_rating"`
	ExpansionID   *int     `json:"game_extention_id"`
	ExpansionName *string  `json:"extansion_name"`
}

// Add handles POST /api/add. Validation failures answer with a
// {"message": ...} body naming the first missing field, matching what the
// existing client parses.
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if errs := ValidateStruct(req); len(errs) > 0 {
		httpx.JSONMessage(w, http.StatusBadRequest, errs[0].Message)
		return
	}

	game := Game{
		ID:            *req.ID,
		Name:          *req.Title,
		Description:   *req.Description,
		YearPublished: *req.ReleaseDate,
		MinPlayers:    *req.MinPlayers,
		MaxPlayers:    *req.MaxPlayers,
		PlayingTime:   *req.PlayingTime,
		MinAge:        *req.MinAge,
		Owned:         *req.Owned,
		Wanting:       *req.Wanting,
		ImageURL:      req.ArtworkURL,
		UsersRated:    req.UsersRated,
		Average:       req.Average,
	}
	rel := Relations{
		Designers:  req.Designers,
		Publishers: req.Publishers,
		Categories: req.Categories,
		Mechanics:  req.Mechanics,
	}

	var exp *Expansion
	if req.ExpansionID != nil && req.ExpansionName != nil && *req.ExpansionName != "" {
		exp = &Expansion{ID: *req.ExpansionID, Name: *req.ExpansionName}
	}

	if err := h.svc.Add(r.Context(), game, rel, exp); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Game added via procedure successfully.")
}
