package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pr-poehali-dev/major-registration-portal/internal/api/response"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/catalog"
)

// CatalogHandler serves the read-only players and tournaments
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListPlayers handles GET /api/v1/players
func (h *CatalogHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players := h.catalog.ListPlayers()

	resp := make([]response.Player, len(players))
	for i, p := range players {
		resp[i] = response.PlayerFromModel(p)
	}

	response.JSON(w, http.StatusOK, resp)
}

// GetPlayer handles GET /api/v1/players/{id}
func (h *CatalogHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.catalog.GetPlayer(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// GetPlayerStats handles GET /api/v1/players/{id}/stats
func (h *CatalogHandler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	dialog, err := h.catalog.PlayerDialog(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromDialog(dialog))
}

// ListTournaments handles GET /api/v1/tournaments
func (h *CatalogHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments := h.catalog.ListTournaments()

	resp := make([]response.Tournament, len(tournaments))
	for i, t := range tournaments {
		resp[i] = response.TournamentFromModel(t)
	}

	response.JSON(w, http.StatusOK, resp)
}

// GetTournament handles GET /api/v1/tournaments/{id}
func (h *CatalogHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	tournament, err := h.catalog.GetTournament(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TournamentFromModel(*tournament))
}
