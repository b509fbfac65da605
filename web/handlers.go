package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/N0HBDY-code/GOHLS-sub000/controller"
	"github.com/N0HBDY-code/GOHLS-sub000/db"
	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

type errorResponse struct {
	Error       string `json:"error"`
	Remediation string `json:"remediation,omitempty"`
}

// renderError maps store-level sentinel errors onto their HTTP statuses.
// Anything unrecognized uses the fallback status provided by the handler.
func renderError(render *render.Render, w http.ResponseWriter, err error, fallback int) {
	switch {
	case errors.Is(err, db.ErrStoreNotConfigured):
		render.JSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:       "the document store is missing required tables",
			Remediation: "apply schema/schema.sql to the configured database",
		})
	case errors.Is(err, db.ErrTeamNotFound),
		errors.Is(err, db.ErrPlayerNotFound),
		errors.Is(err, db.ErrDraftNotFound),
		errors.Is(err, db.ErrDraftClassNotFound),
		errors.Is(err, db.ErrPickNotFound),
		errors.Is(err, db.ErrHistoryNotFound):
		render.JSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, db.ErrMalformedRecord):
		render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		render.JSON(w, fallback, errorResponse{Error: err.Error()})
	}
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "GOHLS league manager")
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		league := r.URL.Query().Get("league")

		switch view := r.URL.Query().Get("view"); view {
		case "", "division":
			s, err := ctrl.GetStandings(r.Context(), league)
			if err != nil {
				renderError(render, w, err, http.StatusInternalServerError)
				return
			}
			render.JSON(w, http.StatusOK, s)
		case "overall":
			teams, err := ctrl.OverallStandings(r.Context(), league)
			if err != nil {
				renderError(render, w, err, http.StatusInternalServerError)
				return
			}
			render.JSON(w, http.StatusOK, teams)
		case "conference":
			conference := r.URL.Query().Get("conference")
			teams, err := ctrl.ConferenceStandings(r.Context(), league, conference)
			if err != nil {
				renderError(render, w, err, http.StatusBadRequest)
				return
			}
			render.JSON(w, http.StatusOK, teams)
		default:
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "unknown view: " + view})
		}
	}
}

func refreshStandingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		s, err := ctrl.RefreshStandings(r.Context(), r.PostForm.Get("league"))
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, s)
	}
}

func clearCachesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl.ClearCaches()
		render.JSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

func teamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.GetTeams(r.Context())
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := ctrl.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, t)
	}
}

func rosterHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roster, err := ctrl.GetRoster(r.Context(), chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, roster)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ctrl.GetPlayer(r.Context(), chi.URLParam(r, "playerID"))
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func playerHistoryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := ctrl.GetPlayerHistory(r.Context(), chi.URLParam(r, "playerID"))
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, history)
	}
}

func progressionsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progressions, err := ctrl.GetProgressions(r.Context(), chi.URLParam(r, "playerID"))
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, progressions)
	}
}

func playoffStatusesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses, err := ctrl.GetPlayoffStatuses(r.Context(), chi.URLParam(r, "league"))
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, statuses)
	}
}

func setPlayoffStatusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		league := chi.URLParam(r, "league")
		team := r.PostForm.Get("team")
		status := model.PlayoffStatus(r.PostForm.Get("status"))
		if err := ctrl.SetPlayoffStatus(r.Context(), league, team, status); err != nil {
			renderError(render, w, err, http.StatusBadRequest)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"team": team, "status": string(status)})
	}
}

func draftBoardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := seasonParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		board, err := ctrl.GetDraftBoard(r.Context(), season, r.URL.Query().Get("league"))
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, board)
	}
}

func eligiblePlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := seasonParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		sortBy := r.URL.Query().Get("sort")
		reverse := r.URL.Query().Get("reverse") == "true"
		players, err := ctrl.EligibleDraftPlayers(r.Context(), season, sortBy, reverse)
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func draftHistoryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := seasonParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		history, picks, err := ctrl.GetDraftHistory(r.Context(), season)
		if err != nil {
			renderError(render, w, err, http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"draft": history, "picks": picks})
	}
}

func createDraftClassHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		season, err := strconv.Atoi(r.PostForm.Get("season"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "season must be a number"})
			return
		}
		class, err := ctrl.CreateDraftClass(r.Context(), season, r.PostForm.Get("league"))
		if err != nil {
			renderError(render, w, err, http.StatusConflict)
			return
		}
		render.JSON(w, http.StatusCreated, class)
	}
}

func createDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		season, err := strconv.Atoi(r.PostForm.Get("season"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "season must be a number"})
			return
		}
		rounds, err := strconv.Atoi(r.PostForm.Get("rounds"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "rounds must be a number"})
			return
		}
		d, err := ctrl.CreateDraft(r.Context(), season, r.PostForm.Get("league"), rounds)
		if err != nil {
			renderError(render, w, err, http.StatusConflict)
			return
		}
		render.JSON(w, http.StatusCreated, d)
	}
}

func setDraftOrderHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := seasonParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var teams []string
		for _, t := range strings.Split(r.PostForm.Get("teams"), ",") {
			if t = strings.TrimSpace(t); t != "" {
				teams = append(teams, t)
			}
		}
		if err := ctrl.SetDraftOrder(r.Context(), season, r.PostForm.Get("league"), teams); err != nil {
			renderError(render, w, err, http.StatusConflict)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"season": season, "teams": teams})
	}
}

func startDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := seasonParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := ctrl.StartDraft(r.Context(), season, r.PostForm.Get("league")); err != nil {
			renderError(render, w, err, http.StatusConflict)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"season": season, "status": model.DraftInProgress})
	}
}

func makePickHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := seasonParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		pickID := chi.URLParam(r, "pickID")
		playerID := r.PostForm.Get("player")
		if playerID == "" {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "player must be provided"})
			return
		}
		if err := ctrl.MakeDraftPick(r.Context(), season, r.PostForm.Get("league"), pickID, playerID); err != nil {
			renderError(render, w, err, http.StatusConflict)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"pick": pickID, "player": playerID})
	}
}

func endDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := seasonParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := ctrl.EndDraft(r.Context(), season, r.PostForm.Get("league")); err != nil {
			renderError(render, w, err, http.StatusConflict)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"season": season, "status": model.DraftCompleted})
	}
}

func deleteDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := seasonParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		confirmed := r.URL.Query().Get("confirm") == "true"
		if err := ctrl.DeleteDraft(r.Context(), season, r.URL.Query().Get("league"), confirmed); err != nil {
			renderError(render, w, err, http.StatusConflict)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"season": season, "deleted": true})
	}
}

func tradeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		playerA := r.PostForm.Get("playerA")
		playerB := r.PostForm.Get("playerB")
		if err := ctrl.TradePlayers(r.Context(), playerA, playerB); err != nil {
			renderError(render, w, err, http.StatusConflict)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"playerA": playerA, "playerB": playerB})
	}
}

func recordProgressionHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		value, err := strconv.Atoi(r.PostForm.Get("value"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "value must be a number"})
			return
		}
		p, err := ctrl.RecordProgression(r.Context(), chi.URLParam(r, "playerID"), r.PostForm.Get("attribute"), value)
		if err != nil {
			renderError(render, w, err, http.StatusBadRequest)
			return
		}
		render.JSON(w, http.StatusCreated, p)
	}
}

func seasonParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "season"))
}
