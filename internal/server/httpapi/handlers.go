package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/avoronins/scoreboard/internal/server/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeOK(w)
}

type leaderboardItem struct {
	Username  string    `json:"username"`
	Score     int64     `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type leaderboardResponse struct {
	Game  string            `json:"game"`
	Items []leaderboardItem `json:"items"`
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	game := r.URL.Query().Get("game")
	if game == "" {
		game = "tetris"
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	entries, err := s.leaderboard.Leaderboard(r.Context(), game, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leaderboardResponse{
		Game:  game,
		Items: toItems(entries),
	})
}

func toItems(entries []models.LeaderboardEntry) []leaderboardItem {
	items := make([]leaderboardItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, leaderboardItem{
			Username:  e.Username,
			Score:     e.Score,
			CreatedAt: e.CreatedAt,
		})
	}
	return items
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var in submitScoreIn
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.validate(); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.leaderboard.Submit(r.Context(), *in.Game, in.Score, in.Username, in.Password, in.Email); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w)
}

func (s *Server) handleLinkEmail(w http.ResponseWriter, r *http.Request) {
	var in linkEmailIn
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.validate(); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.credentials.LinkEmail(r.Context(), in.Username, in.Password, in.Email); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w)
}

func (s *Server) handleRecoverID(w http.ResponseWriter, r *http.Request) {
	var in emailIn
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.validate(); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.reset.RecoverUsername(r.Context(), in.Email); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w)
}

func (s *Server) handleRequestReset(w http.ResponseWriter, r *http.Request) {
	var in emailIn
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.validate(); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.reset.RequestReset(r.Context(), in.Email); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w)
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var in resetPasswordIn
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.validate(); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.reset.ConsumeReset(r.Context(), in.Token, in.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
