package web

import (
	"net/http"
	"strconv"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userID"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	outfit, err := s.service.GenerateOutfit(r.Context(), userID)
	if err != nil {
		s.logger.Error("outfit generation failed", "user_id", userID, "error", err)
		s.writeDomainError(w, err, "AI stylist failed")
		return
	}

	s.writeJSON(w, http.StatusOK, outfit)
}
