package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movievault/internal/domain"
)

type createTeamRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type removeMemberRequest struct {
	Name string `json:"name"`
}

// TeamResponse pads the roster to exactly domain.TeamCapacity slots so
// fixed-size clients can render empty positions.
type TeamResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Members []*domain.Member `json:"members"`
}

func (h *Handler) createTeam(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := h.teams.Create(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "team created successfully", teamToResponse(*team))
}

func (h *Handler) getTeam(c *gin.Context) {
	team, err := h.teams.Get(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "team fetched successfully", teamToResponse(*team))
}

func (h *Handler) addTeamMember(c *gin.Context) {
	var member domain.Member
	if err := c.ShouldBindJSON(&member); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.teams.AddMember(c.Request.Context(), c.Param("teamId"), member); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "member added successfully", nil)
}

func (h *Handler) removeTeamMember(c *gin.Context) {
	var req removeMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.teams.RemoveMemberByName(c.Request.Context(), c.Param("teamId"), req.Name); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "member removed successfully", nil)
}

func teamToResponse(team domain.Team) TeamResponse {
	members := make([]*domain.Member, domain.TeamCapacity)
	for i := range team.Members {
		if i >= domain.TeamCapacity {
			break
		}
		m := team.Members[i]
		members[i] = &m
	}
	return TeamResponse{
		ID:      team.ID,
		Name:    team.Name,
		Members: members,
	}
}
