package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Name)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "login successful", gin.H{"token": token})
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "register successful", userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// me resolves the caller from the verified token's subject claim.
func (h *Handler) me(c *gin.Context) {
	claims, ok := identity(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "missing identity")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), claims.Subject)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "user fetched successfully", userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
