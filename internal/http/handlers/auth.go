package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/http/middleware"
	"busline/internal/repositories"
	"busline/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	user, token, err := deps.Auth.Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, token, err := deps.Auth.Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not authenticated", nil)
		return
	}

	user, err := deps.Auth.Me(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type profileUpdateRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	DisplayName *string `json:"displayName"`
	Phone       *string `json:"phone"`
	PhotoURL    *string `json:"photoUrl"`
}

// PUT /api/auth/profile — email and role are not updatable here.
func UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not authenticated", nil)
		return
	}

	var req profileUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := deps.Auth.UpdateProfile(userID, repositories.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
