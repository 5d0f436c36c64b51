package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"brewbite-pos/internal/auth"
	"brewbite-pos/internal/engine"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and hands out a JWT.
func (h *Handler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := h.engine.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.writeError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, user.RegistrationType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":             token,
		"username":          user.Username,
		"registration_type": user.RegistrationType,
	})
}

type registerRequest struct {
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password" binding:"required"`
	Contact          string `json:"contact"`
	Email            string `json:"email"`
	RegistrationType string `json:"registration_type" binding:"required"`
	RoleType         string `json:"role_type"`
	CompanyName      string `json:"company_name"`
	CompanyCity      string `json:"company_city"`
	CompanyPhone     string `json:"company_phone"`
	CompanyCategory  string `json:"company_category"`
}

// Register creates a new user account.
func (h *Handler) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := h.engine.RegisterUser(c.Request.Context(), engine.RegisterUserInput{
		Username:         input.Username,
		Password:         input.Password,
		Contact:          input.Contact,
		Email:            input.Email,
		RegistrationType: input.RegistrationType,
		RoleType:         input.RoleType,
		CompanyName:      input.CompanyName,
		CompanyCity:      input.CompanyCity,
		CompanyPhone:     input.CompanyPhone,
		CompanyCategory:  input.CompanyCategory,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUsers lists every user.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.engine.ListUsers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetSuppliers lists users registered as suppliers.
func (h *Handler) GetSuppliers(c *gin.Context) {
	suppliers, err := h.engine.ListSuppliers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// UpdateUser changes a single user field.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	upd, err := engine.UserUpdateForField(req.Field, req.Value)
	if err != nil {
		h.writeError(c, err)
		return
	}

	user, err := h.engine.UpdateUser(c.Request.Context(), uint(id), upd)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user; a supplier's expenses and stock go with it.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.engine.DeleteUser(c.Request.Context(), uint(id)); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
