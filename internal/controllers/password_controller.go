package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ciphersafe-be/internal/middleware"
	"ciphersafe-be/internal/models"
	"ciphersafe-be/internal/service"
)

type PasswordController struct {
	passwordService service.PasswordService
}

func NewPasswordController(passwordService service.PasswordService) *PasswordController {
	return &PasswordController{
		passwordService: passwordService,
	}
}

// List handles GET /passwords - returns all entries for the authenticated user
func (pc *PasswordController) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	entries, err := pc.passwordService.List(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Create handles POST /passwords
func (pc *PasswordController) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var req models.SavePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	entry, err := pc.passwordService.Create(userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Update handles PUT /passwords/:id
func (pc *PasswordController) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.SavePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	entry, err := pc.passwordService.Update(id, userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /passwords/:id
func (pc *PasswordController) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := pc.passwordService.Delete(id, userID); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password deleted successfully",
	})
}

// TouchLastUsed handles PATCH /passwords/:id/last-used - stamps last_used
// when the client consumes a secret. Fire-and-forget so the copy flow is
// never blocked on the write.
func (pc *PasswordController) TouchLastUsed(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	go func() {
		if err := pc.passwordService.TouchLastUsed(id, userID); err != nil {
			log.Printf("Warning: failed to update last used for entry %d: %v", id, err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Last used update scheduled",
	})
}
