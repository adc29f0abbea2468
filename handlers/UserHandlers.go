package handlers

import (
	"backend/models"
	"backend/storage"
	"backend/utils"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// CreateUser creates a new user account
// @Summary Create user
// @Description Register a new user with a bcrypt-hashed password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body object true "User creation request"
// @Success 201 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/create_user [post]
func CreateUser(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email       string `json:"email" binding:"required"`
			Password    string `json:"password" binding:"required"`
			FirstName   string `json:"first_name" binding:"required"`
			LastName    string `json:"last_name"`
			CompanyName string `json:"company_name"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		var id int
		err = db.QueryRow(
			`INSERT INTO users (email, password, first_name, last_name, company_name, created_at, updated_at)
			 VALUES (LOWER($1), $2, $3, $4, $5, $6, $7) RETURNING id`,
			strings.TrimSpace(input.Email), hashed, input.FirstName, input.LastName,
			input.CompanyName, time.Now(), time.Now(),
		).Scan(&id)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "details": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User created successfully",
			"user": gin.H{
				"id":    id,
				"email": strings.ToLower(strings.TrimSpace(input.Email)),
			},
		})
	}
}

// GetUserFromSession returns the user behind the current session
// @Summary Get current user
// @Description Resolve the Authorization session token to its user record
// @Tags Users
// @Produce json
// @Param Authorization header string true "Session token"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/get_user [get]
func GetUserFromSession(c *gin.Context) {
	db := storage.GetDB()

	sessionID := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id header is missing"})
		return
	}

	user, err := storage.GetUserBySessionID(db, sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.User{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		IsAdmin:     user.IsAdmin,
		Suspended:   user.Suspended,
		CompanyName: user.CompanyName,
	})
}
