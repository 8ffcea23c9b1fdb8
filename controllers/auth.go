// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/tenant"
	"salonledger-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Cfg  *config.Config
	Auth *tenant.Authenticator
}

type RegisterInput struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password" binding:"required,min=8"`
	SalonName    string `json:"salon_name"`
	SalonAddress string `json:"salon_address"`
	Timezone     string `json:"timezone"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // email or phone
	Password   string `json:"password" binding:"required"`
}

type SyncProfileInput struct {
	SalonName    string `json:"salon_name"`
	SalonAddress string `json:"salon_address"`
	Timezone     string `json:"timezone"`
}

// Register creates a password-auth account and its salon binding. The
// first-contact path (user plus salon or staff link) is one transaction.
func (a *AuthController) Register(c *gin.Context) {
	if a.Cfg.AuthMode != config.AuthModePassword {
		utils.RespondWithError(c, http.StatusBadRequest, "Registration is handled by the identity provider")
		return
	}

	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if (input.Email == "") == (input.Phone == "") {
		utils.RespondWithError(c, http.StatusBadRequest, "Provide exactly one of email or phone")
		return
	}
	if input.Timezone != "" && !validTimezone(input.Timezone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid timezone")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	var email, phone *string
	if input.Email != "" {
		email = &input.Email
	}
	if input.Phone != "" {
		phone = &input.Phone
	}

	principal, err := a.Auth.Binder().RegisterLocal(email, phone, hashed, &tenant.Registration{
		SalonName:    input.SalonName,
		SalonAddress: input.SalonAddress,
		Timezone:     input.Timezone,
	})
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	token, err := utils.GenerateToken(a.Cfg.JWTSecret, principal.User().ID.String(), a.Cfg.JWTExpiryHours)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	a.setSessionCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user":    principal.User(),
		"role":    principal.Role(),
		"salon":   principal.Salon(),
	})
}

func (a *AuthController) Login(c *gin.Context) {
	if a.Cfg.AuthMode != config.AuthModePassword {
		utils.RespondWithError(c, http.StatusBadRequest, "Login is handled by the identity provider")
		return
	}

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	identifier := strings.TrimSpace(input.Identifier)

	var user models.User
	result := config.DB.Where("email = ? OR phone = ?", identifier, identifier).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(input.Password, *user.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	principal, err := a.Auth.Binder().Resolve(user)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	token, err := utils.GenerateToken(a.Cfg.JWTSecret, user.ID.String(), a.Cfg.JWTExpiryHours)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	a.setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  principal.User(),
		"role":  principal.Role(),
		"salon": principal.Salon(),
	})
}

func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// SyncProfile is the identity-provider first-contact endpoint: it binds
// the verified subject to a local user and salon, creating them if this
// is the first time the subject is seen. Idempotent — a repeat call
// finds the existing binding.
func (a *AuthController) SyncProfile(c *gin.Context) {
	if a.Cfg.AuthMode != config.AuthModeCognito {
		utils.RespondWithError(c, http.StatusBadRequest, "Profile sync requires identity-provider auth")
		return
	}

	tokenString := utils.ExtractToken(c)
	if tokenString == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	claims, err := a.Auth.Verify(tokenString)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var input SyncProfileInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
	}
	if input.Timezone != "" && !validTimezone(input.Timezone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid timezone")
		return
	}

	principal, created, err := a.Auth.Binder().BindSubject(claims, &tenant.Registration{
		SalonName:    input.SalonName,
		SalonAddress: input.SalonAddress,
		Timezone:     input.Timezone,
	})
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, principalSummary(principal))
}

func (a *AuthController) Me(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, principalSummary(p))
}

func (a *AuthController) setSessionCookie(c *gin.Context, token string) {
	maxAge := a.Cfg.JWTExpiryHours * 3600
	c.SetCookie("token", token, maxAge, "/", "", true, true)
}
