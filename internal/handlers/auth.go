package handlers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/bhulekh-dev/bhulekh/db"
	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
	"github.com/bhulekh-dev/bhulekh/internal/auth"
	"github.com/bhulekh-dev/bhulekh/internal/middleware"
	"github.com/bhulekh-dev/bhulekh/internal/models"
	"github.com/bhulekh-dev/bhulekh/internal/types"
	"github.com/bhulekh-dev/bhulekh/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// DefaultProjectName is the project seeded for every new account.
const DefaultProjectName = "मेरा प्रोजेक्ट"

var (
	Domain = os.Getenv("DOMAIN")
)

// Register creates the account, seeds its first project and signs the user in.
func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ईमेल और पासवर्ड आवश्यक हैं"})
		return
	}

	if len(req.Password) < 6 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "पासवर्ड कम से कम 6 अक्षर का होना चाहिए"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "यह ईमेल एड्रेस पहले से रजिस्टर है"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.Logger(ctx).Error("checking existing user failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "रजिस्ट्रेशन में त्रुटि हुई"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		middleware.Logger(ctx).Error("hashing password failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "रजिस्ट्रेशन में त्रुटि हुई"})
		return
	}

	newUser := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "यह ईमेल एड्रेस पहले से रजिस्टर है"})
			return
		}
		middleware.Logger(ctx).Error("creating user failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "रजिस्ट्रेशन में त्रुटि हुई"})
		return
	}

	if _, err := aggregate.CreateProject(db.DB, newUser.ID, DefaultProjectName); err != nil {
		middleware.Logger(ctx).Error("seeding default project failed", "user_id", newUser.ID, "error", err)
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email)

	if err != nil {
		middleware.Logger(ctx).Error("generating token failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "रजिस्ट्रेशन में त्रुटि हुई"})
		return
	}

	setSessionCookie(ctx, token)

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "अकाउंट सफलतापूर्वक बनाया गया",
		"user": types.UserResponse{
			ID:    newUser.ID,
			Name:  newUser.Name,
			Email: newUser.Email,
		},
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ईमेल और पासवर्ड आवश्यक हैं"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := db.DB.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "यह ईमेल एड्रेस रजिस्टर नहीं है"})
			return
		}
		middleware.Logger(ctx).Error("fetching user failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "लॉगिन में त्रुटि हुई"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "गलत पासवर्ड"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		middleware.Logger(ctx).Error("generating token failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "लॉगिन में त्रुटि हुई"})
		return
	}

	setSessionCookie(ctx, token)

	ctx.JSON(http.StatusOK, gin.H{
		"message": "लॉगिन सफल",
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func Logout(ctx *gin.Context) {
	clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, gin.H{"message": "लॉगआउट सफल"})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    currentUser.ID,
			Name:  currentUser.Name,
			Email: currentUser.Email,
		},
	})
}

// UpdateUser changes name, email or password. A password change requires the
// current password.
func UpdateUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var dbUser models.User
	if err := db.DB.First(&dbUser, currentUser.ID).Error; err != nil {
		middleware.Logger(ctx).Error("fetching user failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "अकाउंट अपडेट करने में विफल"})
		return
	}

	var req UpdateUserRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "अमान्य अनुरोध"})
		return
	}

	updates := make(map[string]interface{})

	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}

	if req.Email != "" {
		newEmail := strings.ToLower(strings.TrimSpace(req.Email))

		if newEmail != dbUser.Email {
			var existing models.User
			err := db.DB.Where("email = ? AND id != ?", newEmail, dbUser.ID).First(&existing).Error
			if err == nil {
				ctx.JSON(http.StatusConflict, gin.H{"error": "यह ईमेल एड्रेस पहले से रजिस्टर है"})
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				middleware.Logger(ctx).Error("checking existing email failed", "error", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "अकाउंट अपडेट करने में विफल"})
				return
			}
		}

		updates["email"] = newEmail
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "पासवर्ड बदलने के लिए वर्तमान पासवर्ड आवश्यक है"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "गलत पासवर्ड"})
			return
		}

		if len(req.NewPassword) < 6 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "पासवर्ड कम से कम 6 अक्षर का होना चाहिए"})
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			middleware.Logger(ctx).Error("hashing password failed", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "अकाउंट अपडेट करने में विफल"})
			return
		}

		updates["password_hash"] = string(passwordHash)
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "अपडेट करने के लिए कुछ नहीं है"})
		return
	}

	if err := db.DB.Model(&dbUser).Updates(updates).Error; err != nil {
		middleware.Logger(ctx).Error("updating user failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "अकाउंट अपडेट करने में विफल"})
		return
	}

	if err := db.DB.First(&dbUser, dbUser.ID).Error; err != nil {
		middleware.Logger(ctx).Error("refreshing user failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "अकाउंट अपडेट करने में विफल"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    dbUser.ID,
			Name:  dbUser.Name,
			Email: dbUser.Email,
		},
	})
}

func setSessionCookie(ctx *gin.Context, token string) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   int(auth.TokenLifetime.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func clearSessionCookie(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   Domain,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}
