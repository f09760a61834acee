package handlers

import (
	"errors"
	"net/http"

	"house_hunter/internal/service"

	"github.com/gin-gonic/gin"
)

const livenessMessage = "House Hunter is running"

// registerRequest is the registration payload.
type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
	Email    string `json:"email" binding:"required,email"`
	Number   string `json:"number"`
	Password string `json:"password" binding:"required"`
	Image    string `json:"dp"`
}

// loginRequest is the credentials payload.
type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Liveness probe
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) liveness(c *gin.Context) {
	c.String(http.StatusOK, livenessMessage)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Register user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "New account"
// @Success      200   {object}  map[string]interface{}  "result, token, user"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users [post]
func (h *Handler) registerUser(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Name:     input.Name,
		Role:     input.Role,
		Email:    input.Email,
		Number:   input.Number,
		Password: input.Password,
		Image:    input.Image,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			if h.log != nil {
				h.log.Infow("register_conflict", "email", input.Email)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrEmailTaken.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to register user", "register_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{"insertedId": user.ID},
		"token":  token,
		"user":   user,
	})
}

// @Summary      Look up user by email
// @Tags         auth
// @Produce      json
// @Param        email  query  string  true  "Account email"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user [get]
func (h *Handler) getUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	user, err := h.services.GetUser(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": service.ErrUserNotFound.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load user", "get_user_failed", err, "email", email)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "token, user"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_failed", "email", input.Email)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to login", "login_error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}
