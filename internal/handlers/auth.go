package handlers

import (
	"errors"
	"net/http"

	"github.com/abhishek-8081/Brainly-Backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both sign-up and sign-in.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return false
	}
	return true
}

// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   authCredentials  true  "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      411  {object}  map[string]string  "username already exists"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	if _, err := h.services.SignUp(input.Username, input.Password); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			// 411 is what existing clients expect for a taken username.
			c.JSON(http.StatusLengthRequired, gin.H{"msg": "user already exists"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "signup failed", "sign_up_failed", err,
			"username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "user signed up successfully"})
}

// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   authCredentials  true  "Credentials"
// @Success      200  {object}  map[string]string  "token"
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string  "invalid credentials"
// @Router       /api/v1/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		// Wrong password, unknown user, and store failures all collapse
		// into the same response; nothing is leaked about which it was.
		if h.log != nil {
			h.log.Infow("sign_in_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusForbidden, gin.H{"msg": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
