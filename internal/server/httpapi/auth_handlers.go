package httpapi

import (
	"errors"
	"net/http"

	"github.com/commboard/commboard/internal/common"
	"github.com/commboard/commboard/internal/server/auth"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// postLogin verifies credentials and returns both tokens. The refresh token
// additionally travels in an HttpOnly cookie so the refresh endpoint can read
// it without the client handling it in script. The two credential failure
// causes deliberately collapse into one response body; distinguishing them
// would let a caller probe which emails are registered.
func (s *Server) postLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	pair, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnknownUser) || errors.Is(err, common.ErrWrongPassword) {
			c.JSON(http.StatusForbidden, gin.H{"error": "authentication failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.setRefreshCookie(c, pair.RefreshToken, int(s.refreshTokenValidity.Seconds()))
	c.JSON(http.StatusCreated, loginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// postRefresh exchanges the refresh token cookie for a new access token. The
// claimed user id comes from the verified token payload; the service then
// requires the cookie value to match the stored row as well, so neither the
// cookie nor the claim is trusted in isolation.
func (s *Server) postRefresh(c *gin.Context) {
	refreshToken, err := c.Cookie(common.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	claims, err := auth.ParseRefreshToken(refreshToken, s.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accessToken, err := s.auth.Refresh(c.Request.Context(), refreshToken, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, loginResult{AccessToken: accessToken})
}

// postLogout drops the caller's stored refresh token and clears the cookie.
func (s *Server) postLogout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := s.auth.Logout(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.setRefreshCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (s *Server) setRefreshCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(common.RefreshTokenCookieName, value, maxAge, "/", "", false, true)
}
