package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"lumen/internal/application/user/usecases"
	"lumen/internal/interfaces/http/middleware"
	"lumen/internal/interfaces/http/oauthstate"
	"lumen/internal/shared/errors"
	"lumen/internal/shared/logger"
	"lumen/internal/shared/utils"
)

type AuthHandler struct {
	initiateOAuthUseCase initiateOAuthLoginUseCase
	handleOAuthUseCase   handleOAuthCallbackUseCase
	getCurrentUseCase    getCurrentUserUseCase
	updateProfileUseCase updateProfileUseCase
	stateCarrier         oauthstate.Carrier
	logger               logger.Interface
	frontendURL          string
}

func NewAuthHandler(
	initiateOAuthUC initiateOAuthLoginUseCase,
	handleOAuthUC handleOAuthCallbackUseCase,
	getCurrentUC getCurrentUserUseCase,
	updateProfileUC updateProfileUseCase,
	stateCarrier oauthstate.Carrier,
	logger logger.Interface,
	frontendURL string,
) *AuthHandler {
	return &AuthHandler{
		initiateOAuthUseCase: initiateOAuthUC,
		handleOAuthUseCase:   handleOAuthUC,
		getCurrentUseCase:    getCurrentUC,
		updateProfileUseCase: updateProfileUC,
		stateCarrier:         stateCarrier,
		logger:               logger,
		frontendURL:          frontendURL,
	}
}

// UpdateProfileRequest is a partial update; absent fields are untouched.
// Email, picture, and identity fields cannot be changed through this
// endpoint.
type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	AboutMe *string `json:"about_me" validate:"omitempty,max=1000"`
	Age     *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
}

// InitiateOAuth starts the login handshake: it stashes the state nonce and
// PKCE verifier, then redirects the browser to the consent screen.
func (h *AuthHandler) InitiateOAuth(c *gin.Context) {
	result, err := h.initiateOAuthUseCase.Execute()
	if err != nil {
		h.logger.Errorw("OAuth initiation failed", "error", err)
		h.redirectError(c, "Failed to start Google login")
		return
	}

	if err := h.stateCarrier.Stash(c, result.State, result.CodeVerifier); err != nil {
		h.logger.Errorw("failed to stash handshake state", "error", err)
		h.redirectError(c, "Failed to start Google login")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
}

// HandleOAuthCallback finishes the handshake. Every failure is converted
// into a redirect to the front-end error page; this endpoint never returns
// a raw API error because the caller is a browser mid-redirect.
func (h *AuthHandler) HandleOAuthCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")

	if errParam := c.Query("error"); errParam != "" {
		h.logger.Warnw("OAuth provider returned error",
			"error_code", errParam,
			"error_description", c.Query("error_description"))
		h.redirectError(c, "Google sign-in was cancelled or denied")
		return
	}

	if code == "" || state == "" {
		h.logger.Warnw("OAuth callback missing parameters",
			"has_code", code != "",
			"has_state", state != "")
		h.redirectError(c, "Invalid login callback")
		return
	}

	codeVerifier, err := h.stateCarrier.Consume(c, state)
	if err != nil {
		h.logger.Warnw("invalid or expired handshake state", "error", err)
		h.redirectError(c, "Login session expired, please try again")
		return
	}

	result, err := h.handleOAuthUseCase.Execute(c.Request.Context(), usecases.HandleOAuthCallbackCommand{
		Code:         code,
		CodeVerifier: codeVerifier,
	})
	if err != nil {
		h.logger.Errorw("OAuth callback failed", "error", err)
		h.redirectError(c, callbackErrorMessage(err))
		return
	}

	callbackURL := h.frontendURL + "/auth/callback?token=" + url.QueryEscape(result.Token)
	c.Redirect(http.StatusTemporaryRedirect, callbackURL)
}

// Me returns the authenticated caller's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	googleID := c.GetString(middleware.ContextKeyGoogleID)

	profile, err := h.getCurrentUseCase.Execute(c.Request.Context(), googleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the caller's profile and
// returns the updated record.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	googleID := c.GetString(middleware.ContextKeyGoogleID)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile, err := h.updateProfileUseCase.Execute(c.Request.Context(), googleID, usecases.UpdateProfileCommand{
		Name:    req.Name,
		AboutMe: req.AboutMe,
		Age:     req.Age,
	})
	if err != nil {
		h.logger.Errorw("profile update failed", "error", err, "google_id", googleID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Logout acknowledges the logout. Tokens are stateless and stay valid
// until their natural expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.MessageResponse(c, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) redirectError(c *gin.Context, message string) {
	errorURL := h.frontendURL + "/auth/error?message=" + url.QueryEscape(message)
	c.Redirect(http.StatusTemporaryRedirect, errorURL)
}

func callbackErrorMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return "Authentication failed"
}
