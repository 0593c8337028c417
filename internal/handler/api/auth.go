package api

import (
	"net/http"

	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httpresp"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/cookie"
	"car-rental/internal/pkg/jwt"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	queries    queries.CustomerQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.CustomerQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		queries:    q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Customer login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httpresp.Envelope
// @Failure 401 {object} httpresp.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	cookie.SetAccessTokenCookie(c, h.cfg.Cookie, result.AccessToken, h.jwtService.TokenDuration())

	httpresp.OK(c, http.StatusOK, "Login successful", resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Customer:    resdto.FromCustomerView(result.Customer),
	})
}

// @Summary Customer logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} httpresp.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; dropping the cookie is all the server can do.
	cookie.ClearAccessTokenCookie(c, h.cfg.Cookie)
	httpresp.OK(c, http.StatusOK, "Logout successful", nil)
}

// @Summary Get current customer
// @Description Get the authenticated customer's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} httpresp.Envelope
// @Failure 404 {object} httpresp.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httpresp.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	view, err := h.queries.GetCurrentCustomer(c.Request.Context(), customerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	httpresp.OK(c, http.StatusOK, "", resdto.FromCustomerView(view))
}
