package cookie

import (
	"net/http"
	"strings"
	"time"

	"car-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// SetAccessTokenCookie stores the login token for browser clients. It lives
// exactly as long as the token itself.
func SetAccessTokenCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, ttl time.Duration) {
	http.SetCookie(c.Writer, accessTokenCookie(cfg, accessToken, int(ttl.Seconds())))
}

func ClearAccessTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	expired := accessTokenCookie(cfg, "", -1)
	expired.Expires = time.Unix(0, 0)
	http.SetCookie(c.Writer, expired)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func accessTokenCookie(cfg config.CookieConfig, value string, maxAge int) *http.Cookie {
	sameSite := parseSameSite(cfg.SameSite)
	return &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/api",
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   cfg.Secure || sameSite == http.SameSiteNoneMode,
		HttpOnly: true,
		SameSite: sameSite,
	}
}

// SameSite=None is only honoured by browsers on Secure cookies.
func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
