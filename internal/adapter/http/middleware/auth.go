package middleware

import (
	"net/http"
	"strings"

	"besttodo/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ownerKey = "owner_id"

// subjectClaims are checked in order; the first non-empty one names the owner.
var subjectClaims = []string{"sub", "cognito:username", "username"}

// AuthMiddleware trusts identity established upstream. The gateway either
// forwards the subject in subjectHeader or passes on the bearer token it has
// already verified; the token's claims are read without re-verifying it.
// Requests without a subject are rejected.
func AuthMiddleware(subjectHeader string) gin.HandlerFunc {
	parser := jwt.NewParser()

	return func(c *gin.Context) {
		owner := strings.TrimSpace(c.GetHeader(subjectHeader))
		if owner == "" {
			owner = subjectFromBearer(parser, c.GetHeader("Authorization"))
		}

		if owner == "" {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(ownerKey, owner)
		c.Next()
	}
}

func GetOwner(c *gin.Context) string {
	if owner, exists := c.Get(ownerKey); exists {
		if s, ok := owner.(string); ok {
			return s
		}
	}
	return ""
}

func subjectFromBearer(parser *jwt.Parser, header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(strings.TrimSpace(token), claims); err != nil {
		return ""
	}

	for _, name := range subjectClaims {
		if value, ok := claims[name].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
