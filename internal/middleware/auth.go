package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/service/ports"
	"github.com/wb-go/wbf/ginext"
)

const (
	SubjectKey     = "subject"
	SubjectNameKey = "subject_name"
)

// SessionParser is satisfied by identity.SessionParser.
type SessionParser interface {
	Parse(token string) (subject, name string, err error)
}

// Session authenticates the request from its bearer session token and
// stores the external subject on the context. No user row is created
// here; resolution happens lazily in the services that need it.
func Session(parser SessionParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrUnauthenticated.Error()},
			)
			return
		}

		subject, name, err := parser.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrUnauthenticated.Error()},
			)
			return
		}

		c.Set(SubjectKey, subject)
		c.Set(SubjectNameKey, name)

		c.Next()
	}
}

// RequireModerator gates admin routes on the moderator role of the
// resolved user. This is a server-side check; there is no shared admin
// secret anywhere in the system.
func RequireModerator(identity ports.IdentityResolver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		user, err := identity.Resolve(c.Request.Context(), c.GetString(SubjectKey), c.GetString(SubjectNameKey))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrUnauthenticated.Error()},
			)
			return
		}

		if user.Role != domain.RoleModerator {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": domain.ErrForbidden.Error()},
			)
			return
		}

		c.Next()
	}
}

// CronToken guards the reminder trigger endpoint with a shared token for
// the external time-based trigger. An empty configured token disables the
// endpoint entirely rather than leaving it open.
func CronToken(token string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		supplied := c.GetHeader("X-Cron-Token")
		if token == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid cron token"},
			)
			return
		}

		c.Next()
	}
}
