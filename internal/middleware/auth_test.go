package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
)

type stubParser struct {
	subject string
	name    string
	err     error
}

func (p stubParser) Parse(string) (string, string, error) {
	return p.subject, p.name, p.err
}

func sessionRouter(parser SessionParser) http.Handler {
	r := ginext.New("test")
	r.GET("/protected", Session(parser), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{
			"subject": c.GetString(SubjectKey),
			"name":    c.GetString(SubjectNameKey),
		})
	})
	return r
}

func TestSession_ValidToken(t *testing.T) {
	r := sessionRouter(stubParser{subject: "sub_1", name: "Alice Doe"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sub_1")
}

func TestSession_MissingHeader(t *testing.T) {
	r := sessionRouter(stubParser{subject: "sub_1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_BadToken(t *testing.T) {
	r := sessionRouter(stubParser{err: errors.New("bad signature")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func moderatorRouter(t *testing.T, user *domain.User, err error) http.Handler {
	t.Helper()
	identity := mocks.NewMockIdentityResolver(t)
	identity.EXPECT().Resolve(mock.Anything, "sub_1", "Alice Doe").Return(user, err).Maybe()

	r := ginext.New("test")
	r.GET("/admin",
		func(c *ginext.Context) {
			c.Set(SubjectKey, "sub_1")
			c.Set(SubjectNameKey, "Alice Doe")
			c.Next()
		},
		RequireModerator(identity),
		func(c *ginext.Context) {
			c.JSON(http.StatusOK, ginext.H{"status": "ok"})
		},
	)
	return r
}

func TestRequireModerator_Allows(t *testing.T) {
	r := moderatorRouter(t, &domain.User{ID: "u1", Role: domain.RoleModerator}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireModerator_ForbidsMember(t *testing.T) {
	r := moderatorRouter(t, &domain.User{ID: "u1", Role: domain.RoleMember}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireModerator_ResolveFails(t *testing.T) {
	r := moderatorRouter(t, nil, domain.ErrUnauthenticated)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func cronRouter(token string) http.Handler {
	r := ginext.New("test")
	r.GET("/cron", CronToken(token), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	return r
}

func TestCronToken_Valid(t *testing.T) {
	r := cronRouter("secret-token")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cron", nil)
	req.Header.Set("X-Cron-Token", "secret-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCronToken_Wrong(t *testing.T) {
	r := cronRouter("secret-token")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cron", nil)
	req.Header.Set("X-Cron-Token", "wrong")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCronToken_EmptyConfigDisablesEndpoint(t *testing.T) {
	r := cronRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cron", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
