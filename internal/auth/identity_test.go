package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndelacroix/chatline-be/internal/models"
	"github.com/stretchr/testify/assert"
)

type stubUserService struct {
	touched []string
}

func (s *stubUserService) Login(string, string) (models.Identity, bool, error) {
	return models.Identity{}, false, nil
}

func (s *stubUserService) GetUserByID(string) (models.User, error) {
	return models.User{}, nil
}

func (s *stubUserService) TouchPresence(id string) error {
	s.touched = append(s.touched, id)
	return nil
}

func TestIdentityMiddleware(t *testing.T) {
	stub := &stubUserService{}
	var gotCallerID string
	handler := Identity(stub)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCallerID = CallerID(r)
	}))

	// With a caller id: presence touched, id in context.
	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	req.Header.Set(CallerIDHeader, "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "abc-123", gotCallerID)
	assert.Equal(t, []string{"abc-123"}, stub.touched)

	// Without one: no touch, empty caller id.
	req = httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, gotCallerID)
	assert.Len(t, stub.touched, 1)
}
