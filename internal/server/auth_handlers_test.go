package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Izanmg/streamevents/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func postPut(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRegisterHandler(t *testing.T) {
	validBody := func() map[string]any {
		return map[string]any{
			"username":         "streamer_amy",
			"email":            "amy@example.com",
			"password":         "Str0ng!Passphrase",
			"password_confirm": "Str0ng!Passphrase",
			"first_name":       "Amy",
		}
	}

	t.Run("Success", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockUserRepository)
		s := newTestServer(mockRepo, nil)
		app.Post("/register", s.Register)

		mockRepo.On("GetByEmail", mock.Anything, "amy@example.com").Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

		resp := postJSON(t, app, "/register", validBody())
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.NotEmpty(t, body["token"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "amy@example.com", user["email"])
		assert.Nil(t, user["password"], "password hash must never be serialized")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email Conflict", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockUserRepository)
		s := newTestServer(mockRepo, nil)
		app.Post("/register", s.Register)

		mockRepo.On("GetByEmail", mock.Anything, "amy@example.com").
			Return(&models.User{ID: 2, Email: "amy@example.com"}, nil)

		resp := postJSON(t, app, "/register", validBody())
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "DUPLICATE_EMAIL", body["code"])
	})

	t.Run("Password Mismatch", func(t *testing.T) {
		app := fiber.New()
		s := newTestServer(new(MockUserRepository), nil)
		app.Post("/register", s.Register)

		payload := validBody()
		payload["password_confirm"] = "Different!Pass1"
		resp := postJSON(t, app, "/register", payload)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "PASSWORD_MISMATCH", body["code"])
	})

	t.Run("Weak Password Lists Reasons", func(t *testing.T) {
		app := fiber.New()
		s := newTestServer(new(MockUserRepository), nil)
		app.Post("/register", s.Register)

		payload := validBody()
		payload["password"] = "weak"
		payload["password_confirm"] = "weak"
		resp := postJSON(t, app, "/register", payload)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "WEAK_PASSWORD", body["code"])
		assert.Contains(t, body["details"], "12 characters")
	})

	t.Run("Invalid Username Character", func(t *testing.T) {
		app := fiber.New()
		s := newTestServer(new(MockUserRepository), nil)
		app.Post("/register", s.Register)

		payload := validBody()
		payload["username"] = "has space"
		resp := postJSON(t, app, "/register", payload)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "INVALID_USERNAME", body["code"])
	})
}

func TestLoginHandler(t *testing.T) {
	password := "Str0ng!Passphrase"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	account := &models.User{ID: 1, Username: "streamer_amy", Email: "amy@example.com", Password: string(hashed)}

	t.Run("Login With Username", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockUserRepository)
		s := newTestServer(mockRepo, nil)
		app.Post("/login", s.Login)

		mockRepo.On("GetByUsername", mock.Anything, "streamer_amy").Return(account, nil)

		resp := postJSON(t, app, "/login", map[string]any{
			"identifier": "streamer_amy",
			"password":   password,
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("Login With Email Resolves To Username", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockUserRepository)
		s := newTestServer(mockRepo, nil)
		app.Post("/login", s.Login)

		mockRepo.On("GetByEmail", mock.Anything, "amy@example.com").Return(account, nil)
		mockRepo.On("GetByUsername", mock.Anything, "streamer_amy").Return(account, nil)

		resp := postJSON(t, app, "/login", map[string]any{
			"identifier": "amy@example.com",
			"password":   password,
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown Email Falls Through To Generic Failure", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockUserRepository)
		s := newTestServer(mockRepo, nil)
		app.Post("/login", s.Login)

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
		mockRepo.On("GetByUsername", mock.Anything, "ghost@example.com").Return(nil, nil)

		resp := postJSON(t, app, "/login", map[string]any{
			"identifier": "ghost@example.com",
			"password":   "whatever",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockUserRepository)
		s := newTestServer(mockRepo, nil)
		app.Post("/login", s.Login)

		mockRepo.On("GetByUsername", mock.Anything, "streamer_amy").Return(account, nil)

		resp := postJSON(t, app, "/login", map[string]any{
			"identifier": "streamer_amy",
			"password":   "wrong",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		app := fiber.New()
		s := newTestServer(new(MockUserRepository), nil)
		app.Post("/login", s.Login)

		resp := postJSON(t, app, "/login", map[string]any{})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
