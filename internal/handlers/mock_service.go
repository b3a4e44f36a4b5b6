package handlers

import (
	"context"
	"net/http"

	"github.com/abhishek-8081/Brainly-Backend/internal/config"
	"github.com/abhishek-8081/Brainly-Backend/internal/models"
	"github.com/abhishek-8081/Brainly-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      string
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       string
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockContents struct {
	createErr error
	listResp  []models.ContentWithOwner
	listErr   error
	deleteErr error

	lastCreateUserID    string
	lastCreateParams    service.ContentParams
	lastListUserID      string
	lastDeleteContentID string
	lastDeleteUserID    string
	deleteCalls         int
}

func (m *mockContents) Create(ctx context.Context, userID string, p service.ContentParams) (models.Content, error) {
	m.lastCreateUserID = userID
	m.lastCreateParams = p
	if m.createErr != nil {
		return models.Content{}, m.createErr
	}
	return models.Content{
		ID:     "content-1",
		Title:  p.Title,
		Link:   p.Link,
		Type:   p.Type,
		Tags:   []string{},
		UserID: userID,
	}, nil
}
func (m *mockContents) List(ctx context.Context, userID string) ([]models.ContentWithOwner, error) {
	m.lastListUserID = userID
	return m.listResp, m.listErr
}
func (m *mockContents) Delete(ctx context.Context, contentID, userID string) error {
	m.deleteCalls++
	m.lastDeleteContentID = contentID
	m.lastDeleteUserID = userID
	return m.deleteErr
}

type mockSharing struct {
	enableHash  string
	enableErr   error
	disableErr  error
	resolveResp models.SharedBrain
	resolveErr  error

	enableCalls     int
	disableCalls    int
	lastEnableUser  string
	lastDisableUser string
	lastResolveHash string
}

func (m *mockSharing) Enable(ctx context.Context, userID string) (string, error) {
	m.enableCalls++
	m.lastEnableUser = userID
	return m.enableHash, m.enableErr
}
func (m *mockSharing) Disable(ctx context.Context, userID string) error {
	m.disableCalls++
	m.lastDisableUser = userID
	return m.disableErr
}
func (m *mockSharing) Resolve(ctx context.Context, hash string) (models.SharedBrain, error) {
	m.lastResolveHash = hash
	return m.resolveResp, m.resolveErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, &config.Config{Env: "test"})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authHeader builds the raw-token Authorization header the API uses.
func authHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if token != "" {
		h.Set("Authorization", token)
	}
	return h
}
