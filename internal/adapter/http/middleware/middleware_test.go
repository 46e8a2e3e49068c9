package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func apiKeyRouter(repo ports.MerchantRepository) *gin.Engine {
	r := gin.New()
	r.Use(APIKeyAuth(repo, zerolog.Nop()))
	r.GET("/protected", func(c *gin.Context) {
		id, _ := c.Get(CtxMerchantID)
		c.JSON(http.StatusOK, gin.H{"merchant_id": id.(uuid.UUID).String()})
	})
	return r
}

func TestAPIKeyAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockMerchantRepository(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	apiKeyRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestAPIKeyAuth_UnknownKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockMerchantRepository(ctrl)
	repo.EXPECT().GetByAPIKey(gomock.Any(), "nope").Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderAPIKey, "nope")
	apiKeyRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestAPIKeyAuth_SuspendedMerchant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockMerchantRepository(ctrl)
	repo.EXPECT().GetByAPIKey(gomock.Any(), "key").Return(&domain.Merchant{
		ID:     uuid.New(),
		APIKey: "key",
		Status: domain.MerchantStatusSuspended,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderAPIKey, "key")
	apiKeyRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_004")
}

func TestAPIKeyAuth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	merchantID := uuid.New()
	repo := mocks.NewMockMerchantRepository(ctrl)
	repo.EXPECT().GetByAPIKey(gomock.Any(), "key").Return(&domain.Merchant{
		ID:     merchantID,
		APIKey: "key",
		Status: domain.MerchantStatusActive,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderAPIKey, "key")
	apiKeyRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), merchantID.String())
}

func jwtRouter(tokenSvc ports.TokenService, kind ports.TokenKind) *gin.Engine {
	r := gin.New()
	r.Use(JWTAuth(tokenSvc, kind, zerolog.Nop()))
	r.GET("/me", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tokenSvc := mocks.NewMockTokenService(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	jwtRouter(tokenSvc, ports.TokenKindMerchant).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestJWTAuth_KindMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("token").Return(&ports.TokenClaims{
		Subject: uuid.New(),
		Kind:    ports.TokenKindMerchant,
	}, nil)

	// A merchant session token must not open recipient routes.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	jwtRouter(tokenSvc, ports.TokenKindRecipient).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestJWTAuth_RecipientSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	recipientID := uuid.New()
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("token").Return(&ports.TokenClaims{
		Subject: recipientID,
		Kind:    ports.TokenKindRecipient,
		Email:   "alice@example.com",
	}, nil)

	r := gin.New()
	r.Use(JWTAuth(tokenSvc, ports.TokenKindRecipient, zerolog.Nop()))
	r.GET("/me", func(c *gin.Context) {
		email, _ := c.Get(CtxRecipientEmail)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRecovery_CatchesPanic(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)

	start := time.Now()
	r.ServeHTTP(w, req)
	assert.Less(t, time.Since(start), time.Second)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}
