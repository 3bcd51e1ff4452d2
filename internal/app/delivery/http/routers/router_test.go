package routers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/delivery/http/controllers"
	"helpmynew-service/internal/app/delivery/http/middlewares"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/app/services/core/categories"
	"helpmynew-service/internal/app/services/core/messages"
	"helpmynew-service/internal/app/services/core/payments"
	"helpmynew-service/internal/app/services/core/providers"
	serviceRequests "helpmynew-service/internal/app/services/core/service_requests"
	"helpmynew-service/internal/app/services/core/transactions"
	"helpmynew-service/internal/app/services/core/users"
	"helpmynew-service/internal/app/services/shared/messaging"
	"helpmynew-service/internal/app/services/shared/metrics"
	"helpmynew-service/internal/app/services/shared/payment_gateway"
	"helpmynew-service/internal/app/services/shared/ratelimiter"
	"helpmynew-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testJWTSecret     = "router-test-secret"
	testWebhookSecret = "whsec_router"
)

var (
	client   = &models.User{UserID: "user_client00001", Role: models.RoleClient}
	provider = &models.User{UserID: "user_provider0001", Role: models.RoleProvider}
	admin    = &models.User{UserID: "user_admin000001", Role: models.RoleAdmin}
	stranger = &models.User{UserID: "user_client00002", Role: models.RoleClient}
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	router *chi.Mux
	stripe *httptest.Server
}

// newTestServer wires the whole HTTP surface on the in-memory store and a
// fake Stripe API that reports every session as paid.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()
	appMetrics := metrics.New()

	stripe := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"id":"cs_router_1","url":"https://checkout.stripe.test/cs_router_1","payment_status":"unpaid","status":"open","amount_total":2500,"currency":"eur"}`))
			return
		}
		w.Write([]byte(`{"id":"cs_router_1","payment_status":"paid","status":"complete","amount_total":2500,"currency":"eur"}`))
	}))
	t.Cleanup(stripe.Close)

	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "/api",
			DefaultCurrency:            "EUR",
			CORSAllowedOrigins:         []string{"*"},
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  1,
			RequestBodyLimitInMegabyte: 1,
		},
		JWT: config.AppJWT{Secret: testJWTSecret},
		PaymentGateway: config.AppPaymentGateway{
			BaseUrl:                      stripe.URL,
			ApiKey:                       "sk_test_router",
			WebhookSecret:                testWebhookSecret,
			WebhookToleranceInSeconds:    300,
			RequestTimeoutInSeconds:      5,
			CheckoutSessionPaymentMethod: "card",
		},
	}

	userRepo := users.NewUserMemoryRepository()
	for _, user := range []*models.User{client, provider, admin, stranger} {
		require.NoError(t, userRepo.Upsert(context.Background(), user))
	}
	requestRepo := serviceRequests.NewServiceRequestMemoryRepository()
	transactionRepo := transactions.NewTransactionMemoryRepository()
	categoryRepo := categories.NewCategoryMemoryRepository()

	requestUsecase := serviceRequests.NewServiceRequestUsecase(requestRepo, transactionRepo, userRepo, appMetrics, logger)
	gateway := payment_gateway.NewStripeService(internalConfig, appMetrics, logger)
	paymentUsecase := payments.NewPaymentUsecase(transactionRepo, requestRepo, requestUsecase, gateway, nil, appMetrics, internalConfig, logger)
	messageUsecase := messages.NewMessageUsecase(messages.NewMessageMemoryRepository(), requestRepo, messaging.NewLogPublisher(logger), appMetrics, logger)
	categoryUsecase := categories.NewCategoryUsecase(categoryRepo, nil, internalConfig, logger)
	providerUsecase := providers.NewProviderUsecase(providers.NewProviderMemoryRepository(), userRepo, logger)
	userUsecase := users.NewUserUsecase(userRepo, logger)
	_, err := categoryUsecase.Seed(context.Background())
	require.NoError(t, err)

	mw := middlewares.NewMiddlewares(logger, userRepo, internalConfig, appMetrics, ratelimiter.NewKeyedLimiter(100, time.Minute, time.Minute))

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, mw, appMetrics, &Controllers{
		ServiceRequest: &controllers.ServiceRequestController{Log: logger, ServiceRequestUsecase: requestUsecase},
		Payment:        &controllers.PaymentController{Log: logger, PaymentUsecase: paymentUsecase},
		Webhook:        &controllers.WebhookController{Log: logger, PaymentUsecase: paymentUsecase},
		Message:        &controllers.MessageController{Log: logger, MessageUsecase: messageUsecase},
		Category:       &controllers.CategoryController{Log: logger, CategoryUsecase: categoryUsecase},
		Provider:       &controllers.ProviderController{Log: logger, ProviderUsecase: providerUsecase},
		User:           &controllers.UserController{Log: logger, UserUsecase: userUsecase, ProviderUsecase: providerUsecase},
		Health:         &controllers.HealthController{Log: logger, Version: "test"},
	})

	return &testServer{router: router, stripe: stripe}
}

func (s *testServer) do(t *testing.T, method, path string, caller *models.User, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if raw, ok := body.([]byte); ok {
		reader = bytes.NewReader(raw)
	} else if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if caller != nil {
		token, err := utils.GenerateJWT(caller.UserID, testJWTSecret, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func (s *testServer) createRequest(t *testing.T) models.ServiceRequest {
	t.Helper()
	rec, env := s.do(t, http.MethodPost, "/api/requests", client, map[string]interface{}{
		"category_id":  "cat_cooking",
		"title":        "Dinner for six",
		"description":  "Help preparing a family dinner",
		"price_agreed": 25,
		"provider_id":  provider.UserID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.ServiceRequest
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created
}

func TestRouter_PublicEndpoints(t *testing.T) {
	s := newTestServer(t)

	t.Run("Root", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), "Help My New API")
	})

	t.Run("Health", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodGet, "/healthz", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Categories In English", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/categories?lang=en", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []map[string]string
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Len(t, list, 15)
		assert.Contains(t, rec.Body.String(), `"Cooking"`)
	})

	t.Run("Metrics Are Exposed", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodGet, "/metrics", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "helpmynew_http_requests_total")
	})

	t.Run("Request Id Is Echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "client-chosen-id")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		assert.Equal(t, "client-chosen-id", rec.Header().Get("X-Request-ID"))
	})
}

func TestRouter_ErrorMapping(t *testing.T) {
	s := newTestServer(t)
	created := s.createRequest(t)

	tests := []struct {
		name   string
		method string
		path   string
		caller *models.User
		body   interface{}
		status int
	}{
		{"Missing Session Is Unauthorized", http.MethodGet, "/api/requests", nil, nil, http.StatusUnauthorized},
		{"Unknown Request Is Not Found", http.MethodGet, "/api/requests/req_missing1", client, nil, http.StatusNotFound},
		{"Outsider Is Denied", http.MethodGet, "/api/requests/" + created.RequestID, stranger, nil, http.StatusForbidden},
		{"Invalid Body Is A Validation Error", http.MethodPost, "/api/requests", client, map[string]string{"title": "no category"}, http.StatusBadRequest},
		{"Malformed JSON Is A Validation Error", http.MethodPost, "/api/requests", client, []byte("{"), http.StatusBadRequest},
		{"Unknown Status Is A Validation Error", http.MethodPut, "/api/requests/" + created.RequestID, client, map[string]string{"status": "archived"}, http.StatusBadRequest},
		{"Client Cannot Create Categories", http.MethodPost, "/api/categories", client, map[string]interface{}{"name": map[string]string{"es": "X"}, "icon": "X"}, http.StatusForbidden},
		{"Client Cannot Refund", http.MethodPost, "/api/payments/refund/cs_router_1", client, nil, http.StatusForbidden},
		{"Unsigned Webhook Is Rejected", http.MethodPost, "/api/webhook/payments", nil, []byte(`{"id":"evt_1"}`), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(t, tt.method, tt.path, tt.caller, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.False(t, env.Success)
		})
	}

	t.Run("Cancelled Request Cannot Move Again", func(t *testing.T) {
		other := s.createRequest(t)
		rec, _ := s.do(t, http.MethodPut, "/api/requests/"+other.RequestID, client, map[string]string{"status": "cancelled"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = s.do(t, http.MethodPut, "/api/requests/"+other.RequestID, client, map[string]string{"status": "pending"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouter_CheckoutToWebhookCompletesRequest(t *testing.T) {
	s := newTestServer(t)
	created := s.createRequest(t)

	rec, env := s.do(t, http.MethodPost, "/api/payments/checkout", client, map[string]string{
		"request_id": created.RequestID,
		"origin_url": "https://app.example",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var checkout map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &checkout))
	assert.Equal(t, "cs_router_1", checkout["session_id"])
	assert.Equal(t, "https://checkout.stripe.test/cs_router_1", checkout["url"])

	payload := []byte(`{"id":"evt_router_1","type":"checkout.session.completed","data":{"object":{"object":"checkout.session","id":"cs_router_1","payment_status":"paid","status":"complete","amount_total":2500,"currency":"eur"}}}`)
	signature := payment_gateway.SignatureHeader(payload, testWebhookSecret, time.Now())

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/payments", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Stripe-Signature", signature)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())

	second := send()
	require.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), `"duplicate":true`)

	rec, env = s.do(t, http.MethodGet, "/api/requests/"+created.RequestID, provider, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var current models.ServiceRequest
	require.NoError(t, json.Unmarshal(env.Data, &current))
	assert.Equal(t, models.ServiceRequestStatusCompleted, current.Status)

	t.Run("Poll After Webhook Is Idempotent", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/payments/status/cs_router_1", client, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var status map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &status))
		assert.Equal(t, string(models.TransactionStatusCompleted), status["transaction_status"])
	})

	t.Run("Admin Refunds", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPost, "/api/payments/refund/cs_router_1", admin, nil)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec, _ = s.do(t, http.MethodPost, "/api/payments/refund/cs_router_1", admin, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouter_Messages(t *testing.T) {
	s := newTestServer(t)
	created := s.createRequest(t)

	rec, _ := s.do(t, http.MethodPost, "/api/messages", client, map[string]string{
		"request_id":  created.RequestID,
		"receiver_id": provider.UserID,
		"content":     "Is seven ok?",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := s.do(t, http.MethodGet, fmt.Sprintf("/api/messages/%s", created.RequestID), provider, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.Message
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Is seven ok?", list[0].Content)

	rec, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/messages/%s", created.RequestID), stranger, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ProvidersAndProfiles(t *testing.T) {
	s := newTestServer(t)

	t.Run("No Provider Profile Yet", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/users/provider-profile", stranger, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var profile *models.ProviderProfile
		if len(env.Data) > 0 {
			require.NoError(t, json.Unmarshal(env.Data, &profile))
		}
		assert.Nil(t, profile)
	})

	rec, env := s.do(t, http.MethodPost, "/api/providers/register", stranger, map[string]interface{}{
		"bio":         "Home cook",
		"categories":  []string{"cat_cooking"},
		"postal_code": "28001",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var registered models.ProviderProfile
	require.NoError(t, json.Unmarshal(env.Data, &registered))

	t.Run("Registering Twice Is Rejected", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPost, "/api/providers/register", stranger, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Registration Promotes The Role", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/auth/me", stranger, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var me models.User
		require.NoError(t, json.Unmarshal(env.Data, &me))
		assert.Equal(t, models.RoleProvider, me.Role)
	})

	t.Run("New Provider Can Be Assigned To A Request", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPost, "/api/requests", client, map[string]interface{}{
			"category_id": "cat_cooking",
			"title":       "Paella lesson",
			"description": "Teach me to cook paella",
			"provider_id": stranger.UserID,
		})
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("Public Search And Detail", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/providers?category_id=cat_cooking&postal_code=28001", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &list))
		require.Len(t, list, 1)
		assert.Equal(t, registered.ProviderID, list[0]["provider_id"])

		rec, _ = s.do(t, http.MethodGet, "/api/providers/"+registered.ProviderID, nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = s.do(t, http.MethodGet, "/api/providers/prov_missing", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Going Offline Removes The Listing", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPut, "/api/providers/profile", stranger, map[string]interface{}{"availability": "offline"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec, env := s.do(t, http.MethodGet, "/api/providers?category_id=cat_cooking", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []map[string]interface{}
		if len(env.Data) > 0 {
			require.NoError(t, json.Unmarshal(env.Data, &list))
		}
		assert.Empty(t, list)
	})

	t.Run("Client Without Profile Cannot Edit One", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPut, "/api/providers/profile", client, map[string]interface{}{"bio": "x"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("User Profile Update", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPut, "/api/users/profile", stranger, map[string]interface{}{"name": "Eva", "postal_code": "08001"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		_, env := s.do(t, http.MethodGet, "/api/auth/me", stranger, nil)
		var me models.User
		require.NoError(t, json.Unmarshal(env.Data, &me))
		assert.Equal(t, "Eva", me.Name)
		assert.Equal(t, "08001", me.PostalCode)
	})

	t.Run("Profile Endpoints Require A Session", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPut, "/api/users/profile", nil, map[string]interface{}{"name": "Eva"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec, _ = s.do(t, http.MethodGet, "/api/auth/me", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
