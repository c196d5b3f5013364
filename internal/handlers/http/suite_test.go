package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	httphandlers "github.com/rafabene/inhouse-backend/internal/handlers/http"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/config"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/i18n"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/logging"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/realtime"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/security"
	"github.com/rafabene/inhouse-backend/internal/services"
)

func TestHTTPHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterFailHandler(Fail)
	RunSpecs(t, "HTTP Handlers Suite")
}

// testAPI é uma instância completa da API sobre um SQLite temporário
type testAPI struct {
	db     *gorm.DB
	hub    *realtime.Hub
	router *gin.Engine
	tokens *security.JWTService
}

func newTestAPI() *testAPI {
	logger := logging.NewDiscardLogger()

	db, err := gormdb.NewDatabaseConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(GinkgoT().TempDir(), "inhouse_api.db"),
	}, logger)
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func() { _ = gormdb.Close(db) })
	Expect(gormdb.Migrate(db, logger)).To(Succeed())

	i18nService, err := i18n.NewService("../../infrastructure/i18n/locales", "en")
	Expect(err).NotTo(HaveOccurred())

	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens := security.NewJWTService("test-secret", time.Hour)
	hub := realtime.NewHub(logger)
	uow := gormdb.NewUnitOfWork(db)

	propertyRepo := gormdb.NewPropertyRepository(db)
	notificationService := services.NewNotificationService(gormdb.NewNotificationRepository(db), logger)
	chatService := services.NewChatService(gormdb.NewChatRepository(db), hub, uow, logger)

	handlers := httphandlers.Handlers{
		Auth: httphandlers.NewAuthHandler(
			services.NewAuthService(gormdb.NewUserRepository(db), hasher, tokens, logger), logger),
		Post: httphandlers.NewPostHandler(
			services.NewPostService(gormdb.NewPostRepository(db), logger), logger),
		Property: httphandlers.NewPropertyHandler(
			services.NewPropertyService(propertyRepo, logger), logger),
		Engagement: httphandlers.NewEngagementHandler(
			services.NewEngagementService(gormdb.NewFavoriteRepository(db), gormdb.NewInteractionRepository(db), propertyRepo, logger), logger),
		Owner: httphandlers.NewOwnerHandler(
			services.NewOwnerService(propertyRepo, gormdb.NewLeadRepository(db), notificationService, uow, logger), logger),
		Chat:         httphandlers.NewChatHandler(chatService, logger),
		ChatStream:   httphandlers.NewChatStreamHandler(chatService, hub, logger),
		Notification: httphandlers.NewNotificationHandler(notificationService, logger),
	}

	router := httphandlers.NewRouter(handlers, httphandlers.RouterOptions{
		Logger:         logger,
		I18n:           i18nService,
		Tokens:         tokens,
		AllowedOrigins: "*",
		BaseURL:        "http://localhost:3001",
	})

	return &testAPI{db: db, hub: hub, router: router, tokens: tokens}
}

// do executa a requisição; body nil envia sem corpo
func (a *testAPI) do(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	Expect(json.Unmarshal(w.Body.Bytes(), &out)).To(Succeed(), w.Body.String())
	return out
}

func decodeList(w *httptest.ResponseRecorder) []map[string]interface{} {
	var out []map[string]interface{}
	Expect(json.Unmarshal(w.Body.Bytes(), &out)).To(Succeed(), w.Body.String())
	return out
}

// createProperty cadastra um imóvel e devolve o id
func (a *testAPI) createProperty(owner, title, city string, price float64) int64 {
	w := a.do(nethttp.MethodPost, "/api/properties", map[string]interface{}{
		"owner_email":  owner,
		"title":        title,
		"city":         city,
		"price":        price,
		"neighborhood": "Centro",
	})
	Expect(w.Code).To(Equal(nethttp.StatusCreated), w.Body.String())
	return int64(decode(w)["id"].(float64))
}
