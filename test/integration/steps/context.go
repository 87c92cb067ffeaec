// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sales-tracker/backend/config"
	"github.com/sales-tracker/backend/internal/infra/dependency"
	"github.com/sales-tracker/backend/internal/integration/persistence/model"
	"github.com/sales-tracker/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testWebhookSecret = "test-webhook-secret"
)

// testContext holds the state of a single scenario.
type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db
	timeMock *mock.Time

	accessToken   string
	currentUserID uuid.UUID
	lastSaleID    uuid.UUID
	lastRefundID  uuid.UUID
	lastID        uuid.UUID
}

type response struct {
	status  int
	headers http.Header
	body    any
	raw     []byte
}

var (
	serverInit sync.Once
	testServer *httptest.Server
	testDB     *mock.Db
	testConfig *config.Config
)

// InitializeTestSuite configures the environment shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("WEBHOOK_SECRET", testWebhookSecret)
		_ = os.Setenv("WEBHOOK_RATE_LIMIT", "1000")
		_ = os.Setenv("DASHBOARD_GENERATION_BACKEND", dependency.GenerationBackendRedis)

		testConfig = config.Load()
		testDB = mock.NewDb(model.All()...)
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Auth steps
	ctx.Given(`^I am authenticated as user "([^"]*)"$`, test.iAmAuthenticatedAsUser)
	ctx.Given(`^I am authenticated with an expired token$`, test.iAmAuthenticatedWithAnExpiredToken)

	// Fixture steps
	ctx.Given(`^the following sales exist:$`, test.theFollowingSalesExist)
	ctx.Given(`^the following refunds exist:$`, test.theFollowingRefundsExist)
	ctx.Given(`^the following expenses exist:$`, test.theFollowingExpensesExist)
	ctx.Given(`^a product exists with id "([^"]*)" and name "([^"]*)"$`, test.aProductExistsWithIDAndName)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)
	ctx.Given(`^the webhook secret is sent$`, test.theWebhookSecretIsSent)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.lastSaleID = uuid.Nil
	t.lastRefundID = uuid.Nil
	t.lastID = uuid.Nil
	t.db = testDB
	t.timeMock = mock.NewTime()

	if t.db != nil {
		if err := t.db.ClearDB(); err != nil {
			return err
		}
	}
	return mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		injector := dependency.NewInjector(testConfig, testDB.DbConn, mock.NewRedis())
		testServer = httptest.NewServer(injector.Router.Setup(testConfig.Server.Environment))
	})
	t.uri = testServer.URL
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()

	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}
