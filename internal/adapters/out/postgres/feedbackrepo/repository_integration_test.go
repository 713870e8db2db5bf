package feedbackrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/feedbackrepo"
	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type FeedbackRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *feedbackrepo.GormFeedbackRepository
	tracker    *MockAggregateTracker
	loc        *time.Location
}

func (suite *FeedbackRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&feedbackrepo.FeedbackDTO{}))

	suite.loc, err = time.LoadLocation("Asia/Kolkata")
	suite.Require().NoError(err)
}

func (suite *FeedbackRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE feedback").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = feedbackrepo.NewGormFeedbackRepository(suite.db, suite.tracker, suite.loc)
}

func (suite *FeedbackRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *FeedbackRepositoryIntegrationTestSuite) TestAddInvoice_CreatesThenIncrements() {
	ctx := context.Background()
	key := suite.key(kernel.NewUUID(), kernel.CourierST)

	first, err := suite.repository.AddInvoice(ctx, key, "Apollo Pharmacy")
	suite.Require().NoError(err)
	suite.Equal(1, first.InvoiceCount())
	suite.True(first.Key().CourierDate.Equal(key.CourierDate))

	second, err := suite.repository.AddInvoice(ctx, key, "Apollo Pharmacy")
	suite.Require().NoError(err)
	suite.Equal(2, second.InvoiceCount())
	suite.True(first.ID().IsEqual(second.ID()))

	suite.assertRowCount(1)
}

func (suite *FeedbackRepositoryIntegrationTestSuite) TestAddInvoice_SeparatesCouriers() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	st, err := suite.repository.AddInvoice(ctx, suite.key(customerID, kernel.CourierST), "Apollo Pharmacy")
	suite.Require().NoError(err)
	pro, err := suite.repository.AddInvoice(ctx, suite.key(customerID, kernel.CourierProfessional), "Apollo Pharmacy")
	suite.Require().NoError(err)

	suite.False(st.ID().IsEqual(pro.ID()))
	suite.assertRowCount(2)
}

func (suite *FeedbackRepositoryIntegrationTestSuite) TestAddInvoice_ConcurrentPackersNeverLoseCounts() {
	ctx := context.Background()
	key := suite.key(kernel.NewUUID(), kernel.CourierST)

	const packers = 10
	var wg sync.WaitGroup
	errCh := make(chan error, packers)
	for range packers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.repository.AddInvoice(ctx, key, "Apollo Pharmacy")
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}

	stored, err := suite.repository.ListByDate(ctx, key.CourierDate)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1)
	suite.Equal(packers, stored[0].InvoiceCount())
}

func (suite *FeedbackRepositoryIntegrationTestSuite) TestUpdate_PersistsConfirmation() {
	ctx := context.Background()
	row, err := suite.repository.AddInvoice(ctx, suite.key(kernel.NewUUID(), kernel.CourierST), "Apollo Pharmacy")
	suite.Require().NoError(err)

	weight := decimal.RequireFromString("12.5")
	boxes := 3
	suite.Require().NoError(row.Confirm(feedback.Confirmation{
		NoOfBox:       &boxes,
		Weight:        &weight,
		StockReceived: feedback.Yes,
		StocksOK:      feedback.Yes,
	}, suite.now()))
	suite.Require().NoError(suite.repository.Update(ctx, row))

	stored, err := suite.repository.Get(ctx, row.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.NoOfBox())
	suite.Equal(3, *stored.NoOfBox())
	suite.True(stored.Weight().Equal(weight))
	suite.Equal(feedback.Yes, stored.StockReceived())
	suite.Equal(feedback.Yes, stored.StocksOK())
	suite.NotNil(stored.IssueResolvedTime())
	suite.False(stored.IsOpen())
}

func (suite *FeedbackRepositoryIntegrationTestSuite) TestUpdate_DoesNotOverwriteCount() {
	ctx := context.Background()
	key := suite.key(kernel.NewUUID(), kernel.CourierST)
	row, err := suite.repository.AddInvoice(ctx, key, "Apollo Pharmacy")
	suite.Require().NoError(err)

	_, err = suite.repository.AddInvoice(ctx, key, "Apollo Pharmacy")
	suite.Require().NoError(err)

	suite.Require().NoError(row.SetBoxCount(2))
	suite.Require().NoError(suite.repository.Update(ctx, row))

	stored, err := suite.repository.Get(ctx, row.ID())
	suite.Require().NoError(err)
	suite.Equal(2, stored.InvoiceCount())
}

func (suite *FeedbackRepositoryIntegrationTestSuite) TestGetForUpdate() {
	ctx := context.Background()
	a, err := suite.repository.AddInvoice(ctx, suite.key(kernel.NewUUID(), kernel.CourierST), "Apollo Pharmacy")
	suite.Require().NoError(err)
	b, err := suite.repository.AddInvoice(ctx, suite.key(kernel.NewUUID(), kernel.CourierST), "MedPlus")
	suite.Require().NoError(err)

	rows, err := suite.repository.GetForUpdate(ctx, []kernel.UUID{a.ID(), b.ID()})
	suite.Require().NoError(err)
	suite.Len(rows, 2)

	_, err = suite.repository.GetForUpdate(ctx, []kernel.UUID{a.ID(), kernel.NewUUID()})
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *FeedbackRepositoryIntegrationTestSuite) TestListByDate() {
	ctx := context.Background()
	_, err := suite.repository.AddInvoice(ctx, suite.key(kernel.NewUUID(), kernel.CourierST), "medplus")
	suite.Require().NoError(err)
	_, err = suite.repository.AddInvoice(ctx, suite.key(kernel.NewUUID(), kernel.CourierST), "Apollo Pharmacy")
	suite.Require().NoError(err)

	yesterday, err := feedback.NewKey(kernel.NewUUID(), kernel.CourierST, suite.now().AddDate(0, 0, -1))
	suite.Require().NoError(err)
	_, err = suite.repository.AddInvoice(ctx, yesterday, "Old Customer")
	suite.Require().NoError(err)

	rows, err := suite.repository.ListByDate(ctx, suite.now())
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Apollo Pharmacy", rows[0].CustomerName())
	suite.Equal("medplus", rows[1].CustomerName())
}

func (suite *FeedbackRepositoryIntegrationTestSuite) now() time.Time {
	return time.Date(2025, 3, 14, 18, 0, 0, 0, suite.loc)
}

func (suite *FeedbackRepositoryIntegrationTestSuite) key(customerID kernel.UUID, courier kernel.Courier) feedback.Key {
	key, err := feedback.NewKey(customerID, courier, suite.now())
	suite.Require().NoError(err)
	return key
}

func (suite *FeedbackRepositoryIntegrationTestSuite) assertRowCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&feedbackrepo.FeedbackDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestFeedbackRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackRepositoryIntegrationTestSuite))
}
