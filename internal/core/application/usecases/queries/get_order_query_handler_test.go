package queries_test

import (
	"context"
	"testing"
	"time"

	"ordermgmt/internal/adapters/out/postgres/orderrepo"
	"ordermgmt/internal/core/application/usecases/queries"
	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_DraftOrder_ReturnsViewWithTransitions() {
	orderID := suite.insertOrder(order.StatusDraft, 2500)

	query, err := queries.NewGetOrderQuery(orderID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(orderID, view.ID)
	suite.Equal(order.StatusDraft, view.Status)
	suite.Equal("Draft", view.StatusDescription)
	suite.Equal(int64(2500), view.TotalAmount)
	suite.ElementsMatch([]order.Status{order.StatusProcessing, order.StatusCancelled}, view.AvailableTransitions)
	suite.True(view.CanCancel)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_TerminalOrder_NoTransitions() {
	orderID := suite.insertOrder(order.StatusCompleted, 900)

	query, err := queries.NewGetOrderQuery(orderID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(order.StatusCompleted, view.Status)
	suite.Empty(view.AvailableTransitions)
	suite.False(view.CanCancel)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFoundErr)
}

// insertOrder seeds one order row directly.
func (suite *GetOrderQueryHandlerTestSuite) insertOrder(status order.Status, totalAmount int64) kernel.UUID {
	orderID := kernel.NewUUID()
	dto := orderrepo.OrderDTO{
		ID:          orderID.Bytes(),
		Status:      status.String(),
		TotalAmount: totalAmount,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return orderID
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
