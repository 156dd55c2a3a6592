package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCustomerOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCustomerOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders").Error
	suite.Require().NoError(err)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) seedOrder(customerID order.CustomerID) *order.Order {
	aggregate, err := order.NewOrder(customerID)
	suite.Require().NoError(err)

	productID, err := order.ProductIDFrom(kernel.NewUUID())
	suite.Require().NoError(err)

	price, err := kernel.NewMoneyFromString("1000", "JPY")
	suite.Require().NoError(err)

	suite.Require().NoError(aggregate.AddItem(productID, 1, price))
	suite.Require().NoError(suite.orderRepo.Save(context.Background(), aggregate))
	return aggregate
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestListsOnlyTheCustomersOrders() {
	customerID, err := order.CustomerIDFrom(kernel.NewUUID())
	suite.Require().NoError(err)

	otherCustomerID, err := order.CustomerIDFrom(kernel.NewUUID())
	suite.Require().NoError(err)

	first := suite.seedOrder(customerID)
	second := suite.seedOrder(customerID)
	suite.seedOrder(otherCustomerID)

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	responses, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Len(responses, 2)
	ids := []string{responses[0].ID.String(), responses[1].ID.String()}
	suite.Contains(ids, first.ID().String())
	suite.Contains(ids, second.ID().String())
	for _, response := range responses {
		suite.Equal(customerID.String(), response.CustomerID.String())
		suite.Len(response.Items, 1)
	}
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestUnknownCustomerYieldsEmptyList() {
	customerID, err := order.CustomerIDFrom(kernel.NewUUID())
	suite.Require().NoError(err)

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	responses, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(responses)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestIncludesCancelledOrders() {
	customerID, err := order.CustomerIDFrom(kernel.NewUUID())
	suite.Require().NoError(err)

	aggregate := suite.seedOrder(customerID)
	suite.Require().NoError(aggregate.Cancel())
	suite.Require().NoError(suite.orderRepo.Save(context.Background(), aggregate))

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	responses, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(responses, 1)
	suite.Equal("cancelled", responses[0].Status)
}

func TestGetCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetCustomerOrdersQueryHandlerTestSuite))
}
