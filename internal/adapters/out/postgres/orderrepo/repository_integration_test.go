package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AdmittedOrder_PersistsOrderAndItems() {
	ctx := context.Background()

	// Given
	admitted := suite.newAdmittedOrder()
	suite.tracker.On("TrackAggregate", admitted.ID().UUID(), admitted).Once()

	// When
	err := suite.repository.Add(ctx, admitted)

	// Then
	suite.Require().NoError(err)
	suite.assertCount("orders", 1)
	suite.assertCount("order_items", 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotAdmittedOrder_IsRejected() {
	ctx := context.Background()

	// Given an order that was validated but never initialized
	draft := suite.newDraftOrder()

	// When
	err := suite.repository.Add(ctx, draft)

	// Then
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.assertCount("orders", 0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RestoresAggregate() {
	ctx := context.Background()

	// Given
	original := suite.addOrder(ctx)

	// When
	restored, err := suite.repository.Get(ctx, original.ID())

	// Then
	suite.Require().NoError(err)
	suite.True(original.ID().IsEqual(restored.ID()))
	suite.True(original.TrackingID().IsEqual(restored.TrackingID()))
	suite.True(original.CustomerID().IsEqual(restored.CustomerID()))
	suite.True(original.RestaurantID().IsEqual(restored.RestaurantID()))
	suite.True(original.DeliveryAddress().IsEqual(restored.DeliveryAddress()))
	suite.Equal("17.50", restored.Price().String())
	suite.Equal(order.Pending, restored.Status())
	suite.Empty(restored.FailureMessages())

	items := restored.Items()
	suite.Require().Len(items, 2)
	for i, item := range items {
		suite.Equal(order.ItemID(i+1), item.ID())
		suite.True(original.ID().IsEqual(item.OrderID()))
		suite.True(item.IsPriceValid())
		suite.True(original.Items()[i].Product().ID().IsEqual(item.Product().ID()))
	}
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// When
	restored, err := suite.repository.Get(ctx, kernel.NewOrderID())

	// Then
	suite.Nil(restored)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingID_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	// Given
	original := suite.addOrder(ctx)

	// When
	restored, err := suite.repository.GetByTrackingID(ctx, original.TrackingID())

	// Then
	suite.Require().NoError(err)
	suite.True(original.ID().IsEqual(restored.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingID_UnknownTrackingID_ReturnsNotFoundError() {
	ctx := context.Background()

	// When
	restored, err := suite.repository.GetByTrackingID(ctx, order.NewTrackingID())

	// Then
	suite.Nil(restored)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions_ArePersisted() {
	testCases := []struct {
		name     string
		apply    func(*order.Order) error
		status   order.Status
		messages []string
	}{
		{
			name:   "pending to paid",
			apply:  (*order.Order).Pay,
			status: order.Paid,
		},
		{
			name: "paid to cancelling with messages",
			apply: func(o *order.Order) error {
				if err := o.Pay(); err != nil {
					return err
				}
				return o.InitCancel([]string{"payment refused"})
			},
			status:   order.Cancelling,
			messages: []string{"payment refused"},
		},
		{
			name: "pending to cancelled",
			apply: func(o *order.Order) error {
				return o.Cancel([]string{"payment timeout"})
			},
			status:   order.Cancelled,
			messages: []string{"payment timeout"},
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			// Given
			stored := suite.addOrder(ctx)
			suite.Require().NoError(tc.apply(stored))
			suite.tracker.On("TrackAggregate", stored.ID().UUID(), stored).Once()

			// When
			err := suite.repository.Update(ctx, stored)

			// Then
			suite.Require().NoError(err)
			restored, err := suite.repository.Get(ctx, stored.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.status, restored.Status())
			suite.Equal(tc.messages, restored.FailureMessages())
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Given an admitted order that was never added
	admitted := suite.newAdmittedOrder()

	// When
	err := suite.repository.Update(ctx, admitted)

	// Then
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingCreatedBefore_ReturnsOnlyExpiredPendingOrders() {
	ctx := context.Background()

	// Given
	expired := suite.addOrder(ctx)
	fresh := suite.addOrder(ctx)
	paid := suite.addOrder(ctx)

	suite.Require().NoError(paid.Pay())
	suite.tracker.On("TrackAggregate", paid.ID().UUID(), paid).Once()
	suite.Require().NoError(suite.repository.Update(ctx, paid))

	old := time.Now().Add(-time.Hour)
	suite.backdate(expired, old)
	suite.backdate(paid, old)

	// When
	orders, err := suite.repository.GetAllPendingCreatedBefore(ctx, time.Now().Add(-30*time.Minute))

	// Then
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(expired.ID().IsEqual(orders[0].ID()))
	suite.Len(orders[0].Items(), 2)
	suite.False(fresh.ID().IsEqual(orders[0].ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingCreatedBefore_NothingExpired_ReturnsEmptySlice() {
	ctx := context.Background()

	// Given
	suite.addOrder(ctx)

	// When
	orders, err := suite.repository.GetAllPendingCreatedBefore(ctx, time.Now().Add(-time.Hour))

	// Then
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) newDraftOrder() *order.Order {
	product := func(name, price string) *restaurant.Product {
		p, err := restaurant.NewProduct(restaurant.NewProductID(), name, kernel.MustParseMoney(price))
		suite.Require().NoError(err)
		return p
	}
	item := func(p *restaurant.Product, quantity int, subTotal string) *order.OrderItem {
		i, err := order.NewOrderItem(order.ItemParams{
			Product:  p,
			Quantity: quantity,
			Price:    p.Price(),
			SubTotal: kernel.MustParseMoney(subTotal),
		})
		suite.Require().NoError(err)
		return i
	}

	address, err := kernel.NewStreetAddress(kernel.NewUUID(), "1 Main St", "10115", "Berlin")
	suite.Require().NoError(err)

	draft, err := order.NewOrder(order.Params{
		CustomerID:      kernel.NewCustomerID(),
		RestaurantID:    kernel.NewRestaurantID(),
		DeliveryAddress: address,
		Price:           kernel.MustParseMoney("17.50"),
		Items: []*order.OrderItem{
			item(product("Dumplings", "5.00"), 2, "10.00"),
			item(product("Noodles", "7.50"), 1, "7.50"),
		},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(draft.ValidateOrder())
	return draft
}

func (suite *OrderRepositoryIntegrationTestSuite) newAdmittedOrder() *order.Order {
	admitted := suite.newDraftOrder()
	suite.Require().NoError(admitted.Initialize())
	return admitted
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(ctx context.Context) *order.Order {
	admitted := suite.newAdmittedOrder()
	suite.tracker.On("TrackAggregate", admitted.ID().UUID(), admitted).Once()
	suite.Require().NoError(suite.repository.Add(ctx, admitted))
	return admitted
}

func (suite *OrderRepositoryIntegrationTestSuite) backdate(o *order.Order, createdAt time.Time) {
	err := suite.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?", createdAt, o.ID().UUID().Value()).Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
