package restaurantrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/restaurantrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
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

// RestaurantRepositoryIntegrationTestSuite verifies catalog reads against PostgreSQL.
type RestaurantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *restaurantrepo.GormRestaurantRepository
	tracker    *MockAggregateTracker
	faker      *gofakeit.Faker
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&restaurantrepo.RestaurantDTO{}, &restaurantrepo.ProductDTO{}))
	suite.faker = gofakeit.New(7)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE restaurants, products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = restaurantrepo.NewGormRestaurantRepository(suite.db, suite.tracker)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGet_SeededRestaurant_ReturnsProducts() {
	ctx := context.Background()

	// Given
	seeded := suite.newRestaurant(true, 3)
	suite.tracker.On("TrackAggregate", seeded.ID().UUID(), seeded).Once()
	suite.Require().NoError(suite.repository.Add(ctx, seeded))

	// When
	restored, err := suite.repository.Get(ctx, seeded.ID())

	// Then
	suite.Require().NoError(err)
	suite.True(seeded.ID().IsEqual(restored.ID()))
	suite.True(restored.IsActive())
	suite.Require().Len(restored.Products(), 3)
	for _, product := range seeded.Products() {
		found, findErr := restored.FindProduct(product.ID())
		suite.Require().NoError(findErr)
		suite.Equal(product.Name(), found.Name())
		suite.True(product.Price().IsEqual(found.Price()))
	}
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGet_InactiveRestaurant_KeepsFlag() {
	ctx := context.Background()

	// Given
	seeded := suite.newRestaurant(false, 1)
	suite.tracker.On("TrackAggregate", seeded.ID().UUID(), seeded).Once()
	suite.Require().NoError(suite.repository.Add(ctx, seeded))

	// When
	restored, err := suite.repository.Get(ctx, seeded.ID())

	// Then
	suite.Require().NoError(err)
	suite.False(restored.IsActive())
	suite.Require().ErrorIs(restored.ValidateActive(), restaurant.ErrRestaurantIsNotActive)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGet_UnknownRestaurant_ReturnsNotFoundError() {
	ctx := context.Background()

	// When
	restored, err := suite.repository.Get(ctx, kernel.NewRestaurantID())

	// Then
	suite.Nil(restored)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGet_ZeroID_ReturnsValidationError() {
	ctx := context.Background()

	// When
	restored, err := suite.repository.Get(ctx, kernel.RestaurantID{})

	// Then
	suite.Nil(restored)
	suite.Require().Error(err)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) newRestaurant(active bool, productCount int) *restaurant.Restaurant {
	products := make([]*restaurant.Product, 0, productCount)
	for i := 0; i < productCount; i++ {
		price := kernel.NewMoneyFromCents(int64(suite.faker.IntRange(100, 5000)))
		product, err := restaurant.NewProduct(restaurant.NewProductID(), suite.faker.Dinner(), price)
		suite.Require().NoError(err)
		products = append(products, product)
	}

	r, err := restaurant.NewRestaurant(kernel.NewRestaurantID(), products, active)
	suite.Require().NoError(err)
	return r
}

func TestRestaurantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantRepositoryIntegrationTestSuite))
}
