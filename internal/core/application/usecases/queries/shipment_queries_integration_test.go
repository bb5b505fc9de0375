package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopAggregateTracker satisfies the repository tracker without recording anything.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.ID, _ interface{}) {}

type ShipmentQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *shipmentrepo.GormShipmentRepository
}

func (suite *ShipmentQueriesIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.repo = shipmentrepo.NewGormShipmentRepository(db, &noopAggregateTracker{})
}

func (suite *ShipmentQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ShipmentQueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ShipmentQueriesIntegrationTestSuite) persistShipment(tracking string) *shipment.Shipment {
	dispatched := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	estimated := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	s, err := shipment.NewShipment(
		tracking, shipment.Oca, shipment.Express, 1500.50, &dispatched, &estimated, shipment.InTransit,
	)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), s)
	suite.Require().NoError(err)

	return s
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetAllShipments_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetAllShipmentsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAllShipmentsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetAllShipments_MapsAllFields() {
	persisted := suite.persistShipment("TRK-1")
	handler := queries.NewGetAllShipmentsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAllShipmentsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(persisted.ID(), result[0].ID)
	suite.Equal("TRK-1", result[0].Tracking)
	suite.Equal("OCA", result[0].Carrier)
	suite.Equal("EXPRESS", result[0].ServiceLevel)
	suite.InDelta(1500.50, result[0].Cost, 0.001)
	suite.Equal("IN_TRANSIT", result[0].Status)
	suite.Require().NotNil(result[0].DispatchedOn)
	suite.Equal(persisted.DispatchedOn().Format(time.DateOnly), result[0].DispatchedOn.Format(time.DateOnly))
	suite.Require().NotNil(result[0].EstimatedOn)
	suite.Equal(persisted.EstimatedOn().Format(time.DateOnly), result[0].EstimatedOn.Format(time.DateOnly))
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetAllShipments_SkipsDeletedAndOrdersByID() {
	first := suite.persistShipment("TRK-1")
	deleted := suite.persistShipment("TRK-2")
	third := suite.persistShipment("TRK-3")

	err := suite.repo.SoftDelete(context.Background(), deleted.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetAllShipmentsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllShipmentsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(third.ID(), result[1].ID)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetAllShipments_LargeSet_SortedByID() {
	for range 50 {
		s, err := shipment.NewShipment(
			uuid.NewString(), shipment.Andreani, shipment.Standard, 100, nil, nil, shipment.Preparing,
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repo.Add(context.Background(), s))
	}

	handler := queries.NewGetAllShipmentsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllShipmentsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 50)
	for i := 1; i < len(result); i++ {
		suite.Less(result[i-1].ID.Int64(), result[i].ID.Int64())
	}
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetAllShipments_InvalidQuery_ReturnsError() {
	handler := queries.NewGetAllShipmentsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.GetAllShipmentsQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetShipment_ReturnsShipment() {
	persisted := suite.persistShipment("TRK-1")
	handler := queries.NewGetShipmentQueryHandler(suite.db)

	query, err := queries.NewGetShipmentQuery(persisted.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(persisted.ID(), result.ID)
	suite.Equal("TRK-1", result.Tracking)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetShipment_Missing_ReturnsNotFound() {
	handler := queries.NewGetShipmentQueryHandler(suite.db)

	missingID, err := kernel.NewID(424242)
	suite.Require().NoError(err)
	query, err := queries.NewGetShipmentQuery(missingID)
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "object not found")
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetShipment_SoftDeleted_ReturnsNotFound() {
	persisted := suite.persistShipment("TRK-1")
	err := suite.repo.SoftDelete(context.Background(), persisted.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetShipmentQueryHandler(suite.db)
	query, err := queries.NewGetShipmentQuery(persisted.ID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "object not found")
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestFindShipmentByTracking_ReturnsShipment() {
	persisted := suite.persistShipment("TRK-1")
	handler := queries.NewFindShipmentByTrackingQueryHandler(suite.db)

	query, err := queries.NewFindShipmentByTrackingQuery("TRK-1")
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(persisted.ID(), result.ID)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestFindShipmentByTracking_DeletedOnly_ReturnsNotFound() {
	persisted := suite.persistShipment("TRK-1")
	err := suite.repo.SoftDelete(context.Background(), persisted.ID())
	suite.Require().NoError(err)

	handler := queries.NewFindShipmentByTrackingQueryHandler(suite.db)
	query, err := queries.NewFindShipmentByTrackingQuery("TRK-1")
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "object not found")
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestFindShipmentByTracking_EmptyTracking_Rejected() {
	_, err := queries.NewFindShipmentByTrackingQuery("")

	suite.Require().Error(err)
	suite.Contains(err.Error(), "value is required")
}

func TestShipmentQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentQueriesIntegrationTestSuite))
}
