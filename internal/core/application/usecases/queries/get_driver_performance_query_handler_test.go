package queries_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/driverrepo"
	"courier/internal/adapters/out/postgres/packagerepo"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDriverPerformanceQueryHandlerTestSuite struct {
	suite.Suite
	container   *pgcontainer.PostgresContainer
	db          *gorm.DB
	handler     queries.GetDriverPerformanceQueryHandler
	driverRepo  *driverrepo.GormDriverRepository
	packageRepo *packagerepo.GormPackageRepository
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}, &packagerepo.PackageDTO{}))

	suite.handler = queries.NewGetDriverPerformanceQueryHandler(db)
	suite.driverRepo = driverrepo.NewGormDriverRepository(db, &mockAggregateTracker{})
	suite.packageRepo = packagerepo.NewGormPackageRepository(db, &mockAggregateTracker{})
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers, packages").Error)
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetDriverPerformanceQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) TestHandle_RanksByTotalDeliveries() {
	suite.addDriverWithDeliveries("D1", "Alice Johnson", 3)
	suite.addDriverWithDeliveries("D2", "Bob Smith", 7)
	suite.addDriverWithDeliveries("D3", "Carol White", 5)

	query, err := queries.NewGetDriverPerformanceQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Bob Smith", result[0].Name)
	suite.Equal(7, result[0].TotalDeliveries)
	suite.Equal("Carol White", result[1].Name)
	suite.Equal("Alice Johnson", result[2].Name)
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) TestHandle_CapsResultToLimit() {
	suite.addDriverWithDeliveries("D1", "Alice Johnson", 1)
	suite.addDriverWithDeliveries("D2", "Bob Smith", 2)
	suite.addDriverWithDeliveries("D3", "Carol White", 3)

	query, err := queries.NewGetDriverPerformanceQuery(2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Carol White", result[0].Name)
	suite.Equal("Bob Smith", result[1].Name)
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) TestHandle_CountsCurrentLoad() {
	d := suite.addDriverWithDeliveries("D1", "Alice Johnson", 0)

	active := suite.newPackage("P1")
	suite.Require().NoError(active.AssignTo(d.ID()))
	suite.Require().NoError(suite.packageRepo.Add(context.Background(), active))

	delivered := suite.newPackage("P2")
	suite.Require().NoError(delivered.AssignTo(d.ID()))
	suite.Require().NoError(delivered.UpdateStatus(packages.StatusDelivered))
	suite.Require().NoError(suite.packageRepo.Add(context.Background(), delivered))

	query, err := queries.NewGetDriverPerformanceQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(1, result[0].CurrentLoad)
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDriverPerformanceQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetDriverPerformanceQuery constructor")
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) addDriverWithDeliveries(
	id, name string, deliveries int,
) *driver.Driver {
	driverID, err := kernel.ParseID(id)
	suite.Require().NoError(err)

	d, err := driver.NewDriver(driverID, name, "555-0100", driver.VehicleBike)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.driverRepo.Add(context.Background(), d))

	for range deliveries {
		suite.Require().NoError(suite.driverRepo.IncrementDeliveries(context.Background(), d.ID()))
	}

	return d
}

func (suite *GetDriverPerformanceQueryHandlerTestSuite) newPackage(id string) *packages.Package {
	packageID, err := kernel.ParseID(id)
	suite.Require().NoError(err)

	pkg, err := packages.NewPackage(packageID,
		"Acme Corp", "1 Industrial Way", "Jane Doe", "42 Oak St", 2.5)
	suite.Require().NoError(err)
	return pkg
}

func TestGetDriverPerformanceQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDriverPerformanceQueryHandlerTestSuite))
}
