package packagerepo_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/packagerepo"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

// PackageRepositoryIntegrationTestSuite provides integration tests for PackageRepository
// using PostgreSQL containers to verify database persistence behavior.
type PackageRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *packagerepo.GormPackageRepository
	tracker    *MockAggregateTracker
}

func (suite *PackageRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError lets the repository map duplicate key violations
	// to domain errors.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&packagerepo.PackageDTO{}))
}

func (suite *PackageRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE packages").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = packagerepo.NewGormPackageRepository(suite.db, suite.tracker)
}

func (suite *PackageRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PackageRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	pkg := suite.newPackage("P1")

	err := suite.repository.Add(context.Background(), pkg)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(context.Background(), pkg.ID())
	suite.Require().NoError(err)

	suite.True(pkg.IsEqual(loaded))
	suite.Equal(pkg.SenderName(), loaded.SenderName())
	suite.Equal(pkg.SenderAddress(), loaded.SenderAddress())
	suite.Equal(pkg.RecipientName(), loaded.RecipientName())
	suite.Equal(pkg.RecipientAddress(), loaded.RecipientAddress())
	suite.InDelta(pkg.Weight(), loaded.Weight(), 0.0001)
	suite.Equal(packages.StatusPending, loaded.Status())
	suite.False(loaded.HasAssignedDriver())
	suite.Nil(loaded.DeliveredAt())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestAdd_Duplicate_ReturnsAlreadyExists() {
	pkg := suite.newPackage("P1")

	suite.Require().NoError(suite.repository.Add(context.Background(), pkg))

	err := suite.repository.Add(context.Background(), pkg)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGet_NotFound() {
	missingID, err := kernel.ParseID("missing")
	suite.Require().NoError(err)

	_, err = suite.repository.Get(context.Background(), missingID)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignmentAndDelivery() {
	pkg := suite.newPackage("P1")
	suite.Require().NoError(suite.repository.Add(context.Background(), pkg))

	driverID, err := kernel.ParseID("D1")
	suite.Require().NoError(err)
	suite.Require().NoError(pkg.AssignTo(driverID))
	suite.Require().NoError(pkg.UpdateStatus(packages.StatusDelivered))

	suite.Require().NoError(suite.repository.Update(context.Background(), pkg))

	loaded, err := suite.repository.Get(context.Background(), pkg.ID())
	suite.Require().NoError(err)
	suite.Equal(packages.StatusDelivered, loaded.Status())
	suite.True(loaded.HasAssignedDriver())
	suite.Equal("D1", loaded.AssignedDriver().String())
	suite.Require().NotNil(loaded.DeliveredAt())
	suite.WithinDuration(*pkg.DeliveredAt(), *loaded.DeliveredAt(), time.Second)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	pkg := suite.newPackage("P1")

	err := suite.repository.Update(context.Background(), pkg)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetAllForDriver_ExcludesDeliveredAndOthers() {
	driverID, err := kernel.ParseID("D1")
	suite.Require().NoError(err)
	otherDriverID, err := kernel.ParseID("D2")
	suite.Require().NoError(err)

	active := suite.newPackage("P1")
	suite.Require().NoError(active.AssignTo(driverID))

	delivered := suite.newPackage("P2")
	suite.Require().NoError(delivered.AssignTo(driverID))
	suite.Require().NoError(delivered.UpdateStatus(packages.StatusDelivered))

	foreign := suite.newPackage("P3")
	suite.Require().NoError(foreign.AssignTo(otherDriverID))

	unassigned := suite.newPackage("P4")

	for _, p := range []*packages.Package{active, delivered, foreign, unassigned} {
		suite.Require().NoError(suite.repository.Add(context.Background(), p))
	}

	route, err := suite.repository.GetAllForDriver(context.Background(), driverID)
	suite.Require().NoError(err)
	suite.Require().Len(route, 1)
	suite.True(active.IsEqual(route[0]))
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetFirstPending_ReturnsOldest() {
	oldest := suite.newPackage("P1")
	newer := suite.newPackage("P2")

	suite.Require().NoError(suite.repository.Add(context.Background(), oldest))
	suite.Require().NoError(suite.repository.Add(context.Background(), newer))

	// Make the first package clearly older than the second.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE packages SET created_at = created_at - interval '1 hour' WHERE id = ?",
		oldest.ID().String(),
	).Error)

	pending, err := suite.repository.GetFirstPending(context.Background())
	suite.Require().NoError(err)
	suite.True(oldest.IsEqual(pending))
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetFirstPending_NonePending() {
	driverID, err := kernel.ParseID("D1")
	suite.Require().NoError(err)

	assigned := suite.newPackage("P1")
	suite.Require().NoError(assigned.AssignTo(driverID))
	suite.Require().NoError(suite.repository.Add(context.Background(), assigned))

	_, err = suite.repository.GetFirstPending(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetAll_OldestFirst() {
	first := suite.newPackage("P1")
	second := suite.newPackage("P2")

	suite.Require().NoError(suite.repository.Add(context.Background(), first))
	suite.Require().NoError(suite.repository.Add(context.Background(), second))

	suite.Require().NoError(suite.db.Exec(
		"UPDATE packages SET created_at = created_at - interval '1 hour' WHERE id = ?",
		first.ID().String(),
	).Error)

	all, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(first.IsEqual(all[0]))
	suite.True(second.IsEqual(all[1]))
}

func (suite *PackageRepositoryIntegrationTestSuite) newPackage(id string) *packages.Package {
	packageID, err := kernel.ParseID(id)
	suite.Require().NoError(err)

	pkg, err := packages.NewPackage(packageID,
		"Acme Corp", "1 Industrial Way", "Jane Doe", "42 Oak St", 2.5)
	suite.Require().NoError(err)
	return pkg
}

func TestPackageRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PackageRepositoryIntegrationTestSuite))
}
