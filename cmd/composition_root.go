package cmd

import (
	"log/slog"

	httpadapter "courier/internal/adapters/in/http"
	"courier/internal/adapters/in/tcp"
	"courier/internal/adapters/in/ws"
	"courier/internal/adapters/out/postgres"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	hub        *ws.Hub
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		hub:        ws.NewHub(logger),
	}
}

func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDriverStatusCommandHandler() commands.UpdateDriverStatusCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePackageStatusCommandHandler() commands.UpdatePackageStatusCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePackageStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPackageCommandHandler() commands.AssignPackageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchPackageCommandHandler() commands.DispatchPackageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverPackagesQueryHandler() queries.GetDriverPackagesQueryHandler {
	return queries.NewGetDriverPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPackagesQueryHandler() queries.GetAllPackagesQueryHandler {
	return queries.NewGetAllPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageSummaryQueryHandler() queries.GetPackageSummaryQueryHandler {
	return queries.NewGetPackageSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverPerformanceQueryHandler() queries.GetDriverPerformanceQueryHandler {
	return queries.NewGetDriverPerformanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateDriver:        c.CreateCreateDriverCommandHandler(),
		CreatePackage:       c.CreateCreatePackageCommandHandler(),
		AssignPackage:       c.CreateAssignPackageCommandHandler(),
		CompleteDelivery:    c.CreateCompleteDeliveryCommandHandler(),
		UpdatePackageStatus: c.CreateUpdatePackageStatusCommandHandler(),
		UpdateDriverStatus:  c.CreateUpdateDriverStatusCommandHandler(),

		GetAllDrivers:        c.CreateGetAllDriversQueryHandler(),
		GetDriver:            c.CreateGetDriverQueryHandler(),
		GetDriverPackages:    c.CreateGetDriverPackagesQueryHandler(),
		GetAllPackages:       c.CreateGetAllPackagesQueryHandler(),
		GetPackage:           c.CreateGetPackageQueryHandler(),
		GetPackageSummary:    c.CreateGetPackageSummaryQueryHandler(),
		GetDriverPerformance: c.CreateGetDriverPerformanceQueryHandler(),
	}, c.hub)
}

func (c *CompositionRoot) CreateTCPServer() *tcp.Server {
	return tcp.NewServer(tcp.Handlers{
		UpdatePackageStatus: c.CreateUpdatePackageStatusCommandHandler(),
		CompleteDelivery:    c.CreateCompleteDeliveryCommandHandler(),

		GetDriver:         c.CreateGetDriverQueryHandler(),
		GetDriverPackages: c.CreateGetDriverPackagesQueryHandler(),
		GetPackage:        c.CreateGetPackageQueryHandler(),
	}, c.hub, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchPackageCommandHandler(), c.logger)
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
