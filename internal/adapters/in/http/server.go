// Package http exposes the dispatch system's REST API.
// Handlers are thin: they parse requests, run commands, then re-fetch the
// affected read models through queries for the response body and for the
// WebSocket broadcasts that keep dashboards live.
package http

import (
	"context"
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// topPerformersLimit caps the driver leaderboard in the stats API.
const topPerformersLimit = 5

// Notifier pushes live events to connected WebSocket clients.
// A nil-safe no-op implementation can be used when the WebSocket transport
// is disabled.
type Notifier interface {
	BroadcastUpdate(updateType string, data any)
	NotifyDriver(driverID string, message string, data any)
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateDriver        commands.CreateDriverCommandHandler
	CreatePackage       commands.CreatePackageCommandHandler
	AssignPackage       commands.AssignPackageCommandHandler
	CompleteDelivery    commands.CompleteDeliveryCommandHandler
	UpdatePackageStatus commands.UpdatePackageStatusCommandHandler
	UpdateDriverStatus  commands.UpdateDriverStatusCommandHandler

	GetAllDrivers        queries.GetAllDriversQueryHandler
	GetDriver            queries.GetDriverQueryHandler
	GetDriverPackages    queries.GetDriverPackagesQueryHandler
	GetAllPackages       queries.GetAllPackagesQueryHandler
	GetPackage           queries.GetPackageQueryHandler
	GetPackageSummary    queries.GetPackageSummaryQueryHandler
	GetDriverPerformance queries.GetDriverPerformanceQueryHandler
}

// Server wires the REST routes to application use cases.
type Server struct {
	handlers Handlers
	notifier Notifier
}

// NewServer creates an HTTP server facade over the given handlers.
func NewServer(handlers Handlers, notifier Notifier) *Server {
	return &Server{
		handlers: handlers,
		notifier: notifier,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", s.Health)
	api.POST("/login", s.Login)

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers/:id", s.GetDriver)
	api.PUT("/drivers/:id/status", s.UpdateDriverStatus)
	api.GET("/drivers/:id/packages", s.GetDriverPackages)

	api.GET("/packages", s.GetPackages)
	api.POST("/packages", s.CreatePackage)
	api.GET("/packages/:id", s.GetPackage)
	api.PUT("/packages/:id/status", s.UpdatePackageStatus)
	api.POST("/packages/:id/assign", s.AssignPackage)
	api.POST("/packages/:id/complete", s.CompleteDelivery)

	api.GET("/stats/packages", s.GetPackageStats)
	api.GET("/stats/drivers", s.GetDriverStats)
}

// Health handles GET /api/health.
func (s *Server) Health(c echo.Context) error {
	return successMessage(c, http.StatusOK, "healthy", nil)
}

type loginRequest struct {
	DriverID string `json:"driver_id"`
}

// Login handles POST /api/login. Drivers authenticate with their ID only;
// a successful login returns the driver's current state.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	driverID, err := kernel.ParseID(req.DriverID)
	if err != nil {
		return fail(c, err)
	}

	resp, err := s.fetchDriver(c.Request().Context(), driverID)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, resp)
}

// GetDrivers handles GET /api/drivers with an optional ?status= filter.
func (s *Server) GetDrivers(c echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	if raw := c.QueryParam("status"); raw != "" {
		status, err := driver.ParseStatus(raw)
		if err != nil {
			return fail(c, err)
		}
		query, err = queries.NewGetAllDriversQueryWithStatus(status)
		if err != nil {
			return fail(c, err)
		}
	}

	drivers, err := s.handlers.GetAllDrivers.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, lo.Map(drivers,
		func(d queries.GetAllDriversQueryResponse, _ int) driverResponse {
			return toDriverResponse(d)
		}))
}

type createDriverRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
}

// CreateDriver handles POST /api/drivers. When the client does not supply an
// ID, one is generated.
func (s *Server) CreateDriver(c echo.Context) error {
	var req createDriverRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	driverID := kernel.NewID()
	if req.ID != "" {
		var err error
		driverID, err = kernel.ParseID(req.ID)
		if err != nil {
			return fail(c, err)
		}
	}

	vehicleType, err := driver.ParseVehicleType(req.VehicleType)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewCreateDriverCommand(driverID, req.Name, req.Phone, vehicleType)
	if err != nil {
		return fail(c, err)
	}

	if err = s.handlers.CreateDriver.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	resp, err := s.fetchDriver(c.Request().Context(), driverID)
	if err != nil {
		return fail(c, err)
	}

	s.notifier.BroadcastUpdate("driver_created", resp)
	return success(c, http.StatusCreated, resp)
}

// GetDriver handles GET /api/drivers/:id.
func (s *Server) GetDriver(c echo.Context) error {
	driverID, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	resp, err := s.fetchDriver(c.Request().Context(), driverID)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, resp)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateDriverStatus handles PUT /api/drivers/:id/status.
// This is a manual override: the requested status wins even when it
// disagrees with the driver's current workload.
func (s *Server) UpdateDriverStatus(c echo.Context) error {
	driverID, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status, err := driver.ParseStatus(req.Status)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewUpdateDriverStatusCommand(driverID, status)
	if err != nil {
		return fail(c, err)
	}

	if err = s.handlers.UpdateDriverStatus.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	resp, err := s.fetchDriver(c.Request().Context(), driverID)
	if err != nil {
		return fail(c, err)
	}

	s.notifier.BroadcastUpdate("driver_status_changed", resp)
	return success(c, http.StatusOK, resp)
}

// GetDriverPackages handles GET /api/drivers/:id/packages and returns the
// driver's active route.
func (s *Server) GetDriverPackages(c echo.Context) error {
	driverID, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	query, err := queries.NewGetDriverPackagesQuery(driverID)
	if err != nil {
		return fail(c, err)
	}

	route, err := s.handlers.GetDriverPackages.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, lo.Map(route,
		func(p queries.GetAllPackagesQueryResponse, _ int) packageResponse {
			return toPackageResponse(p)
		}))
}

// GetPackages handles GET /api/packages with an optional ?status= filter.
func (s *Server) GetPackages(c echo.Context) error {
	query := queries.NewGetAllPackagesQuery()

	if raw := c.QueryParam("status"); raw != "" {
		status, err := packages.ParseStatus(raw)
		if err != nil {
			return fail(c, err)
		}
		query, err = queries.NewGetAllPackagesQueryWithStatus(status)
		if err != nil {
			return fail(c, err)
		}
	}

	pkgs, err := s.handlers.GetAllPackages.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, lo.Map(pkgs,
		func(p queries.GetAllPackagesQueryResponse, _ int) packageResponse {
			return toPackageResponse(p)
		}))
}

type createPackageRequest struct {
	ID               string  `json:"id"`
	SenderName       string  `json:"sender_name"`
	SenderAddress    string  `json:"sender_address"`
	RecipientName    string  `json:"recipient_name"`
	RecipientAddress string  `json:"recipient_address"`
	Weight           float64 `json:"weight"`
}

// CreatePackage handles POST /api/packages. When the client does not supply
// an ID, one is generated.
func (s *Server) CreatePackage(c echo.Context) error {
	var req createPackageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	packageID := kernel.NewID()
	if req.ID != "" {
		var err error
		packageID, err = kernel.ParseID(req.ID)
		if err != nil {
			return fail(c, err)
		}
	}

	cmd, err := commands.NewCreatePackageCommand(packageID, req.SenderName, req.SenderAddress,
		req.RecipientName, req.RecipientAddress, req.Weight)
	if err != nil {
		return fail(c, err)
	}

	if err = s.handlers.CreatePackage.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	resp, err := s.fetchPackage(c.Request().Context(), packageID)
	if err != nil {
		return fail(c, err)
	}

	s.notifier.BroadcastUpdate("package_created", resp)
	return success(c, http.StatusCreated, resp)
}

// GetPackage handles GET /api/packages/:id.
func (s *Server) GetPackage(c echo.Context) error {
	packageID, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	resp, err := s.fetchPackage(c.Request().Context(), packageID)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, resp)
}

// UpdatePackageStatus handles PUT /api/packages/:id/status.
func (s *Server) UpdatePackageStatus(c echo.Context) error {
	packageID, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status, err := packages.ParseStatus(req.Status)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewUpdatePackageStatusCommand(packageID, status)
	if err != nil {
		return fail(c, err)
	}

	if err = s.handlers.UpdatePackageStatus.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	resp, err := s.fetchPackage(c.Request().Context(), packageID)
	if err != nil {
		return fail(c, err)
	}

	s.notifier.BroadcastUpdate("package_status_changed", resp)
	return success(c, http.StatusOK, resp)
}

type assignPackageRequest struct {
	DriverID string `json:"driver_id"`
}

// AssignPackage handles POST /api/packages/:id/assign. The assigned driver is
// notified in their room; everyone else sees the board update.
func (s *Server) AssignPackage(c echo.Context) error {
	packageID, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	var req assignPackageRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	driverID, err := kernel.ParseID(req.DriverID)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewAssignPackageCommand(packageID, driverID)
	if err != nil {
		return fail(c, err)
	}

	if err = s.handlers.AssignPackage.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	resp, err := s.fetchPackage(c.Request().Context(), packageID)
	if err != nil {
		return fail(c, err)
	}

	s.notifier.BroadcastUpdate("package_assigned", resp)
	s.notifier.NotifyDriver(driverID.String(), "You have been assigned a new package", resp)
	return success(c, http.StatusOK, resp)
}

// CompleteDelivery handles POST /api/packages/:id/complete.
func (s *Server) CompleteDelivery(c echo.Context) error {
	packageID, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(packageID)
	if err != nil {
		return fail(c, err)
	}

	if err = s.handlers.CompleteDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	resp, err := s.fetchPackage(c.Request().Context(), packageID)
	if err != nil {
		return fail(c, err)
	}

	s.notifier.BroadcastUpdate("package_delivered", resp)
	if resp.AssignedDriver != nil {
		s.notifier.NotifyDriver(*resp.AssignedDriver, "Delivery completed", resp)
	}
	return success(c, http.StatusOK, resp)
}

// GetPackageStats handles GET /api/stats/packages.
func (s *Server) GetPackageStats(c echo.Context) error {
	summary, err := s.handlers.GetPackageSummary.Handle(c.Request().Context(),
		queries.NewGetPackageSummaryQuery())
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, packageSummaryResponse{
		Total:     summary.Total,
		Pending:   summary.Pending,
		Assigned:  summary.Assigned,
		InTransit: summary.InTransit,
		Delivered: summary.Delivered,
	})
}

// GetDriverStats handles GET /api/stats/drivers and returns the top
// performing drivers.
func (s *Server) GetDriverStats(c echo.Context) error {
	query, err := queries.NewGetDriverPerformanceQuery(topPerformersLimit)
	if err != nil {
		return fail(c, err)
	}

	performers, err := s.handlers.GetDriverPerformance.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return success(c, http.StatusOK, map[string]any{
		"top_performers": lo.Map(performers,
			func(p queries.GetDriverPerformanceQueryResponse, _ int) performerResponse {
				return toPerformerResponse(p)
			}),
	})
}

func (s *Server) fetchDriver(ctx context.Context, driverID kernel.ID) (driverResponse, error) {
	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return driverResponse{}, err
	}

	d, err := s.handlers.GetDriver.Handle(ctx, query)
	if err != nil {
		return driverResponse{}, err
	}

	return toDriverResponse(d), nil
}

func (s *Server) fetchPackage(ctx context.Context, packageID kernel.ID) (packageResponse, error) {
	query, err := queries.NewGetPackageQuery(packageID)
	if err != nil {
		return packageResponse{}, err
	}

	p, err := s.handlers.GetPackage.Handle(ctx, query)
	if err != nil {
		return packageResponse{}, err
	}

	return toPackageResponse(p), nil
}
