// Package tcp implements the line-oriented JSON protocol driver terminals
// speak. Each connection carries a stream of newline-delimited requests; the
// server answers every request with exactly one response frame.
package tcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
	"courier/internal/pkg/errs"
)

// maxFrameSize bounds a single request line.
const maxFrameSize = 64 * 1024

// Notifier pushes live events to connected WebSocket clients.
type Notifier interface {
	BroadcastUpdate(updateType string, data any)
	NotifyDriver(driverID string, message string, data any)
}

// Handlers bundles the use cases the driver protocol dispatches to.
type Handlers struct {
	UpdatePackageStatus commands.UpdatePackageStatusCommandHandler
	CompleteDelivery    commands.CompleteDeliveryCommandHandler

	GetDriver         queries.GetDriverQueryHandler
	GetDriverPackages queries.GetDriverPackagesQueryHandler
	GetPackage        queries.GetPackageQueryHandler
}

// Server accepts driver terminal connections and serves their requests.
type Server struct {
	handlers Handlers
	notifier Notifier
	logger   *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	closed   bool
}

// NewServer creates a driver protocol server.
func NewServer(handlers Handlers, notifier Notifier, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		notifier: notifier,
		logger:   logger.With("component", "tcp_server"),
		conns:    make(map[net.Conn]struct{}),
	}
}

// ListenAndServe listens on addr and serves connections until Shutdown is
// called. It always returns a non-nil error; after Shutdown the error is
// net.ErrClosed.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		listener.Close()
		return net.ErrClosed
	}
	s.listener = listener
	s.mu.Unlock()

	s.logger.Info("driver protocol listening", "addr", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		go s.HandleConn(conn)
	}
}

// Shutdown closes the listener and every open connection.
func (s *Server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.listener != nil {
		s.listener.Close()
	}
	for conn := range s.conns {
		conn.Close()
	}
}

// HandleConn serves one driver connection until it is closed or a frame
// cannot be read.
func (s *Server) HandleConn(conn net.Conn) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return
	}
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxFrameSize)
	encoder := json.NewEncoder(conn)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var request Request
		if err := json.Unmarshal(line, &request); err != nil {
			s.writeResponse(encoder, Response{Status: statusError, Message: "malformed request"})
			continue
		}

		response := s.processRequest(context.Background(), request)
		if !s.writeResponse(encoder, response) {
			return
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		s.logger.Warn("connection read failed", "error", err)
	}
}

func (s *Server) writeResponse(encoder *json.Encoder, response Response) bool {
	if err := encoder.Encode(response); err != nil {
		s.logger.Warn("connection write failed", "error", err)
		return false
	}
	return true
}

func (s *Server) processRequest(ctx context.Context, request Request) Response {
	switch request.Action {
	case ActionLogin:
		return s.login(ctx, request.Data)
	case ActionGetMyPackages:
		return s.getMyPackages(ctx, request.Data)
	case ActionUpdatePackageStatus:
		return s.updatePackageStatus(ctx, request.Data)
	case ActionCompleteDelivery:
		return s.completeDelivery(ctx, request.Data)
	case ActionGetDriverInfo:
		return s.getDriverInfo(ctx, request.Data)
	case ActionGetPackageDetails:
		return s.getPackageDetails(ctx, request.Data)
	default:
		return Response{Status: statusError, Message: "unknown action"}
	}
}

func (s *Server) login(ctx context.Context, data json.RawMessage) Response {
	driver, response := s.fetchDriver(ctx, data)
	if response != nil {
		return *response
	}

	return Response{
		Status:  statusSuccess,
		Message: fmt.Sprintf("Welcome %s!", driver.Name),
		Data:    *driver,
	}
}

func (s *Server) getMyPackages(ctx context.Context, data json.RawMessage) Response {
	var payload driverIDPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Response{Status: statusError, Message: "malformed request"}
	}

	driverID, err := kernel.ParseID(payload.DriverID)
	if err != nil {
		return errorResponse(err)
	}

	query, err := queries.NewGetDriverPackagesQuery(driverID)
	if err != nil {
		return errorResponse(err)
	}

	route, err := s.handlers.GetDriverPackages.Handle(ctx, query)
	if err != nil {
		return errorResponse(err)
	}

	payloads := make([]packagePayload, 0, len(route))
	for _, p := range route {
		payloads = append(payloads, toPackagePayload(p))
	}
	return Response{Status: statusSuccess, Data: payloads}
}

func (s *Server) updatePackageStatus(ctx context.Context, data json.RawMessage) Response {
	var payload updatePackageStatusPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Response{Status: statusError, Message: "malformed request"}
	}

	packageID, err := kernel.ParseID(payload.PackageID)
	if err != nil {
		return errorResponse(err)
	}

	status, err := packages.ParseStatus(payload.Status)
	if err != nil {
		return errorResponse(err)
	}

	cmd, err := commands.NewUpdatePackageStatusCommand(packageID, status)
	if err != nil {
		return errorResponse(err)
	}

	if err = s.handlers.UpdatePackageStatus.Handle(ctx, cmd); err != nil {
		return errorResponse(err)
	}

	if p, fetchErr := s.fetchPackage(ctx, packageID); fetchErr == nil {
		s.notifier.BroadcastUpdate("package_status_changed", p)
	}
	return Response{Status: statusSuccess, Message: "Package status updated"}
}

func (s *Server) completeDelivery(ctx context.Context, data json.RawMessage) Response {
	var payload packageIDPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Response{Status: statusError, Message: "malformed request"}
	}

	packageID, err := kernel.ParseID(payload.PackageID)
	if err != nil {
		return errorResponse(err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(packageID)
	if err != nil {
		return errorResponse(err)
	}

	if err = s.handlers.CompleteDelivery.Handle(ctx, cmd); err != nil {
		return errorResponse(err)
	}

	if p, fetchErr := s.fetchPackage(ctx, packageID); fetchErr == nil {
		s.notifier.BroadcastUpdate("package_delivered", p)
	}
	return Response{Status: statusSuccess, Message: "Delivery completed!"}
}

func (s *Server) getDriverInfo(ctx context.Context, data json.RawMessage) Response {
	driver, response := s.fetchDriver(ctx, data)
	if response != nil {
		return *response
	}
	return Response{Status: statusSuccess, Data: *driver}
}

func (s *Server) getPackageDetails(ctx context.Context, data json.RawMessage) Response {
	var payload packageIDPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Response{Status: statusError, Message: "malformed request"}
	}

	packageID, err := kernel.ParseID(payload.PackageID)
	if err != nil {
		return errorResponse(err)
	}

	p, err := s.fetchPackage(ctx, packageID)
	if err != nil {
		return errorResponse(err)
	}
	return Response{Status: statusSuccess, Data: p}
}

func (s *Server) fetchDriver(ctx context.Context, data json.RawMessage) (*driverPayload, *Response) {
	var payload driverIDPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &Response{Status: statusError, Message: "malformed request"}
	}

	driverID, err := kernel.ParseID(payload.DriverID)
	if err != nil {
		response := errorResponse(err)
		return nil, &response
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		response := errorResponse(err)
		return nil, &response
	}

	d, err := s.handlers.GetDriver.Handle(ctx, query)
	if err != nil {
		response := errorResponse(err)
		return nil, &response
	}

	driver := toDriverPayload(d)
	return &driver, nil
}

func (s *Server) fetchPackage(ctx context.Context, packageID kernel.ID) (packagePayload, error) {
	query, err := queries.NewGetPackageQuery(packageID)
	if err != nil {
		return packagePayload{}, err
	}

	p, err := s.handlers.GetPackage.Handle(ctx, query)
	if err != nil {
		return packagePayload{}, err
	}
	return toPackagePayload(p), nil
}

func errorResponse(err error) Response {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return Response{Status: statusError, Message: err.Error()}
	default:
		return Response{Status: statusError, Message: "internal error"}
	}
}
