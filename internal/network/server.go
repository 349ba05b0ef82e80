package network

import (
	"io"
	"net"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vskvj3/vessel/internal/core"
	"github.com/vskvj3/vessel/internal/utils"
)

type Server struct {
	CommandHandler *core.CommandHandler
	Port           string

	mu       sync.Mutex
	listener net.Listener
	conns    map[string]net.Conn
	closed   bool
}

func NewServer(handler *core.CommandHandler, port string) (*Server, error) {
	if handler == nil || handler.Store == nil {
		return nil, errors.New("store is not initialized")
	}
	utils.GetLogger().Info("TCP server initialized on port " + port)
	return &Server{CommandHandler: handler, Port: port, conns: make(map[string]net.Conn)}, nil
}

// Start binds the configured port and serves until Close is called. When
// the port is taken a random one is used instead.
func (s *Server) Start() error {
	logger := utils.GetLogger()

	// Attempt to bind to the configured port
	listener, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		logger.Warn("Port " + s.Port + " unavailable. Selecting a random port...")
		listener, err = net.Listen("tcp", ":0")
		if err != nil {
			return errors.Wrap(err, "start tcp server")
		}
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener until Close is called.
func (s *Server) Serve(listener net.Listener) error {
	logger := utils.GetLogger()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		listener.Close()
		return net.ErrClosed
	}
	s.listener = listener
	s.mu.Unlock()

	logger.Info("Server is listening on " + listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.isClosed() {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			logger.Error("Error accepting connection: " + err.Error())
			continue
		}
		id := uuid.NewString()
		if !s.track(id, conn) {
			conn.Close()
			return nil
		}
		logger.Info("Accepted client " + id + " from " + conn.RemoteAddr().String())
		go s.HandleConnection(id, conn)
	}
}

// Addr returns the bound address, or nil before Serve is called.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close stops accepting and drops every open connection.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for id, conn := range s.conns {
		conn.Close()
		delete(s.conns, id)
	}
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) track(id string, conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[id] = conn
	return true
}

func (s *Server) untrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, id)
}

// HandleConnection reads msgpack requests off conn until the client hangs up.
// Every request gets exactly one response, in order.
func (s *Server) HandleConnection(id string, conn net.Conn) {
	logger := utils.GetLogger()
	defer func() {
		logger.Info("Client disconnected: " + id)
		s.untrack(id)
		conn.Close()
	}()

	decoder := msgpack.NewDecoder(conn)
	encoder := msgpack.NewEncoder(conn)

	for {
		var request map[string]interface{}
		if err := decoder.Decode(&request); err != nil {
			switch {
			case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
				logger.Info("Client closed the connection: " + id)
			default:
				logger.Error("Error reading from client " + id + ": " + err.Error())
			}
			return
		}

		logger.Debug("Received request from client: " + id)

		response, err := s.CommandHandler.HandleCommand(request)
		if err != nil {
			logger.Debug("Command failed for client " + id + ": " + err.Error())
			response = core.ErrorResponse(err)
		}
		if err := encoder.Encode(response); err != nil {
			logger.Error("Failed to send response to " + id + ": " + err.Error())
			return
		}
	}
}
