package s3mark

import (
	"errors"
	"fmt"
)

// Coordinator is the contract between a benchmark server and its clients. A
// server accepts client registrations, broadcasts the run parameters and
// collects the remote summaries. No implementation exists yet.
type Coordinator interface {
	RegisterClient(addr string) error
	BroadcastConfig(cfg *Config) error
	CollectStats() ([]Summary, error)
}

// ErrNotImplemented marks the distributed modes that are declared but not
// built.
var ErrNotImplemented = errors.New("not implemented")

type unimplementedCoordinator struct{}

func (unimplementedCoordinator) RegisterClient(addr string) error  { return ErrNotImplemented }
func (unimplementedCoordinator) BroadcastConfig(cfg *Config) error { return ErrNotImplemented }
func (unimplementedCoordinator) CollectStats() ([]Summary, error)  { return nil, ErrNotImplemented }

// NewCoordinator returns the placeholder coordinator for server mode.
func NewCoordinator() Coordinator {
	return unimplementedCoordinator{}
}

// RunClient would register with a benchmark server and wait for run
// parameters.
func RunClient(cfg *ClientConfig) error {
	return fmt.Errorf("client mode (server %s): %w", cfg.ServerAddr, ErrNotImplemented)
}

// RunServer would accept client registrations on the bind address and
// broadcast the standalone parameters.
func RunServer(cfg *ServerConfig) error {
	return fmt.Errorf("server mode (bind %s:%d): %w", cfg.BindIP, cfg.Port, ErrNotImplemented)
}
