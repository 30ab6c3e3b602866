// Package grpctest runs an in-process storage node speaking the real wire
// protocol. It keeps pools, replicas and nexuses in memory and mimics the
// node's visible behaviour, including the rejections a real node answers
// with, so client code can be tested without provisioning actual storage.
package grpctest

import (
	"fmt"
	"net"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/openebs/mayastor-go/proto/mayastorpb"
)

// Server is a fake storage node listening on a loopback address.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
	node       *node
}

// Start launches a fake node on an ephemeral loopback port. The caller must
// Stop it when done.
func Start() (*Server, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}

	n := newNode(listener.Addr().String())

	grpcServer := grpc.NewServer()
	pb.RegisterMayastorServer(grpcServer, &mayastorService{node: n})
	pb.RegisterBdevRpcServer(grpcServer, &bdevService{node: n})

	s := &Server{
		grpcServer: grpcServer,
		listener:   listener,
		node:       n,
	}

	go func() {
		// Serve returns on Stop, nothing to report.
		_ = grpcServer.Serve(listener)
	}()

	return s, nil
}

// StartServer launches a fake node for the duration of a test.
func StartServer(t testing.TB) *Server {
	t.Helper()

	s, err := Start()
	if err != nil {
		t.Fatalf("start fake node: %v", err)
	}

	t.Cleanup(s.Stop)

	return s
}

// Addr returns the host:port the fake node listens on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Stop shuts the node down and closes the listener.
func (s *Server) Stop() {
	s.grpcServer.Stop()
}
