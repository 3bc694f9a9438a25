package netdraft

import (
	"net"
	"testing"
)

func TestListenAcceptRoundTrip(t *testing.T) {
	ln, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ln.Close()

	acceptedCh := make(chan Session, 1)
	errCh := make(chan error, 1)
	go func() {
		s, err := ln.Accept()
		if err != nil {
			errCh <- err
			return
		}
		acceptedCh <- s
	}()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	select {
	case s := <-acceptedCh:
		defer s.Close()
		if s.RemoteAddr() == nil {
			t.Fatalf("expected a remote address")
		}
	case err := <-errCh:
		t.Fatalf("accept failed: %v", err)
	}
}
