// Package netdraft is a thin draft of the network/session-handle
// interface `serve` exposes, grounded on network/transport.go's
// net.Listener-backed accept loop. It deliberately stops at the
// interface: the concrete session protocol (handshake, framing, the
// game-state domain a session would drive) is out of scope and left for
// a later iteration.
package netdraft

import (
	"net"

	"github.com/pkg/errors"
)

// Session is one accepted client connection, identified only by its
// remote address until a real protocol is layered on top.
type Session interface {
	// RemoteAddr identifies the connected peer.
	RemoteAddr() net.Addr
	// Close releases the session's underlying connection.
	Close() error
}

// Listener accepts Sessions over a bound TCP address.
type Listener struct {
	ln net.Listener
}

// Listen binds addr and returns a Listener ready to Accept.
func Listen(addr string) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "netdraft: listen on %q", addr)
	}
	return &Listener{ln: ln}, nil
}

// Accept blocks for the next incoming connection and wraps it as a
// Session.
func (l *Listener) Accept() (Session, error) {
	conn, err := l.ln.Accept()
	if err != nil {
		return nil, errors.Wrap(err, "netdraft: accept connection")
	}
	return &session{conn: conn}, nil
}

// Addr returns the address the listener is bound to.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Close stops accepting new connections.
func (l *Listener) Close() error {
	return errors.Wrap(l.ln.Close(), "netdraft: close listener")
}

type session struct {
	conn net.Conn
}

func (s *session) RemoteAddr() net.Addr {
	return s.conn.RemoteAddr()
}

func (s *session) Close() error {
	return errors.Wrap(s.conn.Close(), "netdraft: close session")
}
