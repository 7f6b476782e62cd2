// Package server accepts orders over the line protocol and writes each one
// to the ledger in a single transaction.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"food-ordering/internal/domain"
	"food-ordering/internal/protocol"
	"food-ordering/internal/service"

	"go.uber.org/zap"
)

const (
	DefaultIdleTimeout = 30 * time.Second
	storedMessage      = "Order stored successfully"
	maxAcceptBackoff   = time.Second
	lingerTimeout      = 500 * time.Millisecond
)

type Server struct {
	Addr        string
	Recorder    service.Recorder
	Logger      *zap.Logger
	IdleTimeout time.Duration

	wg sync.WaitGroup
}

func New(addr string, recorder service.Recorder, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Addr:        addr,
		Recorder:    recorder,
		Logger:      logger,
		IdleTimeout: DefaultIdleTimeout,
	}
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections until ctx is cancelled, handling each one on its
// own goroutine. It returns nil after a cancellation once every open
// connection has been answered or closed.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	s.Logger.Info("order service listening", zap.String("addr", ln.Addr().String()))

	var backoff time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.wg.Wait()
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				s.wg.Wait()
				return err
			}
			if backoff == 0 {
				backoff = 5 * time.Millisecond
			} else if backoff *= 2; backoff > maxAcceptBackoff {
				backoff = maxAcceptBackoff
			}
			s.Logger.Warn("accept failed", zap.Error(err), zap.Duration("retry_in", backoff))
			time.Sleep(backoff)
			continue
		}
		backoff = 0

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(ctx, conn)
		}()
	}
}

// idleConn pushes the read deadline forward before every read so a client
// is only cut off after sitting silent for the whole timeout.
type idleConn struct {
	net.Conn
	timeout time.Duration
}

func (c idleConn) Read(p []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(p)
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.SetDeadline(time.Now()) })
	defer stop()

	logger := s.Logger.With(zap.String("remote", conn.RemoteAddr().String()))
	timeout := s.IdleTimeout
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	r := bufio.NewReader(idleConn{Conn: conn, timeout: timeout})

	var reply string
	first, err := protocol.ReadLine(r)
	switch {
	case errors.Is(err, protocol.ErrProtocolParse):
		logger.Warn("payload rejected", zap.Error(err))
		reply = protocol.Error(oneLine(err))
	case err != nil && !errors.Is(err, io.EOF):
		logger.Warn("read failed before first line", zap.Error(err))
		return
	case err == nil && first == protocol.Header:
		reply = s.handleOrder(ctx, r, logger)
	default:
		if err := s.drain(r, logger); err != nil {
			reply = protocol.Error(oneLine(err))
		} else {
			reply = protocol.OK("")
		}
	}

	conn.SetWriteDeadline(time.Now().Add(timeout))
	if _, err := io.WriteString(conn, reply+"\n"); err != nil {
		logger.Warn("write reply failed", zap.Error(err))
		return
	}
	closeWriteAndWait(conn)
}

// closeWriteAndWait half-closes the connection and discards whatever the
// client still sends so unread input does not reset the reply.
func closeWriteAndWait(conn net.Conn) {
	tcp, ok := conn.(*net.TCPConn)
	if !ok {
		return
	}
	if err := tcp.CloseWrite(); err != nil {
		return
	}
	tcp.SetReadDeadline(time.Now().Add(lingerTimeout))
	io.Copy(io.Discard, tcp)
}

func (s *Server) handleOrder(ctx context.Context, r *bufio.Reader, logger *zap.Logger) string {
	req, err := protocol.ReadRequest(r)
	if err != nil {
		logger.Warn("order rejected", zap.Error(err))
		return protocol.Error(oneLine(err))
	}
	if req.CountMismatch() {
		logger.Warn("item count does not match item lines",
			zap.Int("declared", req.DeclaredItems),
			zap.Int("received", len(req.Lines)))
	}

	orderID, err := s.Recorder.Record(ctx, req.RestaurantID, req.Total, req.Lines, domain.PathRemote)
	if err != nil {
		logger.Error("order not stored", zap.Int("restaurant_id", req.RestaurantID), zap.Error(err))
		return protocol.Error(oneLine(err))
	}
	logger.Info("order accepted", zap.Int("order_id", orderID), zap.Int("restaurant_id", req.RestaurantID))
	return protocol.OK(storedMessage)
}

// drain consumes a legacy payload until the client stops sending. Only an
// oversized line is reported back.
func (s *Server) drain(r *bufio.Reader, logger *zap.Logger) error {
	lines := 0
	for {
		_, err := protocol.ReadLine(r)
		if errors.Is(err, protocol.ErrLineTooLong) {
			logger.Warn("legacy payload rejected", zap.Int("lines", lines), zap.Error(err))
			return err
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Debug("legacy payload ended by read error", zap.Error(err))
			}
			break
		}
		lines++
	}
	logger.Info("legacy payload received", zap.Int("lines", lines))
	return nil
}

func oneLine(err error) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(err.Error())
}
