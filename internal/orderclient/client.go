// Package orderclient sends one order to the order-accepting service and
// reports whether it was accepted.
package orderclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"food-ordering/internal/domain"
	"food-ordering/internal/protocol"
)

const DefaultTimeout = 5 * time.Second

var (
	ErrRemoteUnreachable = errors.New("order service unreachable")
	ErrRemoteRejected    = errors.New("order rejected by order service")
)

// Dialer opens the connection used for a single order.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

type Client struct {
	Addr    string
	Timeout time.Duration
	Dialer  Dialer
}

func New(addr string, timeout time.Duration) *Client {
	return &Client{Addr: addr, Timeout: timeout}
}

// SendOrder opens a fresh connection, writes the order and waits for exactly
// one acknowledgment line. A successful call returns that line.
func (c *Client) SendOrder(ctx context.Context, restaurantID int, total float64, lines []domain.OrderLine) (string, error) {
	for _, line := range lines {
		if !protocol.ValidName(line.FoodName) {
			return "", fmt.Errorf("%w: %w: %q", ErrRemoteUnreachable, protocol.ErrUnsafeName, line.FoodName)
		}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	dialer := c.Dialer
	if dialer == nil {
		dialer = &net.Dialer{Timeout: timeout}
	}

	conn, err := dialer.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return "", fmt.Errorf("%w: dial %s: %v", ErrRemoteUnreachable, c.Addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("%w: set deadline: %v", ErrRemoteUnreachable, err)
	}

	req := protocol.Request{RestaurantID: restaurantID, Total: total, Lines: lines}
	if err := protocol.WriteRequest(conn, req); err != nil {
		return "", fmt.Errorf("%w: write order: %v", ErrRemoteUnreachable, err)
	}

	ack, err := protocol.ReadLine(bufio.NewReader(conn))
	if err != nil {
		return "", fmt.Errorf("%w: read ack: %v", ErrRemoteUnreachable, err)
	}
	if !protocol.IsOK(ack) {
		return ack, fmt.Errorf("%w: %s", ErrRemoteRejected, ack)
	}
	return ack, nil
}

// SendOrder is a one-shot helper around Client.SendOrder.
func SendOrder(ctx context.Context, addr string, timeout time.Duration, restaurantID int, total float64, lines []domain.OrderLine) (string, error) {
	return New(addr, timeout).SendOrder(ctx, restaurantID, total, lines)
}
