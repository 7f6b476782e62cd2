// Package protocol implements the line-oriented order hand-off between the
// ordering client and the order-accepting service.
//
//	ORDER
//	RESTAURANT_ID:<integer>
//	TOTAL:<decimal>
//	ITEMS:<integer count>
//	ITEM:<name>|<quantity>|<unit price>
//	END_ORDER
//
// The peer answers with a single line, OK[:message] or ERROR:<message>.
// Food names must not contain '|' or a newline.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"food-ordering/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	Header     = "ORDER"
	Terminator = "END_ORDER"

	prefixRestaurant = "RESTAURANT_ID:"
	prefixTotal      = "TOTAL:"
	prefixItems      = "ITEMS:"
	prefixItem       = "ITEM:"

	ackOK    = "OK"
	ackError = "ERROR"

	fieldSeparator = "|"

	// MaxLineLength bounds a single protocol line, line ending excluded.
	MaxLineLength = 4096
)

var (
	ErrProtocolParse = errors.New("malformed order payload")
	ErrLineTooLong   = fmt.Errorf("%w: line longer than %d bytes", ErrProtocolParse, MaxLineLength)
	ErrUnsafeName    = errors.New("food name cannot be sent over the order protocol")
)

// ValidName reports whether name can travel as an ITEM field.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != "" && !strings.ContainsAny(name, fieldSeparator+"\r\n")
}

type Request struct {
	RestaurantID int
	Total        float64
	// DeclaredItems is the ITEMS count as sent; the terminator, not this
	// count, decides how many lines the order has.
	DeclaredItems int
	Lines         []domain.OrderLine
}

func (r Request) CountMismatch() bool {
	return r.DeclaredItems != len(r.Lines)
}

// FormatAmount writes a money value with two decimals.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func WriteRequest(w io.Writer, req Request) error {
	for _, line := range req.Lines {
		if !ValidName(line.FoodName) {
			return fmt.Errorf("%w: %q", ErrUnsafeName, line.FoodName)
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	fmt.Fprintf(bw, "%s%d\n", prefixRestaurant, req.RestaurantID)
	fmt.Fprintf(bw, "%s%s\n", prefixTotal, FormatAmount(req.Total))
	fmt.Fprintf(bw, "%s%d\n", prefixItems, len(req.Lines))
	for _, line := range req.Lines {
		fmt.Fprintf(bw, "%s%s%s%d%s%s\n", prefixItem,
			line.FoodName, fieldSeparator, line.Quantity, fieldSeparator, FormatAmount(line.UnitPrice))
	}
	fmt.Fprintln(bw, Terminator)
	return bw.Flush()
}

// ReadLine returns the next line without its line ending. A final line that
// is not newline-terminated is still returned. Lines over MaxLineLength fail
// with ErrLineTooLong.
func ReadLine(r *bufio.Reader) (string, error) {
	var buf []byte
	for {
		chunk, err := r.ReadSlice('\n')
		if len(buf)+len(chunk) > MaxLineLength+2 {
			return "", ErrLineTooLong
		}
		buf = append(buf, chunk...)
		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && len(buf) > 0:
		default:
			return "", err
		}
		line := strings.TrimRight(string(buf), "\r\n")
		if len(line) > MaxLineLength {
			return "", ErrLineTooLong
		}
		return line, nil
	}
}

// ReadRequest parses the body of a structured order. The ORDER header must
// already have been consumed.
func ReadRequest(r *bufio.Reader) (Request, error) {
	var (
		req            Request
		seenRestaurant bool
		seenTotal      bool
	)

	for {
		line, err := ReadLine(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Request{}, fmt.Errorf("%w: stream ended before %s", ErrProtocolParse, Terminator)
			}
			return Request{}, err
		}
		if line == Terminator {
			break
		}

		switch {
		case strings.HasPrefix(line, prefixRestaurant):
			id, err := strconv.Atoi(strings.TrimSpace(line[len(prefixRestaurant):]))
			if err != nil {
				return Request{}, fmt.Errorf("%w: invalid restaurant id %q", ErrProtocolParse, line)
			}
			req.RestaurantID = id
			seenRestaurant = true
		case strings.HasPrefix(line, prefixTotal):
			total, err := parseAmount(line[len(prefixTotal):])
			if err != nil {
				return Request{}, fmt.Errorf("%w: invalid total %q", ErrProtocolParse, line)
			}
			req.Total = total
			seenTotal = true
		case strings.HasPrefix(line, prefixItems):
			count, err := strconv.Atoi(strings.TrimSpace(line[len(prefixItems):]))
			if err != nil {
				return Request{}, fmt.Errorf("%w: invalid item count %q", ErrProtocolParse, line)
			}
			req.DeclaredItems = count
		case strings.HasPrefix(line, prefixItem):
			item, err := parseItem(line[len(prefixItem):])
			if err != nil {
				return Request{}, err
			}
			req.Lines = append(req.Lines, item)
		}
	}

	switch {
	case !seenRestaurant:
		return Request{}, fmt.Errorf("%w: missing restaurant id", ErrProtocolParse)
	case !seenTotal:
		return Request{}, fmt.Errorf("%w: missing total", ErrProtocolParse)
	case len(req.Lines) == 0:
		return Request{}, fmt.Errorf("%w: order has no items", ErrProtocolParse)
	}
	return req, nil
}

func parseItem(raw string) (domain.OrderLine, error) {
	parts := strings.Split(raw, fieldSeparator)
	if len(parts) != 3 {
		return domain.OrderLine{}, fmt.Errorf("%w: item %q needs name|quantity|price", ErrProtocolParse, raw)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || quantity < 1 {
		return domain.OrderLine{}, fmt.Errorf("%w: invalid quantity in item %q", ErrProtocolParse, raw)
	}
	price, err := parseAmount(parts[2])
	if err != nil || price < 0 {
		return domain.OrderLine{}, fmt.Errorf("%w: invalid price in item %q", ErrProtocolParse, raw)
	}
	return domain.OrderLine{
		FoodName:  parts[0],
		Quantity:  quantity,
		UnitPrice: price,
	}, nil
}

func parseAmount(raw string) (float64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	return amount.InexactFloat64(), nil
}

// OK builds a success acknowledgment; an empty message yields a bare "OK".
func OK(message string) string {
	if message == "" {
		return ackOK
	}
	return ackOK + ":" + message
}

func Error(message string) string {
	return ackError + ":" + message
}

// IsOK reports whether an acknowledgment line starts with the OK token.
func IsOK(ack string) bool {
	return ack == ackOK || strings.HasPrefix(ack, ackOK+":")
}
