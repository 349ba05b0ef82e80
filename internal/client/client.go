package client

import (
	"encoding/hex"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Client sends requests over one TCP connection. Calls are serialized so
// that each response pairs with its request.
type Client struct {
	mu      sync.Mutex
	conn    net.Conn
	encoder *msgpack.Encoder
	decoder *msgpack.Decoder
}

func Dial(addr string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "connect to %s", addr)
	}
	return &Client{
		conn:    conn,
		encoder: msgpack.NewEncoder(conn),
		decoder: msgpack.NewDecoder(conn),
	}, nil
}

// Do sends request and waits for its response.
func (c *Client) Do(request map[string]interface{}) (map[string]interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.encoder.Encode(request); err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	var response map[string]interface{}
	if err := c.decoder.Decode(&response); err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	return response, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// FormatResponse renders a response the way the shell prints it.
func FormatResponse(response map[string]interface{}) string {
	status, _ := response["status"].(string)
	switch status {
	case "OK":
		if message, ok := response["message"].(string); ok {
			return "Server: " + message
		}
		if value, ok := response["value"]; ok {
			if payload, ok := value.([]byte); ok {
				return fmt.Sprintf("Server: %v %s", response["type"], hex.EncodeToString(payload))
			}
			return fmt.Sprintf("Server: %v", value)
		}
		if length, ok := response["length"]; ok {
			if capacity, ok := response["capacity"]; ok {
				return fmt.Sprintf("Server: length=%v capacity=%v", length, capacity)
			}
			return fmt.Sprintf("Server: length=%v", length)
		}
		return "Server: OK"
	case "ERROR":
		return fmt.Sprintf("Server Error: [%v] %v", response["code"], response["message"])
	default:
		return fmt.Sprintf("Unexpected server response: %v", response)
	}
}

func decodeHex(s string) ([]byte, error) {
	payload, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCommand, "payload is not hex: %v", err)
	}
	return payload, nil
}
