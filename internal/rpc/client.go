package rpc

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type Client struct {
	conn *grpc.ClientConn
}

// NewClient connects lazily to addr. Extra options are appended after the
// defaults, which use plaintext and the msgpack codec.
func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "create grpc client for %s", addr)
	}
	return &Client{conn: conn}, nil
}

// Execute runs one command. A failed command comes back as a response with
// status ERROR, exactly as over TCP; the returned error is reserved for
// transport failures.
func (c *Client) Execute(ctx context.Context, request map[string]interface{}) (map[string]interface{}, error) {
	var trailer metadata.MD
	out := new(ExecuteResponse)
	err := c.conn.Invoke(ctx, executeMethod, &ExecuteRequest{Request: request}, out, grpc.Trailer(&trailer))
	if err == nil {
		return out.Response, nil
	}

	codes := trailer.Get(codeTrailer)
	if len(codes) == 0 {
		return nil, errors.Wrap(err, "execute")
	}
	return map[string]interface{}{
		"status":  "ERROR",
		"code":    codes[0],
		"message": status.Convert(err).Message(),
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
