package rpc

import (
	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype both ends agree on.
const CodecName = "msgpack"

func init() {
	encoding.RegisterCodec(msgpackCodec{})
}

// msgpackCodec lets the service carry plain Go structs instead of generated
// protobuf messages.
type msgpackCodec struct{}

func (msgpackCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "msgpack marshal %T", v)
	}
	return data, nil
}

func (msgpackCodec) Unmarshal(data []byte, v interface{}) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "msgpack unmarshal %T", v)
	}
	return nil
}

func (msgpackCodec) Name() string {
	return CodecName
}
