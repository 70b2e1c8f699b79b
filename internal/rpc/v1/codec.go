package rpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype of the JSON codec.
const CodecName = "json"

// jsonCodec marshals messages with encoding/json.
type jsonCodec struct{}

func init() { //nolint:gochecknoinits // gRPC codecs are registered globally at init time.
	encoding.RegisterCodec(jsonCodec{})
}

// Marshal encodes v as JSON.
func (jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal: %w", err)
	}

	return data, nil
}

// Unmarshal decodes JSON data into v.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal: %w", err)
	}

	return nil
}

// Name returns the content subtype.
func (jsonCodec) Name() string {
	return CodecName
}
