// Package apiconnect wires the messages of package api to Connect handlers
// and clients, in the shape of generated connect-go code.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec encodes plain Go structs, replacing Connect's protobuf JSON codec.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// WithJSON returns the option installing the JSON codec. The constructors in
// this package add it automatically.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
