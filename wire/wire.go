// Package wire holds the codecs frames and graphs are encoded with on the
// HTTP and WebSocket surfaces.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrUnknownCodec is returned by ByName for an unsupported codec name.
var ErrUnknownCodec = errors.New("wire: unknown codec")

// Codec interface for serialization.
type Codec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
	Name() string
	// ContentType is the MIME type for HTTP responses.
	ContentType() string
	// Binary reports whether payloads must travel as binary WebSocket messages.
	Binary() bool
}

// JSONCodec implements JSON serialization.
type JSONCodec struct{}

func (JSONCodec) Encode(v interface{}) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec) Decode(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) ContentType() string { return "application/json" }

func (JSONCodec) Binary() bool { return false }

// MsgPackCodec implements MessagePack serialization. Struct fields use their
// json tag names, so both codecs produce the same keys.
type MsgPackCodec struct{}

func (MsgPackCodec) Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (MsgPackCodec) Decode(data []byte, v interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")

	return dec.Decode(v)
}

func (MsgPackCodec) Name() string { return "msgpack" }

func (MsgPackCodec) ContentType() string { return "application/msgpack" }

func (MsgPackCodec) Binary() bool { return true }

// JSON returns the JSON codec.
func JSON() Codec { return JSONCodec{} }

// MsgPack returns the MessagePack codec.
func MsgPack() Codec { return MsgPackCodec{} }

// Names lists the supported codec names.
func Names() []string { return []string{"json", "msgpack"} }

// ByName resolves a case-insensitive codec name; "" selects JSON.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON(), nil
	case "msgpack", "messagepack":
		return MsgPack(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}
