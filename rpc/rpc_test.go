package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeMessageClassification(t *testing.T) {
	msg, err := DecodeMessage([]byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`))
	require.NoError(t, err)
	call, ok := msg.(*Call)
	require.True(t, ok)
	require.Equal(t, "initialize", call.Method())

	msg, err = DecodeMessage([]byte(`{"jsonrpc":"2.0","method":"textDocument/didOpen","params":{}}`))
	require.NoError(t, err)
	notify, ok := msg.(*Notification)
	require.True(t, ok)
	require.Equal(t, "textDocument/didOpen", notify.Method())

	msg, err = DecodeMessage([]byte(`{"jsonrpc":"2.0","id":1,"result":{"ok":true}}`))
	require.NoError(t, err)
	_, ok = msg.(*Response)
	require.True(t, ok)

	// Neither a method nor an id is not a valid message.
	_, err = DecodeMessage([]byte(`{"jsonrpc":"2.0"}`))
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDecodeResponseError(t *testing.T) {
	msg, err := DecodeMessage([]byte(`{"jsonrpc":"2.0","id":4,"error":{"code":-32601,"message":"nope"}}`))
	require.NoError(t, err)
	resp, ok := msg.(*Response)
	require.True(t, ok)
	require.ErrorIs(t, resp.Err(), ErrMethodNotFound)
}

func TestHeaderStreamRoundTrip(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	out := NewHeaderStream(nil, &buf)

	call, err := NewCall(Int64ID(7), "textDocument/hover", map[string]string{"k": "v"})
	require.NoError(t, err)
	n, err := out.Write(ctx, call)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	require.Contains(t, buf.String(), "Content-Length: ")

	in := NewHeaderStream(&buf, nil)
	msg, _, err := in.Read(ctx)
	require.NoError(t, err)
	got, ok := msg.(*Call)
	require.True(t, ok)
	require.Equal(t, call.Method(), got.Method())
	require.Equal(t, call.ID(), got.ID())
	require.JSONEq(t, string(call.Params()), string(got.Params()))
}

func TestHeaderStreamRejectsMissingLength(t *testing.T) {
	ctx := context.Background()
	in := NewHeaderStream(bytes.NewBufferString("Some-Header: x\r\n\r\n{}"), nil)
	_, _, err := in.Read(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Content-Length")
}

func TestResponseMarshalsWireError(t *testing.T) {
	resp, err := NewResponse(Int64ID(3), nil, fmt.Errorf("%w: rename target is reserved", ErrInvalidParams))
	require.NoError(t, err)
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var wire struct {
		Error *Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(data, &wire))
	require.NotNil(t, wire.Error)
	require.Equal(t, CodeInvalidParams, wire.Error.Code)
	require.Contains(t, wire.Error.Message, "reserved")
}

func TestToWireErrorDowngradesUnknownErrors(t *testing.T) {
	wire := toWireError(errors.New("boom"))
	require.Equal(t, CodeInternalError, wire.Code)
	require.Contains(t, wire.Message, "boom")

	require.Nil(t, toWireError(nil))
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("%w: extra context", ErrMethodNotFound)
	require.ErrorIs(t, err, ErrMethodNotFound)
	require.NotErrorIs(t, err, ErrInvalidParams)
}
