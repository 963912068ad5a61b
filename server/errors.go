package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/stepper"
	"github.com/katalvlaran/stepviz/wire"
)

// ErrBadRequest marks malformed or invalid request bodies.
var ErrBadRequest = errors.New("server: bad request")

func badRequestf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

// statusOf maps an error to its HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, wire.ErrUnknownCodec),
		errors.Is(err, stepper.ErrUnknownAlgorithm),
		errors.Is(err, stepper.ErrInvalidNode),
		errors.Is(err, playback.ErrBadInterval),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrUnknownTopology),
		errors.Is(err, builder.ErrInvalidProbability),
		errors.Is(err, builder.ErrBadEdgeList):
		return http.StatusBadRequest
	case errors.Is(err, playback.ErrNotInitialized),
		errors.Is(err, playback.ErrPlaying),
		errors.Is(err, playback.ErrNoHistory):
		return http.StatusConflict
	case errors.Is(err, playback.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error string `json:"error"`
}
