// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	is := is.New(t)

	is.Equal(ParseLevel("debug"), zerolog.DebugLevel)
	is.Equal(ParseLevel("info"), zerolog.InfoLevel)
	is.Equal(ParseLevel("warn"), zerolog.WarnLevel)
	is.Equal(ParseLevel("error"), zerolog.ErrorLevel)
	is.Equal(ParseLevel("off"), zerolog.Disabled)
	is.Equal(ParseLevel("verbose"), zerolog.WarnLevel)
}

func TestNewJSONLogger(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, "info")

	logger.Debug().Msg("hidden")
	is.Equal(buf.Len(), 0)

	logger.Info().Str("coin", "BTC").Msg("derived wallet")

	var line map[string]any
	is.NoErr(json.Unmarshal(buf.Bytes(), &line))
	is.Equal(line["coin"], "BTC")
	is.Equal(line["message"], "derived wallet")
	is.Equal(line["level"], "info")
}
