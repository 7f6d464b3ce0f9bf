package xsec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	rec := &Recorder{}

	rec.Emit(Diagnostic{Code: CodeSkipped, Message: "first"})
	rec.Emit(Diagnostic{Code: CodeMismatch, Message: "second"})

	all := rec.All()
	assert.Len(t, all, 2)
	assert.Equal(t, CodeSkipped, all[0].Code)
	assert.Equal(t, CodeMismatch, all[1].Code)
	assert.True(t, rec.Has(CodeMismatch))
	assert.False(t, rec.Has(CodeNonFinite))

	rec.Reset()
	assert.Empty(t, rec.All())
}

func TestSlogSink_LogsCodeAndContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	sink := SlogSink{Logger: logger}
	sink.Emit(Diagnostic{
		Code:    CodeNonFinite,
		Message: "cross section is not a number",
		Process: Process{In1: 9000103, In2: -9000103, Out1: 1, Out2: -1},
		Context: map[string]float64{"v": 0.1},
	})

	out := buf.String()
	assert.Contains(t, out, "XSEC_NOT_FINITE")
	assert.Contains(t, out, "cross section is not a number")
	assert.Contains(t, out, "v=0.1")
}

func TestSlogSink_ZeroValueUsesDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		SlogSink{}.Emit(Diagnostic{Code: CodeSkipped, Message: "ok"})
	})
}
