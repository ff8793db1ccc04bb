package progress_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/carry/internal/adapters/progress"
)

func TestRecorder_RendersTicksOnOneLine(t *testing.T) {
	var out bytes.Buffer
	rec := progress.New(&out)

	v := rec.Record("pack")
	v.Tick()
	v.Tick()
	v.Complete(nil)

	assert.Equal(t, "..\n", out.String())
	require.NoError(t, rec.Close())
	assert.Equal(t, "..\n", out.String(), "closing after completion adds nothing")
}

func TestRecorder_QuietStepWritesNothing(t *testing.T) {
	var out bytes.Buffer
	rec := progress.New(&out)

	rec.Record("unpack").Complete(errors.New("extract failed"))

	assert.Empty(t, out.String())
}

func TestRecorder_StepsAreSeparated(t *testing.T) {
	var out bytes.Buffer
	rec := progress.New(&out)

	first := rec.Record("unpack")
	first.Tick()
	first.Complete(nil)

	second := rec.Record("pack")
	second.Tick()
	second.Tick()
	second.Tick()
	second.Complete(nil)

	assert.Equal(t, ".\n...\n", out.String())
}

func TestRecorder_CloseEndsOpenLine(t *testing.T) {
	var out bytes.Buffer
	rec := progress.New(&out)

	rec.Record("pack").Tick()
	require.NoError(t, rec.Close())

	assert.Equal(t, ".\n", out.String())
}

func TestRecorder_Tape(t *testing.T) {
	rec := progress.NewRecorder(progrock.NewTape())

	v := rec.Record("pack")
	v.Tick()
	v.Complete(nil)

	require.NoError(t, rec.Close())
}
