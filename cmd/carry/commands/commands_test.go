package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/carry/cmd/carry/commands"
	"go.trai.ch/carry/internal/app"
	"go.trai.ch/carry/internal/build"
	"go.trai.ch/carry/internal/core/domain"
)

type runCall struct {
	op   domain.Operation
	args []string
	opts app.RunOptions
}

type mockApp struct {
	calls   []runCall
	runFunc func() error
}

func (m *mockApp) Run(_ context.Context, op domain.Operation, args []string, opts app.RunOptions) error {
	m.calls = append(m.calls, runCall{op: op, args: args, opts: opts})
	if m.runFunc != nil {
		return m.runFunc()
	}
	return nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Operations(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want runCall
	}{
		{
			name: "fetch with candidates",
			args: []string{"fetch", "https://c/branch.tgz", "https://c/main.tgz"},
			want: runCall{op: domain.OperationFetch, args: []string{"https://c/branch.tgz", "https://c/main.tgz"}},
		},
		{
			name: "add paths",
			args: []string{"add", "node_modules", "~/.cache/pip"},
			want: runCall{op: domain.OperationAdd, args: []string{"node_modules", "~/.cache/pip"}},
		},
		{
			name: "push with timeout",
			args: []string{"push", "--timeout", "30", "https://c/main.tgz"},
			want: runCall{
				op:   domain.OperationPush,
				args: []string{"https://c/main.tgz"},
				opts: app.RunOptions{Timeout: 30 * time.Second},
			},
		},
		{
			name: "short timeout flag before the command",
			args: []string{"-t", "5", "fetch", "https://c/main.tbz"},
			want: runCall{
				op:   domain.OperationFetch,
				args: []string{"https://c/main.tbz"},
				opts: app.RunOptions{Timeout: 5 * time.Second},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{}
			_, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			require.Len(t, mock.calls, 1)
			assert.Equal(t, tt.want, mock.calls[0])
		})
	}
}

func TestCommands_UsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"fetch"},
		{"add"},
		{"push"},
		{"push", "u1", "u2"},
		{"sync"},
		{"push", "--timeout", "-1", "u"},
	} {
		mock := &mockApp{}
		_, err := execute(t, mock, args...)
		require.Error(t, err, "%v", args)
		assert.Empty(t, mock.calls, "%v", args)
	}
}

func TestCommands_PropagatesAppError(t *testing.T) {
	mock := &mockApp{runFunc: func() error { return errors.New("simulated error") }}

	_, err := execute(t, mock, "add", "/tmp/x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "carry version "+build.Version)
}
