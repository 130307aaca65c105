package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weft/cmd/weft/commands"
	"go.trai.ch/weft/internal/adapters/history"
	"go.trai.ch/weft/internal/app"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports/mocks"
	"go.trai.ch/weft/internal/session"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli      *commands.CLI
	out      *bytes.Buffer
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	appOut   *bytes.Buffer
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	sess := session.New(t.TempDir(), mockExecutor, history.NewStore(), mockLogger)
	a := app.New(mockLoader, sess, mockLogger)

	appOut := new(bytes.Buffer)
	a.SetOutput(appOut)

	cli := commands.New(a)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)

	return &cliFixture{cli: cli, out: out, loader: mockLoader, executor: mockExecutor, appOut: appOut}
}

func TestVersionCommand(t *testing.T) {
	f := newCLIFixture(t)
	f.cli.SetArgs([]string{"version"})

	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, "dev\n", f.out.String())
}

func TestRunCommand_DefaultsToAll(t *testing.T) {
	f := newCLIFixture(t)

	rs := domain.RuleSet{"all": {Commands: []string{"true"}}}
	f.loader.EXPECT().Load(domain.WeftFileName).Return(rs, nil).Times(1)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv domain.Invocation) (*domain.RunResult, error) {
			assert.Equal(t, "all", inv.Target)
			return &domain.RunResult{Target: inv.Target, Stdout: "ok\n", Command: "make"}, nil
		},
	).Times(1)

	f.cli.SetArgs([]string{"run"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, "ok\n", f.appOut.String())
}

func TestRunCommand_ExplicitTarget(t *testing.T) {
	f := newCLIFixture(t)

	rs := domain.RuleSet{
		"all":       {},
		"hello.txt": {Commands: []string{"echo 'Hello' > $@"}},
	}
	f.loader.EXPECT().Load(domain.WeftFileName).Return(rs, nil).Times(1)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv domain.Invocation) (*domain.RunResult, error) {
			assert.Equal(t, "hello.txt", inv.Target)
			return &domain.RunResult{Target: inv.Target, Command: "make"}, nil
		},
	).Times(1)

	f.cli.SetArgs([]string{"run", "hello.txt"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestGraphCommand(t *testing.T) {
	f := newCLIFixture(t)

	rs := domain.RuleSet{
		"all":       {Deps: []string{"hello.txt"}},
		"hello.txt": {Commands: []string{"echo 'Hello' > $@"}},
	}
	f.loader.EXPECT().Load(domain.WeftFileName).Return(rs, nil).Times(1)

	f.cli.SetArgs([]string{"graph"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, f.appOut.String(), "  hello.txt --> all;")
}

func TestCopyCommand_MissingArtifact(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"copy", "missing.txt", t.TempDir() + "/dest"})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy failed")
}

func TestStatusCommand_NoHistory(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"status", "all"})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoHistory)
}
