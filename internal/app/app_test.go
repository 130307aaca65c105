package app_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weft/internal/adapters/history"
	"go.trai.ch/weft/internal/app"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports/mocks"
	"go.trai.ch/weft/internal/session"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	out      *bytes.Buffer
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	sess := session.New(root, mockExecutor, history.NewStore(), mockLogger)
	a := app.New(mockLoader, sess, mockLogger)

	out := new(bytes.Buffer)
	a.SetOutput(out)

	return &fixture{app: a, out: out, loader: mockLoader, executor: mockExecutor}
}

func simpleRuleSet() domain.RuleSet {
	return domain.RuleSet{
		"all":       {Deps: []string{"hello.txt"}, Commands: []string{"cat $^"}},
		"hello.txt": {Commands: []string{"echo 'Hello' > $@"}},
	}
}

func TestApp_Run(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(domain.WeftFileName).Return(simpleRuleSet(), nil).Times(1)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&domain.RunResult{
		Target:  "all",
		Stdout:  "Hello\n",
		Command: "make",
	}, nil).Times(1)

	err := f.app.Run(context.Background(), "all")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", f.out.String())
}

func TestApp_Run_ConfigError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(domain.WeftFileName).Return(nil, errors.New("no weft.yaml")).Times(1)

	err := f.app.Run(context.Background(), "all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Run_ExecutorFailure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(domain.WeftFileName).Return(simpleRuleSet(), nil).Times(1)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(
		&domain.RunResult{Target: "all", ExitCode: 2, Command: "make"},
		domain.ErrRunFailed,
	).Times(1)

	err := f.app.Run(context.Background(), "all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRunFailed))
	assert.Empty(t, f.out.String())
}

func TestApp_Graph(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(domain.WeftFileName).Return(simpleRuleSet(), nil).Times(1)

	err := f.app.Graph(context.Background())
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "graph TB\n")
	assert.Contains(t, out, "  hello.txt --> all;")
}

func TestApp_Copy_Missing(t *testing.T) {
	f := newFixture(t)

	err := f.app.Copy("missing.txt", filepath.Join(t.TempDir(), "dest"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy failed")
}

func TestApp_Status_NoHistory(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Status("all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoHistory))
}
