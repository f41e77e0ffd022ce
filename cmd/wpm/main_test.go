package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wpm/internal/app"
	"go.trai.ch/wpm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestComponents(t *testing.T) (*app.Components, *mocks.MockEnvironment) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockEnv := mocks.NewMockEnvironment(ctrl)
	mockStore := mocks.NewMockConfigStore(ctrl)
	mockRegistry := mocks.NewMockRegistry(ctrl)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	return &app.Components{
		App:    app.New(mockEnv, mockStore, mockRegistry, mockLogger),
		Logger: mockLogger,
	}, mockEnv
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _ := newTestComponents(t)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	components, mockEnv := newTestComponents(t)

	// An unreadable working directory makes resolution fail.
	mockEnv.EXPECT().CurrentDir().Return("", errors.New("getwd failed"))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"which", "cowsay"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
