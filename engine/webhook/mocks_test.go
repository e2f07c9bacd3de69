package webhook

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Parthiban024/jira-automation/engine/asana"
)

// MockTaskCreator is a testify mock for the outbound task creator.
type MockTaskCreator struct {
	mock.Mock
}

func (m *MockTaskCreator) CreateTask(ctx context.Context, name, notes string) asana.Result {
	args := m.Called(ctx, name, notes)
	return args.Get(0).(asana.Result)
}
