package webhook

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Parthiban024/jira-automation/engine/asana"
)

func TestService_Forward(t *testing.T) {
	t.Run("Should compose notes without description section when absent", func(t *testing.T) {
		tasks := &MockTaskCreator{}
		tasks.On("CreateTask", mock.Anything,
			"[ABC-1] Fix bug",
			"Issue: ABC-1\nOriginal Summary: Fix bug\n\n",
		).Return(asana.Success("1", "[ABC-1] Fix bug", "url"))

		svc := NewService(tasks, nil, 0)
		res := svc.Forward(context.Background(), []byte(`{"issue":{"key":"ABC-1","fields":{"summary":"Fix bug"}}}`))
		require.True(t, res.OK())
		tasks.AssertExpectations(t)
	})

	t.Run("Should append normalized ADF description to notes", func(t *testing.T) {
		tasks := &MockTaskCreator{}
		tasks.On("CreateTask", mock.Anything,
			"[ABC-2] Add feature",
			"Issue: ABC-2\nOriginal Summary: Add feature\n\nDescription:\nHello",
		).Return(asana.Success("2", "[ABC-2] Add feature", "url"))

		body := `{"issue":{"key":"ABC-2","fields":{
			"summary":"Add feature",
			"description":{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Hello"}]}]}
		}}}`
		svc := NewService(tasks, nil, 0)
		res := svc.Forward(context.Background(), []byte(body))
		require.True(t, res.OK())
		tasks.AssertExpectations(t)
	})

	t.Run("Should forward plain string descriptions verbatim", func(t *testing.T) {
		tasks := &MockTaskCreator{}
		tasks.On("CreateTask", mock.Anything,
			"[ABC-3] Task",
			"Issue: ABC-3\nOriginal Summary: Task\n\nDescription:\nplain text",
		).Return(asana.Success("3", "[ABC-3] Task", "url"))

		body := `{"issue":{"key":"ABC-3","fields":{"summary":"Task","description":"plain text"}}}`
		svc := NewService(tasks, nil, 0)
		res := svc.Forward(context.Background(), []byte(body))
		require.True(t, res.OK())
		tasks.AssertExpectations(t)
	})

	t.Run("Should substitute defaults for missing key and summary", func(t *testing.T) {
		tasks := &MockTaskCreator{}
		tasks.On("CreateTask", mock.Anything,
			"[UNKNOWN] No Title",
			"Issue: UNKNOWN\nOriginal Summary: No Title\n\n",
		).Return(asana.Success("4", "[UNKNOWN] No Title", "url"))

		svc := NewService(tasks, nil, 0)
		res := svc.Forward(context.Background(), []byte(`{}`))
		require.True(t, res.OK())
		tasks.AssertExpectations(t)
	})

	t.Run("Should classify malformed issue shape as processing failure", func(t *testing.T) {
		tasks := &MockTaskCreator{}
		svc := NewService(tasks, nil, 0)
		// valid JSON, but issue is not an object
		res := svc.Forward(context.Background(), []byte(`{"issue":[1,2]}`))
		require.False(t, res.OK())
		assert.Equal(t, asana.ErrorKindProcessing, res.ErrorKind)
		tasks.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should pass through downstream failure results unchanged", func(t *testing.T) {
		tasks := &MockTaskCreator{}
		failure := asana.APIFailure(500, "Asana API error: 500 - boom")
		tasks.On("CreateTask", mock.Anything, mock.Anything, mock.Anything).Return(failure)

		svc := NewService(tasks, nil, 0)
		res := svc.Forward(context.Background(), []byte(`{"issue":{"key":"ABC-4"}}`))
		assert.Equal(t, failure, res)
	})
}

func TestService_Process(t *testing.T) {
	t.Run("Should return ErrBadRequest for non-JSON body", func(t *testing.T) {
		svc := NewService(&MockTaskCreator{}, nil, 0)
		_, err := svc.Process(context.Background(), strings.NewReader("definitely not json"))
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("Should return ErrBadRequest for oversized body", func(t *testing.T) {
		svc := NewService(&MockTaskCreator{}, nil, 16)
		_, err := svc.Process(context.Background(), strings.NewReader(`{"k":"`+strings.Repeat("x", 64)+`"}`))
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("Should forward valid JSON bodies", func(t *testing.T) {
		tasks := &MockTaskCreator{}
		tasks.On("CreateTask", mock.Anything, mock.Anything, mock.Anything).
			Return(asana.Success("9", "name", "url"))
		svc := NewService(tasks, nil, 0)
		res, err := svc.Process(context.Background(), strings.NewReader(`{"issue":{"key":"K-1"}}`))
		require.NoError(t, err)
		assert.True(t, res.OK())
	})
}

func TestComposeNotes(t *testing.T) {
	t.Run("Should keep trailing blank line when description is empty", func(t *testing.T) {
		assert.Equal(t, "Issue: K-1\nOriginal Summary: S\n\n", composeNotes("K-1", "S", ""))
	})

	t.Run("Should append description block when present", func(t *testing.T) {
		assert.Equal(t,
			"Issue: K-1\nOriginal Summary: S\n\nDescription:\nline1\nline2",
			composeNotes("K-1", "S", "line1\nline2"),
		)
	})
}
