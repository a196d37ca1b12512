package handlers

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/application/status/usecases"
	"lumen/internal/domain/status"
	"lumen/internal/interfaces/http/handlers/testutil"
)

type mockCreateStatusUC struct {
	result *status.Check
	err    error
	gotCmd usecases.CreateStatusCheckCommand
}

func (m *mockCreateStatusUC) Execute(ctx context.Context, cmd usecases.CreateStatusCheckCommand) (*status.Check, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListStatusUC struct {
	result []*status.Check
	err    error
}

func (m *mockListStatusUC) Execute(ctx context.Context) ([]*status.Check, error) {
	return m.result, m.err
}

func createTestCheck(clientName string) *status.Check {
	return &status.Check{
		ID:         "c2a4e6f8-0000-0000-0000-000000000001",
		ClientName: clientName,
		Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStatusHandler_Create_Success(t *testing.T) {
	createUC := &mockCreateStatusUC{result: createTestCheck("monitor-1")}
	handler := NewStatusHandler(createUC, &mockListStatusUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/status", CreateStatusCheckRequest{ClientName: "monitor-1"})
	handler.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "monitor-1", createUC.gotCmd.ClientName)

	var got status.Check
	require.NoError(t, testutil.ParseResponse(w, &got))
	assert.Equal(t, "monitor-1", got.ClientName)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.Timestamp.IsZero())
}

func TestStatusHandler_Create_MissingClientName(t *testing.T) {
	handler := NewStatusHandler(&mockCreateStatusUC{}, &mockListStatusUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContextWithRawBody(http.MethodPost, "/api/status", `{}`)
	handler.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "validation_error", body.Error.Type)
}

func TestStatusHandler_Create_MalformedBody(t *testing.T) {
	handler := NewStatusHandler(&mockCreateStatusUC{}, &mockListStatusUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContextWithRawBody(http.MethodPost, "/api/status", `{"client_name": 42}`)
	handler.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestStatusHandler_Create_RepositoryError(t *testing.T) {
	handler := NewStatusHandler(&mockCreateStatusUC{err: stderrors.New("write failed")}, &mockListStatusUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/status", CreateStatusCheckRequest{ClientName: "monitor-1"})
	handler.Create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatusHandler_List_Success(t *testing.T) {
	checks := []*status.Check{createTestCheck("monitor-1"), createTestCheck("monitor-2")}
	handler := NewStatusHandler(&mockCreateStatusUC{}, &mockListStatusUC{result: checks}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/status", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []*status.Check
	require.NoError(t, testutil.ParseResponse(w, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "monitor-1", got[0].ClientName)
	assert.Equal(t, "monitor-2", got[1].ClientName)
}

func TestStatusHandler_List_Empty(t *testing.T) {
	handler := NewStatusHandler(&mockCreateStatusUC{}, &mockListStatusUC{result: []*status.Check{}}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/status", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
