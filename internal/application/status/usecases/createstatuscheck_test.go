package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/domain/status"
	"lumen/internal/shared/logger"
)

type mockStatusRepo struct {
	inserted  []*status.Check
	insertErr error
	listed    []*status.Check
	listErr   error
	gotLimit  int64
}

func (m *mockStatusRepo) Insert(ctx context.Context, check *status.Check) error {
	m.inserted = append(m.inserted, check)
	return m.insertErr
}

func (m *mockStatusRepo) List(ctx context.Context, limit int64) ([]*status.Check, error) {
	m.gotLimit = limit
	return m.listed, m.listErr
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestCreateStatusCheck(t *testing.T) {
	repo := &mockStatusRepo{}
	uc := NewCreateStatusCheckUseCase(repo, nopLogger{})

	check, err := uc.Execute(context.Background(), CreateStatusCheckCommand{ClientName: "monitor-1"})
	require.NoError(t, err)

	assert.Equal(t, "monitor-1", check.ClientName)
	assert.NotEmpty(t, check.ID)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, check, repo.inserted[0])
}

func TestCreateStatusCheck_InsertFailure(t *testing.T) {
	repo := &mockStatusRepo{insertErr: stderrors.New("write failed")}
	uc := NewCreateStatusCheckUseCase(repo, nopLogger{})

	check, err := uc.Execute(context.Background(), CreateStatusCheckCommand{ClientName: "monitor-1"})
	assert.Nil(t, check)
	require.Error(t, err)
}

func TestListStatusChecks_AppliesCap(t *testing.T) {
	repo := &mockStatusRepo{listed: []*status.Check{status.NewCheck("monitor-1")}}
	uc := NewListStatusChecksUseCase(repo)

	checks, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, checks, 1)
	assert.Equal(t, int64(1000), repo.gotLimit)
}

func TestListStatusChecks_Failure(t *testing.T) {
	repo := &mockStatusRepo{listErr: stderrors.New("cursor error")}
	uc := NewListStatusChecksUseCase(repo)

	checks, err := uc.Execute(context.Background())
	assert.Nil(t, checks)
	require.Error(t, err)
}
