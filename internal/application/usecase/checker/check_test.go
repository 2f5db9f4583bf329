package checker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cvos/internal/domain/analysis"
	"github.com/khoahotran/cvos/pkg/logger"
)

type stubClient struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
	result  *analysis.Result
	err     error
}

func (c *stubClient) Analyze(ctx context.Context, _ analysis.Upload, _ analysis.Mode) (*analysis.Result, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.started != nil {
		close(c.started)
		<-c.release
	}
	return c.result, c.err
}

func upload() analysis.Upload {
	return analysis.Upload{Filename: "cv.pdf", Size: 8, Content: strings.NewReader("%PDF-1.4")}
}

func TestExecute_Success(t *testing.T) {
	client := &stubClient{result: &analysis.Result{Score: 82, Strengths: []string{"Clear layout"}, Summary: "Good"}}
	uc := NewCheckUseCase(client, logger.NewNop())

	out := uc.Execute(context.Background(), CheckInput{OwnerID: uuid.New(), File: upload(), Mode: analysis.ModeFast})

	require.False(t, out.Failed())
	assert.Equal(t, 82, out.Result.Score)
	assert.Empty(t, out.Error)
}

func TestExecute_ProtocolErrorShowsDetail(t *testing.T) {
	client := &stubClient{err: &analysis.RequestError{Kind: analysis.KindProtocol, Status: 500, Detail: "internal error"}}
	uc := NewCheckUseCase(client, logger.NewNop())

	out := uc.Execute(context.Background(), CheckInput{OwnerID: uuid.New(), File: upload(), Mode: analysis.ModeAI})

	assert.True(t, out.Failed())
	assert.Equal(t, "internal error", out.Error)
	assert.Equal(t, 500, out.Status)
	assert.Equal(t, analysis.KindProtocol, out.Kind)
}

func TestExecute_ValidationError(t *testing.T) {
	client := &stubClient{err: analysis.NewValidationError(analysis.ErrFileTooLarge)}
	uc := NewCheckUseCase(client, logger.NewNop())

	out := uc.Execute(context.Background(), CheckInput{OwnerID: uuid.New(), File: upload(), Mode: analysis.ModeFast})

	assert.Nil(t, out.Result)
	assert.Equal(t, analysis.ErrFileTooLarge.Error(), out.Error)
	assert.Equal(t, analysis.KindValidation, out.Kind)
}

func TestExecute_UntypedErrorBecomesTransport(t *testing.T) {
	client := &stubClient{err: errors.New("dial tcp: connection refused")}
	uc := NewCheckUseCase(client, logger.NewNop())

	out := uc.Execute(context.Background(), CheckInput{OwnerID: uuid.New(), File: upload(), Mode: analysis.ModeFast})

	assert.Equal(t, analysis.KindTransport, out.Kind)
	assert.NotEmpty(t, out.Error)
	assert.NotContains(t, out.Error, "connection refused")
}

func TestExecute_RefusesSecondRequestForSameOwner(t *testing.T) {
	client := &stubClient{
		started: make(chan struct{}),
		release: make(chan struct{}),
		result:  &analysis.Result{Score: 50},
	}
	uc := NewCheckUseCase(client, logger.NewNop())
	owner := uuid.New()

	done := make(chan CheckOutput)
	go func() {
		done <- uc.Execute(context.Background(), CheckInput{OwnerID: owner, File: upload(), Mode: analysis.ModeFast})
	}()
	<-client.started

	second := uc.Execute(context.Background(), CheckInput{OwnerID: owner, File: upload(), Mode: analysis.ModeFast})
	assert.True(t, second.Busy)
	assert.True(t, second.Failed())

	close(client.release)
	first := <-done
	assert.False(t, first.Failed())
	assert.Equal(t, 1, client.calls)

	// the guard is released once the first request finishes
	client.started = nil
	third := uc.Execute(context.Background(), CheckInput{OwnerID: owner, File: upload(), Mode: analysis.ModeFast})
	assert.False(t, third.Failed())
}
