package checker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/internal/domain/analysis"
	"github.com/khoahotran/cvos/pkg/logger"
	"github.com/khoahotran/cvos/pkg/metrics"
)

const busyMessage = "An analysis is already in progress."

var tracer = otel.Tracer("checker_usecase")

// CheckUseCase runs CV analyses on behalf of session owners, at most one at
// a time per owner.
type CheckUseCase struct {
	client analysis.Client
	logger logger.Logger

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewCheckUseCase(c analysis.Client, log logger.Logger) *CheckUseCase {
	return &CheckUseCase{client: c, logger: log, inFlight: make(map[uuid.UUID]struct{})}
}

type CheckInput struct {
	OwnerID uuid.UUID
	File    analysis.Upload
	Mode    analysis.Mode
}

// CheckOutput is what the checker view displays: a result or one error
// message, never both.
type CheckOutput struct {
	Result *analysis.Result
	Error  string
	Kind   analysis.ErrorKind
	Status int
	Busy   bool
	Err    error
}

func (o CheckOutput) Failed() bool { return o.Result == nil }

func (uc *CheckUseCase) Execute(ctx context.Context, in CheckInput) CheckOutput {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("owner_id", in.OwnerID.String()),
		attribute.String("mode", string(in.Mode)),
		attribute.Int64("file.size", in.File.Size),
	)

	if !uc.acquire(in.OwnerID) {
		metrics.AnalysisRequests.WithLabelValues(string(in.Mode), "busy").Inc()
		span.SetAttributes(attribute.Bool("busy", true))
		return CheckOutput{Error: busyMessage, Busy: true}
	}
	defer uc.release(in.OwnerID)

	start := time.Now()
	res, err := uc.client.Analyze(ctx, in.File, in.Mode)
	metrics.AnalysisDuration.WithLabelValues(string(in.Mode)).Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis failed")
		return uc.failure(in, err)
	}

	metrics.AnalysisRequests.WithLabelValues(string(in.Mode), "ok").Inc()
	span.SetAttributes(attribute.Int("score", res.Score))
	return CheckOutput{Result: res}
}

func (uc *CheckUseCase) failure(in CheckInput, err error) CheckOutput {
	var reqErr *analysis.RequestError
	if !errors.As(err, &reqErr) {
		reqErr = &analysis.RequestError{Kind: analysis.KindTransport, Err: err}
	}
	metrics.AnalysisRequests.WithLabelValues(string(in.Mode), string(reqErr.Kind)).Inc()

	l := uc.logger.With(zap.String("owner_id", in.OwnerID.String()), zap.String("kind", string(reqErr.Kind)))
	if reqErr.Kind == analysis.KindValidation {
		l.Info("Rejected file before analysis", zap.Error(err))
	} else {
		l.Warn("Analysis request failed", zap.Error(err), zap.Int("status", reqErr.Status))
	}

	return CheckOutput{Error: reqErr.UserMessage(), Kind: reqErr.Kind, Status: reqErr.Status, Err: reqErr}
}

func (uc *CheckUseCase) acquire(owner uuid.UUID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[owner]; busy {
		return false
	}
	uc.inFlight[owner] = struct{}{}
	return true
}

func (uc *CheckUseCase) release(owner uuid.UUID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, owner)
}
