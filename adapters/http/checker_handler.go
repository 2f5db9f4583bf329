package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khoahotran/cvos/adapters/analysis_client"
	"github.com/khoahotran/cvos/internal/application/usecase/checker"
	"github.com/khoahotran/cvos/internal/domain/analysis"
	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/logger"
)

// maxUploadBody leaves room for the multipart envelope around a maximal file.
const maxUploadBody = analysis.MaxFileSize + 1<<20

type CheckerHandler struct {
	checkUseCase *checker.CheckUseCase
	logger       logger.Logger
}

func NewCheckerHandler(uc *checker.CheckUseCase, log logger.Logger) *CheckerHandler {
	return &CheckerHandler{checkUseCase: uc, logger: log}
}

// run reads the multipart upload and executes the check. A nil output means
// an error was already attached to c.
func (h *CheckerHandler) run(c *gin.Context) (*checker.CheckOutput, analysis.Mode) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return nil, analysis.ModeFast
	}

	mode, err := analysis.ParseMode(c.PostForm("mode"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("mode must be fast or ai", err))
		return nil, analysis.ModeFast
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.NewTooLarge("file exceeds the 5 MB limit", analysis.ErrFileTooLarge))
			return nil, mode
		}
		c.Error(apperror.NewInvalidInput("multipart field 'file' is required", err))
		return nil, mode
	}

	out, err := h.check(c, ownerID, header, mode)
	if err != nil {
		c.Error(apperror.NewInternal("cannot open uploaded file", err))
		return nil, mode
	}
	return &out, mode
}

func (h *CheckerHandler) check(c *gin.Context, ownerID uuid.UUID, header *multipart.FileHeader, mode analysis.Mode) (checker.CheckOutput, error) {
	f, err := header.Open()
	if err != nil {
		return checker.CheckOutput{}, err
	}
	defer f.Close()

	ctx := analysis_client.WithRequestHost(c.Request.Context(), c.Request.Host)
	return h.checkUseCase.Execute(ctx, checker.CheckInput{
		OwnerID: ownerID,
		File:    analysis.Upload{Filename: header.Filename, Size: header.Size, Content: f},
		Mode:    mode,
	}), nil
}

// Analyze is the JSON endpoint. Failures keep the display message as the
// error message.
func (h *CheckerHandler) Analyze(c *gin.Context) {
	out, _ := h.run(c)
	if out == nil {
		return
	}
	if !out.Failed() {
		c.JSON(http.StatusOK, analysisResponse{Result: out.Result})
		return
	}
	c.Error(outputError(*out))
}

func outputError(out checker.CheckOutput) *apperror.AppError {
	switch {
	case out.Busy:
		return apperror.NewConflict("analysis", out.Error)
	case errors.Is(out.Err, analysis.ErrFileTooLarge):
		return apperror.NewTooLarge(out.Error, analysis.ErrFileTooLarge)
	case out.Kind == analysis.KindValidation:
		return apperror.NewInvalidInput(out.Error, nil)
	}
	return apperror.NewUpstream(out.Error, nil)
}
