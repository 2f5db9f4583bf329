package auth

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/auth"
	"github.com/khoahotran/cvos/pkg/logger"
)

// LoginUseCase issues session tokens. There is no identity provider behind
// it: any non-empty credentials open the session of the owner derived from
// the e-mail address.
type LoginUseCase struct {
	jwtSvc *auth.JWTService
	logger logger.Logger
}

func NewLoginUseCase(jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		jwtSvc: jwtSvc,
		logger: log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	_, span := tracer.Start(ctx, "Execute")
	defer span.End()

	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		err := apperror.NewUnauthorized("email and password are required", nil)
		span.RecordError(err)
		return nil, err
	}

	ownerID := auth.OwnerIDForEmail(email)
	token, err := uc.jwtSvc.GenerateToken(ownerID, email)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("owner_id", ownerID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("owner_id", ownerID.String()))
	return &LoginOutput{AccessToken: token}, nil
}
