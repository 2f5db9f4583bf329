package export

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/khoahotran/cvos/internal/application/service"
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/pkg/apperror"
)

type GetExportUseCase struct {
	kv service.KeyValueStore
}

func NewGetExportUseCase(kv service.KeyValueStore) *GetExportUseCase {
	return &GetExportUseCase{kv: kv}
}

// Execute returns the URL of the owner's last exported PDF.
func (uc *GetExportUseCase) Execute(ctx context.Context, ownerID uuid.UUID) (string, error) {
	url, err := uc.kv.Get(ctx, wizard.ScopedKey(ownerID, wizard.NamespaceExport))
	if err != nil {
		if errors.Is(err, service.ErrKeyNotFound) {
			return "", apperror.NewNotFound("export", ownerID.String())
		}
		return "", apperror.NewInternal("failed to read export url", err)
	}
	return url, nil
}
