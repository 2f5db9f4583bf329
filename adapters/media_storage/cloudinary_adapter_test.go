package media_storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/pkg/logger"
)

func TestNewCloudinaryAdapter(t *testing.T) {
	var cfg config.Config
	_, err := NewCloudinaryAdapter(cfg, logger.NewNop())
	assert.Error(t, err, "cloud name is required")

	cfg.Cloudinary.CloudName = "demo"
	cfg.Cloudinary.ApiKey = "key"
	cfg.Cloudinary.ApiSecret = "secret"
	u, err := NewCloudinaryAdapter(cfg, logger.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, u)
}
