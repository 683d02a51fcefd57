package interfaces

import (
	"context"

	"github.com/manoooz/apkconf/pkg/domain/model"
)

// VersionProvider supplies versionCode and versionName for the build
type VersionProvider interface {
	Version(ctx context.Context) (*model.AppVersion, error)
}
