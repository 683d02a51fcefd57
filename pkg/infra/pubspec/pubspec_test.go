package pubspec_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/manoooz/apkconf/pkg/infra/pubspec"
)

func writePubspec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pubspec.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantCode int
		wantErr  bool
	}{
		{input: "1.2.3+45", wantName: "1.2.3", wantCode: 45},
		{input: "2.0.0", wantName: "2.0.0", wantCode: 1},
		{input: " 1.0.0+7 ", wantName: "1.0.0", wantCode: 7},
		{input: "1.0.0+abc", wantErr: true},
		{input: "1.0.0+0", wantErr: true},
		{input: "+3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ver, err := pubspec.ParseVersion(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.V(t, ver.Name).Equal(tt.wantName)
			gt.V(t, ver.Code).Equal(tt.wantCode)
		})
	}
}

func TestProvider_Version(t *testing.T) {
	ctx := context.Background()

	t.Run("reads version from pubspec", func(t *testing.T) {
		path := writePubspec(t, "name: syria_jobs\nversion: 1.4.2+12\nenvironment:\n  sdk: '>=3.0.0 <4.0.0'\n")
		ver, err := pubspec.New(path).Version(ctx)
		gt.NoError(t, err)
		gt.V(t, ver.Name).Equal("1.4.2")
		gt.V(t, ver.Code).Equal(12)
	})

	t.Run("missing version uses defaults", func(t *testing.T) {
		path := writePubspec(t, "name: syria_jobs\n")
		ver, err := pubspec.New(path).Version(ctx)
		gt.NoError(t, err)
		gt.V(t, ver.Name).Equal("1.0.0")
		gt.V(t, ver.Code).Equal(1)
	})

	t.Run("overrides win over file", func(t *testing.T) {
		path := writePubspec(t, "version: 1.4.2+12\n")
		ver, err := pubspec.New(path, pubspec.WithBuildNumber("99")).Version(ctx)
		gt.NoError(t, err)
		gt.V(t, ver.Name).Equal("1.4.2")
		gt.V(t, ver.Code).Equal(99)
	})

	t.Run("both overrides skip the file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "pubspec.yaml")
		ver, err := pubspec.New(missing,
			pubspec.WithBuildName("3.0.0"),
			pubspec.WithBuildNumber("300"),
		).Version(ctx)
		gt.NoError(t, err)
		gt.V(t, ver.Name).Equal("3.0.0")
		gt.V(t, ver.Code).Equal(300)
	})

	t.Run("missing pubspec is an error", func(t *testing.T) {
		_, err := pubspec.New(filepath.Join(t.TempDir(), "pubspec.yaml")).Version(ctx)
		gt.Error(t, err)
	})

	t.Run("broken yaml is an error", func(t *testing.T) {
		path := writePubspec(t, "version: [1.0.0\n")
		_, err := pubspec.New(path).Version(ctx)
		gt.Error(t, err)
	})
}
