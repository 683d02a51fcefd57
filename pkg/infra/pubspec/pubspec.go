package pubspec

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/manoooz/apkconf/pkg/domain/interfaces"
	"github.com/manoooz/apkconf/pkg/domain/model"
)

const (
	defaultVersionName = "1.0.0"
	defaultVersionCode = 1
)

type provider struct {
	path        string
	buildName   string
	buildNumber string
}

// Option configures the version provider
type Option func(*provider)

// WithBuildName overrides versionName, like `flutter build --build-name`
func WithBuildName(name string) Option {
	return func(p *provider) { p.buildName = name }
}

// WithBuildNumber overrides versionCode, like `flutter build --build-number`
func WithBuildNumber(number string) Option {
	return func(p *provider) { p.buildNumber = number }
}

// New creates a VersionProvider reading the `version` entry of pubspec.yaml at path
func New(path string, opts ...Option) interfaces.VersionProvider {
	p := &provider{path: path}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type pubspecFile struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Version returns the application version. The file is not read when both
// overrides are set.
func (p *provider) Version(ctx context.Context) (*model.AppVersion, error) {
	ver := &model.AppVersion{Name: defaultVersionName, Code: defaultVersionCode}

	if p.buildName == "" || p.buildNumber == "" {
		raw, err := os.ReadFile(p.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read pubspec", goerr.V("path", p.path))
		}

		var spec pubspecFile
		if err := yaml.Unmarshal(raw, &spec); err != nil {
			return nil, goerr.Wrap(err, "failed to parse pubspec", goerr.V("path", p.path))
		}

		if spec.Version != "" {
			parsed, err := ParseVersion(spec.Version)
			if err != nil {
				return nil, goerr.Wrap(err, "invalid version in pubspec", goerr.V("path", p.path))
			}
			ver = parsed
		}
	}

	if p.buildName != "" {
		ver.Name = p.buildName
	}
	if p.buildNumber != "" {
		code, err := parseCode(p.buildNumber)
		if err != nil {
			return nil, err
		}
		ver.Code = code
	}

	ctxlog.From(ctx).Debug("Resolved application version",
		"version_name", ver.Name,
		"version_code", ver.Code,
	)

	return ver, nil
}

// ParseVersion splits a pubspec version string of the form name[+code]
func ParseVersion(s string) (*model.AppVersion, error) {
	name, codeStr, hasCode := strings.Cut(strings.TrimSpace(s), "+")
	if name == "" {
		return nil, goerr.New("version name is empty", goerr.V("version", s))
	}

	ver := &model.AppVersion{Name: name, Code: defaultVersionCode}
	if hasCode {
		code, err := parseCode(codeStr)
		if err != nil {
			return nil, err
		}
		ver.Code = code
	}
	return ver, nil
}

func parseCode(s string) (int, error) {
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, goerr.Wrap(err, "version code is not a number", goerr.V("code", s))
	}
	if code <= 0 {
		return 0, goerr.New("version code must be positive", goerr.V("code", code))
	}
	return code, nil
}
