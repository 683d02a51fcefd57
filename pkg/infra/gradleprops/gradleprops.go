// Package gradleprops builds the project property map that Gradle exposes
// through project.findProperty. Sources are applied in increasing precedence:
// gradle.properties, ORG_GRADLE_PROJECT_* environment variables, then -P
// command line overrides.
package gradleprops

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/manoooz/apkconf/pkg/infra/properties"
)

// EnvPrefix marks environment variables that become project properties
const EnvPrefix = "ORG_GRADLE_PROJECT_"

type loader struct {
	files     []string
	environ   []string
	overrides []string
}

// Option adds a property source
type Option func(*loader)

// WithFile adds a properties file. Missing files are skipped.
func WithFile(path string) Option {
	return func(l *loader) { l.files = append(l.files, path) }
}

// WithEnviron adds environment entries in KEY=VALUE form, as returned by os.Environ
func WithEnviron(environ []string) Option {
	return func(l *loader) { l.environ = environ }
}

// WithOverrides adds -P style name=value entries. A bare name sets an empty value.
func WithOverrides(overrides []string) Option {
	return func(l *loader) { l.overrides = overrides }
}

// Load merges all configured sources into one property map
func Load(opts ...Option) (properties.Properties, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	merged := properties.Properties{}

	for _, path := range l.files {
		props, err := properties.LoadFile(path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load gradle properties")
		}
		for k, v := range props {
			merged[k] = v
		}
	}

	for _, kv := range l.environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		if name := strings.TrimPrefix(key, EnvPrefix); name != "" {
			merged[name] = value
		}
	}

	for _, kv := range l.overrides {
		name, value, _ := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, goerr.New("project property override has no name", goerr.V("override", kv))
		}
		merged[name] = value
	}

	return merged, nil
}
