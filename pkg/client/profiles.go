package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ProfilesFileName is the default profiles file under the user's home directory
const ProfilesFileName = ".gooddata/profiles.yaml"

// ErrProfileNotFound is returned when the requested profile is not in the file
var ErrProfileNotFound = errors.New("profile not found")

// Profile is one named connection from profiles.yaml
type Profile struct {
	Host          string            `yaml:"host" validate:"required,url"`
	Token         string            `yaml:"token" validate:"required"`
	CustomHeaders map[string]string `yaml:"custom_headers,omitempty"`
}

// envSettings are the environment overrides consumed with the GOODDATA_ prefix
type envSettings struct {
	Host         string `env:"HOST"`
	Token        string `env:"API_TOKEN"`
	Profile      string `env:"PROFILE" envDefault:"default"`
	ProfilesFile string `env:"PROFILES_FILE"`
}

var profileValidator = validator.New()

// DefaultProfilesPath returns the profiles file location under $HOME
func DefaultProfilesPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ProfilesFileName), nil
}

// LoadProfiles reads a profiles.yaml file
func LoadProfiles(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	var profiles map[string]Profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("invalid profiles file %s: %w", path, err)
	}
	return profiles, nil
}

// ResolveProfile picks the connection settings to use: GOODDATA_HOST and
// GOODDATA_API_TOKEN win when both are set, otherwise the GOODDATA_PROFILE
// entry (default "default") is read from the profiles file.
func ResolveProfile() (Profile, error) {
	var settings envSettings
	if err := env.ParseWithOptions(&settings, env.Options{Prefix: "GOODDATA_"}); err != nil {
		return Profile{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if settings.Host != "" && settings.Token != "" {
		profile := Profile{Host: settings.Host, Token: settings.Token}
		if err := profileValidator.Struct(profile); err != nil {
			return Profile{}, fmt.Errorf("invalid environment settings: %w", err)
		}
		return profile, nil
	}

	path := settings.ProfilesFile
	if path == "" {
		var err error
		if path, err = DefaultProfilesPath(); err != nil {
			return Profile{}, err
		}
	}

	profiles, err := LoadProfiles(path)
	if err != nil {
		return Profile{}, err
	}

	profile, ok := profiles[settings.Profile]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q in %s", ErrProfileNotFound, settings.Profile, path)
	}
	if err := profileValidator.Struct(profile); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %q: %w", settings.Profile, err)
	}
	return profile, nil
}
