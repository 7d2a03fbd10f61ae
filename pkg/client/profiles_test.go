package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanb-duy/gooddata-go-sdk/pkg/client"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveProfileFromEnvironment(t *testing.T) {
	t.Setenv("GOODDATA_HOST", "https://example.gooddata.com")
	t.Setenv("GOODDATA_API_TOKEN", "env-token")

	profile, err := client.ResolveProfile()
	require.NoError(t, err)

	assert.Equal(t, "https://example.gooddata.com", profile.Host)
	assert.Equal(t, "env-token", profile.Token)
}

func TestResolveProfileFromFile(t *testing.T) {
	path := writeProfiles(t, `
default:
  host: https://default.gooddata.com
  token: default-token
staging:
  host: https://staging.gooddata.com
  token: staging-token
  custom_headers:
    X-Team: analytics
`)
	t.Setenv("GOODDATA_HOST", "")
	t.Setenv("GOODDATA_API_TOKEN", "")
	t.Setenv("GOODDATA_PROFILES_FILE", path)

	t.Run("default profile", func(t *testing.T) {
		profile, err := client.ResolveProfile()
		require.NoError(t, err)
		assert.Equal(t, "https://default.gooddata.com", profile.Host)
	})

	t.Run("named profile", func(t *testing.T) {
		t.Setenv("GOODDATA_PROFILE", "staging")

		profile, err := client.ResolveProfile()
		require.NoError(t, err)
		assert.Equal(t, "https://staging.gooddata.com", profile.Host)
		assert.Equal(t, "staging-token", profile.Token)
		assert.Equal(t, "analytics", profile.CustomHeaders["X-Team"])
	})

	t.Run("unknown profile", func(t *testing.T) {
		t.Setenv("GOODDATA_PROFILE", "production")

		_, err := client.ResolveProfile()
		assert.ErrorIs(t, err, client.ErrProfileNotFound)
	})
}

func TestResolveProfileRejectsInvalidEntries(t *testing.T) {
	path := writeProfiles(t, `
default:
  host: not-a-url
  token: some-token
`)
	t.Setenv("GOODDATA_HOST", "")
	t.Setenv("GOODDATA_API_TOKEN", "")
	t.Setenv("GOODDATA_PROFILES_FILE", path)

	_, err := client.ResolveProfile()
	assert.Error(t, err)
}

func TestLoadProfilesMissingFile(t *testing.T) {
	_, err := client.LoadProfiles(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewFromProfileAppliesCustomHeaders(t *testing.T) {
	profile := client.Profile{
		Host:          "https://example.gooddata.com",
		Token:         "secret",
		CustomHeaders: map[string]string{"X-Team": "analytics"},
	}

	c, err := client.NewFromProfile(profile)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
