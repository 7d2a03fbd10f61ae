package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quanb-duy/gooddata-go-sdk/pkg/client"
)

// InitCommand writes a profiles.yaml template under the user's home directory
func InitCommand() error {
	path, err := client.DefaultProfilesPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("error creating profiles directory: %w", err)
	}

	profiles := map[string]client.Profile{
		"default": {
			Host:  "https://your-org.cloud.gooddata.com",
			Token: "YOUR_API_TOKEN",
		},
	}

	data, err := yaml.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("error marshaling profiles: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Created %s\n", path)
	_, _ = fmt.Fprintln(os.Stdout, "\nEdit the file to set:")
	_, _ = fmt.Fprintln(os.Stdout, "  • Your organization host")
	_, _ = fmt.Fprintln(os.Stdout, "  • Your API token")
	_, _ = fmt.Fprintln(os.Stdout, "\nThen try:")
	_, _ = fmt.Fprintln(os.Stdout, "  gdc chat -workspace <workspace-id> \"what changed last week?\"")

	return nil
}
