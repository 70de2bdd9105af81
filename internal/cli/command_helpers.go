package cli

import (
	"fmt"

	"github.com/flightbook/flightbook-cli/pkg/airports"
	"github.com/flightbook/flightbook-cli/pkg/files"
	"github.com/flightbook/flightbook-cli/pkg/models"
)

// GlobalOptions holds the persistent flags shared by every command
type GlobalOptions struct {
	SettingsPath string
	Provider     string
	APIKey       string
	Debug        bool
	Quiet        bool
	NoColor      bool
	Yes          bool
}

// CommandContext loads settings once per command and applies flag overrides
type CommandContext struct {
	Options  *GlobalOptions
	Path     string
	Settings *models.Settings
}

// NewCommandContext resolves the settings path for opts
func NewCommandContext(opts *GlobalOptions) (*CommandContext, error) {
	if opts == nil {
		opts = &GlobalOptions{}
	}
	SetGlobalFlags(opts.Quiet, opts.NoColor, opts.Yes)

	path := opts.SettingsPath
	if path == "" {
		p, err := files.DefaultSettingsPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &CommandContext{Options: opts, Path: path}, nil
}

// LoadSettings reads the settings file and applies --provider and --api-key
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := files.ReadSettings(c.Path)
	if err != nil {
		return nil, err
	}

	if c.Options.Provider != "" {
		if err := ValidateProvider(c.Options.Provider); err != nil {
			return nil, err
		}
		settings.Lookup.Provider = NormalizeProvider(c.Options.Provider)
	}
	if c.Options.APIKey != "" {
		settings.Lookup.APIKey = c.Options.APIKey
	}

	c.Settings = settings
	return settings, nil
}

// NewClient builds the lookup client for the loaded settings
func (c *CommandContext) NewClient() (*airports.Client, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	client, err := airports.NewClientFromSettings(settings.Lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", settings.Lookup.Provider, err)
	}
	return client, nil
}
