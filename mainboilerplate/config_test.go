package mainboilerplate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Service ServiceConfig `group:"Service" namespace:"service" env-namespace:"SERVICE"`
	Log     LogConfig     `group:"Logging" namespace:"log" env-namespace:"LOG"`
}

func TestParseConfigFileFromRoot(t *testing.T) {
	var dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "parse-test.ini"), []byte(`
[Service]
id = from-ini

[Logging]
level = debug
unknown = ignored
`), 0644))
	t.Setenv(ConfigRootEnv, dir)

	var cfg testConfig
	var parser = flags.NewParser(&cfg, flags.Default)

	var path, err = ParseConfigFile(parser, "parse-test.ini")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "parse-test.ini"), path)
	require.Equal(t, "from-ini", cfg.Service.ID)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, flags.Default, parser.Options)

	// Flags take precedence over the INI file.
	_, err = parser.ParseArgs([]string{"--service.id=from-flag"})
	require.NoError(t, err)
	require.Equal(t, "from-flag", cfg.Service.ID)
	require.Equal(t, ":25577", cfg.Service.Listen)
	require.NoError(t, cfg.Service.Validate())
	require.NoError(t, cfg.Log.Validate())

	path, err = ParseConfigFile(parser, "does-not-exist.ini")
	require.NoError(t, err)
	require.Equal(t, "", path)
}

func TestValidation(t *testing.T) {
	require.EqualError(t, ServiceConfig{ID: "has space", Listen: ":1"}.Validate(),
		"ID: not a valid token (has space)")
	require.Error(t, ServiceConfig{Listen: "nope"}.Validate())

	require.Error(t, LogConfig{Level: "loud", Format: "text"}.Validate())
	require.EqualError(t, LogConfig{Level: "info", Format: "xml"}.Validate(),
		`unrecognized log format "xml"`)
}

func TestResolveID(t *testing.T) {
	require.Equal(t, "fixed", ServiceConfig{ID: "fixed"}.ResolveID())

	var id = ServiceConfig{}.ResolveID()
	require.NotEmpty(t, id)
	require.NoError(t, ServiceConfig{ID: id, Listen: ":1"}.Validate())
}

type noopCmd struct{}

func (noopCmd) Execute([]string) error { return nil }

func TestCommandRegistry(t *testing.T) {
	var parser = flags.NewParser(new(struct{}), flags.None)
	var reg = NewCommandRegistry()

	reg.AddCommand("", "catalog", "Catalogs", "", &noopCmd{})
	reg.AddCommand("catalog", "show", "Show a catalog", "", &noopCmd{})
	reg.AddCommand("", "proxy", "Run a proxy", "", &noopCmd{})

	require.NoError(t, reg.AddCommands("", parser.Command, true))
	require.NotNil(t, parser.Find("proxy"))
	require.NotNil(t, parser.Find("catalog").Find("show"))
}
