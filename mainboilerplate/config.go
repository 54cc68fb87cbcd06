package mainboilerplate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// Version and BuildDate are populated at build time through -ldflags.
var (
	Version   = "development"
	BuildDate = "unknown"
)

// ConfigRootEnv names an environment variable of an additional directory
// searched for INI configuration.
const ConfigRootEnv = "PACKETLENS_CONFIG_ROOT"

// configPrefixes returns the directories searched for an INI file, in order.
func configPrefixes() []string {
	var prefixes = []string{
		".",
		filepath.Join(os.Getenv("HOME"), ".config", "packetlens"),
		filepath.Join(os.Getenv("UserProfile"), ".config", "packetlens"),
	}
	if root := os.Getenv(ConfigRootEnv); root != "" {
		prefixes = append(prefixes, root)
	}
	return prefixes
}

// ParseConfigFile parses the first INI file matching |configName| into the
// Parser. It returns the path of the parsed file, or "" if none was found.
// Unknown INI options are ignored. The file is searched for in:
//   - The current working directory.
//   - ~/.config/packetlens (under the users's $HOME or %UserProfile% directory).
//   - $PACKETLENS_CONFIG_ROOT
func ParseConfigFile(parser *flags.Parser, configName string) (string, error) {
	var origOptions = parser.Options
	parser.Options |= flags.IgnoreUnknown
	defer func() { parser.Options = origOptions }()

	var iniParser = flags.NewIniParser(parser)

	for _, prefix := range configPrefixes() {
		var path = filepath.Join(prefix, configName)

		if err := iniParser.ParseFile(path); err == nil {
			return path, nil
		} else if os.IsNotExist(err) {
			// Pass.
		} else {
			return "", err
		}
	}
	return "", nil
}

// MustParseConfig requires that the Parser parse from the combination of an
// optional INI file, configured environment bindings, and explicit flags.
func MustParseConfig(parser *flags.Parser, configName string) {
	if _, err := ParseConfigFile(parser, configName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	MustParseArgs(parser)
}

// MustParseArgs requires that Parser be able to ParseArgs without error.
func MustParseArgs(parser *flags.Parser) {
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		var flagErr, ok = err.(*flags.Error)
		if !ok {
			Must(err, "fatal error")
		}

		switch flagErr.Type {
		case flags.ErrDuplicatedFlag, flags.ErrTag, flags.ErrInvalidTag, flags.ErrShortNameTooLong, flags.ErrMarshal:
			// These error types indicate a problem in the configuration object
			// |parser| was asked to parse (eg, a developer error rather than input error).
			panic(err)

		case flags.ErrCommandRequired:
			// Extend go-flag's "Please specify one command of: ... " output with the full usage.
			os.Stderr.WriteString("\n")
			parser.WriteHelp(os.Stderr)
			fmt.Fprintf(os.Stderr, "\nVersion %s, built at %s.\n", Version, BuildDate)
			os.Exit(1)

		case flags.ErrHelp:
			if parser.Options&flags.PrintErrors == 0 {
				parser.WriteHelp(os.Stderr)
				fmt.Fprintf(os.Stderr, "\nVersion %s, built at %s.\n", Version, BuildDate)
			}
			os.Exit(1)

		default:
			// Other error types indicate a problem of input. Generally, `go-flags`
			// already prints a helpful message and we can simply exit.
			os.Exit(1)
		}
	}
}

// AddPrintConfigCmd to the Parser. The "print-config" command helps users test
// whether their applications are correctly configured, by exporting all runtime
// configuration in INI format.
func AddPrintConfigCmd(parser *flags.Parser, configName string) {
	_, _ = parser.AddCommand("print-config", "Print combined configuration and exit", `
print-config parses the combined configuration from `+configName+`, flags,
and environment variables, and then writes the configuration to stdout in INI format.
`, &printConfig{parser})
}

type printConfig struct {
	*flags.Parser `no-flag:"t"`
}

func (p printConfig) Execute([]string) error {
	var ini = flags.NewIniParser(p.Parser)
	ini.Write(os.Stdout, flags.IniIncludeComments|flags.IniCommentDefaults|flags.IniIncludeDefaults)
	return nil
}
