package mainboilerplate

import "github.com/jessevdk/go-flags"

// AddCommandFunc registers a sub-command with a parent.
type AddCommandFunc func(*flags.Command) error

// CommandRegistry builds a tree of go-flags sub-commands, which are
// registered by parent name and added to a root command in one pass.
type CommandRegistry map[string][]AddCommandFunc

// NewCommandRegistry creates a new registry.
func NewCommandRegistry() CommandRegistry {
	return make(CommandRegistry)
}

// AddCommand registers a command under |parentName|. Nested parents are
// separated with dots, as in "catalog.show". The root is "".
func (cr CommandRegistry) AddCommand(parentName string, command string, shortDescription string, longDescription string, data interface{}) {
	cr[parentName] = append(cr[parentName], func(cmd *flags.Command) error {
		_, err := cmd.AddCommand(command, shortDescription, longDescription, data)
		return err
	})
}

// AddCommands adds commands registered under |rootName| to |rootCmd|. If
// |recursive|, commands registered under those commands are added as well.
func (cr CommandRegistry) AddCommands(rootName string, rootCmd *flags.Command, recursive bool) error {
	for _, fn := range cr[rootName] {
		if err := fn(rootCmd); err != nil {
			return err
		}
	}
	if !recursive {
		return nil
	}
	for _, cmd := range rootCmd.Commands() {
		var name = cmd.Name
		if rootName != "" {
			name = rootName + "." + name
		}
		if err := cr.AddCommands(name, cmd, recursive); err != nil {
			return err
		}
	}
	return nil
}
