package shellkit

// WithHelp sets the description for the command. The description is shown
// in the command list and in per-command help.
func WithHelp(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// WithArguments declares the command's argument grammar in order. The
// grammar is validated when the command is registered.
func WithArguments(arguments ...*Argument) ConfigureCommandFunc {
	return func(command *Command) {
		command.Spec = append(command.Spec, arguments...)
	}
}

// WithOverwriteArguments replaces a command's argument grammar
func WithOverwriteArguments(arguments ...*Argument) ConfigureCommandFunc {
	return func(command *Command) {
		command.Spec = command.Spec[:0]
		command.Spec = append(command.Spec, arguments...)
	}
}
