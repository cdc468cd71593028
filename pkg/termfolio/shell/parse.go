package shell

import "strings"

// Command is a parsed input line.
type Command struct {
	Name string
	Args []string
}

// Parse splits line on runs of whitespace. The first field, lowercased, is
// the command name; the rest are positional arguments. There is no quoting,
// escaping or globbing.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Args: []string{}}
	}
	return Command{
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
	}
}
