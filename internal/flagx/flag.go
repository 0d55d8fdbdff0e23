// Package flagx parses a subset of the command line so that several
// components can each own a few flags without tripping over the others.
package flagx

import (
	"flag"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// FilterArgs keeps only the flags listed in allowedFlags, with their values.
//
// Both "-c conf.json" and "-c=conf.json" forms are recognised. A token that
// follows an allowed flag is taken as its value unless it starts with '-'.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ParseSubset parses the process arguments into fs, considering only the
// named flags.
func ParseSubset(fs *flag.FlagSet, names ...string) error {
	return fs.Parse(FilterArgs(os.Args[1:], names))
}

// JsonConfigFlags returns the config file path given with -c or -config,
// with a leading ~ expanded to the home directory. It returns "" when
// neither flag is present.
func JsonConfigFlags() string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = ParseSubset(fs, "-c", "-config")

	if config == "" {
		return ""
	}
	if expanded, err := homedir.Expand(config); err == nil {
		return expanded
	}
	return config
}
