// Package flagx lets several flag sets share one command line. Each set
// picks out only the flags it owns before parsing, so unknown flags of
// the other sets never make it fail.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps the arguments that belong to the allowed flags, in order.
// Both "-f value" and "-f=value" forms are recognized; a value is taken from
// the following argument only when it does not itself start with "-".
func FilterArgs(args []string, allowed ...string) []string {
	own := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		own[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, ok := strings.Cut(arg, "="); ok {
			if own[name] {
				out = append(out, arg)
			}
			continue
		}

		if !own[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigPath returns the JSON config file named by -c or -config in args,
// or "" when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (shorthand)")
	_ = fs.Parse(FilterArgs(args, "-c", "-config", "--config"))

	return path
}
