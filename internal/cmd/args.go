package cmd

import "strings"

// longAliases maps multi-letter single-dash flags to their long form. The flag
// parser only knows one-letter shorthands.
var longAliases = map[string]string{
	"-dn": "--display_name",
}

// NormalizeArgs rewrites multi-letter short flags such as -dn and -dn=value
// into their long form. Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := longAliases[name]; ok {
			if hasValue {
				arg = long + "=" + value
			} else {
				arg = long
			}
		}
		out = append(out, arg)
	}
	return out
}
