package main

// extractBoolFlag scans args for a bare "--name" flag, removing every
// occurrence and reporting whether it was present. Mode subcommands run
// with DisableFlagParsing so the driver's own option grammar (-D, +incdir+,
// -f, ...) reaches internal/cliparse unmolested; a handful of mode-only
// switches that aren't part of that grammar (--comments, --obfuscate, ...)
// are pulled out of the raw args here instead.
func extractBoolFlag(args []string, name string) (found bool, rest []string) {
	rest = make([]string, 0, len(args))
	for _, a := range args {
		if a == name {
			found = true
			continue
		}
		rest = append(rest, a)
	}
	return found, rest
}
