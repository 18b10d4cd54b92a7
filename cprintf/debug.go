package cprintf

// Diagnostics parses template (without retrieving arguments or
// rendering) and returns the Pass-B normalisation categories that would
// be applied to each directive, in template order, or the first Pass-A
// (length/type legality) Diagnostic if any directive is fatally
// malformed — the same fatal surface runDriver itself enforces via
// validateLength, kept in sync here so this helper's view of a template
// never disagrees with what Sprintf et al. would actually do. It exists
// for tests and diagnostic tooling only, per spec.md §7 ("exposed to
// tests and diagnostic helpers but not to the public entry points") —
// it is not one of the public formatting entry points and performs no
// I/O.
func Diagnostics(template string) ([]string, error) {
	var out []string
	i := 0
	n := len(template)
	m := modeUnknown
	for i < n {
		if template[i] != '%' {
			i++
			continue
		}
		i++
		if i < n && template[i] == '%' {
			i++
			continue
		}
		spec, consumed, warns, diag := parseSpecifier(template[i:], m, i)
		if diag != nil {
			return out, diag
		}
		if diag := validateLength(spec, i); diag != nil {
			return out, diag
		}
		if m == modeUnknown {
			if spec.Position > 0 {
				m = modePositional
			} else {
				m = modeSequential
			}
		}
		for _, w := range warns {
			out = append(out, w.String())
		}
		if n := normalizeFlags(spec); n != normNone {
			out = append(out, n.String())
		}
		i += consumed
	}
	return out, nil
}
