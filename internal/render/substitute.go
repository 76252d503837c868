package render

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// placeholderPattern matches "$$", "$name", "${name}" and, through the final
// empty group, any other use of "$".
var placeholderPattern = regexp.MustCompile(`\$(?:(\$)|([_A-Za-z][_A-Za-z0-9]*)|\{([_A-Za-z][_A-Za-z0-9]*)\}|())`)

// Substitute replaces ${name} and $name placeholders in text with values.
// "$$" yields a literal dollar sign. A placeholder without a value is an
// error, and so is a "$" that does not start a placeholder, such as an
// unterminated "${".
func Substitute(text string, values map[string]string) (string, error) {
	var (
		out     strings.Builder
		invalid []string
		missing = make(map[string]bool)
		last    int
	)

	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		out.WriteString(text[last:m[0]])
		last = m[1]

		var name string
		switch {
		case m[2] >= 0:
			out.WriteByte('$')
			continue
		case m[4] >= 0:
			name = text[m[4]:m[5]]
		case m[6] >= 0:
			name = text[m[6]:m[7]]
		default:
			line, col := position(text, m[0])
			invalid = append(invalid, fmt.Sprintf("line %d, col %d", line, col))
			continue
		}

		value, ok := values[name]
		if !ok {
			missing[name] = true
			continue
		}
		out.WriteString(value)
	}
	out.WriteString(text[last:])

	var errs []error
	if len(invalid) > 0 {
		errs = append(errs, fmt.Errorf("invalid placeholder at %s", strings.Join(invalid, "; ")))
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("unknown placeholder(s): %s", strings.Join(slices.Sorted(maps.Keys(missing)), ", ")))
	}
	if err := errors.Join(errs...); err != nil {
		return "", err
	}
	return out.String(), nil
}

// position returns the 1-based line and column of offset in text
func position(text string, offset int) (line, col int) {
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - strings.LastIndexByte(before, '\n')
	return line, col
}
