package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// parse reads the subset line by line into nested maps keyed by table path
func parse(data []byte) (map[string]any, error) {
	root := map[string]any{}
	scope := root

	for lineNo, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			name, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			table := map[string]any{}
			root[name] = table
			scope = table
			continue
		}

		key, value, err := parseKeyValue(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		scope[key] = value
	}
	return root, nil
}

func parseHeader(line string) (string, error) {
	if !strings.HasSuffix(line, "]") {
		return "", fmt.Errorf("unterminated table header %q", line)
	}
	name := strings.TrimSpace(line[1 : len(line)-1])
	if name == "" || strings.ContainsAny(name, "[]=") {
		return "", fmt.Errorf("invalid table name %q", name)
	}
	return name, nil
}

func parseKeyValue(line string) (string, any, error) {
	eq := strings.Index(line, "=")
	if eq < 0 {
		return "", nil, fmt.Errorf("expected key = value, got %q", line)
	}
	key := strings.TrimSpace(line[:eq])
	if key == "" {
		return "", nil, fmt.Errorf("empty key in %q", line)
	}

	value, err := parseValue(strings.TrimSpace(line[eq+1:]))
	if err != nil {
		return "", nil, err
	}
	return key, value, nil
}

func parseValue(raw string) (any, error) {
	if raw == "" {
		return nil, fmt.Errorf("missing value")
	}

	if raw[0] == '"' {
		return parseString(raw)
	}

	// Trailing comments are only valid after non-string values here
	if i := strings.Index(raw, "#"); i >= 0 {
		raw = strings.TrimSpace(raw[:i])
	}

	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("unsupported value %q", raw)
}

func parseString(raw string) (string, error) {
	var b strings.Builder
	escaped := false
	for i := 1; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			switch c {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"', '\\':
				b.WriteByte(c)
			default:
				return "", fmt.Errorf("unknown escape \\%c", c)
			}
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			rest := strings.TrimSpace(raw[i+1:])
			if rest != "" && !strings.HasPrefix(rest, "#") {
				return "", fmt.Errorf("trailing content after string: %q", rest)
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
	return "", fmt.Errorf("unterminated string %s", raw)
}
