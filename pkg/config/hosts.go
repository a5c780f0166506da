package config

import "strings"

// splitList splits comma-separated values, trimming whitespace and dropping
// empty tokens and duplicates while keeping first-seen order.
func splitList(raw string) []string {
	tokens := strings.Split(raw, ",")
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		v := strings.TrimSpace(token)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		out = append(out, v)
		seen[v] = struct{}{}
	}
	return out
}

func matchHost(pattern, host string) bool {
	if pattern == "*" {
		return true
	}

	// *.example.com
	if strings.HasPrefix(pattern, "*.") && !strings.Contains(pattern[2:], "*") {
		return strings.HasSuffix(host, pattern[1:])
	}

	// example.*
	if strings.HasSuffix(pattern, ".*") && !strings.Contains(pattern[:len(pattern)-2], "*") {
		return strings.HasPrefix(host, pattern[:len(pattern)-2]+".")
	}

	if strings.Contains(pattern, "*") {
		return matchWildcard(pattern, host)
	}

	return strings.EqualFold(pattern, host)
}

// matchWildcard handles patterns with * wildcards anywhere
func matchWildcard(pattern, str string) bool {
	parts := strings.Split(pattern, "*")

	if !strings.HasPrefix(str, parts[0]) {
		return false
	}
	str = str[len(parts[0]):]

	last := parts[len(parts)-1]
	if !strings.HasSuffix(str, last) {
		return false
	}
	str = str[:len(str)-len(last)]

	for _, part := range parts[1 : len(parts)-1] {
		if part == "" {
			continue
		}
		idx := strings.Index(str, part)
		if idx < 0 {
			return false
		}
		str = str[idx+len(part):]
	}
	return true
}

// stripPort drops a trailing :port, leaving bracketless IPv6 literals alone.
func stripPort(host string) string {
	if strings.HasPrefix(host, "[") {
		if end := strings.Index(host, "]"); end > 0 {
			return host[1:end]
		}
		return host
	}
	if strings.Count(host, ":") == 1 {
		return host[:strings.Index(host, ":")]
	}
	return host
}
