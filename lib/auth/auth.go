package auth

import "strings"

// ValidateApiKey compares the caller-supplied key against the configured one.
// An empty expected key means the function is misconfigured; the caller is
// responsible for logging that case distinctly before rejecting.
func ValidateApiKey(provided string, expected string) bool {
	if expected == "" {
		return false
	}
	if provided == "" {
		return false
	}
	return provided == expected
}

// HeaderValue looks up a header by name without regard to case. API Gateway
// passes headers through with whatever casing the client used.
func HeaderValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
