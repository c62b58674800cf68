package urlhandler

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURLFormat checks that a raw string parses as a well-formed URL.
func ValidateURLFormat(rawURL string) error {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return fmt.Errorf("URL is empty")
	}

	_, err := url.ParseRequestURI(trimmedURL)
	if err != nil {
		return fmt.Errorf("invalid URL format '%s': %w", trimmedURL, err)
	}

	return nil
}

// ValidateAbsoluteURL checks that a raw string is an absolute URL with a scheme
// and hostname. An empty or whitespace-only string is treated as absent and
// passes validation, matching how optional embed URL fields behave.
func ValidateAbsoluteURL(rawURL string) error {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return nil
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return fmt.Errorf("could not parse URL '%s': %w", trimmedURL, err)
	}

	if !parsedURL.IsAbs() {
		return fmt.Errorf("URL '%s' is not absolute", trimmedURL)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("URL '%s' lacks a valid hostname", trimmedURL)
	}

	return nil
}
