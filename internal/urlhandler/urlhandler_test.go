package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURLFormat(t *testing.T) {
	assert.NoError(t, ValidateURLFormat("https://example.com/page"))
	assert.Error(t, ValidateURLFormat(""))
	assert.Error(t, ValidateURLFormat("   "))
	assert.Error(t, ValidateURLFormat("not a url"))
}

func TestValidateAbsoluteURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https URL", "https://example.com/image.png", false},
		{"http URL", "http://example.com", false},
		{"empty treated as absent", "", false},
		{"whitespace treated as absent", "   ", false},
		{"relative path", "/images/a.png", true},
		{"missing scheme", "example.com/a.png", true},
		{"scheme without host", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAbsoluteURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
