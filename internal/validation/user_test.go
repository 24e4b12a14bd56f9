package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/Izanmg/streamevents/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "simple", username: "alice", wantErr: false},
		{name: "with dots and underscores", username: "alice.smith_99", wantErr: false},
		{name: "email-like", username: "alice@example.com", wantErr: false},
		{name: "plus and hyphen", username: "a+b-c", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "space", username: "alice smith", wantErr: true},
		{name: "hash", username: "alice#1", wantErr: true},
		{name: "slash", username: "a/b", wantErr: true},
		{name: "unicode letter", username: "álice", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var appErr *models.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_USERNAME", appErr.Code)
		})
	}
}

func TestValidateUsernameTooLong(t *testing.T) {
	err := ValidateUsername(strings.Repeat("a", 151))
	assert.Error(t, err)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("first.last+tag@sub.example.org"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail("@example.com"))
}
