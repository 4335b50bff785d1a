package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "casebook/pkg/domain-errors"
)

func TestParseUserID(t *testing.T) {
	valid := uuid.New()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"lowercase uuid", valid.String(), false},
		{"uppercase uuid", strings.ToUpper(valid.String()), false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"nil uuid", uuid.Nil.String(), true},
		{"username instead of id", "holmes", true},
		{"path segment", "../cases", true},
		{"embedded null", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"zero-width space", "550e8400\u200B-e29b-41d4-a716-446655440000", true},
		{"oversized", strings.Repeat("f", 512), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUserID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				assert.True(t, got.IsNil())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, UserID(valid), got)
		})
	}
}

func TestEveryIDTypeParsesAlike(t *testing.T) {
	for _, err := range parseAll(uuid.NewString()) {
		require.NoError(t, err)
	}
	for _, input := range []string{"", "badge-7", uuid.Nil.String()} {
		for _, err := range parseAll(input) {
			require.Error(t, err, "input %q", input)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	original := CaseID(uuid.New())

	text, err := original.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, original.String(), string(text))

	var decoded CaseID
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, original, decoded)
	assert.True(t, CaseID{}.IsNil())

	require.Error(t, decoded.UnmarshalText([]byte("not-a-case")))
}

func parseAll(input string) []error {
	_, errUser := ParseUserID(input)
	_, errCase := ParseCaseID(input)
	_, errParticipation := ParseParticipationID(input)
	_, errHiring := ParseHiringRequestID(input)
	_, errBadge := ParseBadgeID(input)
	_, errAward := ParseBadgeAwardID(input)
	_, errRating := ParseRatingID(input)
	_, errPost := ParseJobPostID(input)
	_, errApplication := ParseApplicationID(input)
	return []error{errUser, errCase, errParticipation, errHiring, errBadge, errAward, errRating, errPost, errApplication}
}
