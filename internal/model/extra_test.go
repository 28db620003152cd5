package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtraDocument_RoundTrip(t *testing.T) {
	doc := ExtraDocument{
		Interests: []string{"Photography", "Chess"},
		Preferences: Preferences{
			Theme:      "dark",
			Language:   "en",
			Newsletter: true,
		},
		SocialMedia: SocialMedia{
			Twitter: "@someone",
			Website: "https://example.com",
		},
	}

	raw, err := doc.Value()
	require.NoError(t, err)

	var restored ExtraDocument
	require.NoError(t, restored.Scan(raw))
	require.Equal(t, doc, restored)
}

func TestExtraDocument_Scan(t *testing.T) {
	type testcase struct {
		name      string
		input     interface{}
		expectErr bool
		assert    func(t *testing.T, doc ExtraDocument)
	}

	cases := []testcase{
		{
			name:  "NilColumn",
			input: nil,
			assert: func(t *testing.T, doc ExtraDocument) {
				require.True(t, doc.IsZero())
			},
		},
		{
			name:  "EmptyString",
			input: "",
			assert: func(t *testing.T, doc ExtraDocument) {
				require.True(t, doc.IsZero())
			},
		},
		{
			name:  "CorruptedPayload",
			input: "{not valid json at all",
			assert: func(t *testing.T, doc ExtraDocument) {
				require.True(t, doc.IsZero())
			},
		},
		{
			name:  "MismatchedShape",
			input: `{"interests": "not-an-array"}`,
			assert: func(t *testing.T, doc ExtraDocument) {
				require.True(t, doc.IsZero())
			},
		},
		{
			name:  "ByteSlicePayload",
			input: []byte(`{"interests":["Cooking"],"preferences":{"theme":"light","language":"en","newsletter":false},"social_media":{}}`),
			assert: func(t *testing.T, doc ExtraDocument) {
				require.Equal(t, []string{"Cooking"}, doc.Interests)
				require.Equal(t, "light", doc.Preferences.Theme)
			},
		},
		{
			name:      "UnsupportedType",
			input:     42,
			expectErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Preload the target to prove Scan resets stale state.
			doc := ExtraDocument{Interests: []string{"stale"}}
			err := doc.Scan(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.assert != nil {
				tc.assert(t, doc)
			}
		})
	}
}

func TestExtraDocument_IsZero(t *testing.T) {
	require.True(t, ExtraDocument{}.IsZero())
	require.False(t, ExtraDocument{Interests: []string{"Music"}}.IsZero())
	require.False(t, ExtraDocument{Preferences: Preferences{Theme: "dark"}}.IsZero())
	require.False(t, ExtraDocument{SocialMedia: SocialMedia{Twitter: "@x"}}.IsZero())
}
