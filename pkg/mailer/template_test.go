package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		wantSubject string
		wantBody    string
		wantErr     error
	}{
		{
			name:        "frontmatter and body",
			content:     "---\nSubject: NN1 Dev Club #9\n---\n# Hello\n",
			wantSubject: "NN1 Dev Club #9",
			wantBody:    "# Hello\n",
		},
		{
			name:        "windows line endings",
			content:     "---\r\nSubject: Hi\r\n---\r\nBody",
			wantSubject: "Hi",
			wantBody:    "Body",
		},
		{
			name:     "no frontmatter",
			content:  "Just a body",
			wantBody: "Just a body",
		},
		{
			name:     "empty frontmatter",
			content:  "---\n---\nBody",
			wantBody: "Body",
		},
		{
			name:    "unterminated frontmatter",
			content: "---\nSubject: Hi\nBody",
			wantErr: ErrInvalidFrontmatter,
		},
		{
			name:    "nothing after delimiter",
			content: "---\n",
			wantErr: ErrInvalidFrontmatter,
		},
		{
			name:    "invalid yaml",
			content: "---\nSubject: [unclosed\n---\nBody",
			wantErr: ErrInvalidFrontmatter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(tt.content))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantSubject, tmpl.Subject())
			require.Equal(t, tt.wantBody, tmpl.Body)
			require.NotNil(t, tmpl.Metadata)
		})
	}
}

func TestTemplate_Subject_NonString(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\nSubject: 42\n---\nBody"))
	require.NoError(t, err)
	require.Empty(t, tmpl.Subject())
}
