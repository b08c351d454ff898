package envfile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradebot/topstepx-token/internal/envfile"
)

const key = "TOPSTEPX_SESSION_TOKEN"

func TestReplace(t *testing.T) {
	tt := []struct {
		name     string
		content  string
		expected string
		replaced bool
	}{
		{
			name:     "existing line",
			content:  "TOPSTEPX_USERNAME=\"trader\"\nTOPSTEPX_SESSION_TOKEN=\"old\"\nTOPSTEP_BASE_URL=https://api.topstepx.com\n",
			expected: "TOPSTEPX_USERNAME=\"trader\"\nTOPSTEPX_SESSION_TOKEN=\"abc\"\nTOPSTEP_BASE_URL=https://api.topstepx.com\n",
			replaced: true,
		},
		{
			name:     "unquoted existing line",
			content:  "TOPSTEPX_SESSION_TOKEN=old\n",
			expected: "TOPSTEPX_SESSION_TOKEN=\"abc\"\n",
			replaced: true,
		},
		{
			name:     "empty existing value",
			content:  "TOPSTEPX_SESSION_TOKEN=\n# comment\n",
			expected: "TOPSTEPX_SESSION_TOKEN=\"abc\"\n# comment\n",
			replaced: true,
		},
		{
			name:     "export prefix and spaces",
			content:  "  export TOPSTEPX_SESSION_TOKEN = 'old'\n",
			expected: "  export TOPSTEPX_SESSION_TOKEN=\"abc\"\n",
			replaced: true,
		},
		{
			name:     "last line without newline",
			content:  "A=1\nTOPSTEPX_SESSION_TOKEN=\"old\"",
			expected: "A=1\nTOPSTEPX_SESSION_TOKEN=\"abc\"",
			replaced: true,
		},
		{
			name:     "crlf line endings",
			content:  "A=1\r\nTOPSTEPX_SESSION_TOKEN=\"old\"\r\nB=2\r\n",
			expected: "A=1\r\nTOPSTEPX_SESSION_TOKEN=\"abc\"\r\nB=2\r\n",
			replaced: true,
		},
		{
			name:     "missing line",
			content:  "TOPSTEPX_USERNAME=\"trader\"\n",
			expected: "TOPSTEPX_USERNAME=\"trader\"\nTOPSTEPX_SESSION_TOKEN=\"abc\"\n",
		},
		{
			name:     "missing line and trailing newline",
			content:  "TOPSTEPX_USERNAME=\"trader\"",
			expected: "TOPSTEPX_USERNAME=\"trader\"\nTOPSTEPX_SESSION_TOKEN=\"abc\"\n",
		},
		{
			name:     "empty file",
			content:  "",
			expected: "TOPSTEPX_SESSION_TOKEN=\"abc\"\n",
		},
		{
			name:     "similar keys are not touched",
			content:  "TOPSTEPX_SESSION_TOKEN_OLD=x\n# TOPSTEPX_SESSION_TOKEN=y\nMY_TOPSTEPX_SESSION_TOKEN=z\n",
			expected: "TOPSTEPX_SESSION_TOKEN_OLD=x\n# TOPSTEPX_SESSION_TOKEN=y\nMY_TOPSTEPX_SESSION_TOKEN=z\nTOPSTEPX_SESSION_TOKEN=\"abc\"\n",
		},
		{
			name:     "duplicate lines",
			content:  "TOPSTEPX_SESSION_TOKEN=a\nTOPSTEPX_SESSION_TOKEN=b\n",
			expected: "TOPSTEPX_SESSION_TOKEN=\"abc\"\nTOPSTEPX_SESSION_TOKEN=\"abc\"\n",
			replaced: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			out, replaced := envfile.Replace(tc.content, key, "abc")
			require.Equal(t, tc.expected, out)
			require.Equal(t, tc.replaced, replaced)
		})
	}
}

func TestLine(t *testing.T) {
	require.Equal(t, `K="abc"`, envfile.Line("K", "abc"))
	require.Equal(t, `K="a\"b\\c"`, envfile.Line("K", `a"b\c`))
	require.Equal(t, `K="ab\$HOME"`, envfile.Line("K", "ab$HOME"))
}

func TestValidKey(t *testing.T) {
	require.True(t, envfile.ValidKey(key))
	require.True(t, envfile.ValidKey("_x1"))
	require.False(t, envfile.ValidKey(""))
	require.False(t, envfile.ValidKey("1X"))
	require.False(t, envfile.ValidKey("A-B"))
	require.False(t, envfile.ValidKey("A B"))
}
