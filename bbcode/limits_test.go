package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimits_Validate(t *testing.T) {
	require.NoError(t, Limits{}.Validate())
	require.NoError(t, DefaultLimits().Validate())

	requireConfigIssue(t, Limits{MaxDepth: -1}.Validate(), IssueNegativeLimit)
	requireConfigIssue(t, Limits{MaxWarnings: -5}.Validate(), IssueNegativeLimit)
}

func TestLimits_WithDefaults(t *testing.T) {
	require.Equal(t, DefaultLimits(), Limits{}.withDefaults())

	l := Limits{MaxDepth: 2}.withDefaults()
	require.Equal(t, 2, l.MaxDepth)
	require.Equal(t, DefaultMaxWarnings, l.MaxWarnings)
}
