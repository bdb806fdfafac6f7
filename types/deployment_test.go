package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeploymentHash(t *testing.T) {
	for _, s := range []string{
		"sg1",
		"QmXoypizjW3WknFiJnKLwHCnL72vedxjQkDDP1mXWo6uco",
		"graft_base_01",
	} {
		h, err := NewDeploymentHash(s)
		require.NoError(t, err, s)
		require.Equal(t, s, h.String())
	}
}

func TestNewDeploymentHashRejectsInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"has space",
		"dash-ed",
		"subgraphs",
		"Qm/slash",
		"ünicode",
		strings.Repeat("a", MaxDeploymentHashLength+1),
	} {
		_, err := NewDeploymentHash(s)
		require.Error(t, err, "%q should be rejected", s)
	}
}
