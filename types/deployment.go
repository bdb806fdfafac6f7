package types

import (
	"fmt"
	"strings"
)

const (
	// MaxDeploymentHashLength is the length of the longest accepted deployment key, an IPFS hash is 46 chars
	MaxDeploymentHashLength = 46

	reservedDeploymentName = "subgraphs"
)

// DeploymentHash is the validated key of a deployment
type DeploymentHash string

// NewDeploymentHash validates s and returns it as a DeploymentHash
func NewDeploymentHash(s string) (DeploymentHash, error) {
	if err := ValidateDeploymentHash(s); err != nil {
		return "", err
	}
	return DeploymentHash(s), nil
}

// ValidateDeploymentHash checks that s is non-empty, not longer than MaxDeploymentHashLength and
// only made of ASCII letters, digits and underscores.
func ValidateDeploymentHash(s string) error {
	if s == "" {
		return fmt.Errorf("deployment hash must not be empty")
	}
	if len(s) > MaxDeploymentHashLength {
		return fmt.Errorf("deployment hash `%s` is longer than %d characters", s, MaxDeploymentHashLength)
	}
	if strings.IndexFunc(s, func(r rune) bool { return !isDeploymentHashChar(r) }) >= 0 {
		return fmt.Errorf("deployment hash `%s` contains invalid characters", s)
	}
	if s == reservedDeploymentName {
		return fmt.Errorf("deployment hash `%s` is reserved", s)
	}
	return nil
}

func isDeploymentHashChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func (h DeploymentHash) String() string {
	return string(h)
}
