// Package version describes the build of the running binary.
//
// Version and SourcePath are injected at build time, for example:
//
//	go build -ldflags "-X github.com/bnb-chain/subgraph-store/version.Version=1.2.0 \
//	  -X github.com/bnb-chain/subgraph-store/version.SourcePath=$(pwd)"
//
// SourcePath is required when building with -trimpath.
package version

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
)

// These variables are set via -ldflags at build time.
var (
	// Version is the semantic version of the package
	Version = "0.1.0"

	// SourcePath is the directory the binary was built from
	SourcePath = ""
)

const (
	ChannelStable = "stable"
	ChannelBeta   = "beta"
	ChannelDev    = "dev"
)

// Build is the fingerprint of a build: source control state, package version and compiler
type Build struct {
	GitCommitHash      string
	GitRepositoryDirty bool
	PackageVersion     string
	Major              int32
	Minor              int32
	Patch              int32
	PreRelease         string
	CompilerVersion    string
	CompilerHost       string
	CompilerChannel    string
}

func (b *Build) String() string {
	dirty := ""
	if b.GitRepositoryDirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s %s %s)", b.PackageVersion, b.GitCommitHash, dirty,
		b.CompilerVersion, b.CompilerChannel, b.CompilerHost)
}

// Current detects the build of the running binary
func Current() (*Build, error) {
	dir, err := SourceDir()
	if err != nil {
		return nil, err
	}
	return Detect(dir, Version)
}

// Detect fingerprints the build of packageVersion from the git repository enclosing sourceDir
func Detect(sourceDir, packageVersion string) (*Build, error) {
	commit, dirty, err := GitState(sourceDir)
	if err != nil {
		return nil, err
	}
	major, minor, patch, pre, err := ParseVersion(packageVersion)
	if err != nil {
		return nil, err
	}
	compilerVersion, host, channel, err := Compiler()
	if err != nil {
		return nil, err
	}
	return &Build{
		GitCommitHash:      commit,
		GitRepositoryDirty: dirty,
		PackageVersion:     packageVersion,
		Major:              major,
		Minor:              minor,
		Patch:              patch,
		PreRelease:         pre,
		CompilerVersion:    compilerVersion,
		CompilerHost:       host,
		CompilerChannel:    channel,
	}, nil
}

// SourceDir returns SourcePath, or the directory this file was compiled from
func SourceDir() (string, error) {
	if SourcePath != "" {
		return SourcePath, nil
	}
	_, file, _, ok := runtime.Caller(0)
	if !ok || !filepath.IsAbs(file) {
		return "", errors.New("could not determine the source directory, set version.SourcePath at build time")
	}
	return filepath.Dir(file), nil
}

// ParseVersion splits a semantic version into its numeric parts and pre-release tag
func ParseVersion(v string) (major, minor, patch int32, pre string, err error) {
	sv := "v" + strings.TrimPrefix(v, "v")
	if !semver.IsValid(sv) {
		return 0, 0, 0, "", errors.Errorf("invalid package version `%s`", v)
	}
	pre = semver.Prerelease(sv)
	core := strings.TrimSuffix(semver.Canonical(sv), pre)
	parts := strings.Split(strings.TrimPrefix(core, "v"), ".")
	if len(parts) != 3 {
		return 0, 0, 0, "", errors.Errorf("invalid package version `%s`", v)
	}
	nums := make([]int32, 3)
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return 0, 0, 0, "", errors.Wrapf(err, "invalid package version `%s`", v)
		}
		nums[i] = int32(n)
	}
	return nums[0], nums[1], nums[2], strings.TrimPrefix(pre, "-"), nil
}

// Compiler returns the version, host platform and release channel of the Go toolchain
func Compiler() (goVersion, host, channel string, err error) {
	goVersion = runtime.Version()
	if goVersion == "" {
		return "", "", "", errors.New("could not determine the compiler version")
	}
	return goVersion, runtime.GOOS + "/" + runtime.GOARCH, CompilerChannel(goVersion), nil
}

// CompilerChannel derives the release channel from a Go version string such as go1.21.5,
// go1.22rc1 or devel go1.23-abcdef
func CompilerChannel(goVersion string) string {
	switch {
	case strings.HasPrefix(goVersion, "devel"):
		return ChannelDev
	case strings.Contains(goVersion, "rc"), strings.Contains(goVersion, "beta"):
		return ChannelBeta
	default:
		return ChannelStable
	}
}
