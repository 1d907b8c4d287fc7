// Package update checks GitHub releases for newer calc builds and replaces
// the running binary.
package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

// Repository is the GitHub owner/name that publishes calc releases.
const Repository = "pengelbrecht/boundcalc"

// ErrDevBuild is returned when the running binary has no release version.
var ErrDevBuild = errors.New("development build cannot be upgraded")

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	InstallBinary InstallMethod = iota
	InstallHomebrew
)

// Release describes the newest published version.
type Release struct {
	Version   string
	AssetURL  string
	AssetName string
}

// DetectInstallMethod inspects the executable path to tell Homebrew installs
// apart from standalone binaries.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallBinary
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return installMethodFromPath(exe)
}

func installMethodFromPath(path string) InstallMethod {
	p := filepath.ToSlash(path)
	if strings.Contains(p, "/Cellar/") || strings.Contains(p, "/homebrew/") || strings.Contains(p, "/linuxbrew/") {
		return InstallHomebrew
	}
	return InstallBinary
}

// CheckForUpdate returns the latest release and whether it is newer than current.
func CheckForUpdate(ctx context.Context, current string) (*Release, bool, error) {
	if err := checkVersion(current); err != nil {
		return nil, false, err
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	release := &Release{
		Version:   latest.Version(),
		AssetURL:  latest.AssetURL,
		AssetName: latest.AssetName,
	}
	return release, !latest.LessOrEqual(current), nil
}

// Update replaces the running executable with the latest release.
func Update(ctx context.Context, current string) error {
	release, hasUpdate, err := CheckForUpdate(ctx, current)
	if err != nil {
		return err
	}
	if !hasUpdate {
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, release.AssetURL, release.AssetName, exe); err != nil {
		return fmt.Errorf("install %s: %w", release.Version, err)
	}
	return nil
}

func checkVersion(current string) error {
	v := strings.TrimSpace(current)
	if v == "" || v == "dev" {
		return ErrDevBuild
	}
	return nil
}
