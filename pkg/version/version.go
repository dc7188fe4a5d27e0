package version

// Version is set at build time with -ldflags "-X github.com/cloudposse/nx-knip/pkg/version.Version=...".
var Version = "0.0.0-dev"
