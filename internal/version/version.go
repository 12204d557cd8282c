// Package version holds the release version stamped into builds.
package version

// Version is the semantic version of this build.
const Version = "0.1.0"
