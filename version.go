package fsacheck

// Version is the release of the validator, overridden at build time with
// -ldflags "-X github.com/aretw0/fsacheck.Version=...".
var Version = "0.3.0"
