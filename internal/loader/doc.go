package loader

// Package loader reads desktop group files, validates them against the
// bundled JSON schema and builds model.Group values from them. It reports
// every failure as a *LoadError and leaves deciding what to do about it to
// the caller.
