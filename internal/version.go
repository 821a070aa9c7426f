package internal

// Version is set at build time with -ldflags "-X codeberg.org/snonux/deeplquery/internal.Version=..."
var Version = "0.1.0"
