package runtime

import "embed"

// CensoredFS embeds the per-language blacklists consumed by the loader.
//
//go:embed censored/*
var CensoredFS embed.FS
