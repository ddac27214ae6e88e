// Package config loads kilua settings.
//
// Settings come from layered sources, each overriding the previous one:
//
//	1. built-in defaults            (Default)
//	2. ~/.kilua.toml                (user settings)
//	3. ./kilua.toml                 (project settings)
//	4. files given with --config    (must exist)
//	5. KILUA_* environment variables
//
// Every source is read into a map by package loader, the maps are merged,
// and the result is decoded into a Config. A missing optional file is not an
// error; a malformed one is.
//
// # Keys
//
//	tab_stop         = 8
//	message_timeout  = "5s"
//	log_file         = "~/.kilua.log"   # "" disables logging
//	log_level        = "info"
//	backend          = "ansi"           # or "tcell"
//	undo_limit       = 1000
//	scripts          = ["~/lua/extra.lua"]
//	syntax_file      = "~/.kilua-syntax.yaml"
//	watch            = true
//
// Sub-packages:
//
//   - loader: TOML and environment sources, DeepMerge
//   - watcher: fsnotify-based change notification for the open file and
//     init scripts
package config
