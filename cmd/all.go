package cmd

import (
	_ "applauncher/cmd/manifest"
	_ "applauncher/cmd/root"
	_ "applauncher/cmd/run"
	_ "applauncher/cmd/server"
	_ "applauncher/cmd/update"
)
