package wrappers

import (
	"runtime"
	"strings"
)

// Content renders a wrapper that runs launcher with PYLAUNCH_ROOT set to root and all arguments forwarded.
func Content(goos string, launcher string, root string) []byte {
	if goos == "windows" {
		return []byte("@echo off\r\n" +
			"set \"PYLAUNCH_ROOT=" + root + "\"\r\n" +
			"\"" + launcher + "\" %*\r\n")
	}
	return []byte("#!/bin/sh\n" +
		"PYLAUNCH_ROOT=" + shellQuote(root) + " exec " + shellQuote(launcher) + " \"$@\"\n")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// WrapperPath adds the .cmd extension Windows needs to run a batch file by name.
func WrapperPath(path string) string {
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(path), ".cmd") {
		return path + ".cmd"
	}
	return path
}
