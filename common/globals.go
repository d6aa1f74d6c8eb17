package common

// Version is the current minigo toolchain version.
const Version = "0.1.0"

// ModuleFileName is the name of the file identifying a minigo module.
const ModuleFileName = "minigo.toml"
