// Package log contains the default pydis logging facade. It is used by all packages to log
// their messages.
//
// The package doesn't force any specific logging package. Any logger implementing
// unilogger.LeveledLogger might be set with SetLogger. Loggers that additionally implement
// unilogger.DebugLeveledLogger gets the debug3 messages on their own level.
//
// The ModuleLogger allows to set the level separately for some pydis components,
// i.e. the store backends.
package log
