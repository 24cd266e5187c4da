package log

import (
	"github.com/neuronlabs/uni-logger"
)

var modules = []*ModuleLogger{}

// ModuleLogger is the logger used for getting the specific modules.
type ModuleLogger struct {
	Name           string
	logger         unilogger.LeveledLogger
	isDebugLeveled bool
	isLevelSetter  bool

	levelSetter  unilogger.LevelSetter
	debugLeveled unilogger.DebugLeveledLogger

	currentLevel unilogger.Level
}

// NewModuleLogger creates new module logger for given 'name' of the module.
// If the default logger is a SubLogger the module gets its own sub logger,
// otherwise it wraps the default logger.
func NewModuleLogger(name string) *ModuleLogger {
	mLogger := &ModuleLogger{Name: name, currentLevel: currentLevel}
	modules = append(modules, mLogger)

	if sub, ok := logger.(unilogger.SubLogger); ok {
		mLogger.logger = sub.SubLogger()
		mLogger.initializeLogger()
	}
	return mLogger
}

func (m *ModuleLogger) initializeLogger() {
	if m.logger == nil {
		return
	}
	m.debugLeveled, m.isDebugLeveled = m.logger.(unilogger.DebugLeveledLogger)
	if lGetter, ok := m.logger.(unilogger.LevelGetter); ok {
		m.currentLevel = lGetter.GetLevel()
	} else {
		m.currentLevel = currentLevel
	}
	m.levelSetter, m.isLevelSetter = m.logger.(unilogger.LevelSetter)
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	return m.currentLevel
}

// SetLevel sets the moduleLogger level.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	m.currentLevel = level
	if m.isLevelSetter {
		m.levelSetter.SetLevel(level)
	}
}

// Debug3f writes the formated debug3 log.
func (m *ModuleLogger) Debug3f(format string, args ...interface{}) {
	if !m.isEnabled(LDEBUG3) {
		return
	}
	format = m.name() + " " + format
	if m.logger == nil {
		Debug3f(format, args...)
		return
	}
	if !m.isDebugLeveled {
		m.logger.Debugf(format, args...)
		return
	}
	m.debugLeveled.Debug3f(format, args...)
}

// Debugf writes the formated debug log.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	if !m.isEnabled(LDEBUG) {
		return
	}
	format = m.name() + " " + format
	if m.logger != nil {
		m.logger.Debugf(format, args...)
	} else {
		Debugf(format, args...)
	}
}

// Infof writes the formated info log.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	if !m.isEnabled(LINFO) {
		return
	}
	format = m.name() + " " + format
	if m.logger != nil {
		m.logger.Infof(format, args...)
	} else {
		Infof(format, args...)
	}
}

// Warningf writes the formated warning log.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	if !m.isEnabled(LWARNING) {
		return
	}
	format = m.name() + " " + format
	if m.logger != nil {
		m.logger.Warningf(format, args...)
	} else {
		Warningf(format, args...)
	}
}

// Errorf writes the formated error log.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	if !m.isEnabled(LERROR) {
		return
	}
	format = m.name() + " " + format
	if m.logger != nil {
		m.logger.Errorf(format, args...)
	} else {
		Errorf(format, args...)
	}
}

// isEnabled filters the levels for the loggers that can't filter them on their own.
func (m *ModuleLogger) isEnabled(level unilogger.Level) bool {
	if m.isLevelSetter {
		return true
	}
	return m.currentLevel == LUNKNOWN || m.currentLevel <= level
}

func (m *ModuleLogger) name() string {
	return "[" + m.Name + "]"
}
