package logging

import (
	"fmt"
	"sync"
)

// LoggerManager раздаёт логгеры компонентов (batch, terrain, ...) и хранит
// переопределения уровней, заданные в logging.components конфигурации.
// Переопределение применяется и к уже созданному логгеру, и к тем, что
// будут созданы позже.
type LoggerManager struct {
	mu      sync.Mutex
	loggers map[string]*Logger
	levels  map[string]LogLevel
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

func newLoggerManager() *LoggerManager {
	return &LoggerManager{
		loggers: make(map[string]*Logger),
		levels:  make(map[string]LogLevel),
	}
}

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = newLoggerManager()
	})
	return globalManager
}

// GetLogger возвращает логгер компонента, создавая его при первом обращении
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if logger, ok := lm.loggers[component]; ok {
		return logger, nil
	}

	logger, err := NewLogger(component)
	if err != nil {
		return nil, fmt.Errorf("create logger for %s: %w", component, err)
	}
	if level, ok := lm.levels[component]; ok {
		logger.minConsoleLevel = level
		logger.minFileLevel = level
	}

	lm.loggers[component] = logger
	return logger, nil
}

// MustGetLogger возвращает логгер или, если файл открыть не удалось,
// логгер только в консоль
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	logger, err := lm.GetLogger(component)
	if err != nil {
		defaultLogger.Warn("%v, logging %s to console only", err, component)
		level := INFO
		lm.mu.Lock()
		if l, ok := lm.levels[component]; ok {
			level = l
		}
		lm.mu.Unlock()
		return &Logger{
			component:       component,
			consoleLogger:   defaultLogger.consoleLogger,
			minConsoleLevel: level,
			minFileLevel:    ERROR,
		}
	}
	return logger
}

// SetLogLevel задаёт минимальный уровень консоли и файла для компонента
func (lm *LoggerManager) SetLogLevel(component string, level LogLevel) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.levels[component] = level
	if logger, ok := lm.loggers[component]; ok {
		logger.minConsoleLevel = level
		logger.minFileLevel = level
	}
}

// SetLogLevels применяет набор переопределений, например из конфигурации
func (lm *LoggerManager) SetLogLevels(levels map[string]LogLevel) {
	for component, level := range levels {
		lm.SetLogLevel(component, level)
	}
}

// CloseAll закрывает файлы всех логгеров и забывает их.
// Переопределения уровней сохраняются.
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var lastErr error
	for component, logger := range lm.loggers {
		if err := logger.Close(); err != nil {
			lastErr = fmt.Errorf("close logger for %s: %w", component, err)
		}
	}

	lm.loggers = make(map[string]*Logger)
	return lastErr
}

// GetComponentLogger - короткая форма GetLoggerManager().MustGetLogger
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}

func GetBatchLogger() *Logger {
	return GetComponentLogger("batch")
}

func GetTerrainLogger() *Logger {
	return GetComponentLogger("terrain")
}
