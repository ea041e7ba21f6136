package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает имя уровня без учёта регистра
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

// Options задаёт, куда и с какими уровнями пишут новые логгеры.
// Пустой Dir отключает запись в файл.
type Options struct {
	Dir          string
	ConsoleLevel LogLevel
	FileLevel    LogLevel
	Console      io.Writer
}

// Logger пишет сообщения компонента в консоль и, если задано, в файл
type Logger struct {
	component       string
	consoleLogger   *log.Logger
	fileLogger      *log.Logger
	file            *os.File
	minConsoleLevel LogLevel
	minFileLevel    LogLevel
}

var (
	settings = Options{ConsoleLevel: INFO, FileLevel: DEBUG, Console: os.Stdout}

	// Логгер по умолчанию работает и до InitDefaultLogger, только в консоль
	defaultLogger = &Logger{
		consoleLogger:   log.New(os.Stdout, "", log.LstdFlags),
		minConsoleLevel: INFO,
		minFileLevel:    ERROR,
	}
)

// Configure меняет настройки для логгеров, создаваемых после вызова,
// и возвращает прежние
func Configure(o Options) Options {
	if o.Console == nil {
		o.Console = os.Stdout
	}
	prev := settings
	settings = o
	return prev
}

// NewLogger создает логгер компонента по текущим настройкам
func NewLogger(component string) (*Logger, error) {
	l := &Logger{
		component:       component,
		consoleLogger:   log.New(settings.Console, "", log.LstdFlags),
		minConsoleLevel: settings.ConsoleLevel,
		minFileLevel:    settings.FileLevel,
	}

	if settings.Dir == "" {
		return l, nil
	}

	if err := os.MkdirAll(settings.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", settings.Dir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(settings.Dir, fmt.Sprintf("%s_%s.log", component, timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l.file = file
	l.fileLogger = log.New(file, "", log.LstdFlags)
	return l, nil
}

// Close закрывает файл логгера, если он был открыт
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.fileLogger = nil
	return err
}

// Path возвращает путь к файлу логгера или пустую строку
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

func (l *Logger) logMessage(level LogLevel, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if l.component != "" {
		message = fmt.Sprintf("[%s] [%s] %s", level, l.component, message)
	} else {
		message = fmt.Sprintf("[%s] %s", level, message)
	}

	if l.fileLogger != nil && level >= l.minFileLevel {
		l.fileLogger.Println(message)
	}
	if l.consoleLogger != nil && level >= l.minConsoleLevel {
		l.consoleLogger.Println(message)
	}
}

// Trace логирует сообщение уровня TRACE
func (l *Logger) Trace(format string, args ...interface{}) { l.logMessage(TRACE, format, args...) }

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, args ...interface{}) { l.logMessage(DEBUG, format, args...) }

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, args ...interface{}) { l.logMessage(INFO, format, args...) }

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, args ...interface{}) { l.logMessage(WARN, format, args...) }

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, args ...interface{}) { l.logMessage(ERROR, format, args...) }

// InitDefaultLogger заменяет логгер по умолчанию логгером компонента
func InitDefaultLogger(component string) error {
	l, err := NewLogger(component)
	if err != nil {
		return err
	}
	defaultLogger = l
	return nil
}

// CloseDefaultLogger закрывает файл логгера по умолчанию
func CloseDefaultLogger() {
	if err := defaultLogger.Close(); err != nil {
		log.Printf("close default logger: %v", err)
	}
}

func Trace(format string, args ...interface{}) { defaultLogger.Trace(format, args...) }
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }
func Info(format string, args ...interface{})  { defaultLogger.Info(format, args...) }
func Warn(format string, args ...interface{})  { defaultLogger.Warn(format, args...) }
func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }
