package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/annel0/enhance/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации vecctl и демо-программ.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Math    MathConfig    `yaml:"math"`
	Batch   BatchConfig   `yaml:"batch"`
	Terrain TerrainConfig `yaml:"terrain"`
}

type LoggingConfig struct {
	Level        string `yaml:"level"`
	ConsoleLevel string `yaml:"console_level"`
	Dir          string `yaml:"dir"`

	// Components переопределяет уровень отдельных компонентов, например
	// {batch: warn, terrain: debug}
	Components map[string]string `yaml:"components"`
}

type MathConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

type BatchConfig struct {
	StopOnError bool   `yaml:"stop_on_error"`
	MetricsFile string `yaml:"metrics_file"`
}

type TerrainConfig struct {
	Seed    int64   `yaml:"seed"`
	Step    float64 `yaml:"step"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
}

// Default возвращает конфигурацию, используемую без файла
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "debug", ConsoleLevel: "info"},
		Math:    MathConfig{Tolerance: 1e-5},
		Terrain: TerrainConfig{Seed: 12345, Step: 1, Alpha: 2, Beta: 2, Octaves: 3},
	}
}

// FileLevel возвращает уровень для файла логов: config -> ENHANCE_LOG_LEVEL -> debug
func (l *LoggingConfig) FileLevel() (logging.LogLevel, error) {
	return logging.ParseLevel(getStringWithEnvFallback(l.Level, "ENHANCE_LOG_LEVEL", "debug"))
}

// Console возвращает уровень для консоли: config -> ENHANCE_CONSOLE_LEVEL -> info
func (l *LoggingConfig) Console() (logging.LogLevel, error) {
	return logging.ParseLevel(getStringWithEnvFallback(l.ConsoleLevel, "ENHANCE_CONSOLE_LEVEL", "info"))
}

// LogDir возвращает каталог логов: config -> ENHANCE_LOG_DIR -> без файла
func (l *LoggingConfig) LogDir() string {
	return getStringWithEnvFallback(l.Dir, "ENHANCE_LOG_DIR", "")
}

// Options собирает настройки для logging.Configure
func (l *LoggingConfig) Options() (logging.Options, error) {
	fileLevel, err := l.FileLevel()
	if err != nil {
		return logging.Options{}, err
	}
	consoleLevel, err := l.Console()
	if err != nil {
		return logging.Options{}, err
	}
	return logging.Options{Dir: l.LogDir(), ConsoleLevel: consoleLevel, FileLevel: fileLevel}, nil
}

// ComponentLevels разбирает переопределения уровней по компонентам
func (l *LoggingConfig) ComponentLevels() (map[string]logging.LogLevel, error) {
	levels := make(map[string]logging.LogLevel, len(l.Components))
	for component, name := range l.Components {
		level, err := logging.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("logging.components.%s: %w", component, err)
		}
		levels[component] = level
	}
	return levels, nil
}

// Apply настраивает пакет logging: общие уровни и каталог, переопределения
// по компонентам и логгер по умолчанию с именем component
func (l *LoggingConfig) Apply(component string) error {
	opts, err := l.Options()
	if err != nil {
		return err
	}
	levels, err := l.ComponentLevels()
	if err != nil {
		return err
	}
	logging.Configure(opts)
	logging.GetLoggerManager().SetLogLevels(levels)
	return logging.InitDefaultLogger(component)
}

// GetTolerance возвращает допуск сравнения: config -> ENHANCE_TOLERANCE -> 1e-5
func (m *MathConfig) GetTolerance() float64 {
	if m.Tolerance > 0 {
		return m.Tolerance
	}
	if envVal := os.Getenv("ENHANCE_TOLERANCE"); envVal != "" {
		if tol, err := strconv.ParseFloat(envVal, 64); err == nil && tol > 0 {
			return tol
		}
	}
	return 1e-5
}

// getStringWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getStringWithEnvFallback(configVal, envVar, defaultVal string) string {
	if configVal != "" {
		return configVal
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultVal
}

// Load читает YAML файл конфигурации поверх Default.
// Если path == "", пытается прочитать из ENV ENHANCE_CONFIG, иначе возвращает Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("ENHANCE_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
