// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/hiidhruv/n0va-desktop-extractor/internal/core/domain"
)

// UIMode define el modo de presentación en terminal.
type UIMode string

const (
	UIModePretty UIMode = "pretty" // banner, barra de progreso y paneles (default)
	UIModeRaw    UIMode = "raw"    // líneas logfmt/JSON, apto para pipelines
	UIModeQuiet  UIMode = "quiet"  // sin salida visual
)

type Config struct {
	// Core
	Core Core `yaml:"core"`

	// UI
	UI UI `yaml:"ui"`

	// Report
	Report Report `yaml:"report"`

	// Solo CLI, no persisten en YAML
	ConfigPath   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
}

type Core struct {
	// CachePath directorio de caché de N0va Desktop a escanear
	CachePath string `yaml:"cache_path"`

	// OutputDir directorio destino de las imágenes extraídas
	OutputDir string `yaml:"output_dir"`

	// AllowDuplicates desactiva la deduplicación por digest
	AllowDuplicates bool `yaml:"allow_duplicates"`

	// MinSizeMB umbral mínimo en MB para descartar thumbnails (0 = sin filtro)
	MinSizeMB float64 `yaml:"min_size_mb"`

	// IncludeTemp incluye archivos .ndf_tmp no vacíos en el escaneo
	IncludeTemp bool `yaml:"include_temp"`

	// Verbose habilita logging de nivel debug
	Verbose bool `yaml:"verbose"`
}

type UI struct {
	// Mode modo de presentación: pretty, raw o quiet
	Mode UIMode `yaml:"mode"`

	// LogFormat formato del modo raw: text o json
	LogFormat string `yaml:"log_format"`
}

type Report struct {
	// Disabled desactiva la escritura del reporte JSON en el output dir
	Disabled bool `yaml:"disabled"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Core: Core{
			CachePath:       domain.DefaultCachePath(),
			OutputDir:       domain.DefaultOutputPath(),
			AllowDuplicates: false,
			MinSizeMB:       1.0,
			IncludeTemp:     true,
			Verbose:         false,
		},
		UI: UI{
			Mode:      UIModePretty,
			LogFormat: "text",
		},
		Report: Report{
			Disabled: false,
		},
	}
}

// Load inicializa la configuración por capas:
// defaults -> archivo YAML -> ENV -> FLAGS (los flags tienen prioridad).
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	// El path del archivo de config se necesita antes de parsear el resto
	cfg.ConfigPath = configPathFromArgs(args)

	if err := loadFromFile(&cfg); err != nil {
		return cfg, err
	}

	loadFromEnv(&cfg)

	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

// configPathFromArgs localiza --config sin parsear el resto de flags.
func configPathFromArgs(args []string) string {
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(a, "--config=") {
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return getenv("N0VAX_CONFIG", "")
}

// loadFromFile aplica un archivo YAML opcional sobre los defaults.
// Un path explícito que no existe es un error; sin path no pasa nada.
func loadFromFile(cfg *Config) error {
	if cfg.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", cfg.ConfigPath, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", cfg.ConfigPath, err)
	}
	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv("N0VAX_CACHE", ""); v != "" {
		cfg.Core.CachePath = v
	}
	if v := getenv("N0VAX_OUT", ""); v != "" {
		cfg.Core.OutputDir = v
	}
	if v := getenv("N0VAX_ALLOW_DUPLICATES", ""); v != "" {
		cfg.Core.AllowDuplicates = parseBool(v)
	}
	if v := getenv("N0VAX_MIN_SIZE_MB", ""); v != "" {
		cfg.Core.MinSizeMB = parseFloat(v, cfg.Core.MinSizeMB)
	}
	if v := getenv("N0VAX_INCLUDE_TEMP", ""); v != "" {
		cfg.Core.IncludeTemp = parseBool(v)
	}
	if v := getenv("N0VAX_VERBOSE", ""); v != "" {
		cfg.Core.Verbose = parseBool(v)
	}
	if v := getenv("N0VAX_UI", ""); v != "" {
		cfg.UI.Mode = UIMode(strings.ToLower(v))
	}
	if v := getenv("N0VAX_LOG_FORMAT", ""); v != "" {
		cfg.UI.LogFormat = strings.ToLower(v)
	}
	if v := getenv("N0VAX_NO_REPORT", ""); v != "" {
		cfg.Report.Disabled = parseBool(v)
	}
}

// loadFromFlags parsea flags de CLI sobre la configuración acumulada.
// Acepta además los dos posicionales clásicos: [cache_path [output_path]].
func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("n0vax", pflag.ContinueOnError)

	fs.StringVar(&cfg.Core.CachePath, "cache", cfg.Core.CachePath,
		"Path to the N0va Desktop cache directory")
	fs.StringVar(&cfg.Core.OutputDir, "out", cfg.Core.OutputDir,
		"Output directory for extracted wallpapers")
	fs.BoolVar(&cfg.Core.AllowDuplicates, "allow-duplicates", cfg.Core.AllowDuplicates,
		"Copy files even when identical content was already extracted")
	fs.Float64Var(&cfg.Core.MinSizeMB, "min-size", cfg.Core.MinSizeMB,
		"Minimum file size in MB, smaller files are skipped as thumbnails (0 disables)")
	fs.BoolVar(&cfg.Core.IncludeTemp, "include-temp", cfg.Core.IncludeTemp,
		"Also scan non-empty .ndf_tmp files (incomplete downloads)")
	fs.BoolVarP(&cfg.Core.Verbose, "verbose", "v", cfg.Core.Verbose,
		"Enable verbose (debug) logging")

	uiMode := string(cfg.UI.Mode)
	fs.StringVar(&uiMode, "ui", uiMode,
		"UI mode: pretty, raw or quiet")
	fs.StringVar(&cfg.UI.LogFormat, "log-format", cfg.UI.LogFormat,
		"Raw UI log format: text or json")

	fs.BoolVar(&cfg.Report.Disabled, "no-report", cfg.Report.Disabled,
		"Do not write the JSON run report into the output directory")

	var configPath string
	fs.StringVar(&configPath, "config", cfg.ConfigPath,
		"Path to a YAML configuration file")
	fs.BoolVar(&cfg.PrintVersion, "version", false,
		"Print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.UI.Mode = UIMode(strings.ToLower(uiMode))

	// Posicionales al estilo del extractor original
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Core.CachePath = rest[0]
		if len(rest) > 1 {
			cfg.Core.OutputDir = rest[1]
		}
	}

	return nil
}

func normalize(c *Config) {
	c.Core.CachePath = strings.TrimSpace(c.Core.CachePath)
	c.Core.OutputDir = strings.TrimSpace(c.Core.OutputDir)
	if c.Core.OutputDir == "" {
		c.Core.OutputDir = domain.DefaultOutputPath()
	}
	if c.Core.MinSizeMB < 0 {
		c.Core.MinSizeMB = 0
	}

	switch c.UI.Mode {
	case UIModePretty, UIModeRaw, UIModeQuiet:
	default:
		c.UI.Mode = UIModePretty
	}

	switch strings.ToLower(c.UI.LogFormat) {
	case "json":
		c.UI.LogFormat = "json"
	default:
		c.UI.LogFormat = "text"
	}
}

// MinSizeBytes retorna el umbral de tamaño en bytes.
func (c Config) MinSizeBytes() int64 {
	return int64(c.Core.MinSizeMB * 1024 * 1024)
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}
