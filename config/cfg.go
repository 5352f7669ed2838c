package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	EditorConfig struct {
		Debounce     time.Duration `yaml:"debounce" validate:"gte=0"`
		PasteOffset  float64       `yaml:"paste_offset" validate:"gte=0"`
		NameTemplate string        `yaml:"name_template"`
	}

	ImagesConfig struct {
		CacheSize   int           `yaml:"cache_size" validate:"min=1"`
		LoadTimeout time.Duration `yaml:"load_timeout" validate:"gte=0"`
		MaxBytes    int64         `yaml:"max_bytes" validate:"gte=0"`
	}

	HolidaysConfig struct {
		DataFile string `yaml:"data_file" sanitize:"assure_file_access"`
		Country  string `yaml:"country" validate:"omitempty,len=2"`
		Language string `yaml:"language" validate:"omitempty,bcp47_language_tag"`
	}

	BuildConfig struct {
		StartDay     int     `yaml:"start_day" validate:"min=0,max=6"`
		Today        string  `yaml:"today" validate:"omitempty,datetime=2006-01-02"`
		PreviewScale float64 `yaml:"preview_scale" validate:"gt=0,lte=8"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Editor    EditorConfig   `yaml:"editor"`
		Images    ImagesConfig   `yaml:"images"`
		Holidays  HolidaysConfig `yaml:"holidays"`
		Build     BuildConfig    `yaml:"build"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	NameTemplateFieldName TemplateFieldName = "name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(NameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("unable to sanitize configuration before validation: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// TodayDate returns configured current date or local today when override
// is not set.
func (conf *BuildConfig) TodayDate() time.Time {
	if len(conf.Today) > 0 {
		if t, err := time.ParseInLocation(time.DateOnly, conf.Today, time.Local); err == nil {
			return t
		}
	}
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
