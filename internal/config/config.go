package config

type Config interface {
	Manifest() string
	SensitiveNames() []string
	StrictText() bool
	Color() ColorMode

	LogLevel() string
	LogFormat() string
}

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (c ColorMode) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Manifest() string         { return c.manifest }
func (c *config) SensitiveNames() []string { return c.sensitiveNames }
func (c *config) StrictText() bool         { return c.strictText }
func (c *config) Color() ColorMode         { return c.color }
func (c *config) LogLevel() string         { return c.logLevel }
func (c *config) LogFormat() string        { return c.logFormat }
