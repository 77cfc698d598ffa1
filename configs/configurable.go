package configs

// Configurable is implemented by provided values that may be set from config files.
// ConfigExpr names the value's path in the config.
type Configurable interface {
	ConfigExpr() string
}
