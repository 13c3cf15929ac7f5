package types

// Config holds the location of the shared data document.
type Config struct {
	DataPath string `json:"data_path" yaml:"data_path"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataPath == "" {
		return ErrDataPathEmpty
	}
	return nil
}
