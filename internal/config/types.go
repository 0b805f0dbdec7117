package config

import "time"

// Config is the quizsheet configuration file.
type Config struct {
	Version  int            `yaml:"version"`
	Endpoint EndpointConfig `yaml:"endpoint"`
	Export   ExportConfig   `yaml:"export"`
	UI       UIConfig       `yaml:"ui"`
}

// EndpointConfig locates the PDF-to-MCQ generation service.
type EndpointConfig struct {
	BaseURL    string `yaml:"base_url"`
	UploadPath string `yaml:"upload_path"`
	Timeout    string `yaml:"timeout"`
}

// ExportConfig controls where the answer sheet is written.
type ExportConfig struct {
	Dir      string `yaml:"dir"`
	Filename string `yaml:"filename"`
}

// UIConfig selects the terminal front-end.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// RequestTimeout returns the parsed endpoint timeout. Zero disables the client timeout.
// Call after Validate; unparsable values yield zero.
func (c Config) RequestTimeout() time.Duration {
	timeout, err := time.ParseDuration(c.Endpoint.Timeout)
	if err != nil {
		return 0
	}
	return timeout
}
