package model

import "time"

// Config is the full runtime configuration, resolved from flags, env vars
// (SLOWKO_*) and ~/.slowko/config.yaml
type Config struct {
	HTTP    HTTPConfig    `json:"http" yaml:"http"`
	Sources SourcesConfig `json:"sources" yaml:"sources"`
	Rate    RateConfig    `json:"rate" yaml:"rate"`
	Search  SearchConfig  `json:"search" yaml:"search"`
	Cache   CacheConfig   `json:"cache" yaml:"cache"`
	Web     WebConfig     `json:"web" yaml:"web"`
	LLM     LLMConfig     `json:"llm" yaml:"llm"`
	Output  OutputConfig  `json:"output" yaml:"output"`
}

// HTTPConfig controls the Wiktionary API client
type HTTPConfig struct {
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent    string        `json:"user_agent" yaml:"user_agent"`
	MaxBodyBytes int64         `json:"max_body_bytes" yaml:"max_body_bytes"`
	InsecureTLS  bool          `json:"insecure_tls" yaml:"insecure_tls"`
	HTTPProxy    string        `json:"http_proxy,omitempty" yaml:"http_proxy"`
	HTTPSProxy   string        `json:"https_proxy,omitempty" yaml:"https_proxy"`
	CheckRobots  bool          `json:"check_robots" yaml:"check_robots"`
}

// SourcesConfig holds the MediaWiki API endpoints per edition
type SourcesConfig struct {
	PolishAPI  string `json:"polish_api" yaml:"polish_api"`
	EnglishAPI string `json:"english_api" yaml:"english_api"`
}

// RateConfig controls per-host request rate limiting
type RateConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// SearchConfig controls the spelling-fallback orchestration
type SearchConfig struct {
	MaxVariants int  `json:"max_variants" yaml:"max_variants"`
	FollowLemma bool `json:"follow_lemma" yaml:"follow_lemma"`
}

// CacheConfig controls the web layer's result cache
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// WebConfig controls the built-in web front-end
type WebConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LLMConfig controls the optional example-sentence generator.
// It never affects extraction results.
type LLMConfig struct {
	Provider  string `json:"provider,omitempty" yaml:"provider"`
	Model     string `json:"model,omitempty" yaml:"model"`
	APIKey    string `json:"-" yaml:"-"`
	BaseURL   string `json:"base_url,omitempty" yaml:"base_url"`
	MaxTokens int    `json:"max_tokens" yaml:"max_tokens"`
	Timeout   int    `json:"timeout" yaml:"timeout"` // seconds
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Verbose bool `json:"verbose" yaml:"verbose"`
	Color   bool `json:"color" yaml:"color"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "slowko/1.0 (+https://github.com/slowko/slowko)",
			MaxBodyBytes: 4_000_000,
			CheckRobots:  true,
		},
		Sources: SourcesConfig{
			PolishAPI:  "https://pl.wiktionary.org/w/api.php",
			EnglishAPI: "https://en.wiktionary.org/w/api.php",
		},
		Rate: RateConfig{
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Search: SearchConfig{
			MaxVariants: 20,
			FollowLemma: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Web: WebConfig{
			Addr: ":8080",
		},
		LLM: LLMConfig{
			MaxTokens: 500,
			Timeout:   30,
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}
