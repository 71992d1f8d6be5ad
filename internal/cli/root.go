package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slowko/slowko/internal/model"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	timeout   time.Duration
	userAgent string
	noRobots  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "slowko",
	Short: "Słówko - słownik języka polskiego w terminalu",
	Long: `Słówko looks Polish words up in two Wiktionary editions at once:
pl.wiktionary.org and the Polish sections of en.wiktionary.org.

For each word it extracts definitions, grammatical properties, inflection
tables, pronunciation and etymology, and merges both editions into one
answer. Misspelled words without Polish diacritics are retried with
likely diacritic variants (zolw -> żółw), and inflected forms are
followed to their base headword (domy -> dom).`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("slowko v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.slowko/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP timeout per request")
	rootCmd.PersistentFlags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	rootCmd.PersistentFlags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.slowko")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match SLOWKO_*
	viper.SetEnvPrefix("SLOWKO")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig resolves the runtime configuration: defaults, then the
// config file / SLOWKO_* environment, then explicit flags
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	applyString := func(key string, dst *string) {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
	if v := viper.GetDuration("http.timeout"); v > 0 {
		cfg.HTTP.Timeout = v
	}
	applyString("http.user_agent", &cfg.HTTP.UserAgent)
	if viper.IsSet("http.check_robots") {
		cfg.HTTP.CheckRobots = viper.GetBool("http.check_robots")
	}
	applyString("http.http_proxy", &cfg.HTTP.HTTPProxy)
	applyString("http.https_proxy", &cfg.HTTP.HTTPSProxy)
	applyString("sources.polish_api", &cfg.Sources.PolishAPI)
	applyString("sources.english_api", &cfg.Sources.EnglishAPI)
	if v := viper.GetFloat64("rate.requests_per_second"); v > 0 {
		cfg.Rate.RequestsPerSecond = v
	}
	if v := viper.GetInt("rate.burst"); v > 0 {
		cfg.Rate.Burst = v
	}
	if v := viper.GetInt("search.max_variants"); v > 0 {
		cfg.Search.MaxVariants = v
	}
	if viper.IsSet("search.follow_lemma") {
		cfg.Search.FollowLemma = viper.GetBool("search.follow_lemma")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if v := viper.GetDuration("cache.ttl"); v > 0 {
		cfg.Cache.TTL = v
	}
	applyString("web.addr", &cfg.Web.Addr)
	applyString("llm.provider", &cfg.LLM.Provider)
	applyString("llm.model", &cfg.LLM.Model)
	applyString("llm.base_url", &cfg.LLM.BaseURL)

	// Flags win over everything
	if rootCmd.PersistentFlags().Changed("timeout") {
		cfg.HTTP.Timeout = timeout
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if noRobots {
		cfg.HTTP.CheckRobots = false
	}
	cfg.Output.Verbose = verbose
	cfg.Output.Color = !noColor

	return cfg
}
