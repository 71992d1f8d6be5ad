package cli

import (
	"github.com/spf13/cobra"

	"github.com/slowko/slowko/internal/pipeline"
	"github.com/slowko/slowko/internal/web"
	"github.com/slowko/slowko/internal/wiki"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web front-end",
	Long: `Serve starts an HTTP server with a search page, per-word result
pages under /w/<słowo> and a JSON API at /api/lookup?word=<słowo>.
Rendered results are cached in memory for cache.ttl.

Example:
  slowko serve
  slowko serve --addr :9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if serveAddr != "" {
		cfg.Web.Addr = serveAddr
	}

	p := pipeline.New(cfg, wiki.New(cfg))
	return web.NewServer(cfg, p).ListenAndServe()
}
