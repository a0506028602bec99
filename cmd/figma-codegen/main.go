package main

import (
	"context"
	"fmt"
	"os"

	figmacodegen "github.com/hellenic-development/figma-codegen"
	"github.com/hellenic-development/figma-codegen/pkg/config"
	"github.com/hellenic-development/figma-codegen/pkg/emitter"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/imager"
	"github.com/hellenic-development/figma-codegen/pkg/packager"
	"github.com/hellenic-development/figma-codegen/pkg/server"
	"github.com/hellenic-development/figma-codegen/pkg/zaplog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = figma.Version

var (
	figmaURL      string
	accessToken   string
	inputFile     string
	outputFormat  string
	outputFile    string
	componentName string
	includeImages bool
	minify        bool
	noStyles      bool
	extractText   bool

	configFile string
	serveAddr  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-codegen",
		Short: "Generate UI source code from Figma design documents",
		Long:  "A tool to convert Figma design documents into runnable HTML, React, Vue, or Moneyview projects, fetched via the Figma API or read from a local JSON export",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL (requires --token)")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Local design document JSON file (alternative to --url)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "html", "Output format: html, react, vue, moneyview")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "generated.zip", "Output archive file")
	rootCmd.Flags().StringVar(&componentName, "component-name", "", "Name for the generated root component")
	rootCmd.Flags().BoolVar(&includeImages, "include-images", false, "Fetch image fills via the Figma API and embed them in the archive")
	rootCmd.Flags().BoolVar(&minify, "minify", false, "Minify the generated markup")
	rootCmd.Flags().BoolVar(&noStyles, "no-styles", false, "Skip the generated stylesheet")
	rootCmd.Flags().BoolVar(&extractText, "extract-text", false, "Print the text content of the design instead of writing an archive")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the conversion HTTP service",
		Run:   serve,
	}
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "TOML configuration file (optional)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides configuration)")

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range emitter.Formats() {
				fmt.Println(f)
			}
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-codegen version %s\n", version)
		},
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Println("\n🎨 Figma Code Generator")
	cyan.Println("========================")
	cyan.Println()

	if inputFile == "" && (figmaURL == "" || accessToken == "") {
		red.Println("Error: provide either --input or both --url and --token")
		cmd.Usage()
		os.Exit(1)
	}

	ctx := context.Background()

	var (
		doc     *figma.Document
		client  *figma.Client
		fileKey string
	)
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		doc, err = figma.ParseDocument(data)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		var err error
		fileKey, err = figma.ExtractFileKey(figmaURL)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		nodeIDs, err := figma.ExtractNodeIDs(figmaURL)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		client = figma.NewClient(accessToken)
		if len(nodeIDs) > 0 {
			yellow.Printf("Fetching %d node(s) from file %s...\n", len(nodeIDs), fileKey)
			resp, err := client.GetFileNodes(ctx, fileKey, nodeIDs)
			if err != nil {
				red.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			doc = resp.AsDocument()
		} else {
			yellow.Printf("Fetching file %s...\n", fileKey)
			resp, err := client.GetFile(ctx, fileKey)
			if err != nil {
				red.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			doc = resp.AsDocument()
		}
	}

	result, err := figmacodegen.Generate(doc, figmacodegen.Options{
		Format:        emitter.Format(outputFormat),
		IncludeStyles: !noStyles,
		Minify:        minify,
		IncludeImages: includeImages,
		ComponentName: componentName,
		Pipeline:      config.DefaultPipeline(),
		Logger:        &cliLogger{},
	})
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if extractText {
		cyan.Println("\n📝 Extracted Text:")
		for i, text := range figmacodegen.ExtractAllText(result.Screens) {
			fmt.Printf("  %d. %s\n", i+1, text)
		}
		return
	}

	archive := result.Archive
	if includeImages && len(result.Assets) > 0 {
		if client == nil {
			yellow.Println("⚠ --include-images needs --url and --token to reach the Figma API; skipping image fetch")
		} else {
			cyan.Printf("\n🖼  Fetching %d image asset(s)...\n", len(result.Assets))
			images, err := imager.Fetch(ctx, client, fileKey, result.Assets)
			if err != nil {
				red.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			for _, fetchErr := range images.Errors {
				yellow.Printf("⚠ %v\n", fetchErr)
			}
			if added := imager.Merge(result.Files, result.Assets, images.Images); added > 0 {
				archive, err = packager.Pack(result.Files)
				if err != nil {
					red.Printf("Error: %v\n", err)
					os.Exit(1)
				}
				green.Printf("Embedded %d image(s)\n", added)
			}
		}
	}

	// Display conversion stats.
	cyan.Println("\n📊 Conversion Summary:")
	fmt.Printf("  • Format: %s\n", result.Format)
	fmt.Printf("  • Screens: %d\n", figmacodegen.ScreenCount(result.Screens))
	fmt.Printf("  • Elements: %d\n", result.Elements)
	fmt.Printf("  • Files: %d\n", result.Files.Len())
	if len(result.Warnings) > 0 {
		fmt.Printf("  • Warnings: %d\n", len(result.Warnings))
	}

	// Write archive to file.
	green.Printf("\n💾 Writing to %s... ", outputFile)
	if err := os.WriteFile(outputFile, archive, 0644); err != nil {
		red.Printf("✗\n")
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	green.Println("✓")

	green.Printf("\n✨ Successfully generated %s project in %s\n\n", result.Format, outputFile)
}

func serve(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configFile)
	if err != nil {
		color.New(color.FgRed).Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	logger, err := zaplog.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		color.New(color.FgRed).Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	srv := server.NewServer(cfg, logger.Sugar())
	if err := srv.ListenAndServe(); err != nil {
		logger.Sugar().Fatalw("server stopped", "error", err)
	}
}

// cliLogger implements figmacodegen.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
