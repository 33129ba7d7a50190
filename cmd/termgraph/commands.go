package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/agenthands/termgraph/internal/config"
)

var (
	cfg *config.Config

	configPath string
	rootDir    string
	algorithm  string
	clusterK   int
	seed       int64
	outputURI  string
	docsDir    string
	runName    string
	sourceFile string

	rootCmd = &cobra.Command{
		Use:   "termgraph",
		Short: "Extract term relationships from a glossary and evaluate dual clusterings",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loaded, err := config.Load(configPath)
			if err != nil {
				log.Printf("Warning: could not load %s: %v. Using defaults", configPath, err)
				loaded = config.Default()
			}
			cfg = loaded
		},
	}

	validateCmd = &cobra.Command{
		Use:   "validate [glossary]",
		Short: "Validate a glossary file and report every violation",
		Args:  cobra.ExactArgs(1),
		Run:   runValidate, // Defined in cmd_data.go
	}

	linksCmd = &cobra.Command{
		Use:   "links [glossary]",
		Short: "Extract the term link dictionary from a glossary",
		Args:  cobra.ExactArgs(1),
		Run:   runLinks, // Defined in cmd_pipeline.go
	}

	clusterCmd = &cobra.Command{
		Use:   "cluster [glossary]",
		Short: "Run structural and semantic clustering, writing assignment CSVs",
		Args:  cobra.ExactArgs(1),
		Run:   runCluster, // Defined in cmd_pipeline.go
	}

	evaluateCmd = &cobra.Command{
		Use:   "evaluate [structural.csv] [semantic.csv]",
		Short: "Compare two assignment CSVs using the Adjusted Rand Index",
		Args:  cobra.ExactArgs(2),
		Run:   runEvaluate, // Defined in cmd_pipeline.go
	}

	runPipelineCmd = &cobra.Command{
		Use:   "run [glossary]",
		Short: "Run the full pipeline and write all artifacts",
		Args:  cobra.ExactArgs(1),
		Run:   runPipeline, // Defined in cmd_pipeline.go
	}

	convertCmd = &cobra.Command{
		Use:   "convert [glossary.md] [glossary.json]",
		Short: "Convert a Markdown glossary to the JSON input shape",
		Args:  cobra.ExactArgs(2),
		Run:   runConvert, // Defined in cmd_data.go
	}

	reportCmd = &cobra.Command{
		Use:   "report [glossary]",
		Short: "Report link coverage for a glossary",
		Args:  cobra.ExactArgs(1),
		Run:   runReport, // Defined in cmd_data.go
	}

	enrichCmd = &cobra.Command{
		Use:   "enrich [glossary] [out.json]",
		Short: "Write glossary entries with their extracted links attached",
		Args:  cobra.ExactArgs(2),
		Run:   runEnrich, // Defined in cmd_data.go
	}

	publishCmd = &cobra.Command{
		Use:   "publish",
		Short: "Copy pipeline artifacts from the output directory to docs",
		Run:   runPublish, // Defined in cmd_data.go
	}

	pushCmd = &cobra.Command{
		Use:   "push [glossary]",
		Short: "Run the pipeline and publish the term graph to Memgraph",
		Args:  cobra.ExactArgs(1),
		Run:   runPush, // Defined in cmd_pipeline.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.toml", "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Workspace root for data:, output: and docs: URIs")

	clusterCmd.Flags().StringVar(&algorithm, "algorithm", "", "Structural algorithm: modularity or components")
	clusterCmd.Flags().IntVar(&clusterK, "k", 0, "Semantic cluster count (0 derives k from the term count)")
	clusterCmd.Flags().Int64Var(&seed, "seed", 0, "Semantic clustering seed (0 uses the configured seed)")

	runPipelineCmd.Flags().StringVar(&algorithm, "algorithm", "", "Structural algorithm: modularity or components")
	runPipelineCmd.Flags().IntVar(&clusterK, "k", 0, "Semantic cluster count (0 derives k from the term count)")
	runPipelineCmd.Flags().Int64Var(&seed, "seed", 0, "Semantic clustering seed (0 uses the configured seed)")
	runPipelineCmd.Flags().StringVar(&runName, "run-name", "", "Run name recorded in the tracking log")

	linksCmd.Flags().StringVar(&outputURI, "output", "output:links.json", "Where to write the link dictionary")

	convertCmd.Flags().StringVar(&sourceFile, "source", "", "Source glossary the conversion must not overwrite")

	publishCmd.Flags().StringVar(&docsDir, "docs", "docs:", "Destination docs directory URI")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(clusterCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(runPipelineCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(pushCmd)
}
