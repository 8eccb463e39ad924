package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spigell/resume-analyzer/internal/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the job postings resumes are matched against",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, err := newLogger()
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}

		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}

		postings, err := catalog.Load(config.Matching.CatalogFile)
		if err != nil {
			logger.Fatal("loading the posting catalog", zap.Error(err), zap.String("file", config.Matching.CatalogFile))
		}
		logger.Debug("posting catalog loaded", zap.Int("postings", len(postings)))

		out := cmd.OutOrStdout()
		for _, p := range postings {
			fmt.Fprintf(out, "%s. %s at %s [%s, %s]\n", p.ID, p.Title, p.Company, p.ExperienceLevel, p.SalaryRange)
			fmt.Fprintf(out, "   required: %s\n", strings.Join(p.RequiredSkills, ", "))
			if len(p.PreferredSkills) > 0 {
				fmt.Fprintf(out, "   preferred: %s\n", strings.Join(p.PreferredSkills, ", "))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}
