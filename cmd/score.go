package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/input"
	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/pdftext"
)

const channelCLI = "cli"

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Example: `  resume-screener score --resume cv.pdf --jd-file job.txt
  resume-screener score --resume-text "Python developer" --jd "Python and SQL" --format json`,
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("resume", "", "resume PDF file")
	scoreCmd.Flags().String("resume-text", "", "resume as plain text")
	scoreCmd.Flags().String("resume-text-file", "", "file with the resume as plain text")
	scoreCmd.Flags().String("jd", "", "job description text")
	scoreCmd.Flags().String("jd-file", "", "file with the job description")
	scoreCmd.Flags().StringP("format", "o", formatText, "output format: text or json")

	scoreCmd.MarkFlagsMutuallyExclusive("resume", "resume-text", "resume-text-file")
}

func score(cmd *cobra.Command) {
	log, _, scorer := setup()

	flags := cmd.Flags()
	pdfPath, _ := flags.GetString("resume")
	format, _ := flags.GetString("format")
	jdText, _ := flags.GetString("jd")
	jdFile, _ := flags.GetString("jd-file")

	jd, err := loadJobDescription(jdText, jdFile)
	if err != nil {
		log.Fatal("loading job description", zap.Error(err))
	}

	var resumeText, resumeName string
	if strings.TrimSpace(pdfPath) != "" {
		resumeName = filepath.Base(pdfPath)
		resumeText, err = pdftext.ExtractFile(pdftext.NewPDF(), pdfPath)
		if err != nil {
			log.Fatal("could not extract text from PDF", zap.Error(err), zap.String("path", pdfPath))
		}
	} else {
		textFile, _ := flags.GetString("resume-text-file")
		text, _ := flags.GetString("resume-text")
		if textFile != "" {
			resumeName = filepath.Base(textFile)
		}
		resumeText, err = input.Load(input.Source{Name: "resume text", Value: text, File: textFile})
		if err != nil {
			log.Fatal("loading resume", zap.Error(err),
				zap.String("hint", "pass --resume, --resume-text or --resume-text-file"))
		}
	}

	result := scorer.Score(resumeText, jd)

	logger.WithScreening(log, channelCLI, resumeName).Debug("resume screened",
		zap.Float64("total_score", result.TotalScore),
		zap.String("decision", string(result.Decision)),
	)

	if err := printResult(os.Stdout, format, resumeName, result); err != nil {
		log.Fatal("printing result", zap.Error(err))
	}
}

func loadJobDescription(text, file string) (string, error) {
	return input.Load(input.Source{Name: "job description", Value: text, File: file})
}
