package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/pdftext"
	"github.com/spigell/resume-screener/internal/screening"
)

const (
	PromptExplanation  = "Show explanation"
	PromptSuggestions  = "Show suggestions"
	PromptReport       = "Show full report"
	PromptDumpToFile   = "Dump result to file"
	PromptScreenAgain  = "Screen another resume"
	PromptExit         = "Exit"
	PromptTypeJD       = "Type the job description"
	PromptJDFromFile   = "Load the job description from a file"
	channelInteractive = "interactive"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptExplanation, PromptSuggestions, PromptReport, PromptDumpToFile, PromptScreenAgain, PromptExit},
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a resume interactively",
	Run: func(_ *cobra.Command, _ []string) {
		screen()
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)
}

// screenSession is one resume screened in the interactive mode.
type screenSession struct {
	filename string
	result   *screening.Result
}

func screen() {
	log, _, scorer := setup()
	extractor := pdftext.NewPDF()

	for {
		session, err := screenOnce(scorer, extractor, log)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return
			}
			log.Error("screening failed", zap.Error(err))
			continue
		}

		if err := printResult(os.Stdout, formatText, session.filename, session.result); err != nil {
			log.Fatal("printing result", zap.Error(err))
		}

		again, err := actionLoop(session, log)
		if err != nil {
			if errors.Is(err, errExit) || errors.Is(err, promptui.ErrInterrupt) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}
		if !again {
			return
		}
	}
}

func screenOnce(scorer *screening.Scorer, extractor pdftext.Extractor, log *zap.Logger) (*screenSession, error) {
	resumePrompt := promptui.Prompt{
		Label:    "Resume PDF path",
		Validate: validateFile,
	}
	path, err := resumePrompt.Run()
	if err != nil {
		return nil, err
	}
	path = strings.TrimSpace(path)

	jd, err := askJobDescription()
	if err != nil {
		return nil, err
	}

	text, err := pdftext.ExtractFile(extractor, path)
	if err != nil {
		return nil, fmt.Errorf("could not extract text from this PDF, please try another file: %w", err)
	}

	filename := filepath.Base(path)
	result := scorer.Score(text, jd)

	logger.WithScreening(log, channelInteractive, filename).Info("resume screened",
		zap.Float64("total_score", result.TotalScore),
		zap.String("decision", string(result.Decision)),
	)

	return &screenSession{filename: filename, result: result}, nil
}

func askJobDescription() (string, error) {
	sourcePrompt := promptui.Select{
		Label: "Job description",
		Items: []string{PromptTypeJD, PromptJDFromFile},
	}
	_, source, err := sourcePrompt.Run()
	if err != nil {
		return "", err
	}

	if source == PromptJDFromFile {
		filePrompt := promptui.Prompt{Label: "Job description file", Validate: validateFile}
		file, err := filePrompt.Run()
		if err != nil {
			return "", err
		}
		return loadJobDescription("", strings.TrimSpace(file))
	}

	textPrompt := promptui.Prompt{
		Label: "Paste the job description",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("job description is empty")
			}
			return nil
		},
	}
	text, err := textPrompt.Run()
	if err != nil {
		return "", err
	}
	return loadJobDescription(text, "")
}

// actionLoop runs the follow-up menu. It reports whether another resume should be screened.
func actionLoop(session *screenSession, log *zap.Logger) (bool, error) {
	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			return false, err
		}

		if action == PromptScreenAgain {
			return true, nil
		}

		if err := handleAction(action, session, log); err != nil {
			return false, err
		}
	}
}

func handleAction(action string, session *screenSession, log *zap.Logger) error {
	switch action {
	case PromptExplanation:
		fmt.Println(strings.Join(session.result.Explanation, "\n"))
		return nil
	case PromptSuggestions:
		fmt.Println(strings.Join(session.result.Suggestions, "\n"))
		return nil
	case PromptReport:
		return printResult(os.Stdout, formatText, session.filename, session.result)
	case PromptDumpToFile:
		filename, err := dumpToTmpFile(session.filename, session.result)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		log.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		log.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func validateFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	stat, err := os.Stat(path)
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
