package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/s4daharu/novel-apps-sub001/internal/blocks"
	"github.com/s4daharu/novel-apps-sub001/internal/entities"
	"github.com/s4daharu/novel-apps-sub001/internal/services"
)

// Zip2BackupCommand converts a ZIP archive of plain-text chapters into a
// backup document for the writing application.
type Zip2BackupCommand struct {
	ArchivePath    string
	Title          string
	Description    string
	UniqueCode     string
	ChapterPattern string
	StartNumber    int
	ExtraChapters  int
	OutputDir      string
	Verbose        bool
}

func NewZip2BackupCommand() *Zip2BackupCommand {
	return &Zip2BackupCommand{}
}

func (cmd *Zip2BackupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("zip2backup", flag.ExitOnError)

	fs.StringVar(&cmd.ArchivePath, "file", "", "Path to the ZIP archive of .txt chapters (required)")
	fs.StringVar(&cmd.Title, "title", "", "Project title (required)")
	fs.StringVar(&cmd.Description, "desc", "", "Project description")
	fs.StringVar(&cmd.UniqueCode, "code", "", "Unique project code (generated when empty)")
	fs.StringVar(&cmd.ChapterPattern, "pattern", "", "Chapter title pattern, e.g. \"Chapter \" (falls back to filenames when empty)")
	fs.IntVar(&cmd.StartNumber, "start", 1, "Rank of the first chapter")
	fs.IntVar(&cmd.ExtraChapters, "extra", 0, "Number of extra empty chapters appended after the archive's chapters")
	fs.StringVar(&cmd.OutputDir, "out", "", "Output directory for the backup file (defaults to the archive's directory)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print a per-chapter summary table")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s zip2backup -file <path> -title <title> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert a ZIP archive of plain-text chapters into a backup document.\n\n")
		fmt.Fprintf(os.Stderr, "Only entries ending in .txt are considered; they are ordered by a\n")
		fmt.Fprintf(os.Stderr, "numeric-aware name comparison, so chapter2.txt sorts before chapter10.txt.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Convert with filename-derived chapter titles:\n")
		fmt.Fprintf(os.Stderr, "  %s zip2backup -file chapters.zip -title \"My Novel\"\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Numbered titles plus two empty chapters at the end:\n")
		fmt.Fprintf(os.Stderr, "  %s zip2backup -file chapters.zip -title \"My Novel\" -pattern \"Chapter \" -extra 2\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ArchivePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	if strings.TrimSpace(cmd.Title) == "" {
		return fmt.Errorf("required flag -title not provided")
	}
	if cmd.StartNumber < 1 {
		return fmt.Errorf("-start must be at least 1")
	}
	if cmd.ExtraChapters < 0 {
		return fmt.Errorf("-extra must not be negative")
	}

	return nil
}

func (cmd *Zip2BackupCommand) Run() error {
	data, err := os.ReadFile(cmd.ArchivePath)
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}

	service := services.NewConversionService()
	result, err := service.ZipToBackup(context.Background(), services.ConversionRequest{
		Archive:        data,
		Title:          cmd.Title,
		Description:    cmd.Description,
		UniqueCode:     cmd.UniqueCode,
		ChapterPattern: cmd.ChapterPattern,
		StartNumber:    cmd.StartNumber,
		ExtraChapters:  cmd.ExtraChapters,
	})
	if err != nil {
		return err
	}

	outputDir := cmd.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(cmd.ArchivePath)
	}
	outputPath := filepath.Join(outputDir, result.Filename)

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	fmt.Printf("Backup created: %s (%d chapters, %d words)\n", outputPath, result.ChapterCount, result.WordCount)

	if cmd.Verbose {
		if err := printChapterTable(result.Data); err != nil {
			return err
		}
	}

	return nil
}

// printChapterTable renders the produced document's scenes as a table.
func printChapterTable(data []byte) error {
	var doc entities.Backup
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode backup: %w", err)
	}
	if len(doc.Revisions) == 0 {
		return fmt.Errorf("backup has no revisions")
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Rank", "Code", "Title", "Words"})

	for _, scene := range doc.Revisions[0].Scenes {
		words := blocks.CountWords([]entities.Scene{scene})
		tw.AppendRow(table.Row{strconv.Itoa(scene.Ranking), scene.Code, scene.Title, strconv.Itoa(words)})
	}

	tw.Render()
	return nil
}
