package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/cli"
	"github.com/keymapper-dev/keymapper/internal/cli/styles"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/config"
)

var (
	logsFollow bool
	logsLines  int
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the log file",
	Long: `Show the end of the keymapper log file.

Interactive commands such as 'record' log to this file instead of the
terminal. The file is logging.file, or keymapper.log in the XDG state
directory.

Examples:
  keymapper logs              # Show the last 50 lines
  keymapper logs -n 200       # Show the last 200 lines
  keymapper logs -f           # Follow new lines`,
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the log file and its rotated backups",
	RunE:  runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func logFilePath(app *cli.App) (string, error) {
	if file := app.Config.Get().Logging.File; file != "" {
		return file, nil
	}
	return config.GetLogFile()
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := logFilePath(app)
	if err != nil {
		return err
	}

	lines, err := tailLines(path, logsLines)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Println(app.Theme.Subtle.Render("No logs yet at " + path))
		return nil
	}
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(colorizeLogLine(line, app.Theme))
	}

	if !logsFollow {
		return nil
	}
	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
	defer stop()
	return followLog(ctx, path, app.Theme)
}

// tailLines returns the last n lines of the file at path.
func tailLines(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return lines, nil
}

// followLog prints lines appended to path until ctx is done.
func followLog(ctx context.Context, path string, theme *styles.Theme) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create log watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch log file: %w", err)
	}

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Println()

	reader := bufio.NewReader(file)
	pending := ""
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log file: %w", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				fmt.Println(theme.Subtle.Render("Log file rotated, stopping."))
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
		}

		for {
			chunk, err := reader.ReadString('\n')
			pending += chunk
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}
			fmt.Println(colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// Console format
	switch {
	case strings.Contains(line, " ERR ") || strings.Contains(line, " FTL "):
		return theme.ErrorStyle.Render(line)
	case strings.Contains(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case strings.Contains(line, " DBG ") || strings.Contains(line, " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := logFilePath(app)
	if err != nil {
		return err
	}
	backups, err := filepath.Glob(path + ".*")
	if err != nil {
		return fmt.Errorf("list log backups: %w", err)
	}

	removed := 0
	for _, f := range append([]string{path}, backups...) {
		if err := os.Remove(f); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				fmt.Printf("%s %s: %v\n", app.Theme.ErrorStyle.Render(styles.IconX), f, err)
			}
			continue
		}
		fmt.Printf("%s %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), f)
		removed++
	}

	if removed == 0 {
		fmt.Println(app.Theme.Subtle.Render("No logs to clear"))
	}
	return nil
}
