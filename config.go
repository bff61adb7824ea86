package main

// Global configuration of the editor. Settings are populated from command-line
// flags during initialization.

import "flag"

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	GutterWidth     int    // Columns reserved on the left for line numbers.
	LineNumbers     bool   // Show line numbers from the start (same as :set nu).
	RelativeNumbers bool   // Number rows relative to the cursor row.
	PlaceholderPath string // Where :w writes when no file was given.
	SystemClipboard bool   // Mirror cut/copy to the OS clipboard.
	UseLogFile      bool   // Whether to write debug logs to a file.
	LogFilePath     string // Where to store the debug logs.
	NumLogMessages  int    // How many recent logs to keep in memory.
	NumLogsInWindow int    // How many recent logs to show in the debug window.
	DevMode         bool   // Shows the debug log window.
	ShowColors      bool   // Command-line flag to show the theme and exit.
	ShowVersion     bool   // Command-line flag to show version and exit.
}

// Config is the global configuration instance.
var Config = defaultConfiguration()

func defaultConfiguration() Configuration {
	return Configuration{
		GutterWidth:     7,
		PlaceholderPath: "untitled.txt",
		LogFilePath:     "/tmp/tred-debug.log",
		NumLogMessages:  50,
		NumLogsInWindow: 10,
	}
}

// InitConfig sets up command-line flags on fs and parses args into the global
// Config. It returns the positional arguments.
func InitConfig(fs *flag.FlagSet, args []string) ([]string, error) {
	fs.IntVar(&Config.GutterWidth, "gutter-width", Config.GutterWidth, "Width of the line number gutter")
	fs.BoolVar(&Config.LineNumbers, "number", Config.LineNumbers, "Show line numbers")
	fs.BoolVar(&Config.RelativeNumbers, "relative-number", Config.RelativeNumbers, "Show line numbers relative to the cursor")
	fs.StringVar(&Config.PlaceholderPath, "placeholder", Config.PlaceholderPath, "File written by :w when no path is given")
	fs.BoolVar(&Config.SystemClipboard, "system-clipboard", Config.SystemClipboard, "Copy cut/yanked text to the system clipboard")
	fs.BoolVar(&Config.UseLogFile, "log", Config.UseLogFile, "Enable logging to file")
	fs.StringVar(&Config.LogFilePath, "log-path", Config.LogFilePath, "Path to log file")
	fs.IntVar(&Config.NumLogsInWindow, "num-logs", Config.NumLogsInWindow, "Number of logs in debug window")
	fs.BoolVar(&Config.DevMode, "dev", Config.DevMode, "Enable development mode")
	fs.BoolVar(&Config.ShowColors, "colors", Config.ShowColors, "Show theme colors")
	fs.BoolVar(&Config.ShowVersion, "version", Config.ShowVersion, "Show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if Config.GutterWidth < 0 {
		Config.GutterWidth = 0
	}
	if Config.RelativeNumbers {
		Config.LineNumbers = true
	}
	return fs.Args(), nil
}
