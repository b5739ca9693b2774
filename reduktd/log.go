package reduktd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/SSSOC-CAN/redukt/utils"
	colorable "github.com/mattn/go-colorable"
	color "github.com/mgutz/ansi"
	"github.com/rs/zerolog"
)

const (
	logFileName = "logfile.log"
)

// subLogger is a thin-wrapper for the `zerolog.Logger` struct
type subLogger struct {
	SubLogger zerolog.Logger
	Subsystem string
}

// rotatingFileWriter truncates the log file once it grows beyond maxFileSize,
// keeping up to maxFiles older copies alongside it
type rotatingFileWriter struct {
	file        *os.File
	maxFileSize int64 // Bytes
	maxFiles    int64
	pathToFile  string
	fileNum     int64
}

// Write implements the io.Writer interface
func (w *rotatingFileWriter) Write(p []byte) (n int, err error) {
	stat, err := w.file.Stat()
	if err != nil {
		return 0, err
	}
	// Check if maximum file size is exceeded
	if stat.Size()+int64(len(p)) >= w.maxFileSize {
		w.file.Close()
		w.fileNum++
		if w.fileNum >= w.maxFiles {
			w.fileNum = 0
		}
		newFileName := w.pathToFile
		if w.fileNum > 0 {
			newFileName = fmt.Sprintf("%s.%v", w.pathToFile, w.fileNum)
		}
		if utils.FileExists(newFileName) {
			err = os.Remove(newFileName)
			if err != nil {
				return 0, err
			}
		}
		newFile, err := os.OpenFile(newFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0775)
		if err != nil {
			return 0, err
		}
		w.file = newFile
	}
	return w.file.Write(p)
}

// InitLogger creates a new instance of the `zerolog.Logger` type. If `config.ConsoleOutput`
// is true, it will output the logs to the console as well as the logfile
func InitLogger(config *Config) (zerolog.Logger, error) {
	var (
		log_file *os.File
		err      error
		logger   zerolog.Logger
	)
	log_file, err = os.OpenFile(config.LogFileDir+"/"+logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0775)
	if err != nil {
		// try to create the .reduktd dir and try again if log dir is default log dir
		if config.DefaultLogDir {
			err = os.Mkdir(config.LogFileDir, 0775)
			if err != nil {
				return zerolog.Logger{}, err
			}
			log_file, err = os.OpenFile(config.LogFileDir+"/"+logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0775)
			if err != nil {
				return zerolog.Logger{}, err
			}
		} else {
			return zerolog.Logger{}, err
		}
	}
	rotating_file := &rotatingFileWriter{
		file:        log_file,
		maxFileSize: config.MaxLogFileSize * 1000000, // converting to Bytes
		maxFiles:    config.MaxLogFiles,
		pathToFile:  config.LogFileDir + "/" + logFileName,
	}
	if config.ConsoleOutput {
		output := zerolog.NewConsoleWriter()
		if runtime.GOOS == "windows" {
			output.Out = colorable.NewColorableStdout()
		} else {
			output.Out = os.Stderr
		}
		output.FormatLevel = func(i interface{}) string {
			var msg string
			x := fmt.Sprintf("%v", i)
			switch x {
			case "info":
				msg = color.Color(strings.ToUpper("["+x+"]"), "green")
			case "panic", "fatal", "error":
				msg = color.Color(strings.ToUpper("["+x+"]"), "red")
			case "warn", "debug":
				msg = color.Color(strings.ToUpper("["+x+"]"), "yellow")
			case "trace":
				msg = color.Color(strings.ToUpper("["+x+"]"), "magenta")
			}
			return msg + "\t"
		}
		multi := zerolog.MultiLevelWriter(output, rotating_file)
		logger = zerolog.New(multi).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(rotating_file).With().Timestamp().Logger()
	}
	return logger, nil
}

// NewSubLogger takes a `zerolog.Logger` and string for the name of the subsystem and creates a `subLogger` for this subsystem
func NewSubLogger(l *zerolog.Logger, subsystem string) *subLogger {
	sub := l.With().Str("subsystem", subsystem).Logger()
	s := subLogger{
		SubLogger: sub,
		Subsystem: subsystem,
	}
	return &s
}
