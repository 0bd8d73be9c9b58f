package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2beens/liftplan/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFileName = "liftplan.log"
	maxLogFileSizeMB   = 50
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. The returned func closes the
// log file, if any.
func Setup(params LoggerSetupParams) func() {
	logrus.SetFormatter(formatter(params.LogFormatJSON))
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	out, closer := output(params.LogFileName, params.LogToStdout)
	logrus.SetOutput(out)
	if closer == nil {
		logrus.Println("writing logs only to STDOUT")
		return func() {}
	}

	logrus.Printf("writing logs to file [%s], stdout: %t", params.LogFileName, params.LogToStdout)
	return func() {
		if err := closer.Close(); err != nil {
			logrus.Errorf("close log file: %s", err)
		}
	}
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up successfully")
}

func formatter(asJSON bool) logrus.Formatter {
	if asJSON {
		return &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	}
}

// output picks the log writer. A file path that is a directory gets the
// default file name inside it.
func output(logFileName string, toStdout bool) (io.Writer, io.Closer) {
	if logFileName == "" {
		return os.Stdout, nil
	}

	if exists, _ := pkg.PathExists(logFileName, true); exists {
		logFileName = filepath.Join(logFileName, defaultLogFileName)
	} else if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:  logFileName,
		MaxSize:   maxLogFileSizeMB,
		LocalTime: false, // UTC
		Compress:  true,
	}

	if toStdout {
		return pkg.NewCombinedWriter(os.Stdout, rotating), rotating
	}
	return rotating, rotating
}

func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
