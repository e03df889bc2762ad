// Package report ships rendered bags to a CodeCTRL server as log entries, so
// a demo run can be inspected in the CodeCTRL UI together with the call site
// that produced each bag.
package report

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"reflect"
	"strings"

	e "github.com/STBoyden/gobag/error"

	b "github.com/STBoyden/codectrl-go-protobufs/data/backtrace_data"
	l "github.com/STBoyden/codectrl-go-protobufs/data/log"
	logsService "github.com/STBoyden/codectrl-go-protobufs/logs_service"
	"github.com/go-errors/errors"
	"github.com/google/uuid"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = "3002"
	DefaultSurround = uint32(3)

	// EnvDebug enables ReportWhenEnv.
	EnvDebug = "CODECTRL_DEBUG"

	packagePath = "github.com/STBoyden/gobag/report"
)

// Optional parameters for New.
type Params struct {
	Surround uint32
	Host     string
	Port     string
}

// Reporter sends bag snapshots to a CodeCTRL server.
type Reporter struct {
	host     string
	port     string
	surround uint32
}

// Creates a new Reporter. Empty fields in params fall back to the CodeCTRL
// defaults.
func New(params ...Params) Reporter {
	reporter := Reporter{host: DefaultHost, port: DefaultPort, surround: DefaultSurround}

	if len(params) > 0 {
		params := params[0]

		if params.Host != "" {
			reporter.host = params.Host
		}

		if params.Port != "" {
			reporter.port = params.Port
		}

		if params.Surround != 0 {
			reporter.surround = params.Surround
		}
	}

	return reporter
}

func (reporter Reporter) Address() string {
	return net.JoinHostPort(reporter.host, reporter.port)
}

// Report renders entries under title and sends them as a single log.
func (reporter Reporter) Report(ctx context.Context, title string, entries []string) (*logsService.RequestResult, error) {
	log, err := createLog(Render(title, entries), reporter.surround)

	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	if len(entries) == 0 {
		log.Warnings = append(log.Warnings, title+" is empty")
	}

	return reporter.send(ctx, log)
}

// Report function that only connects and sends when the "CODECTRL_DEBUG"
// environment variable is set.
func (reporter Reporter) ReportWhenEnv(ctx context.Context, title string, entries []string) (*logsService.RequestResult, error) {
	if _, present := os.LookupEnv(EnvDebug); !present {
		return nil, errors.Wrap(e.New(e.ReportError, "environment variable "+EnvDebug+" not set"), 0)
	}

	return reporter.Report(ctx, title, entries)
}

func (reporter Reporter) send(ctx context.Context, log *l.Log) (*logsService.RequestResult, error) {
	connection, err := grpc.Dial(reporter.Address(), grpc.WithTransportCredentials(insecure.NewCredentials()))

	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	defer connection.Close()

	client := logsService.NewLogClientClient(connection)

	result, err := client.SendLog(ctx, log)

	if err != nil {
		return nil, errors.Wrap(e.New(e.ReportError, fmt.Sprintf("send to %s: %v", reporter.Address(), err)), 0)
	}

	return result, nil
}

// Render formats a bag snapshot the way it appears in the log message, e.g.
// "union = [1, 2, 2]".
func Render(title string, entries []string) string {
	return title + " = [" + strings.Join(entries, ", ") + "]"
}

func createLog(message string, surround uint32) (*l.Log, error) {
	log := l.Log{
		Uuid:        uuid.NewString(),
		Stack:       []*b.BacktraceData{},
		LineNumber:  0,
		FileName:    "",
		CodeSnippet: map[uint32]string{},
		Message:     message,
		MessageType: reflect.TypeOf(message).String(),
		Address:     "",
		Warnings:    []string{},
		Language:    "Go",
	}

	stack, err := getStackTrace()

	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	log.Stack = stack

	if len(log.GetStack()) == 0 {
		return &log, nil
	}

	last := log.GetStack()[len(log.GetStack())-1]
	log.LineNumber = last.GetLineNumber()
	log.FileName = last.GetFilePath()

	snippet, err := getCodeSnippet(last.GetFilePath(), log.LineNumber, surround)

	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	log.CodeSnippet = snippet

	return &log, nil
}

func deduplicateStack(stack []*b.BacktraceData) []*b.BacktraceData {
	occurred := map[uint32]bool{}
	result := []*b.BacktraceData{}

	for _, frame := range stack {
		if !occurred[frame.GetLineNumber()] {
			occurred[frame.GetLineNumber()] = true

			result = append(result, frame)
		}
	}

	return result
}

// getStackTrace returns the caller's frames outermost first, skipping the
// runtime, the test harness and this package.
func getStackTrace() ([]*b.BacktraceData, error) {
	stack := errors.Wrap("stack probe", 0).StackFrames()
	bstack := []*b.BacktraceData{}
	goroot := os.Getenv("GOROOT")

	for _, frame := range stack {
		switch frame.Package {
		case "runtime", "testing", packagePath:
			continue
		default:
		}

		if goroot != "" && strings.Contains(frame.File, goroot) {
			continue
		}

		code, err := frame.SourceLine()

		if err != nil {
			code, err = getCode(frame.File, uint32(frame.LineNumber))

			if err != nil {
				return nil, errors.Wrap(err, 0)
			}
		}

		bstack = append(
			[]*b.BacktraceData{
				{
					LineNumber:   uint32(frame.LineNumber),
					ColumnNumber: uint32(0),
					FilePath:     frame.File,
					Name:         frame.Name,
					Code:         code,
				},
			},
			bstack...)
	}

	return deduplicateStack(bstack), nil
}

func readLines(filePath string) ([]string, error) {
	file, err := os.Open(filePath)

	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	defer file.Close()

	contentBytes, err := io.ReadAll(file)

	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	return strings.Split(string(contentBytes), "\n"), nil
}

func getCode(filePath string, lineNumber uint32) (string, error) {
	lines, err := readLines(filePath)

	if err != nil {
		return "", err
	}

	if lineNumber == 0 {
		return "", errors.Wrap(e.New(e.ReportError, "line number is zero"), 0)
	} else if len(lines) < int(lineNumber) {
		return "", errors.Wrap(e.New(e.ReportError, fmt.Sprintf("line %d is past the end of %s", lineNumber, filePath)), 0)
	}

	return lines[lineNumber-1], nil
}

// getCodeSnippet returns the lines within surround of lineNumber, keyed by
// their 1-based line number.
func getCodeSnippet(filePath string, lineNumber uint32, surround uint32) (map[uint32]string, error) {
	lines, err := readLines(filePath)

	if err != nil {
		return nil, err
	}

	first := max(int(lineNumber)-int(surround), 1)
	last := min(int(lineNumber)+int(surround), len(lines))

	snippet := map[uint32]string{}

	for number := first; number <= last; number++ {
		snippet[uint32(number)] = lines[number-1]
	}

	return snippet, nil
}
