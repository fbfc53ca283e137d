package client

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-secure-profile/internal/adapter"
	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/models"
)

type command func(ctx context.Context, args []string) error

// App runs single API client commands.
type App struct {
	adapter adapter.ServerAdapter
	in      *bufio.Reader
	out     io.Writer
	logger  *logger.Logger
}

// NewApp returns an App that reads passwords from in when no -password flag
// is given and writes command output to out.
func NewApp(serverAdapter adapter.ServerAdapter, in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}

	return &App{
		adapter: serverAdapter,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger,
	}, nil
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	commands := map[string]command{
		"register": a.register,
		"login":    a.login,
		"profile":  a.profile,
		"upload":   a.upload,
		"list":     a.list,
		"download": a.download,
		"version":  a.version,
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, `usage: client [-s server-url] [-t token] [-timeout 15s] <command> [flags] [args]

commands:
  register -login L -email E [-password P] [-password2 P] [-first-name F] [-last-name N]
  login    -login L [-password P]
  profile
  upload   [-description D] [-type MIME] <path>
  list
  download [-o path|-] <file-id>
  version

register and login print the bearer token; pass it back with -t or CLIENT_TOKEN.
`)
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest

	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&req.Login, "login", "", "login")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.Password2, "password2", "", "password confirmation")
	fs.StringVar(&req.FirstName, "first-name", "", "first name")
	fs.StringVar(&req.LastName, "last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if req.Password, err = a.passwordOrPrompt(req.Password); err != nil {
		return err
	}
	if req.Password2 == "" {
		req.Password2 = req.Password
	}

	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, resp.Token)
	return err
}

func (a *App) login(ctx context.Context, args []string) error {
	var credentials models.Credentials

	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&credentials.Login, "login", "", "login")
	fs.StringVar(&credentials.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if credentials.Password, err = a.passwordOrPrompt(credentials.Password); err != nil {
		return err
	}

	resp, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, resp.Token)
	return err
}

// passwordOrPrompt reads one line from the input when password is empty.
func (a *App) passwordOrPrompt(password string) (string, error) {
	if password != "" {
		return password, nil
	}

	line, err := a.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading password: %w", err)
	}

	password = strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", ErrEmptyPassword
	}

	return password, nil
}

func (a *App) profile(ctx context.Context, _ []string) error {
	profile, err := a.adapter.Profile(ctx)
	if err != nil {
		return err
	}

	return a.printJSON(profile)
}

func (a *App) upload(ctx context.Context, args []string) error {
	var description, contentType string

	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&description, "description", "", "file description")
	fs.StringVar(&contentType, "type", "", "MIME type, detected when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := fs.Arg(0)
	if path == "" {
		return fmt.Errorf("%w: file path", ErrMissingArgument)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	if contentType == "" {
		if contentType, err = detectContentType(file); err != nil {
			return err
		}
	}

	info, err := a.adapter.UploadFile(ctx, adapter.FileUpload{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Description: description,
		Content:     file,
	})
	if err != nil {
		return err
	}

	return a.printJSON(info)
}

// detectContentType guesses from the file extension first and falls back to
// sniffing the leading bytes. The file offset is rewound afterwards.
func detectContentType(file *os.File) (string, error) {
	if byExt := mime.TypeByExtension(filepath.Ext(file.Name())); byExt != "" {
		if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
			return mediaType, nil
		}
	}

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("sniff content type: %w", err)
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(head[:n]))
	if err != nil {
		return "application/octet-stream", nil
	}

	return mediaType, nil
}

func (a *App) list(ctx context.Context, _ []string) error {
	files, err := a.adapter.ListFiles(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tTYPE\tUPLOADED\tDESCRIPTION")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			f.FileID, f.Name, f.Size, f.ContentType, f.UploadedAt.Format(time.RFC3339), f.Description)
	}

	return tw.Flush()
}

func (a *App) download(ctx context.Context, args []string) error {
	var output string

	fs := flag.NewFlagSet("download", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&output, "o", "", `output path, "-" for stdout; defaults to the stored file name`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fileID := fs.Arg(0)
	if fileID == "" {
		return fmt.Errorf("%w: file id", ErrMissingArgument)
	}

	file, err := a.adapter.DownloadFile(ctx, fileID)
	if err != nil {
		return err
	}

	if output == "-" {
		_, err = a.out.Write(file.Data)
		return err
	}

	if output == "" {
		output = filepath.Base(file.Info.Name)
		if output == "." || output == string(filepath.Separator) {
			output = fileID
		}
	}

	if err = os.WriteFile(output, file.Data, 0o600); err != nil {
		return fmt.Errorf("write download: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "saved %d bytes to %s\n", len(file.Data), output)
	return err
}

func (a *App) version(ctx context.Context, _ []string) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
