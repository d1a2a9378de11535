package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdspan"
	"pkt.systems/psi"
	"pkt.systems/pslog"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

const (
	formatANSI     = "ansi"
	formatPlain    = "plain"
	formatDebug    = "debug"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdspan")
}

func main() {
	psi.Run(submain)
}

type options struct {
	themeName  string
	stylesPath string
	widthFlag  int
	colorFlag  string
	format     string
	outPath    string
	softWrap   bool
	listThemes bool
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	var opts options
	flags := pflag.NewFlagSet("mdspan", pflag.ContinueOnError)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.StringVar(&opts.stylesPath, "styles", "", "YAML styles file (overrides --theme)")
	flags.IntVarP(&opts.widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available, -1 disables wrapping)")
	flags.StringVar(&opts.colorFlag, "color", "auto", "ANSI styling: auto|on|off")
	flags.StringVarP(&opts.format, "format", "f", formatANSI, "Output format: ansi|plain|debug|json|markdown")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the output width")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdspan [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if opts.listThemes {
		printThemes(os.Stdout)
		return 0
	}
	if err := run(ctx, opts, flags.Args()); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("mdspan failed")
		return 1
	}
	return 0
}

func run(ctx context.Context, opts options, args []string) error {
	logger := pslog.Ctx(ctx)
	theme, err := resolveTheme(opts.themeName, opts.stylesPath)
	if err != nil {
		return err
	}
	reader, closer, err := openInputs(ctx, args)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := mdspan.ValidateInput(data); err != nil {
		return fmt.Errorf("validate input: %w", err)
	}
	res := mdspan.Parse(string(data))
	logger.Debug("parsed input", "bytes", len(data), "spans", len(res.Spans))

	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	color, err := resolveColor(opts.colorFlag, writer)
	if err != nil {
		return fmt.Errorf("invalid --color %q: %w", opts.colorFlag, err)
	}
	if !color {
		theme = boringTheme()
	}
	return writeResult(writer, res, opts.format, theme, resolveWidth(opts.widthFlag), opts.softWrap)
}

func writeResult(w io.Writer, res mdspan.ParseResult, format string, theme mdspan.Theme, width int, softWrap bool) error {
	var out string
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", formatANSI:
		return mdspan.RenderResult(w, res, width, theme,
			mdspan.WithSoftWrap(softWrap),
			mdspan.WithTrailingNewline(true),
		)
	case formatPlain:
		out = res.PlainText
	case formatDebug:
		out = mdspan.Debug(res)
	case formatMarkdown:
		out = mdspan.Markdown(res)
	case formatJSON:
		buf, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		out = string(buf)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

func resolveTheme(name, stylesPath string) (mdspan.Theme, error) {
	if strings.TrimSpace(stylesPath) != "" {
		return mdspan.LoadTheme(normalizePath(stylesPath))
	}
	theme, ok := mdspan.ThemeByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (see --list-themes)", name)
	}
	return theme, nil
}

func printThemes(w io.Writer) {
	for _, name := range mdspan.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	if width < 0 {
		return 0
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return mdspan.DetectColorSupport() && isTerminal(w), nil
	case "on", "true", "1", "yes", "always":
		return true, nil
	case "off", "false", "0", "no", "never":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func boringTheme() mdspan.Theme {
	return mdspan.NewTheme("boring", mdspan.Styles{})
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(ctx context.Context, args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(ctx, raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(ctx context.Context, raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				body, err := mdspan.OpenURL(ctx, nil, raw)
				if err != nil {
					return nil, nil, err
				}
				return body, body, nil
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
