package reports

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// FontMode is resolved once per document and passed into every text
// placement, so a document can never mix embedded-font and ASCII output.
type FontMode int

const (
	FontNotLoaded FontMode = iota
	FontUsable
	FontFallbackASCII
)

const embeddedFontFamily = "report"

// ResolvedFont carries the outcome of the three-tier fallback chain.
type ResolvedFont struct {
	Mode FontMode
	Data []byte
	File string
}

// FontResolver loads a locale-capable TrueType font: first from the local
// font directory, then from a CDN mirror, and finally gives up and signals
// the ASCII transliteration path.
type FontResolver struct {
	Dir     string
	CDNBase string
	Client  *http.Client
	Timeout time.Duration
}

func NewFontResolver(dir, cdnBase string, timeout time.Duration) *FontResolver {
	return &FontResolver{
		Dir:     dir,
		CDNBase: cdnBase,
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

func localeFontFile(locale string) string {
	// Noto Sans covers the Latin-extended scripts the app localizes into.
	// Per-locale files allow shipping subsetted fonts later.
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "vi", "de", "es", "fr", "":
		return "NotoSans-Regular.ttf"
	default:
		return "NotoSans-Regular.ttf"
	}
}

// Resolve walks the fallback chain. It never returns an error: the terminal
// state is the ASCII fallback, which always works.
func (r *FontResolver) Resolve(ctx context.Context, locale string) ResolvedFont {
	file := localeFontFile(locale)

	if data, err := os.ReadFile(filepath.Join(r.Dir, file)); err == nil {
		if FontUsableProbe(data) {
			return ResolvedFont{Mode: FontUsable, Data: data, File: file}
		}
		slog.Warn("local font failed usability probe", "file", file)
	}

	if data, err := r.fetchCDN(ctx, file); err != nil {
		slog.Warn("cdn font fetch failed", "file", file, "err", err)
	} else if FontUsableProbe(data) {
		return ResolvedFont{Mode: FontUsable, Data: data, File: file}
	} else {
		slog.Warn("cdn font failed usability probe", "file", file)
	}

	return ResolvedFont{Mode: FontFallbackASCII}
}

func (r *FontResolver) fetchCDN(ctx context.Context, file string) ([]byte, error) {
	if r.CDNBase == "" {
		return nil, fmt.Errorf("no cdn base configured")
	}
	url := strings.TrimRight(r.CDNBase, "/") + "/" + file

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cdn returned %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 8<<20))
}

// FontUsableProbe registers the font in a scratch document and measures one
// ASCII and one accented sample rune. A font that registers without error but
// measures a zero or absurd width is still treated as failed; rendering it
// would silently produce tofu.
func FontUsableProbe(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	ok := false
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				ok = false
			}
		}()

		probe := gofpdf.New("P", "mm", "A4", "")
		probe.AddUTF8FontFromBytes("probe", "", data)
		probe.SetFont("probe", "", 12)
		if probe.Err() {
			return
		}

		asciiWidth := probe.GetStringWidth("M")
		accentWidth := probe.GetStringWidth("ế")
		if probe.Err() {
			return
		}
		ok = plausibleWidth(asciiWidth) && plausibleWidth(accentWidth)
	}()
	return ok
}

func plausibleWidth(width float64) bool {
	return width > 0.1 && width < 50
}
