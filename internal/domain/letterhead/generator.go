package letterhead

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	profiledomain "rt-portal-go/internal/domain/profile"
	"rt-portal-go/internal/export"
	"rt-portal-go/pkg/clock"
)

const (
	separator           = "———————————————"
	receiverPlaceholder = "____________________"
)

// DefaultBody is the starter text offered in the letter editor.
const DefaultBody = "Dengan hormat,\n\nSehubungan dengan ... (isi surat Anda)\n\nHormat kami,\nPengurus RT"

type Generator struct {
	clock clock.Clock
}

func NewGenerator(clk clock.Clock) *Generator {
	return &Generator{clock: clk}
}

// Render lays out a letter: letterhead, reference line, addressee, the body
// verbatim, dated sign-off and the chairman's name. Output depends only on
// the arguments and the generator's clock.
func (g *Generator) Render(p profiledomain.Profile, body string) string {
	return render(p, body, g.clock.Now())
}

// Letter is one rendered letter with the filename it is saved under. Both
// come from the same clock reading.
type Letter struct {
	Filename string
	Text     string
}

// Compose reads the clock once and derives the letter text and its filename
// from that instant.
func (g *Generator) Compose(p profiledomain.Profile, body string) Letter {
	now := g.clock.Now()
	return Letter{
		Filename: filename(p, now),
		Text:     render(p, body, now),
	}
}

func render(p profiledomain.Profile, body string, now time.Time) string {
	receiver := p.Receiver
	if receiver == "" {
		receiver = receiverPlaceholder
	}

	lines := []string{
		fmt.Sprintf("RT %s/RW %s %s, %s, %s", p.RT, p.RW, p.Village, p.Subdistrict, p.City),
		"Alamat: " + p.Address,
		fmt.Sprintf("Kontak: %s | %s", p.Phone, p.Email),
		"",
		separator,
		fmt.Sprintf("Nomor: ______ / RT-%s / %d", p.RT, now.Year()),
		"Perihal: ______",
		"Lampiran: ______",
		"",
		"Kepada Yth,",
		receiver,
		"Di Tempat",
		"",
		body,
		"",
		fmt.Sprintf("%s, %d/%d/%d", p.City, now.Day(), int(now.Month()), now.Year()),
		"Ketua RT " + p.RT,
		"",
		"(" + p.Chairman + ")",
	}
	return strings.Join(lines, "\n")
}

func (g *Generator) Filename(p profiledomain.Profile) string {
	return filename(p, g.clock.Now())
}

func filename(p profiledomain.Profile, now time.Time) string {
	return "Surat_RT" + p.RT + "_" + strconv.FormatInt(now.UnixMilli(), 10) + ".txt"
}

// Export renders the letter and hands it to sink. It returns the filename used.
func (g *Generator) Export(ctx context.Context, sink export.Sink, p profiledomain.Profile, body string) (string, error) {
	letter := g.Compose(p, body)
	if err := sink.Export(ctx, letter.Filename, []byte(letter.Text)); err != nil {
		return "", fmt.Errorf("export letter: %w", err)
	}
	return letter.Filename, nil
}
