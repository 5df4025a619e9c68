// Package assets maps cards to their artwork and builds the original deck
// from whatever art is available.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lox/fivecarddraw/internal/deck"
	"golang.org/x/sync/errgroup"
)

// ErrAssetMissing is returned when a card has no artwork. A deck with
// missing cards would change the odds, so loading fails instead.
var ErrAssetMissing = errors.New("card asset missing")

// Face is the artwork for one card
type Face struct {
	Key  string
	Card deck.Card
	// SVG holds the vector art; nil for the built-in text faces.
	SVG []byte
}

// Catalog holds a face for every card in the original deck
type Catalog struct {
	source string
	cards  []deck.Card
	faces  map[string]Face
}

// TextCatalog returns a catalog of built-in text faces covering all 52 cards.
func TextCatalog() *Catalog {
	c := &Catalog{
		source: "builtin",
		faces:  make(map[string]Face, 52),
	}
	for _, card := range deck.Standard() {
		c.add(Face{Key: card.AssetKey(), Card: card})
	}
	return c
}

// LoadDir reads {rank}_of_{suit}.svg for every card from fsys in parallel.
// Every missing file is reported in one error wrapping ErrAssetMissing.
func LoadDir(ctx context.Context, fsys fs.FS, logger *log.Logger) (*Catalog, error) {
	logger = logger.WithPrefix("assets")
	cards := deck.Standard()
	faces := make([]Face, len(cards))

	var (
		mu      sync.Mutex
		missing []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, card := range cards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := card.AssetKey() + ".svg"
			data, err := fs.ReadFile(fsys, name)
			if errors.Is(err, fs.ErrNotExist) {
				mu.Lock()
				missing = append(missing, name)
				mu.Unlock()
				return nil
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			if !bytes.Contains(data, []byte("<svg")) {
				return fmt.Errorf("%s is not an SVG document", name)
			}
			faces[i] = Face{Key: card.AssetKey(), Card: card, SVG: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		logger.Error("Card art incomplete", "missing", len(missing))
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, strings.Join(missing, ", "))
	}

	c := &Catalog{
		source: "svg",
		faces:  make(map[string]Face, len(faces)),
	}
	for _, f := range faces {
		c.add(f)
	}
	logger.Info("Loaded card art", "cards", len(c.cards))
	return c, nil
}

func (c *Catalog) add(f Face) {
	c.cards = append(c.cards, f.Card)
	c.faces[f.Key] = f
}

// Cards returns the original deck: one card per face, in catalog order.
func (c *Catalog) Cards() []deck.Card {
	return slices.Clone(c.cards)
}

// Face looks up the artwork for card
func (c *Catalog) Face(card deck.Card) (Face, bool) {
	f, ok := c.faces[card.AssetKey()]
	return f, ok
}

// Len returns the number of faces
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Source is "builtin" or "svg"
func (c *Catalog) Source() string {
	return c.source
}
