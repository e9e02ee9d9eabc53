// Package pantry serves the nation, ingredient and cooking-style catalog.
package pantry

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

//go:embed data/catalog.yaml
var catalogFS embed.FS

const catalogFile = "catalog.yaml"

// Store loads the catalog once.
type Store struct {
	fsys fs.FS
	name string

	once    sync.Once
	catalog domain.Catalog
	err     error
}

// NewEmbeddedStore serves the catalog compiled into the binary.
func NewEmbeddedStore() *Store {
	return &Store{fsys: catalogFS, name: "data/" + catalogFile}
}

// NewDirStore reads catalog.yaml from dir.
func NewDirStore(dir string) *Store {
	return &Store{fsys: os.DirFS(dir), name: catalogFile}
}

func (s *Store) init() {
	raw, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		s.err = fmt.Errorf("read catalog: %w", err)
		return
	}
	var c domain.Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		s.err = fmt.Errorf("parse catalog: %w", err)
		return
	}
	if err := validate(c); err != nil {
		s.err = err
		return
	}

	title := cases.Title(language.English)
	for i := range c.Nations {
		if c.Nations[i].Name == "" {
			c.Nations[i].Name = title.String(strings.ReplaceAll(c.Nations[i].ID, "-", " "))
		}
	}
	s.catalog = c
}

func validate(c domain.Catalog) error {
	if len(c.Nations) == 0 {
		return fmt.Errorf("catalog has no nations")
	}
	nations := make(map[string]bool, len(c.Nations))
	for _, n := range c.Nations {
		if n.ID == "" {
			return fmt.Errorf("catalog nation without id")
		}
		nations[n.ID] = true
	}
	for _, ing := range c.Ingredients {
		if ing.Name == "" {
			return fmt.Errorf("catalog ingredient without name")
		}
		if !nations[ing.Nation] {
			return fmt.Errorf("ingredient %q: %w: %q", ing.Name, domain.ErrUnknownNation, ing.Nation)
		}
		if ing.Rarity == domain.RarityUnknown {
			return fmt.Errorf("ingredient %q: %w", ing.Name, domain.ErrInvalidRarity)
		}
	}
	for _, st := range c.Styles {
		for _, dt := range st.DishTypes {
			if !dt.Valid() {
				return fmt.Errorf("style %q: %w: %q", st.Name, domain.ErrInvalidDishType, dt)
			}
		}
	}
	return nil
}

func (s *Store) Catalog(_ context.Context) (domain.Catalog, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Catalog{}, s.err
	}
	return s.catalog, nil
}
