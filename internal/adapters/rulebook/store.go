// Package rulebook loads naming, description and lore rule pools from YAML.
package rulebook

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

//go:embed data/*.yaml
var ruleFS embed.FS

// Pool file names inside the rules directory.
const (
	NamingFile      = "naming.yaml"
	DescriptionFile = "description.yaml"
	LoreFile        = "lore.yaml"
)

// entry is the YAML shape shared by all three pools.
type entry struct {
	ID        string           `yaml:"id"`
	Weighting domain.Weighting `yaml:"weighting"`
	When      string           `yaml:"when"`
	Title     string           `yaml:"title"`
	Flavor    string           `yaml:"flavor"`
	Text      string           `yaml:"text"`
}

// Store loads rule pools once, from the embedded defaults or a directory.
type Store struct {
	fsys   fs.FS
	logger *slog.Logger

	once        sync.Once
	naming      []domain.NamingRule
	description []domain.DescriptionRule
	lore        []domain.LoreEntry
	err         error
}

// NewEmbeddedStore serves the rule pools compiled into the binary.
func NewEmbeddedStore(logger *slog.Logger) *Store {
	sub, err := fs.Sub(ruleFS, "data")
	if err != nil {
		panic(err) // embed pattern guarantees the directory
	}
	return NewStore(sub, logger)
}

// NewDirStore serves rule pools from dir, which must hold the three files.
func NewDirStore(dir string, logger *slog.Logger) *Store {
	return NewStore(os.DirFS(dir), logger)
}

func NewStore(fsys fs.FS, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{fsys: fsys, logger: logger}
}

// Load parses and validates every pool. Later calls return the first result.
func (s *Store) Load() error {
	s.once.Do(s.init)
	return s.err
}

func (s *Store) init() {
	naming, err := s.readPool(NamingFile)
	if err != nil {
		s.err = err
		return
	}
	description, err := s.readPool(DescriptionFile)
	if err != nil {
		s.err = err
		return
	}
	lore, err := s.readPool(LoreFile)
	if err != nil {
		s.err = err
		return
	}

	var errs []error
	for _, e := range naming {
		if e.Title == "" {
			errs = append(errs, fmt.Errorf("%s: rule %q has no title", NamingFile, e.ID))
			continue
		}
		r := domain.NamingRule{ID: e.ID, Weighting: e.Weighting, Title: domain.TemplateText(e.Title)}
		if e.Flavor != "" {
			r.Flavor = domain.TemplateText(e.Flavor)
		}
		s.naming = append(s.naming, r)
	}
	for _, e := range description {
		if e.Text == "" {
			errs = append(errs, fmt.Errorf("%s: rule %q has no text", DescriptionFile, e.ID))
			continue
		}
		s.description = append(s.description, domain.DescriptionRule{ID: e.ID, Weighting: e.Weighting, Text: domain.TemplateText(e.Text)})
	}
	for _, e := range lore {
		if e.Text == "" {
			errs = append(errs, fmt.Errorf("%s: entry %q has no text", LoreFile, e.ID))
			continue
		}
		l := domain.LoreEntry{ID: e.ID, Weighting: e.Weighting, Text: domain.TemplateText(e.Text)}
		if e.Title != "" {
			l.Title = domain.TemplateText(e.Title)
		}
		s.lore = append(s.lore, l)
	}
	s.err = errors.Join(errs...)
	if s.err == nil {
		s.logger.Debug("rule pools loaded", "naming", len(s.naming), "description", len(s.description), "lore", len(s.lore))
	}
}

// readPool decodes one file and validates ids, templates, enums and
// conditions. Conditions are compiled into the entry's weighting.
func (s *Store) readPool(name string) ([]entry, error) {
	raw, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read rule pool %s: %w", name, err)
	}
	var entries []entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse rule pool %s: %w", name, err)
	}

	var errs []error
	seen := make(map[string]bool, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("%s: entry %d has no id", name, i))
			continue
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", name, e.ID))
		}
		seen[e.ID] = true

		for _, tpl := range []string{e.Title, e.Flavor, e.Text} {
			if err := domain.CheckTemplate(tpl); err != nil {
				errs = append(errs, fmt.Errorf("%s: %q: %w", name, e.ID, err))
			}
		}
		for _, dt := range e.Weighting.DishTypes {
			if !dt.Valid() {
				errs = append(errs, fmt.Errorf("%s: %q: %w: %q", name, e.ID, domain.ErrInvalidDishType, dt))
			}
		}
		for _, th := range e.Weighting.Themes {
			if !slices.Contains(domain.Themes, th) {
				errs = append(errs, fmt.Errorf("%s: %q: %w: %q", name, e.ID, domain.ErrInvalidTheme, th))
			}
		}
		if e.When != "" {
			cond, err := compileCondition(e.ID, e.When, s.logger)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				continue
			}
			e.Weighting.Condition = cond
		}
	}
	return entries, errors.Join(errs...)
}

func (s *Store) NamingRules(_ context.Context) ([]domain.NamingRule, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s.naming, nil
}

func (s *Store) DescriptionRules(_ context.Context) ([]domain.DescriptionRule, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s.description, nil
}

func (s *Store) LoreEntries(_ context.Context) ([]domain.LoreEntry, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s.lore, nil
}
