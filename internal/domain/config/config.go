package config

import (
	"gopkg.in/yaml.v3"
	"net/url"
	"os"
	domainerr "stanza/internal/domain/errors"
	"stanza/internal/permalink"
	"strings"
	"time"
)

type Config struct {
	Site  SiteConfig  `yaml:"site"`
	Build BuildConfig `yaml:"build"`
}

type SiteConfig struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Author      string `yaml:"author"`
	SiteURL     string `yaml:"site_url"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`

	Permalink         permalink.Style `yaml:"permalink"`
	ExtensionlessURLs bool            `yaml:"extensionless_urls"`
	Related           RelatedMode     `yaml:"related"`
}

// RelatedMode picks how related posts are chosen: "naive" takes the
// first few other posts in collection order, "similar" ranks them with
// the term index.
type RelatedMode string

const (
	RelatedNaive   RelatedMode = "naive"
	RelatedSimilar RelatedMode = "similar"
)

type BuildConfig struct {
	SourceDir          string    `yaml:"source_dir"`
	PublicDir          string    `yaml:"public_dir"`
	LayoutDir          string    `yaml:"layout_dir"`
	StaticDir          string    `yaml:"static_dir"`
	IncludeUnpublished bool      `yaml:"include_unpublished"`
	Now                time.Time `yaml:"-"`
}

func Default() Config {
	return Config{
		Site: SiteConfig{
			Title:     "Stanza",
			SiteURL:   "http://localhost:8080",
			Language:  "en",
			Permalink: permalink.StyleDate,
			Related:   RelatedNaive,
		},
		Build: BuildConfig{
			SourceDir: "posts",
			PublicDir: "public",
			LayoutDir: "layouts",
			StaticDir: "static",
			Now:       time.Now(),
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Site.Title) == "" {
		ve.Add("site.title", "must not be empty")
	}

	if strings.TrimSpace(c.Site.SiteURL) == "" {
		ve.Add("site.site_url", "must not be empty")
	} else if !isValidAbsURL(c.Site.SiteURL) {
		ve.Add("site.site_url", "must be a valid absolute URL")
	}

	switch c.Site.Related {
	case "", RelatedNaive, RelatedSimilar:
	default:
		ve.Add("site.related", "must be 'naive' or 'similar'")
	}

	// any other permalink value is a custom template, so only the
	// obviously broken case is rejected
	if s := string(c.Site.Permalink); s != "" {
		switch c.Site.Permalink {
		case permalink.StylePretty, permalink.StyleNone, permalink.StyleDate:
		default:
			if !strings.HasPrefix(s, "/") {
				ve.Add("site.permalink", "custom template must start with '/'")
			}
		}
	}

	if strings.TrimSpace(c.Build.SourceDir) == "" {
		ve.Add("build.source_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.PublicDir) == "" {
		ve.Add("build.public_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.LayoutDir) == "" {
		ve.Add("build.layout_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.StaticDir) == "" {
		ve.Add("build.static_dir", "must not be empty")
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func isValidAbsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// unmarshal straight over the defaults: keys present in the file
	// override, everything else keeps its Default value
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if cfg.Build.Now.IsZero() {
		cfg.Build.Now = time.Now()
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but a missing file is not an error;
// the defaults are used instead.
func LoadOrDefault(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := cfg.Validate(); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Build.Now.IsZero() {
		cfg.Build.Now = time.Now()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
