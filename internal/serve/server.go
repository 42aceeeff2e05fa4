package serve

import (
	"context"
	"github.com/fsnotify/fsnotify"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"stanza/internal/build"
	"stanza/internal/domain/config"
	"sync"
	"time"
)

// Server is the preview loop: build once, watch the source and layout
// trees, rebuild on change and serve the public directory over HTTP.
type Server struct {
	cfg     config.Config
	builder *build.Builder

	watcher   *fsnotify.Watcher
	watchOnce sync.Once
}

func New(cfg config.Config, indexPath string) *Server {
	return &Server{
		cfg:     cfg,
		builder: &build.Builder{Cfg: cfg, IndexPath: indexPath},
	}
}

func (s *Server) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := s.rebuild(ctx); err != nil {
		return err
	}

	if err := s.startWatch(ctx); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleFile)

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	log.Printf("[serve] listening on %s", addr)
	return srv.ListenAndServe()
}

func (s *Server) rebuild(ctx context.Context) error {
	res, err := s.builder.Run(ctx)
	if err != nil {
		return err
	}
	log.Printf("[serve] rebuild complete, %d posts", res.Posts)
	return nil
}

func (s *Server) startWatch(ctx context.Context) error {
	var err error
	s.watchOnce.Do(func() {
		w, e := fsnotify.NewWatcher()
		if e != nil {
			err = e
			return
		}
		s.watcher = w

		go s.watchLoop(ctx)

		for _, dir := range []string{s.cfg.Build.SourceDir, s.cfg.Build.LayoutDir} {
			walkErr := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() {
					return w.Add(path)
				}
				return nil
			})
			// a missing layout dir just means nothing to watch there
			if walkErr != nil && !os.IsNotExist(walkErr) {
				err = walkErr
				return
			}
		}
	})
	return err
}

func (s *Server) watchLoop(ctx context.Context) {
	log.Printf("[serve] watching for file changes ...")
	debounce := time.NewTicker(time.Hour)
	debounce.Stop()

	trigger := func() {
		select {
		case <-debounce.C:
		default:
		}
		debounce.Reset(200 * time.Millisecond)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				trigger()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[warn] watcher error: %v", err)
		case <-debounce.C:
			ctx2, cancel := context.WithTimeout(ctx, 10*time.Second)
			if err := s.rebuild(ctx2); err != nil {
				log.Printf("[serve] rebuild error: %v", err)
			}
			cancel()
		}
	}
}

// handleFile resolves a request against the public directory the way
// extensionless permalinks expect: the path itself, then path.html,
// then path/index.html.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	rel := path.Clean("/" + r.URL.Path)
	if rel == "/" {
		rel = "/index.html"
	}

	base := filepath.Join(s.cfg.Build.PublicDir, filepath.FromSlash(rel))
	for _, cand := range []string{base, base + ".html", filepath.Join(base, "index.html")} {
		info, err := os.Stat(cand)
		if err != nil || info.IsDir() {
			continue
		}
		http.ServeFile(w, r, cand)
		return
	}
	s.notFound(w, r)
}

// notFound answers with the built 404 page when the site has one.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(filepath.Join(s.cfg.Build.PublicDir, "404.html"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(data)
}
