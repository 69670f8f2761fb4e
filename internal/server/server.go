// Package server implements the dropletgen web front end.
//
// The front end accepts a CSV upload, runs the batch through the shared
// pipeline runner, and keeps the finished artifacts in an in-memory job
// store keyed by uuid. Each job exposes a gallery page, per-image
// downloads, and a zip archive of the whole result set. Job state lives
// on the Server value; there is no process-global mutable state.
package server

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sessilelab/dropletgen/pkg/batch"
	"github.com/sessilelab/dropletgen/pkg/errors"
	"github.com/sessilelab/dropletgen/pkg/pipeline"
)

// maxUploadBytes bounds the multipart CSV upload.
const maxUploadBytes = 4 << 20

// Job holds the outcome of one uploaded batch.
type Job struct {
	ID        string
	Images    map[string][]byte // file name -> PNG bytes
	Names     []string          // sorted file names, gallery order
	Skipped   []batch.RowError
	CreatedAt time.Time
}

// Server is the HTTP front end.
type Server struct {
	runner    *pipeline.Runner
	logger    *log.Logger
	outputDir string

	mu   sync.RWMutex
	jobs map[string]*Job
}

// Option configures the server.
type Option func(*Server)

// WithOutputDir also writes every generated image of a job into dir.
// Empty means in-memory only.
func WithOutputDir(dir string) Option {
	return func(s *Server) { s.outputDir = dir }
}

// New creates the front end around a shared pipeline runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
		jobs:   make(map[string]*Job),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router for the front end.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleIndex)
	r.Post("/jobs", s.handleCreateJob)
	r.Get("/jobs/{id}", s.handleGallery)
	r.Get("/jobs/{id}/images/{name}", s.handleImage)
	r.Get("/jobs/{id}/thumbs/{name}", s.handleThumb)
	r.Get("/jobs/{id}/archive.zip", s.handleArchive)

	return r
}

// createJob runs the batch and stores the result set under a new job id.
func (s *Server) createJob(r *http.Request, rows []batch.Row, badRows []batch.RowError, dir string) (*Job, error) {
	job := &Job{
		ID:        uuid.NewString(),
		Images:    make(map[string][]byte),
		Skipped:   badRows,
		CreatedAt: time.Now(),
	}

	var mu sync.Mutex
	sink := func(row batch.Row, result *pipeline.Result) error {
		mu.Lock()
		job.Images[result.Filename()] = result.PNG
		mu.Unlock()
		return nil
	}

	base := pipeline.Options{Logger: s.logger}
	report := batch.Run(r.Context(), s.runner, rows, base, 0, sink)
	job.Skipped = append(job.Skipped, report.Skipped...)

	job.Names = make([]string, 0, len(job.Images))
	for name := range job.Images {
		job.Names = append(job.Names, name)
	}
	sort.Strings(job.Names)

	if dir != "" {
		if err := s.writeJobDir(job, dir); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	s.logger.Info("job complete", "id", job.ID, "images", len(job.Names), "skipped", len(job.Skipped))
	return job, nil
}

// writeJobDir mirrors the job's images into a server-local directory.
// The directory must stay under the configured output root.
func (s *Server) writeJobDir(job *Job, dir string) error {
	if s.outputDir == "" {
		return errors.New(errors.ErrCodeConfiguration, "server has no output directory configured")
	}
	if err := errors.ValidateOutputName(dir); err != nil {
		return err
	}

	full := filepath.Join(s.outputDir, dir)
	if err := os.MkdirAll(full, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create job directory")
	}
	for name, data := range job.Images {
		if err := os.WriteFile(filepath.Join(full, name), data, 0644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
		}
	}
	return nil
}

// job looks up a stored job by id.
func (s *Server) job(id string) (*Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	return job, ok
}

// httpStatus maps an error code to an HTTP status.
func httpStatus(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidParameter, errors.ErrCodeParse, errors.ErrCodeConfiguration:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
