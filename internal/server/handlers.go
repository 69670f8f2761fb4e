package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sessilelab/dropletgen/pkg/batch"
	"github.com/sessilelab/dropletgen/pkg/errors"
	"github.com/sessilelab/dropletgen/pkg/render"
)

// thumbWidth is the gallery thumbnail width in pixels.
const thumbWidth = 200

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		s.logger.Error("render index", "err", err)
	}
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.httpError(w, errors.Wrap(errors.ErrCodeParse, err, "parse upload"))
		return
	}

	file, _, err := r.FormFile("csv")
	if err != nil {
		s.httpError(w, errors.New(errors.ErrCodeParse, "missing csv file field"))
		return
	}
	defer file.Close()

	rows, badRows, err := batch.Parse(file)
	if err != nil {
		s.httpError(w, err)
		return
	}
	if len(rows) == 0 && len(badRows) == 0 {
		s.httpError(w, errors.New(errors.ErrCodeParse, "CSV contains no rows"))
		return
	}

	job, err := s.createJob(r, rows, badRows, r.FormValue("dir"))
	if err != nil {
		s.httpError(w, err)
		return
	}

	http.Redirect(w, r, "/jobs/"+job.ID, http.StatusSeeOther)
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	job, ok := s.job(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := galleryTemplate.Execute(w, job); err != nil {
		s.logger.Error("render gallery", "err", err)
	}
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	job, ok := s.job(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	data, ok := job.Images[chi.URLParam(r, "name")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func (s *Server) handleThumb(w http.ResponseWriter, r *http.Request) {
	job, ok := s.job(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	data, ok := job.Images[chi.URLParam(r, "name")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	img, err := render.DecodePNG(data)
	if err != nil {
		s.httpError(w, errors.Wrap(errors.ErrCodeInternal, err, "decode artifact"))
		return
	}
	thumb, err := render.EncodePNG(render.Thumbnail(img, thumbWidth))
	if err != nil {
		s.httpError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode thumbnail"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(thumb)
}

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	job, ok := s.job(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := render.Bundle(job.Images)
	if err != nil {
		s.httpError(w, errors.Wrap(errors.ErrCodeInternal, err, "bundle archive"))
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="droplets_`+job.ID+`.zip"`)
	_, _ = w.Write(data)
}

// httpError logs the error and writes the user-facing message.
func (s *Server) httpError(w http.ResponseWriter, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	} else {
		s.logger.Debug("request rejected", "err", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}
