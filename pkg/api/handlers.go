package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/waltzrobotics/statebank/pkg/codec"
	"github.com/waltzrobotics/statebank/pkg/storage"
)

// handleHealth reports server liveness and the configured space
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Space:  s.space.Name(),
	})
}

// handleListArchives lists regular files in the data directory
func (s *Server) handleListArchives(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.config.DataDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	archives := []ArchiveSummary{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		archives = append(archives, ArchiveSummary{
			Name:      entry.Name(),
			SizeBytes: info.Size(),
		})
	}

	writeJSON(w, http.StatusOK, archives)
}

// handleArchiveInfo decodes and returns the header of one archive
func (s *Server) handleArchiveInfo(w http.ResponseWriter, r *http.Request) {
	path, name, ok := s.archivePath(w, r)
	if !ok {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		s.metrics.RecordArchiveRead("info", false)
		writeError(w, http.StatusNotFound, err)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		s.metrics.RecordArchiveRead("info", false)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	header, err := codec.InspectHeader(bufio.NewReader(f))
	if err != nil {
		s.metrics.RecordArchiveRead("info", false)
		writeError(w, statusForArchiveError(err), err)
		return
	}

	s.metrics.RecordArchiveRead("info", true)
	writeJSON(w, http.StatusOK, ArchiveInfo{
		Name:         name,
		Signature:    header.Signature,
		StateCount:   header.StateCount,
		MetadataSize: header.MetadataSize,
		SizeBytes:    stat.Size(),
	})
}

// handleArchiveStates loads an archive with the configured space and prints
// every state as one text line
func (s *Server) handleArchiveStates(w http.ResponseWriter, r *http.Request) {
	path, _, ok := s.archivePath(w, r)
	if !ok {
		return
	}

	store := storage.New(s.space)
	defer store.Clear()
	if err := store.LoadFile(path); err != nil {
		s.metrics.RecordArchiveRead("states", false)
		writeError(w, statusForArchiveError(err), err)
		return
	}

	var buf bytes.Buffer
	store.Print(&buf)

	s.metrics.RecordArchiveRead("states", true)
	s.metrics.RecordStatesServed(store.Len())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// archivePath resolves the {name} parameter inside the data directory,
// rejecting anything that could escape it
func (s *Server) archivePath(w http.ResponseWriter, r *http.Request) (path, name string, ok bool) {
	name = chi.URLParam(r, "name")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		writeError(w, http.StatusBadRequest, errors.New("invalid archive name"))
		return "", "", false
	}
	return filepath.Join(s.config.DataDir, name), name, true
}

// statusForArchiveError maps the codec error taxonomy to HTTP statuses
func statusForArchiveError(err error) int {
	switch {
	case errors.Is(err, codec.ErrUnavailable):
		return http.StatusNotFound
	case errors.Is(err, codec.ErrBadMagic),
		errors.Is(err, codec.ErrSignatureMismatch),
		errors.Is(err, codec.ErrTruncated):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
