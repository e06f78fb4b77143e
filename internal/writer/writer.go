// Package writer serializes generated collections into JSON artifacts.
package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"streamseo/internal/config"
	"streamseo/internal/logger"
	"streamseo/internal/models"
	"streamseo/pkg/stamp"
)

// Writer persists one run's artifacts into the output directory.
type Writer struct {
	cfg *config.OutputConfig
	log *logger.Logger
}

// New creates a writer over the given output configuration.
func New(cfg *config.OutputConfig, log *logger.Logger) *Writer {
	return &Writer{cfg: cfg, log: log}
}

// WriteAll serializes the metadata, sitemap and keywords artifacts, then a
// manifest fingerprinting each of them. It is only called after the whole
// set was generated, so a failed run leaves no partial output behind.
func (w *Writer) WriteAll(set *models.GeneratedSet) (*models.Manifest, error) {
	if err := os.MkdirAll(w.cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	manifest := &models.Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	artifacts := []struct {
		name string
		data any
	}{
		{w.cfg.MetadataFile, set.Metadata},
		{w.cfg.SitemapFile, set.Sitemap},
		{w.cfg.KeywordsFile, set.Keywords},
	}

	for _, artifact := range artifacts {
		st, err := w.writeArtifact(artifact.name, artifact.data)
		if err != nil {
			return nil, err
		}

		manifest.Artifacts = append(manifest.Artifacts, models.ManifestArtifact{
			Name:   artifact.name,
			SHA256: st.SHA256,
			Bytes:  st.Bytes,
		})
	}

	if _, err := w.writeArtifact(w.cfg.ManifestFile, manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}

// WriteSnapshot persists a raw catalogue snapshot (fetch command).
func (w *Writer) WriteSnapshot(snapshot *models.Snapshot, name string) error {
	return w.WriteDocument(snapshot, name)
}

// WriteDocument persists an arbitrary document under the output directory.
func (w *Writer) WriteDocument(doc any, name string) error {
	if err := os.MkdirAll(w.cfg.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	_, err := w.writeArtifact(name, doc)

	return err
}

func (w *Writer) writeArtifact(name string, data any) (stamp.Stamp, error) {
	payload, err := w.marshal(data)
	if err != nil {
		return stamp.Stamp{}, fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(w.cfg.Dir, name)

	if w.cfg.CreateBackup {
		w.backup(path)
	}

	if err := os.WriteFile(path, payload, 0644); err != nil {
		return stamp.Stamp{}, fmt.Errorf("failed to write %s: %w", name, err)
	}

	st := stamp.New(payload)

	w.log.Info("artifact written", "path", path, "bytes", st.Bytes, "sha256", st.SHA256[:12])

	return st, nil
}

func (w *Writer) marshal(data any) ([]byte, error) {
	if w.cfg.PrettyPrint {
		return json.MarshalIndent(data, "", "  ")
	}

	return json.Marshal(data)
}

func (w *Writer) backup(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}

	backupPath := path + ".bak"
	if err := os.Rename(path, backupPath); err != nil {
		w.log.Warn("could not create backup", "path", path, "error", err)

		return
	}

	w.log.Debug("backed up existing artifact", "path", backupPath)
}
