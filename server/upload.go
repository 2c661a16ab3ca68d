package server

import (
	"bytes"
	"errors"
	"image"
	"io"
	"net/http"
	"os"
	"time"

	// Decoders for the container dimension fallback.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/bradfitz/latlong"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	exif "github.com/soypat/exifmeta"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const uploadField = "image"

// uploadInfo is the summary of an uploaded image returned to the client.
type uploadInfo struct {
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	SizeBytes    int64     `json:"sizeBytes"`
	Width        *int      `json:"width"`
	Height       *int      `json:"height"`
	GPS          *exif.GPS `json:"gps"`
	CapturedAt   *string   `json:"capturedAt"`
	// TimeZone is the IANA zone of the GPS position.
	TimeZone *string `json:"timeZone,omitempty"`
}

type uploadResponse struct {
	OK      bool                  `json:"ok"`
	Info    uploadInfo            `json:"info"`
	RawExif map[string]exif.Value `json:"rawExif"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	log := logEntry(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	file, hdr, err := r.FormFile(uploadField)
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "File too large"})
		return
	case err != nil:
		log.WithError(err).Debug("no upload in request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No file"})
		return
	}
	defer file.Close()

	data, err := s.spool(file)
	if err != nil {
		log.WithError(err).Error("storing upload")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Upload failed"})
		return
	}

	res := exif.Extract(data)
	if res.Warnings != nil {
		log.WithError(res.Warnings).Debug("exif entries skipped")
	}
	md := res.Metadata
	info := uploadInfo{
		OriginalName: hdr.Filename,
		MimeType:     hdr.Header.Get("Content-Type"),
		SizeBytes:    int64(len(data)),
		Width:        md.Width,
		Height:       md.Height,
		GPS:          md.GPS,
		CapturedAt:   md.CapturedAt,
	}
	if info.MimeType == "" || info.MimeType == "application/octet-stream" {
		info.MimeType = http.DetectContentType(data)
	}
	if info.Width == nil || info.Height == nil {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			if info.Width == nil && cfg.Width > 0 {
				info.Width = &cfg.Width
			}
			if info.Height == nil && cfg.Height > 0 {
				info.Height = &cfg.Height
			}
		}
	}
	if md.GPS != nil {
		if tz := latlong.LookupZoneName(md.GPS.Lat, md.GPS.Lon); tz != "" {
			info.TimeZone = &tz
		}
	}

	s.recent.add(uploadSummary{
		RequestID:    w.Header().Get("X-Request-Id"),
		User:         requestUser(r).Username,
		OriginalName: info.OriginalName,
		SizeBytes:    info.SizeBytes,
		Format:       string(res.Format),
		HasEXIF:      len(res.Tags) > 0,
		HasGPS:       md.GPS != nil,
		At:           time.Now(),
	})
	log.WithFields(logrus.Fields{
		"name":   info.OriginalName,
		"size":   humanize.Bytes(uint64(info.SizeBytes)),
		"format": res.Format,
		"tags":   len(res.Tags),
		"gps":    md.GPS != nil,
	}).Info("image processed")

	writeJSON(w, http.StatusOK, uploadResponse{OK: true, Info: info, RawExif: res.Tags.Named()})
}

// spool writes the upload to a temporary file in the upload directory and
// reads it back. The file is removed before spool returns.
func (s *Server) spool(src io.Reader) (data []byte, err error) {
	tmp, err := os.CreateTemp(s.cfg.UploadDir, "upload-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		tmp.Close()
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && err == nil {
			err = rmErr
		}
	}()
	if _, err := io.Copy(tmp, src); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(tmp)
}
