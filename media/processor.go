// Package media turns raw uploaded files into normalized media descriptors.
// Small images are downscaled and inlined as data URIs; videos and large
// files go to the remote object store. A failure with one file is captured
// on its descriptor and never aborts the batch.
package media

import (
	"bytes"
	"context"
	"image"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

const (
	// Files above this go to remote storage instead of being inlined.
	remoteThresholdBytes = 500 * 1024
	// Inlined payloads above this trigger the aggressive re-encode pass.
	inlineCeilingBytes = 400 * 1024

	firstPassEdge    = 800
	firstPassQuality = 80

	secondPassEdge    = 600
	secondPassQuality = 50
)

// File is a raw uploaded file handle.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Processor decides per file between client-side style compression and
// remote storage, and produces the normalized descriptor either way.
type Processor struct {
	storage ObjectStorage
	logger  zerolog.Logger
	now     func() time.Time
}

func NewProcessor(storage ObjectStorage, logger zerolog.Logger) *Processor {
	return &Processor{
		storage: storage,
		logger:  logger.With().Str("component", "mediaProcessor").Logger(),
		now:     time.Now,
	}
}

// ProcessBatch handles each file independently: N files in, N descriptors
// out, in order. One bad file never aborts the rest.
func (p *Processor) ProcessBatch(ctx context.Context, projectID string, files []File) []models.MediaDescriptor {
	descriptors := make([]models.MediaDescriptor, 0, len(files))
	for _, f := range files {
		descriptors = append(descriptors, p.Process(ctx, projectID, f))
	}
	return descriptors
}

// Process never fails: any error ends up in the descriptor's Error field.
func (p *Processor) Process(ctx context.Context, projectID string, f File) models.MediaDescriptor {
	desc := models.MediaDescriptor{
		Type:   mediaTypeOf(f.ContentType),
		Name:   f.Name,
		SizeKB: f.Size / 1024,
	}

	if desc.Type == models.MediaTypeVideo || f.Size > remoteThresholdBytes {
		return p.uploadRemote(ctx, projectID, f, desc)
	}
	return p.inlineSmall(f, desc)
}

func (p *Processor) uploadRemote(ctx context.Context, projectID string, f File, desc models.MediaDescriptor) models.MediaDescriptor {
	path := ObjectPath(projectID, f.Name, p.now())

	result, err := p.storage.Upload(ctx, path, f.Data, f.ContentType)
	if err != nil {
		p.logger.Warn().Err(err).Str("file", f.Name).Msg("media upload failed")
		desc.URL = ""
		desc.Error = ClassifyUploadError(err)
		desc.CanRetry = true
		return desc
	}

	desc.URL = result.URL
	desc.StoragePath = result.StoragePath
	return desc
}

func (p *Processor) inlineSmall(f File, desc models.MediaDescriptor) models.MediaDescriptor {
	img, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		// Not a decodable image: inline verbatim when it fits, otherwise
		// surface the failure instead of silently dropping the file.
		uri := rawDataURI(f.ContentType, f.Data)
		if len(uri) > inlineCeilingBytes {
			desc.Error = "File too large for direct storage"
			return desc
		}
		desc.URL = uri
		return desc
	}

	uri, err := encodeJPEGDataURI(downscale(img, firstPassEdge), firstPassQuality)
	if err != nil {
		p.logger.Warn().Err(err).Str("file", f.Name).Msg("media re-encode failed")
		desc.Error = "Storage not available"
		return desc
	}

	if len(uri) > inlineCeilingBytes {
		second, err := encodeJPEGDataURI(downscale(img, secondPassEdge), secondPassQuality)
		if err == nil && len(second) < len(uri) {
			uri = second
		}
	}

	desc.URL = uri
	return desc
}

// ClassifyUploadError maps known storage failure signatures onto the
// user-facing reasons the admin UI shows inline on the media item.
func ClassifyUploadError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "storage/unauthorized"):
		return "Storage access denied"
	case strings.Contains(msg, "CORS"):
		return "CORS error"
	default:
		return "Storage not available"
	}
}

func mediaTypeOf(contentType string) models.MediaType {
	if strings.HasPrefix(contentType, "video/") {
		return models.MediaTypeVideo
	}
	return models.MediaTypeImage
}
