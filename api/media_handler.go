package api

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/media"
)

// Multipart uploads are capped well above the per-file remote threshold so a
// batch of videos still fits.
const maxUploadBytes = 256 * 1024 * 1024

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	processor *media.Processor
}

func newMediaHandler(processor *media.Processor) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		processor: processor,
	}
}

// uploadMedia accepts a multipart batch under the "files" field and returns
// one descriptor per file, in order. Files that fail come back as error
// descriptors instead of failing the request.
func (h mediaHandler) uploadMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			h.logger.Error().Err(err).Msg("Failed to parse multipart form")
			h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadBytes))
			return
		}

		fileHeaders := r.MultipartForm.File["files"]
		if len(fileHeaders) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("files"))
			return
		}

		files := make([]media.File, 0, len(fileHeaders))
		for _, fh := range fileHeaders {
			f, err := fh.Open()
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("unreadable file: "+fh.Filename))
				return
			}

			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("unreadable file: "+fh.Filename))
				return
			}

			files = append(files, media.File{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Data:        data,
			})
		}

		descriptors := h.processor.ProcessBatch(r.Context(), projectID, files)
		h.responder.WriteJSON(w, map[string]any{
			"media": descriptors,
		})
	}
}
