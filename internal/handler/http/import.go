package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/handler/http/response"
)

type ImportHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService session.ImportService
}

func NewImportHandler(importService session.ImportService) ImportHandler {
	return &importHandlerImpl{
		importService: importService,
	}
}

// Import implements ImportHandler.
func (h *importHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			response.HandleError(w, session.ErrNoFile)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload")
		return
	}
	defer file.Close()

	result, err := h.importService.Import(r.Context(), fileHeader.Filename, file)
	if err != nil {
		slog.Error("Failed to import sessions", "error", err, "file", fileHeader.Filename)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sessions imported successfully", result)
}
