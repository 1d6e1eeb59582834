// Package controllers maps HTTP requests onto the service layer: decode and
// scrub the body, call the service, translate the result into the JSON
// envelope.
package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/shashiranjanraj/shallerhub/app/services"
	"github.com/shashiranjanraj/shallerhub/pkg/middleware"
	"github.com/shashiranjanraj/shallerhub/pkg/response"
)

// maxImageBytes caps multipart image uploads at 8 MB.
const maxImageBytes = 8 << 20

// respondErr translates service errors into the envelope. Anything outside
// the sentinel taxonomy becomes a 500 with the message passed through.
func respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, services.ErrConflict):
		response.BadRequest(w, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		response.BadRequest(w, err.Error())
	case errors.Is(err, services.ErrInvalidWorkingStatus):
		response.ValidationError(w, map[string]string{"workingStatus": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, services.ErrOTPInvalid), errors.Is(err, services.ErrOTPExpired):
		response.BadRequest(w, err.Error())
	case errors.Is(err, services.ErrNotVerified):
		response.BadRequest(w, err.Error())
	case errors.Is(err, services.ErrUploadFailed):
		response.ServerError(w, err.Error())
	default:
		response.ServerError(w, err.Error())
	}
}

// subjectID returns the authenticated subject's id or writes a 401.
func subjectID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w, "")
		return "", false
	}
	return id, true
}

// formImage pulls the optional "image" file out of a multipart request.
// Returns nil when the request carries no image.
func formImage(r *http.Request) (*services.ImageUpload, error) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return nil, err
	}
	return &services.ImageUpload{Filename: header.Filename, Content: content}, nil
}
