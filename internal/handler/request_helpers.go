package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/osse101/CarPacks_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error, the 400 response has already been written.
//
// Example usage:
//
//	var req OpenPackRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Open pack"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty request body")
		}
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, ErrMsgInvalidRequestBody)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   CodeInvalidRequest,
			Message: ErrMsgInvalidRequest,
			Fields:  FormatValidationError(err),
		})
		return err
	}

	return nil
}
