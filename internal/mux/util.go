package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"unoroom-server/pkg/room"
	"unoroom-server/pkg/uno"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// errorStatuses maps the errors the room registry returns to HTTP statuses
var errorStatuses = []struct {
	err        error
	statusCode int
}{
	{room.ErrRoomNotFound, http.StatusNotFound},
	{room.ErrNotAMember, http.StatusForbidden},
	{room.ErrNotHost, http.StatusForbidden},
	{uno.ErrNotYourTurn, http.StatusForbidden},
	{room.ErrWrongPhase, http.StatusConflict},
	{room.ErrRoomFull, http.StatusConflict},
	{uno.ErrGameIsOver, http.StatusConflict},
	{room.ErrNameRequired, http.StatusBadRequest},
	{errMissingField, http.StatusBadRequest},
	{room.ErrInvalidContent, http.StatusBadRequest},
	{uno.ErrNotEnoughPlayers, http.StatusBadRequest},
	{uno.ErrCardNotInHand, http.StatusBadRequest},
	{uno.ErrIllegalPlay, http.StatusBadRequest},
	{uno.ErrInvalidColorChoice, http.StatusBadRequest},
}

// statusCodeFor returns the HTTP status for err, anything unknown is a 500
func statusCodeFor(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.statusCode
		}
	}

	return http.StatusInternalServerError
}

func writeRoomError(w http.ResponseWriter, err error) {
	writeJSONError(w, statusCodeFor(err), err)
}
