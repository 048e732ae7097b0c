package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/RedPaladin7/pokerhands/poker"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	MessageDealt           = "Poker hand dealt successfully"
	MessageEvaluated       = "Poker hand evaluated successfully"
	MessagePlayerNameEmpty = "Player name received was empty. Please enter a player name to add"
	MessageInternalError   = "An error occurred while processing your request"
)

// GenericResponse is the envelope every endpoint answers with.
type GenericResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func newSuccessResponse(message string, data any) GenericResponse {
	return GenericResponse{Status: http.StatusOK, Success: true, Message: message, Data: data}
}

func newErrorResponse(status int, message string) GenericResponse {
	return GenericResponse{Status: status, Message: message}
}

type apiError struct {
	status  int
	message string
	err     error
}

func (e *apiError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.message
}

func (e *apiError) Unwrap() error { return e.err }

type apiFunc func(w http.ResponseWriter, r *http.Request) error

func makeHTTPHandlerFunc(f apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			resp := errorResponse(err)
			entry := logrus.WithFields(logrus.Fields{
				"path":   r.URL.Path,
				"status": resp.Status,
			})
			if resp.Status >= http.StatusInternalServerError {
				entry.Errorf("request failed: %s", err)
			} else {
				entry.Warnf("request rejected: %s", err)
			}
			writeEnvelope(w, resp)
		}
	}
}

// errorResponse maps a handler error onto a client or server failure.
// Only client failures echo the error text back.
func errorResponse(err error) GenericResponse {
	var ae *apiError
	if errors.As(err, &ae) {
		return newErrorResponse(ae.status, ae.message)
	}
	switch {
	case errors.Is(err, poker.ErrEmptyPlayerList), errors.Is(err, poker.ErrInvalidPlayerName):
		return newErrorResponse(http.StatusBadRequest, MessagePlayerNameEmpty)
	case errors.Is(err, poker.ErrInsufficientDeck),
		errors.Is(err, poker.ErrInvalidHandSize),
		errors.Is(err, poker.ErrInvalidCard):
		return newErrorResponse(http.StatusBadRequest, err.Error())
	default:
		return newErrorResponse(http.StatusInternalServerError, MessageInternalError)
	}
}

func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeEnvelope(w http.ResponseWriter, resp GenericResponse) {
	if err := JSON(w, resp.Status, resp); err != nil {
		logrus.Errorf("failed to write response: %s", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("handled request")
	})
}

// ParsePlayerNames splits a comma separated list, trimming each name and
// dropping empty entries.
func ParsePlayerNames(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (s *Server) handleDealPlayers(w http.ResponseWriter, r *http.Request) error {
	names := ParsePlayerNames(mux.Vars(r)["playerNames"])
	if len(names) == 0 {
		return &apiError{status: http.StatusBadRequest, message: MessagePlayerNameEmpty}
	}

	round, err := poker.NewRound(names, s.roundOptions()...)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"round":   round.ID,
		"players": len(round.Players),
		"winners": round.WinnerNames(),
	}).Info("dealt round")

	w.Header().Set("X-Round-ID", round.ID.String())
	w.Header().Set("X-Round-Seed", strconv.FormatUint(round.Seed, 10))
	return JSON(w, http.StatusOK, newSuccessResponse(MessageDealt, round.Players))
}

type EvaluateRequest struct {
	Cards []string `json:"cards"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) error {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &apiError{
			status:  http.StatusBadRequest,
			message: fmt.Sprintf("invalid request body: %s", err),
			err:     err,
		}
	}
	cards, err := poker.ParseCards(req.Cards)
	if err != nil {
		return err
	}
	hand := &poker.Hand{Cards: cards}
	if err := poker.EvaluateHand(hand); err != nil {
		return err
	}
	return JSON(w, http.StatusOK, newSuccessResponse(MessageEvaluated, hand))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) error {
	return JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": s.Version,
	})
}
