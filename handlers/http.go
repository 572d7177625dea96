package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"linearbot/appctx"
	"linearbot/models"
	"linearbot/usecases"
	issuesusecase "linearbot/usecases/issues"
)

const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// ReadinessChecker reports whether the Discord gateway session is connected
type ReadinessChecker interface {
	IsReady() bool
}

type HTTPHandler struct {
	bot           ReadinessChecker
	issuesUseCase usecases.IssuesUseCaseInterface
	startTime     time.Time
	now           func() time.Time
}

func NewHTTPHandler(bot ReadinessChecker, issuesUseCase usecases.IssuesUseCaseInterface, startTime time.Time) *HTTPHandler {
	return &HTTPHandler{
		bot:           bot,
		issuesUseCase: issuesUseCase,
		startTime:     startTime,
		now:           time.Now,
	}
}

type statusResponse struct {
	Status    string  `json:"status"`
	BotStatus string  `json:"botStatus"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
	Message   string  `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
	Bot    string `json:"bot"`
	Uptime int64  `json:"uptime"`
}

type degradedResponse struct {
	Status  string `json:"status"`
	Bot     string `json:"bot"`
	Message string `json:"message"`
}

type pingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	BotStatus string `json:"botStatus"`
}

func (h *HTTPHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/", h.HandleStatus).Methods("GET")
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")
	router.HandleFunc("/ping", h.HandlePing).Methods("GET")
	router.HandleFunc("/api/create-issue", h.HandleCreateIssue).Methods("POST")
	log.Printf("🚀 HTTP endpoints registered: GET /, GET /health, GET /ping, POST /api/create-issue")
}

func (h *HTTPHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	h.writeJSONResponse(w, http.StatusOK, statusResponse{
		Status:    "healthy",
		BotStatus: h.botStatus(),
		Uptime:    now.Sub(h.startTime).Seconds(),
		Timestamp: now.UTC().Format(timestampFormat),
		Message:   "Discord Issue Bot is running!",
	})
}

func (h *HTTPHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if !h.bot.IsReady() {
		h.writeJSONResponse(w, http.StatusServiceUnavailable, degradedResponse{
			Status:  "degraded",
			Bot:     "offline",
			Message: "Discord bot is not ready",
		})
		return
	}

	h.writeJSONResponse(w, http.StatusOK, healthResponse{
		Status: "healthy",
		Bot:    "online",
		Uptime: int64(h.now().Sub(h.startTime).Seconds()),
	})
}

func (h *HTTPHandler) HandlePing(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, pingResponse{
		Message:   "pong",
		Timestamp: h.now().UTC().Format(timestampFormat),
		BotStatus: h.botStatus(),
	})
}

func (h *HTTPHandler) HandleCreateIssue(w http.ResponseWriter, r *http.Request) {
	requestID := appctx.GetEventID(r.Context())
	log.Printf("📋 [%s] Create issue request received from %s", requestID, r.RemoteAddr)

	var req models.CreateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [%s] Failed to decode create issue request: %v", requestID, err)
		h.writeJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	issue, err := h.issuesUseCase.CreateIssueFromRequest(r.Context(), req)
	if err != nil {
		if errors.Is(err, issuesusecase.ErrMissingRequiredFields) {
			h.writeJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}

		log.Printf("❌ [%s] Failed to create issue: %v", requestID, err)
		success := false
		h.writeJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   err.Error(),
			Success: &success,
		})
		return
	}

	log.Printf("📋 [%s] Completed successfully - created issue %s", requestID, issue.Identifier)
	h.writeJSONResponse(w, http.StatusOK, models.CreateIssueResponse{
		Success: true,
		Issue:   issue,
		Message: fmt.Sprintf("이슈가 성공적으로 생성되었습니다: %s", issue.Identifier),
	})
}

func (h *HTTPHandler) botStatus() string {
	if h.bot.IsReady() {
		return "online"
	}
	return "offline"
}

func (h *HTTPHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
	}
}
