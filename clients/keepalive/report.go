package keepalive

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// Summary is the JSON body reported after a keep-alive run
type Summary struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Target       string `json:"target"`
	StatusCode   int    `json:"statusCode,omitempty"`
	ResponseTime int64  `json:"responseTime,omitempty"`
	Error        string `json:"error,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// Run pings baseURL once and reports the outcome in the shape a scheduled Lambda returns:
// 200 when the target answered with any status, 500 when it could not be reached.
func (p *Pinger) Run(ctx context.Context, baseURL string) events.APIGatewayProxyResponse {
	target := PingURL(baseURL)
	log.Printf("📋 Starting to ping %s", target)

	summary := Summary{Target: target}
	statusCode := http.StatusOK

	result, err := p.Ping(ctx, target)
	if err != nil {
		log.Printf("❌ Keep-alive ping failed: %v", err)
		statusCode = http.StatusInternalServerError
		summary.Message = "Keep-alive ping failed"
		summary.Error = err.Error()
	} else {
		log.Printf("📋 Completed successfully - %s answered %d in %dms", target, result.StatusCode, result.ResponseTime)
		summary.Success = true
		summary.Message = "Keep-alive ping successful"
		summary.StatusCode = result.StatusCode
		summary.ResponseTime = result.ResponseTime
	}
	summary.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(summary)
	if err != nil {
		log.Printf("❌ Failed to encode keep-alive summary: %v", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
