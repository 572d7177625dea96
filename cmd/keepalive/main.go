package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jessevdk/go-flags"

	"linearbot/clients/keepalive"
)

type Options struct {
	URL      string        `short:"u" long:"url" env:"RENDER_URL" default:"https://onsurvey-discord-bot.onrender.com" description:"Base URL of the deployed bot; /ping is appended"`
	Timeout  time.Duration `short:"t" long:"timeout" default:"30s" description:"Request timeout"`
	Interval time.Duration `short:"i" long:"interval" default:"0" description:"Ping repeatedly at this interval; 0 pings once and exits"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pinger := keepalive.NewPinger(opts.Timeout)

	// Scheduled invocations (e.g. EventBridge every 5 minutes) land here
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		lambda.Start(func(ctx context.Context, event events.CloudWatchEvent) (events.APIGatewayProxyResponse, error) {
			log.Printf("⏰ Keep-alive triggered by %s", event.Source)
			return pinger.Run(ctx, opts.URL), nil
		})
		return
	}

	if err := run(pinger, opts); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run(pinger *keepalive.Pinger, opts Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Interval <= 0 {
		response := pinger.Run(ctx, opts.URL)
		fmt.Println(response.Body)
		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("keep-alive ping to %s failed", keepalive.PingURL(opts.URL))
		}
		return nil
	}

	log.Printf("🔄 Pinging %s every %s", keepalive.PingURL(opts.URL), opts.Interval)
	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		pinger.Run(ctx, opts.URL)

		select {
		case <-ctx.Done():
			log.Printf("🛑 Keep-alive stopped")
			return nil
		case <-ticker.C:
		}
	}
}
