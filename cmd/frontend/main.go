package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"calculator-frontend/internal/client"
	"calculator-frontend/internal/config"
	"calculator-frontend/internal/console"
	"calculator-frontend/internal/frontend"

	"github.com/jonboulle/clockwork"
)

func waitForAPI(ctx context.Context, baseURL string, timeout time.Duration) bool {
	start := time.Now()
	for {
		if time.Since(start) > timeout {
			return false
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/v1/expressions", nil)
		if err != nil {
			return false
		}
		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			resp.Body.Close()
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(500 * time.Millisecond):
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Ожидание API калькулятора на %s...\n", cfg.APIURL)
	if !waitForAPI(ctx, cfg.APIURL, cfg.APIWaitTimeout) {
		log.Printf("Warning: calculator API at %s is not responding, continuing anyway", cfg.APIURL)
	}

	screen := console.NewScreen(os.Stdout)
	field := &console.Field{}
	ui := frontend.New(client.New(cfg.APIURL, nil), screen, screen, field)

	poller := frontend.NewPoller(ui, clockwork.NewRealClock(), cfg.PollInterval)
	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Run(ctx)
	}()

	go func() {
		readCommands(ctx, os.Stdin, ui, field)
		stop()
	}()

	fmt.Println("Введите выражение (:show <id>, :refresh, :quit):")
	<-done
	fmt.Println("Завершение работы.")
}

func readCommands(ctx context.Context, in io.Reader, ui *frontend.Frontend, field *console.Field) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		cmd := strings.TrimSpace(line)

		switch {
		case cmd == ":quit":
			return
		case cmd == ":refresh":
			ui.Refresh(ctx)
		case strings.HasPrefix(cmd, ":show"):
			ui.Show(ctx, strings.TrimPrefix(cmd, ":show"))
		default:
			field.Set(line)
			ui.Submit(ctx)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Error reading input: %v", err)
	}
}
