// Command hlx-client is an interactive HLX controller.
//
// This command demonstrates a complete HLX controller with:
//   - mDNS amplifier discovery
//   - Interactive command shell with readline editing
//   - Live notification display as other controllers mutate state
//   - Mirror repository inspection
//
// Usage:
//
//	hlx-client [flags]
//
// Flags:
//
//	-addr string       Amplifier address (host:port)
//	-discover          Discover amplifiers with mDNS instead of -addr
//	-name string       Connect to the named amplifier found with mDNS
//	-timeout duration  Request timeout (default 5s)
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-log-file string   Protocol event log path (CBOR, rotated)
//
// Examples:
//
//	# Connect to a simulator on a non-privileged port
//	hlx-client -addr 127.0.0.1:8023
//
//	# List amplifiers on the local network
//	hlx-client -discover
//
//	# Connect to a named amplifier found with mDNS
//	hlx-client -name "Main Floor"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hlx-protocol/hlx-go/pkg/discovery"
	hlxlog "github.com/hlx-protocol/hlx-go/pkg/log"
	"github.com/hlx-protocol/hlx-go/pkg/service"
)

// Config holds the controller configuration.
type Config struct {
	Address  string
	Discover bool
	Name     string
	Timeout  time.Duration
	LogLevel string
	LogFile  string
}

var config Config

func init() {
	flag.StringVar(&config.Address, "addr", "", "Amplifier address (host:port)")
	flag.BoolVar(&config.Discover, "discover", false, "Discover amplifiers with mDNS instead of -addr")
	flag.StringVar(&config.Name, "name", "", "Connect to the named amplifier found with mDNS")
	flag.DurationVar(&config.Timeout, "timeout", 5*time.Second, "Request timeout")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.LogFile, "log-file", "", "Protocol event log path (CBOR, rotated)")
}

func main() {
	flag.Parse()

	log.SetFlags(log.Ltime)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if config.Discover {
		runDiscovery(ctx)
		return
	}

	address := config.Address
	if address == "" && config.Name != "" {
		found, err := findByName(ctx, config.Name)
		if err != nil {
			log.Fatalf("Discovery failed: %v", err)
		}
		address = found
	}
	if address == "" {
		fmt.Fprintln(os.Stderr, "Either -addr, -name or -discover is required")
		flag.Usage()
		os.Exit(2)
	}

	logger, closeLogger := buildProtocolLogger()
	defer closeLogger()

	clientConfig := service.DefaultClientConfig()
	clientConfig.RequestTimeout = config.Timeout
	clientConfig.Logger = logger

	client := service.NewClient(clientConfig)

	log.Printf("Connecting to %s...", address)
	connectCtx, connectCancel := context.WithTimeout(ctx, config.Timeout)
	err := client.Connect(connectCtx, address)
	connectCancel()
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer client.Close()

	log.Printf("Connected (client id %d)", client.PeerID())

	shell, err := NewShell(client)
	if err != nil {
		log.Fatalf("Failed to create shell: %v", err)
	}
	shell.Run(ctx, cancel)
}

// runDiscovery lists every amplifier heard within the browse window.
func runDiscovery(ctx context.Context) {
	fmt.Println("Browsing for amplifiers (5s)...")

	browseCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	browser := discovery.NewBrowser(discovery.DefaultBrowserConfig())
	services, err := browser.Browse(browseCtx)
	if err != nil {
		log.Fatalf("Browse failed: %v", err)
	}

	count := 0
	for svc := range services {
		count++
		fmt.Printf("  %d. %s\n", count, svc.InstanceName)
		fmt.Printf("     Model:    %s (%d zones, firmware %s)\n", svc.Model, svc.Zones, svc.Firmware)
		fmt.Printf("     Address:  %s\n", svc.Address())
	}
	if count == 0 {
		fmt.Println("No amplifiers found")
	}
}

// findByName resolves an instance name to host:port via mDNS.
func findByName(ctx context.Context, name string) (string, error) {
	browser := discovery.NewBrowser(discovery.DefaultBrowserConfig())
	svc, err := browser.Find(ctx, name)
	if err != nil {
		return "", err
	}
	addr := svc.Address()
	if addr == "" {
		return "", fmt.Errorf("amplifier %q advertised no address", name)
	}
	return addr, nil
}

func buildProtocolLogger() (hlxlog.Logger, func()) {
	var loggers []hlxlog.Logger
	closer := func() {}

	if config.LogFile != "" {
		fl := hlxlog.NewRotatingFileLogger(config.LogFile, 10, 5)
		loggers = append(loggers, fl)
		closer = func() { _ = fl.Close() }
	}

	if config.LogLevel == "debug" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		loggers = append(loggers, hlxlog.NewSlogAdapter(slog.New(handler)))
	}

	switch len(loggers) {
	case 0:
		return hlxlog.NoopLogger{}, closer
	case 1:
		return loggers[0], closer
	default:
		return hlxlog.NewMultiLogger(loggers...), closer
	}
}
