// Command hlx-server is a reference HLX amplifier simulator.
//
// This command demonstrates a complete HLX-compliant amplifier with:
//   - CLI argument parsing
//   - YAML profile support for pre-seeding zone and source state
//   - mDNS discovery advertising
//   - Backup blob persistence
//   - Comprehensive protocol logging
//
// Usage:
//
//	hlx-server [flags]
//
// Flags:
//
//	-addr string       Listen address (default ":23")
//	-backup string     Backup blob path (default "hlx-backup.cbor")
//	-profile string    YAML profile to seed the repository from
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-log-file string   Protocol event log path (CBOR, rotated)
//	-mdns              Advertise the amplifier with mDNS
//	-name string       Advertised instance name (default "HLX Amplifier")
//	-model string      Advertised model designation (default "HLX-1632")
//
// Examples:
//
//	# Start with defaults on a non-privileged port
//	hlx-server -addr :8023
//
//	# Start from a saved profile with mDNS advertising
//	hlx-server -profile /etc/hlx/house.yaml -mdns
//
//	# Debug a controller with full protocol logging
//	hlx-server -addr :8023 -log-level debug -log-file hlx-events.cbor
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hlx-protocol/hlx-go/pkg/discovery"
	hlxlog "github.com/hlx-protocol/hlx-go/pkg/log"
	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/service"
)

// Config holds the simulator configuration.
type Config struct {
	Address     string
	BackupPath  string
	ProfilePath string
	LogLevel    string
	LogFile     string
	MDNS        bool
	Name        string
	Model       string
	Firmware    string
	Interface   string
}

var config Config

func init() {
	flag.StringVar(&config.Address, "addr", ":23", "Listen address")
	flag.StringVar(&config.BackupPath, "backup", "hlx-backup.cbor", "Backup blob path")
	flag.StringVar(&config.ProfilePath, "profile", "", "YAML profile to seed the repository from")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.LogFile, "log-file", "", "Protocol event log path (CBOR, rotated)")
	flag.BoolVar(&config.MDNS, "mdns", false, "Advertise the amplifier with mDNS")
	flag.StringVar(&config.Name, "name", "HLX Amplifier", "Advertised instance name")
	flag.StringVar(&config.Model, "model", "HLX-1632", "Advertised model designation")
	flag.StringVar(&config.Firmware, "firmware", "1.0.0", "Advertised firmware revision")
	flag.StringVar(&config.Interface, "iface", "", "Network interface for mDNS (default: all)")
}

func main() {
	flag.Parse()

	setupLogging(config.LogLevel)

	log.Println("HLX Amplifier Simulator")
	log.Println("=======================")
	log.Printf("Address: %s", config.Address)
	log.Printf("Backup:  %s", config.BackupPath)

	repo := model.NewDefaultRepository()
	if config.ProfilePath != "" {
		profile, err := LoadProfile(config.ProfilePath)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		if err := profile.Apply(repo); err != nil {
			log.Fatalf("Failed to apply profile: %v", err)
		}
		log.Printf("Profile: %s", config.ProfilePath)
	}

	logger, closeLogger := buildProtocolLogger()
	defer closeLogger()

	svcConfig := service.DefaultServerConfig()
	svcConfig.Address = config.Address
	svcConfig.BackupPath = config.BackupPath
	svcConfig.Logger = logger

	svc := service.NewServer(svcConfig, repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := svc.Start(ctx); err != nil {
		log.Fatalf("Failed to start service: %v", err)
	}
	log.Printf("Listening on %s", svc.Addr())

	var advertiser *discovery.Advertiser
	if config.MDNS {
		advertiser = startAdvertiser(svc.Addr())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Printf("Received signal: %v", sig)
	log.Println("Shutting down...")

	if advertiser != nil {
		advertiser.Stop()
	}
	if err := svc.Stop(); err != nil {
		log.Printf("Error stopping service: %v", err)
	}

	log.Println("Goodbye!")
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if level == "debug" {
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	}
}

// buildProtocolLogger assembles the protocol event logger from the
// flags: a rotating CBOR file when -log-file is set, console output at
// debug level, both when both apply.
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

func startAdvertiser(addr net.Addr) *discovery.Advertiser {
	port := 23
	if _, portStr, err := net.SplitHostPort(addr.String()); err == nil {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		}
	}

	advConfig := discovery.DefaultAdvertiserConfig()
	advConfig.Interface = config.Interface

	advertiser := discovery.NewAdvertiser(advConfig)
	err := advertiser.Advertise(discovery.AmplifierInfo{
		InstanceName: config.Name,
		Model:        config.Model,
		Zones:        model.MaxZones,
		Firmware:     config.Firmware,
		Port:         port,
	})
	if err != nil {
		log.Printf("Warning: mDNS advertising failed: %v", err)
		return nil
	}
	log.Printf("Advertising %q via mDNS (port %d)", config.Name, port)
	return advertiser
}
