package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-gripp-url remote API base URL
//	-gripp-token remote API bearer token
//	-gripp-timeout remote call timeout (e.g., "15s")
//	-sync-interval scheduled run period (e.g., "15m")
//	-page-size pagination page size
//	-max-pages pagination safety cap
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var grippURL string
	var grippToken string
	var grippTimeout time.Duration
	var syncInterval time.Duration
	var pageSize int
	var maxPages int
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&grippURL, "gripp-url", "", "Remote API base URL")
	flag.StringVar(&grippToken, "gripp-token", "", "Remote API bearer token")
	flag.DurationVar(&grippTimeout, "gripp-timeout", 0, "Remote call timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Scheduled run period (e.g., 15m)")
	flag.IntVar(&pageSize, "page-size", 0, "Pagination page size")
	flag.IntVar(&maxPages, "max-pages", 0, "Pagination safety cap")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Gripp: Gripp{
			BaseURL: grippURL,
			Token:   grippToken,
			Timeout: grippTimeout,
		},
		Sync: Sync{
			PageSize: pageSize,
			MaxPages: maxPages,
			Interval: syncInterval,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
