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
//	-pool-size database connection pool size
//	-acquire-timeout database connection acquire timeout (e.g., "5s")
//	-r redis address in format [host]:[port]
//	-session-ttl sliding session lifetime (e.g., "24h")
//	-bcrypt-cost bcrypt cost factor for password hashing
//	-request-timeout request timeout (e.g., "10s", "1m")
//	-cors-origins comma-separated list of allowed CORS origins
//	-secure-cookies set the Secure attribute on session cookies
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var poolSize int
	var acquireTimeout time.Duration
	var redisAddress string
	var sessionTTL time.Duration
	var bcryptCost int
	var requestTimeout time.Duration
	var corsOrigins string
	var secureCookies bool
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.IntVar(&poolSize, "pool-size", 0, "Database connection pool size")
	flag.DurationVar(&acquireTimeout, "acquire-timeout", 0, "Connection acquire timeout (e.g., 5s)")
	flag.StringVar(&redisAddress, "r", "", "Redis address host:port")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Sliding session lifetime (e.g., 24h)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost factor")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	flag.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins")
	flag.BoolVar(&secureCookies, "secure-cookies", false, "Set Secure attribute on session cookies")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			BcryptCost:    bcryptCost,
			SecureCookies: secureCookies,
		},
		Session: Session{
			RedisAddress: redisAddress,
			TTL:          sessionTTL,
		},
		Storage: Storage{
			DSN:            databaseDSN,
			PoolSize:       poolSize,
			AcquireTimeout: acquireTimeout,
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			CORSAllowedOrigins: splitOrigins(corsOrigins),
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
}

// splitOrigins splits a comma-separated origin list into a slice,
// trimming whitespace and dropping empty entries.
func splitOrigins(origins string) []string {
	if origins == "" {
		return nil
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// String returns a canonical host:port string for a NetAddress.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
