package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-environment deployment environment (development/production)
//	-session-secret session cookie signing secret
//	-session-ttl session lifetime (e.g., "24h")
//	-db-host database host
//	-db-user database user
//	-db-pass database password
//	-db-name database name
//	-db-port database port
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlags(os.Args[1:])
	return cfg
}

// parseFlags is the testable core of ParseFlags: it parses the given argument
// list with a fresh flag set instead of the process-global one.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-grid-portal", flag.ContinueOnError)

	var serverAddress NetAddress
	var environment string
	var sessionSecret string
	var sessionTTL time.Duration
	var dbHost, dbUser, dbPass, dbName string
	var dbPort int
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&environment, "environment", "", "Deployment environment")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session cookie signing secret")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.StringVar(&dbHost, "db-host", "", "Database host")
	fs.StringVar(&dbUser, "db-user", "", "Database user")
	fs.StringVar(&dbPass, "db-pass", "", "Database password")
	fs.StringVar(&dbName, "db-name", "", "Database name")
	fs.IntVar(&dbPort, "db-port", 0, "Database port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return &StructuredConfig{}, err
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Storage: Storage{
			DB: DB{
				Host:     dbHost,
				User:     dbUser,
				Password: dbPass,
				Name:     dbName,
				Port:     dbPort,
			},
		},
		Sessions: Sessions{
			Secret: sessionSecret,
			TTL:    sessionTTL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
