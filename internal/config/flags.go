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

// String renders the address as "host:port". The zero value renders as "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "[host]:[port]" string into the receiver.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(value)
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-password-hash-key password hash key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "1h", "30m")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-hash-key security hash key
//	-server-url base URL of the sync server (client)
//	-client-db path of the client SQLite database
//	-client-log path of the client log file
//	-max-commit-entries commit batch capacity (client)
//	-sync-interval background sync interval (e.g. "5m")
func ParseFlags() *StructuredConfig {
	return parseFlagSet(flag.CommandLine, os.Args[1:])
}

func parseFlagSet(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var passwordHashKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var serverURL string
	var clientDBPath string
	var clientLogPath string
	var maxCommitEntries int
	var syncInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&serverURL, "server-url", "", "Sync server base URL")
	fs.StringVar(&clientDBPath, "client-db", "", "Client SQLite database path")
	fs.StringVar(&clientLogPath, "client-log", "", "Client log file path")
	fs.IntVar(&maxCommitEntries, "max-commit-entries", 0, "Commit batch capacity")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")

	// flag.ExitOnError is configured on flag.CommandLine, so a parse error
	// terminates the process with usage output.
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			HashKey:         hashKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			ServerURL:        strings.TrimRight(serverURL, "/"),
			DBPath:           clientDBPath,
			LogPath:          clientLogPath,
			MaxCommitEntries: maxCommitEntries,
			RequestTimeout:   requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
