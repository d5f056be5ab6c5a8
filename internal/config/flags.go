package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

var errBadNetAddress = errors.New("need address in a form `host:port`")

// NetAddress is a host:port pair usable as a [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args into a [StructuredConfig]. Positional arguments
// left after the flags end up in Command.
//
// Flags:
//
//	-a              server address host:port
//	-grpc-address   gRPC health address host:port
//	-d              database DSN (PostgreSQL URL or SQLite file)
//	-c / -config    JSON config file
//	-token-sign-key token verification key
//	-token-issuer   expected token issuer
//	-token          bearer token used by the client
//	-unlock         unlock method: password or wallet
//	-log-file       client log file
//	-idle-timeout   vault idle timeout (e.g. 15m)
//	-wallet-rpc     wallet JSON-RPC endpoint
//	-wallet-key     wallet private key file
//	-wallet-timeout wallet request timeout
//	-server         notes server URL used by the client
//	-request-timeout request timeout (e.g. 30s)
//	-expiry-check   vault expiry check interval
//	-health-interval gRPC health probe interval
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("notes-vault", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer, token string
	var unlockMethod, logFile string
	var idleTimeout, walletTimeout, requestTimeout, expiryCheck, healthInterval time.Duration
	var walletRPC, walletKey, adapterAddress string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&token, "token", "", "Bearer token for the notes server")
	fs.StringVar(&unlockMethod, "unlock", "", "Unlock method: password or wallet")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Vault idle timeout (e.g., 15m)")
	fs.StringVar(&walletRPC, "wallet-rpc", "", "Wallet JSON-RPC endpoint")
	fs.StringVar(&walletKey, "wallet-key", "", "Wallet private key file")
	fs.DurationVar(&walletTimeout, "wallet-timeout", 0, "Wallet request timeout")
	fs.StringVar(&adapterAddress, "server", "", "Notes server URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&expiryCheck, "expiry-check", 0, "Vault expiry check interval")
	fs.DurationVar(&healthInterval, "health-interval", 0, "gRPC health probe interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			Token:        token,
			UnlockMethod: unlockMethod,
			LogFile:      logFile,
		},
		Vault: Vault{IdleTimeout: idleTimeout},
		Wallet: Wallet{
			RPCURL:  walletRPC,
			KeyFile: walletKey,
			Timeout: walletTimeout,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			HealthInterval: healthInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{ExpiryCheckInterval: expiryCheck},
		JSONFilePath: jsonConfigPath,
		Command:      fs.Args(),
	}, nil
}

// String returns host:port, or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP
// address; IPv6 hosts need brackets.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errBadNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q", errBadNetAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", errBadNetAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}
