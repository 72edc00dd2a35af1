package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// TLSFiles are the PEM file paths of a mutual TLS client.
type TLSFiles struct {
	CA   string `mapstructure:"ca_file"`
	Cert string `mapstructure:"cert_file"`
	Key  string `mapstructure:"key_file"`
}

func (f TLSFiles) Empty() bool {
	return f.CA == "" && f.Cert == "" && f.Key == ""
}

// MakeTLSConfig returns nil when no file is set. Either all three files are
// set or none.
func MakeTLSConfig(f TLSFiles) (*tls.Config, error) {
	const op = "adapter.MakeTLSConfig"

	if f.Empty() {
		return nil, nil
	}
	if f.CA == "" || f.Cert == "" || f.Key == "" {
		return nil, fmt.Errorf(
			"%s: %w", op, errors.New("ca, cert and key files are required together"),
		)
	}

	caCert, err := os.ReadFile(f.CA)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read CA certificate file: %w", op, err)
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("%s: %s", op, "failed to parse CA certificate")
	}

	clientCert, err := tls.LoadX509KeyPair(f.Cert, f.Key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &tls.Config{
		RootCAs:      caCertPool,
		Certificates: []tls.Certificate{clientCert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
