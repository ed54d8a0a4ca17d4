package utils

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

func newTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion:       tls.VersionTLS12,
		CurvePreferences: []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
	}
}

func loadPool(cacert string) (*x509.CertPool, error) {
	data, err := os.ReadFile(cacert)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(data) {
		return nil, fmt.Errorf("no certificates found in %s", cacert)
	}
	return pool, nil
}

// ClientTLSConfig returns a config for talking to a launch service.
// Returns nil (plain HTTP) if nothing is given. A cert & key pair enables mutual TLS.
func ClientTLSConfig(cacert, cert, key string) (*tls.Config, error) {
	if cacert == "" && cert == "" && key == "" {
		return nil, nil
	}
	cfg := newTLSConfig()

	if cert != "" || key != "" {
		pair, err := tls.LoadX509KeyPair(cert, key)
		if err != nil {
			return nil, err
		}
		cfg.Certificates = []tls.Certificate{pair}
	}

	if cacert != "" {
		pool, err := loadPool(cacert)
		if err != nil {
			return nil, err
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}

// ServerTLSConfig returns a config for serving HTTPS, or nil if no cert & key are given.
// If cacert is set clients must present a certificate signed by it.
func ServerTLSConfig(cacert, cert, key string) (*tls.Config, error) {
	if cert == "" && key == "" {
		if cacert != "" {
			return nil, fmt.Errorf("client ca given without server cert & key")
		}
		return nil, nil
	}
	cfg := newTLSConfig()

	pair, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		return nil, err
	}
	cfg.Certificates = []tls.Certificate{pair}

	if cacert != "" {
		pool, err := loadPool(cacert)
		if err != nil {
			return nil, err
		}
		cfg.ClientCAs = pool
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return cfg, nil
}
