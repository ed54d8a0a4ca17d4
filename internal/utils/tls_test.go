package utils

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// writeSelfSigned writes a self signed cert & key to dir, returning their paths.
func writeSelfSigned(t *testing.T, dir string) (string, string) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	assert.Nil(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "localhost"},
		DNSNames:              []string{"localhost"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &priv.PublicKey, priv)
	assert.Nil(t, err)

	keyDer, err := x509.MarshalECPrivateKey(priv)
	assert.Nil(t, err)

	cert := filepath.Join(dir, "cert.pem")
	key := filepath.Join(dir, "key.pem")
	assert.Nil(t, os.WriteFile(cert, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0600))
	assert.Nil(t, os.WriteFile(key, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDer}), 0600))
	return cert, key
}

func TestClientTLSConfig(t *testing.T) {
	dir := t.TempDir()
	cert, key := writeSelfSigned(t, dir)

	cfg, err := ClientTLSConfig("", "", "")
	assert.Nil(t, err)
	assert.Nil(t, cfg)

	cfg, err = ClientTLSConfig(cert, "", "")
	assert.Nil(t, err)
	assert.NotNil(t, cfg.RootCAs)
	assert.Len(t, cfg.Certificates, 0)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)

	cfg, err = ClientTLSConfig(cert, cert, key)
	assert.Nil(t, err)
	assert.Len(t, cfg.Certificates, 1)

	_, err = ClientTLSConfig("", cert, "")
	assert.NotNil(t, err)

	_, err = ClientTLSConfig(key, "", "")
	assert.NotNil(t, err)
}

func TestServerTLSConfig(t *testing.T) {
	dir := t.TempDir()
	cert, key := writeSelfSigned(t, dir)

	cases := []struct {
		Name       string
		CACert     string
		Cert       string
		Key        string
		ExpectNil  bool
		ExpectErr  bool
		ExpectAuth tls.ClientAuthType
	}{
		{"Plain", "", "", "", true, false, tls.NoClientCert},
		{"CAOnly", cert, "", "", true, true, tls.NoClientCert},
		{"TLS", "", cert, key, false, false, tls.NoClientCert},
		{"MutualTLS", cert, cert, key, false, false, tls.RequireAndVerifyClientCert},
		{"MissingKey", "", cert, filepath.Join(dir, "nope.pem"), true, true, tls.NoClientCert},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			cfg, err := ServerTLSConfig(c.CACert, c.Cert, c.Key)

			if c.ExpectErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
			if c.ExpectNil {
				assert.Nil(t, cfg)
				return
			}
			assert.Equal(t, c.ExpectAuth, cfg.ClientAuth)
			assert.Len(t, cfg.Certificates, 1)
		})
	}
}
