package test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"net/url"
	"sync"
	"testing"
	"time"
)

type keyPair struct {
	certPEM string
	keyPEM  string
}

// authority is a throwaway CA issuing SPIFFE leaf certificates, e.g. spiffe://client1.
type authority struct {
	cert   *x509.Certificate
	key    *ecdsa.PrivateKey
	caPEM  string
	serial int64
}

var (
	pkiOnce sync.Once
	pkiErr  error
	realCA  *authority
	fakeCA  *authority
	issued  = map[string]keyPair{}
)

// certFor returns the key pair for name ("server", "client1", "client2"), issued by the
// real CA, or by an unrelated CA when fake is set.
func certFor(t *testing.T, name string, fake bool) (keyPair, string) {
	t.Helper()

	pkiOnce.Do(func() {
		if realCA, pkiErr = newAuthority("ca"); pkiErr != nil {
			return
		}
		if fakeCA, pkiErr = newAuthority("ca_fake"); pkiErr != nil {
			return
		}
		for _, name := range []string{"server", "client1", "client2"} {
			if issued[name], pkiErr = realCA.issue(name); pkiErr != nil {
				return
			}
			if issued[name+"_fake"], pkiErr = fakeCA.issue(name); pkiErr != nil {
				return
			}
		}
	})
	if pkiErr != nil {
		t.Fatalf("failed to build test PKI: %v", pkiErr)
	}

	if fake {
		return issued[name+"_fake"], fakeCA.caPEM
	}
	return issued[name], realCA.caPEM
}

func newAuthority(name string) (*authority, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: name},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		return nil, err
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}

	return &authority{
		cert:   cert,
		key:    key,
		caPEM:  string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})),
		serial: 1,
	}, nil
}

func (a *authority) issue(name string) (keyPair, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return keyPair{}, err
	}

	a.serial++
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(a.serial),
		Subject:      pkix.Name{CommonName: name},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		DNSNames:     []string{"localhost"},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
		URIs:         []*url.URL{{Scheme: "spiffe", Host: name}},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, a.cert, &key.PublicKey, a.key)
	if err != nil {
		return keyPair{}, err
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return keyPair{}, err
	}

	return keyPair{
		certPEM: string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})),
		keyPEM:  string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})),
	}, nil
}
