package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"testing"
)

// Session-signing key shared by the tests in this package, generated in
// TestMain.
var testSigningKey *ecdsa.PrivateKey

func TestMain(m *testing.M) {
	validKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		log.Fatalf("failed to generate ECDSA private key for tests: %v", err)
	}
	testSigningKey = validKey

	if err := writePrivateKeyPEM("test_valid_private.pem", validKey); err != nil {
		log.Fatalf("failed to write valid key PEM: %v", err)
	}

	invalidPEM := "-----BEGIN INVALID KEY-----\nnot-a-real-key\n-----END INVALID KEY-----\n"
	if err := os.WriteFile("test_invalid_private.pem", []byte(invalidPEM), 0o600); err != nil {
		log.Fatalf("failed to write invalid key PEM: %v", err)
	}

	code := m.Run()

	_ = os.Remove("test_valid_private.pem")
	_ = os.Remove("test_invalid_private.pem")

	os.Exit(code)
}

func writePrivateKeyPEM(path string, key *ecdsa.PrivateKey) error {
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return err
	}
	block := &pem.Block{
		Type:  "EC PRIVATE KEY",
		Bytes: der,
	}
	return os.WriteFile(path, pem.EncodeToMemory(block), 0o600)
}

func TestCreateAndVerifyToken(t *testing.T) {
	token, err := CreateToken("alice", testSigningKey)
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	claims, err := VerifyToken(token, &testSigningKey.PublicKey)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "alice")
	}
	if claims.Issuer != ISSUER {
		t.Errorf("claims.Issuer = %q, want %q", claims.Issuer, ISSUER)
	}
	if claims.ID == "" {
		t.Error("claims.ID is empty, want a token ID")
	}
}

func TestVerifyToken_WrongKey(t *testing.T) {
	token, err := CreateToken("alice", testSigningKey)
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	otherKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate second key: %v", err)
	}

	if _, err := VerifyToken(token, &otherKey.PublicKey); err == nil {
		t.Error("VerifyToken() accepted a token signed with a different key")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	if _, err := VerifyToken("not.a.token", &testSigningKey.PublicKey); err == nil {
		t.Error("VerifyToken() accepted a malformed token")
	}
}

func TestLoadECDSAPrivateKey(t *testing.T) {
	tests := []struct {
		name    string
		keyPath string
		wantErr bool
	}{
		{
			name:    "load valid key",
			keyPath: "test_valid_private.pem",
			wantErr: false,
		},
		{
			name:    "load invalid key",
			keyPath: "test_invalid_private.pem",
			wantErr: true,
		},
		{
			name:    "file does not exist",
			keyPath: "non_existent_key.pem",
			wantErr: true,
		},
		{
			name:    "empty key path",
			keyPath: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadECDSAPrivateKey(tt.keyPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadECDSAPrivateKey() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.Curve != elliptic.P256() {
				t.Error("loaded key is not on the P256 curve")
			}
		})
	}
}
