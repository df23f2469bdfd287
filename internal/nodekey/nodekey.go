// Copyright © 2026 NDID Platform contributors
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package nodekey generates and handles the RSA key material the simulated
// nodes register with the platform, and signs the request message hashes
// carried on IdP responses.
package nodekey

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"

	"github.com/pkg/errors"
)

const DefaultBits = 2048

type KeyPair struct {
	Private *rsa.PrivateKey
}

// Generate creates a new RSA key pair of the requested size
func Generate(bits int) (*KeyPair, error) {
	if bits <= 0 {
		bits = DefaultBits
	}
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate RSA key")
	}
	return &KeyPair{Private: key}, nil
}

// ParsePrivatePEM loads a key pair from a PKCS1 or PKCS8 private key PEM block
func ParsePrivatePEM(pemBytes []byte) (*KeyPair, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM block found in private key data")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return &KeyPair{Private: key}, nil
	}
	ikey, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse private key")
	}
	rsaKey, ok := ikey.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return &KeyPair{Private: rsaKey}, nil
}

// PrivatePEM serializes the private key in PKCS1 PEM form
func (k *KeyPair) PrivatePEM() []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(k.Private),
	})
}

// PublicPEM serializes the public key in PKIX PEM form, which is the
// format the platform accepts for node keys and identity accessors
func (k *KeyPair) PublicPEM() (string, error) {
	der, err := x509.MarshalPKIXPublicKey(&k.Private.PublicKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize public key")
	}
	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	})), nil
}

// Sign produces a base64 PKCS1v15 signature over the SHA-256 of the message
func (k *KeyPair) Sign(message []byte) (string, error) {
	digest := sha256.Sum256(message)
	sig, err := rsa.SignPKCS1v15(rand.Reader, k.Private, crypto.SHA256, digest[:])
	if err != nil {
		return "", errors.Wrap(err, "failed to sign message")
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify checks a base64 PKCS1v15 signature over the SHA-256 of the message
func Verify(publicPEM string, message []byte, sigB64 string) error {
	block, _ := pem.Decode([]byte(publicPEM))
	if block == nil {
		return errors.New("no PEM block found in public key data")
	}
	ikey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return errors.Wrap(err, "failed to parse public key")
	}
	pubKey, ok := ikey.(*rsa.PublicKey)
	if !ok {
		return errors.New("public key is not RSA")
	}
	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return errors.Wrap(err, "signature is not valid base64")
	}
	digest := sha256.Sum256(message)
	return rsa.VerifyPKCS1v15(pubKey, crypto.SHA256, digest[:], sig)
}
