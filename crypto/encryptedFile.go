////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package crypto defines the encrypted-media reference structures attached to
// media events in encrypted rooms. The structures are descriptive only; key
// material is handled by the room encryption layer, never here.
package crypto

// JWK is a JSON Web Key holding the symmetric key an encrypted attachment was
// sealed with.
type JWK struct {
	KeyType     string   `json:"kty"`
	KeyOps      []string `json:"key_ops"`
	Algorithm   string   `json:"alg"`
	Key         string   `json:"k"`
	Extractable bool     `json:"ext"`
}

// EncryptedFile points at an encrypted attachment and carries the metadata
// needed to decrypt it after download. URL takes precedence over any
// plaintext URL on the same content.
type EncryptedFile struct {
	URL     string            `json:"url"`
	Key     JWK               `json:"key"`
	IV      string            `json:"iv"`
	Hashes  map[string]string `json:"hashes"`
	Version string            `json:"v"`
}
