package tools

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"toolbox/internal/domain"
)

var hashAlgorithms = []struct {
	name string
	sum  func([]byte) []byte
}{
	{name: "md5", sum: sumMD5},
	{name: "sha1", sum: sumSHA1},
	{name: "sha256", sum: sumSHA256},
	{name: "sha512", sum: sumSHA512},
	{name: "sha3-256", sum: sumSHA3},
	{name: "blake2b", sum: sumBLAKE2b},
	{name: "blake3", sum: sumBLAKE3},
}

func sumMD5(data []byte) []byte {
	sum := md5.Sum(data)
	return sum[:]
}

func sumSHA1(data []byte) []byte {
	sum := sha1.Sum(data)
	return sum[:]
}

func sumSHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func sumSHA512(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:]
}

func sumSHA3(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

func sumBLAKE2b(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

func sumBLAKE3(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

// HashGenerator prints hex digests of the input.
//
// Options: algo=md5|sha1|sha256|sha512|sha3-256|blake2b|blake3|all (default all).
type HashGenerator struct{}

func NewHashGenerator(domain.ToolDeps) domain.Tool {
	return HashGenerator{}
}

func (HashGenerator) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.hash-generator"
	data := req.Input
	if len(data) == 0 {
		data = []byte(strings.Join(req.Args, " "))
	}
	algo := strings.ToLower(req.Option("algo", "all"))

	var fields []domain.ResultField
	for _, algorithm := range hashAlgorithms {
		if algo != "all" && algo != algorithm.name {
			continue
		}
		fields = append(fields, field(algorithm.name, hex.EncodeToString(algorithm.sum(data))))
	}
	if len(fields) == 0 {
		return domain.ToolResult{}, domain.InvalidInput(op, "unknown algorithm %q", algo)
	}
	if len(fields) == 1 {
		return domain.ToolResult{Text: fields[0].Value, Fields: fields}, nil
	}
	return fieldsResult(fields...), nil
}
