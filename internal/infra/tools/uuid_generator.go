package tools

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"toolbox/internal/domain"
)

// UUIDGenerator creates UUIDs.
//
// Options: version=4|7|5 (default 4), count=1..100, namespace=url|dns|oid|x500
// and the name (args or input) for version 5, upper=true.
type UUIDGenerator struct{}

func NewUUIDGenerator(domain.ToolDeps) domain.Tool {
	return UUIDGenerator{}
}

func (UUIDGenerator) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.uuid-generator"
	count, err := intOption(op, req, "count", 1, 1, 100)
	if err != nil {
		return domain.ToolResult{}, err
	}

	var generate func() (uuid.UUID, error)
	switch version := req.Option("version", "4"); version {
	case "4":
		generate = uuid.NewRandom
	case "7":
		generate = uuid.NewV7
	case "5":
		name, err := requireText(op, req)
		if err != nil {
			return domain.ToolResult{}, err
		}
		namespace, ok := uuidNamespaces[strings.ToLower(req.Option("namespace", "url"))]
		if !ok {
			return domain.ToolResult{}, domain.InvalidInput(op, "unknown namespace %q", req.Option("namespace", ""))
		}
		generate = func() (uuid.UUID, error) {
			return uuid.NewSHA1(namespace, []byte(name)), nil
		}
	default:
		return domain.ToolResult{}, domain.InvalidInput(op, "unsupported uuid version %q", version)
	}

	ids := make([]string, 0, count)
	for range count {
		id, err := generate()
		if err != nil {
			return domain.ToolResult{}, domain.E(domain.CodeInternal, op, "", err)
		}
		value := id.String()
		if boolOption(req, "upper") {
			value = strings.ToUpper(value)
		}
		ids = append(ids, value)
	}
	return domain.ToolResult{Text: strings.Join(ids, "\n")}, nil
}

var uuidNamespaces = map[string]uuid.UUID{
	"url":  uuid.NameSpaceURL,
	"dns":  uuid.NameSpaceDNS,
	"oid":  uuid.NameSpaceOID,
	"x500": uuid.NameSpaceX500,
}
