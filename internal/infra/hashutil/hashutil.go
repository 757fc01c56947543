package hashutil

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"toolbox/internal/domain"
)

// ToolsETag returns an ETag for a descriptor list and logs on failure.
func ToolsETag(logger *zap.Logger, tools []domain.ToolDescriptor) string {
	return hashWithLogger(logger, "tools", func() (string, error) {
		return hashJSON(tools)
	})
}

// MatchesETag returns an ETag for a ranked result list and logs on failure.
func MatchesETag(logger *zap.Logger, matches []domain.ScoredMatch) string {
	return hashWithLogger(logger, "matches", func() (string, error) {
		return hashJSON(matches)
	})
}

func hashJSON(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`, nil
}

func hashWithLogger(logger *zap.Logger, label string, fn func() (string, error)) string {
	etag, err := fn()
	if err != nil {
		if logger != nil {
			logger.Warn(fmt.Sprintf("%s hash failed", label), zap.Error(err))
		}
		return ""
	}
	return etag
}
