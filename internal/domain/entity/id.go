package entity

import (
	"strings"

	"github.com/google/uuid"
)

const (
	TaskIDPrefix      = "tsk_"
	ExecutionIDPrefix = "exec_"
	idLength          = 8
)

// NewID returns prefix followed by 8 lowercase hex characters.
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + raw[:idLength]
}
